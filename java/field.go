// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import "github.com/albertocavalcante/jcodegen/codegen"

// FieldGenerator generates a field declaration.
type FieldGenerator struct {
	typ         codegen.TypeRef
	name        string
	modifiers   codegen.Modifiers
	init        string
	annotations codegen.Pipeline
}

// NewField creates a field of type t called name.
func NewField(t codegen.TypeRef, name string) *FieldGenerator {
	return &FieldGenerator{typ: t, name: name}
}

// Name returns the field name.
func (f *FieldGenerator) Name() string { return f.name }

// Type returns the field type.
func (f *FieldGenerator) Type() codegen.TypeRef { return f.typ }

// WithModifiers adds modifier flags.
func (f *FieldGenerator) WithModifiers(mods ...codegen.Modifiers) *FieldGenerator {
	for _, m := range mods {
		f.modifiers |= m
	}
	return f
}

// Init sets the initializer expression.
func (f *FieldGenerator) Init(expr string) *FieldGenerator {
	f.init = expr
	return f
}

// AddAnnotations appends annotation generators.
func (f *FieldGenerator) AddAnnotations(gs ...codegen.Generator) *FieldGenerator {
	for _, g := range gs {
		f.annotations.Register(g)
	}
	return f
}

// Generate writes the field declaration.
func (f *FieldGenerator) Generate(out codegen.Buffer) {
	f.annotations.Generate(out)
	printModifiers(out, f.modifiers)
	out.PrintType(f.typ)
	out.Print(" ")
	out.Print(f.name)
	if f.init != "" {
		out.Print(" = ")
		out.Print(f.init)
	}
	out.Print(";")
	out.Newline()
}

// printModifiers writes the keywords of m and a separating space. Bits
// without a keyword are dropped.
func printModifiers(out codegen.Buffer, m codegen.Modifiers) {
	if m = m.Known(); m == codegen.NoModifiers {
		return
	}
	out.PrintModifiers(m)
	out.Print(" ")
}
