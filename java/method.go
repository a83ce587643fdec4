// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import "github.com/albertocavalcante/jcodegen/codegen"

// Param is a method parameter.
type Param struct {
	Type codegen.TypeRef
	Name string
}

// MethodGenerator generates a method or a constructor.
type MethodGenerator struct {
	name        string
	constructor bool
	modifiers   codegen.Modifiers
	returnType  codegen.TypeRef
	params      []Param
	throws      []codegen.TypeRef
	annotations codegen.Pipeline
	body        codegen.Pipeline
}

var _ Callable = (*MethodGenerator)(nil)

// NewMethod creates a method called name returning void.
func NewMethod(name string) *MethodGenerator {
	return &MethodGenerator{name: name, returnType: codegen.Void}
}

// NewConstructor creates a constructor for the class called className.
func NewConstructor(className string) *MethodGenerator {
	return &MethodGenerator{name: className, constructor: true, returnType: codegen.Void}
}

// Name returns the method name.
func (m *MethodGenerator) Name() string {
	return m.name
}

// ReturnType returns the declared return type.
func (m *MethodGenerator) ReturnType() codegen.TypeRef {
	return m.returnType
}

// IsConstructor reports whether m was created with [NewConstructor].
func (m *MethodGenerator) IsConstructor() bool {
	return m.constructor
}

// WithModifiers adds modifier flags.
func (m *MethodGenerator) WithModifiers(mods ...codegen.Modifiers) *MethodGenerator {
	for _, mod := range mods {
		m.modifiers |= mod
	}
	return m
}

// Returns sets the return type.
func (m *MethodGenerator) Returns(t codegen.TypeRef) *MethodGenerator {
	m.returnType = t
	return m
}

// AddParam appends a parameter.
func (m *MethodGenerator) AddParam(t codegen.TypeRef, name string) *MethodGenerator {
	m.params = append(m.params, Param{Type: t, Name: name})
	return m
}

// Throws appends declared exception types.
func (m *MethodGenerator) Throws(ts ...codegen.TypeRef) *MethodGenerator {
	m.throws = append(m.throws, ts...)
	return m
}

// AddAnnotations appends annotation generators emitted before the
// signature.
func (m *MethodGenerator) AddAnnotations(gs ...codegen.Generator) *MethodGenerator {
	for _, g := range gs {
		m.annotations.Register(g)
	}
	return m
}

// AddBody appends body statements, one per line.
func (m *MethodGenerator) AddBody(lines ...string) *MethodGenerator {
	for _, l := range lines {
		m.body.Register(codegen.GeneratorFunc(func(out codegen.Buffer) {
			out.Print(l)
			out.Newline()
		}))
	}
	return m
}

// WithBody appends a generator to the body.
func (m *MethodGenerator) WithBody(g codegen.Generator) *MethodGenerator {
	m.body.Register(g)
	return m
}

// Generate writes the method. Abstract and native methods end with ";"
// instead of a body.
func (m *MethodGenerator) Generate(out codegen.Buffer) {
	m.annotations.Generate(out)

	printModifiers(out, m.modifiers)
	if !m.constructor {
		out.PrintType(m.returnType)
		out.Print(" ")
	}
	out.Print(m.name)
	out.Print("(")
	for i, p := range m.params {
		if i > 0 {
			out.Print(", ")
		}
		out.PrintType(p.Type)
		out.Print(" ")
		out.Print(p.Name)
	}
	out.Print(")")
	for i, t := range m.throws {
		if i == 0 {
			out.Print(" throws ")
		} else {
			out.Print(", ")
		}
		out.PrintType(t)
	}

	if m.modifiers&(codegen.Abstract|codegen.Native) != 0 {
		out.Print(";")
		out.Newline()
		return
	}

	out.Print(" {")
	out.Newline()
	out.Indent(bodyIndent)
	m.body.Generate(out)
	out.Dedent(bodyIndent)
	out.Print("}")
	out.Newline()
}
