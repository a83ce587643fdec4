// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package java generates Java class declarations out of codegen units.
//
// A [ClassGenerator] owns two things: declaration metadata (modifiers,
// supertype, interfaces, annotations) and a [codegen.Pipeline] of members.
// Members are emitted in the order they were registered, across
// AddFields, AddConstructors and AddMethods.
package java

import (
	"fmt"

	"github.com/albertocavalcante/jcodegen/codegen"
)

// bodyIndent is the indentation step applied to class members.
const bodyIndent = 2

// Callable is a method-shaped generator: a method or a constructor.
type Callable interface {
	codegen.Generator
	Name() string
	ReturnType() codegen.TypeRef
}

// declaration holds class-level metadata emitted in the header.
type declaration struct {
	modifiers   codegen.Modifiers
	supertype   *codegen.TypeRef
	interfaces  []codegen.TypeRef
	annotations codegen.Pipeline
}

// ClassGenerator generates one Java class.
type ClassGenerator struct {
	name    string
	decl    declaration
	members codegen.Pipeline
}

var (
	_ codegen.Generator              = (*ClassGenerator)(nil)
	_ codegen.Identified             = (*ClassGenerator)(nil)
	_ codegen.HasID[*ClassGenerator] = (*ClassGenerator)(nil)
)

// NewClass creates a generator for the class called name.
func NewClass(name string) *ClassGenerator {
	c := &ClassGenerator{name: name}
	c.members.WithID(name)
	c.decl.annotations.WithID(name)
	return c
}

// Name returns the class name.
func (c *ClassGenerator) Name() string {
	return c.name
}

// SetModifiers adds each flag to the class modifiers.
func (c *ClassGenerator) SetModifiers(mods ...codegen.Modifiers) *ClassGenerator {
	for _, m := range mods {
		c.decl.modifiers |= m
	}
	return c
}

// Modifiers returns the accumulated class modifiers.
func (c *ClassGenerator) Modifiers() codegen.Modifiers {
	return c.decl.modifiers
}

// SetSupertype sets the class this class extends. A later call replaces
// an earlier one.
func (c *ClassGenerator) SetSupertype(t codegen.TypeRef) *ClassGenerator {
	c.decl.supertype = &t
	return c
}

// AddInterfaces appends implemented interfaces, keeping their order.
func (c *ClassGenerator) AddInterfaces(ts ...codegen.TypeRef) *ClassGenerator {
	c.decl.interfaces = append(c.decl.interfaces, ts...)
	return c
}

// AddAnnotations appends annotation generators emitted before the header.
func (c *ClassGenerator) AddAnnotations(gs ...codegen.Generator) *ClassGenerator {
	for _, g := range gs {
		c.decl.annotations.Register(g)
	}
	return c
}

// AddAnnotationText appends one generator that writes each pre-rendered
// block followed by a line break.
func (c *ClassGenerator) AddAnnotationText(blocks ...string) *ClassGenerator {
	if len(blocks) == 0 {
		return c
	}
	c.decl.annotations.Register(Text(blocks...))
	return c
}

// AddConstructors validates and appends constructors to the members.
// It panics with a *codegen.ConfigError if a constructor has a non-void
// return type or a name other than the class name.
func (c *ClassGenerator) AddConstructors(ctors ...Callable) *ClassGenerator {
	for _, ctor := range ctors {
		if err := ValidateConstructor(c.name, ctor); err != nil {
			panic(err)
		}
		c.members.Register(ctor)
	}
	return c
}

// AddMethods appends methods to the members.
func (c *ClassGenerator) AddMethods(methods ...Callable) *ClassGenerator {
	for _, m := range methods {
		c.members.Register(m)
	}
	return c
}

// AddFields appends fields to the members.
func (c *ClassGenerator) AddFields(fields ...codegen.Generator) *ClassGenerator {
	for _, f := range fields {
		c.members.Register(f)
	}
	return c
}

// Len returns the number of registered members.
func (c *ClassGenerator) Len() int {
	return c.members.Len()
}

// WithID sets the class generator identifier.
func (c *ClassGenerator) WithID(id string) *ClassGenerator {
	c.members.WithID(id)
	return c
}

// ID returns the identifier, which defaults to the class name.
func (c *ClassGenerator) ID() string {
	return c.members.ID()
}

// Generate writes annotations, the class header, the members indented by
// one step, and the closing brace.
func (c *ClassGenerator) Generate(out codegen.Buffer) {
	c.decl.annotations.Generate(out)
	c.generateHeader(out)

	out.Indent(bodyIndent)
	out.WriteIndent()
	c.members.Generate(out)
	out.Dedent(bodyIndent)
	out.Newline()

	c.generateFooter(out)
}

func (c *ClassGenerator) generateHeader(out codegen.Buffer) {
	printModifiers(out, c.decl.modifiers)
	out.Print("class ")
	out.Print(c.name)
	if c.decl.supertype != nil {
		out.Print(" extends ")
		out.PrintType(*c.decl.supertype)
	}
	for i, iface := range c.decl.interfaces {
		if i == 0 {
			out.Print(" implements ")
		} else {
			out.Print(", ")
		}
		out.PrintType(iface)
	}
	out.Print(" {")
	out.Newline()
}

func (c *ClassGenerator) generateFooter(out codegen.Buffer) {
	out.Print("} // End of class ")
	out.Print(c.name)
	out.Newline()
}

// ValidateConstructor reports whether ctor can be a constructor of the
// class called className.
func ValidateConstructor(className string, ctor Callable) error {
	if codegen.IsNil(ctor) {
		return &codegen.ConfigError{
			Kind:   codegen.KindNilGenerator,
			Owner:  className,
			Detail: "cannot register a nil constructor",
		}
	}
	if rt := ctor.ReturnType(); !rt.IsVoid() {
		return &codegen.ConfigError{
			Kind:   codegen.KindConstructorReturn,
			Owner:  className,
			Member: ctor.Name(),
			Detail: fmt.Sprintf("declared method does not represent a constructor: returns %s, want void", rt),
		}
	}
	if ctor.Name() != className {
		return &codegen.ConfigError{
			Kind:   codegen.KindConstructorName,
			Owner:  className,
			Member: ctor.Name(),
			Detail: fmt.Sprintf("constructor name does not match class name %q", className),
		}
	}
	return nil
}
