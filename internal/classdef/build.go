// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package classdef

import (
	"fmt"

	"github.com/albertocavalcante/jcodegen/codegen"
	"github.com/albertocavalcante/jcodegen/internal/naming"
	"github.com/albertocavalcante/jcodegen/java"
)

// Build validates f and converts every class into a class generator, in
// document order. Configuration errors raised by the generators are
// returned, as are duplicate class IDs.
func Build(f *File) ([]*java.ClassGenerator, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	reg := codegen.NewRegistry()
	classes := make([]*java.ClassGenerator, 0, len(f.Classes))

	for _, c := range f.Classes {
		var (
			cg       *java.ClassGenerator
			buildErr error
		)
		err := codegen.Catch(func() {
			cg, buildErr = buildClass(c)
			if buildErr == nil {
				reg.Register(cg)
			}
		})
		if err == nil {
			err = buildErr
		}
		if err != nil {
			return nil, fmt.Errorf("class %s: %w", c.Name, err)
		}
		classes = append(classes, cg)
	}
	return classes, nil
}

// buildClass returns parse errors; the generators it configures panic with
// a *codegen.ConfigError instead.
func buildClass(c *Class) (*java.ClassGenerator, error) {
	cg := java.NewClass(c.Name)
	if c.ID != "" {
		cg.WithID(c.ID)
	}

	mods, err := codegen.ParseModifiers(c.Modifiers...)
	if err != nil {
		return nil, err
	}
	cg.SetModifiers(mods)

	if c.Extends != "" {
		t, err := codegen.ParseType(c.Extends)
		if err != nil {
			return nil, err
		}
		cg.SetSupertype(t)
	}
	for _, iface := range c.Implements {
		t, err := codegen.ParseType(iface)
		if err != nil {
			return nil, err
		}
		cg.AddInterfaces(t)
	}

	if len(c.Doc) > 0 {
		cg.AddAnnotations(java.Doc(c.Doc...))
	}
	cg.AddAnnotationText(c.Annotations...)

	for _, m := range c.Members {
		if err := addMember(cg, m); err != nil {
			return nil, err
		}
	}
	return cg, nil
}

func addMember(cg *java.ClassGenerator, m *Member) error {
	mods, err := codegen.ParseModifiers(m.Modifiers...)
	if err != nil {
		return err
	}

	switch m.Kind {
	case KindField:
		t, err := codegen.ParseType(m.Type)
		if err != nil {
			return err
		}
		field := java.NewField(t, m.Name).WithModifiers(mods).Init(m.Init)
		field.AddAnnotations(memberAnnotations(m)...)
		cg.AddFields(field)
		if m.Accessors {
			addAccessors(cg, field, mods)
		}

	case KindConstructor, KindMethod:
		var mg *java.MethodGenerator
		if m.Kind == KindConstructor {
			name := m.Name
			if name == "" {
				name = cg.Name()
			}
			mg = java.NewConstructor(name)
		} else {
			mg = java.NewMethod(m.Name)
		}
		if m.Type != "" {
			t, err := codegen.ParseType(m.Type)
			if err != nil {
				return err
			}
			mg.Returns(t)
		}
		mg.WithModifiers(mods).AddAnnotations(memberAnnotations(m)...)
		for _, p := range m.Params {
			t, err := codegen.ParseType(p.Type)
			if err != nil {
				return err
			}
			mg.AddParam(t, p.Name)
		}
		for _, th := range m.Throws {
			t, err := codegen.ParseType(th)
			if err != nil {
				return err
			}
			mg.Throws(t)
		}
		mg.AddBody(m.Body...)

		if m.Kind == KindConstructor {
			cg.AddConstructors(mg)
		} else {
			cg.AddMethods(mg)
		}
	}
	return nil
}

func memberAnnotations(m *Member) []codegen.Generator {
	var gs []codegen.Generator
	if len(m.Doc) > 0 {
		gs = append(gs, java.Doc(m.Doc...))
	}
	if len(m.Annotations) > 0 {
		gs = append(gs, java.Text(m.Annotations...))
	}
	return gs
}

// addAccessors registers a JavaBeans getter, and a setter for non-final
// fields, with the field's static modifier.
func addAccessors(cg *java.ClassGenerator, field *java.FieldGenerator, mods codegen.Modifiers) {
	name := field.Name()
	t := field.Type()
	access := codegen.Public | mods&codegen.Static

	self := "this."
	if mods.Has(codegen.Static) {
		self = cg.Name() + "."
	}

	getter := java.NewMethod(naming.Getter(name, t.SimpleString())).
		WithModifiers(access).
		Returns(t).
		AddBody("return " + name + ";")
	cg.AddMethods(getter)

	if mods.Has(codegen.Final) {
		return
	}
	param := naming.StripPrefix(name)
	setter := java.NewMethod(naming.Setter(name)).
		WithModifiers(access).
		AddParam(t, param).
		AddBody(self + name + " = " + param + ";")
	cg.AddMethods(setter)
}
