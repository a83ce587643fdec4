// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package classdef

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/jcodegen/internal/naming"
)

// Validate checks names and member kinds. Class names must be unique.
// Types and modifiers are checked when the document is built.
func (f *File) Validate() error {
	if f == nil || len(f.Classes) == 0 {
		return errors.New("no classes defined")
	}

	var errs []error
	seen := make(map[string]int, len(f.Classes))
	for i, c := range f.Classes {
		if c == nil {
			errs = append(errs, fmt.Errorf("classes[%d]: empty class", i))
			continue
		}
		if !naming.IsIdentifier(c.Name) {
			errs = append(errs, fmt.Errorf("classes[%d]: invalid class name %q", i, c.Name))
			continue
		}
		if prev, ok := seen[c.Name]; ok {
			errs = append(errs, fmt.Errorf("classes[%d]: duplicate class name %q (first at classes[%d])", i, c.Name, prev))
			continue
		}
		seen[c.Name] = i
		for j, m := range c.Members {
			if err := m.validate(); err != nil {
				errs = append(errs, fmt.Errorf("class %s: members[%d]: %w", c.Name, j, err))
			}
		}
	}
	return errors.Join(errs...)
}

func (m *Member) validate() error {
	if m == nil {
		return errors.New("empty member")
	}
	switch m.Kind {
	case KindField:
		if m.Type == "" {
			return fmt.Errorf("field %q has no type", m.Name)
		}
		if len(m.Params) > 0 || len(m.Throws) > 0 || len(m.Body) > 0 {
			return fmt.Errorf("field %q cannot have params, throws or body", m.Name)
		}
	case KindMethod, KindConstructor:
		if m.Accessors || m.Init != "" {
			return fmt.Errorf("%s %q cannot have accessors or init", m.Kind, m.Name)
		}
	case "":
		return fmt.Errorf("member %q has no kind", m.Name)
	default:
		return fmt.Errorf("member %q has unknown kind %q", m.Name, m.Kind)
	}

	// Constructors may omit the name.
	if m.Kind != KindConstructor || m.Name != "" {
		if !naming.IsIdentifier(m.Name) {
			return fmt.Errorf("invalid %s name %q", m.Kind, m.Name)
		}
	}
	for _, p := range m.Params {
		if !naming.IsIdentifier(p.Name) || p.Type == "" {
			return fmt.Errorf("%s %q: invalid parameter %q of type %q", m.Kind, m.Name, p.Name, p.Type)
		}
	}
	return nil
}
