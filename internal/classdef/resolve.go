// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package classdef

import (
	"fmt"
	"slices"
	"strings"

	"github.com/albertocavalcante/jcodegen/codegen"
)

// ResolveDeps expands a class filter to include every class of f that is
// transitively referenced by a filtered class. Returns nil if filter is nil
// (meaning "generate all classes").
//
// A reference is a supertype, an interface, a field type, a method return,
// parameter or throws type, or any of their type arguments, naming a class
// of f either unqualified or qualified with f's package.
func ResolveDeps(f *File, filter map[string]bool) map[string]bool {
	if filter == nil {
		return nil
	}

	expanded := make(map[string]bool)
	for name := range filter {
		collectDeps(f, name, expanded)
	}
	return expanded
}

func collectDeps(f *File, className string, visited map[string]bool) {
	if visited[className] {
		return // Already processed or cycle
	}
	visited[className] = true

	c := f.class(className)
	if c == nil {
		return
	}
	refs := append([]string{c.Extends}, c.Implements...)
	for _, m := range c.Members {
		if m == nil {
			continue
		}
		refs = append(refs, m.Type)
		for _, p := range m.Params {
			refs = append(refs, p.Type)
		}
		refs = append(refs, m.Throws...)
	}
	for _, r := range refs {
		if r == "" {
			continue
		}
		// Malformed types are reported by Build.
		t, err := codegen.ParseType(r)
		if err != nil {
			continue
		}
		collectTypeRefs(f, t, visited)
	}
}

func collectTypeRefs(f *File, t codegen.TypeRef, visited map[string]bool) {
	if t.Package == "" || t.Package == f.Package {
		if f.class(t.Name) != nil {
			collectDeps(f, t.Name, visited)
		}
	}
	for _, a := range t.Args {
		collectTypeRefs(f, a, visited)
	}
}

func (f *File) class(name string) *Class {
	for _, c := range f.Classes {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

// Select returns a copy of f holding only the named classes, in document
// order. With resolve set, referenced classes are kept as well (see
// [ResolveDeps]). An empty names list selects every class.
func (f *File) Select(names []string, resolve bool) (*File, error) {
	if len(names) == 0 {
		return f, nil
	}

	filter := make(map[string]bool, len(names))
	var unknown []string
	for _, n := range names {
		if f.class(n) == nil {
			unknown = append(unknown, n)
			continue
		}
		filter[n] = true
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown classes: %s", strings.Join(unknown, ", "))
	}
	if resolve {
		filter = ResolveDeps(f, filter)
	}

	out := *f
	out.Classes = slices.DeleteFunc(slices.Clone(f.Classes), func(c *Class) bool {
		return c == nil || !filter[c.Name]
	})
	return &out, nil
}
