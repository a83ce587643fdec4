// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"slices"
	"strings"

	"github.com/albertocavalcante/jcodegen/codegen"
)

// Annotation generates a single annotation line such as
// @SuppressWarnings("unchecked").
type Annotation struct {
	// Name is the annotation type name, without "@".
	Name string

	// Args is the raw argument list; empty means no parentheses.
	Args string
}

// NewAnnotation creates an annotation whose arguments are joined with ", ".
func NewAnnotation(name string, args ...string) *Annotation {
	return &Annotation{Name: name, Args: strings.Join(args, ", ")}
}

// Generate writes the annotation followed by a line break.
func (a *Annotation) Generate(out codegen.Buffer) {
	out.Print("@")
	out.Print(a.Name)
	if a.Args != "" {
		out.Print("(")
		out.Print(a.Args)
		out.Print(")")
	}
	out.Newline()
}

// Text returns a generator writing each pre-rendered block followed by a
// line break. The blocks are copied.
func Text(blocks ...string) codegen.Generator {
	blocks = slices.Clone(blocks)
	return codegen.GeneratorFunc(func(out codegen.Buffer) {
		for _, b := range blocks {
			out.Print(b)
			out.Newline()
		}
	})
}

// Doc returns a generator writing lines as a Javadoc block. It writes
// nothing when lines is empty.
func Doc(lines ...string) codegen.Generator {
	lines = slices.Clone(lines)
	return codegen.GeneratorFunc(func(out codegen.Buffer) {
		if len(lines) == 0 {
			return
		}
		out.Print("/**")
		out.Newline()
		for _, l := range lines {
			if l == "" {
				out.Print(" *")
			} else {
				out.Print(" * ")
				out.Print(l)
			}
			out.Newline()
		}
		out.Print(" */")
		out.Newline()
	})
}
