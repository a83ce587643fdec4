// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package java

import (
	"slices"

	"github.com/albertocavalcante/jcodegen/codegen"
)

// Preamble generates the start of a compilation unit: header comments,
// the package declaration and imports.
type Preamble struct {
	// Header lines are written as "// " comments.
	Header []string

	// Package is the package name; empty means the default package.
	Package string

	// Imports are written sorted and de-duplicated.
	Imports []string
}

// Generate writes the preamble. Each present section is followed by a
// blank line.
func (p *Preamble) Generate(out codegen.Buffer) {
	if len(p.Header) > 0 {
		for _, h := range p.Header {
			if h == "" {
				out.Print("//")
			} else {
				out.Print("// ")
				out.Print(h)
			}
			out.Newline()
		}
		out.Newline()
	}

	if p.Package != "" {
		out.Print("package ")
		out.Print(p.Package)
		out.Print(";")
		out.Newline()
		out.Newline()
	}

	imports := slices.Clone(p.Imports)
	slices.Sort(imports)
	imports = slices.Compact(imports)
	for _, imp := range imports {
		out.Print("import ")
		out.Print(imp)
		out.Print(";")
		out.Newline()
	}
	if len(imports) > 0 {
		out.Newline()
	}
}
