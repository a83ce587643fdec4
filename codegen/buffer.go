// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

// Buffer is the indentation-aware text sink generators write into.
//
// Indent and Dedent are unchecked: callers pair them, and a buffer's
// indentation must never be driven below zero.
type Buffer interface {
	// Print appends literal text.
	Print(s string)

	// PrintType appends the formatted representation of t.
	PrintType(t TypeRef)

	// PrintModifiers appends the formatted keywords of m.
	PrintModifiers(m Modifiers)

	// Newline appends a line break.
	Newline()

	// Indent increases the indentation level by n columns.
	Indent(n int)

	// Dedent decreases the indentation level by n columns.
	Dedent(n int)

	// WriteIndent emits the current indentation prefix.
	WriteIndent()
}

// Formatter renders type descriptors and modifier sets as source text.
type Formatter interface {
	FormatType(t TypeRef) string
	FormatModifiers(m Modifiers) string
}
