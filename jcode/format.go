// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package jcode

import "github.com/albertocavalcante/jcodegen/codegen"

// JavaFormatter renders types and modifiers as Java source.
type JavaFormatter struct {
	// Qualified prints package-qualified type names.
	Qualified bool
}

var _ codegen.Formatter = JavaFormatter{}

// FormatType renders t.
func (f JavaFormatter) FormatType(t codegen.TypeRef) string {
	if f.Qualified {
		return t.String()
	}
	return t.SimpleString()
}

// FormatModifiers renders m in canonical keyword order.
func (f JavaFormatter) FormatModifiers(m codegen.Modifiers) string {
	return m.String()
}
