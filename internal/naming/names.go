// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package naming derives Java identifiers from member names.
package naming

import (
	"strings"
	"unicode"
)

// Capitalize returns name with the first letter uppercased.
// Returns empty string for empty input.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(name)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// StripPrefix strips a leading "_" or "m_" field prefix from name.
func StripPrefix(name string) string {
	if rest, ok := strings.CutPrefix(name, "m_"); ok && rest != "" {
		return rest
	}
	if rest, ok := strings.CutPrefix(name, "_"); ok && rest != "" {
		return rest
	}
	return name
}

// Getter returns the JavaBeans getter name for a field. Primitive boolean
// fields use the "is" prefix.
func Getter(field, typeName string) string {
	prefix := "get"
	if typeName == "boolean" {
		prefix = "is"
	}
	return prefix + Capitalize(StripPrefix(field))
}

// Setter returns the JavaBeans setter name for a field.
func Setter(field string) string {
	return "set" + Capitalize(StripPrefix(field))
}

// IsIdentifier reports whether name is a valid Java identifier that is not
// a reserved keyword.
func IsIdentifier(name string) bool {
	if name == "" || reserved[name] {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || r == '$' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}

var reserved = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true, "byte": true,
	"case": true, "catch": true, "char": true, "class": true, "const": true,
	"continue": true, "default": true, "do": true, "double": true, "else": true,
	"enum": true, "extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true, "import": true,
	"instanceof": true, "int": true, "interface": true, "long": true, "native": true,
	"new": true, "package": true, "private": true, "protected": true, "public": true,
	"return": true, "short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true, "throws": true,
	"transient": true, "try": true, "void": true, "volatile": true, "while": true,
	"true": true, "false": true, "null": true, "_": true,
}
