// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import (
	"fmt"
	"strings"
	"unicode"
)

// TypeRef describes a type by name. It carries no runtime type metadata;
// a [Formatter] decides how it is printed.
type TypeRef struct {
	// Package is the qualifying package (e.g., "java.util"), empty for
	// primitives and unqualified names.
	Package string

	// Name is the simple name (e.g., "List", "int").
	Name string

	// Args are the type arguments, in order.
	Args []TypeRef

	// Dims is the number of array dimensions.
	Dims int
}

// Void is the void return type.
var Void = TypeRef{Name: "void"}

// Type returns a TypeRef for a simple name with optional type arguments.
func Type(name string, args ...TypeRef) TypeRef {
	return TypeRef{Name: name, Args: args}
}

// IsVoid reports whether t is the void type.
func (t TypeRef) IsVoid() bool {
	return t.Package == "" && t.Name == "void" && len(t.Args) == 0 && t.Dims == 0
}

// IsZero reports whether t is the zero TypeRef.
func (t TypeRef) IsZero() bool {
	return t.Package == "" && t.Name == "" && len(t.Args) == 0 && t.Dims == 0
}

// Array returns t with one more array dimension.
func (t TypeRef) Array() TypeRef {
	t.Dims++
	return t
}

// QualifiedName returns Package.Name, or Name when there is no package.
func (t TypeRef) QualifiedName() string {
	if t.Package == "" {
		return t.Name
	}
	return t.Package + "." + t.Name
}

// String returns the fully qualified source form of t.
func (t TypeRef) String() string {
	var b strings.Builder
	t.write(&b, true)
	return b.String()
}

// SimpleString returns the source form of t using simple names only.
func (t TypeRef) SimpleString() string {
	var b strings.Builder
	t.write(&b, false)
	return b.String()
}

func (t TypeRef) write(b *strings.Builder, qualified bool) {
	if qualified {
		b.WriteString(t.QualifiedName())
	} else {
		b.WriteString(t.Name)
	}
	if len(t.Args) > 0 {
		b.WriteByte('<')
		for i, a := range t.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.write(b, qualified)
		}
		b.WriteByte('>')
	}
	for range t.Dims {
		b.WriteString("[]")
	}
}

// ParseType parses a Java type expression such as "int",
// "java.util.List<String>" or "java.util.Map<String, int[]>[]".
func ParseType(s string) (TypeRef, error) {
	p := &typeParser{src: s}
	t, err := p.parse()
	if err != nil {
		return TypeRef{}, &ConfigError{Kind: KindInvalidType, Member: s, Detail: err.Error()}
	}
	p.skipSpace()
	if p.pos != len(p.src) {
		return TypeRef{}, &ConfigError{
			Kind:   KindInvalidType,
			Member: s,
			Detail: fmt.Sprintf("unexpected %q at offset %d", p.src[p.pos:], p.pos),
		}
	}
	return t, nil
}

// MustParseType is like [ParseType] but panics on error.
func MustParseType(s string) TypeRef {
	t, err := ParseType(s)
	if err != nil {
		panic(err)
	}
	return t
}

type typeParser struct {
	src string
	pos int
}

func (p *typeParser) skipSpace() {
	for p.pos < len(p.src) && p.src[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeParser) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *typeParser) parse() (TypeRef, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.src) {
		r := rune(p.src[p.pos])
		if r == '.' || r == '$' || r == '_' || r == '?' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			p.pos++
			continue
		}
		break
	}
	name := p.src[start:p.pos]
	if name == "" {
		return TypeRef{}, fmt.Errorf("expected type name at offset %d", start)
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
		return TypeRef{}, fmt.Errorf("malformed qualified name %q", name)
	}

	var t TypeRef
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		t.Package, t.Name = name[:i], name[i+1:]
	} else {
		t.Name = name
	}

	p.skipSpace()
	if p.peek() == '<' {
		p.pos++
		for {
			arg, err := p.parse()
			if err != nil {
				return TypeRef{}, err
			}
			t.Args = append(t.Args, arg)
			p.skipSpace()
			switch p.peek() {
			case ',':
				p.pos++
				continue
			case '>':
				p.pos++
			default:
				return TypeRef{}, fmt.Errorf("expected ',' or '>' at offset %d", p.pos)
			}
			break
		}
	}

	for {
		p.skipSpace()
		if !strings.HasPrefix(p.src[p.pos:], "[]") {
			break
		}
		t.Dims++
		p.pos += 2
	}
	return t, nil
}
