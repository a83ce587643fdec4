// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package jcode provides the indentation-aware buffer used to emit Java
// source with the codegen package.
//
// The indentation prefix is applied lazily: it is written before the first
// text of a line, so lines left empty carry no trailing whitespace and an
// explicit WriteIndent at the start of a line is not doubled.
package jcode

import (
	"bytes"
	"io"
	"strings"

	"github.com/albertocavalcante/jcodegen/codegen"
)

// SB is a [codegen.Buffer] backed by memory. The zero value is ready to use
// and formats types with simple names.
type SB struct {
	buf       bytes.Buffer
	indent    int
	lineStart bool
	started   bool
	formatter codegen.Formatter
}

var _ codegen.Buffer = (*SB)(nil)

// Option configures an SB.
type Option func(*SB)

// WithFormatter sets the formatter used by PrintType and PrintModifiers.
func WithFormatter(f codegen.Formatter) Option {
	return func(sb *SB) {
		sb.formatter = f
	}
}

// New creates an empty buffer.
func New(opts ...Option) *SB {
	sb := &SB{}
	for _, opt := range opts {
		opt(sb)
	}
	return sb
}

func (sb *SB) format() codegen.Formatter {
	if sb.formatter == nil {
		return JavaFormatter{}
	}
	return sb.formatter
}

func (sb *SB) atLineStart() bool {
	return !sb.started || sb.lineStart
}

// Print appends s. Embedded line breaks are honoured and every resulting
// line is indented.
func (sb *SB) Print(s string) {
	for {
		line, rest, found := strings.Cut(s, "\n")
		sb.text(line)
		if !found {
			return
		}
		sb.Newline()
		s = rest
	}
}

func (sb *SB) text(s string) {
	if s == "" {
		return
	}
	if sb.atLineStart() {
		sb.writePrefix()
	}
	sb.buf.WriteString(s)
	sb.started = true
	sb.lineStart = false
}

func (sb *SB) writePrefix() {
	for range sb.indent {
		sb.buf.WriteByte(' ')
	}
}

// PrintType appends the formatted type.
func (sb *SB) PrintType(t codegen.TypeRef) {
	sb.text(sb.format().FormatType(t))
}

// PrintModifiers appends the formatted modifier keywords.
func (sb *SB) PrintModifiers(m codegen.Modifiers) {
	sb.text(sb.format().FormatModifiers(m))
}

// Newline ends the current line.
func (sb *SB) Newline() {
	sb.buf.WriteByte('\n')
	sb.started = true
	sb.lineStart = true
}

// Indent increases indentation by n columns.
func (sb *SB) Indent(n int) {
	sb.indent += n
}

// Dedent decreases indentation by n columns, stopping at zero.
func (sb *SB) Dedent(n int) {
	sb.indent = max(sb.indent-n, 0)
}

// WriteIndent emits the indentation prefix. At the start of a line this is
// deferred to the first text written on it.
func (sb *SB) WriteIndent() {
	if sb.atLineStart() {
		return
	}
	sb.writePrefix()
}

// Level returns the current indentation in columns.
func (sb *SB) Level() int {
	return sb.indent
}

// String returns the accumulated text.
func (sb *SB) String() string {
	return sb.buf.String()
}

// Bytes returns a copy of the accumulated text.
func (sb *SB) Bytes() []byte {
	return bytes.Clone(sb.buf.Bytes())
}

// Len returns the number of accumulated bytes.
func (sb *SB) Len() int {
	return sb.buf.Len()
}

// Reset discards all text and indentation.
func (sb *SB) Reset() {
	sb.buf.Reset()
	sb.indent = 0
	sb.started = false
	sb.lineStart = false
}

// WriteTo writes the accumulated text to w. Errors from w are returned
// unchanged.
func (sb *SB) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(sb.buf.Bytes())
	return int64(n), err
}
