// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package codegentest provides test doubles for the codegen package.
package codegentest

import (
	"fmt"
	"strings"

	"github.com/albertocavalcante/jcodegen/codegen"
)

// OpKind identifies a recorded buffer call.
type OpKind int

const (
	OpPrint OpKind = iota
	OpPrintType
	OpPrintModifiers
	OpNewline
	OpIndent
	OpDedent
	OpWriteIndent
)

// Op is one recorded call on a [Recorder].
type Op struct {
	Kind OpKind

	// Text is the printed text for OpPrint, OpPrintType and OpPrintModifiers.
	Text string

	// N is the amount for OpIndent and OpDedent.
	N int
}

func (o Op) String() string {
	switch o.Kind {
	case OpPrint:
		return fmt.Sprintf("print(%q)", o.Text)
	case OpPrintType:
		return fmt.Sprintf("type(%q)", o.Text)
	case OpPrintModifiers:
		return fmt.Sprintf("mods(%q)", o.Text)
	case OpNewline:
		return "nl"
	case OpIndent:
		return fmt.Sprintf("indent(%d)", o.N)
	case OpDedent:
		return fmt.Sprintf("dedent(%d)", o.N)
	case OpWriteIndent:
		return "i"
	default:
		return "?"
	}
}

// Recorder is a [codegen.Buffer] that records every call. Types and
// modifiers are rendered with their String methods.
type Recorder struct {
	Ops []Op
}

var _ codegen.Buffer = (*Recorder)(nil)

func (r *Recorder) Print(s string) {
	r.Ops = append(r.Ops, Op{Kind: OpPrint, Text: s})
}

func (r *Recorder) PrintType(t codegen.TypeRef) {
	r.Ops = append(r.Ops, Op{Kind: OpPrintType, Text: t.String()})
}

func (r *Recorder) PrintModifiers(m codegen.Modifiers) {
	r.Ops = append(r.Ops, Op{Kind: OpPrintModifiers, Text: m.String()})
}

func (r *Recorder) Newline() {
	r.Ops = append(r.Ops, Op{Kind: OpNewline})
}

func (r *Recorder) Indent(n int) {
	r.Ops = append(r.Ops, Op{Kind: OpIndent, N: n})
}

func (r *Recorder) Dedent(n int) {
	r.Ops = append(r.Ops, Op{Kind: OpDedent, N: n})
}

func (r *Recorder) WriteIndent() {
	r.Ops = append(r.Ops, Op{Kind: OpWriteIndent})
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, o := range r.Ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Amounts returns the N of every recorded op of the given kind, in order.
func (r *Recorder) Amounts(kind OpKind) []int {
	var out []int
	for _, o := range r.Ops {
		if o.Kind == kind {
			out = append(out, o.N)
		}
	}
	return out
}

// Text concatenates everything printed, with "\n" for each Newline.
// Indentation ops are ignored.
func (r *Recorder) Text() string {
	var b strings.Builder
	for _, o := range r.Ops {
		switch o.Kind {
		case OpPrint, OpPrintType, OpPrintModifiers:
			b.WriteString(o.Text)
		case OpNewline:
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Marker returns a generator that records its label into log each time it
// runs and prints the label to the buffer.
func Marker(label string, log *[]string) codegen.Generator {
	return codegen.GeneratorFunc(func(out codegen.Buffer) {
		*log = append(*log, label)
		out.Print(label)
	})
}
