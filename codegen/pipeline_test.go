// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/jcodegen/codegen"
	"github.com/albertocavalcante/jcodegen/codegen/codegentest"
)

type nopGenerator struct{}

func (*nopGenerator) Generate(codegen.Buffer) {}

func TestPipeline_GenerateInRegistrationOrder(t *testing.T) {
	var log []string
	p := &codegen.Pipeline{}
	var want []string
	for i := range 10 {
		label := fmt.Sprintf("u%d", i)
		want = append(want, label)
		p.Register(codegentest.Marker(label, &log))
	}

	rec := &codegentest.Recorder{}
	p.Generate(rec)

	assert.Equal(t, want, log)
	assert.Equal(t, "u0u1u2u3u4u5u6u7u8u9", rec.Text())
}

func TestPipeline_RegisterNil(t *testing.T) {
	tests := []struct {
		name string
		unit codegen.Generator
	}{
		{name: "nil interface", unit: nil},
		{name: "nil pointer", unit: (*nopGenerator)(nil)},
		{name: "nil func", unit: codegen.GeneratorFunc(nil)},
		{name: "nil pipeline", unit: (*codegen.Pipeline)(nil)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var log []string
			p := codegen.NewPipeline(codegentest.Marker("a", &log)).WithID("body")

			err := codegen.Catch(func() { p.Register(tc.unit) })

			var ce *codegen.ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, codegen.KindNilGenerator, ce.Kind)
			assert.Equal(t, "body", ce.Owner)
			assert.True(t, errors.Is(err, codegen.ErrConfig))
			assert.Equal(t, 1, p.Len())

			rec := &codegentest.Recorder{}
			p.Generate(rec)
			assert.Equal(t, "a", rec.Text())
		})
	}
}

func TestPipeline_Duplicates(t *testing.T) {
	var log []string
	m := codegentest.Marker("x", &log)
	p := codegen.NewPipeline(m, m)
	p.Register(m)

	p.Generate(&codegentest.Recorder{})
	assert.Equal(t, []string{"x", "x", "x"}, log)
}

func TestPipeline_Nested(t *testing.T) {
	var log []string
	inner := codegen.NewPipeline(
		codegentest.Marker("b", &log),
		codegentest.Marker("c", &log),
	)
	deeper := codegen.NewPipeline(codegen.NewPipeline(codegentest.Marker("d", &log)))
	outer := codegen.NewPipeline(codegentest.Marker("a", &log), inner, deeper, codegentest.Marker("e", &log))

	rec := &codegentest.Recorder{}
	outer.Generate(rec)

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, log)
	assert.Equal(t, 4, outer.Len())
}

func TestPipeline_GenerateTwiceAppends(t *testing.T) {
	var log []string
	p := codegen.NewPipeline(codegentest.Marker("a", &log), codegentest.Marker("b", &log))

	rec := &codegentest.Recorder{}
	rec.Print("prefix:")
	p.Generate(rec)
	p.Generate(rec)

	assert.Equal(t, "prefix:abab", rec.Text())
}

func TestPipeline_Empty(t *testing.T) {
	var p codegen.Pipeline
	rec := &codegentest.Recorder{}
	p.Generate(rec)

	assert.Empty(t, rec.Ops)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, "", p.ID())
}

func TestPipeline_WithID(t *testing.T) {
	p := codegen.NewPipeline().WithID("first")
	assert.Equal(t, "first", p.ID())

	// Chaining keeps the concrete type.
	var chained *codegen.Pipeline = p.WithID("second").Register(&nopGenerator{})
	assert.Same(t, p, chained)
	assert.Equal(t, "second", p.ID())
}

func TestGeneratorFunc(t *testing.T) {
	called := 0
	g := codegen.GeneratorFunc(func(out codegen.Buffer) {
		called++
		out.Print("hi")
	})

	rec := &codegentest.Recorder{}
	g.Generate(rec)

	assert.Equal(t, 1, called)
	assert.Equal(t, "hi", rec.Text())
}

func TestIsNil(t *testing.T) {
	assert.True(t, codegen.IsNil(nil))
	assert.True(t, codegen.IsNil((*nopGenerator)(nil)))
	assert.False(t, codegen.IsNil(&nopGenerator{}))
	assert.False(t, codegen.IsNil(codegen.GeneratorFunc(func(codegen.Buffer) {})))
}
