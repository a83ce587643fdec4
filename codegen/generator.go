// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package codegen defines the composition model for text code generators.
//
// A [Generator] appends its representation to a shared [Buffer]. A
// [Pipeline] is an ordered sequence of generators and is itself a
// generator, so pipelines nest. Emission order is registration order.
package codegen

import "reflect"

// Generator is the interface implemented by every generator unit.
type Generator interface {
	// Generate appends the unit's representation to out.
	Generate(out Buffer)
}

// GeneratorFunc adapts an ordinary function to a [Generator].
type GeneratorFunc func(out Buffer)

// Generate calls f(out).
func (f GeneratorFunc) Generate(out Buffer) {
	f(out)
}

// HasID is implemented by builders that carry an optional identifier.
// S is the concrete builder type, so WithID chains without a cast.
type HasID[S any] interface {
	WithID(id string) S
	ID() string
}

// Identified is a generator that carries an identifier.
type Identified interface {
	Generator
	ID() string
}

// IsNil reports whether g is nil, including a nil pointer, func, map,
// slice or chan wrapped in a non-nil interface value.
func IsNil(g Generator) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
