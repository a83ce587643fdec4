// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

// Pipeline is an ordered sequence of generators. It is itself a
// [Generator]: generating a pipeline generates each registered unit in
// registration order. The zero value is an empty pipeline.
type Pipeline struct {
	id    string
	units []Generator
}

var (
	_ Generator        = (*Pipeline)(nil)
	_ Identified       = (*Pipeline)(nil)
	_ HasID[*Pipeline] = (*Pipeline)(nil)
)

// NewPipeline creates a pipeline holding units in the given order.
func NewPipeline(units ...Generator) *Pipeline {
	p := &Pipeline{units: make([]Generator, 0, len(units))}
	for _, u := range units {
		p.Register(u)
	}
	return p
}

// Register appends g to the pipeline. The same generator may be registered
// more than once. Register panics with a *ConfigError if g is nil.
func (p *Pipeline) Register(g Generator) *Pipeline {
	if IsNil(g) {
		panic(&ConfigError{
			Kind:   KindNilGenerator,
			Owner:  p.id,
			Detail: "cannot register a nil generator",
		})
	}
	p.units = append(p.units, g)
	return p
}

// Generate generates every registered unit into out, in order.
// It only appends; calling it twice emits everything twice.
func (p *Pipeline) Generate(out Buffer) {
	for _, g := range p.units {
		g.Generate(out)
	}
}

// Len returns the number of registered units.
func (p *Pipeline) Len() int {
	return len(p.units)
}

// WithID sets the pipeline identifier.
func (p *Pipeline) WithID(id string) *Pipeline {
	p.id = id
	return p
}

// ID returns the pipeline identifier, or "" if none was set.
func (p *Pipeline) ID() string {
	return p.id
}
