// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package codegen

import (
	"slices"
	"sync"
)

// Registry indexes identified generators by ID so an orchestrator can look
// them up and reject duplicates. Insertion order is remembered. The zero
// value is an empty registry.
type Registry struct {
	mu    sync.RWMutex
	byID  map[string]Identified
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Identified)}
}

// Register adds g under g.ID(). It panics with a *ConfigError if g is nil,
// has an empty ID, or its ID is already registered.
func (r *Registry) Register(g Identified) {
	if IsNil(g) {
		panic(&ConfigError{Kind: KindNilGenerator, Detail: "cannot register a nil generator"})
	}
	id := g.ID()
	if id == "" {
		panic(&ConfigError{Kind: KindInvalidID, Detail: "generator has no id"})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byID == nil {
		r.byID = make(map[string]Identified)
	}
	if _, exists := r.byID[id]; exists {
		panic(&ConfigError{Kind: KindDuplicateID, Member: id, Detail: "id already registered"})
	}
	r.byID[id] = g
	r.order = append(r.order, id)
}

// Get returns the generator registered under id.
func (r *Registry) Get(id string) (Identified, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.byID[id]
	return g, ok
}

// List returns all registered IDs, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := slices.Clone(r.order)
	slices.Sort(ids)
	return ids
}

// All returns all registered generators in registration order.
func (r *Registry) All() []Identified {
	r.mu.RLock()
	defer r.mu.RUnlock()
	gens := make([]Identified, 0, len(r.order))
	for _, id := range r.order {
		gens = append(gens, r.byID[id])
	}
	return gens
}

// Len returns the number of registered generators.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.order)
}
