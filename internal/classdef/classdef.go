// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package classdef loads class-definition documents and renders them into
// Java source through the codegen and java packages.
//
// A document is YAML (JSON is accepted, being a YAML subset):
//
//	package: com.example
//	imports: [java.util.List]
//	classes:
//	  - name: Point
//	    modifiers: [public]
//	    members:
//	      - {kind: field, name: x, type: int, modifiers: [private]}
//	      - {kind: constructor, params: [{name: x, type: int}], body: ["this.x = x;"]}
package classdef

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a class-definition document.
type File struct {
	// Package is the Java package of the generated classes.
	Package string `yaml:"package,omitempty"`

	// Imports are written after the package declaration.
	Imports []string `yaml:"imports,omitempty"`

	// Classes are generated in order.
	Classes []*Class `yaml:"classes"`
}

// Class describes one top-level class.
type Class struct {
	Name string `yaml:"name"`

	// ID identifies the class generator; defaults to Name.
	ID string `yaml:"id,omitempty"`

	// Doc lines become a Javadoc block above the class.
	Doc []string `yaml:"doc,omitempty"`

	Modifiers  []string `yaml:"modifiers,omitempty"`
	Extends    string   `yaml:"extends,omitempty"`
	Implements []string `yaml:"implements,omitempty"`

	// Annotations are pre-rendered lines such as "@Deprecated".
	Annotations []string `yaml:"annotations,omitempty"`

	// Members are emitted in order.
	Members []*Member `yaml:"members,omitempty"`
}

// MemberKind identifies the kind of a class member.
type MemberKind string

const (
	KindField       MemberKind = "field"
	KindConstructor MemberKind = "constructor"
	KindMethod      MemberKind = "method"
)

// Member describes a field, constructor or method.
type Member struct {
	Kind MemberKind `yaml:"kind"`

	// Name is required for fields and methods. Constructors default to the
	// class name.
	Name string `yaml:"name,omitempty"`

	// Type is the field type or the method return type (default void).
	Type string `yaml:"type,omitempty"`

	Doc         []string `yaml:"doc,omitempty"`
	Modifiers   []string `yaml:"modifiers,omitempty"`
	Annotations []string `yaml:"annotations,omitempty"`

	// Init is the field initializer expression.
	Init string `yaml:"init,omitempty"`

	// Accessors adds a getter, and a setter unless the field is final,
	// right after the field.
	Accessors bool `yaml:"accessors,omitempty"`

	Params []Param  `yaml:"params,omitempty"`
	Throws []string `yaml:"throws,omitempty"`
	Body   []string `yaml:"body,omitempty"`
}

// Param is a method parameter.
type Param struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Load reads and parses the document at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read class definitions: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse parses a document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse class definitions: empty document")
		}
		return nil, fmt.Errorf("parse class definitions: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}
