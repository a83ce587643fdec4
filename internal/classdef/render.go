// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package classdef

import (
	"log/slog"
	"slices"

	"github.com/albertocavalcante/jcodegen/codegen"
	"github.com/albertocavalcante/jcodegen/java"
	"github.com/albertocavalcante/jcodegen/jcode"
)

// GeneratedHeader is the first line of every rendered file.
const GeneratedHeader = "Code generated by jcodegen. DO NOT EDIT."

// Config contains rendering configuration.
type Config struct {
	// OutputFile names the single output file. Defaults to the first
	// class name with a ".java" suffix. Ignored when Split is set.
	OutputFile string

	// Split writes one file per class, named after the class.
	Split bool

	// Qualified prints package-qualified type names.
	Qualified bool

	// Source is the definition source (for headers).
	Source string

	// Options contains extra settings.
	Options map[string]string

	// Logger receives debug events; nil discards them.
	Logger *slog.Logger
}

// Option returns an extra setting with default.
func (c Config) Option(key, defaultValue string) string {
	if v, ok := c.Options[key]; ok {
		return v
	}
	return defaultValue
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}

// Output contains generated files.
type Output struct {
	// Files maps filename to content.
	Files map[string][]byte
}

// NewOutput creates a new Output.
func NewOutput() *Output {
	return &Output{Files: make(map[string][]byte)}
}

// Add adds a file to the output.
func (o *Output) Add(name string, content []byte) {
	o.Files[name] = content
}

// Names returns the file names, sorted.
func (o *Output) Names() []string {
	names := make([]string, 0, len(o.Files))
	for name := range o.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Render builds f and generates its Java source.
func Render(f *File, cfg Config) (*Output, error) {
	classes, err := Build(f)
	if err != nil {
		return nil, err
	}
	log := cfg.logger()

	header := []string{GeneratedHeader}
	if cfg.Source != "" {
		header = append(header, "Source: "+cfg.Source)
	}
	preamble := &java.Preamble{Header: header, Package: f.Package, Imports: f.Imports}

	out := NewOutput()
	if cfg.Split {
		for _, cg := range classes {
			name := cg.Name() + ".java"
			unit := codegen.NewPipeline(preamble, cg).WithID(name)
			content := generate(unit, cfg)
			out.Add(name, content)
			log.Debug("Rendered class", "class", cg.Name(), "id", cg.ID(), "members", cg.Len(), "file", name, "bytes", len(content))
		}
		return out, nil
	}

	name := cfg.OutputFile
	if name == "" {
		name = classes[0].Name() + ".java"
	}
	unit := codegen.NewPipeline(preamble).WithID(name)
	for i, cg := range classes {
		if i > 0 {
			unit.Register(blankLine)
		}
		unit.Register(cg)
		log.Debug("Registered class", "class", cg.Name(), "id", cg.ID(), "members", cg.Len(), "file", name)
	}
	content := generate(unit, cfg)
	out.Add(name, content)
	log.Debug("Rendered file", "file", name, "classes", len(classes), "bytes", len(content))
	return out, nil
}

var blankLine = codegen.GeneratorFunc(func(out codegen.Buffer) {
	out.Newline()
})

func generate(g codegen.Generator, cfg Config) []byte {
	sb := jcode.New(jcode.WithFormatter(jcode.JavaFormatter{Qualified: cfg.Qualified}))
	g.Generate(sb)
	return sb.Bytes()
}
