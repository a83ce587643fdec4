// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package classdef

import (
	"bytes"
	"errors"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/albertocavalcante/jcodegen/codegen"
	"github.com/albertocavalcante/jcodegen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "update golden files")

// TestCodegen runs txtar-based golden tests.
func TestCodegen(t *testing.T) {
	for _, tc := range testutil.Load(t, "testdata") {
		t.Run(tc.Name, func(t *testing.T) {
			tc.Check(t, runCodegen, *update)
		})
	}
}

func runCodegen(input []byte, flags []string) (map[string][]byte, error) {
	f, err := Parse(input)
	if err != nil {
		return nil, err
	}
	out, err := Render(f, Config{
		Split:     slices.Contains(flags, "split"),
		Qualified: slices.Contains(flags, "qualified"),
		Source:    "input.yaml",
	})
	if err != nil {
		return nil, err
	}
	return out.Files, nil
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "empty", input: "", wantErr: "empty document"},
		{name: "invalid yaml", input: "classes: [", wantErr: "parse class definitions"},
		{name: "unknown key", input: "classes: [{name: A, colour: red}]", wantErr: "not found"},
		{name: "no classes", input: "classes: []", wantErr: "no classes defined"},
		{name: "empty class", input: "classes: [~]", wantErr: "empty class"},
		{name: "invalid class name", input: "classes: [{name: 1A}]", wantErr: `invalid class name "1A"`},
		{name: "reserved class name", input: "classes: [{name: class}]", wantErr: "invalid class name"},
		{
			name:    "duplicate class name",
			input:   "classes: [{name: Foo, id: a}, {name: Bar}, {name: Foo, id: b}]",
			wantErr: `classes[2]: duplicate class name "Foo" (first at classes[0])`,
		},
		{
			name:    "field without type",
			input:   "classes: [{name: A, members: [{kind: field, name: x}]}]",
			wantErr: `field "x" has no type`,
		},
		{
			name:    "field with body",
			input:   "classes: [{name: A, members: [{kind: field, name: x, type: int, body: [x]}]}]",
			wantErr: "cannot have params, throws or body",
		},
		{
			name:    "method with init",
			input:   "classes: [{name: A, members: [{kind: method, name: m, init: '0'}]}]",
			wantErr: "cannot have accessors or init",
		},
		{
			name:    "missing kind",
			input:   "classes: [{name: A, members: [{name: x}]}]",
			wantErr: "has no kind",
		},
		{
			name:    "unknown kind",
			input:   "classes: [{name: A, members: [{kind: enum, name: x}]}]",
			wantErr: `unknown kind "enum"`,
		},
		{
			name:    "method without name",
			input:   "classes: [{name: A, members: [{kind: method}]}]",
			wantErr: `invalid method name ""`,
		},
		{
			name:    "invalid parameter",
			input:   "classes: [{name: A, members: [{kind: constructor, params: [{name: x}]}]}]",
			wantErr: "invalid parameter",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateCollectsMemberErrors(t *testing.T) {
	input := `
classes:
  - name: A
    members:
      - {kind: field, name: x}
      - {kind: bogus, name: y}
`
	_, err := Parse([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class A: members[0]")
	assert.Contains(t, err.Error(), "class A: members[1]")
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind codegen.ErrorKind
	}{
		{
			name:     "constructor with return type",
			input:    "classes: [{name: Foo, members: [{kind: constructor, type: int}]}]",
			wantKind: codegen.KindConstructorReturn,
		},
		{
			name:     "constructor with other name",
			input:    "classes: [{name: Foo, members: [{kind: constructor, name: Bar}]}]",
			wantKind: codegen.KindConstructorName,
		},
		{
			name:     "duplicate id",
			input:    "classes: [{name: Foo, id: x}, {name: Bar, id: x}]",
			wantKind: codegen.KindDuplicateID,
		},
		{
			name:     "unknown class modifier",
			input:    "classes: [{name: Foo, modifiers: [sealed]}]",
			wantKind: codegen.KindInvalidModifier,
		},
		{
			name:     "unknown member modifier",
			input:    "classes: [{name: Foo, members: [{kind: field, name: x, type: int, modifiers: [const]}]}]",
			wantKind: codegen.KindInvalidModifier,
		},
		{
			name:     "malformed supertype",
			input:    "classes: [{name: Foo, extends: 'java..Object'}]",
			wantKind: codegen.KindInvalidType,
		},
		{
			name:     "malformed parameter type",
			input:    "classes: [{name: Foo, members: [{kind: method, name: m, params: [{name: p, type: 'List<'}]}]}]",
			wantKind: codegen.KindInvalidType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			_, err = Build(f)
			require.Error(t, err)
			assert.ErrorIs(t, err, codegen.ErrConfig)

			var cerr *codegen.ConfigError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.wantKind, cerr.Kind)
		})
	}
}

func TestBuild(t *testing.T) {
	input := `
classes:
  - name: Foo
    id: foo-gen
    members:
      - {kind: field, name: flag, type: boolean, modifiers: [final], accessors: true}
      - {kind: method, name: run}
  - name: Bar
`
	f, err := Parse([]byte(input))
	require.NoError(t, err)

	classes, err := Build(f)
	require.NoError(t, err)
	require.Len(t, classes, 2)

	assert.Equal(t, "Foo", classes[0].Name())
	assert.Equal(t, "foo-gen", classes[0].ID())
	// Final fields get a getter only.
	assert.Equal(t, 3, classes[0].Len())

	assert.Equal(t, "Bar", classes[1].ID())
	assert.Equal(t, 0, classes[1].Len())
}

func TestRender(t *testing.T) {
	f, err := Parse([]byte("classes: [{name: A}, {name: B}]"))
	require.NoError(t, err)

	t.Run("default file name", func(t *testing.T) {
		out, err := Render(f, Config{})
		require.NoError(t, err)
		assert.Equal(t, []string{"A.java"}, out.Names())
		assert.True(t, bytes.HasPrefix(out.Files["A.java"], []byte("// "+GeneratedHeader+"\n\nclass A {\n")))
	})

	t.Run("output file", func(t *testing.T) {
		out, err := Render(f, Config{OutputFile: "All.java"})
		require.NoError(t, err)
		assert.Equal(t, []string{"All.java"}, out.Names())
	})

	t.Run("split ignores output file", func(t *testing.T) {
		out, err := Render(f, Config{OutputFile: "All.java", Split: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"A.java", "B.java"}, out.Names())
	})

	t.Run("logs classes", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		_, err := Render(f, Config{Split: true, Logger: logger})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "class=A")
		assert.Contains(t, buf.String(), "file=B.java")
	})

	t.Run("build error", func(t *testing.T) {
		bad, err := Parse([]byte("classes: [{name: A, id: x}, {name: B, id: x}]"))
		require.NoError(t, err)
		_, err = Render(bad, Config{})
		assert.ErrorIs(t, err, codegen.ErrConfig)
	})
}

func TestRenderRejectsInvalidFile(t *testing.T) {
	tests := []struct {
		name    string
		file    *File
		wantErr string
	}{
		{name: "nil file", file: nil, wantErr: "no classes defined"},
		{name: "no classes", file: &File{}, wantErr: "no classes defined"},
		{name: "nil class", file: &File{Classes: []*Class{{Name: "A"}, nil}}, wantErr: "classes[1]: empty class"},
		{
			name: "same name in split mode",
			file: &File{Classes: []*Class{
				{Name: "Foo", ID: "a", Members: []*Member{{Kind: KindField, Name: "x", Type: "int"}}},
				{Name: "Foo", ID: "b", Members: []*Member{{Kind: KindField, Name: "y", Type: "long"}}},
			}},
			wantErr: `duplicate class name "Foo"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				out *Output
				err error
			)
			require.NotPanics(t, func() { out, err = Render(tt.file, Config{Split: true}) })
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, out)

			_, err = Build(tt.file)
			assert.Error(t, err)
		})
	}
}

func TestConfigOption(t *testing.T) {
	cfg := Config{Options: map[string]string{"indent": "4"}}
	assert.Equal(t, "4", cfg.Option("indent", "2"))
	assert.Equal(t, "x", cfg.Option("missing", "x"))
	assert.Equal(t, "x", Config{}.Option("missing", "x"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "classes.yaml")
	require.NoError(t, os.WriteFile(path, []byte("package: p\nclasses: [{name: A}]\n"), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "p", f.Package)
	require.Len(t, f.Classes, 1)
	assert.Equal(t, "A", f.Classes[0].Name)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseJSON(t *testing.T) {
	f, err := Parse([]byte(`{"classes": [{"name": "A", "members": [{"kind": "field", "name": "x", "type": "int"}]}]}`))
	require.NoError(t, err)
	require.Len(t, f.Classes[0].Members, 1)
	assert.Equal(t, KindField, f.Classes[0].Members[0].Kind)
}
