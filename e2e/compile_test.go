// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

//go:build e2e

// Package e2e provides end-to-end compile verification tests.
// These tests verify that generated Java code is accepted by javac.
//
// Run with: go test -tags e2e ./e2e/... -v
package e2e

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"
)

const compileInput = `
package com.example
imports: [java.util.Objects, java.io.Serializable]
classes:
  - name: Shape
    modifiers: [public, abstract]
    members:
      - kind: method
        name: area
        type: double
        modifiers: [public, abstract]
  - name: Point
    doc: [A point in the plane.]
    modifiers: [public]
    extends: Shape
    implements: [java.io.Serializable]
    members:
      - {kind: field, name: m_x, type: int, modifiers: [private], accessors: true}
      - {kind: field, name: y, type: int, modifiers: [private, final], accessors: true}
      - {kind: field, name: instances, type: int, modifiers: [private, static], accessors: true}
      - kind: constructor
        modifiers: [public]
        params: [{name: x, type: int}, {name: y, type: int}]
        body: [this.m_x = x;, this.y = y;, instances++;]
      - kind: method
        name: area
        type: double
        modifiers: [public]
        annotations: ["@Override"]
        body: [return 0;]
      - kind: method
        name: hashCode
        type: int
        modifiers: [public]
        annotations: ["@Override"]
        body: ["return Objects.hash(m_x, y);"]
      - kind: method
        name: parse
        type: Point
        modifiers: [public, static]
        params: [{name: s, type: java.lang.String}]
        throws: [java.io.IOException]
        body: ["if (s.isEmpty()) throw new java.io.IOException(\"empty\");", "return new Point(0, 0);"]
`

// javacPath finds javac in PATH or under a well-known JDK home.
func javacPath() string {
	if p, err := exec.LookPath("javac"); err == nil {
		return p
	}
	for _, home := range []string{os.Getenv("JAVA_HOME"), findJDKHome()} {
		if home == "" {
			continue
		}
		p := filepath.Join(home, "bin", "javac")
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p
		}
	}
	return ""
}

// findJDKHome resolves a JDK from sdkman or from java in PATH.
func findJDKHome() string {
	homeDir, _ := os.UserHomeDir()
	current := filepath.Join(homeDir, ".sdkman", "candidates", "java", "current")
	if _, err := os.Stat(filepath.Join(current, "bin", "javac")); err == nil {
		return current
	}
	if javaPath, err := exec.LookPath("java"); err == nil {
		if real, err := filepath.EvalSymlinks(javaPath); err == nil {
			return filepath.Dir(filepath.Dir(real))
		}
	}
	return ""
}

// TestJavaOutputCompiles verifies that split output compiles with javac.
func TestJavaOutputCompiles(t *testing.T) {
	javac := javacPath()
	if javac == "" {
		t.Skip("javac not installed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	tmpDir := t.TempDir()
	inputPath := filepath.Join(tmpDir, "classes.yaml")
	if err := os.WriteFile(inputPath, []byte(compileInput), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	srcDir := filepath.Join(tmpDir, "src", "com", "example") + string(filepath.Separator)
	cmd := exec.CommandContext(ctx, binary, "-i", inputPath, "-split", "-o", srcDir)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("jcodegen: %v\n%s", err, out)
	}

	sources, err := filepath.Glob(filepath.Join(srcDir, "*.java"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	slices.Sort(sources)
	want := []string{filepath.Join(srcDir, "Point.java"), filepath.Join(srcDir, "Shape.java")}
	if !slices.Equal(sources, want) {
		t.Fatalf("generated %v, want %v", sources, want)
	}

	t.Run("javac", func(t *testing.T) {
		start := time.Now()
		args := append([]string{"-d", filepath.Join(tmpDir, "classes")}, sources...)
		cmd := exec.CommandContext(ctx, javac, args...)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("javac failed: %v\n%s", err, strings.TrimSpace(string(out)))
		}
		t.Logf("javac: %v", time.Since(start))
	})
}
