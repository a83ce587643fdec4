// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command jcodegen generates Java classes from a class-definition document.
//
// Usage:
//
//	jcodegen -i classes.yaml [flags]
//
// Flags:
//
//	-i           Class-definition document (YAML or JSON)
//	-o           Output directory or file (default: stdout)
//	-c           Comma-separated classes to generate (default: all)
//	--split      One file per class
//	--qualified  Print package-qualified type names
//	--dry-run    Print to stdout without writing files
//	--verbose    Debug logging on stderr
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/albertocavalcante/jcodegen/internal/classdef"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("jcodegen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	showVersion := fs.Bool("version", false, "Show version information")
	showHelp := fs.Bool("help", false, "Show help")

	input := fs.String("i", "", "Class-definition document (YAML or JSON)")
	output := fs.String("o", "", "Output directory or file (default: stdout)")
	classes := fs.String("c", "", "Comma-separated classes to generate (default: all)")
	resolveDeps := fs.Bool("resolve-deps", true, "Include classes referenced by selected classes")
	split := fs.Bool("split", false, "Write one file per class")
	qualified := fs.Bool("qualified", false, "Print package-qualified type names")
	dryRun := fs.Bool("dry-run", false, "Print to stdout without writing files")
	verbose := fs.Bool("verbose", false, "Verbose output")

	fs.Usage = func() {
		fmt.Fprint(stderr, `jcodegen - Java Class Generator

Generate Java classes from a YAML or JSON class-definition document.

Usage:
  jcodegen -i classes.yaml [flags]

Flags:
  -i string        Class-definition document (YAML or JSON)
  -o string        Output directory or file (default: stdout)
  -c string        Comma-separated classes to generate (default: all)
  --resolve-deps   Include classes referenced by selected classes (default: true)
  --split          Write one file per class
  --qualified      Print package-qualified type names
  --dry-run        Print to stdout without writing files
  --verbose        Verbose output
  --version        Show version information
  --help           Show this help

Examples:
  # Generate to stdout
  jcodegen -i classes.yaml

  # One file per class in a directory
  jcodegen -i classes.yaml -split -o ./src/main/java/com/example/

  # Generate specific classes and the classes they reference
  jcodegen -i classes.yaml -c Order,Customer -o ./Model.java

  # Everything in one file
  jcodegen -i classes.yaml -o ./Model.java

`)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if *showHelp {
		fs.Usage()
		return nil
	}

	if *showVersion {
		fmt.Fprintf(stdout, "jcodegen %s (commit: %s, built: %s)\n", version, commit, date)
		return nil
	}

	if *input == "" && fs.NArg() == 1 {
		*input = fs.Arg(0)
	}
	if *input == "" {
		fs.Usage()
		return fmt.Errorf("missing input: use -i <file>")
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	f, err := classdef.Load(*input)
	if err != nil {
		return err
	}
	logger.Debug("Loaded class definitions", "path", *input, "package", f.Package, "classes", len(f.Classes))

	if *classes != "" {
		names := strings.Split(*classes, ",")
		for i := range names {
			names[i] = strings.TrimSpace(names[i])
		}
		f, err = f.Select(names, *resolveDeps)
		if err != nil {
			return err
		}
		logger.Debug("Selected classes", "requested", len(names), "selected", len(f.Classes))
	}

	toDir := *output != "" && (strings.HasSuffix(*output, "/") || isDir(*output))

	cfg := classdef.Config{
		Split:     *split,
		Qualified: *qualified,
		Source:    filepath.Base(*input),
		Logger:    logger,
	}
	if *output != "" && !toDir {
		cfg.OutputFile = filepath.Base(*output)
	}

	out, err := classdef.Render(f, cfg)
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	if *dryRun || *output == "" {
		return printFiles(stdout, out)
	}

	if toDir {
		if err := os.MkdirAll(*output, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
		for _, name := range out.Names() {
			path := filepath.Join(*output, name)
			if err := os.WriteFile(path, out.Files[name], 0o644); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
			logger.Info("Wrote file", "path", path)
		}
		return nil
	}

	names := out.Names()
	if len(names) > 1 {
		return fmt.Errorf("-split writes %d files: -o must be a directory", len(names))
	}
	if err := os.MkdirAll(filepath.Dir(*output), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(*output, out.Files[names[0]], 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	logger.Info("Wrote file", "path", *output)
	return nil
}

// printFiles writes every file to w. Files are preceded by a marker line
// when there is more than one.
func printFiles(w io.Writer, out *classdef.Output) error {
	names := out.Names()
	for _, name := range names {
		if len(names) > 1 {
			if _, err := fmt.Fprintf(w, "// File: %s\n", name); err != nil {
				return err
			}
		}
		if _, err := w.Write(out.Files[name]); err != nil {
			return err
		}
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
