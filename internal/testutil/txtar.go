// SPDX-License-Identifier: MIT

// Package testutil provides golden-file helpers for txtar test archives.
//
// An archive holds a description, an "input.yaml" file and one "want/<name>"
// file per expected output file. A "Flags: split, qualified" line in the
// description is passed on to the generator.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
)

// InputFile is the archive member holding the generator input.
const InputFile = "input.yaml"

// Case is a golden test case parsed from a txtar archive.
type Case struct {
	// Name is the archive file name without extension.
	Name string

	// Path is the archive location, rewritten on update.
	Path string

	// Flags come from the "Flags:" description line.
	Flags []string

	// Input is the contents of InputFile.
	Input []byte

	// Want maps output file names to expected content.
	Want map[string][]byte

	archive *txtar.Archive
}

// GenerateFunc generates output files from a case input.
type GenerateFunc func(input []byte, flags []string) (map[string][]byte, error)

// ParseCase parses an archive into a Case.
func ParseCase(name string, ar *txtar.Archive) (*Case, error) {
	c := &Case{
		Name:    name,
		Flags:   parseFlags(string(ar.Comment)),
		Want:    make(map[string][]byte),
		archive: ar,
	}

	for _, f := range ar.Files {
		switch {
		case f.Name == InputFile:
			c.Input = f.Data
		case strings.HasPrefix(f.Name, "want/"):
			c.Want[strings.TrimPrefix(f.Name, "want/")] = f.Data
		default:
			return nil, fmt.Errorf("unexpected file in archive: %q (expected %s or want/*)", f.Name, InputFile)
		}
	}

	if c.Input == nil {
		return nil, fmt.Errorf("missing %s in archive", InputFile)
	}
	if len(c.Want) == 0 {
		return nil, fmt.Errorf("missing want/* files in archive")
	}
	return c, nil
}

// parseFlags returns the comma-separated values of the first "Flags:" line.
func parseFlags(description string) []string {
	for _, line := range strings.Split(description, "\n") {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), "Flags:")
		if !ok {
			continue
		}
		var flags []string
		for _, f := range strings.Split(rest, ",") {
			if f = strings.TrimSpace(f); f != "" {
				flags = append(flags, f)
			}
		}
		return flags
	}
	return nil
}

// Load parses every *.txtar archive in dir, sorted by name. It fails the
// test if there are none.
func Load(t *testing.T, dir string) []*Case {
	t.Helper()

	files, err := filepath.Glob(filepath.Join(dir, "*.txtar"))
	if err != nil {
		t.Fatalf("glob %q: %v", dir, err)
	}
	if len(files) == 0 {
		t.Fatalf("no txtar files found in %q", dir)
	}
	slices.Sort(files)

	cases := make([]*Case, 0, len(files))
	for _, file := range files {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatalf("parse %q: %v", file, err)
		}
		c, err := ParseCase(strings.TrimSuffix(filepath.Base(file), ".txtar"), ar)
		if err != nil {
			t.Fatalf("parse case %q: %v", file, err)
		}
		c.Path = file
		cases = append(cases, c)
	}
	return cases
}

// Check runs generate on the case input. With update set the archive is
// rewritten with the generated files; otherwise they are compared with the
// expected ones.
func (c *Case) Check(t *testing.T, generate GenerateFunc, update bool) {
	t.Helper()

	got, err := generate(c.Input, c.Flags)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if update {
		if c.Path == "" {
			t.Fatalf("case %q has no archive path", c.Name)
		}
		if err := os.WriteFile(c.Path, txtar.Format(UpdateArchive(c.archive, got)), 0o644); err != nil {
			t.Fatalf("write updated file: %v", err)
		}
		t.Logf("updated %s", c.Path)
		return
	}

	Compare(t, c.Want, got)
}

// Compare reports missing, unexpected and differing files. Trailing
// whitespace and trailing newlines are ignored.
func Compare(t *testing.T, want, got map[string][]byte) {
	t.Helper()

	for name := range want {
		if _, ok := got[name]; !ok {
			t.Errorf("missing output file: %q", name)
		}
	}
	for name := range got {
		if _, ok := want[name]; !ok {
			t.Errorf("unexpected output file: %q", name)
		}
	}

	for name, wantContent := range want {
		gotContent, ok := got[name]
		if !ok {
			continue
		}
		if diff := cmp.Diff(Normalize(wantContent), Normalize(gotContent)); diff != "" {
			t.Errorf("file %q mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// Normalize trims trailing whitespace from each line and trailing newlines
// from the content.
func Normalize(content []byte) string {
	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t\r")
	}
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// UpdateArchive returns a copy of ar whose want/* files are replaced by got.
// The description and input are kept.
func UpdateArchive(ar *txtar.Archive, got map[string][]byte) *txtar.Archive {
	result := &txtar.Archive{Comment: ar.Comment}

	for _, f := range ar.Files {
		if f.Name == InputFile {
			result.Files = append(result.Files, f)
			break
		}
	}

	names := make([]string, 0, len(got))
	for name := range got {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		content := got[name]
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content = append(content, '\n')
		}
		result.Files = append(result.Files, txtar.File{Name: "want/" + name, Data: content})
	}
	return result
}
