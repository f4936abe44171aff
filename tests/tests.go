// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package tests embeds the aguda test corpus.
//
// Test cases are written in Markdown files. A test starts with a heading
// `Test: NAME`, followed by an `aguda-ast` fence containing the syntax tree
// of the program, and by assertion fences:
//
//	check-errors  semantic errors, one per line, as `(L, C) message`
//	gen-errors    generation errors, one per line, as `(L, C) message`
//	ir-contains   lines that must be found in the generated LLVM IR
//	output        expected output of the program when executed
package tests

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/yuin/goldmark"
	mdast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/multierr"
)

// FS is the filesystem containing all aguda test files.
//
//go:embed testdata
var FS embed.FS

// Root of the test files in FS.
const Root = "testdata"

// InputFence is the language of the fence containing the program.
const InputFence = "aguda-ast"

// AssertionType is the language of an assertion fence.
type AssertionType string

// Assertion fences.
const (
	CheckErrors AssertionType = "check-errors"
	GenErrors   AssertionType = "gen-errors"
	IRContains  AssertionType = "ir-contains"
	Output      AssertionType = "output"
)

var assertionTypes = map[AssertionType]bool{
	CheckErrors: true,
	GenErrors:   true,
	IRContains:  true,
	Output:      true,
}

type (
	// Assertion checked on a program.
	Assertion struct {
		Type    AssertionType
		Content string
	}

	// TestCase is a program with its assertions.
	TestCase struct {
		File       string
		Line       int
		Name       string
		Input      string
		Assertions []Assertion
	}
)

// Lines returns the non empty lines of the content of an assertion.
func (a Assertion) Lines() []string {
	var lines []string
	for _, line := range strings.Split(a.Content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// Find returns the first assertion of a given type.
func (tc *TestCase) Find(typ AssertionType) (Assertion, bool) {
	for _, a := range tc.Assertions {
		if a.Type == typ {
			return a, true
		}
	}
	return Assertion{}, false
}

// String returns the location of the test case.
func (tc *TestCase) String() string {
	return fmt.Sprintf("%s:%d: %s", tc.File, tc.Line, tc.Name)
}

// Extract the test cases of a Markdown document.
func Extract(file string, src []byte) ([]*TestCase, error) {
	doc := goldmark.New().Parser().Parse(text.NewReader(src))
	var cases []*TestCase
	var current *TestCase
	err := mdast.Walk(doc, func(node mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if !entering {
			return mdast.WalkContinue, nil
		}
		switch nodeT := node.(type) {
		case *mdast.Heading:
			name, ok := strings.CutPrefix(nodeText(nodeT, src), "Test: ")
			if !ok {
				return mdast.WalkContinue, nil
			}
			current = &TestCase{File: file, Line: lineOf(nodeT, src), Name: strings.TrimSpace(name)}
			cases = append(cases, current)
		case *mdast.FencedCodeBlock:
			lang := string(nodeT.Language(src))
			if lang == "" {
				return mdast.WalkContinue, nil
			}
			line := lineOf(nodeT, src)
			if current == nil {
				return mdast.WalkStop, fmt.Errorf("%s:%d: %s fence outside of a test case", file, line, lang)
			}
			content := fenceContent(nodeT, src)
			switch {
			case lang == InputFence:
				if current.Input != "" {
					return mdast.WalkStop, fmt.Errorf("%s:%d: multiple input fences in test %q", file, line, current.Name)
				}
				current.Input = content
			case assertionTypes[AssertionType(lang)]:
				current.Assertions = append(current.Assertions, Assertion{Type: AssertionType(lang), Content: content})
			default:
				return mdast.WalkStop, fmt.Errorf("%s:%d: unknown fence language %q in test %q", file, line, lang, current.Name)
			}
		}
		return mdast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}
	for _, tc := range cases {
		if tc.Input == "" {
			err = multierr.Append(err, fmt.Errorf("%s: no %s fence", tc, InputFence))
		}
		if len(tc.Assertions) == 0 {
			err = multierr.Append(err, fmt.Errorf("%s: no assertion fence", tc))
		}
	}
	if err != nil {
		return nil, err
	}
	return cases, nil
}

// Load all the test cases of the Markdown files of a folder.
// Errors of all the files are returned together.
func Load(fsys fs.FS, dir string) ([]*TestCase, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	var cases []*TestCase
	var errs error
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".md" {
			continue
		}
		file := path.Join(dir, entry.Name())
		src, err := fs.ReadFile(fsys, file)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		fileCases, err := Extract(file, src)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		cases = append(cases, fileCases...)
	}
	return cases, errs
}

func nodeText(node mdast.Node, src []byte) string {
	var buf bytes.Buffer
	_ = mdast.Walk(node, func(n mdast.Node, entering bool) (mdast.WalkStatus, error) {
		if txt, ok := n.(*mdast.Text); entering && ok {
			buf.Write(txt.Segment.Value(src))
		}
		return mdast.WalkContinue, nil
	})
	return buf.String()
}

func fenceContent(block *mdast.FencedCodeBlock, src []byte) string {
	var buf bytes.Buffer
	lines := block.Lines()
	for i := range lines.Len() {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// lineOf returns the line (1-based) where a node starts.
func lineOf(node mdast.Node, src []byte) int {
	if node.Lines().Len() == 0 {
		return 0
	}
	return bytes.Count(src[:node.Lines().At(0).Start], []byte("\n")) + 1
}
