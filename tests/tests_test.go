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

package tests_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/builder"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/toolchain"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/tests"
	"github.com/google/go-cmp/cmp"
	"github.com/nalgeon/be"
	"github.com/pkg/errors"
)

// diagnostics returns the diagnostics of an error, one per line.
func diagnostics(t *testing.T, err error) []string {
	t.Helper()
	if err == nil {
		return nil
	}
	var errs *fmterr.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("unexpected error:\n%+v", err)
	}
	var lines []string
	for _, err := range errs.Errors() {
		lines = append(lines, err.Error())
	}
	return lines
}

func checkDiagnostics(t *testing.T, tc *tests.TestCase, typ tests.AssertionType, err error) bool {
	t.Helper()
	want, ok := tc.Find(typ)
	if !ok {
		if err != nil {
			t.Fatalf("%s: unexpected error:\n%+v", tc, err)
		}
		return true
	}
	if diff := cmp.Diff(want.Lines(), diagnostics(t, err)); diff != "" {
		t.Errorf("%s: unexpected %s (-want +got):\n%s", tc, typ, diff)
	}
	return false
}

func TestCorpus(t *testing.T) {
	cases, err := tests.Load(tests.FS, tests.Root)
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no test case found")
	}
	tc := toolchain.New()
	available := tc.Available() == nil
	for _, test := range cases {
		t.Run(test.Name, func(t *testing.T) {
			bld := builder.New(builder.Options{})
			prog, err := bld.Parse(test.Input)
			if err != nil {
				t.Fatalf("%s: cannot parse program:\n%+v", test, err)
			}
			if !checkDiagnostics(t, test, tests.CheckErrors, bld.Check(prog)) {
				return
			}
			res, err := bld.Build(prog)
			if !checkDiagnostics(t, test, tests.GenErrors, err) {
				return
			}
			ir := res.IR()
			if want, ok := test.Find(tests.IRContains); ok {
				for _, line := range want.Lines() {
					if !strings.Contains(ir, line) {
						t.Errorf("%s: %q not found in IR:\n%s", test, line, ir)
					}
				}
			}
			want, ok := test.Find(tests.Output)
			if !ok || !available {
				return
			}
			irPath := filepath.Join(t.TempDir(), "test.ll")
			be.Err(t, os.WriteFile(irPath, []byte(ir), 0o644), nil)
			got, err := tc.Execute(context.Background(), irPath)
			if err != nil {
				t.Fatalf("%s: cannot execute program:\n%+v", test, err)
			}
			if err := toolchain.Compare(got, want.Content); err != nil {
				t.Errorf("%s: %v", test, err)
			}
		})
	}
}

func TestExtract(t *testing.T) {
	src := "# Corpus\n\n## Test: first\n\n```aguda-ast\n(program)\n```\n\n```check-errors\n(1, 0) a\n\n(2, 0) b\n```\n"
	cases, err := tests.Extract("a.md", []byte(src))
	be.Err(t, err, nil)
	be.Equal(t, len(cases), 1)
	be.Equal(t, cases[0].Name, "first")
	be.Equal(t, cases[0].Line, 3)
	be.Equal(t, cases[0].Input, "(program)")
	assertion, ok := cases[0].Find(tests.CheckErrors)
	be.True(t, ok)
	be.Equal(t, assertion.Lines(), []string{"(1, 0) a", "(2, 0) b"})
}

func TestExtractErrors(t *testing.T) {
	for _, src := range []string{
		"```aguda-ast\n(program)\n```\n",
		"## Test: unknown\n\n```aguda-ast\n(program)\n```\n\n```wasm\n```\n",
		"## Test: no assertion\n\n```aguda-ast\n(program)\n```\n",
		"## Test: no input\n\n```output\n1\n```\n",
	} {
		_, err := tests.Extract("a.md", []byte(src))
		be.Err(t, err)
	}
}
