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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/google/go-cmp/cmp"
)

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{"-mode", "ir", "-timeout", "5s", "-clang_args", "-lm", "tests/fib.ast"})
	if err != nil {
		t.Fatal(err)
	}
	want := &config{
		mode:      modeIR,
		maxErrors: fmterr.DefaultMaxErrors,
		input:     "tests/fib.ast",
		output:    "tests/fib.ll",
		expect:    "tests/fib.expect",
		timeout:   5 * time.Second,
		llc:       "llc",
		clang:     "clang",
		clangArgs: []string{"-no-pie", "-lm"},
	}
	if diff := cmp.Diff(want, cfg, cmp.AllowUnexported(config{})); diff != "" {
		t.Errorf("unexpected configuration (-want +got):\n%s", diff)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"a.ast", "b.ast"},
		{"-mode", "parser", "a.ast"},
	} {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%q): expected an error", args)
		}
	}
}

func compileFile(t *testing.T, mode, program string) (string, error) {
	t.Helper()
	input := filepath.Join(t.TempDir(), "test.ast")
	if err := os.WriteFile(input, []byte(program), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := parseFlags([]string{"-mode", mode, input})
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	err = compile(context.Background(), cfg, &out)
	return out.String(), err
}

const program = `(program (fun @1:0 main (_) (-> (Unit) Unit) (call @1:30 print 42)))`

func TestCompileModes(t *testing.T) {
	out, err := compileFile(t, modeCheck, program)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != valid {
		t.Errorf("check: got %q, want %q", got, valid)
	}

	out, err = compileFile(t, modeAST, program)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "print(42)") {
		t.Errorf("ast: %q does not contain the call to print", out)
	}

	if _, err := compileFile(t, modeIR, program); err != nil {
		t.Fatal(err)
	}
}

func TestCompileErrors(t *testing.T) {
	_, err := compileFile(t, modeCheck, `(program (var @2:4 x Int true))`)
	if err == nil {
		t.Fatal("expected an error")
	}
	var out bytes.Buffer
	fmterr.Render(&out, err, "\nlet x : Int = true\n")
	got := out.String()
	for _, want := range []string{
		"SemanticError: (2, 4) Declared type Int does not match actual type Bool",
		"let x : Int = true",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered errors %q do not contain %q", got, want)
		}
	}
}
