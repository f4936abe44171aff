// Copyright 2024 Google LLC
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

package fmterr_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
)

func ident(line, col int) *ast.Ident {
	return &ast.Ident{Src: ast.Pos{Line: line, Col: col}, Name: "x"}
}

func TestAppenderCap(t *testing.T) {
	app := fmterr.NewAppender(fmterr.SemanticError, 2)
	for i := range 5 {
		app.Appendf(ident(i+1, 0), "error %d", i)
	}
	if got := app.Total(); got != 5 {
		t.Errorf("Total() = %d, want 5", got)
	}
	errs := app.Errors()
	if errs == nil {
		t.Fatal("Errors() = nil, want errors")
	}
	if got := len(errs.Errors()); got != 2 {
		t.Errorf("len(Errors()) = %d, want 2", got)
	}
	want := strings.Join([]string{
		"(1, 0) error 0",
		"(2, 0) error 1",
		"Program has 5 semantic error(s), 2 or less, were shown above as requested.",
	}, "\n")
	if got := errs.Error(); got != want {
		t.Errorf("got:\n%s\nbut want:\n%s\ndiff:\n%s", got, want, cmp.Diff(got, want))
	}
}

func TestAppenderEmpty(t *testing.T) {
	app := fmterr.NewAppender(fmterr.SemanticError, 0)
	if !app.Empty() {
		t.Errorf("new appender is not empty")
	}
	if app.Errors() != nil {
		t.Errorf("Errors() of an empty appender is not nil")
	}
	if err := app.ToError(); err != nil {
		t.Errorf("ToError() = %v, want nil", err)
	}
	if got := app.Max(); got != fmterr.DefaultMaxErrors {
		t.Errorf("Max() = %d, want %d", got, fmterr.DefaultMaxErrors)
	}
}

func TestAppenderDeduplicate(t *testing.T) {
	app := fmterr.NewAppender(fmterr.GenerationError, 10).Deduplicate()
	app.Appendf(ident(3, 4), "first")
	app.Appendf(ident(3, 4), "second")
	app.Appendf(ident(3, 5), "third")
	app.Appendf(&ast.Ident{Name: "nopos"}, "no position")
	app.Appendf(&ast.Ident{Name: "nopos"}, "no position")
	if got := app.Total(); got != 4 {
		t.Errorf("Total() = %d, want 4", got)
	}
}

func TestKindOf(t *testing.T) {
	err := fmterr.Errorf(fmterr.BuildError, ast.Pos{}, "llc failed")
	kind, ok := fmterr.KindOf(fmt.Errorf("wrapped: %w", err))
	if !ok || kind != fmterr.BuildError {
		t.Errorf("KindOf() = %v, %t, want %v, true", kind, ok, fmterr.BuildError)
	}
	app := fmterr.NewAppender(fmterr.SemanticError, 1)
	app.Appendf(ident(1, 1), "bad")
	kind, ok = fmterr.KindOf(app.ToError())
	if !ok || kind != fmterr.SemanticError {
		t.Errorf("KindOf() = %v, %t, want %v, true", kind, ok, fmterr.SemanticError)
	}
	if _, ok := fmterr.KindOf(errors.New("plain")); ok {
		t.Errorf("KindOf(plain error) returned true")
	}
}

func TestInternal(t *testing.T) {
	err := fmterr.Internalf(ast.Pos{Line: 2, Col: 1}, "unbalanced scope")
	kind, _ := fmterr.KindOf(err)
	if kind != fmterr.InternalError {
		t.Errorf("kind = %v, want %v", kind, fmterr.InternalError)
	}
	if !strings.Contains(err.Error(), "unbalanced scope") {
		t.Errorf("internal error %q does not contain its cause", err.Error())
	}
	if again := fmterr.Internal(err); again != err {
		t.Errorf("Internal(internal error) wrapped the error again")
	}
	if verbose := fmt.Sprintf("%+v", err); !strings.Contains(verbose, "Error generated at:") {
		t.Errorf("verbose formatting does not contain a stack trace:\n%s", verbose)
	}
}

func TestRender(t *testing.T) {
	src := "let x : Int =\n  true\n"
	app := fmterr.NewAppender(fmterr.SemanticError, 10)
	app.Appendf(&ast.BoolLit{Src: ast.Pos{Line: 2, Col: 2}, Value: true}, "Declared type Int does not match actual type Bool")
	build := fmterr.Errorf(fmterr.BuildError, ast.Pos{}, "llc: exit status 1")
	var b strings.Builder
	fmterr.Render(&b, multierr.Append(app.ToError(), build), src)
	want := strings.Join([]string{
		"SemanticError: (2, 2) Declared type Int does not match actual type Bool",
		"↳    true",
		"     ^",
		"Program has 1 semantic error(s), 10 or less, were shown above as requested.",
		"BuildError: llc: exit status 1",
		"",
	}, "\n")
	if got := b.String(); got != want {
		t.Errorf("got:\n%s\nbut want:\n%s\ndiff:\n%s", got, want, cmp.Diff(got, want))
	}
}
