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

package builder_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/builder"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/nalgeon/be"
	"github.com/pkg/errors"
)

const valid = `(program
(var @1:0 n Int 10)
(fun @2:0 fib (n) (-> (Int) Int)
  (if @3:2 (<= n 1) n (+ (call fib (- n 1)) (call fib (- n 2)))))
(fun @4:0 main (_) (-> (Unit) Unit) (call @4:30 print (call @4:36 fib n))))`

func TestBuild(t *testing.T) {
	res, err := builder.New(builder.Options{}).BuildSource(valid)
	be.Err(t, err, nil)
	ir := res.IR()
	be.True(t, strings.Contains(ir, "define i32 @fib(i32 %n)"))
	be.True(t, strings.Contains(ir, "define i32 @main()"))
}

func TestBuildFile(t *testing.T) {
	fsys := fstest.MapFS{"fib.ast": &fstest.MapFile{Data: []byte(valid)}}
	bld := builder.New(builder.Options{})
	prog, err := bld.ParseFile(fsys, "fib.ast")
	be.Err(t, err, nil)
	_, err = bld.Build(prog)
	be.Err(t, err, nil)

	_, err = bld.ParseFile(fsys, "missing.ast")
	be.Err(t, err)
}

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want fmterr.Kind
	}{
		{
			name: "lexical",
			src:  `(program (var x Int 1)`,
			want: fmterr.LexicalError,
		},
		{
			name: "syntactic",
			src:  `(program (var x Int))`,
			want: fmterr.SyntacticError,
		},
		{
			name: "semantic",
			src:  `(program (var @1:0 x Int true))`,
			want: fmterr.SemanticError,
		},
		{
			name: "generation",
			src:  `(program (var @1:0 s String (str @1:10 "s")))`,
			want: fmterr.GenerationError,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := builder.New(builder.Options{}).BuildSource(test.src)
			be.Err(t, err)
			kind, ok := fmterr.KindOf(err)
			be.True(t, ok)
			be.Equal(t, kind, test.want)
		})
	}
}

func TestMaxErrors(t *testing.T) {
	var decls strings.Builder
	for range 5 {
		decls.WriteString(`(var @1:0 x Int true)`)
	}
	_, err := builder.New(builder.Options{MaxErrors: 2}).BuildSource("(program " + decls.String() + ")")
	var errs *fmterr.Errors
	be.True(t, errors.As(err, &errs))
	be.Equal(t, len(errs.Errors()), 2)
	be.True(t, errs.Total() > 2)
}
