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

package astbuilder_test

import (
	"strings"
	"testing"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/internal/astbuilder"
	"github.com/google/go-cmp/cmp"
)

func pos(line, col int) ast.Pos {
	return ast.Pos{Line: line, Col: col}
}

func TestParseProgram(t *testing.T) {
	src := `
(program
  (var @1:0 limit Int (- @1:16 5))
  (fun @2:0 inc (n) (-> (Int) Int)
    (seq @3:2
      (let @3:2 y (array Int 2) (new @3:20 Int (dim 2 (new Int (dim 0 0)))))
      (+ @4:2 n 1))))
`
	got, err := astbuilder.Parse(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := &ast.Program{
		Decls: []ast.Decl{
			&ast.VarDecl{
				Src:   pos(1, 0),
				Name:  "limit",
				Type:  &ast.BasicType{Src: pos(1, 0), Name: "Int"},
				Value: &ast.Unary{Src: pos(1, 16), Op: ast.Neg, X: &ast.IntLit{Src: pos(1, 16), Value: 5}},
			},
			&ast.FuncDecl{
				Src:    pos(2, 0),
				Name:   "inc",
				Params: []*ast.Ident{{Src: pos(2, 0), Name: "n"}},
				Type: &ast.FuncType{
					Src: pos(2, 0),
					Params: &ast.TypeList{
						Src:   pos(2, 0),
						Types: []ast.TypeExpr{&ast.BasicType{Src: pos(2, 0), Name: "Int"}},
					},
					Result: &ast.BasicType{Src: pos(2, 0), Name: "Int"},
				},
				Body: &ast.Sequence{
					Src: pos(3, 2),
					Sep: ast.Semicolon,
					Exprs: []ast.Expr{
						&ast.Let{
							Src:  pos(3, 2),
							Name: "y",
							Type: &ast.ArrayType{
								Src:  pos(3, 2),
								Elem: &ast.BasicType{Src: pos(3, 2), Name: "Int"},
								Dims: 2,
							},
							Value: &ast.NewArray{
								Src:  pos(3, 20),
								Elem: "Int",
								Dims: []ast.Dim{{
									Size: &ast.IntLit{Src: pos(3, 20), Value: 2},
									Init: &ast.NewArray{
										Src:  pos(3, 20),
										Elem: "Int",
										Dims: []ast.Dim{{
											Size: &ast.IntLit{Src: pos(3, 20), Value: 0},
											Init: &ast.IntLit{Src: pos(3, 20), Value: 0},
										}},
									},
								}},
							},
						},
						&ast.Binary{
							Src: pos(4, 2),
							Op:  ast.Add,
							X:   &ast.Ident{Src: pos(4, 2), Name: "n"},
							Y:   &ast.IntLit{Src: pos(4, 2), Value: 1},
						},
					},
				},
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("unexpected program (-want +got):\n%s", diff)
	}
}

func TestParseExpr(t *testing.T) {
	tests := []struct {
		src  string
		want ast.Expr
	}{
		{
			src:  `(bool @1:2 false)`,
			want: &ast.BoolLit{Src: pos(1, 2), Value: false},
		},
		{
			src:  `(str @1:2 "hi")`,
			want: &ast.StringLit{Src: pos(1, 2), Value: "hi"},
		},
		{
			src:  `(paren @1:0 unit)`,
			want: &ast.Paren{Src: pos(1, 0), X: &ast.UnitLit{Src: pos(1, 0)}},
		},
		{
			src: `(if @2:1 (! true) (id @2:12 x))`,
			want: &ast.If{
				Src:  pos(2, 1),
				Cond: &ast.Unary{Src: pos(2, 1), Op: ast.Not, X: &ast.BoolLit{Src: pos(2, 1), Value: true}},
				Then: &ast.Ident{Src: pos(2, 12), Name: "x"},
			},
		},
		{
			src: `(while @1:0 (<= i 10) (set @1:20 i (- i 1)))`,
			want: &ast.While{
				Src: pos(1, 0),
				Cond: &ast.Binary{
					Src: pos(1, 0), Op: ast.Leq,
					X: &ast.Ident{Src: pos(1, 0), Name: "i"},
					Y: &ast.IntLit{Src: pos(1, 0), Value: 10},
				},
				Body: &ast.Set{
					Src: pos(1, 20),
					LHS: &ast.Ident{Src: pos(1, 20), Name: "i"},
					Value: &ast.Binary{
						Src: pos(1, 20), Op: ast.Sub,
						X: &ast.Ident{Src: pos(1, 20), Name: "i"},
						Y: &ast.IntLit{Src: pos(1, 20), Value: 1},
					},
				},
			},
		},
		{
			src: `(call @1:0 f (args 1 2) (index @1:9 a 0))`,
			want: &ast.Call{
				Src:  pos(1, 0),
				Name: "f",
				Args: []ast.Expr{
					&ast.Sequence{Src: pos(1, 0), Sep: ast.Comma, Exprs: []ast.Expr{
						&ast.IntLit{Src: pos(1, 0), Value: 1},
						&ast.IntLit{Src: pos(1, 0), Value: 2},
					}},
					&ast.Index{Src: pos(1, 9), X: &ast.Ident{Src: pos(1, 9), Name: "a"}, Indices: []ast.Expr{
						&ast.IntLit{Src: pos(1, 9), Value: 0},
					}},
				},
			},
		},
		{
			src:  `(new @1:0 Bool (dim))`,
			want: &ast.NewArray{Src: pos(1, 0), Elem: "Bool", Dims: []ast.Dim{{}}},
		},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			got, err := astbuilder.ParseExpr(test.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("unexpected expression (-want +got):\n%s", diff)
			}
		})
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		src  string
		kind fmterr.Kind
		want string
	}{
		{
			src:  `(program (var x Int`,
			kind: fmterr.LexicalError,
			want: "unclosed '('",
		},
		{
			src:  `(decls)`,
			kind: fmterr.SyntacticError,
			want: "expected (program ...)",
		},
		{
			src:  `(program (var @3:1 x Int))`,
			kind: fmterr.SyntacticError,
			want: "(3, 1) 1:10: (var ...) expects 3 argument(s), got 2",
		},
		{
			src:  `(program (fun @1:0 f (x) Int x))`,
			kind: fmterr.SyntacticError,
			want: "expected a function type",
		},
		{
			src:  `(program (var @1:0 x Int (int @1:2 99999999999999999999)))`,
			kind: fmterr.SyntacticError,
			want: "invalid integer",
		},
		{
			src:  `(program (var @x x Int 1))`,
			kind: fmterr.SyntacticError,
			want: "invalid position @x",
		},
		{
			src:  `(program (var @1:0 x Int (if c)))`,
			kind: fmterr.SyntacticError,
			want: "(if ...) expects 2 to 3 arguments, got 1",
		},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			_, err := astbuilder.Parse(test.src, 0)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if kind, _ := fmterr.KindOf(err); kind != test.kind {
				t.Errorf("got error kind %v but want %v", kind, test.kind)
			}
			if !strings.Contains(err.Error(), test.want) {
				t.Errorf("error %q does not contain %q", err.Error(), test.want)
			}
		})
	}
}
