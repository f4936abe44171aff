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


package ast_test

import (
	"testing"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/google/go-cmp/cmp"
)

func TestPrint(t *testing.T) {
	tests := []struct {
		node ast.Node
		want string
	}{
		{
			node: &ast.Binary{Op: ast.Add, X: &ast.IntLit{Value: 1}, Y: &ast.Ident{Name: "x"}},
			want: "1 + x",
		},
		{
			node: &ast.Unary{Op: ast.Not, X: &ast.BoolLit{Value: true}},
			want: "!true",
		},
		{
			node: &ast.Call{Name: "f", Args: []ast.Expr{&ast.IntLit{Value: 1}, &ast.StringLit{Value: "a"}}},
			want: `f(1, "a")`,
		},
		{
			node: &ast.If{Cond: &ast.Ident{Name: "b"}, Then: &ast.IntLit{Value: 1}},
			want: "if b then 1\nelse unit",
		},
		{
			node: &ast.Let{
				Name:  "x",
				Type:  &ast.ArrayType{Elem: &ast.BasicType{Name: "Int"}, Dims: 2},
				Value: &ast.NewArray{Elem: "Int", Dims: []ast.Dim{{Size: &ast.IntLit{Value: 3}, Init: &ast.IntLit{Value: 0}}, {}}},
			},
			want: "let x : Int[][] =\n  new Int[3 | 0][]",
		},
		{
			node: &ast.FuncDecl{
				Name:   "f",
				Params: []*ast.Ident{{Name: "a"}, {Name: "b"}},
				Type: &ast.FuncType{
					Params: &ast.TypeList{Types: []ast.TypeExpr{&ast.BasicType{Name: "Int"}, &ast.BasicType{Name: "Bool"}}},
					Result: &ast.BasicType{Name: "Unit"},
				},
				Body: &ast.Sequence{Sep: ast.Semicolon, Exprs: []ast.Expr{
					&ast.Call{Name: "print", Args: []ast.Expr{&ast.Ident{Name: "a"}}},
					&ast.UnitLit{},
				}},
			},
			want: "let f(a, b) : (Int, Bool) -> Unit =\n  print(a);\n  unit",
		},
		{
			node: &ast.Index{X: &ast.Ident{Name: "a"}, Indices: []ast.Expr{&ast.IntLit{Value: 0}, &ast.Ident{Name: "i"}}},
			want: "a[0][i]",
		},
	}
	for i, test := range tests {
		got := ast.Print(test.node)
		if got != test.want {
			t.Errorf("test %d: got:\n%s\nbut want:\n%s\ndiff:\n%s", i, got, test.want, cmp.Diff(got, test.want))
		}
	}
}

func TestFirstLine(t *testing.T) {
	node := &ast.While{
		Cond: &ast.Binary{Op: ast.Lss, X: &ast.Ident{Name: "i"}, Y: &ast.IntLit{Value: 10}},
		Body: &ast.Set{LHS: &ast.Ident{Name: "i"}, Value: &ast.IntLit{Value: 1}},
	}
	if got, want := ast.FirstLine(node), "while i < 10 do"; got != want {
		t.Errorf("got %q but want %q", got, want)
	}
}

func TestLast(t *testing.T) {
	last := &ast.IntLit{Value: 2}
	seq := &ast.Sequence{Sep: ast.Semicolon, Exprs: []ast.Expr{&ast.IntLit{Value: 1}, last}}
	if got := ast.Last(seq); got != last {
		t.Errorf("Last(seq) = %v but want %v", got, last)
	}
	if got := ast.Last(last); got != last {
		t.Errorf("Last(lit) = %v but want %v", got, last)
	}
}
