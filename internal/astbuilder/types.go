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

package astbuilder

import (
	"github.com/GustavoCostaHenriques/Aguda-Compiler/base/sexpr"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
)

// typeExpr parses:
//
//	NAME
//	(array @L:C NAME DIMS)
//	(-> @L:C (TYPE...) TYPE)
func (b *builder) typeExpr(node *sexpr.Node, parent ast.Pos) ast.TypeExpr {
	if node.Kind == sexpr.Symbol {
		return &ast.BasicType{Src: parent, Name: node.Text}
	}
	switch node.Head() {
	case "array":
		return b.arrayType(node, parent)
	case "->":
		return b.funcType(node, parent)
	}
	b.errorf(node, parent, "expected a type but got %s", node)
	return nil
}

func (b *builder) arrayType(node *sexpr.Node, parent ast.Pos) ast.TypeExpr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 2, 2) {
		return nil
	}
	dims, err := args[1].Int()
	if err != nil || dims < 1 {
		b.errorf(args[1], pos, "invalid number of array dimensions %s", args[1])
		return nil
	}
	return &ast.ArrayType{
		Src:  pos,
		Elem: &ast.BasicType{Src: pos, Name: b.name(args[0], pos)},
		Dims: int(dims),
	}
}

func (b *builder) funcType(node *sexpr.Node, parent ast.Pos) ast.TypeExpr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 2, 2) {
		return nil
	}
	if args[0].Kind != sexpr.List {
		b.errorf(args[0], pos, "expected a list of parameter types but got %s", args[0])
		return nil
	}
	params := &ast.TypeList{Src: pos, Types: make([]ast.TypeExpr, 0, len(args[0].Items))}
	for _, item := range args[0].Items {
		if typ := b.typeExpr(item, pos); typ != nil {
			params.Types = append(params.Types, typ)
		}
	}
	return &ast.FuncType{
		Src:    pos,
		Params: params,
		Result: b.typeExpr(args[1], pos),
	}
}
