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

func (b *builder) program(node *sexpr.Node) *ast.Program {
	if node.Head() != "program" {
		b.errorf(node, ast.Pos{}, "expected (program ...) but got %s", node)
		return nil
	}
	pos, args := b.list(node, ast.Pos{})
	prog := &ast.Program{Src: pos}
	for _, arg := range args {
		if decl := b.decl(arg, pos); decl != nil {
			prog.Decls = append(prog.Decls, decl)
		}
	}
	return prog
}

func (b *builder) decl(node *sexpr.Node, parent ast.Pos) ast.Decl {
	switch node.Head() {
	case "var":
		return b.varDecl(node, parent)
	case "fun":
		return b.funcDecl(node, parent)
	}
	b.errorf(node, parent, "expected a (var ...) or (fun ...) declaration but got %s", node)
	return nil
}

// (var @L:C NAME TYPE EXPR)
func (b *builder) varDecl(node *sexpr.Node, parent ast.Pos) ast.Decl {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 3, 3) {
		return nil
	}
	return &ast.VarDecl{
		Src:   pos,
		Name:  b.name(args[0], pos),
		Type:  b.typeExpr(args[1], pos),
		Value: b.expr(args[2], pos),
	}
}

// (fun @L:C NAME (PARAM...) (-> (TYPE...) TYPE) EXPR)
func (b *builder) funcDecl(node *sexpr.Node, parent ast.Pos) ast.Decl {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 4, 4) {
		return nil
	}
	decl := &ast.FuncDecl{
		Src:  pos,
		Name: b.name(args[0], pos),
		Body: b.expr(args[3], pos),
	}
	if args[1].Kind != sexpr.List {
		b.errorf(args[1], pos, "expected a list of parameters but got %s", args[1])
	} else {
		decl.Params = make([]*ast.Ident, 0, len(args[1].Items))
		for _, param := range args[1].Items {
			decl.Params = append(decl.Params, b.ident(param, pos))
		}
	}
	texpr := b.typeExpr(args[2], pos)
	if texpr == nil {
		return decl
	}
	typ, ok := texpr.(*ast.FuncType)
	if !ok {
		b.errorf(args[2], pos, "expected a function type (-> ...) but got %s", args[2])
		return decl
	}
	decl.Type = typ
	return decl
}

// ident parses a parameter: NAME or (id @L:C NAME).
func (b *builder) ident(node *sexpr.Node, parent ast.Pos) *ast.Ident {
	if node.Kind == sexpr.Symbol {
		return &ast.Ident{Src: parent, Name: node.Text}
	}
	if node.Head() != "id" {
		b.errorf(node, parent, "expected an identifier but got %s", node)
		return &ast.Ident{Src: parent}
	}
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 1, 1) {
		return &ast.Ident{Src: pos}
	}
	return &ast.Ident{Src: pos, Name: b.name(args[0], pos)}
}
