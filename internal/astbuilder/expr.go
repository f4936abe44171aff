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

var binaryOps = func() map[string]ast.BinaryOp {
	ops := make(map[string]ast.BinaryOp, len(ast.BinaryOps))
	for _, op := range ast.BinaryOps {
		ops[string(op)] = op
	}
	return ops
}()

func (b *builder) expr(node *sexpr.Node, parent ast.Pos) ast.Expr {
	switch node.Kind {
	case sexpr.Integer:
		return b.intLit(node, parent)
	case sexpr.String:
		return &ast.StringLit{Src: parent, Value: node.Text}
	case sexpr.Symbol:
		return atom(node.Text, parent)
	}
	head := node.Head()
	switch head {
	case "int":
		return b.intExpr(node, parent)
	case "bool", "str", "unit", "id":
		return b.positionedAtom(node, parent)
	case "seq":
		return b.sequence(node, parent, ast.Semicolon)
	case "args":
		return b.sequence(node, parent, ast.Comma)
	case "let":
		return b.let(node, parent)
	case "set":
		return b.set(node, parent)
	case "if":
		return b.ifExpr(node, parent)
	case "while":
		return b.while(node, parent)
	case "call":
		return b.call(node, parent)
	case "index":
		return b.index(node, parent)
	case "new":
		return b.newArray(node, parent)
	case "paren":
		return b.paren(node, parent)
	case "!":
		return b.unary(node, parent, ast.Not)
	case "-":
		pos, args := b.list(node, parent)
		if len(args) == 1 {
			return &ast.Unary{Src: pos, Op: ast.Neg, X: b.expr(args[0], pos)}
		}
	}
	if op, ok := binaryOps[head]; ok {
		return b.binary(node, parent, op)
	}
	b.errorf(node, parent, "expected an expression but got %s", node)
	return nil
}

func atom(text string, pos ast.Pos) ast.Expr {
	switch text {
	case "true":
		return &ast.BoolLit{Src: pos, Value: true}
	case "false":
		return &ast.BoolLit{Src: pos, Value: false}
	case "unit":
		return &ast.UnitLit{Src: pos}
	}
	return &ast.Ident{Src: pos, Name: text}
}

func (b *builder) intLit(node *sexpr.Node, pos ast.Pos) ast.Expr {
	v, err := node.Int()
	if err != nil {
		b.errorf(node, pos, "%v", err)
		return nil
	}
	return &ast.IntLit{Src: pos, Value: v}
}

// (int @L:C N)
func (b *builder) intExpr(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 1, 1) {
		return nil
	}
	return b.intLit(args[0], pos)
}

// (bool @L:C true), (str @L:C "s"), (unit @L:C), (id @L:C NAME)
func (b *builder) positionedAtom(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	head := node.Head()
	if head == "unit" {
		if !b.arity(node, pos, args, 0, 0) {
			return nil
		}
		return &ast.UnitLit{Src: pos}
	}
	if !b.arity(node, pos, args, 1, 1) {
		return nil
	}
	arg := args[0]
	switch head {
	case "str":
		if arg.Kind != sexpr.String {
			b.errorf(arg, pos, "expected a string but got %s", arg)
			return nil
		}
		return &ast.StringLit{Src: pos, Value: arg.Text}
	case "bool":
		if !arg.IsSymbol("true") && !arg.IsSymbol("false") {
			b.errorf(arg, pos, "expected true or false but got %s", arg)
			return nil
		}
		return &ast.BoolLit{Src: pos, Value: arg.Text == "true"}
	}
	return &ast.Ident{Src: pos, Name: b.name(arg, pos)}
}

// (seq @L:C EXPR...) or (args @L:C EXPR...)
func (b *builder) sequence(node *sexpr.Node, parent ast.Pos, sep ast.Separator) ast.Expr {
	pos, args := b.list(node, parent)
	seq := &ast.Sequence{Src: pos, Sep: sep, Exprs: make([]ast.Expr, len(args))}
	for i, arg := range args {
		seq.Exprs[i] = b.expr(arg, pos)
	}
	return seq
}

// (let @L:C NAME TYPE EXPR)
func (b *builder) let(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 3, 3) {
		return nil
	}
	return &ast.Let{
		Src:   pos,
		Name:  b.name(args[0], pos),
		Type:  b.typeExpr(args[1], pos),
		Value: b.expr(args[2], pos),
	}
}

// (set @L:C LHS EXPR)
func (b *builder) set(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 2, 2) {
		return nil
	}
	return &ast.Set{
		Src:   pos,
		LHS:   b.expr(args[0], pos),
		Value: b.expr(args[1], pos),
	}
}

// (if @L:C COND THEN [ELSE])
func (b *builder) ifExpr(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 2, 3) {
		return nil
	}
	expr := &ast.If{
		Src:  pos,
		Cond: b.expr(args[0], pos),
		Then: b.expr(args[1], pos),
	}
	if len(args) == 3 {
		expr.Else = b.expr(args[2], pos)
	}
	return expr
}

// (while @L:C COND BODY)
func (b *builder) while(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 2, 2) {
		return nil
	}
	return &ast.While{
		Src:  pos,
		Cond: b.expr(args[0], pos),
		Body: b.expr(args[1], pos),
	}
}

// (call @L:C NAME EXPR...)
func (b *builder) call(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 1, -1) {
		return nil
	}
	call := &ast.Call{Src: pos, Name: b.name(args[0], pos), Args: make([]ast.Expr, len(args)-1)}
	for i, arg := range args[1:] {
		call.Args[i] = b.expr(arg, pos)
	}
	return call
}

// (OP @L:C X Y)
func (b *builder) binary(node *sexpr.Node, parent ast.Pos, op ast.BinaryOp) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 2, 2) {
		return nil
	}
	return &ast.Binary{
		Src: pos,
		Op:  op,
		X:   b.expr(args[0], pos),
		Y:   b.expr(args[1], pos),
	}
}

// (! @L:C X)
func (b *builder) unary(node *sexpr.Node, parent ast.Pos, op ast.UnaryOp) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 1, 1) {
		return nil
	}
	return &ast.Unary{Src: pos, Op: op, X: b.expr(args[0], pos)}
}

// (index @L:C X I...)
func (b *builder) index(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 2, -1) {
		return nil
	}
	expr := &ast.Index{Src: pos, X: b.expr(args[0], pos), Indices: make([]ast.Expr, len(args)-1)}
	for i, arg := range args[1:] {
		expr.Indices[i] = b.expr(arg, pos)
	}
	return expr
}

// (new @L:C NAME (dim [SIZE INIT])...)
func (b *builder) newArray(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 2, -1) {
		return nil
	}
	expr := &ast.NewArray{Src: pos, Elem: b.name(args[0], pos)}
	for _, arg := range args[1:] {
		if arg.Head() != "dim" {
			b.errorf(arg, pos, "expected (dim ...) but got %s", arg)
			continue
		}
		dimPos, dimArgs := b.list(arg, pos)
		switch len(dimArgs) {
		case 0:
			expr.Dims = append(expr.Dims, ast.Dim{})
		case 2:
			expr.Dims = append(expr.Dims, ast.Dim{
				Size: b.expr(dimArgs[0], dimPos),
				Init: b.expr(dimArgs[1], dimPos),
			})
		default:
			b.errorf(arg, dimPos, "(dim ...) expects 0 or 2 arguments, got %d", len(dimArgs))
		}
	}
	return expr
}

// (paren @L:C X)
func (b *builder) paren(node *sexpr.Node, parent ast.Pos) ast.Expr {
	pos, args := b.list(node, parent)
	if !b.arity(node, pos, args, 1, 1) {
		return nil
	}
	return &ast.Paren{Src: pos, X: b.expr(args[0], pos)}
}
