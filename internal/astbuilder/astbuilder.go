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

// Package astbuilder builds an AST from its s-expression interchange format.
//
// A list may carry the source position of the node it describes as a
// symbol @LINE:COL following its head, for example:
//
//	(fun @1:0 inc (n) (-> (Int) Int) (+ @1:25 n 1))
//
// Atoms inherit the position of their enclosing list.
package astbuilder

import (
	"strconv"
	"strings"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/base/sexpr"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
)

type builder struct {
	errs *fmterr.Appender
}

// Parse reads a program from its textual s-expression form.
// Lexical errors are returned immediately.
// Malformed shapes are accumulated as syntactic errors up to maxErrors.
func Parse(src string, maxErrors int) (*ast.Program, error) {
	node, err := sexpr.Parse(src)
	if err != nil {
		return nil, fmterr.Wrap(fmterr.LexicalError, ast.Pos{}, err)
	}
	return Program(node, maxErrors)
}

// Program converts an s-expression into a program.
func Program(node *sexpr.Node, maxErrors int) (*ast.Program, error) {
	b := &builder{errs: fmterr.NewAppender(fmterr.SyntacticError, maxErrors)}
	prog := b.program(node)
	if err := b.errs.ToError(); err != nil {
		return nil, err
	}
	return prog, nil
}

// ParseExpr reads a single expression.
func ParseExpr(src string) (ast.Expr, error) {
	node, err := sexpr.Parse(src)
	if err != nil {
		return nil, fmterr.Wrap(fmterr.LexicalError, ast.Pos{}, err)
	}
	b := &builder{errs: fmterr.NewAppender(fmterr.SyntacticError, 0)}
	expr := b.expr(node, ast.Pos{})
	if err := b.errs.ToError(); err != nil {
		return nil, err
	}
	return expr, nil
}

func (b *builder) errorf(node *sexpr.Node, pos ast.Pos, format string, a ...any) {
	b.errs.Append(fmterr.Errorf(fmterr.SyntacticError, pos, "%s: "+format, append([]any{node.Loc}, a...)...))
}

// list splits a list into its head, its position, and its arguments.
// The position defaults to parent when the list does not specify one.
func (b *builder) list(node *sexpr.Node, parent ast.Pos) (ast.Pos, []*sexpr.Node) {
	args := node.Items[1:]
	if len(args) == 0 || args[0].Kind != sexpr.Symbol || !strings.HasPrefix(args[0].Text, "@") {
		return parent, args
	}
	pos, ok := parsePos(args[0].Text)
	if !ok {
		b.errorf(args[0], parent, "invalid position %s", args[0].Text)
		return parent, args[1:]
	}
	return pos, args[1:]
}

func parsePos(s string) (ast.Pos, bool) {
	line, col, ok := strings.Cut(strings.TrimPrefix(s, "@"), ":")
	if !ok {
		return ast.Pos{}, false
	}
	l, err := strconv.Atoi(line)
	if err != nil || l < 1 {
		return ast.Pos{}, false
	}
	c, err := strconv.Atoi(col)
	if err != nil || c < 0 {
		return ast.Pos{}, false
	}
	return ast.Pos{Line: l, Col: c}, true
}

// arity checks the number of arguments of a list.
func (b *builder) arity(node *sexpr.Node, pos ast.Pos, args []*sexpr.Node, min, max int) bool {
	if len(args) >= min && (max < 0 || len(args) <= max) {
		return true
	}
	switch {
	case max < 0:
		b.errorf(node, pos, "(%s ...) expects at least %d argument(s), got %d", node.Head(), min, len(args))
	case min == max:
		b.errorf(node, pos, "(%s ...) expects %d argument(s), got %d", node.Head(), min, len(args))
	default:
		b.errorf(node, pos, "(%s ...) expects %d to %d arguments, got %d", node.Head(), min, max, len(args))
	}
	return false
}

func (b *builder) name(node *sexpr.Node, pos ast.Pos) string {
	if node.Kind != sexpr.Symbol {
		b.errorf(node, pos, "expected a name but got %s %s", node.Kind, node)
		return ""
	}
	return node.Text
}
