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

// Package checker verifies the types of a program.
//
// Checking runs in two passes. The first pass registers every top-level
// declaration in the global scope so that declarations can refer to each
// other regardless of their order. The second pass checks the body of each
// declaration against its registered type.
//
// Errors do not stop the checker: an expression with an error is given the
// undeclared type and checking continues with the surrounding expressions.
package checker

import (
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/types"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/internal/base/scope"
)

const (
	// Wildcard is the name of declarations that cannot be referred to.
	Wildcard = "_"
	// PrintFunc is the builtin function printing a value.
	PrintFunc = "print"
	// LengthFunc is the builtin function returning the length of an array.
	LengthFunc = "length"
)

// IsReserved returns true if name cannot be used for a declaration.
func IsReserved(name string) bool {
	return name == PrintFunc || name == LengthFunc
}

type checker struct {
	errs  *fmterr.Appender
	scope *scope.Table[types.Type]

	// declared caches the types of top-level declarations
	// so that errors in type expressions are only reported once.
	declared map[ast.Decl]types.Type
}

// bailout is a panic value used to abort checking on an internal error.
type bailout struct {
	err error
}

// Check the types of a program.
// At most maxErrors semantic errors are kept; all errors are counted.
func Check(prog *ast.Program, maxErrors int) (err error) {
	if prog == nil {
		return fmterr.Internalf(ast.Pos{}, "no program to check")
	}
	c := &checker{
		errs:     fmterr.NewAppender(fmterr.SemanticError, maxErrors),
		scope:    scope.NewTable[types.Type](),
		declared: make(map[ast.Decl]types.Type),
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		err = b.err
	}()
	for _, decl := range prog.Decls {
		c.predeclare(decl)
	}
	for _, decl := range prog.Decls {
		c.checkDecl(decl)
	}
	if depth := c.scope.Depth(); depth != 0 {
		c.internalf(prog, "%d scope(s) left open after checking the program", depth)
	}
	return c.errs.ToError()
}

func (c *checker) internalf(node ast.Node, format string, a ...any) {
	pos := ast.Pos{}
	if node != nil {
		pos = node.Pos()
	}
	panic(bailout{err: fmterr.Internalf(pos, format, a...)})
}

// typeOf returns the type of an expression, reporting errors along the way.
func (c *checker) typeOf(parent ast.Node, expr ast.Expr) types.Type {
	switch exprT := expr.(type) {
	case nil:
		c.internalf(parent, "missing expression")
	case *ast.Sequence:
		return c.checkSequence(exprT)
	case *ast.Let:
		return c.checkLet(exprT)
	case *ast.Set:
		return c.checkSet(exprT)
	case *ast.If:
		return c.checkIf(exprT)
	case *ast.While:
		return c.checkWhile(exprT)
	case *ast.Call:
		return c.checkCall(exprT)
	case *ast.Binary:
		return c.checkBinary(exprT)
	case *ast.Unary:
		return c.checkUnary(exprT)
	case *ast.Index:
		return c.checkIndex(exprT)
	case *ast.NewArray:
		return c.checkNewArray(exprT)
	case *ast.Paren:
		defer c.scope.Begin()()
		return c.typeOf(exprT, exprT.X)
	case *ast.Ident:
		return c.checkIdent(exprT)
	case *ast.IntLit:
		return c.checkIntLit(exprT)
	case *ast.BoolLit:
		return types.Bool()
	case *ast.StringLit:
		return types.String()
	case *ast.UnitLit:
		return types.Unit()
	default:
		c.internalf(expr, "expression type %T not supported", expr)
	}
	return types.Undeclared()
}

// nested returns the type of an expression checked in its own scope.
func (c *checker) nested(parent ast.Node, expr ast.Expr) types.Type {
	defer c.scope.Begin()()
	return c.typeOf(parent, expr)
}

func (c *checker) checkSequence(seq *ast.Sequence) types.Type {
	var typ types.Type = types.Unit()
	for _, expr := range seq.Exprs {
		typ = c.typeOf(seq, expr)
	}
	return typ
}
