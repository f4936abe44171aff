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


// Package ast defines the abstract syntax tree of aguda programs.
//
// The tree is built by a front end (see internal/astbuilder) and is
// immutable afterwards. The set of nodes is closed: the Decl, Expr and
// TypeExpr interfaces can only be implemented by the types of this package.
package ast

import "fmt"

// Pos is a position in the source code.
// Line is 1-based, Col is 0-based. A zero line means the position is unknown.
type Pos struct {
	Line int
	Col  int
}

// IsValid returns true if the position is known.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type (
	// Node in the tree.
	Node interface {
		Pos() Pos
	}

	// Decl is a top-level declaration.
	Decl interface {
		Node
		declNode()
	}

	// Expr is an expression.
	Expr interface {
		Node
		exprNode()
	}

	// TypeExpr is the syntax of a type.
	TypeExpr interface {
		Node
		typeNode()
	}
)

// Program is the root of the tree.
type Program struct {
	Src   Pos
	Decls []Decl
}

// Pos returns the position of the node.
func (n *Program) Pos() Pos { return n.Src }

// Declarations.
type (
	// VarDecl declares a global variable: let name : Type = value
	VarDecl struct {
		Src   Pos
		Name  string
		Type  TypeExpr
		Value Expr
	}

	// FuncDecl declares a function: let name(params) : Type = body
	FuncDecl struct {
		Src    Pos
		Name   string
		Params []*Ident
		Type   *FuncType
		Body   Expr
	}
)

func (*VarDecl) declNode()  {}
func (*FuncDecl) declNode() {}

// Pos returns the position of the node.
func (n *VarDecl) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *FuncDecl) Pos() Pos { return n.Src }

// Separator between expressions in a sequence.
type Separator string

const (
	// Semicolon separates expressions evaluated in order.
	Semicolon Separator = ";"
	// Comma separates expressions in a list.
	Comma Separator = ","
)

// BinaryOp is a binary operator.
type BinaryOp string

// Binary operators.
const (
	Add BinaryOp = "+"
	Sub BinaryOp = "-"
	Mul BinaryOp = "*"
	Div BinaryOp = "/"
	Mod BinaryOp = "%"
	Pow BinaryOp = "^"
	Lss BinaryOp = "<"
	Leq BinaryOp = "<="
	Gtr BinaryOp = ">"
	Geq BinaryOp = ">="
	Eql BinaryOp = "=="
	Neq BinaryOp = "!="
	And BinaryOp = "&&"
	Or  BinaryOp = "||"
)

// IsArithmetic returns true for + - * / % ^.
func (op BinaryOp) IsArithmetic() bool {
	switch op {
	case Add, Sub, Mul, Div, Mod, Pow:
		return true
	}
	return false
}

// IsRelational returns true for < <= > >=.
func (op BinaryOp) IsRelational() bool {
	switch op {
	case Lss, Leq, Gtr, Geq:
		return true
	}
	return false
}

// IsEquality returns true for == and !=.
func (op BinaryOp) IsEquality() bool {
	return op == Eql || op == Neq
}

// IsLogical returns true for && and ||.
func (op BinaryOp) IsLogical() bool {
	return op == And || op == Or
}

// BinaryOps lists all binary operators.
var BinaryOps = []BinaryOp{Add, Sub, Mul, Div, Mod, Pow, Lss, Leq, Gtr, Geq, Eql, Neq, And, Or}

// UnaryOp is a unary operator.
type UnaryOp string

// Unary operators.
const (
	Neg UnaryOp = "-"
	Not UnaryOp = "!"
)

// Expressions.
type (
	// Sequence of expressions.
	Sequence struct {
		Src   Pos
		Sep   Separator
		Exprs []Expr
	}

	// Let binds a name in the enclosing scope: let name : Type = value
	Let struct {
		Src   Pos
		Name  string
		Type  TypeExpr
		Value Expr
	}

	// Set assigns a value to a mutable location: set lhs = value
	Set struct {
		Src   Pos
		LHS   Expr
		Value Expr
	}

	// If expression. Else is nil when there is no else branch.
	If struct {
		Src  Pos
		Cond Expr
		Then Expr
		Else Expr
	}

	// While loop.
	While struct {
		Src  Pos
		Cond Expr
		Body Expr
	}

	// Call of a function by name.
	Call struct {
		Src  Pos
		Name string
		Args []Expr
	}

	// Binary operation.
	Binary struct {
		Src Pos
		Op  BinaryOp
		X   Expr
		Y   Expr
	}

	// Unary operation.
	Unary struct {
		Src Pos
		Op  UnaryOp
		X   Expr
	}

	// Index accesses an element (or a sub-array) of an array.
	Index struct {
		Src     Pos
		X       Expr
		Indices []Expr
	}

	// Dim is a dimension of an array creation.
	// Both fields are nil for a bare dimension.
	Dim struct {
		Size Expr
		Init Expr
	}

	// NewArray creates an array: new Int[size | init]
	NewArray struct {
		Src  Pos
		Elem string
		Dims []Dim
	}

	// Ident is a reference to a name.
	Ident struct {
		Src  Pos
		Name string
	}

	// IntLit is an integer literal.
	// The value is stored on 64 bits so that out of range values can be reported.
	IntLit struct {
		Src   Pos
		Value int64
	}

	// BoolLit is a boolean literal.
	BoolLit struct {
		Src   Pos
		Value bool
	}

	// StringLit is a string literal, stored without quotes.
	StringLit struct {
		Src   Pos
		Value string
	}

	// UnitLit is the unit literal.
	UnitLit struct {
		Src Pos
	}

	// Paren is a parenthesised expression.
	Paren struct {
		Src Pos
		X   Expr
	}
)

func (*Sequence) exprNode()  {}
func (*Let) exprNode()       {}
func (*Set) exprNode()       {}
func (*If) exprNode()        {}
func (*While) exprNode()     {}
func (*Call) exprNode()      {}
func (*Binary) exprNode()    {}
func (*Unary) exprNode()     {}
func (*Index) exprNode()     {}
func (*NewArray) exprNode()  {}
func (*Ident) exprNode()     {}
func (*IntLit) exprNode()    {}
func (*BoolLit) exprNode()   {}
func (*StringLit) exprNode() {}
func (*UnitLit) exprNode()   {}
func (*Paren) exprNode()     {}

// Pos returns the position of the node.
func (n *Sequence) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *Let) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *Set) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *If) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *While) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *Call) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *Binary) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *Unary) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *Index) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *NewArray) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *Ident) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *IntLit) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *BoolLit) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *StringLit) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *UnitLit) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *Paren) Pos() Pos { return n.Src }

// Type syntax.
type (
	// BasicType is a type referred to by its name: Int, Bool, String, Unit.
	BasicType struct {
		Src  Pos
		Name string
	}

	// ArrayType is an array of a basic type: Int[][]
	ArrayType struct {
		Src  Pos
		Elem *BasicType
		Dims int
	}

	// FuncType is the type of a function: (Int, Bool) -> Unit
	FuncType struct {
		Src    Pos
		Params *TypeList
		Result TypeExpr
	}

	// TypeList is the list of the parameter types of a function.
	TypeList struct {
		Src   Pos
		Types []TypeExpr
	}
)

func (*BasicType) typeNode() {}
func (*ArrayType) typeNode() {}
func (*FuncType) typeNode()  {}
func (*TypeList) typeNode()  {}

// Pos returns the position of the node.
func (n *BasicType) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *ArrayType) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *FuncType) Pos() Pos { return n.Src }

// Pos returns the position of the node.
func (n *TypeList) Pos() Pos { return n.Src }

// Last returns the last expression of a sequence, or the expression itself if it is not a sequence.
// Errors about the value of a body are attributed to that expression.
func Last(expr Expr) Expr {
	seq, ok := expr.(*Sequence)
	if !ok || len(seq.Exprs) == 0 {
		return expr
	}
	return seq.Exprs[len(seq.Exprs)-1]
}
