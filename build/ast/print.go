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


package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Print returns a source-like representation of a node.
func Print(node Node) string {
	return printNode(node, 0)
}

// FirstLine returns the first line of the representation of a node.
func FirstLine(node Node) string {
	s := Print(node)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func pad(indent int) string {
	return strings.Repeat(" ", indent)
}

func printNode(node Node, indent int) string {
	switch n := node.(type) {
	case nil:
		return pad(indent) + "<nil>"
	case *Program:
		decls := make([]string, len(n.Decls))
		for i, decl := range n.Decls {
			decls[i] = printNode(decl, indent)
		}
		return strings.Join(decls, "\n")
	case *VarDecl:
		return pad(indent) + "let " + n.Name + " : " + printNode(n.Type, 0) + " =\n" + printNode(n.Value, indent+2)
	case *FuncDecl:
		params := make([]string, len(n.Params))
		for i, param := range n.Params {
			params[i] = param.Name
		}
		return fmt.Sprintf("%slet %s(%s) : %s =\n%s", pad(indent), n.Name, strings.Join(params, ", "), printNode(n.Type, 0), printNode(n.Body, indent+2))
	case Expr:
		return printExpr(n, indent)
	case TypeExpr:
		return printType(n)
	}
	return fmt.Sprintf("%s<%T>", pad(indent), node)
}

func printList(exprs []Expr) string {
	ss := make([]string, len(exprs))
	for i, expr := range exprs {
		ss[i] = printNode(expr, 0)
	}
	return strings.Join(ss, ", ")
}

func printExpr(expr Expr, indent int) string {
	switch n := expr.(type) {
	case *Sequence:
		if n.Sep == Comma {
			return pad(indent) + printList(n.Exprs)
		}
		ss := make([]string, len(n.Exprs))
		for i, expr := range n.Exprs {
			ss[i] = printNode(expr, indent)
		}
		return strings.Join(ss, ";\n")
	case *Let:
		return pad(indent) + "let " + n.Name + " : " + printNode(n.Type, 0) + " =\n" + printNode(n.Value, indent+2)
	case *Set:
		return pad(indent) + "set " + printNode(n.LHS, 0) + " =\n" + printNode(n.Value, indent+2)
	case *If:
		s := pad(indent) + "if " + printNode(n.Cond, 0) + " then " + printNode(n.Then, 0) + "\n" + pad(indent) + "else "
		if n.Else == nil {
			return s + "unit"
		}
		return s + printNode(n.Else, 0)
	case *While:
		return pad(indent) + "while " + printNode(n.Cond, 0) + " do\n" + printNode(n.Body, indent+2)
	case *Call:
		return pad(indent) + n.Name + "(" + printList(n.Args) + ")"
	case *Binary:
		return pad(indent) + printNode(n.X, 0) + " " + string(n.Op) + " " + printNode(n.Y, 0)
	case *Unary:
		return pad(indent) + string(n.Op) + printNode(n.X, 0)
	case *Index:
		var s strings.Builder
		s.WriteString(pad(indent) + printNode(n.X, 0))
		for _, index := range n.Indices {
			s.WriteString("[" + printNode(index, 0) + "]")
		}
		return s.String()
	case *NewArray:
		var s strings.Builder
		s.WriteString(pad(indent) + "new " + n.Elem)
		for _, dim := range n.Dims {
			s.WriteString("[")
			if dim.Size != nil && dim.Init != nil {
				s.WriteString(printNode(dim.Size, 0) + " | " + printNode(dim.Init, 0))
			}
			s.WriteString("]")
		}
		return s.String()
	case *Ident:
		return pad(indent) + n.Name
	case *IntLit:
		return pad(indent) + strconv.FormatInt(n.Value, 10)
	case *BoolLit:
		return pad(indent) + strconv.FormatBool(n.Value)
	case *StringLit:
		return pad(indent) + strconv.Quote(n.Value)
	case *UnitLit:
		return pad(indent) + "unit"
	case *Paren:
		return pad(indent) + "(" + printNode(n.X, 0) + ")"
	}
	return fmt.Sprintf("%s<%T>", pad(indent), expr)
}

func printType(typ TypeExpr) string {
	switch n := typ.(type) {
	case *BasicType:
		return n.Name
	case *ArrayType:
		return printType(n.Elem) + strings.Repeat("[]", n.Dims)
	case *TypeList:
		ss := make([]string, len(n.Types))
		for i, typ := range n.Types {
			ss[i] = printType(typ)
		}
		if len(ss) == 1 {
			return ss[0]
		}
		return "(" + strings.Join(ss, ", ") + ")"
	case *FuncType:
		params := "()"
		if n.Params != nil {
			params = printType(n.Params)
		}
		return params + " -> " + printNode(n.Result, 0)
	}
	return fmt.Sprintf("<%T>", typ)
}
