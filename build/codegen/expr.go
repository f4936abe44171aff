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

package codegen

import (
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/types"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
)

// lower an expression entered at block b.
// It returns the value of the expression and the block where control is
// after the expression, in which the value can be used.
func (fl *funcLowerer) lower(b *ir.Block, expr ast.Expr) (result, *ir.Block) {
	switch exprT := expr.(type) {
	case nil:
		fl.internalf(nil, "missing expression")
	case *ast.IntLit:
		return result{val: constant.NewInt(lltypes.I32, exprT.Value), typ: types.Int()}, b
	case *ast.BoolLit:
		return result{val: constant.NewBool(exprT.Value), typ: types.Bool()}, b
	case *ast.UnitLit:
		return unit, b
	case *ast.Ident:
		return fl.lowerIdent(b, exprT)
	case *ast.Sequence:
		return fl.lowerSequence(b, exprT)
	case *ast.Paren:
		defer fl.scope.Begin()()
		return fl.lower(b, exprT.X)
	case *ast.Unary:
		return fl.lowerUnary(b, exprT)
	case *ast.Binary:
		return fl.lowerBinary(b, exprT)
	case *ast.Let:
		return fl.lowerLet(b, exprT)
	case *ast.Set:
		return fl.lowerSet(b, exprT)
	case *ast.Call:
		return fl.lowerCall(b, exprT)
	case *ast.If:
		return fl.lowerIf(b, exprT)
	case *ast.While:
		return fl.lowerWhile(b, exprT)
	case *ast.StringLit, *ast.Index, *ast.NewArray:
		fl.notImplemented(expr)
		return failed, b
	default:
		fl.internalf(expr, "expression type %T not supported", expr)
	}
	return failed, b
}

// nested lowers an expression in its own storage scope.
func (fl *funcLowerer) nested(b *ir.Block, expr ast.Expr) (result, *ir.Block) {
	defer fl.scope.Begin()()
	return fl.lower(b, expr)
}

func (fl *funcLowerer) lowerIdent(b *ir.Block, ident *ast.Ident) (result, *ir.Block) {
	stor, ok := fl.scope.Find(ident.Name)
	if !ok {
		fl.internalf(ident, "no storage for %s", ident.Name)
	}
	switch {
	case types.Is(stor.typ, types.UnitKind):
		return unit, b
	case stor.isFunc():
		// Functions are not values.
		fl.notImplemented(ident)
		return failed, b
	case stor.slot != nil:
		llTyp, _ := llType(stor.typ)
		return result{val: b.NewLoad(llTyp, stor.slot), typ: stor.typ}, b
	case stor.value != nil:
		return result{val: stor.value, typ: stor.typ}, b
	}
	if _, ok := llType(stor.typ); !ok {
		// The declaration has already been reported.
		return failed, b
	}
	fl.notImplemented(ident)
	return failed, b
}

// lowerSequence returns the value of the last expression.
// An empty sequence is unit.
func (fl *funcLowerer) lowerSequence(b *ir.Block, seq *ast.Sequence) (result, *ir.Block) {
	res := unit
	for _, expr := range seq.Exprs {
		res, b = fl.lower(b, expr)
	}
	return res, b
}
