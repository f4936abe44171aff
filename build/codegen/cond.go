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
	"github.com/llir/llvm/ir"
)

// lowerCond lowers a boolean expression entered at block b as control flow:
// the blocks created for the expression branch to ifTrue when the expression
// is true and to ifFalse otherwise. The right operand of && and || is only
// reached when the left operand does not determine the result.
func (fl *funcLowerer) lowerCond(b *ir.Block, expr ast.Expr, ifTrue, ifFalse *ir.Block) {
	switch exprT := expr.(type) {
	case *ast.BoolLit:
		if exprT.Value {
			b.NewBr(ifTrue)
		} else {
			b.NewBr(ifFalse)
		}
		return
	case *ast.Unary:
		if exprT.Op == ast.Not {
			fl.lowerCond(b, exprT.X, ifFalse, ifTrue)
			return
		}
	case *ast.Binary:
		if fl.lowerBinaryCond(b, exprT, ifTrue, ifFalse) {
			return
		}
	case *ast.Sequence:
		if len(exprT.Exprs) > 0 {
			last := len(exprT.Exprs) - 1
			for _, elem := range exprT.Exprs[:last] {
				_, b = fl.lower(b, elem)
			}
			fl.lowerCond(b, exprT.Exprs[last], ifTrue, ifFalse)
			return
		}
	case *ast.Paren:
		defer fl.scope.Begin()()
		fl.lowerCond(b, exprT.X, ifTrue, ifFalse)
		return
	}
	x, b := fl.lower(b, expr)
	if x.failed() {
		b.NewBr(ifFalse)
		return
	}
	b.NewCondBr(x.val, ifTrue, ifFalse)
}

// lowerBinaryCond lowers logical and comparison operators used as conditions.
// It returns false if the operator is not one of them.
func (fl *funcLowerer) lowerBinaryCond(b *ir.Block, expr *ast.Binary, ifTrue, ifFalse *ir.Block) bool {
	switch {
	case expr.Op == ast.And:
		rhs := fl.newBlock("and_rhs")
		fl.lowerCond(b, expr.X, rhs, ifFalse)
		fl.lowerCond(rhs, expr.Y, ifTrue, ifFalse)
		return true
	case expr.Op == ast.Or:
		rhs := fl.newBlock("or_rhs")
		fl.lowerCond(b, expr.X, ifTrue, rhs)
		fl.lowerCond(rhs, expr.Y, ifTrue, ifFalse)
		return true
	case expr.Op.IsRelational(), expr.Op.IsEquality():
		x, y, b := fl.lowerOperands(b, expr)
		if x.failed() || y.failed() {
			b.NewBr(ifFalse)
			return true
		}
		b.NewCondBr(b.NewICmp(cmpPredicates[expr.Op], x.val, y.val), ifTrue, ifFalse)
		return true
	}
	return false
}
