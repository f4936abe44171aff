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
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

var cmpPredicates = map[ast.BinaryOp]enum.IPred{
	ast.Lss: enum.IPredSLT,
	ast.Leq: enum.IPredSLE,
	ast.Gtr: enum.IPredSGT,
	ast.Geq: enum.IPredSGE,
	ast.Eql: enum.IPredEQ,
	ast.Neq: enum.IPredNE,
}

func (fl *funcLowerer) lowerUnary(b *ir.Block, expr *ast.Unary) (result, *ir.Block) {
	switch expr.Op {
	case ast.Neg:
		if lit, ok := expr.X.(*ast.IntLit); ok {
			// The smallest Int is only a valid i32 with its sign.
			return result{val: constant.NewInt(lltypes.I32, -lit.Value), typ: types.Int()}, b
		}
		x, b := fl.lower(b, expr.X)
		if x.failed() {
			return failed, b
		}
		return result{val: b.NewSub(constant.NewInt(lltypes.I32, 0), x.val), typ: types.Int()}, b
	case ast.Not:
		// A chain of negations only depends on its parity.
		negations := 0
		var operand ast.Expr = expr
		for {
			not, ok := operand.(*ast.Unary)
			if !ok || not.Op != ast.Not {
				break
			}
			negations++
			operand = not.X
		}
		x, b := fl.lower(b, operand)
		if x.failed() || negations%2 == 0 {
			return x, b
		}
		return result{val: b.NewXor(x.val, constant.True), typ: types.Bool()}, b
	}
	fl.internalf(expr, "unary operator %q not supported", expr.Op)
	return failed, b
}

func (fl *funcLowerer) lowerBinary(b *ir.Block, expr *ast.Binary) (result, *ir.Block) {
	if expr.Op.IsLogical() {
		return fl.lowerLogical(b, expr)
	}
	x, y, b := fl.lowerOperands(b, expr)
	if x.failed() || y.failed() {
		return failed, b
	}
	if pred, ok := cmpPredicates[expr.Op]; ok {
		return result{val: b.NewICmp(pred, x.val, y.val), typ: types.Bool()}, b
	}
	var val value.Value
	switch expr.Op {
	case ast.Add:
		val = b.NewAdd(x.val, y.val)
	case ast.Sub:
		val = b.NewSub(x.val, y.val)
	case ast.Mul:
		val = b.NewMul(x.val, y.val)
	case ast.Div:
		val = b.NewSDiv(x.val, y.val)
	case ast.Mod:
		val = b.NewSRem(x.val, y.val)
	case ast.Pow:
		val = b.NewCall(fl.powiFunc(), x.val, y.val)
	default:
		fl.internalf(expr, "binary operator %q not supported", expr.Op)
	}
	return result{val: val, typ: types.Int()}, b
}

// lowerOperands lowers the operands of a binary expression from left to
// right: the right operand is entered where the left operand exits.
func (fl *funcLowerer) lowerOperands(b *ir.Block, expr *ast.Binary) (x, y result, exit *ir.Block) {
	x, b = fl.lower(b, expr.X)
	y, b = fl.lower(b, expr.Y)
	return x, y, b
}

// lowerLogical lowers && and || as values: the operator is lowered as a
// condition branching to a true and a false block, merged by a phi.
func (fl *funcLowerer) lowerLogical(b *ir.Block, expr *ast.Binary) (result, *ir.Block) {
	prefix := "and"
	if expr.Op == ast.Or {
		prefix = "or"
	}
	ifTrue := fl.newBlock(prefix + "_true")
	ifFalse := fl.newBlock(prefix + "_false")
	join := fl.newBlock(prefix + "_join")
	fl.lowerCond(b, expr, ifTrue, ifFalse)
	ifTrue.NewBr(join)
	ifFalse.NewBr(join)
	phi := join.NewPhi(
		ir.NewIncoming(constant.True, ifTrue),
		ir.NewIncoming(constant.False, ifFalse),
	)
	return result{val: phi, typ: types.Bool()}, join
}
