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
)

// lowerIf merges the values of the branches with a phi in the join block.
// The incoming blocks of the phi are the blocks where each branch exits.
func (fl *funcLowerer) lowerIf(b *ir.Block, expr *ast.If) (result, *ir.Block) {
	ifTrue := fl.newBlock("if_true")
	ifFalse := fl.newBlock("if_false")
	join := fl.newBlock("if_join")
	fl.lowerCond(b, expr.Cond, ifTrue, ifFalse)

	thenRes, thenExit := fl.nested(ifTrue, expr.Then)
	thenExit.NewBr(join)
	elseRes, elseExit := unit, ifFalse
	if expr.Else != nil {
		elseRes, elseExit = fl.nested(ifFalse, expr.Else)
	}
	elseExit.NewBr(join)

	if thenRes.failed() || elseRes.failed() {
		return failed, join
	}
	if types.Is(thenRes.typ, types.UnitKind) {
		return unit, join
	}
	llTyp, ok := llType(thenRes.typ)
	if !ok {
		fl.internalf(expr, "if branches of type %s cannot be merged", thenRes.typ)
	}
	thenVal, elseVal := thenRes.val, elseRes.val
	if !elseRes.typ.Equal(thenRes.typ) {
		elseVal = one(llTyp)
	}
	phi := join.NewPhi(
		ir.NewIncoming(thenVal, thenExit),
		ir.NewIncoming(elseVal, elseExit),
	)
	return result{val: phi, typ: thenRes.typ}, join
}

// lowerWhile checks the condition before each iteration.
func (fl *funcLowerer) lowerWhile(b *ir.Block, expr *ast.While) (result, *ir.Block) {
	cond := fl.newBlock("while_cond")
	body := fl.newBlock("while_body")
	end := fl.newBlock("while_end")
	b.NewBr(cond)
	fl.lowerCond(cond, expr.Cond, body, end)
	_, bodyExit := fl.nested(body, expr.Body)
	bodyExit.NewBr(cond)
	return unit, end
}
