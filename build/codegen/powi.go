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
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
)

// powiFunc returns the integer power helper, adding it to the module on first use.
//
// The helper multiplies an accumulator by the base as many times as the
// exponent. A negative exponent returns 1.
func (e *emitter) powiFunc() *ir.Func {
	if e.powi != nil {
		return e.powi
	}
	base := ir.NewParam("base", lltypes.I32)
	exp := ir.NewParam("exp", lltypes.I32)
	fn := e.mod.NewFunc(powiSymbol, lltypes.I32, base, exp)
	fn.Linkage = enum.LinkageInternal
	entry := fn.NewBlock("entry")
	loop := fn.NewBlock("loop")
	body := fn.NewBlock("body")
	end := fn.NewBlock("end")

	acc := entry.NewAlloca(lltypes.I32)
	acc.SetName("result")
	entry.NewStore(constant.NewInt(lltypes.I32, 1), acc)
	i := entry.NewAlloca(lltypes.I32)
	i.SetName("i")
	entry.NewStore(constant.NewInt(lltypes.I32, 0), i)
	entry.NewBr(loop)

	iVal := loop.NewLoad(lltypes.I32, i)
	iVal.SetName("i_val")
	cond := loop.NewICmp(enum.IPredSLT, iVal, exp)
	cond.SetName("cond")
	loop.NewCondBr(cond, body, end)

	resVal := body.NewLoad(lltypes.I32, acc)
	resVal.SetName("res_val")
	mul := body.NewMul(resVal, base)
	mul.SetName("mul")
	body.NewStore(mul, acc)
	inc := body.NewAdd(iVal, constant.NewInt(lltypes.I32, 1))
	inc.SetName("inc")
	body.NewStore(inc, i)
	body.NewBr(loop)

	final := end.NewLoad(lltypes.I32, acc)
	final.SetName("final")
	end.NewRet(final)

	e.powi = fn
	return fn
}
