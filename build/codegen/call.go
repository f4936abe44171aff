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
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/checker"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/types"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/value"
)

func (fl *funcLowerer) lowerCall(b *ir.Block, call *ast.Call) (result, *ir.Block) {
	switch call.Name {
	case checker.PrintFunc:
		return fl.lowerPrint(b, call)
	case checker.LengthFunc:
		// Arrays are not lowered.
		fl.notImplemented(call)
		return failed, b
	}
	stor, ok := fl.scope.Find(call.Name)
	if !ok {
		fl.internalf(call, "no storage for function %s", call.Name)
	}
	fnType, isFunc := stor.typ.(*types.Function)
	if !isFunc || stor.fn == nil {
		// Calls to parameters, local variables, or functions with an unsupported signature.
		fl.notImplemented(call)
		return failed, b
	}
	args := make([]value.Value, 0, len(call.Args))
	argsOk := true
	for _, arg := range call.Args {
		var res result
		res, b = fl.lower(b, arg)
		argsOk = argsOk && !res.failed()
		args = append(args, res.val)
	}
	if !argsOk {
		return failed, b
	}
	// The body of main takes no LLVM parameters.
	args = args[:min(len(args), len(stor.fn.Params))]
	inst := b.NewCall(stor.fn, args...)
	if types.Is(fnType.Result, types.UnitKind) {
		return unit, b
	}
	return result{val: inst, typ: fnType.Result}, b
}
