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

// lowerLet lowers the value in its own scope, then stores it in a new stack
// slot bound to the name in the current scope.
func (fl *funcLowerer) lowerLet(b *ir.Block, let *ast.Let) (result, *ir.Block) {
	declared := convertType(let.Type)
	llTyp, ok := llType(declared)
	if !ok {
		fl.notImplemented(let)
		fl.scope.Define(let.Name, &storage{typ: declared})
		return failed, b
	}
	res, b := fl.nested(b, let.Value)
	slot := fl.alloca(let.Name, llTyp)
	fl.scope.Define(let.Name, &storage{typ: declared, slot: slot})
	if res.failed() {
		return unit, b
	}
	val := res.val
	switch {
	case types.Is(declared, types.UnitKind):
		val = unit.val
	case !res.typ.Equal(declared):
		fl.notImplemented(let)
		return unit, b
	}
	b.NewStore(val, slot)
	reload := b.NewLoad(llTyp, slot)
	reload.SetName(fl.names.Symbol(let.Name))
	return unit, b
}

// lowerSet stores a value in the slot of a name.
func (fl *funcLowerer) lowerSet(b *ir.Block, set *ast.Set) (result, *ir.Block) {
	ident, ok := set.LHS.(*ast.Ident)
	if !ok {
		fl.notImplemented(set)
		return failed, b
	}
	res, b := fl.nested(b, set.Value)
	stor, ok := fl.scope.Find(ident.Name)
	if !ok {
		fl.internalf(ident, "no storage for %s", ident.Name)
	}
	if stor.slot == nil {
		fl.notImplemented(set)
		return failed, b
	}
	if res.failed() {
		return unit, b
	}
	val := res.val
	if types.Is(stor.typ, types.UnitKind) {
		val = unit.val
	}
	b.NewStore(val, stor.slot)
	return unit, b
}
