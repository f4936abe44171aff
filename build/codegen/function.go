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
	"github.com/GustavoCostaHenriques/Aguda-Compiler/base/uname"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/types"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
)

// funcLowerer lowers expressions into the blocks of a function.
type funcLowerer struct {
	*emitter
	fn    *ir.Func
	entry *ir.Block
	// exit is the open block where the next global initializer is lowered.
	exit *ir.Block
	// names of the function: locals and blocks share the same namespace.
	names *uname.Unique
}

func (e *emitter) newFuncLowerer(fn *ir.Func) *funcLowerer {
	fl := &funcLowerer{
		emitter: e,
		fn:      fn,
		names:   uname.New(),
	}
	fl.entry = fl.newBlock("entry")
	return fl
}

// newBlock appends a new block with a unique name to the function.
func (fl *funcLowerer) newBlock(root string) *ir.Block {
	return fl.fn.NewBlock(fl.names.Name(root))
}

// alloca reserves a stack slot in the entry block of the function.
func (fl *funcLowerer) alloca(name string, typ lltypes.Type) *ir.InstAlloca {
	slot := fl.entry.NewAlloca(typ)
	slot.SetName(fl.names.Symbol(name + "_addr"))
	return slot
}

// emitFunc lowers the body of a function.
func (e *emitter) emitFunc(decl *ast.FuncDecl) {
	stor, ok := e.decls[decl]
	if !ok {
		e.internalf(decl, "function %s has not been declared", decl.Name)
	}
	if stor.fn == nil {
		// Signature not supported: already reported.
		return
	}
	fnType := stor.typ.(*types.Function)
	fl := e.newFuncLowerer(stor.fn)
	defer e.scope.Begin()()
	main := isMain(decl, fnType)
	if main {
		e.emitEntryPoint(stor.fn)
	}
	for i, param := range decl.Params {
		typ := fnType.Params()[i]
		if main {
			e.scope.Define(param.Name, &storage{typ: typ, value: unit.val})
			continue
		}
		llParam := stor.fn.Params[i]
		llParam.SetName(fl.names.Symbol(param.Name))
		slot := fl.alloca(param.Name, llParam.Typ)
		fl.entry.NewStore(llParam, slot)
		e.scope.Define(param.Name, &storage{typ: typ, value: llParam, slot: slot})
	}
	res, exit := fl.lower(fl.entry, decl.Body)
	if res.failed() || !res.typ.Equal(fnType.Result) {
		exit.NewRet(one(stor.fn.Sig.RetType))
		return
	}
	exit.NewRet(res.val)
}

// emitEntryPoint emits the function called by the C runtime. It initializes
// the global variables once and runs the body of main.
func (e *emitter) emitEntryPoint(body *ir.Func) {
	fn := e.mod.NewFunc(MainFunc, mainResult)
	entry := fn.NewBlock("entry")
	if e.init != nil {
		entry.NewCall(e.init.fn)
	}
	entry.NewCall(body)
	entry.NewRet(constant.NewInt(mainResult, 0))
}
