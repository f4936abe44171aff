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
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/enum"
	lltypes "github.com/llir/llvm/ir/types"
)

// initGlobals runs the second pass: constant initializers are folded into
// the global definitions, the others are lowered into the initialization
// function.
func (e *emitter) initGlobals(prog *ast.Program) {
	for _, decl := range prog.Decls {
		varDecl, ok := decl.(*ast.VarDecl)
		if !ok {
			continue
		}
		stor := e.decls[varDecl]
		global, ok := stor.value.(*ir.Global)
		if !ok {
			// Type not supported: already reported.
			continue
		}
		if init, ok := fold(varDecl.Value, global.ContentType); ok {
			global.Init = init
			continue
		}
		e.lowerGlobal(varDecl, global)
	}
}

// fold returns the constant value of an initializer, if it is a constant.
func fold(expr ast.Expr, typ lltypes.Type) (constant.Constant, bool) {
	switch exprT := expr.(type) {
	case *ast.IntLit:
		if !typ.Equal(lltypes.I32) {
			return nil, false
		}
		return constant.NewInt(lltypes.I32, exprT.Value), true
	case *ast.BoolLit:
		if !typ.Equal(lltypes.I1) {
			return nil, false
		}
		return constant.NewBool(exprT.Value), true
	case *ast.UnitLit:
		if !typ.Equal(lltypes.I1) {
			return nil, false
		}
		return unit.val.(constant.Constant), true
	case *ast.Unary:
		x, ok := fold(exprT.X, typ)
		if !ok {
			return nil, false
		}
		xInt, ok := x.(*constant.Int)
		if !ok {
			return nil, false
		}
		switch {
		case exprT.Op == ast.Neg && typ.Equal(lltypes.I32):
			return constant.NewInt(lltypes.I32, -xInt.X.Int64()), true
		case exprT.Op == ast.Not && typ.Equal(lltypes.I1):
			return constant.NewBool(xInt.X.Sign() == 0), true
		}
	case *ast.Paren:
		return fold(exprT.X, typ)
	case *ast.Sequence:
		if len(exprT.Exprs) == 1 {
			return fold(exprT.Exprs[0], typ)
		}
	}
	return nil, false
}

// lowerGlobal lowers the initializer of a global variable into the
// initialization function.
func (e *emitter) lowerGlobal(decl *ast.VarDecl, global *ir.Global) {
	if e.init == nil {
		fn := e.mod.NewFunc(e.names.Name(initSymbol), lltypes.Void)
		fn.Linkage = enum.LinkageInternal
		e.init = e.newFuncLowerer(fn)
		e.init.exit = e.init.entry
	}
	fl := e.init
	end := e.scope.Begin()
	res, exit := fl.lower(fl.exit, decl.Value)
	end()
	fl.exit = exit
	if res.failed() {
		return
	}
	if !res.typ.Equal(e.decls[decl].typ) {
		e.notImplemented(decl)
		return
	}
	exit.NewStore(res.val, global)
}

// finish terminates the initialization function.
func (fl *funcLowerer) finish() {
	fl.exit.NewRet(nil)
}
