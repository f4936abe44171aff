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

// Package codegen lowers a checked program into an LLVM IR module.
//
// Only Int, Bool and Unit values are lowered: Int is an i32 and both Bool and
// Unit are i1. The value of Unit is always the constant 1. Reaching a string,
// an array, or a function used as a value reports a generation error.
//
// Generation runs in three passes over the top-level declarations:
//  1. every function and global variable is given a symbol and stored in the
//     global frame of the storage table, so that declarations can refer to
//     each other regardless of their order,
//  2. global variables are initialized, either with a constant or by an
//     initialization function,
//  3. function bodies are lowered.
//
// The entry point of the C runtime is an i32 @main() that calls the
// initialization function, then the body of main. A program without a main
// taking only Unit parameters has no entry point, and its initialization
// function is never called.
package codegen

import (
	"github.com/GustavoCostaHenriques/Aguda-Compiler/base/uname"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/types"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/internal/base/scope"
	"github.com/llir/llvm/ir"
)

// MainFunc is the name of the entry point of a program.
const MainFunc = "main"

const (
	printfSymbol = "printf"
	powiSymbol   = "powi"
	initSymbol   = "aguda_init"
)

type emitter struct {
	mod   *ir.Module
	names *uname.Unique
	errs  *fmterr.Appender
	scope *scope.Table[*storage]
	// decls maps top-level declarations to their storage.
	// Wildcard declarations share a name but not a storage.
	decls map[ast.Decl]*storage

	// Helpers, created when first used.
	printf  *ir.Func
	powi    *ir.Func
	formats map[string]*ir.Global

	// init initializes the global variables that are not constants.
	init *funcLowerer
}

// bailout is a panic value used to abort generation on an internal error.
type bailout struct {
	err error
}

// Generate an LLVM IR module for a checked program.
// At most maxErrors generation errors are kept; all errors are counted.
func Generate(prog *ast.Program, maxErrors int) (mod *ir.Module, err error) {
	if prog == nil {
		return nil, fmterr.Internalf(ast.Pos{}, "no program to generate")
	}
	e := &emitter{
		mod:     ir.NewModule(),
		names:   uname.New(),
		errs:    fmterr.NewAppender(fmterr.GenerationError, maxErrors).Deduplicate(),
		scope:   scope.NewTable[*storage](),
		decls:   make(map[ast.Decl]*storage),
		formats: make(map[string]*ir.Global),
	}
	e.names.Reserve(printfSymbol, powiSymbol)
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		b, ok := r.(bailout)
		if !ok {
			panic(r)
		}
		mod, err = nil, b.err
	}()
	e.declare(prog)
	e.initGlobals(prog)
	for _, decl := range prog.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			e.emitFunc(fn)
		}
	}
	if e.init != nil {
		e.init.finish()
	}
	if depth := e.scope.Depth(); depth != 0 {
		e.internalf(prog, "%d storage scope(s) left open after generating the module", depth)
	}
	if err := e.errs.ToError(); err != nil {
		return nil, err
	}
	return e.mod, nil
}

func (e *emitter) internalf(node ast.Node, format string, a ...any) {
	pos := ast.Pos{}
	if node != nil {
		pos = node.Pos()
	}
	panic(bailout{err: fmterr.Internalf(pos, format, a...)})
}

// notImplemented reports a construct that cannot be lowered.
func (e *emitter) notImplemented(node ast.Node) {
	pos := node.Pos()
	e.errs.Appendf(node, "Not implemented: Generation code for (%d,%d) expression '%s'", pos.Line, pos.Col, ast.FirstLine(node))
}

// declare runs the first pass: every function and global variable gets a
// symbol and is stored in the global frame.
func (e *emitter) declare(prog *ast.Program) {
	// Functions are named first so that main keeps its name.
	for _, decl := range prog.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok {
			e.declareFunc(fn)
		}
	}
	for _, decl := range prog.Decls {
		switch declT := decl.(type) {
		case *ast.VarDecl:
			e.declareVar(declT)
		case *ast.FuncDecl:
		default:
			e.internalf(decl, "declaration type %T not supported", decl)
		}
	}
}

func (e *emitter) declareFunc(decl *ast.FuncDecl) {
	if decl.Type == nil {
		e.internalf(decl, "function %s has no type", decl.Name)
	}
	fnType, ok := convertType(decl.Type).(*types.Function)
	if !ok {
		e.internalf(decl, "function %s does not have a function type", decl.Name)
	}
	stor := &storage{typ: fnType}
	e.scope.Define(decl.Name, stor)
	e.decls[decl] = stor
	main := isMain(decl, fnType)
	if main {
		// The entry point symbol is emitted by emitFunc.
		e.names.Reserve(MainFunc)
	}
	result, resultOk := llType(fnType.Result)
	params := make([]*ir.Param, len(decl.Params))
	for i, paramType := range fnType.Params() {
		llParam, paramOk := llType(paramType)
		if !paramOk || i >= len(params) {
			resultOk = false
			break
		}
		// Parameters are named when the body is lowered.
		params[i] = ir.NewParam("", llParam)
	}
	if !resultOk {
		e.notImplemented(decl)
		return
	}
	if main {
		params = nil
	}
	stor.fn = e.mod.NewFunc(e.names.Symbol(decl.Name), result, params...)
	stor.value = stor.fn
}

func (e *emitter) declareVar(decl *ast.VarDecl) {
	typ := convertType(decl.Type)
	stor := &storage{typ: typ}
	e.scope.Define(decl.Name, stor)
	e.decls[decl] = stor
	llTyp, ok := llType(typ)
	if !ok {
		e.notImplemented(decl)
		return
	}
	global := e.mod.NewGlobalDef(e.names.Symbol(decl.Name), zero(llTyp))
	stor.value = global
	stor.slot = global
}

// isMain returns true if the function is the entry point of the program.
// The entry point only takes unit parameters: its body is emitted without
// parameters and called by an i32 @main() that the C runtime can call.
func isMain(decl *ast.FuncDecl, fnType *types.Function) bool {
	if decl.Name != MainFunc {
		return false
	}
	for _, param := range fnType.Params() {
		if !types.Is(param, types.UnitKind) {
			return false
		}
	}
	return true
}
