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
)

// Names and contents of the formats passed to printf.
const (
	fmtInt   = ".fmt.int"
	strTrue  = ".str.true"
	strFalse = ".str.false"
	strUnit  = ".str.unit"
)

var formatText = map[string]string{
	fmtInt:   "%d",
	strTrue:  "true",
	strFalse: "false",
	strUnit:  "unit",
}

// printfFunc returns the declaration of printf, adding it to the module on first use.
func (e *emitter) printfFunc() *ir.Func {
	if e.printf != nil {
		return e.printf
	}
	e.printf = e.mod.NewFunc(printfSymbol, lltypes.I32, ir.NewParam("", lltypes.I8Ptr))
	e.printf.Sig.Variadic = true
	return e.printf
}

// format returns a pointer to the first character of a constant string.
// Strings with the same content are only defined once.
func (e *emitter) format(name string) constant.Constant {
	text := formatText[name]
	global, ok := e.formats[text]
	if !ok {
		global = e.mod.NewGlobalDef(name, constant.NewCharArrayFromString(text+"\x00"))
		global.Immutable = true
		global.Linkage = enum.LinkagePrivate
		e.formats[text] = global
	}
	zero := constant.NewInt(lltypes.I32, 0)
	ptr := constant.NewGetElementPtr(global.ContentType, global, zero, zero)
	ptr.InBounds = true
	return ptr
}

// lowerPrint prints the value of its single argument.
// Booleans select the string to print at run time.
func (fl *funcLowerer) lowerPrint(b *ir.Block, call *ast.Call) (result, *ir.Block) {
	if len(call.Args) != 1 {
		fl.internalf(call, "print called with %d arguments", len(call.Args))
	}
	arg := call.Args[0]
	x, b := fl.lower(b, arg)
	if x.failed() {
		return failed, b
	}
	printf := fl.printfFunc()
	switch {
	case types.Is(x.typ, types.IntKind):
		b.NewCall(printf, fl.format(fmtInt), x.val)
	case types.Is(x.typ, types.BoolKind):
		str := b.NewSelect(x.val, fl.format(strTrue), fl.format(strFalse))
		b.NewCall(printf, str)
	case types.Is(x.typ, types.UnitKind):
		b.NewCall(printf, fl.format(strUnit))
	default:
		fl.notImplemented(call)
		return failed, b
	}
	return unit, b
}
