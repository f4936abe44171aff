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
	"github.com/llir/llvm/ir/constant"
	lltypes "github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// mainResult is the type returned by the entry point.
var mainResult = lltypes.I32

// result of lowering an expression.
type result struct {
	val value.Value
	typ types.Type
}

// unit is the value of all unit expressions.
var unit = result{val: constant.NewInt(lltypes.I1, 1), typ: types.Unit()}

// failed is returned when an expression could not be lowered.
// Expressions using a failed result are not lowered and not reported.
var failed = result{val: constant.NewInt(lltypes.I1, 1), typ: types.Undeclared()}

func (r result) failed() bool {
	return types.IsUndeclared(r.typ)
}

// llType returns the LLVM type of a value of a given type.
func llType(typ types.Type) (lltypes.Type, bool) {
	switch {
	case types.Is(typ, types.IntKind):
		return lltypes.I32, true
	case types.Is(typ, types.BoolKind), types.Is(typ, types.UnitKind):
		return lltypes.I1, true
	}
	return nil, false
}

// zero returns the zero value of an LLVM integer type.
func zero(typ lltypes.Type) constant.Constant {
	return constant.NewInt(typ.(*lltypes.IntType), 0)
}

// one returns the placeholder value of an LLVM integer type.
func one(typ lltypes.Type) constant.Constant {
	return constant.NewInt(typ.(*lltypes.IntType), 1)
}

// convertType converts the syntax of a checked type into a type.
func convertType(expr ast.TypeExpr) types.Type {
	switch exprT := expr.(type) {
	case *ast.BasicType:
		if typ, ok := types.BasicFromName(exprT.Name); ok {
			return typ
		}
	case *ast.ArrayType:
		if exprT.Elem == nil {
			break
		}
		if elem, ok := types.BasicFromName(exprT.Elem.Name); ok {
			return types.NewArray(elem, exprT.Dims)
		}
	case *ast.FuncType:
		if exprT.Params == nil {
			break
		}
		params := make([]types.Type, len(exprT.Params.Types))
		for i, param := range exprT.Params.Types {
			params[i] = convertType(param)
		}
		return types.NewFunction(params, convertType(exprT.Result))
	}
	return types.Undeclared()
}
