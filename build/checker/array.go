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

package checker

import (
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/types"
)

// checkIndex returns the element type when all the dimensions are indexed,
// or an array of the remaining dimensions otherwise.
func (c *checker) checkIndex(expr *ast.Index) types.Type {
	for _, index := range expr.Indices {
		if typ := c.typeOf(expr, index); !types.Is(typ, types.IntKind) {
			c.errs.Appendf(index, "Array index must be of type Int, found %s", typ)
		}
	}
	typ := c.typeOf(expr, expr.X)
	array, ok := typ.(*types.Array)
	if !ok {
		c.errs.Appendf(expr, "Trying to access something that is not an array: %s", typ)
		return types.Undeclared()
	}
	remaining := array.Dims - len(expr.Indices)
	switch {
	case remaining < 0:
		c.errs.Appendf(expr, "Too many indices for array of dimension %d", array.Dims)
		return types.Undeclared()
	case remaining == 0:
		return array.Elem
	}
	return types.NewArray(array.Elem, remaining)
}

func (c *checker) checkNewArray(expr *ast.NewArray) types.Type {
	elem := c.basicType(expr, expr.Elem)
	for _, dim := range expr.Dims {
		if dim.Size == nil && dim.Init == nil {
			continue
		}
		if dim.Size == nil || dim.Init == nil {
			c.internalf(expr, "array dimension with a size or an initializer but not both")
		}
		if size := c.typeOf(expr, dim.Size); !types.Is(size, types.IntKind) {
			c.errs.Appendf(dim.Size, "Array size must be Int, found: %s", size)
		}
		init := c.typeOf(expr, dim.Init)
		if initArray, ok := init.(*types.Array); ok {
			init = initArray.Elem
		}
		if !types.IsUndeclared(elem) && !init.Equal(elem) {
			c.errs.Appendf(dim.Init, "Array initialization type mismatch: expected %s, found %s", elem, init)
		}
	}
	if types.IsUndeclared(elem) {
		return elem
	}
	return types.NewArray(elem, len(expr.Dims))
}
