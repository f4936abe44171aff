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
	"math"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/types"
)

func (c *checker) checkBinary(expr *ast.Binary) types.Type {
	x := c.typeOf(expr, expr.X)
	y := c.typeOf(expr, expr.Y)
	bothInt := types.Is(x, types.IntKind) && types.Is(y, types.IntKind)
	switch {
	case expr.Op.IsArithmetic():
		if !bothInt {
			c.errs.Appendf(expr, "Arithmetic operations require Int operands, found %s and %s", x, y)
		}
		return types.Int()
	case expr.Op.IsRelational():
		if !bothInt {
			c.errs.Appendf(expr, "Relational operators '%s' require Int operands, found %s and %s", expr.Op, x, y)
		}
		return types.Bool()
	case expr.Op.IsEquality():
		if !x.Equal(y) {
			c.errs.Appendf(expr, "Equality operator '%s' requires operands of the same type, found %s and %s", expr.Op, x, y)
		}
		return types.Bool()
	case expr.Op.IsLogical():
		if !types.Is(x, types.BoolKind) || !types.Is(y, types.BoolKind) {
			c.errs.Appendf(expr, "Logical operations require Bool operands, found %s and %s", x, y)
		}
		return types.Bool()
	}
	c.internalf(expr, "binary operator %q not supported", expr.Op)
	return types.Undeclared()
}

func (c *checker) checkUnary(expr *ast.Unary) types.Type {
	switch expr.Op {
	case ast.Not:
		x := c.typeOf(expr, expr.X)
		if !types.Is(x, types.BoolKind) {
			c.errs.Appendf(expr, "Unary '!' expects Bool operand, found: %s", x)
		}
		return types.Bool()
	case ast.Neg:
		lit, ok := expr.X.(*ast.IntLit)
		if !ok {
			x := c.typeOf(expr, expr.X)
			if !types.Is(x, types.IntKind) {
				c.errs.Appendf(expr, "Unary '-' expects Int operand, found: %s", x)
			}
			return types.Int()
		}
		// The literal is checked with its sign so that the smallest Int can be written.
		if neg := -lit.Value; !inInt32(neg) {
			c.errs.Appendf(expr, "Result of unary minus is out of Int bounds: %d", neg)
		}
		return types.Int()
	}
	c.internalf(expr, "unary operator %q not supported", expr.Op)
	return types.Undeclared()
}

func (c *checker) checkIntLit(lit *ast.IntLit) types.Type {
	if !inInt32(lit.Value) {
		c.errs.Appendf(lit, "Integer literal is out of Int bounds: %d", lit.Value)
	}
	return types.Int()
}

func inInt32(v int64) bool {
	return math.MinInt32 <= v && v <= math.MaxInt32
}
