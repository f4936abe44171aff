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

// checkIf returns the type of the then branch.
// A missing else branch has the unit type.
func (c *checker) checkIf(expr *ast.If) types.Type {
	cond := c.nested(expr, expr.Cond)
	if !types.Is(cond, types.BoolKind) {
		c.errs.Appendf(expr.Cond, "Expected condition to be of type Bool, found %s", cond)
	}
	thenType := c.nested(expr, expr.Then)
	var elseType types.Type = types.Unit()
	if expr.Else != nil {
		elseType = c.nested(expr, expr.Else)
	}
	if !thenType.Equal(elseType) {
		c.errs.Appendf(expr, "Expected both branches to return same type, found %s and %s", thenType, elseType)
	}
	return thenType
}

func (c *checker) checkWhile(expr *ast.While) types.Type {
	cond := c.typeOf(expr, expr.Cond)
	if !types.Is(cond, types.BoolKind) {
		c.errs.Appendf(expr.Cond, "Condition of while must be Bool, found %s", cond)
	}
	c.nested(expr, expr.Body)
	return types.Unit()
}
