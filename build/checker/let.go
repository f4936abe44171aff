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

// checkLet checks the value of the binding in its own scope, then binds the
// name in the enclosing scope. The type of the value is not compared with
// the declared type.
func (c *checker) checkLet(let *ast.Let) types.Type {
	declared := c.convertType(let, let.Type)
	c.nested(let, let.Value)
	c.scope.Define(let.Name, declared)
	return types.Unit()
}

func (c *checker) checkSet(set *ast.Set) types.Type {
	lhs := c.typeOf(set, set.LHS)
	rhs := c.nested(set, set.Value)
	if !lhs.Equal(rhs) {
		c.errs.Appendf(set, "Type mismatch in assignment: expected %s, found %s", lhs, rhs)
	}
	return types.Unit()
}
