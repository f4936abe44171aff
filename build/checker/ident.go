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

func (c *checker) checkIdent(ident *ast.Ident) types.Type {
	typ, ok := c.scope.Find(ident.Name)
	if !ok {
		c.errs.Appendf(ident, "Undeclared variable '%s'", ident.Name)
		return types.Undeclared()
	}
	if ident.Name == Wildcard {
		c.errs.Appendf(ident, "Wildcard '%s' cannot be used in expressions", Wildcard)
		return types.Undeclared()
	}
	return typ
}
