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

func (c *checker) checkCall(call *ast.Call) types.Type {
	switch call.Name {
	case PrintFunc:
		return c.checkPrint(call)
	case LengthFunc:
		return c.checkLength(call)
	}
	typ, ok := c.scope.Find(call.Name)
	if !ok {
		c.errs.Appendf(call, "Undeclared function '%s'", call.Name)
		c.checkArgs(call)
		return types.Undeclared()
	}
	fn, ok := typ.(*types.Function)
	if !ok {
		c.errs.Appendf(call, "Identifier '%s' is not a function", call.Name)
		c.checkArgs(call)
		return types.Undeclared()
	}
	params := fn.Params()
	if len(params) != len(call.Args) {
		c.errs.Appendf(call, "Function '%s' expects %d arguments, got %d", call.Name, len(params), len(call.Args))
	}
	for i, arg := range call.Args {
		actual := c.typeOf(call, arg)
		if i >= len(params) {
			continue
		}
		if want := params[i]; !want.Equal(actual) {
			c.errs.Appendf(arg, "Argument %d of '%s' expects %s, found %s", i+1, call.Name, want, actual)
		}
	}
	return fn.Result
}

// checkArgs checks the arguments of a call to an unknown function.
func (c *checker) checkArgs(call *ast.Call) {
	for _, arg := range call.Args {
		c.typeOf(call, arg)
	}
}

// checkPrint accepts a single argument of any type.
func (c *checker) checkPrint(call *ast.Call) types.Type {
	if len(call.Args) != 1 {
		c.errs.Appendf(call, "'%s' expects exactly 1 argument, found %d", PrintFunc, len(call.Args))
		return types.Unit()
	}
	c.typeOf(call, call.Args[0])
	return types.Unit()
}

// checkLength accepts a single array argument.
// Int is returned even when the argument is invalid.
func (c *checker) checkLength(call *ast.Call) types.Type {
	if len(call.Args) != 1 {
		c.errs.Appendf(call, "'%s' expects exactly 1 argument, found %d", LengthFunc, len(call.Args))
		return types.Int()
	}
	arg := call.Args[0]
	if typ := c.typeOf(call, arg); !types.Is(typ, types.ArrayKind) {
		c.errs.Appendf(arg, "'%s' expects an array argument, found %s", LengthFunc, typ)
	}
	return types.Int()
}
