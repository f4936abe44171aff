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

// predeclare registers a top-level declaration in the global scope.
func (c *checker) predeclare(decl ast.Decl) {
	switch declT := decl.(type) {
	case *ast.VarDecl:
		c.register(declT, declT.Name, declT.Type, "variable", "Variable")
	case *ast.FuncDecl:
		if declT.Type == nil {
			c.internalf(declT, "function %s has no type", declT.Name)
		}
		c.register(declT, declT.Name, declT.Type, "function", "Function")
	default:
		c.internalf(decl, "declaration type %T not supported", decl)
	}
}

func (c *checker) register(decl ast.Decl, name string, typeExpr ast.TypeExpr, what, title string) {
	typ := c.convertType(decl, typeExpr)
	c.declared[decl] = typ
	if IsReserved(name) {
		c.errs.Appendf(decl, "Cannot use reserved name '%s' as a %s", name, what)
		return
	}
	if name != Wildcard && c.scope.IsLocal(name) {
		c.errs.Appendf(decl, "%s '%s' is already defined", title, name)
		return
	}
	c.scope.Define(name, typ)
}

func (c *checker) checkDecl(decl ast.Decl) {
	switch declT := decl.(type) {
	case *ast.VarDecl:
		c.checkVarDecl(declT)
	case *ast.FuncDecl:
		c.checkFuncDecl(declT)
	default:
		c.internalf(decl, "declaration type %T not supported", decl)
	}
}

func (c *checker) checkVarDecl(decl *ast.VarDecl) {
	declared := c.declared[decl]
	// The variable cannot refer to itself in its initializer.
	hidden := c.scope.Remove(decl.Name) == nil
	actual := c.nested(decl, decl.Value)
	if hidden {
		c.scope.Define(decl.Name, declared)
	}
	if types.IsUndeclared(declared) || declared.Equal(actual) {
		return
	}
	c.errs.Appendf(ast.Last(decl.Value), "Declared type %s does not match actual type %s", declared, actual)
}

func (c *checker) checkFuncDecl(decl *ast.FuncDecl) {
	fn, ok := c.declared[decl].(*types.Function)
	if !ok {
		c.internalf(decl, "function %s has type %T", decl.Name, c.declared[decl])
	}
	defer c.scope.Begin()()
	params := fn.Params()
	if len(params) != len(decl.Params) {
		c.errs.Appendf(decl, "Function parameters count doesn't match type signature")
	}
	for i, param := range decl.Params {
		if param == nil {
			c.internalf(decl, "missing parameter %d of function %s", i, decl.Name)
		}
		if IsReserved(param.Name) {
			c.errs.Appendf(param, "Cannot use reserved name '%s' as a parameter", param.Name)
			continue
		}
		if i >= len(params) {
			c.scope.Define(param.Name, types.Undeclared())
			continue
		}
		c.scope.Define(param.Name, params[i])
	}
	actual := c.typeOf(decl, decl.Body)
	if types.IsUndeclared(fn.Result) || fn.Result.Equal(actual) {
		return
	}
	c.errs.Appendf(ast.Last(decl.Body), "Function body does not match declared return type %s. Found: %s", fn.Result, actual)
}

// convertType converts the syntax of a type into a type.
// Unknown type names are reported and converted to the undeclared type.
func (c *checker) convertType(parent ast.Node, expr ast.TypeExpr) types.Type {
	switch exprT := expr.(type) {
	case nil:
		c.internalf(parent, "missing type")
	case *ast.BasicType:
		return c.basicType(exprT, exprT.Name)
	case *ast.ArrayType:
		if exprT.Elem == nil || exprT.Dims < 1 {
			c.internalf(exprT, "invalid array type")
		}
		elem := c.basicType(exprT.Elem, exprT.Elem.Name)
		if types.IsUndeclared(elem) {
			return elem
		}
		return types.NewArray(elem, exprT.Dims)
	case *ast.FuncType:
		if exprT.Params == nil {
			c.internalf(exprT, "function type without parameters")
		}
		params := make([]types.Type, len(exprT.Params.Types))
		for i, param := range exprT.Params.Types {
			params[i] = c.convertType(exprT, param)
		}
		return types.NewFunction(params, c.convertType(exprT, exprT.Result))
	default:
		c.internalf(expr, "type expression %T not supported", expr)
	}
	return types.Undeclared()
}

func (c *checker) basicType(node ast.Node, name string) types.Type {
	typ, ok := types.BasicFromName(name)
	if !ok {
		c.errs.Appendf(node, "Unknown type '%s'", name)
		return types.Undeclared()
	}
	return typ
}
