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


// Package types defines the types of aguda values.
//
// Types are immutable values compared structurally. A type that could not be
// resolved because an error has already been reported is represented by
// Undeclared, which never equals any type, itself included.
package types

import "strings"

// Kind of a type.
type Kind int

const (
	// UndeclaredKind is the kind of a type on which an error has been reported.
	UndeclaredKind Kind = iota
	IntKind
	BoolKind
	StringKind
	UnitKind
	ArrayKind
	FuncKind
	TupleKind
)

var kindToString = map[Kind]string{
	UndeclaredKind: "Undeclared",
	IntKind:        "Int",
	BoolKind:       "Bool",
	StringKind:     "String",
	UnitKind:       "Unit",
	ArrayKind:      "Array",
	FuncKind:       "Function",
	TupleKind:      "Tuple",
}

func (k Kind) String() string {
	s, ok := kindToString[k]
	if !ok {
		return "UnknownKind"
	}
	return s
}

// Type of a value.
type Type interface {
	// Kind returns the kind of the type.
	Kind() Kind
	// Equal returns true if both types are structurally equal.
	Equal(Type) bool
	// String representation of the type, as used in error messages.
	String() string
}

type undeclaredType struct{}

var undeclared = &undeclaredType{}

// Undeclared returns the type assigned to an expression with an error.
func Undeclared() Type { return undeclared }

func (*undeclaredType) Kind() Kind { return UndeclaredKind }

func (*undeclaredType) Equal(Type) bool { return false }

func (*undeclaredType) String() string { return "Undeclared" }

// Basic is a type without any component.
type Basic struct {
	kind Kind
}

var (
	intType    = &Basic{kind: IntKind}
	boolType   = &Basic{kind: BoolKind}
	stringType = &Basic{kind: StringKind}
	unitType   = &Basic{kind: UnitKind}
)

// Int returns the signed 32-bit integer type.
func Int() Type { return intType }

// Bool returns the boolean type.
func Bool() Type { return boolType }

// String returns the string type.
func String() Type { return stringType }

// Unit returns the unit type.
func Unit() Type { return unitType }

var basicNames = map[string]Type{
	"Int":    intType,
	"Bool":   boolType,
	"String": stringType,
	"Unit":   unitType,
}

// BasicFromName returns the basic type given its name in the source code.
func BasicFromName(name string) (Type, bool) {
	typ, ok := basicNames[name]
	return typ, ok
}

// Kind of the type.
func (t *Basic) Kind() Kind { return t.kind }

// Equal returns true if other is the same basic type.
func (t *Basic) Equal(other Type) bool {
	return other != nil && other.Kind() == t.kind
}

func (t *Basic) String() string {
	return t.kind.String()
}

// Array is a multi-dimensional array of a basic type.
type Array struct {
	Elem Type
	Dims int
}

// NewArray returns an array type.
func NewArray(elem Type, dims int) *Array {
	return &Array{Elem: elem, Dims: dims}
}

// Kind returns ArrayKind.
func (t *Array) Kind() Kind { return ArrayKind }

// Equal returns true if other is an array with the same element type and dimensions.
func (t *Array) Equal(other Type) bool {
	otherT, ok := other.(*Array)
	if !ok {
		return false
	}
	return t.Dims == otherT.Dims && t.Elem.Equal(otherT.Elem)
}

func (t *Array) String() string {
	return t.Elem.String() + strings.Repeat("[]", t.Dims)
}

// Tuple is an ordered list of types.
// It is only used for the parameters of functions with more than one parameter.
type Tuple struct {
	Types []Type
}

// Kind returns TupleKind.
func (t *Tuple) Kind() Kind { return TupleKind }

// Equal returns true if other is a tuple with pairwise equal types.
func (t *Tuple) Equal(other Type) bool {
	otherT, ok := other.(*Tuple)
	if !ok {
		return false
	}
	return equalAll(t.Types, otherT.Types)
}

func (t *Tuple) String() string {
	return "(" + join(t.Types) + ")"
}

// Function maps a parameter type to a result type.
type Function struct {
	Param  Type
	Result Type
}

// NewFunction returns a function type given the list of its parameters.
// The parameter type is a tuple when there is more than one parameter.
func NewFunction(params []Type, result Type) *Function {
	var param Type
	switch len(params) {
	case 0:
		param = &Tuple{}
	case 1:
		param = params[0]
	default:
		param = &Tuple{Types: params}
	}
	return &Function{Param: param, Result: result}
}

// Kind returns FuncKind.
func (t *Function) Kind() Kind { return FuncKind }

// Params returns the list of parameter types.
func (t *Function) Params() []Type {
	if tuple, ok := t.Param.(*Tuple); ok {
		return tuple.Types
	}
	return []Type{t.Param}
}

// Equal returns true if other is a function with equal parameter and result types.
func (t *Function) Equal(other Type) bool {
	otherT, ok := other.(*Function)
	if !ok {
		return false
	}
	return t.Param.Equal(otherT.Param) && t.Result.Equal(otherT.Result)
}

func (t *Function) String() string {
	return "(" + join(t.Params()) + ") -> " + t.Result.String()
}

// IsUndeclared returns true if the type is the undeclared type.
func IsUndeclared(typ Type) bool {
	return typ == nil || typ.Kind() == UndeclaredKind
}

// Is returns true if the type is of the given kind.
func Is(typ Type, kind Kind) bool {
	return typ != nil && typ.Kind() == kind
}

func equalAll(xs, ys []Type) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i, x := range xs {
		if !x.Equal(ys[i]) {
			return false
		}
	}
	return true
}

func join(typs []Type) string {
	ss := make([]string, len(typs))
	for i, typ := range typs {
		ss[i] = typ.String()
	}
	return strings.Join(ss, ", ")
}
