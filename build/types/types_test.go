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


package types_test

import (
	"testing"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/types"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		x, y types.Type
		want bool
	}{
		{x: types.Int(), y: types.Int(), want: true},
		{x: types.Int(), y: types.Bool(), want: false},
		{x: types.Unit(), y: types.Unit(), want: true},
		{x: types.NewArray(types.Int(), 2), y: types.NewArray(types.Int(), 2), want: true},
		{x: types.NewArray(types.Int(), 1), y: types.NewArray(types.Int(), 2), want: false},
		{x: types.NewArray(types.Int(), 1), y: types.NewArray(types.Bool(), 1), want: false},
		{
			x:    types.NewFunction([]types.Type{types.Int()}, types.Bool()),
			y:    types.NewFunction([]types.Type{types.Int()}, types.Bool()),
			want: true,
		},
		{
			x:    types.NewFunction([]types.Type{types.Int()}, types.Bool()),
			y:    types.NewFunction([]types.Type{types.Bool()}, types.Int()),
			want: false,
		},
		{
			x:    types.NewFunction([]types.Type{types.Int(), types.Bool()}, types.Unit()),
			y:    types.NewFunction([]types.Type{types.Int(), types.Bool()}, types.Unit()),
			want: true,
		},
		{
			x:    types.NewFunction([]types.Type{types.Int(), types.Bool()}, types.Unit()),
			y:    types.NewFunction([]types.Type{types.Int()}, types.Unit()),
			want: false,
		},
		{x: types.Undeclared(), y: types.Undeclared(), want: false},
		{x: types.Undeclared(), y: types.Int(), want: false},
		{x: types.Int(), y: types.Undeclared(), want: false},
		{x: types.NewArray(types.Undeclared(), 1), y: types.NewArray(types.Undeclared(), 1), want: false},
	}
	for i, test := range tests {
		if got := test.x.Equal(test.y); got != test.want {
			t.Errorf("test %d: %s.Equal(%s) = %t but want %t", i, test.x, test.y, got, test.want)
		}
		if test.want {
			if got := test.y.Equal(test.x); !got {
				t.Errorf("test %d: equality is not symmetric: %s.Equal(%s) = false", i, test.y, test.x)
			}
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		typ  types.Type
		want string
	}{
		{typ: types.Int(), want: "Int"},
		{typ: types.Bool(), want: "Bool"},
		{typ: types.String(), want: "String"},
		{typ: types.Unit(), want: "Unit"},
		{typ: types.Undeclared(), want: "Undeclared"},
		{typ: types.NewArray(types.Int(), 1), want: "Int[]"},
		{typ: types.NewArray(types.Bool(), 3), want: "Bool[][][]"},
		{typ: types.NewFunction([]types.Type{types.Int()}, types.Int()), want: "(Int) -> Int"},
		{
			typ:  types.NewFunction([]types.Type{types.Int(), types.NewArray(types.Bool(), 1)}, types.Unit()),
			want: "(Int, Bool[]) -> Unit",
		},
	}
	for _, test := range tests {
		if got := test.typ.String(); got != test.want {
			t.Errorf("got %q but want %q", got, test.want)
		}
	}
}

func TestParams(t *testing.T) {
	single := types.NewFunction([]types.Type{types.Int()}, types.Bool())
	if got := len(single.Params()); got != 1 {
		t.Errorf("single parameter function has %d parameters", got)
	}
	if _, isTuple := single.Param.(*types.Tuple); isTuple {
		t.Errorf("single parameter function uses a tuple: %s", single.Param)
	}
	multi := types.NewFunction([]types.Type{types.Int(), types.Bool()}, types.Bool())
	if got := len(multi.Params()); got != 2 {
		t.Errorf("two parameter function has %d parameters", got)
	}
}

func TestBasicFromName(t *testing.T) {
	for _, name := range []string{"Int", "Bool", "String", "Unit"} {
		typ, ok := types.BasicFromName(name)
		if !ok {
			t.Errorf("cannot find basic type %s", name)
			continue
		}
		if typ.String() != name {
			t.Errorf("basic type %s rendered as %s", name, typ)
		}
	}
	if _, ok := types.BasicFromName("Float"); ok {
		t.Errorf("Float should not be a basic type")
	}
}
