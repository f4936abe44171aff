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


package uname_test

import (
	"testing"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/base/uname"
)

func TestName(t *testing.T) {
	tests := []struct {
		name, want string
	}{
		{
			name: "a",
			want: "a",
		},
		{
			name: "a",
			want: "a1",
		},
		{
			name: "a",
			want: "a2",
		},
		{
			name: "b",
			want: "b",
		},
		{
			name: "b",
			want: "b1",
		},
		{
			name: "c",
			want: "c",
		},
	}
	unames := uname.New()
	for i, test := range tests {
		got := unames.Name(test.name)
		if got != test.want {
			t.Errorf("test %d: for name %s, got %s but want %s", i, test.name, got, test.want)
		}
	}
}

func TestReserve(t *testing.T) {
	unames := uname.New()
	unames.Reserve("printf", "x1")
	if got := unames.Name("printf"); got != "printf1" {
		t.Errorf("got %s but want printf1", got)
	}
	if got := unames.Name("x"); got != "x" {
		t.Errorf("got %s but want x", got)
	}
	// x1 is reserved: the next x is x2.
	if got := unames.Name("x"); got != "x2" {
		t.Errorf("got %s but want x2", got)
	}
}

func TestSuffixCollision(t *testing.T) {
	unames := uname.New()
	names := []string{unames.Name("a1"), unames.Name("a"), unames.Name("a")}
	want := []string{"a1", "a", "a2"}
	for i := range names {
		if names[i] != want[i] {
			t.Errorf("name %d: got %s but want %s", i, names[i], want[i])
		}
	}
}

func TestSymbol(t *testing.T) {
	tests := []struct {
		root, want string
	}{
		{root: "main", want: "main"},
		{root: "f'", want: "f_"},
		{root: "a.b-c", want: "a_b_c"},
		{root: "f'", want: "f_1"},
	}
	unames := uname.New()
	for _, test := range tests {
		if got := unames.Symbol(test.root); got != test.want {
			t.Errorf("Symbol(%q) = %q but want %q", test.root, got, test.want)
		}
	}
}
