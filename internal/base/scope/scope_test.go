// Copyright 2024 Google LLC
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

package scope

import "testing"

func TestDefine(t *testing.T) {
	s := NewScope[int](nil)
	s.Define("x", 1)
	s.Define("y", 2)

	if value, ok := s.Find("x"); value != 1 || !ok {
		t.Errorf("Find('x') = %v, %v, want 1, true", value, ok)
	}
	if value, ok := s.Find("y"); value != 2 || !ok {
		t.Errorf("Find('y') = %v, %v, want 2, true", value, ok)
	}
	if value, ok := s.Find("z"); value != 0 || ok {
		t.Errorf("Find('z') = %v, %v, want 0, false", value, ok)
	}
	if got, want := s.String(), "x: 1\ny: 2"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestRemove(t *testing.T) {
	s := NewScope[int](nil)
	s.Define("x", 1)
	if err := s.Remove("x"); err != nil {
		t.Error(err)
	}
	if err := s.Remove("y"); err == nil {
		t.Error("Remove() succeeded, expected failure")
	}
	if value, ok := s.Find("x"); value != 0 || ok {
		t.Errorf("Find('x') = %v, %v, want 0, false", value, ok)
	}
}

func TestNestedScope(t *testing.T) {
	s1 := NewScope[int](nil)
	s1.Define("x", 1)
	s1.Define("z", 20)

	s2 := NewScope(s1)
	s2.Define("x", 10)
	s2.Define("y", 2)

	if value, ok := s1.Find("x"); value != 1 || !ok {
		t.Errorf("s1.Find('x') = %v, %v, want 1, true", value, ok)
	}
	if value, ok := s1.Find("y"); value != 0 || ok {
		t.Errorf("s1.Find('y') = %v, %v, want 0, false", value, ok)
	}
	if value, ok := s2.Find("x"); value != 10 || !ok {
		t.Errorf("s2.Find('x') = %v, %v, want 10, true", value, ok)
	}
	if value, ok := s2.Find("z"); value != 20 || !ok {
		t.Errorf("s2.Find('z') = %v, %v, want 20, true", value, ok)
	}
	if s2.IsLocal("z") {
		t.Errorf("s2.IsLocal('z') = true, want false")
	}
}

func TestTableGuard(t *testing.T) {
	table := NewTable[int]()
	table.Define("x", 1)
	func() {
		defer table.Begin()()
		table.Define("x", 2)
		table.Define("y", 3)
		if value, _ := table.Find("x"); value != 2 {
			t.Errorf("inner Find('x') = %v, want 2", value)
		}
		if got := table.Depth(); got != 1 {
			t.Errorf("inner Depth() = %d, want 1", got)
		}
	}()
	if value, _ := table.Find("x"); value != 1 {
		t.Errorf("outer Find('x') = %v, want 1", value)
	}
	if _, ok := table.Find("y"); ok {
		t.Errorf("y visible after its scope ended")
	}
	if got := table.Depth(); got != 0 {
		t.Errorf("Depth() = %d, want 0", got)
	}
}

func TestTableGuardIdempotent(t *testing.T) {
	table := NewTable[int]()
	outer := table.Begin()
	inner := table.Begin()
	table.Define("a", 1)
	// Ending the outer scope also ends the inner one.
	outer()
	if got := table.Depth(); got != 0 {
		t.Fatalf("Depth() = %d after ending the outer scope, want 0", got)
	}
	inner()
	outer()
	if got := table.Depth(); got != 0 {
		t.Errorf("Depth() = %d, want 0", got)
	}
	if _, ok := table.Find("a"); ok {
		t.Errorf("a visible after its scope ended")
	}
}
