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


// Package scope provides lexical scopes mapping names to values.
package scope

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

type frame[V any] struct {
	keys []string
	vals map[string]V
}

func newFrame[V any]() *frame[V] {
	return &frame[V]{vals: make(map[string]V)}
}

func (f *frame[V]) store(k string, v V) {
	if _, in := f.vals[k]; !in {
		f.keys = append(f.keys, k)
	}
	f.vals[k] = v
}

func (f *frame[V]) remove(k string) bool {
	if _, in := f.vals[k]; !in {
		return false
	}
	delete(f.vals, k)
	f.keys = slices.DeleteFunc(f.keys, func(key string) bool { return key == k })
	return true
}

// RWScope stores key,value pairs.
// A value can retrieved from its key by querying the scope and,
// if not found, its parents recursively.
type RWScope[V any] struct {
	parent *RWScope[V]
	local  *frame[V]
}

// NewScope returns a new scope given a parent, which can be nil.
func NewScope[V any](parent *RWScope[V]) *RWScope[V] {
	return &RWScope[V]{
		parent: parent,
		local:  newFrame[V](),
	}
}

// Define maps `key` to `value` in the local scope, overwriting if necessary.
func (s *RWScope[V]) Define(k string, v V) {
	s.local.store(k, v)
}

// Find a key in the scope and its parent.
func (s *RWScope[V]) Find(key string) (value V, ok bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if value, ok = cur.local.vals[key]; ok {
			return
		}
	}
	return
}

// IsLocal returns true if the key is defined in the local scope.
func (s *RWScope[V]) IsLocal(key string) bool {
	_, ok := s.local.vals[key]
	return ok
}

// Remove a key from the local scope.
func (s *RWScope[V]) Remove(key string) error {
	if !s.local.remove(key) {
		return errors.Errorf("cannot remove %s: not defined in the local scope", key)
	}
	return nil
}

// String representation of the scope.
func (s *RWScope[V]) String() string {
	var frames []string
	for cur := s; cur != nil; cur = cur.parent {
		if len(cur.local.keys) == 0 {
			frames = append(frames, "empty")
			continue
		}
		kvs := make([]string, len(cur.local.keys))
		for i, k := range cur.local.keys {
			kvs[i] = fmt.Sprintf("%s: %v", k, cur.local.vals[k])
		}
		frames = append(frames, strings.Join(kvs, "\n"))
	}
	slices.Reverse(frames)
	return strings.Join(frames, "\n--\n")
}

// Table is a stack of scopes.
// The bottom of the stack is the global scope, which lives as long as the table.
type Table[V any] struct {
	current *RWScope[V]
	depth   int
}

// NewTable returns a table with an empty global scope.
func NewTable[V any]() *Table[V] {
	return &Table[V]{current: NewScope[V](nil)}
}

// Depth returns the number of scopes above the global scope.
func (t *Table[V]) Depth() int {
	return t.depth
}

// Begin pushes a new scope on the stack and returns the function ending it.
// Calling the returned function more than once has no effect. Scopes pushed
// after it and not ended yet are ended with it, so that the stack is always
// restored to its state before Begin was called.
//
// Usage:
//
//	defer table.Begin()()
func (t *Table[V]) Begin() (end func()) {
	scope := NewScope(t.current)
	t.current = scope
	t.depth++
	depth := t.depth
	ended := false
	return func() {
		if ended {
			return
		}
		ended = true
		if !t.onStack(scope) {
			// Already removed by a guard lower in the stack.
			return
		}
		t.current = scope.parent
		t.depth = depth - 1
	}
}

func (t *Table[V]) onStack(scope *RWScope[V]) bool {
	for cur := t.current; cur != nil; cur = cur.parent {
		if cur == scope {
			return true
		}
	}
	return false
}

// Define maps `key` to `value` in the innermost scope.
func (t *Table[V]) Define(key string, value V) {
	t.current.Define(key, value)
}

// Find a key starting from the innermost scope.
func (t *Table[V]) Find(key string) (V, bool) {
	return t.current.Find(key)
}

// IsLocal returns true if the key is defined in the innermost scope.
func (t *Table[V]) IsLocal(key string) bool {
	return t.current.IsLocal(key)
}

// Remove a key from the innermost scope.
func (t *Table[V]) Remove(key string) error {
	return t.current.Remove(key)
}

// String representation of the table.
func (t *Table[V]) String() string {
	return t.current.String()
}
