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


// Package uname provides unique names.
//
// A Unique generator is a naming context: all the names it returns are
// distinct. Generated code uses one context per namespace (for example, one
// for the global symbols of a module and one for the local names of each
// function) and drops it when the namespace is complete.
package uname

import (
	"fmt"
	"regexp"
)

// Unique generates unique names.
type Unique struct {
	names map[string]int
	taken map[string]bool
}

// New name generator.
func New() *Unique {
	return &Unique{
		names: make(map[string]int),
		taken: make(map[string]bool),
	}
}

var invalidChars = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Sanitize replaces all characters outside of [A-Za-z0-9_] by an underscore.
func Sanitize(name string) string {
	return invalidChars.ReplaceAllString(name, "_")
}

// Reserve marks a name as taken without returning it.
// Name will never return a reserved name.
func (n *Unique) Reserve(names ...string) {
	for _, name := range names {
		n.taken[name] = true
	}
}

// Name returns a unique name given a desired base name.
// If the base name is available, it is returned directly. Else, a unique suffix is appended.
func (n *Unique) Name(root string) string {
	if root == "" {
		root = "v"
	}
	for {
		name := n.next(root)
		if !n.taken[name] {
			n.taken[name] = true
			return name
		}
	}
}

// Symbol returns a unique name after sanitizing the root.
func (n *Unique) Symbol(root string) string {
	return n.Name(Sanitize(root))
}

func (n *Unique) next(root string) string {
	nextIndex, ok := n.names[root]
	if !ok {
		n.names[root] = 1
		return root
	}
	n.names[root] = nextIndex + 1
	return fmt.Sprintf("%s%d", root, nextIndex)
}
