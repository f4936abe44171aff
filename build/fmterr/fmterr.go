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


// Package fmterr provides helpers to accumulate compiler diagnostics and
// format them given a source file.
package fmterr

// Kind of a diagnostic.
type Kind int

const (
	// LexicalError is reported when the source text cannot be tokenized.
	LexicalError Kind = iota
	// SyntacticError is reported when the input cannot be turned into a tree.
	SyntacticError
	// SemanticError is reported by the type checker.
	SemanticError
	// GenerationError is reported when code generation reaches an unsupported construct.
	GenerationError
	// InternalError is reported when an invariant of the compiler is violated.
	InternalError
	// BuildError is reported when an external tool fails.
	BuildError
	// OutputMismatch is reported when a program output differs from the expected output.
	OutputMismatch
)

var kindToString = map[Kind]string{
	LexicalError:    "LexicalError",
	SyntacticError:  "SyntacticError",
	SemanticError:   "SemanticError",
	GenerationError: "GenerationError",
	InternalError:   "InternalError",
	BuildError:      "BuildError",
	OutputMismatch:  "OutputMismatch",
}

var kindToNoun = map[Kind]string{
	LexicalError:    "lexical",
	SyntacticError:  "syntactic",
	SemanticError:   "semantic",
	GenerationError: "generation",
	InternalError:   "internal",
	BuildError:      "build",
	OutputMismatch:  "output",
}

func (k Kind) String() string {
	s, ok := kindToString[k]
	if !ok {
		return "UnknownError"
	}
	return s
}

// noun returns the kind as used in a summary.
func (k Kind) noun() string {
	s, ok := kindToNoun[k]
	if !ok {
		return "unknown"
	}
	return s
}
