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

// Package builder compiles an aguda program from its syntax tree to an
// LLVM IR module.
//
// A build runs in two passes:
//  1. the program is checked; semantic errors stop the build,
//  2. the checked program is lowered into an LLVM IR module.
//
// Errors of a pass are accumulated, up to a maximum number of errors, and
// returned together as a single error.
package builder

import (
	"io/fs"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/checker"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/codegen"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/internal/astbuilder"
	"github.com/llir/llvm/ir"
	"github.com/pkg/errors"
)

type (
	// Options of a build session.
	Options struct {
		// MaxErrors is the maximum number of errors reported by a pass.
		// fmterr.DefaultMaxErrors is used if the value is not positive.
		MaxErrors int
	}

	// Builder represents a build session from a syntax tree to
	// an LLVM IR module.
	Builder struct {
		opts Options
	}

	// Result of a successful build.
	Result struct {
		// Program is the checked program.
		Program *ast.Program
		// Module is the generated module.
		Module *ir.Module
	}
)

// New returns a new build session.
func New(opts Options) *Builder {
	if opts.MaxErrors <= 0 {
		opts.MaxErrors = fmterr.DefaultMaxErrors
	}
	return &Builder{opts: opts}
}

// Parse a program from its syntax tree.
func (b *Builder) Parse(src string) (*ast.Program, error) {
	return astbuilder.Parse(src, b.opts.MaxErrors)
}

// ParseFile parses a program from a file of a file system.
func (b *Builder) ParseFile(fsys fs.FS, name string) (*ast.Program, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Errorf("cannot read syntax tree: %v", err)
	}
	return b.Parse(string(src))
}

// Check a program.
func (b *Builder) Check(prog *ast.Program) error {
	return checker.Check(prog, b.opts.MaxErrors)
}

// Build checks a program, then generates its module.
// Programs with semantic errors are not generated.
func (b *Builder) Build(prog *ast.Program) (*Result, error) {
	if err := b.Check(prog); err != nil {
		return nil, err
	}
	mod, err := codegen.Generate(prog, b.opts.MaxErrors)
	if err != nil {
		return nil, err
	}
	return &Result{Program: prog, Module: mod}, nil
}

// BuildSource parses a syntax tree and builds the program it represents.
func (b *Builder) BuildSource(src string) (*Result, error) {
	prog, err := b.Parse(src)
	if err != nil {
		return nil, err
	}
	return b.Build(prog)
}

// IR returns the textual LLVM IR of the module.
func (r *Result) IR() string {
	return r.Module.String()
}
