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

// Package toolchain compiles LLVM IR files into native executables with
// the LLVM tools, runs them, and compares their output with an expected
// output.
package toolchain

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Default settings of a toolchain.
const (
	DefaultLLC     = "llc"
	DefaultClang   = "clang"
	DefaultTimeout = 30 * time.Second
)

// DefaultClangArgs are passed to clang when linking.
var DefaultClangArgs = []string{"-no-pie"}

// Toolchain runs the external programs turning IR into an executable.
type Toolchain struct {
	// LLC is the path of the LLVM static compiler.
	LLC string
	// Clang is the path of the compiler driver used to link.
	Clang string
	// ClangArgs are appended to the link command.
	ClangArgs []string
	// Timeout of each command.
	Timeout time.Duration
	// Logger traces the commands being run.
	Logger *slog.Logger
}

// New returns a toolchain with the default settings.
func New() *Toolchain {
	return &Toolchain{
		LLC:       DefaultLLC,
		Clang:     DefaultClang,
		ClangArgs: DefaultClangArgs,
		Timeout:   DefaultTimeout,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

func buildErrorf(format string, a ...any) error {
	return fmterr.Errorf(fmterr.BuildError, ast.Pos{}, format, a...)
}

// Available returns an error if one of the programs cannot be found.
func (tc *Toolchain) Available() error {
	var err error
	for _, prog := range []string{tc.LLC, tc.Clang} {
		if _, lookErr := exec.LookPath(prog); lookErr != nil {
			err = multierr.Append(err, buildErrorf("%s not found: %v", prog, lookErr))
		}
	}
	return err
}

// Files derived from an IR file.
type Files struct {
	IR       string
	Assembly string
	Exe      string
}

// FilesFor returns the files derived from an IR file: its extension is
// replaced by .s for the assembly and by .out for the executable.
func FilesFor(irPath string) Files {
	base := strings.TrimSuffix(irPath, filepath.Ext(irPath))
	return Files{
		IR:       irPath,
		Assembly: base + ".s",
		Exe:      base + ".out",
	}
}

// Remove the intermediate files: the assembly and the executable.
// Files that do not exist are ignored.
func (f Files) Remove() error {
	var err error
	for _, path := range []string{f.Assembly, f.Exe} {
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			err = multierr.Append(err, errors.WithStack(rmErr))
		}
	}
	return err
}

// run a command under the toolchain timeout and returns its standard output.
func (tc *Toolchain) run(ctx context.Context, stage string, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, tc.Timeout)
	defer cancel()
	tc.Logger.Debug("toolchain", "stage", stage, "cmd", name, "args", args)
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	start := time.Now()
	err := cmd.Run()
	tc.Logger.Debug("toolchain done", "stage", stage, "duration", time.Since(start), "err", err)
	if ctx.Err() == context.DeadlineExceeded {
		return stdout.String(), buildErrorf("%s timed out after %s", stage, tc.Timeout)
	}
	if err != nil {
		return stdout.String(), buildErrorf("%s failed: %v\n%s", stage, err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// Compile an IR file into an executable.
func (tc *Toolchain) Compile(ctx context.Context, files Files) error {
	if _, err := tc.run(ctx, "llc", tc.LLC, files.IR, "-o", files.Assembly); err != nil {
		return err
	}
	args := append([]string{files.Assembly, "-o", files.Exe}, tc.ClangArgs...)
	if _, err := tc.run(ctx, "clang", tc.Clang, args...); err != nil {
		return err
	}
	return nil
}

// Run an executable and returns what it wrote on its standard output.
func (tc *Toolchain) Run(ctx context.Context, exe string) (string, error) {
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return tc.run(ctx, "run", abs)
}

// Execute compiles an IR file, runs the executable, and returns its output.
// Intermediate files are removed before returning.
func (tc *Toolchain) Execute(ctx context.Context, irPath string) (out string, err error) {
	files := FilesFor(irPath)
	defer func() {
		err = multierr.Append(err, files.Remove())
	}()
	if err = tc.Compile(ctx, files); err != nil {
		return "", err
	}
	return tc.Run(ctx, files.Exe)
}

// Test executes an IR file and compares its output with the content of an
// expect file.
func (tc *Toolchain) Test(ctx context.Context, irPath, expectPath string) error {
	want, err := os.ReadFile(expectPath)
	if err != nil {
		return buildErrorf("cannot read expected output: %v", err)
	}
	got, err := tc.Execute(ctx, irPath)
	if err != nil {
		return err
	}
	return Compare(got, string(want))
}
