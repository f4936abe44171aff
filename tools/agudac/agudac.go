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

// Utility agudac checks an aguda program, generates its LLVM IR, and runs it.
//
// The program is read from its syntax tree:
//
//	agudac [flags] FILE.ast
//
// Modes:
//
//	ast    prints the syntax tree
//	check  checks the program
//	ir     checks the program and writes its LLVM IR
//	run    writes the LLVM IR, compiles it, runs it and compares its output
//	       with the expected output
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/builder"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/toolchain"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/tools/aguflag"
)

// Modes of the command.
const (
	modeAST   = "ast"
	modeCheck = "check"
	modeIR    = "ir"
	modeRun   = "run"
)

// valid is printed when a program passes the tests of a mode.
const valid = "Test Valid"

type config struct {
	mode      string
	maxErrors int
	input     string
	src       string
	output    string
	expect    string
	timeout   time.Duration
	llc       string
	clang     string
	clangArgs []string
	minLLVM   string
	verbose   bool
}

func parseFlags(args []string) (*config, error) {
	fs := flag.NewFlagSet("agudac", flag.ContinueOnError)
	cfg := &config{}
	mode := aguflag.ChoiceVar(fs, "mode", modeRun, []string{modeAST, modeCheck, modeIR, modeRun}, "what to do with the program")
	fs.IntVar(&cfg.maxErrors, "max_errors", fmterr.DefaultMaxErrors, "maximum number of errors reported by a pass")
	fs.StringVar(&cfg.src, "src", "", "source file of the program, used to show where errors are")
	fs.StringVar(&cfg.output, "o", "", "LLVM IR output file (default: the input file with the .ll extension, - for the standard output)")
	fs.StringVar(&cfg.expect, "expect", "", "expected output of the program (default: the input file with the .expect extension)")
	fs.DurationVar(&cfg.timeout, "timeout", toolchain.DefaultTimeout, "timeout of each toolchain command")
	fs.StringVar(&cfg.llc, "llc", toolchain.DefaultLLC, "LLVM static compiler")
	fs.StringVar(&cfg.clang, "clang", toolchain.DefaultClang, "compiler driver used to link")
	clangArgs := aguflag.StringListVar(fs, "clang_args", toolchain.DefaultClangArgs, "comma separated arguments passed to the linker")
	fs.StringVar(&cfg.minLLVM, "min_llvm", "", "minimum LLVM version, for example v14.0.0")
	fs.BoolVar(&cfg.verbose, "v", false, "trace the toolchain commands")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 1 {
		return nil, fmt.Errorf("expected one syntax tree file, got %d argument(s)", fs.NArg())
	}
	cfg.mode = *mode
	cfg.clangArgs = *clangArgs
	cfg.input = fs.Arg(0)
	base := strings.TrimSuffix(cfg.input, filepath.Ext(cfg.input))
	if cfg.output == "" {
		cfg.output = base + ".ll"
	}
	if cfg.expect == "" {
		cfg.expect = base + ".expect"
	}
	return cfg, nil
}

func (cfg *config) toolchain() *toolchain.Toolchain {
	tc := toolchain.New()
	tc.LLC = cfg.llc
	tc.Clang = cfg.clang
	tc.ClangArgs = cfg.clangArgs
	tc.Timeout = cfg.timeout
	if cfg.verbose {
		tc.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return tc
}

func exit(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr)
	os.Exit(1)
}

// compile runs a mode on the program and writes the result to w.
func compile(ctx context.Context, cfg *config, w io.Writer) error {
	bld := builder.New(builder.Options{MaxErrors: cfg.maxErrors})
	prog, err := bld.ParseFile(os.DirFS(filepath.Dir(cfg.input)), filepath.Base(cfg.input))
	if err != nil {
		return err
	}
	switch cfg.mode {
	case modeAST:
		fmt.Fprintln(w, ast.Print(prog))
		return nil
	case modeCheck:
		if err := bld.Check(prog); err != nil {
			return err
		}
		fmt.Fprintln(w, valid)
		return nil
	}
	res, err := bld.Build(prog)
	if err != nil {
		return err
	}
	if cfg.output == "-" {
		if cfg.mode == modeRun {
			return fmt.Errorf("cannot run a program written on the standard output")
		}
		fmt.Fprint(w, res.IR())
		return nil
	}
	if err := os.WriteFile(cfg.output, []byte(res.IR()), 0o644); err != nil {
		return fmt.Errorf("cannot write LLVM IR: %v", err)
	}
	if cfg.mode == modeIR {
		return nil
	}
	tc := cfg.toolchain()
	if err := tc.CheckVersion(ctx, cfg.minLLVM); err != nil {
		return err
	}
	if err := tc.Test(ctx, cfg.output, cfg.expect); err != nil {
		return err
	}
	fmt.Fprintln(w, valid)
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		exit("%v", err)
	}
	var src string
	if cfg.src != "" {
		content, err := os.ReadFile(cfg.src)
		if err != nil {
			exit("cannot read source file: %v", err)
		}
		src = string(content)
	}
	if err := compile(context.Background(), cfg, os.Stdout); err != nil {
		fmterr.Render(os.Stdout, err, src)
		os.Exit(1)
	}
}
