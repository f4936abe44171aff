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


package fmterr

import (
	"fmt"
	"runtime/debug"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/pkg/errors"
)

// Error is a diagnostic attached to a position in the source code.
type Error struct {
	Kind Kind
	Pos  ast.Pos
	Msg  string

	// err is the underlying error carrying the stack trace.
	err error
}

var _ error = (*Error)(nil)

// Errorf returns a formatted diagnostic for the user.
func Errorf(kind Kind, pos ast.Pos, format string, a ...any) *Error {
	err := errors.Errorf(format, a...)
	return &Error{Kind: kind, Pos: pos, Msg: err.Error(), err: err}
}

// Wrap an error into a diagnostic of a given kind.
func Wrap(kind Kind, pos ast.Pos, err error) *Error {
	return &Error{Kind: kind, Pos: pos, Msg: err.Error(), err: errors.WithStack(err)}
}

// Internal marks an error as internal, potentially adding additional information.
func Internal(err error) error {
	var diag *Error
	if errors.As(err, &diag) && diag.Kind == InternalError {
		return err
	}
	pos := ast.Pos{}
	if diag != nil {
		pos = diag.Pos
	}
	return &Error{
		Kind: InternalError,
		Pos:  pos,
		Msg:  "internal error. This is a bug in the compiler. Please report it. Error: " + err.Error(),
		err:  errors.WithStack(err),
	}
}

// Internalf returns a formatted internal error at a position.
func Internalf(pos ast.Pos, format string, a ...any) error {
	return Internal(Errorf(InternalError, pos, format, a...))
}

// KindOf returns the kind of the first diagnostic found in the error chain.
func KindOf(err error) (Kind, bool) {
	var diag *Error
	if errors.As(err, &diag) {
		return diag.Kind, true
	}
	var errs *Errors
	if errors.As(err, &errs) {
		return errs.kind, true
	}
	return 0, false
}

// Error returns a string description of the error.
func (err *Error) Error() (s string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s = fmt.Sprintf("recovered from panic when building error message: %v:\n%v", r, string(debug.Stack()))
	}()
	if !err.Pos.IsValid() {
		return err.Msg
	}
	return fmt.Sprintf("(%d, %d) %s", err.Pos.Line, err.Pos.Col, err.Msg)
}

// Unwrap the error.
func (err *Error) Unwrap() error {
	return err.err
}

// Format writes the error into the state of the formatter.
func (err *Error) Format(s fmt.State, verb rune) {
	format(err, s, verb)
}
