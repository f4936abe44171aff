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
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
)

// DefaultMaxErrors is the default maximum number of diagnostics kept by an appender.
const DefaultMaxErrors = 10

// Appender accumulates diagnostics of a given kind.
//
// At most max diagnostics are kept. Diagnostics appended once the maximum
// has been reached are counted but discarded.
type Appender struct {
	kind  Kind
	max   int
	errs  []error
	total int

	dedup bool
	seen  map[ast.Pos]bool
}

// NewAppender returns an appender keeping at most max diagnostics.
// A non-positive max means DefaultMaxErrors.
func NewAppender(kind Kind, max int) *Appender {
	if max <= 0 {
		max = DefaultMaxErrors
	}
	return &Appender{kind: kind, max: max}
}

// Deduplicate configures the appender to discard diagnostics reported at a
// position where a diagnostic has already been reported.
// Diagnostics without a known position are never discarded.
func (app *Appender) Deduplicate() *Appender {
	app.dedup = true
	app.seen = make(map[ast.Pos]bool)
	return app
}

// Append an error to the list of errors.
// Always returns false so that callers can return the result as a success flag.
func (app *Appender) Append(err error) bool {
	if err == nil {
		return false
	}
	if app.dedup {
		var diag *Error
		if asError(err, &diag) && diag.Pos.IsValid() {
			if app.seen[diag.Pos] {
				return false
			}
			app.seen[diag.Pos] = true
		}
	}
	app.total++
	if len(app.errs) < app.max {
		app.errs = append(app.errs, err)
	}
	return false
}

// Appendf appends a diagnostic at the position of a node.
func (app *Appender) Appendf(node ast.Node, format string, a ...any) bool {
	return app.Append(Errorf(app.kind, posOf(node), format, a...))
}

// Kind returns the kind of the diagnostics appended by Appendf.
func (app *Appender) Kind() Kind {
	return app.kind
}

// Max returns the maximum number of diagnostics kept.
func (app *Appender) Max() int {
	return app.max
}

// Total returns the number of diagnostics appended, including the discarded ones.
func (app *Appender) Total() int {
	return app.total
}

// Empty returns true if no error has been appended.
func (app *Appender) Empty() bool {
	return app.total == 0
}

// Errors returns the set of errors or nil if no errors has been appended.
func (app *Appender) Errors() *Errors {
	if app.Empty() {
		return nil
	}
	return &Errors{
		kind:  app.kind,
		max:   app.max,
		total: app.total,
		errs:  append([]error{}, app.errs...),
	}
}

// ToError returns the errors as an error interface, nil if there is no error.
func (app *Appender) ToError() error {
	errs := app.Errors()
	if errs == nil {
		return nil
	}
	return errs
}

func posOf(node ast.Node) ast.Pos {
	if node == nil {
		return ast.Pos{}
	}
	return node.Pos()
}
