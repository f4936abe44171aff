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
	"io"

	srcfmt "github.com/GustavoCostaHenriques/Aguda-Compiler/base/fmt"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Render writes errors for a user.
// When src is not empty, each diagnostic is followed by its line in the
// source with a caret under its column.
func Render(w io.Writer, err error, src string) {
	for _, err := range multierr.Errors(err) {
		var errs *Errors
		if errors.As(err, &errs) {
			for _, e := range errs.errs {
				renderOne(w, e, src)
			}
			fmt.Fprintln(w, errs.Summary())
			continue
		}
		renderOne(w, err, src)
	}
}

func renderOne(w io.Writer, err error, src string) {
	var diag *Error
	if !errors.As(err, &diag) {
		fmt.Fprintf(w, "Error: %s\n", err.Error())
		return
	}
	fmt.Fprintf(w, "%s: %s\n", diag.Kind, diag.Error())
	if src == "" || !diag.Pos.IsValid() {
		return
	}
	if caret := srcfmt.Caret(src, diag.Pos.Line, diag.Pos.Col); caret != "" {
		fmt.Fprintln(w, caret)
	}
}
