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
	"strings"

	"github.com/pkg/errors"
)

// Errors is the set of diagnostics reported by a compiler pass.
type Errors struct {
	kind  Kind
	max   int
	total int
	errs  []error
}

var _ error = (*Errors)(nil)

func asError(err error, target **Error) bool {
	return errors.As(err, target)
}

// Kind returns the kind of the diagnostics.
func (errs *Errors) Kind() Kind {
	return errs.kind
}

// Total returns the number of diagnostics reported, including the ones not kept.
func (errs *Errors) Total() int {
	return errs.total
}

// Errors returns the list of all kept diagnostics.
func (errs *Errors) Errors() []error {
	return append([]error{}, errs.errs...)
}

// Summary returns a line summarizing the number of diagnostics.
func (errs *Errors) Summary() string {
	return fmt.Sprintf("Program has %d %s error(s), %d or less, were shown above as requested.", errs.total, errs.kind.noun(), errs.max)
}

// Error returns the current set of errors as a string.
func (errs *Errors) Error() string {
	ss := make([]string, 0, len(errs.errs)+1)
	for _, err := range errs.errs {
		ss = append(ss, err.Error())
	}
	ss = append(ss, errs.Summary())
	return strings.Join(ss, "\n")
}

// Format writes the error into the state of the formatter.
func (errs *Errors) Format(s fmt.State, verb rune) {
	flag := ""
	if s.Flag('+') {
		flag = "+"
	}
	for _, e := range errs.errs {
		format := fmt.Sprintf("%%%s%s\n", flag, string(verb))
		fmt.Fprintf(s, format, e)
	}
	fmt.Fprint(s, errs.Summary())
}

// String representation of the error.
func (errs *Errors) String() string {
	return errs.Error()
}
