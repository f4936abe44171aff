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

package toolchain

import (
	"strings"

	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/ast"
	"github.com/GustavoCostaHenriques/Aguda-Compiler/build/fmterr"
)

// Compare the output of a program with its expected output.
// Leading and trailing white spaces are ignored.
func Compare(got, want string) error {
	if strings.TrimSpace(got) == strings.TrimSpace(want) {
		return nil
	}
	return fmterr.Errorf(fmterr.OutputMismatch, ast.Pos{}, "Value different from the expected output. Got %s and the expected was %s", got, want)
}
