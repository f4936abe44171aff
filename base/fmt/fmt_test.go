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

package fmt_test

import (
	"testing"

	srcfmt "github.com/GustavoCostaHenriques/Aguda-Compiler/base/fmt"
	"github.com/google/go-cmp/cmp"
)

func TestLine(t *testing.T) {
	src := "let x : Int = 1\r\nlet y : Int = 2"
	if got, ok := srcfmt.Line(src, 1); !ok || got != "let x : Int = 1" {
		t.Errorf("Line(1) = %q, %v, want %q, true", got, ok, "let x : Int = 1")
	}
	if got, ok := srcfmt.Line(src, 2); !ok || got != "let y : Int = 2" {
		t.Errorf("Line(2) = %q, %v, want %q, true", got, ok, "let y : Int = 2")
	}
	if _, ok := srcfmt.Line(src, 3); ok {
		t.Errorf("Line(3) found a line past the end of the source")
	}
}

func TestCaret(t *testing.T) {
	src := "let x : Int = 1\nlet y : Bool = x\n\tlet é : Int = ü\n"
	tests := []struct {
		line, col int
		want      string
	}{
		{
			line: 2, col: 15,
			want: "↳  let y : Bool = x\n                  ^",
		},
		{
			line: 1, col: 0,
			want: "↳  let x : Int = 1\n   ^",
		},
		{
			// Multibyte characters take a single column.
			line: 3, col: 15,
			want: "↳  \tlet é : Int = ü\n   \t              ^",
		},
		{
			line: 1, col: 17,
			want: "↳  let x : Int = 1\n                    ^",
		},
		{
			line: 4, col: 0,
			want: "",
		},
		{
			line: 0, col: 0,
			want: "",
		},
	}
	for _, test := range tests {
		got := srcfmt.Caret(src, test.line, test.col)
		if got != test.want {
			t.Errorf("Caret(%d, %d):\n%s\nbut want:\n%s\ndiff:\n%s", test.line, test.col, got, test.want, cmp.Diff(got, test.want))
		}
	}
}
