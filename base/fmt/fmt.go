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

// Package fmt provides utility methods for building string representations of source code.
package fmt

import (
	"strings"
	"unicode/utf8"
)

// Line returns a line of a source (1-based), without its line terminator.
// The second return value is false if the line does not exist.
func Line(src string, line int) (string, bool) {
	if line < 1 {
		return "", false
	}
	n := 1
	for l := range strings.Lines(src) {
		if n == line {
			return strings.TrimRight(l, "\r\n"), true
		}
		n++
	}
	return "", false
}

// Caret returns the line of a source at a given position followed by a
// caret under the column (0-based, counted in characters):
//
//	↳  let x : Int = true
//	                 ^
//
// An empty string is returned if the line does not exist.
func Caret(src string, line, col int) string {
	text, ok := Line(src, line)
	if !ok {
		return ""
	}
	col = max(col, 0)
	var marker strings.Builder
	n := 0
	for _, r := range text {
		if n >= col {
			break
		}
		n++
		// Keep tabulations so that the caret is aligned with the source.
		if r == '\t' {
			marker.WriteRune('\t')
		} else {
			marker.WriteRune(' ')
		}
	}
	if pad := col - utf8.RuneCountInString(text); pad > 0 {
		marker.WriteString(strings.Repeat(" ", pad))
	}
	return "↳  " + text + "\n   " + marker.String() + "^"
}
