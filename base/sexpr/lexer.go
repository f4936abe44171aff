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

package sexpr

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokError
	tokLParen
	tokRParen
	tokSymbol
	tokInteger
	tokString
)

type token struct {
	kind tokenKind
	loc  Loc
	text string
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokString:
		return fmt.Sprintf("%q", t.text)
	}
	return t.text
}

type lexer struct {
	input []rune
	pos   int
	line  int
	col   int
}

func newLexer(input string) *lexer {
	return &lexer{input: []rune(input), line: 1, col: 1}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.input) {
		return 0
	}
	return l.input[l.pos+offset]
}

func (l *lexer) advance() rune {
	r := l.input[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *lexer) skipSpaceAndComments() {
	for !l.eof() {
		r := l.peek()
		switch {
		case unicode.IsSpace(r):
			l.advance()
		case r == ';':
			for !l.eof() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *lexer) next() token {
	l.skipSpaceAndComments()
	loc := Loc{Line: l.line, Col: l.col}
	if l.eof() {
		return token{kind: tokEOF, loc: loc}
	}
	switch r := l.peek(); {
	case r == '(':
		l.advance()
		return token{kind: tokLParen, loc: loc, text: "("}
	case r == ')':
		l.advance()
		return token{kind: tokRParen, loc: loc, text: ")"}
	case r == '"':
		return l.readString(loc)
	case isDigit(r), (r == '-' || r == '+') && isDigit(l.peekAt(1)):
		return l.readWord(loc, tokInteger)
	}
	return l.readWord(loc, tokSymbol)
}

func (l *lexer) readWord(loc Loc, kind tokenKind) token {
	start := l.pos
	for !l.eof() && isWordChar(l.peek()) {
		l.advance()
	}
	text := string(l.input[start:l.pos])
	if kind == tokInteger {
		for _, r := range strings.TrimLeft(text, "+-") {
			if !isDigit(r) {
				return token{kind: tokError, loc: loc, text: fmt.Sprintf("invalid integer %q", text)}
			}
		}
	}
	return token{kind: kind, loc: loc, text: text}
}

func (l *lexer) readString(loc Loc) token {
	l.advance()
	var b strings.Builder
	for {
		if l.eof() {
			return token{kind: tokError, loc: loc, text: "unterminated string"}
		}
		r := l.advance()
		switch r {
		case '"':
			return token{kind: tokString, loc: loc, text: b.String()}
		case '\\':
			if l.eof() {
				return token{kind: tokError, loc: loc, text: "unterminated string"}
			}
			esc := l.advance()
			switch esc {
			case 'n':
				b.WriteRune('\n')
			case 't':
				b.WriteRune('\t')
			case '"', '\\':
				b.WriteRune(esc)
			default:
				return token{kind: tokError, loc: loc, text: fmt.Sprintf("invalid escape sequence \\%c", esc)}
			}
		default:
			b.WriteRune(r)
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWordChar(r rune) bool {
	return r != 0 && r != '(' && r != ')' && r != '"' && r != ';' && !unicode.IsSpace(r)
}
