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

// Package sexpr reads s-expressions: lists, symbols, integers and strings.
//
// Comments start with a ';' and run until the end of the line.
// Every node records the line and column where it starts in the input.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind of a node.
type Kind int

const (
	// Symbol is a bare word, for example: let, Int, +, @1:4.
	Symbol Kind = iota
	// Integer is a decimal integer with an optional sign.
	Integer
	// String is a double quoted string.
	String
	// List is a parenthesised sequence of nodes.
	List
)

var kindToString = map[Kind]string{
	Symbol:  "symbol",
	Integer: "integer",
	String:  "string",
	List:    "list",
}

func (k Kind) String() string {
	s, ok := kindToString[k]
	if !ok {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return s
}

// Loc is a location in the input text. Both fields are 1-based.
type Loc struct {
	Line int
	Col  int
}

func (l Loc) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}

// Node of an s-expression.
type Node struct {
	Kind Kind
	Loc  Loc

	// Text is the symbol, the integer digits, or the unquoted string.
	Text string
	// Items are the elements of a list.
	Items []*Node
}

// NewSymbol returns a symbol node.
func NewSymbol(name string) *Node {
	return &Node{Kind: Symbol, Text: name}
}

// NewInteger returns an integer node.
func NewInteger(v int64) *Node {
	return &Node{Kind: Integer, Text: strconv.FormatInt(v, 10)}
}

// NewString returns a string node.
func NewString(s string) *Node {
	return &Node{Kind: String, Text: s}
}

// NewList returns a list node.
func NewList(items ...*Node) *Node {
	return &Node{Kind: List, Items: items}
}

// IsSymbol returns true if the node is the given symbol.
func (n *Node) IsSymbol(name string) bool {
	return n != nil && n.Kind == Symbol && n.Text == name
}

// Head returns the symbol starting a list, or an empty string.
func (n *Node) Head() string {
	if n == nil || n.Kind != List || len(n.Items) == 0 || n.Items[0].Kind != Symbol {
		return ""
	}
	return n.Items[0].Text
}

// Int returns the value of an integer node.
func (n *Node) Int() (int64, error) {
	if n.Kind != Integer {
		return 0, fmt.Errorf("%s: expected an integer but got %s %s", n.Loc, n.Kind, n)
	}
	v, err := strconv.ParseInt(n.Text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %s: %w", n.Loc, n.Text, err)
	}
	return v, nil
}

func (n *Node) String() string {
	switch n.Kind {
	case Symbol, Integer:
		return n.Text
	case String:
		return strconv.Quote(n.Text)
	case List:
		ss := make([]string, len(n.Items))
		for i, item := range n.Items {
			ss[i] = item.String()
		}
		return "(" + strings.Join(ss, " ") + ")"
	}
	return fmt.Sprintf("<%s>", n.Kind)
}

// Error is a syntax error in the s-expression text.
type Error struct {
	Loc Loc
	Msg string
}

func (err *Error) Error() string {
	return fmt.Sprintf("%s: %s", err.Loc, err.Msg)
}

// Parse reads exactly one s-expression from the input.
func Parse(input string) (*Node, error) {
	p := &parser{lex: newLexer(input)}
	p.next()
	if p.tok.kind == tokEOF {
		return nil, &Error{Loc: p.tok.loc, Msg: "empty input"}
	}
	node, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, &Error{Loc: p.tok.loc, Msg: fmt.Sprintf("expected end of input but got %s", p.tok)}
	}
	return node, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) next() {
	p.tok = p.lex.next()
}

func (p *parser) parseNode() (*Node, error) {
	tok := p.tok
	switch tok.kind {
	case tokError:
		return nil, &Error{Loc: tok.loc, Msg: tok.text}
	case tokSymbol:
		p.next()
		return &Node{Kind: Symbol, Loc: tok.loc, Text: tok.text}, nil
	case tokInteger:
		p.next()
		return &Node{Kind: Integer, Loc: tok.loc, Text: tok.text}, nil
	case tokString:
		p.next()
		return &Node{Kind: String, Loc: tok.loc, Text: tok.text}, nil
	case tokLParen:
		return p.parseList()
	case tokRParen:
		return nil, &Error{Loc: tok.loc, Msg: "unexpected ')'"}
	}
	return nil, &Error{Loc: tok.loc, Msg: "unexpected end of input"}
}

func (p *parser) parseList() (*Node, error) {
	list := &Node{Kind: List, Loc: p.tok.loc}
	p.next()
	for {
		switch p.tok.kind {
		case tokRParen:
			p.next()
			return list, nil
		case tokEOF:
			return nil, &Error{Loc: list.Loc, Msg: "unclosed '('"}
		}
		item, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		list.Items = append(list.Items, item)
	}
}
