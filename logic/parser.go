//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package logic

import (
	"fmt"
	"unicode"
)

// A SyntaxError reports a token sequence that is not a well-formed formula.
// Offset is the index of the offending token, or the sequence length if
// the formula ended early.
type SyntaxError struct {
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Offset, e.Message)
}

// ParseFormula parses text with the table's spellings and builds a formula.
//
//	formula := operand [binary-operator operand]
//	operand := letter | not operand | "(" formula ")"
//
// Spaces are ignored.
func (t *Table) ParseFormula(text string) (Formula, error) {
	return ParseTokens(t.Parse(text))
}

// ParseTokens builds a formula from a normalized token sequence.
func ParseTokens(ts Tokens) (Formula, error) {
	p := &parser{end: len(ts)}
	for i, tok := range ts {
		if tok.Kind == KindLiteral && unicode.IsSpace(tok.Char) {
			continue
		}
		p.tokens = append(p.tokens, tok)
		p.offsets = append(p.offsets, i)
	}
	if len(p.tokens) == 0 {
		return nil, &SyntaxError{Offset: 0, Message: "empty formula"}
	}
	f, err := p.formula()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, p.errorf("unexpected %s after formula", describe(p.tokens[p.pos]))
	}
	return f, nil
}

type parser struct {
	tokens  Tokens
	offsets []int
	pos     int
	end     int
}

func (p *parser) formula() (Formula, error) {
	l, err := p.operand()
	if err != nil {
		return nil, err
	}
	if p.pos == len(p.tokens) || !p.tokens[p.pos].Kind.IsBinary() {
		return l, nil
	}
	k := p.tokens[p.pos].Kind
	p.pos++
	r, err := p.operand()
	if err != nil {
		return nil, err
	}
	return Binary(k, l, r), nil
}

func (p *parser) operand() (Formula, error) {
	if p.pos == len(p.tokens) {
		return nil, p.errorf("unexpected end of formula")
	}
	tok := p.tokens[p.pos]
	switch {
	case tok.Kind == KindNot:
		p.pos++
		x, err := p.operand()
		if err != nil {
			return nil, err
		}
		return Not{x}, nil
	case tok == Literal('('):
		p.pos++
		f, err := p.formula()
		if err != nil {
			return nil, err
		}
		if p.pos == len(p.tokens) || p.tokens[p.pos] != Literal(')') {
			return nil, p.errorf("missing )")
		}
		p.pos++
		return f, nil
	case tok.Kind == KindLiteral && unicode.IsLetter(tok.Char):
		p.pos++
		return Var(tok.Char), nil
	}
	return nil, p.errorf("unexpected %s", describe(tok))
}

func (p *parser) errorf(format string, args ...interface{}) error {
	offset := p.end
	if p.pos < len(p.offsets) {
		offset = p.offsets[p.pos]
	}
	return &SyntaxError{Offset: offset, Message: fmt.Sprintf(format, args...)}
}

func describe(tok Token) string {
	if tok.Kind == KindLiteral {
		return fmt.Sprintf("%q", tok.Char)
	}
	return tok.Kind.String()
}
