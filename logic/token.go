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
)

// Kind identifies a token: a literal character or a canonical operator.
type Kind uint8

const (
	KindLiteral Kind = iota
	KindNot
	KindAnd
	KindOr
	KindImplies
	KindIff
)

// operatorKinds lists the operators in matching priority order.
var operatorKinds = [...]Kind{KindNot, KindAnd, KindOr, KindImplies, KindIff}

func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "Literal"
	case KindNot:
		return "Not"
	case KindAnd:
		return "And"
	case KindOr:
		return "Or"
	case KindImplies:
		return "Implies"
	case KindIff:
		return "Iff"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// IsOperator returns true for the five canonical operators.
func (k Kind) IsOperator() bool {
	return k >= KindNot && k <= KindIff
}

// IsBinary returns true for operators that take two operands.
func (k Kind) IsBinary() bool {
	return k >= KindAnd && k <= KindIff
}

// Style selects the glyph set used when rendering operators.
type Style int

const (
	Plain  Style = iota // ASCII glyphs
	Pretty              // Unicode glyphs
)

func (s Style) String() string {
	if s == Pretty {
		return "pretty"
	}
	return "plain"
}

// ParseStyle converts a style name ("plain" or "pretty") to a Style.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "plain", "ascii", "":
		return Plain, nil
	case "pretty", "unicode":
		return Pretty, nil
	}
	return Plain, fmt.Errorf("unknown style %q", name)
}

// A Token is a literal character or a canonical operator.
// Tokens are values; two tokens are equal when their fields are equal.
type Token struct {
	Kind Kind
	Char rune // only meaningful for KindLiteral
}

// Literal returns a literal token for c.
func Literal(c rune) Token {
	return Token{Kind: KindLiteral, Char: c}
}

// Operator returns the canonical token for an operator kind.
func Operator(k Kind) Token {
	return Token{Kind: k}
}

func (t Token) IsOperator() bool {
	return t.Kind.IsOperator()
}

func (t Token) String() string {
	if t.Kind == KindLiteral {
		return string(t.Char)
	}
	return t.Kind.String()
}

// Tokens is an ordered sequence of tokens, rendered left to right.
// The editing methods never modify the receiver; they return a new sequence.
type Tokens []Token

// Literals converts text to one literal token per code point, without normalizing.
func Literals(text string) Tokens {
	ts := make(Tokens, 0, len(text))
	for _, c := range text {
		ts = append(ts, Literal(c))
	}
	return ts
}

func (ts Tokens) Clone() Tokens {
	if ts == nil {
		return nil
	}
	out := make(Tokens, len(ts))
	copy(out, ts)
	return out
}

func (ts Tokens) Equal(other Tokens) bool {
	if len(ts) != len(other) {
		return false
	}
	for i := range ts {
		if ts[i] != other[i] {
			return false
		}
	}
	return true
}

// Insert returns a copy of ts with t inserted before index i.
func (ts Tokens) Insert(i int, t Token) Tokens {
	return ts.Splice(i, Tokens{t})
}

// Splice returns a copy of ts with more inserted before index i.
func (ts Tokens) Splice(i int, more Tokens) Tokens {
	out := make(Tokens, 0, len(ts)+len(more))
	out = append(out, ts[:i]...)
	out = append(out, more...)
	return append(out, ts[i:]...)
}

// Delete returns a copy of ts without the token at index i.
func (ts Tokens) Delete(i int) Tokens {
	out := make(Tokens, 0, len(ts))
	out = append(out, ts[:i]...)
	return append(out, ts[i+1:]...)
}
