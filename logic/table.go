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
	"sort"
	"strings"
)

// OperatorSpec describes how one operator family is written.
// Plain and Pretty are the glyphs used for output; Spellings are all
// the forms accepted on input, and must include both output glyphs.
type OperatorSpec struct {
	Plain     string   `yaml:"plain"`
	Pretty    string   `yaml:"pretty"`
	Spellings []string `yaml:"spellings"`
}

// TableSpec is the serialized form of an operator table.
type TableSpec struct {
	Not     OperatorSpec `yaml:"not"`
	And     OperatorSpec `yaml:"and"`
	Or      OperatorSpec `yaml:"or"`
	Implies OperatorSpec `yaml:"implies"`
	Iff     OperatorSpec `yaml:"iff"`
}

// DefaultSpec returns the built-in operator spellings.
func DefaultSpec() TableSpec {
	return TableSpec{
		Not:     OperatorSpec{Plain: "!", Pretty: "¬", Spellings: []string{"~", "!", "¬"}},
		And:     OperatorSpec{Plain: "^", Pretty: "∧", Spellings: []string{"&", "^", "∧"}},
		Or:      OperatorSpec{Plain: "v", Pretty: "∨", Spellings: []string{"v", "∨"}},
		Implies: OperatorSpec{Plain: "->", Pretty: "→", Spellings: []string{"->", "→"}},
		Iff:     OperatorSpec{Plain: "<->", Pretty: "↔", Spellings: []string{"<->", "<→", "↔", "⇔"}},
	}
}

// Family returns the spec for an operator kind, or nil for KindLiteral.
func (s *TableSpec) Family(k Kind) *OperatorSpec {
	switch k {
	case KindNot:
		return &s.Not
	case KindAnd:
		return &s.And
	case KindOr:
		return &s.Or
	case KindImplies:
		return &s.Implies
	case KindIff:
		return &s.Iff
	}
	return nil
}

// Reserved characters may not appear in spellings. Spaces and parentheses
// belong to the formula grammar, and '|' marks the cursor in formatted lines.
const Reserved = " ()|"

// A TableError reports an invalid operator table.
type TableError struct {
	Kind    Kind
	Message string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("operator table: %s: %s", strings.ToLower(e.Kind.String()), e.Message)
}

type spelling struct {
	kind Kind
	text []rune
}

// A Table maps operator spellings to canonical operators and back.
// A Table is immutable once built and may be shared.
type Table struct {
	spec      TableSpec
	spellings []spelling // longest first, ties in priority order
	forms     [KindIff + 1][][]rune
	runes     map[rune]bool
}

// NewTable validates spec and builds a table from it.
func NewTable(spec TableSpec) (*Table, error) {
	t := &Table{runes: make(map[rune]bool)}
	owner := make(map[string]Kind)
	for _, k := range operatorKinds {
		family := spec.Family(k)
		if family.Plain == "" || family.Pretty == "" {
			return nil, &TableError{Kind: k, Message: "plain and pretty glyphs are required"}
		}
		var sawPlain, sawPretty bool
		for _, s := range family.Spellings {
			if s == "" {
				return nil, &TableError{Kind: k, Message: "empty spelling"}
			}
			if strings.ContainsAny(s, Reserved) {
				return nil, &TableError{Kind: k, Message: fmt.Sprintf("spelling %q contains a reserved character", s)}
			}
			if other, ok := owner[s]; ok {
				return nil, &TableError{Kind: k, Message: fmt.Sprintf("spelling %q is already used by %s", s, other)}
			}
			owner[s] = k
			sawPlain = sawPlain || s == family.Plain
			sawPretty = sawPretty || s == family.Pretty
			text := []rune(s)
			t.spellings = append(t.spellings, spelling{kind: k, text: text})
			t.forms[k] = append(t.forms[k], text)
			for _, c := range text {
				t.runes[c] = true
			}
		}
		if !sawPlain || !sawPretty {
			return nil, &TableError{Kind: k, Message: "plain and pretty glyphs must be listed as spellings"}
		}
	}
	// spellings were appended in priority order, so a stable sort keeps it for ties
	sort.SliceStable(t.spellings, func(i, j int) bool {
		return len(t.spellings[i].text) > len(t.spellings[j].text)
	})
	t.spec = spec.clone()
	return t, nil
}

// DefaultTable returns a table built from DefaultSpec.
func DefaultTable() *Table {
	t, err := NewTable(DefaultSpec())
	if err != nil {
		panic(err)
	}
	return t
}

var defaultTable = DefaultTable()

// Spec returns a copy of the spec the table was built from.
func (t *Table) Spec() TableSpec {
	return t.spec.clone()
}

// Glyph returns the output glyph for an operator in the given style.
func (t *Table) Glyph(k Kind, s Style) string {
	family := t.spec.Family(k)
	if family == nil {
		return ""
	}
	if s == Pretty {
		return family.Pretty
	}
	return family.Plain
}

// UsesRune returns true if c appears in any operator spelling.
func (t *Table) UsesRune(c rune) bool {
	return t.runes[c]
}

// RenderToken returns the text of a single token.
func (t *Table) RenderToken(tok Token, s Style) string {
	if tok.Kind == KindLiteral {
		return string(tok.Char)
	}
	return t.Glyph(tok.Kind, s)
}

// RenderTokens returns the text of a token sequence.
func (t *Table) RenderTokens(ts Tokens, s Style) string {
	var b strings.Builder
	for _, tok := range ts {
		b.WriteString(t.RenderToken(tok, s))
	}
	return b.String()
}

func (s TableSpec) clone() TableSpec {
	for _, k := range operatorKinds {
		family := s.Family(k)
		family.Spellings = append([]string(nil), family.Spellings...)
	}
	return s
}
