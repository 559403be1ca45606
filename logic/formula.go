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
	"strings"
	"unicode"
)

// A Formula is an immutable propositional formula tree.
// The set of variants is closed: Var, Not, And, Or, Implies and Iff.
type Formula interface {
	String() string
	formula()
}

// Var is a propositional variable named by a single character.
type Var rune

// Not is the negation of X.
type Not struct{ X Formula }

// And is the conjunction of L and R.
type And struct{ L, R Formula }

// Or is the disjunction of L and R.
type Or struct{ L, R Formula }

// Implies is the conditional from L to R.
type Implies struct{ L, R Formula }

// Iff is the biconditional of L and R.
type Iff struct{ L, R Formula }

func (Var) formula()     {}
func (Not) formula()     {}
func (And) formula()     {}
func (Or) formula()      {}
func (Implies) formula() {}
func (Iff) formula()     {}

func (f Var) String() string     { return defaultTable.Render(f, Plain) }
func (f Not) String() string     { return defaultTable.Render(f, Plain) }
func (f And) String() string     { return defaultTable.Render(f, Plain) }
func (f Or) String() string      { return defaultTable.Render(f, Plain) }
func (f Implies) String() string { return defaultTable.Render(f, Plain) }
func (f Iff) String() string     { return defaultTable.Render(f, Plain) }

// Binary builds the binary formula for an operator kind.
// It returns nil if k is not a binary operator.
func Binary(k Kind, l, r Formula) Formula {
	switch k {
	case KindAnd:
		return And{l, r}
	case KindOr:
		return Or{l, r}
	case KindImplies:
		return Implies{l, r}
	case KindIff:
		return Iff{l, r}
	}
	return nil
}

// Render writes f using the glyphs of style s.
//
// Operands are parenthesized unless they are a variable or the negation of
// a variable. There is no precedence between operators, so a rendered
// formula reads back unambiguously with ParseFormula when all of its
// variables satisfy IsVariable.
func (t *Table) Render(f Formula, s Style) string {
	var b strings.Builder
	t.render(&b, f, s)
	return b.String()
}

// IsVariable returns true if c can name a variable that survives a round
// trip through Render and ParseFormula: a letter used by no operator spelling.
func (t *Table) IsVariable(c rune) bool {
	return unicode.IsLetter(c) && !t.UsesRune(c)
}

func (t *Table) render(b *strings.Builder, f Formula, s Style) {
	switch f := f.(type) {
	case Var:
		b.WriteRune(rune(f))
	case Not:
		b.WriteString(t.Glyph(KindNot, s))
		t.operand(b, f.X, s)
	case And:
		t.binary(b, KindAnd, f.L, f.R, s)
	case Or:
		t.binary(b, KindOr, f.L, f.R, s)
	case Implies:
		t.binary(b, KindImplies, f.L, f.R, s)
	case Iff:
		t.binary(b, KindIff, f.L, f.R, s)
	}
}

func (t *Table) binary(b *strings.Builder, k Kind, l, r Formula, s Style) {
	t.operand(b, l, s)
	b.WriteString(t.Glyph(k, s))
	t.operand(b, r, s)
}

func (t *Table) operand(b *strings.Builder, f Formula, s Style) {
	if atomic(f) {
		t.render(b, f, s)
		return
	}
	b.WriteByte('(')
	t.render(b, f, s)
	b.WriteByte(')')
}

// atomic is true for a variable and for a negated variable.
func atomic(f Formula) bool {
	switch f := f.(type) {
	case Var:
		return true
	case Not:
		_, ok := f.X.(Var)
		return ok
	}
	return false
}
