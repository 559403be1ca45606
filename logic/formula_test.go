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
	"errors"
	"testing"
)

var (
	P = Var('P')
	Q = Var('Q')
	R = Var('R')
)

func TestRenderFormula(t *testing.T) {
	table := DefaultTable()
	tests := []struct {
		formula Formula
		plain   string
		pretty  string
	}{
		{P, "P", "P"},
		{Not{P}, "!P", "¬P"},
		{Not{Not{P}}, "!!P", "¬¬P"},
		{Not{Not{Not{P}}}, "!(!!P)", "¬(¬¬P)"},
		{And{P, Q}, "P^Q", "P∧Q"},
		{And{Not{P}, Q}, "!P^Q", "¬P∧Q"},
		{Implies{Not{And{P, Q}}, Or{Not{P}, Not{Q}}}, "(!(P^Q))->(!Pv!Q)", "(¬(P∧Q))→(¬P∨¬Q)"},
		{Iff{Or{P, Q}, Or{Q, P}}, "(PvQ)<->(QvP)", "(P∨Q)↔(Q∨P)"},
		{Implies{Implies{P, Q}, R}, "(P->Q)->R", "(P→Q)→R"},
		{Implies{P, Implies{Q, R}}, "P->(Q->R)", "P→(Q→R)"},
		{And{Not{Not{P}}, Q}, "(!!P)^Q", "(¬¬P)∧Q"},
	}
	for _, test := range tests {
		if got := table.Render(test.formula, Plain); got != test.plain {
			t.Errorf("Plain rendering: got %s, expected %s", got, test.plain)
		}
		if got := table.Render(test.formula, Pretty); got != test.pretty {
			t.Errorf("Pretty rendering: got %s, expected %s", got, test.pretty)
		}
		if got := test.formula.String(); got != test.plain {
			t.Errorf("String: got %s, expected %s", got, test.plain)
		}
	}
}

func TestParseFormulaRoundTrip(t *testing.T) {
	table := DefaultTable()
	formulas := []Formula{
		P,
		Not{Not{Not{P}}},
		Implies{Not{And{P, Q}}, Or{Not{P}, Not{Q}}},
		Iff{Or{P, Q}, Or{Q, P}},
		And{Implies{P, Q}, Iff{Not{R}, Not{Not{Q}}}},
	}
	for _, f := range formulas {
		for _, style := range []Style{Plain, Pretty} {
			text := table.Render(f, style)
			got, err := table.ParseFormula(text)
			if err != nil {
				t.Errorf("ParseFormula(%q) failed: %+v", text, err)
				continue
			}
			if got != f {
				t.Errorf("ParseFormula(%q) = %s, expected %s", text, got, f)
			}
			// the rendered text normalizes the same way whether parsed or simplified
			simplified, _ := table.Simplify(Literals(text))
			if !simplified.Equal(table.Parse(text)) {
				t.Errorf("Parse and Simplify disagree on %q", text)
			}
		}
	}
}

func TestParseFormulaRoundTripsEveryVariable(t *testing.T) {
	table := DefaultTable()
	for c := 'A'; c <= 'z'; c++ {
		if !table.IsVariable(c) {
			continue
		}
		f := And{Not{Var(c)}, Implies{Var(c), P}}
		text := table.Render(f, Pretty)
		got, err := table.ParseFormula(text)
		if err != nil || got != f {
			t.Errorf("ParseFormula(%q) = %v, %v", text, got, err)
		}
	}
	for _, c := range []rune{'v', '1', '(', ' ', '¬'} {
		if table.IsVariable(c) {
			t.Errorf("%q should not be a variable", c)
		}
	}
	// an operator letter renders but does not parse back
	if _, err := table.ParseFormula(table.Render(And{Var('v'), P}, Plain)); err == nil {
		t.Errorf("Expected an error for a variable spelled like an operator")
	}
}

func TestParseFormulaAcceptsAnySpelling(t *testing.T) {
	table := DefaultTable()
	got, err := table.ParseFormula("( ~P & Q ) <→ R")
	if err != nil {
		t.Fatalf("ParseFormula failed: %+v", err)
	}
	expected := Iff{And{Not{P}, Q}, R}
	if got != expected {
		t.Errorf("Got %s, expected %s", got, expected)
	}
}

func TestParseFormulaErrors(t *testing.T) {
	table := DefaultTable()
	tests := []struct {
		text   string
		offset int
	}{
		{"", 0},
		{"P^", 2},
		{"P^Q^R", 3},
		{"(P^Q", 4},
		{"P Q", 2},
		{")", 0},
		{"1", 0},
	}
	for _, test := range tests {
		_, err := table.ParseFormula(test.text)
		var syntaxErr *SyntaxError
		if !errors.As(err, &syntaxErr) {
			t.Errorf("ParseFormula(%q): expected SyntaxError, got %v", test.text, err)
			continue
		}
		if syntaxErr.Offset != test.offset {
			t.Errorf("ParseFormula(%q): error at %d, expected %d (%s)", test.text, syntaxErr.Offset, test.offset, syntaxErr)
		}
	}
}
