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
package editor

import (
	"errors"
	"strings"
	"testing"

	"github.com/timburks/proofed/logic"
	"github.com/timburks/proofed/types"
)

func typeText(t *testing.T, e *Editor, text string) {
	t.Helper()
	for _, c := range text {
		if err := e.Perform(Insert(c)); err != nil {
			t.Fatalf("Typing %q failed: %v", c, err)
		}
	}
}

func TestExampleProof(t *testing.T) {
	e := NewEditor(table)
	if e.GetLineCount() != 2 {
		t.Fatalf("Unexpected line count: %d", e.GetLineCount())
	}
	e.SetStyle(logic.Pretty)
	expected := []string{
		"  1. |P" + strings.Repeat(" ", 19) + "Premise    {1}",
		"  2. ¬¬P" + strings.Repeat(" ", 18) + "¬I 1       {1}",
	}
	for i, got := range e.Lines() {
		if got != expected[i] {
			t.Errorf("Line %d:\nexpected %q\ngot      %q", i, expected[i], got)
		}
	}
	e.SetStyle(logic.Plain)
	if got := e.Lines()[1]; !strings.HasPrefix(got, "  2. !!P ") {
		t.Errorf("Unexpected plain line: %q", got)
	}
}

func TestFormat(t *testing.T) {
	l := line("P->Q", "MP", 0, 2)
	l.No = 3
	if got := l.Format(table, logic.Plain); got != "  4. P->Q"+strings.Repeat(" ", 17)+"MP         {1, 3}" {
		t.Errorf("Unexpected format: %q", got)
	}
	if got := l.FormatWithCursor(table, logic.Pretty, Cursor{3, Method, 2}); got != "  4. P→Q"+strings.Repeat(" ", 18)+"MP|        {1, 3}" {
		t.Errorf("Unexpected format: %q", got)
	}
	if got := l.FormatWithCursor(table, logic.Pretty, Cursor{2, Method, 2}); strings.ContainsRune(got, Marker) {
		t.Errorf("Marker on a line without the cursor: %q", got)
	}
}

func TestTypingImplication(t *testing.T) {
	e := NewEditor(table, NewLine(0))
	typeText(t, e, "P-")
	typeText(t, e, ">")
	if c := e.GetCursor(); c.Offset != 2 {
		t.Errorf("Expected offset 2, got %d", c.Offset)
	}
	typeText(t, e, "Q")
	if got := e.CurrentLineText(); !strings.HasPrefix(got, "  1. P->Q ") {
		t.Errorf("Unexpected line: %q", got)
	}
	f, err := e.Check()
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if f != (logic.Implies{L: logic.Var('P'), R: logic.Var('Q')}) {
		t.Errorf("Unexpected formula: %v", f)
	}
}

func TestRejectedCharacters(t *testing.T) {
	e := NewEditor(table, NewLine(0))
	for _, c := range "1{}\t" {
		if err := e.Perform(Insert(c)); !errors.Is(err, ErrUnhandled) {
			t.Errorf("Expected ErrUnhandled for %q, got %v", c, err)
		}
	}
	if !e.GetBuffer().GetLine(0).IsEmpty() {
		t.Errorf("Rejected characters changed the buffer")
	}
	if err := e.PerformUndo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Expected ErrNothingToUndo, got %v", err)
	}
}

func TestFailedActionsLeaveState(t *testing.T) {
	e := NewEditor(table)
	before := e.Lines()
	if err := e.Perform(Action{Kind: MoveLeft}); !errors.Is(err, ErrStartOfText) {
		t.Errorf("Expected ErrStartOfText, got %v", err)
	}
	if err := e.Perform(Action{Kind: Split}); !errors.Is(err, ErrNotAtBoundary) {
		t.Errorf("Expected ErrNotAtBoundary, got %v", err)
	}
	for i, l := range e.Lines() {
		if l != before[i] {
			t.Errorf("Line %d changed from %q to %q", i, before[i], l)
		}
	}
	if err := e.PerformUndo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Failed actions were recorded for undo")
	}
}

func TestUndo(t *testing.T) {
	e := NewEditor(table)
	before := e.Lines()
	e.SetCursor(Cursor{0, Method, 7})
	e.Perform(Action{Kind: Split})
	typeText(t, e, "Q")
	e.Perform(Action{Kind: DeleteBackward})
	if e.GetLineCount() != 3 {
		t.Fatalf("Unexpected line count: %d", e.GetLineCount())
	}
	for i := 0; i < 3; i++ {
		if err := e.PerformUndo(); err != nil {
			t.Fatalf("Undo %d failed: %v", i, err)
		}
	}
	if e.GetCursor() != (Cursor{0, Method, 7}) {
		t.Errorf("Unexpected cursor after undo: %s", e.GetCursor())
	}
	e.SetCursor(Cursor{})
	for i, l := range e.Lines() {
		if l != before[i] {
			t.Errorf("Line %d changed from %q to %q", i, before[i], l)
		}
	}
	if err := e.PerformUndo(); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Expected ErrNothingToUndo, got %v", err)
	}
}

func TestInsertText(t *testing.T) {
	e := NewEditor(table, NewLine(0))
	if err := e.InsertText("P <-> ~Q"); err != nil {
		t.Fatalf("InsertText failed: %v", err)
	}
	if c := e.GetCursor(); c.Offset != 6 {
		t.Errorf("Expected offset 6, got %d", c.Offset)
	}
	if err := e.InsertText("R2"); !errors.Is(err, ErrUnhandled) {
		t.Errorf("Expected ErrUnhandled, got %v", err)
	}
	e.SetStyle(logic.Pretty)
	if got := e.CurrentLineText(); !strings.HasPrefix(got, "  1. P ↔ ¬Q ") {
		t.Errorf("Unexpected line: %q", got)
	}
	e.PerformUndo()
	if !e.GetBuffer().GetLine(0).IsEmpty() {
		t.Errorf("Undo did not remove the inserted text")
	}
}

func TestCite(t *testing.T) {
	e := NewEditor(table)
	e.GoToLine(1)
	if err := e.Cite(0, 1); err != nil {
		t.Fatalf("Cite failed: %v", err)
	}
	if got := e.CurrentLineText(); !strings.HasSuffix(got, "{1, 2}") {
		t.Errorf("Unexpected line: %q", got)
	}
	if err := e.Cite(-1); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
	e.PerformUndo()
	if got := e.CurrentLineText(); !strings.HasSuffix(got, "{1}") {
		t.Errorf("Undo did not restore the citations: %q", got)
	}
	if err := e.GoToLine(2); !errors.Is(err, ErrInvalidCursor) {
		t.Errorf("Expected ErrInvalidCursor, got %v", err)
	}
}

func TestCheckReportsSyntaxErrors(t *testing.T) {
	e := NewEditor(table, NewLine(0))
	typeText(t, e, "P^")
	_, err := e.Check()
	var syntax *logic.SyntaxError
	if !errors.As(err, &syntax) {
		t.Errorf("Expected a syntax error, got %v", err)
	}
}

func TestHighlight(t *testing.T) {
	e := NewEditor(table)
	e.SetStyle(logic.Pretty)
	text := e.Lines()[1]
	colors := e.Highlight(text)
	runes := []rune(text)
	if len(colors) != len(runes) {
		t.Fatalf("Expected %d colors, got %d", len(runes), len(colors))
	}
	for i, c := range runes {
		var expected types.Color
		switch {
		case i < 4:
			expected = types.ColorLineNumber
		case i >= len(runes)-3:
			expected = types.ColorDependency
		case c == '¬':
			expected = types.ColorOperator
		default:
			expected = types.ColorWhite
		}
		if colors[i] != expected {
			t.Errorf("Rune %d (%q): expected color %d, got %d", i, c, expected, colors[i])
		}
	}
	colors = e.Highlight("(P)|")
	if colors[0] != types.ColorPunctuation || colors[2] != types.ColorPunctuation || colors[3] != types.ColorCursor {
		t.Errorf("Unexpected colors: %v", colors)
	}
}

func TestDeletionRestoresOperator(t *testing.T) {
	e := NewEditor(table, NewLine(0))
	typeText(t, e, "P-x>Q")
	if err := e.SetCursor(Cursor{0, Step, 2}); err != nil {
		t.Fatalf("SetCursor failed: %v", err)
	}
	if err := e.Perform(Action{Kind: DeleteForward}); err != nil {
		t.Fatalf("DeleteForward failed: %v", err)
	}
	e.SetStyle(logic.Pretty)
	if got := e.Lines()[0]; !strings.HasPrefix(got, "  1. P→|Q ") {
		t.Errorf("Unexpected line: %q", got)
	}
	f, err := e.Check()
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if f != (logic.Implies{L: logic.Var('P'), R: logic.Var('Q')}) {
		t.Errorf("Unexpected formula: %v", f)
	}
}

func TestMarkerIsReserved(t *testing.T) {
	if !strings.ContainsRune(logic.Reserved, Marker) {
		t.Errorf("Operator spellings may contain the cursor marker %q", Marker)
	}
}
