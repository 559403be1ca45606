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
	"unicode"

	"github.com/timburks/proofed/logic"
	"github.com/timburks/proofed/types"
)

// The Editor owns one proof buffer and the cursor that edits it, and
// translates discrete actions into cursor operations.
// An Editor is not safe for concurrent use; hosts serialize their input.
type Editor struct {
	buffer      *Buffer
	cursor      Cursor
	table       *logic.Table
	style       logic.Style
	undo        []snapshot // state before each successful edit
	highlighter *Highlighter
}

type snapshot struct {
	lines  []Line
	cursor Cursor
}

// NewEditor returns an editor for lines. With no lines, the editor starts
// with the Example proof.
func NewEditor(t *logic.Table, lines ...*Line) *Editor {
	if len(lines) == 0 {
		lines = Example(t)
	}
	return &Editor{
		buffer:      NewBuffer(lines...),
		table:       t,
		highlighter: NewHighlighter(t),
	}
}

// Example returns a premise and a line derived from it.
func Example(t *logic.Table) []*Line {
	return []*Line{
		{Step: t.Parse("P"), Method: t.Parse("Premise"), Deps: []int{0}},
		{Step: t.Parse("¬¬P"), Method: t.Parse("¬I 1"), Deps: []int{0}},
	}
}

// Perform applies one action. Characters that are neither letters nor
// part of the operator and grouping glyphs return ErrUnhandled.
func (e *Editor) Perform(a Action) error {
	var saved snapshot
	if a.mutates() {
		saved = e.save()
	}
	var err error
	switch a.Kind {
	case MoveRight:
		err = e.cursor.MoveRight(e.buffer)
	case MoveLeft:
		err = e.cursor.MoveLeft(e.buffer)
	case DeleteForward:
		err = e.cursor.DeleteForward(e.buffer, e.table)
	case DeleteBackward:
		err = e.cursor.DeleteBackward(e.buffer, e.table)
	case Split:
		err = e.cursor.Split(e.buffer)
	case InsertCharacter:
		if !e.Accepts(a.Char) {
			return ErrUnhandled
		}
		err = e.cursor.Insert(e.buffer, e.table, logic.Literal(a.Char))
	default:
		return ErrUnhandled
	}
	if err == nil && a.mutates() {
		e.undo = append(e.undo, saved)
	}
	return err
}

// Accepts returns true if c may be typed into a proof.
func (e *Editor) Accepts(c rune) bool {
	switch {
	case unicode.IsLetter(c):
		return true
	case c == ' ' || c == '(' || c == ')':
		return true
	}
	return e.table.UsesRune(c)
}

// InsertText parses text with the operator table and inserts the tokens at
// the cursor. If any character is not accepted, nothing is inserted.
func (e *Editor) InsertText(text string) error {
	for _, c := range text {
		if !e.Accepts(c) {
			return ErrUnhandled
		}
	}
	saved := e.save()
	if err := e.cursor.InsertTokens(e.buffer, e.table, e.table.Parse(text)); err != nil {
		return err
	}
	e.undo = append(e.undo, saved)
	return nil
}

// Cite replaces the dependencies of the cursor's line.
func (e *Editor) Cite(deps ...int) error {
	for _, d := range deps {
		if d < 0 {
			return ErrIndexOutOfRange
		}
	}
	l := e.buffer.GetLine(e.cursor.Line)
	if l == nil {
		return ErrInvalidCursor
	}
	e.undo = append(e.undo, e.save())
	l.Deps = append([]int(nil), deps...)
	return nil
}

// PerformUndo restores the state before the last successful edit.
func (e *Editor) PerformUndo() error {
	if len(e.undo) == 0 {
		return ErrNothingToUndo
	}
	last := len(e.undo) - 1
	saved := e.undo[last]
	e.undo = e.undo[0:last]
	e.buffer.restore(saved.lines)
	e.cursor = saved.cursor
	return nil
}

func (e *Editor) save() snapshot {
	return snapshot{lines: e.buffer.snapshot(), cursor: e.cursor}
}

// Check parses the step of the cursor's line. It reports whether the step
// is a well-formed formula, not whether it follows from its dependencies.
func (e *Editor) Check() (logic.Formula, error) {
	l := e.buffer.GetLine(e.cursor.Line)
	if l == nil {
		return nil, ErrInvalidCursor
	}
	step, _ := e.table.Simplify(l.Step)
	return logic.ParseTokens(step)
}

func (e *Editor) GetCursor() Cursor {
	return e.cursor
}

// SetCursor moves the cursor to c if c addresses the buffer.
func (e *Editor) SetCursor(c Cursor) error {
	if err := c.Validate(e.buffer); err != nil {
		return err
	}
	e.cursor = c
	return nil
}

// GoToLine moves the cursor to the start of line i.
func (e *Editor) GoToLine(i int) error {
	return e.SetCursor(Cursor{Line: i, Column: Step})
}

func (e *Editor) GetBuffer() *Buffer {
	return e.buffer
}

func (e *Editor) GetTable() *logic.Table {
	return e.table
}

func (e *Editor) GetStyle() logic.Style {
	return e.style
}

func (e *Editor) SetStyle(s logic.Style) {
	e.style = s
}

func (e *Editor) GetLineCount() int {
	return e.buffer.GetLineCount()
}

func (e *Editor) GetCursorLine() int {
	return e.cursor.Line
}

// Lines returns every line formatted for display, with the cursor marker.
func (e *Editor) Lines() []string {
	lines := make([]string, 0, e.buffer.GetLineCount())
	for _, l := range e.buffer.lines {
		lines = append(lines, l.FormatWithCursor(e.table, e.style, e.cursor))
	}
	return lines
}

// CurrentLineText returns the cursor's line formatted without a marker.
func (e *Editor) CurrentLineText() string {
	l := e.buffer.GetLine(e.cursor.Line)
	if l == nil {
		return ""
	}
	return l.Format(e.table, e.style)
}

// Highlight returns a color for each rune of a formatted line.
func (e *Editor) Highlight(text string) []types.Color {
	return e.highlighter.Highlight(text)
}
