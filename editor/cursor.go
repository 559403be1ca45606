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
	"fmt"

	"github.com/timburks/proofed/logic"
)

// A Cursor is a position in a buffer: a line index, a column of that line,
// and a token offset within the column. Offset may equal the column length,
// which places the cursor after the last token.
//
// A Cursor does not own the buffer. Every operation validates the cursor
// against the buffer it is given and either commits completely or returns
// an error leaving cursor and buffer unchanged.
type Cursor struct {
	Line   int
	Column Column
	Offset int
}

func (c Cursor) String() string {
	return fmt.Sprintf("%d:%s:%d", c.Line, c.Column, c.Offset)
}

// Validate returns ErrInvalidCursor if c does not address a position in b.
func (c Cursor) Validate(b *Buffer) error {
	l := b.GetLine(c.Line)
	if l == nil || (c.Column != Step && c.Column != Method) {
		return ErrInvalidCursor
	}
	if c.Offset < 0 || c.Offset > l.Length(c.Column) {
		return ErrInvalidCursor
	}
	return nil
}

// MoveRight advances one position, wrapping from the end of the step to the
// method, and from the end of the method to the next line.
func (c *Cursor) MoveRight(b *Buffer) error {
	if err := c.Validate(b); err != nil {
		return err
	}
	l := b.GetLine(c.Line)
	next := *c
	next.Offset++
	switch {
	case next.Column == Step && next.Offset > l.Length(Step):
		next.Column = Method
		next.Offset = 0
	case next.Column == Method && next.Offset > l.Length(Method):
		if next.Line == b.GetLineCount()-1 {
			return ErrEndOfText
		}
		next = Cursor{Line: c.Line + 1, Column: Step}
	}
	*c = next
	return nil
}

// MoveLeft mirrors MoveRight.
func (c *Cursor) MoveLeft(b *Buffer) error {
	if err := c.Validate(b); err != nil {
		return err
	}
	next := *c
	switch {
	case c.Offset > 0:
		next.Offset--
	case c.Column == Method:
		next.Column = Step
		next.Offset = b.GetLine(c.Line).Length(Step)
	case c.Line > 0:
		next.Line--
		next.Column = Method
		next.Offset = b.GetLine(next.Line).Length(Method)
	default:
		return ErrStartOfText
	}
	*c = next
	return nil
}

// Split inserts an empty line after the cursor's line and moves to its step.
// The cursor must be at the end of its column.
func (c *Cursor) Split(b *Buffer) error {
	if err := c.Validate(b); err != nil {
		return err
	}
	if c.Offset != b.GetLine(c.Line).Length(c.Column) {
		return ErrNotAtBoundary
	}
	if err := b.InsertLine(NewLine(c.Line + 1)); err != nil {
		return err
	}
	*c = Cursor{Line: c.Line + 1, Column: Step}
	return nil
}

// DeleteForward removes the token after the cursor and normalizes the
// column. On an empty line with the cursor in the method column, it removes
// the line instead.
func (c *Cursor) DeleteForward(b *Buffer, t *logic.Table) error {
	if err := c.Validate(b); err != nil {
		return err
	}
	l := b.GetLine(c.Line)
	if l.IsEmpty() && c.Column == Method {
		return c.deleteLine(b)
	}
	if c.Offset == l.Length(c.Column) {
		return ErrNothingToDelete
	}
	c.normalize(l, t, l.Tokens(c.Column).Delete(c.Offset), c.Offset)
	return nil
}

// DeleteBackward removes the token before the cursor and normalizes the
// column. In an empty method column it moves left instead, and on an empty
// line with the cursor in the step column it removes the line.
func (c *Cursor) DeleteBackward(b *Buffer, t *logic.Table) error {
	if err := c.Validate(b); err != nil {
		return err
	}
	l := b.GetLine(c.Line)
	switch {
	case c.Column == Method && l.Length(Method) == 0:
		return c.MoveLeft(b)
	case c.Column == Step && l.IsEmpty():
		return c.deleteLine(b)
	case c.Offset == 0:
		return ErrNothingToDelete
	}
	c.normalize(l, t, l.Tokens(c.Column).Delete(c.Offset-1), c.Offset-1)
	return nil
}

// Insert adds tok at the cursor and normalizes the column. The cursor ends
// up just after the inserted token, or after the operator it completed.
func (c *Cursor) Insert(b *Buffer, t *logic.Table, tok logic.Token) error {
	return c.InsertTokens(b, t, logic.Tokens{tok})
}

// InsertTokens adds a token sequence at the cursor and normalizes the column.
func (c *Cursor) InsertTokens(b *Buffer, t *logic.Table, ts logic.Tokens) error {
	if err := c.Validate(b); err != nil {
		return err
	}
	l := b.GetLine(c.Line)
	c.normalize(l, t, l.Tokens(c.Column).Splice(c.Offset, ts), c.Offset+len(ts))
	return nil
}

// normalize stores ts in the cursor's column after simplifying it, and
// moves the cursor to the boundary that offset maps to. A deletion can
// bring the characters of a spelling together, so every edit ends here.
func (c *Cursor) normalize(l *Line, t *logic.Table, ts logic.Tokens, offset int) {
	normalized, offset := t.SimplifyAt(ts, offset)
	l.setTokens(c.Column, normalized)
	c.Offset = offset
}

// deleteLine removes the cursor's line and moves to the start of the
// same column on the previous line.
func (c *Cursor) deleteLine(b *Buffer) error {
	if err := b.DeleteLine(c.Line); err != nil {
		return err
	}
	line := c.Line - 1
	if line < 0 {
		line = 0
	}
	*c = Cursor{Line: line, Column: c.Column}
	return nil
}
