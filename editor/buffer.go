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

// A Buffer holds the lines of a proof. Line i always has No == i,
// and a buffer always has at least one line.
type Buffer struct {
	lines []*Line
}

// NewBuffer returns a buffer holding lines, renumbered from 0.
// With no lines it holds a single empty line.
func NewBuffer(lines ...*Line) *Buffer {
	b := &Buffer{}
	if len(lines) == 0 {
		lines = []*Line{NewLine(0)}
	}
	for i, l := range lines {
		l.No = i
		b.lines = append(b.lines, l)
	}
	return b
}

func (b *Buffer) GetLineCount() int {
	return len(b.lines)
}

// GetLine returns the line at index i, or nil if there is none.
func (b *Buffer) GetLine(i int) *Line {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// Lines returns the lines in order. The slice is a copy; the lines are not.
func (b *Buffer) Lines() []*Line {
	return append([]*Line(nil), b.lines...)
}

// InsertLine inserts l at index l.No. Lines at or after that index move down by one.
func (b *Buffer) InsertLine(l *Line) error {
	i := l.No
	if i < 0 || i > len(b.lines) {
		return ErrIndexOutOfRange
	}
	for _, other := range b.lines {
		if other.No >= i {
			other.No++
		}
	}
	b.lines = append(b.lines, nil)
	copy(b.lines[i+1:], b.lines[i:])
	b.lines[i] = l
	return nil
}

// DeleteLine removes the line at index i. Lines after it move up by one.
func (b *Buffer) DeleteLine(i int) error {
	if i < 0 || i >= len(b.lines) {
		return ErrIndexOutOfRange
	}
	if len(b.lines) == 1 {
		return ErrSingleLineGuard
	}
	b.lines = append(b.lines[0:i], b.lines[i+1:]...)
	for _, other := range b.lines {
		if other.No > i {
			other.No--
		}
	}
	return nil
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{lines: make([]*Line, len(b.lines))}
	for i, l := range b.lines {
		c.lines[i] = l.Clone()
	}
	return c
}

// snapshot copies the lines by value. Token sequences and dependency lists
// are replaced, never modified in place, so the copies stay valid.
func (b *Buffer) snapshot() []Line {
	lines := make([]Line, len(b.lines))
	for i, l := range b.lines {
		lines[i] = *l
	}
	return lines
}

func (b *Buffer) restore(lines []Line) {
	b.lines = make([]*Line, len(lines))
	for i := range lines {
		l := lines[i]
		b.lines[i] = &l
	}
}
