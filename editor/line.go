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
	"github.com/timburks/proofed/logic"
)

// Column selects one of the two token sequences of a line.
type Column int

const (
	Step   Column = iota // the asserted formula
	Method               // the justification
)

func (c Column) String() string {
	if c == Method {
		return "method"
	}
	return "step"
}

// A Line is one numbered line of a proof.
type Line struct {
	No     int          // position in the owning buffer, starting at 0
	Step   logic.Tokens // the formula asserted on this line; may be ill-formed
	Method logic.Tokens // the justification
	Deps   []int        // cited line indices, starting at 0; not validated
}

// NewLine returns an empty line numbered no.
func NewLine(no int) *Line {
	return &Line{No: no}
}

// IsEmpty returns true if both columns are empty.
func (l *Line) IsEmpty() bool {
	return len(l.Step) == 0 && len(l.Method) == 0
}

// Tokens returns the token sequence of a column.
func (l *Line) Tokens(c Column) logic.Tokens {
	if c == Method {
		return l.Method
	}
	return l.Step
}

// Length returns the number of tokens in a column.
func (l *Line) Length(c Column) int {
	return len(l.Tokens(c))
}

func (l *Line) setTokens(c Column, ts logic.Tokens) {
	if c == Method {
		l.Method = ts
	} else {
		l.Step = ts
	}
}

// Clone returns a deep copy of the line.
func (l *Line) Clone() *Line {
	return &Line{
		No:     l.No,
		Step:   l.Step.Clone(),
		Method: l.Method.Clone(),
		Deps:   append([]int(nil), l.Deps...),
	}
}
