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
	"strconv"
	"strings"

	"github.com/timburks/proofed/logic"
)

// Marker is spliced into formatted lines at the cursor position.
const Marker = '|'

// Format renders the line without a cursor marker.
func (l *Line) Format(t *logic.Table, s logic.Style) string {
	return l.format(t, s, nil)
}

// FormatWithCursor renders the line with Marker at the cursor position when
// the cursor is on this line.
func (l *Line) FormatWithCursor(t *logic.Table, s logic.Style, c Cursor) string {
	return l.format(t, s, &c)
}

func (l *Line) format(t *logic.Table, s logic.Style, c *Cursor) string {
	stepAt, methodAt := -1, -1
	if c != nil && c.Line == l.No {
		if c.Column == Step {
			stepAt = c.Offset
		} else {
			methodAt = c.Offset
		}
	}
	deps := make([]string, len(l.Deps))
	for i, d := range l.Deps {
		deps[i] = strconv.Itoa(d + 1)
	}
	return fmt.Sprintf("%3d. %-20s %-10s {%s}",
		l.No+1,
		renderColumn(t, s, l.Step, stepAt),
		renderColumn(t, s, l.Method, methodAt),
		strings.Join(deps, ", "))
}

// renderColumn renders ts with Marker before token at; at < 0 means no marker.
func renderColumn(t *logic.Table, s logic.Style, ts logic.Tokens, at int) string {
	var b strings.Builder
	for i, tok := range ts {
		if i == at {
			b.WriteRune(Marker)
		}
		b.WriteString(t.RenderToken(tok, s))
	}
	if at == len(ts) {
		b.WriteRune(Marker)
	}
	return b.String()
}
