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
	"regexp"

	"github.com/timburks/proofed/logic"
	"github.com/timburks/proofed/types"
)

// The Highlighter colors formatted proof lines.
type Highlighter struct {
	table              *logic.Table
	numberPattern      *regexp.Regexp
	dependencyPattern  *regexp.Regexp
	punctuationPattern *regexp.Regexp
}

func NewHighlighter(t *logic.Table) *Highlighter {
	h := &Highlighter{table: t}
	h.numberPattern = regexp.MustCompile(`^\s*[0-9]+\.`)
	h.dependencyPattern = regexp.MustCompile(`\{[^}]*\}\s*$`)
	h.punctuationPattern = regexp.MustCompile(`\(|\)`)
	return h
}

// Highlight returns one color per rune of text.
func (h *Highlighter) Highlight(text string) []types.Color {
	runes := []rune(text)
	colors := make([]types.Color, len(runes))
	for j, c := range runes {
		switch {
		case c == Marker:
			colors[j] = types.ColorCursor
		case h.table.UsesRune(c):
			colors[j] = types.ColorOperator
		default:
			colors[j] = types.ColorWhite
		}
	}
	// regexp indices are byte offsets; convert them to rune indices
	index := runeIndex(text)
	paint := func(pattern *regexp.Regexp, color types.Color) {
		for _, match := range pattern.FindAllStringIndex(text, -1) {
			for k := index[match[0]]; k < index[match[1]]; k++ {
				colors[k] = color
			}
		}
	}
	paint(h.punctuationPattern, types.ColorPunctuation)
	paint(h.numberPattern, types.ColorLineNumber)
	paint(h.dependencyPattern, types.ColorDependency)
	return colors
}

// runeIndex maps the byte offset of each rune of text, and len(text),
// to a rune index.
func runeIndex(text string) []int {
	index := make([]int, len(text)+1)
	n := 0
	for i := range text {
		index[i] = n
		n++
	}
	index[len(text)] = n
	return index
}
