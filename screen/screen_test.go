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
package screen

import (
	"testing"

	"github.com/nsf/termbox-go"
	"github.com/timburks/proofed/types"
)

func TestConvertKeys(t *testing.T) {
	tests := []struct {
		key      termbox.Key
		expected types.Key
	}{
		{termbox.KeyArrowLeft, types.KeyArrowLeft},
		{termbox.KeyArrowRight, types.KeyArrowRight},
		{termbox.KeyArrowUp, types.KeyArrowUp},
		{termbox.KeyArrowDown, types.KeyArrowDown},
		{termbox.KeyBackspace, types.KeyBackspace},
		{termbox.KeyBackspace2, types.KeyBackspace},
		{termbox.KeyDelete, types.KeyDelete},
		{termbox.KeyEnter, types.KeyEnter},
		{termbox.KeyCtrlZ, types.KeyCtrlZ},
		{termbox.KeyCtrlV, types.KeyCtrlV},
		{termbox.KeySpace, types.KeySpace},
		{termbox.KeyF1, types.KeyUnsupported},
	}
	for _, test := range tests {
		event := Convert(termbox.Event{Type: termbox.EventKey, Key: test.key})
		if event.Type != types.EventKey || event.Key != test.expected {
			t.Errorf("Key %d: expected %s, got %s", test.key, test.expected, event.Key)
		}
	}
}

func TestConvertCharacters(t *testing.T) {
	event := Convert(termbox.Event{Type: termbox.EventKey, Ch: '¬'})
	if event.Key != types.KeyNone || event.Ch != '¬' {
		t.Errorf("Unexpected event: %+v", event)
	}
	if event := Convert(termbox.Event{Type: termbox.EventResize}); event.Type != types.EventResize {
		t.Errorf("Unexpected event type: %d", event.Type)
	}
}

func TestScroll(t *testing.T) {
	tests := []struct {
		first, line, height, expected int
	}{
		{0, 0, 10, 0},
		{0, 9, 10, 0},
		{0, 10, 10, 1},
		{5, 2, 10, 2},
		{5, 14, 10, 5},
		{0, 3, 0, 3},
	}
	for _, test := range tests {
		if got := Scroll(test.first, test.line, test.height); got != test.expected {
			t.Errorf("Scroll(%d, %d, %d) = %d, expected %d",
				test.first, test.line, test.height, got, test.expected)
		}
	}
}
