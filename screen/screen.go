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
	"fmt"
	"log"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
	"github.com/timburks/proofed/types"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size   types.Size  // screen size
	offset types.Point // first visible line
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e types.Editor, c types.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	s.size.Cols, s.size.Rows = termbox.Size()

	editRows := s.size.Rows - 2
	s.offset.Row = Scroll(s.offset.Row, e.GetCursorLine(), editRows)

	lines := e.Lines()
	cursor := types.Point{Row: -1, Col: -1}
	for i := 0; i < editRows && s.offset.Row+i < len(lines); i++ {
		text := lines[s.offset.Row+i]
		colors := e.Highlight(text)
		x := 0
		for j, ch := range []rune(text) {
			if x >= s.size.Cols {
				break
			}
			if ch == cursorMarker {
				cursor = types.Point{Row: i, Col: x}
			}
			s.SetCell(x, i, ch, colors[j])
			x += runewidth.RuneWidth(ch)
		}
	}
	s.RenderInfoBar(e, c)
	s.RenderMessageBar(c)
	if c.GetMode() == types.ModeEdit && cursor.Row >= 0 {
		termbox.SetCursor(cursor.Col, cursor.Row)
	} else {
		termbox.HideCursor()
	}
	termbox.Flush()
}

const cursorMarker = '|'

// Scroll returns the first visible line that keeps line in a window of
// the given height.
func Scroll(first, line, height int) int {
	if height < 1 {
		return line
	}
	if line < first {
		return line
	}
	if line >= first+height {
		return line - height + 1
	}
	return first
}

func (s *Screen) SetCell(j int, i int, c rune, color types.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), termbox.ColorBlack)
}

func (s *Screen) RenderInfoBar(e types.Editor, c types.Commander) {
	finalText := InfoSuffix(e)
	text := c.GetInfoText()
	if pad := s.size.Cols - runewidth.StringWidth(finalText) - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	text += finalText
	x := 0
	for _, ch := range text {
		termbox.SetCell(x, s.size.Rows-2, ch, termbox.ColorBlack, termbox.ColorWhite)
		x += runewidth.RuneWidth(ch)
	}
}

// InfoSuffix returns the line position shown at the right of the info bar.
func InfoSuffix(e types.Editor) string {
	return fmt.Sprintf(" %d/%d ", e.GetCursorLine()+1, e.GetLineCount())
}

func (s *Screen) RenderMessageBar(c types.Commander) {
	line := c.GetMessageBarText(s.size.Cols)
	x := 0
	for _, ch := range line {
		termbox.SetCell(x, s.size.Rows-1, ch, termbox.ColorWhite, termbox.ColorBlack)
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) GetNextEvent() *types.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return Convert(event)
}

// Convert decodes a termbox event. This is the only place termbox key
// codes are interpreted.
func Convert(event termbox.Event) *types.Event {
	switch event.Type {
	case termbox.EventKey:
		if event.Ch != 0 {
			return &types.Event{Type: types.EventKey, Key: types.KeyNone, Ch: event.Ch}
		}
		return &types.Event{Type: types.EventKey, Key: key(event.Key)}
	case termbox.EventResize:
		return &types.Event{Type: types.EventResize}
	default:
		return &types.Event{Type: types.EventOther}
	}
}

func key(k termbox.Key) types.Key {
	switch k {
	case termbox.KeyArrowDown:
		return types.KeyArrowDown
	case termbox.KeyArrowLeft:
		return types.KeyArrowLeft
	case termbox.KeyArrowRight:
		return types.KeyArrowRight
	case termbox.KeyArrowUp:
		return types.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return types.KeyBackspace
	case termbox.KeyDelete:
		return types.KeyDelete
	case termbox.KeyCtrlL:
		return types.KeyCtrlL
	case termbox.KeyCtrlP:
		return types.KeyCtrlP
	case termbox.KeyCtrlQ:
		return types.KeyCtrlQ
	case termbox.KeyCtrlV:
		return types.KeyCtrlV
	case termbox.KeyCtrlY:
		return types.KeyCtrlY
	case termbox.KeyCtrlZ:
		return types.KeyCtrlZ
	case termbox.KeyEnd:
		return types.KeyEnd
	case termbox.KeyEnter:
		return types.KeyEnter
	case termbox.KeyEsc:
		return types.KeyEsc
	case termbox.KeyHome:
		return types.KeyHome
	case termbox.KeySpace:
		return types.KeySpace
	case termbox.KeyTab:
		return types.KeyTab
	default:
		return types.KeyUnsupported
	}
}
