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
package types

// Modes of the commander.
type Mode int

const (
	ModeEdit    Mode = 0
	ModeCommand Mode = 1
	ModeLisp    Mode = 2
	ModeQuit    Mode = 9999
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeCommand:
		return "command"
	case ModeLisp:
		return "lisp"
	case ModeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

// A Key is a non-character key, decoded from the host's key codes exactly
// once by the screen. Character input arrives in Event.Ch with KeyNone.
type Key int

const (
	KeyNone Key = iota
	KeyUnsupported
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
	KeyHome
	KeyEnd
	KeyCtrlL
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlV
	KeyCtrlY
	KeyCtrlZ
)

var keyNames = map[Key]string{
	KeyNone:        "none",
	KeyUnsupported: "unsupported",
	KeyArrowUp:     "up",
	KeyArrowDown:   "down",
	KeyArrowLeft:   "left",
	KeyArrowRight:  "right",
	KeyBackspace:   "backspace",
	KeyDelete:      "delete",
	KeyEnter:       "enter",
	KeyEsc:         "esc",
	KeySpace:       "space",
	KeyTab:         "tab",
	KeyHome:        "home",
	KeyEnd:         "end",
	KeyCtrlL:       "ctrl-l",
	KeyCtrlP:       "ctrl-p",
	KeyCtrlQ:       "ctrl-q",
	KeyCtrlV:       "ctrl-v",
	KeyCtrlY:       "ctrl-y",
	KeyCtrlZ:       "ctrl-z",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

// Colors are terminal 256-color palette indices.
type Color uint16

const (
	ColorBlack       Color = 0x10
	ColorWhite       Color = 0xff
	ColorOperator    Color = 0x71
	ColorPunctuation Color = 0x83
	ColorLineNumber  Color = 0xf8
	ColorDependency  Color = 0xe0
	ColorCursor      Color = 0x70
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// Editor is the view of an editor that a screen draws.
type Editor interface {
	Lines() []string
	GetLineCount() int
	GetCursorLine() int
	Highlight(text string) []Color
}

// Commander is the view of a commander that a screen draws.
type Commander interface {
	GetMode() Mode
	GetMessageBarText(length int) string
	GetInfoText() string
}
