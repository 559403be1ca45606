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
package commander

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/timburks/proofed/editor"
	"github.com/timburks/proofed/logic"
	"github.com/timburks/proofed/types"
)

// The Commander converts user input into actions for the Editor.
// Keys are translated to lisp forms and evaluated in the commander's
// environment, so keys and scripts share one set of primitives.
type Commander struct {
	editor    *editor.Editor
	env       *environment
	clipboard Clipboard
	mode      types.Mode
	command   string // command as it is being typed on the command line
	lispText  string // lisp expression as it is being typed
	message   string // status message
	lastError error  // result of the last editor action
}

func NewCommander(e *editor.Editor) *Commander {
	c := &Commander{editor: e, mode: types.ModeEdit, clipboard: SystemClipboard{}}
	c.env = newEnvironment(c)
	return c
}

// SetClipboard replaces the system clipboard.
func (c *Commander) SetClipboard(cb Clipboard) {
	c.clipboard = cb
}

func (c *Commander) GetEditor() *editor.Editor {
	return c.editor
}

func (c *Commander) GetMode() types.Mode {
	return c.mode
}

func (c *Commander) SetMode(m types.Mode) {
	c.mode = m
}

func (c *Commander) IsRunning() bool {
	return c.mode != types.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

// LastError returns the error of the most recent editor action, if any.
func (c *Commander) LastError() error {
	return c.lastError
}

func (c *Commander) ProcessEvent(event *types.Event) error {
	switch event.Type {
	case types.EventKey:
		return c.processKey(event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *types.Event) error {
	switch c.mode {
	case types.ModeEdit:
		return c.processKeyEditMode(event)
	case types.ModeCommand:
		return c.processKeyCommandMode(event)
	case types.ModeLisp:
		return c.processKeyLispMode(event)
	}
	return nil
}

func (c *Commander) processKeyEditMode(event *types.Event) error {
	if event.Key != types.KeyNone {
		switch event.Key {
		case types.KeyArrowRight:
			c.eval("(right)")
		case types.KeyArrowLeft:
			c.eval("(left)")
		case types.KeyArrowUp:
			c.eval("(up)")
		case types.KeyArrowDown:
			c.eval("(down)")
		case types.KeyHome:
			c.eval(fmt.Sprintf("(goto %d)", c.editor.GetCursorLine()+1))
		case types.KeyBackspace:
			c.eval("(backspace)")
		case types.KeyDelete:
			c.eval("(delete)")
		case types.KeyEnter:
			c.eval("(newline)")
		case types.KeySpace:
			c.eval("(insert-char 32)")
		case types.KeyCtrlZ:
			c.eval("(undo)")
		case types.KeyCtrlP:
			c.eval("(toggle-style)")
		case types.KeyCtrlV:
			c.eval("(paste)")
		case types.KeyCtrlY:
			c.eval("(copy)")
		case types.KeyCtrlQ:
			c.eval("(quit)")
		case types.KeyCtrlL:
			c.mode = types.ModeLisp
			c.lispText = "("
		}
		return nil
	}
	switch event.Ch {
	case 0:
		break
	case ':':
		c.mode = types.ModeCommand
		c.command = ""
	default:
		c.eval(fmt.Sprintf("(insert-char %d)", event.Ch))
	}
	return nil
}

func (c *Commander) processKeyCommandMode(event *types.Event) error {
	switch event.Key {
	case types.KeyEsc:
		c.mode = types.ModeEdit
	case types.KeyEnter:
		c.performCommand()
	case types.KeyBackspace:
		if len(c.command) > 0 {
			_, size := utf8.DecodeLastRuneInString(c.command)
			c.command = c.command[0 : len(c.command)-size]
		}
	case types.KeySpace:
		c.command += " "
	}
	if event.Ch != 0 {
		c.command += string(event.Ch)
	}
	return nil
}

func (c *Commander) processKeyLispMode(event *types.Event) error {
	switch event.Key {
	case types.KeyEsc:
		c.mode = types.ModeEdit
	case types.KeyEnter:
		c.mode = types.ModeEdit
		c.message = c.ParseEval(c.lispText)
	case types.KeyBackspace:
		if len(c.lispText) > 0 {
			_, size := utf8.DecodeLastRuneInString(c.lispText)
			c.lispText = c.lispText[0 : len(c.lispText)-size]
		}
	case types.KeySpace:
		c.lispText += " "
	}
	if event.Ch != 0 {
		c.lispText += string(event.Ch)
	}
	return nil
}

// eval runs a form produced by a key and reports editor failures on the
// message bar.
func (c *Commander) eval(form string) {
	c.lastError = nil
	if _, err := c.env.parseEval(form); err != nil {
		log.Printf("%s: %v", form, err)
		c.message = err.Error()
		return
	}
	if c.lastError != nil {
		c.message = c.lastError.Error()
	} else {
		c.message = ""
	}
}

// ParseEval evaluates a lisp expression and returns its printed value or
// the error it produced.
func (c *Commander) ParseEval(text string) string {
	value, err := c.env.parseEval(text)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	return value
}

// ParseEvalFile evaluates the lisp forms in a file.
func (c *Commander) ParseEvalFile(filename string) (string, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return c.EvalScript(string(source))
}

// EvalScript evaluates a sequence of lisp forms.
func (c *Commander) EvalScript(source string) (string, error) {
	return c.env.parseEval("(begin " + source + "\n)")
}

func (c *Commander) performCommand() {
	e := c.editor
	defer func() {
		c.command = ""
		if c.mode == types.ModeCommand {
			c.mode = types.ModeEdit
		}
	}()
	parts := strings.Fields(c.command)
	if len(parts) == 0 {
		return
	}
	if i, err := strconv.Atoi(parts[0]); err == nil {
		row := i - 1
		if row > e.GetLineCount()-1 {
			row = e.GetLineCount() - 1
		}
		if row < 0 {
			row = 0
		}
		e.GoToLine(row)
		return
	}
	c.message = ""
	switch parts[0] {
	case "q", "quit":
		c.mode = types.ModeQuit
	case "pretty":
		e.SetStyle(logic.Pretty)
	case "plain":
		e.SetStyle(logic.Plain)
	case "undo":
		c.report(e.PerformUndo())
	case "check":
		c.message = c.check()
	case "cite":
		deps := make([]int, 0, len(parts)-1)
		for _, part := range parts[1:] {
			n, err := strconv.Atoi(part)
			if err != nil {
				c.message = fmt.Sprintf("cite: invalid line %q", part)
				return
			}
			deps = append(deps, n-1)
		}
		c.report(e.Cite(deps...))
	case "eval":
		if len(parts) > 1 {
			c.message = c.ParseEval(strings.Join(parts[1:], " "))
		}
	default:
		c.message = fmt.Sprintf("unknown command %q", parts[0])
	}
}

func (c *Commander) report(err error) {
	c.lastError = err
	if err != nil {
		c.message = err.Error()
	}
}

// check returns a description of the cursor line's step.
func (c *Commander) check() string {
	f, err := c.editor.Check()
	if err != nil {
		return err.Error()
	}
	return "well-formed: " + c.editor.GetTable().Render(f, c.editor.GetStyle())
}

func (c *Commander) GetCommandText() string {
	return c.command
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case types.ModeCommand:
		line += ":" + c.command
	case types.ModeLisp:
		line += c.lispText
	default:
		line += c.message
	}
	runes := []rune(line)
	if len(runes) > length {
		line = string(runes[0:length])
	}
	return line
}

func (c *Commander) GetInfoText() string {
	return fmt.Sprintf(" proofed - %s - %s ", c.mode, c.editor.GetStyle())
}
