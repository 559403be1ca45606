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
	"errors"
	"fmt"
	"unicode"
	"unsafe"

	"github.com/steelseries/golisp"
	"github.com/timburks/proofed/editor"
	"github.com/timburks/proofed/logic"
	"github.com/timburks/proofed/types"
)

const commanderSymbol = "*commander*"

// An environment is the lisp frame a commander evaluates in. It binds the
// commander so that the shared primitives can find their editor.
type environment struct {
	frame *golisp.SymbolTableFrame
}

func newEnvironment(c *Commander) *environment {
	frame := golisp.NewSymbolTableFrameBelow(golisp.Global, "proofed")
	frame.BindLocallyTo(golisp.Intern(commanderSymbol),
		golisp.ObjectWithTypeAndValue("commander", unsafe.Pointer(c)))
	return &environment{frame: frame}
}

func (env *environment) parseEval(text string) (string, error) {
	code, err := golisp.Parse(text)
	if err != nil {
		return "", err
	}
	value, err := golisp.Eval(code, env.frame)
	if err != nil {
		return "", err
	}
	return golisp.String(value), nil
}

func commanderIn(env *golisp.SymbolTableFrame) (*Commander, error) {
	value := env.ValueOf(golisp.Intern(commanderSymbol))
	if !golisp.ObjectP(value) || golisp.ObjectType(value) != "commander" {
		return nil, errors.New("no editor is bound in this environment")
	}
	return (*Commander)(golisp.ObjectValue(value)), nil
}

type primitive func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error)

func init() {
	golisp.MakePrimitiveFunction("right", "0", perform(editor.Action{Kind: editor.MoveRight}))
	golisp.MakePrimitiveFunction("left", "0", perform(editor.Action{Kind: editor.MoveLeft}))
	golisp.MakePrimitiveFunction("delete", "0", perform(editor.Action{Kind: editor.DeleteForward}))
	golisp.MakePrimitiveFunction("backspace", "0", perform(editor.Action{Kind: editor.DeleteBackward}))
	golisp.MakePrimitiveFunction("newline", "0", perform(editor.Action{Kind: editor.Split}))
	golisp.MakePrimitiveFunction("up", "0", withCommander(UpImpl))
	golisp.MakePrimitiveFunction("down", "0", withCommander(DownImpl))
	golisp.MakePrimitiveFunction("goto", "1", withCommander(GotoImpl))
	golisp.MakePrimitiveFunction("undo", "0", withCommander(UndoImpl))
	golisp.MakePrimitiveFunction("insert-char", "1", withCommander(InsertCharImpl))
	golisp.MakePrimitiveFunction("insert", "1", withCommander(InsertImpl))
	golisp.MakePrimitiveFunction("paste", "0", withCommander(PasteImpl))
	golisp.MakePrimitiveFunction("copy", "0", withCommander(CopyImpl))
	golisp.MakePrimitiveFunction("cite", "*", withCommander(CiteImpl))
	golisp.MakePrimitiveFunction("pretty", "0", withCommander(style(logic.Pretty)))
	golisp.MakePrimitiveFunction("plain", "0", withCommander(style(logic.Plain)))
	golisp.MakePrimitiveFunction("toggle-style", "0", withCommander(ToggleStyleImpl))
	golisp.MakePrimitiveFunction("check", "0", withCommander(CheckImpl))
	golisp.MakePrimitiveFunction("lines", "0", withCommander(LinesImpl))
	golisp.MakePrimitiveFunction("line-count", "0", withCommander(LineCountImpl))
	golisp.MakePrimitiveFunction("cursor", "0", withCommander(CursorImpl))
	golisp.MakePrimitiveFunction("quit", "0", withCommander(QuitImpl))
}

func withCommander(f func(c *Commander, args *golisp.Data) (*golisp.Data, error)) primitive {
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		c, err := commanderIn(env)
		if err != nil {
			return nil, err
		}
		return f(c, args)
	}
}

func perform(a editor.Action) primitive {
	return withCommander(func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		return c.result(c.editor.Perform(a)), nil
	})
}

// result records the outcome of an editor action. Editor failures are not
// lisp errors; the primitive returns false and the commander reports them.
func (c *Commander) result(err error) *golisp.Data {
	c.lastError = err
	return golisp.BooleanWithValue(err == nil)
}

func integerArg(name string, d *golisp.Data) (int, error) {
	if !golisp.IntegerP(d) {
		return 0, fmt.Errorf("%s requires an integer argument, got %s", name, golisp.String(d))
	}
	return int(golisp.IntegerValue(d)), nil
}

func UpImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	return c.result(c.editor.GoToLine(c.editor.GetCursorLine() - 1)), nil
}

func DownImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	return c.result(c.editor.GoToLine(c.editor.GetCursorLine() + 1)), nil
}

// GotoImpl moves to the start of a line, numbered from 1.
func GotoImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	n, err := integerArg("goto", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	return c.result(c.editor.GoToLine(n - 1)), nil
}

func UndoImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	return c.result(c.editor.PerformUndo()), nil
}

// InsertCharImpl types one character, given as a code point or a
// single-character string.
func InsertCharImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	arg := golisp.Car(args)
	var ch rune
	switch {
	case golisp.IntegerP(arg):
		n := golisp.IntegerValue(arg)
		if n < 0 || n > unicode.MaxRune {
			return nil, fmt.Errorf("insert-char: %d is not a character code", n)
		}
		ch = rune(n)
	case golisp.StringP(arg) && len([]rune(golisp.StringValue(arg))) == 1:
		ch = []rune(golisp.StringValue(arg))[0]
	default:
		return nil, fmt.Errorf("insert-char requires a character code, got %s", golisp.String(arg))
	}
	return c.result(c.editor.Perform(editor.Insert(ch))), nil
}

func InsertImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	arg := golisp.Car(args)
	if !golisp.StringP(arg) {
		return nil, fmt.Errorf("insert requires a string argument, got %s", golisp.String(arg))
	}
	return c.result(c.editor.InsertText(golisp.StringValue(arg))), nil
}

func PasteImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	text, err := c.clipboard.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("paste: %w", err)
	}
	return c.result(c.editor.InsertText(text)), nil
}

func CopyImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	text := c.editor.CurrentLineText()
	if err := c.clipboard.WriteAll(text); err != nil {
		return nil, fmt.Errorf("copy: %w", err)
	}
	return golisp.StringWithValue(text), nil
}

// CiteImpl replaces the citations of the cursor line. Lines are numbered
// from 1, as they are displayed.
func CiteImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	var deps []int
	for a := args; !golisp.NilP(a); a = golisp.Cdr(a) {
		n, err := integerArg("cite", golisp.Car(a))
		if err != nil {
			return nil, err
		}
		deps = append(deps, n-1)
	}
	return c.result(c.editor.Cite(deps...)), nil
}

func style(s logic.Style) func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	return func(c *Commander, args *golisp.Data) (*golisp.Data, error) {
		c.editor.SetStyle(s)
		return golisp.StringWithValue(s.String()), nil
	}
}

func ToggleStyleImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	s := logic.Pretty
	if c.editor.GetStyle() == logic.Pretty {
		s = logic.Plain
	}
	return style(s)(c, args)
}

// CheckImpl returns the rendered step of the cursor line, or false if the
// step is not a well-formed formula.
func CheckImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	f, err := c.editor.Check()
	if err != nil {
		return c.result(err), nil
	}
	c.lastError = nil
	return golisp.StringWithValue(c.editor.GetTable().Render(f, c.editor.GetStyle())), nil
}

func LinesImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	lines := c.editor.Lines()
	values := make([]*golisp.Data, len(lines))
	for i, l := range lines {
		values[i] = golisp.StringWithValue(l)
	}
	return golisp.ArrayToList(values), nil
}

func LineCountImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.GetLineCount())), nil
}

func CursorImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	return golisp.StringWithValue(c.editor.GetCursor().String()), nil
}

func QuitImpl(c *Commander, args *golisp.Data) (*golisp.Data, error) {
	c.mode = types.ModeQuit
	return golisp.BooleanWithValue(true), nil
}
