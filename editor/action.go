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
)

// ActionKind enumerates the inputs the editor accepts.
type ActionKind int

const (
	MoveRight ActionKind = iota
	MoveLeft
	DeleteForward
	DeleteBackward
	Split
	InsertCharacter
)

func (k ActionKind) String() string {
	switch k {
	case MoveRight:
		return "MoveRight"
	case MoveLeft:
		return "MoveLeft"
	case DeleteForward:
		return "DeleteForward"
	case DeleteBackward:
		return "DeleteBackward"
	case Split:
		return "Split"
	case InsertCharacter:
		return "InsertCharacter"
	default:
		return fmt.Sprintf("ActionKind(%d)", int(k))
	}
}

// An Action is one discrete input for the editor.
// Char is used only by InsertCharacter.
type Action struct {
	Kind ActionKind
	Char rune
}

// Insert returns the action that types c at the cursor.
func Insert(c rune) Action {
	return Action{Kind: InsertCharacter, Char: c}
}

func (a Action) String() string {
	if a.Kind == InsertCharacter {
		return fmt.Sprintf("InsertCharacter(%q)", a.Char)
	}
	return a.Kind.String()
}

// mutates is true for actions that can change the buffer.
func (a Action) mutates() bool {
	return a.Kind != MoveRight && a.Kind != MoveLeft
}
