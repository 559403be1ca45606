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
	"errors"
)

// Failures reported by cursor and buffer operations. A failed operation
// leaves the cursor and the buffer exactly as they were.
var (
	// ErrStartOfText means a move or deletion was blocked at the start of the proof.
	ErrStartOfText = errors.New("start of text")

	// ErrEndOfText means a move was blocked at the end of the proof.
	ErrEndOfText = errors.New("end of text")

	// ErrNotAtBoundary means a line split was attempted inside a column.
	ErrNotAtBoundary = errors.New("not at boundary")

	// ErrNothingToDelete means there is no token after the cursor.
	ErrNothingToDelete = errors.New("nothing to delete")

	// ErrSingleLineGuard means the only remaining line cannot be deleted.
	ErrSingleLineGuard = errors.New("cannot delete the only line")

	// ErrIndexOutOfRange means a line index does not address the buffer.
	ErrIndexOutOfRange = errors.New("line index out of range")

	// ErrInvalidCursor means the cursor does not address a position in the buffer.
	ErrInvalidCursor = errors.New("cursor outside buffer")

	// ErrUnhandled means the editor did not accept the input and the host
	// may apply its own default behavior.
	ErrUnhandled = errors.New("unhandled input")

	// ErrNothingToUndo means the undo history is empty.
	ErrNothingToUndo = errors.New("nothing to undo")
)
