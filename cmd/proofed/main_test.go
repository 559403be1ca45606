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
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", "~(P ^ Q) -> R")
	require.NoError(t, err)
	assert.Equal(t, "(!(P^Q))->R\n", out)

	out, err = execute(t, "render", "--pretty", "P<->~~Q")
	require.NoError(t, err)
	assert.Equal(t, "P↔(¬¬Q)\n", out)

	_, err = execute(t, "render", "P ->")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "proofed version dev\n", out)
}

func TestOperators(t *testing.T) {
	out, err := execute(t, "operators")
	require.NoError(t, err)
	for _, family := range []string{"not:", "and:", "or:", "implies:", "iff:"} {
		assert.Contains(t, out, family)
	}
}

func TestEvalScript(t *testing.T) {
	script := filepath.Join(t.TempDir(), "proof.lisp")
	require.NoError(t, os.WriteFile(script, []byte(`
(goto 2)
(right) (right) (right) (right) (right) (right) (right) (right)
(newline)
(insert "P")
(cite 2)
`), 0o644))
	out, err := execute(t, "--pretty", "--eval", script)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "  2. ¬¬P "))
	assert.True(t, strings.HasPrefix(lines[2], "  3. P "))
	assert.True(t, strings.HasSuffix(lines[2], "{2}"))
	assert.NotContains(t, out, "|")
}
