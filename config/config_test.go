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
package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/proofed/logic"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "plain", c.Style)
	assert.Equal(t, logic.Plain, c.GetStyle())
	assert.Equal(t, filepath.Join(home, ".proofedlog"), c.LogFile)
	assert.Empty(t, c.Operators)
}

func TestLoadFileAndEnvironment(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFile(t, "config.yaml", "style: pretty\nlog_file: /tmp/proofed.log\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logic.Pretty, c.GetStyle())
	assert.Equal(t, "/tmp/proofed.log", c.LogFile)

	t.Setenv("PROOFED_STYLE", "plain")
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, logic.Plain, c.GetStyle())
}

func TestLoadTOML(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeFile(t, "config.toml", "style = \"pretty\"\nlog_file = \"/tmp/proofed-toml.log\"\n")
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logic.Pretty, c.GetStyle())
	assert.Equal(t, "/tmp/proofed-toml.log", c.LogFile)
}

func TestLoadDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "proofed")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("style: pretty\n"), 0o644))
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, logic.Pretty, c.GetStyle())
}

func TestLoadErrors(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeFile(t, "config.yaml", "style: fancy\n")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestOperatorsRoundTrip(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, WriteOperators(&b, logic.DefaultSpec()))
	assert.Contains(t, b.String(), "implies:")
	spec, err := ParseOperators(b.Bytes())
	require.NoError(t, err)
	assert.Equal(t, logic.DefaultSpec(), spec)
}

func TestCustomOperators(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	operators := writeFile(t, "operators.yaml", `
or:
  plain: "+"
  pretty: "∨"
  spellings: ["+", "∨"]
`)
	path := writeFile(t, "config.yaml", "operators: "+operators+"\n")
	c, err := Load(path)
	require.NoError(t, err)
	table, err := c.Table()
	require.NoError(t, err)
	assert.Equal(t, "P+Q", table.RenderTokens(table.Parse("P∨Q"), logic.Plain))
	f, err := table.ParseFormula("P + Q")
	require.NoError(t, err)
	assert.Equal(t, logic.Or{L: logic.Var('P'), R: logic.Var('Q')}, f)
	assert.False(t, table.UsesRune('v'))
}

func TestInvalidOperators(t *testing.T) {
	_, err := ParseOperators([]byte("and:\n  plain: \"&\"\n  pretty: \"∧\"\n  spellings: [\"&\", \"∧\", \"v\"]\n"))
	var tableError *logic.TableError
	assert.True(t, errors.As(err, &tableError))

	_, err = ParseOperators([]byte("xor:\n  plain: x\n"))
	assert.Error(t, err)

	_, err = ParseOperators([]byte("or:\n  plain: \"|\"\n  pretty: \"∨\"\n  spellings: [\"|\", \"∨\"]\n"))
	assert.True(t, errors.As(err, &tableError))

	spec, err := ParseOperators(nil)
	require.NoError(t, err)
	assert.Equal(t, logic.DefaultSpec(), spec)
}
