// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logger.SetOutput(io.Discard)
	t.Cleanup(func() { logger.SetOutput(os.Stderr) })

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "avl.in")
	out := filepath.Join(dir, "avl.out")
	require.NoError(t, os.WriteFile(in, []byte("5 3 8 1 4 7 9\n3\n5 1 3\n"), 0644))

	_, err := execute(t, "query", "--in", in, "--out", out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "8 4 null", string(got))
}

func TestQueryCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "query", "--in", filepath.Join(dir, "nope.in"), "--out", filepath.Join(dir, "x.out"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestPointsCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "data.in")
	out := filepath.Join(dir, "data.out")
	require.NoError(t, os.WriteFile(in, []byte("3 4 6 8 0 1 1 1\n"), 0644))

	_, err := execute(t, "points", "--in", in, "--out", out, "--every", "2")
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "5 10 1 10 5", string(got))
}

func TestLevelsCommand(t *testing.T) {
	out, err := execute(t, "levels", "--plain", "3", "1", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "in:   1 2 3")
	assert.Contains(t, out, "L1    1 3")
}

func TestLevelsCommandRejectsBadKey(t *testing.T) {
	_, err := execute(t, "levels", "--plain", "3", "x")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version+"\n", out)
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "--log-level", "chatty", "version")
	assert.Error(t, err)
}
