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
	"os"
	"path/filepath"
	"testing"

	"github.com/cybrota/avlkit/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSplitCommand verifies that splitCommand correctly tokenizes a command string.
func TestSplitCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"insert 1 2 3", []string{"insert", "1", "2", "3"}},
		{"  find   7 ", []string{"find", "7"}},
		{`load "my keys.txt"`, []string{"load", "my keys.txt"}},
		{"", []string{}},
	}

	for _, tc := range tests {
		parts, err := splitCommand(tc.input)
		require.NoError(t, err, tc.input)
		assert.Equal(t, len(tc.expected), len(parts), tc.input)
		for i := range tc.expected {
			assert.Equal(t, tc.expected[i], parts[i])
		}
	}

	_, err := splitCommand(`load "unterminated`)
	assert.Error(t, err)
}

func TestApplyCommand(t *testing.T) {
	tree := avl.NewOrdered[int]()

	steps := []struct {
		line string
		want string
	}{
		{"insert 5 3 8 1 4 7 9", "inserted 7, ignored 0 duplicate(s)"},
		{"add 5 10", "inserted 1, ignored 1 duplicate(s)"},
		{"min", "min: 1"},
		{"max", "max: 10"},
		{"find 3", "3: parent=5 left=1 right=4 height=2 balance=+0"},
		{"find 42", "42: not found"},
		{"range 3 8", "range [3, 8): 3 4 5 7"},
		{"traverse in", "in-order: 1 3 4 5 7 8 9 10"},
		{"delete 3 42", "deleted 1, 1 not found"},
		{"order pre", "pre-order: 5 1 4 8 7 9 10"},
		{"check", "tree is a valid AVL tree"},
		{"", ""},
		{"clear", "cleared 7 key(s)"},
		{"max", "max: empty tree"},
	}

	for _, step := range steps {
		got, err := applyCommand(tree, step.line)
		require.NoError(t, err, step.line)
		assert.Equal(t, step.want, got, step.line)
		require.NoError(t, tree.Check(), step.line)
	}
}

func TestApplyCommandErrors(t *testing.T) {
	tree := avl.NewOrdered[int]()

	for _, line := range []string{
		"insert",
		"insert one",
		"range 1",
		"traverse sideways",
		"traverse",
		"load",
		"load /definitely/not/here",
		"rotate 3",
	} {
		_, err := applyCommand(tree, line)
		assert.Error(t, err, line)
	}
	assert.Zero(t, tree.Len())
}

func TestApplyCommandLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 2\n6 2\n"), 0644))

	tree := avl.NewOrdered[int]()
	got, err := applyCommand(tree, "load "+path)
	require.NoError(t, err)
	assert.Equal(t, "loaded 3 key(s) from "+path, got)
	assert.Equal(t, []int{2, 4, 6}, tree.Keys())
}
