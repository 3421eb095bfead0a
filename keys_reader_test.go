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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys("  5 -3\t8  ")
	require.NoError(t, err)
	assert.Equal(t, []int{5, -3, 8}, keys)

	keys, err = ParseKeys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = ParseKeys("1 2 x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `token 3 "x"`)
}

func TestReadLines(t *testing.T) {
	lines, err := readLines(strings.NewReader("1 2\n\n3\n4\n"), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 2", "", "3"}, lines)

	lines, err = readLines(strings.NewReader("only"), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"only", "", ""}, lines)
}

func TestReadAllKeys(t *testing.T) {
	keys, err := readAllKeys(strings.NewReader("1 2\n3\n\n  4"))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, keys)

	_, err = readAllKeys(strings.NewReader("1 2.5"))
	assert.Error(t, err)
}

func TestJoinKeys(t *testing.T) {
	assert.Equal(t, "1 -2 3", joinKeys([]int{1, -2, 3}))
	assert.Equal(t, "", joinKeys(nil))
}
