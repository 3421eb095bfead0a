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
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/avlkit/avl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	styles := NewStyles()
	m := InitialModel(avl.NewOrdered[int](), newLevelRenderer(styles, NewRenderCache()), styles)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func typeLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestExplorerRunsCommands(t *testing.T) {
	m := newTestModel(t)
	require.True(t, m.ready)

	m = typeLine(t, m, "insert 1 2 3 4 5 6 7")
	assert.Equal(t, 7, m.tree.Len())
	assert.Equal(t, "inserted 7, ignored 0 duplicate(s)", m.status)
	assert.False(t, m.statusErr)
	assert.Empty(t, m.textInput.Value())
	require.Len(t, m.opsList.Items(), 1)

	m = typeLine(t, m, "delete 4")
	assert.Equal(t, 6, m.tree.Len())
	assert.NoError(t, m.tree.Check())
	require.Len(t, m.opsList.Items(), 2)
	assert.Equal(t, "delete 4", m.opsList.Items()[0].(opItem).command)

	m = typeLine(t, m, "bogus")
	assert.True(t, m.statusErr)
	assert.True(t, m.opsList.Items()[0].(opItem).failed)

	// blank input is not logged
	m = typeLine(t, m, "")
	assert.Len(t, m.opsList.Items(), 3)
}

func TestExplorerFocusAndHelp(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, focusTree, m.focusIndex)

	// keys go to the viewport, not the input, while the tree has focus
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = updated.(Model)
	assert.Empty(t, m.textInput.Value())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Help")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(Model)
	assert.Equal(t, focusInput, m.focusIndex)
}

func TestExplorerView(t *testing.T) {
	m := InitialModel(avl.NewOrdered[int](), newLevelRenderer(NewStyles(), NewRenderCache()), NewStyles())
	assert.Equal(t, "Initializing...", m.View())

	m = newTestModel(t)
	m = typeLine(t, m, "insert 10 20 30")
	view := m.View()
	assert.Contains(t, view, "Tree")
	assert.Contains(t, view, "20")

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.Contains(t, updated.View(), "Terminal too small")
}

func TestExplorerClipboardMessage(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(clipboardMsg{count: 3})
	m = updated.(Model)
	assert.Contains(t, m.status, "copied 3 key(s)")
	assert.False(t, m.statusErr)

	updated, _ = m.Update(clipboardMsg{err: assert.AnError})
	m = updated.(Model)
	assert.True(t, m.statusErr)
}

func TestExplorerQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
