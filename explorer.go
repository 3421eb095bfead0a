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
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlkit/avl"
)

const (
	focusInput = iota
	focusTree
)

// opItem is one entry of the operation log
type opItem struct {
	command string
	outcome string
	failed  bool
}

func (i opItem) FilterValue() string { return i.command }
func (i opItem) Title() string       { return i.command }
func (i opItem) Description() string {
	if i.failed {
		return "✗ " + i.outcome
	}
	return "✓ " + i.outcome
}

type clipboardMsg struct {
	count int
	err   error
}

// Model is the Bubble Tea state of the explorer.
type Model struct {
	ready bool

	textInput    textinput.Model
	opsList      list.Model
	treeViewport viewport.Model
	helpViewport viewport.Model

	tree     *avl.Tree[int]
	renderer *levelRenderer

	focusIndex int
	showHelp   bool
	status     string
	statusErr  bool

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// InitialModel creates the explorer model around an existing tree.
func InitialModel(tree *avl.Tree[int], renderer *levelRenderer, styles *Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 5 3 8 · delete 3 · find 5 · F1 for help"
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	opsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	opsList.SetShowTitle(false)
	opsList.SetShowHelp(false)
	opsList.SetFilteringEnabled(false)

	treeViewport := viewport.New(0, 0)
	helpViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return Model{
		textInput:       ti,
		opsList:         opsList,
		treeViewport:    treeViewport,
		helpViewport:    helpViewport,
		tree:            tree,
		renderer:        renderer,
		focusIndex:      focusInput,
		styles:          styles,
		glamourRenderer: glamourRenderer,
	}
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshTree()
		m.refreshHelp()
		m.ready = true

	case clipboardMsg:
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("copy failed: %v", msg.err), true)
		} else {
			m.setStatus(fmt.Sprintf("📋 copied %d key(s) to clipboard", msg.count), false)
		}
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "f1":
		m.showHelp = !m.showHelp
		return m, nil
	case "tab":
		if m.focusIndex == focusInput {
			m.focusIndex = focusTree
			m.textInput.Blur()
		} else {
			m.focusIndex = focusInput
			m.textInput.Focus()
		}
		return m, nil
	case "ctrl+y":
		keys := m.tree.Keys()
		return m, func() tea.Msg {
			return clipboardMsg{count: len(keys), err: clipboard.WriteAll(joinKeys(keys))}
		}
	}

	if m.focusIndex == focusTree {
		vp := &m.treeViewport
		if m.showHelp {
			vp = &m.helpViewport
		}
		switch msg.String() {
		case "up", "k":
			vp.LineUp(1)
		case "down", "j":
			vp.LineDown(1)
		case "pgup":
			vp.LineUp(vp.Height)
		case "pgdown":
			vp.LineDown(vp.Height)
		case "home":
			vp.GotoTop()
		case "end":
			vp.GotoBottom()
		}
		return m, nil
	}

	if msg.String() == "enter" {
		cmd = m.runInput()
		return m, cmd
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// runInput executes the command in the input box and logs the outcome.
func (m *Model) runInput() tea.Cmd {
	line := m.textInput.Value()
	m.textInput.Reset()

	outcome, err := applyCommand(m.tree, line)
	if err == nil && outcome == "" {
		return nil
	}

	item := opItem{command: line, outcome: outcome}
	if err != nil {
		item.outcome = err.Error()
		item.failed = true
		logger.WithError(err).WithField("command", line).Debug("explorer command failed")
	}
	m.setStatus(item.outcome, item.failed)
	m.refreshTree()

	return m.opsList.InsertItem(0, item)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) refreshTree() {
	m.treeViewport.SetContent(m.renderer.Render(m.tree, m.treeViewport.Width))
}

func (m *Model) refreshHelp() {
	content := explorerCommandsMarkdown
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(explorerCommandsMarkdown); err == nil {
			content = rendered
		}
	}
	m.helpViewport.SetContent(content)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.opsList.SetSize(leftWidth-2, listHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = inputHeight + listHeight
	m.helpViewport.Width = rightWidth - 2
	m.helpViewport.Height = inputHeight + listHeight
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 40 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width * 4 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputStyle, inputTitle := m.styles.BorderBlurred, " ⌨ Command "
	rightStyle := m.styles.BorderBlurred
	if m.focusIndex == focusInput {
		inputStyle, inputTitle = m.styles.BorderFocused, " ⌨ Command (Active) "
	} else {
		rightStyle = m.styles.BorderFocused
	}

	inputBox := inputStyle.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(inputTitle),
			m.textInput.View(),
		))

	opsBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 📋 Operations "),
			m.opsList.View(),
		))

	rightTitle, rightContent := " 🌳 Tree ", m.treeViewport.View()
	if m.showHelp {
		rightTitle, rightContent = " 📖 Help ", m.helpViewport.View()
	}
	rightBox := rightStyle.
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(rightTitle),
			rightContent,
		))

	leftColumn := lipgloss.JoinVertical(lipgloss.Left, inputBox, opsBox)
	main := lipgloss.JoinHorizontal(lipgloss.Top, leftColumn, rightBox)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderFooter())
}

func (m Model) renderFooter() string {
	status := ""
	if m.status != "" {
		style := m.styles.SuccessMessage
		if m.statusErr {
			style = m.styles.ErrorMessage
		}
		status = style.Render(m.status) + "  "
	}

	keys := []struct{ key, desc string }{
		{"enter", "run"},
		{"tab", "focus"},
		{"ctrl+y", "copy keys"},
		{"f1", "help"},
		{"esc", "quit"},
	}
	footer := status
	for i, k := range keys {
		if i > 0 {
			footer += m.styles.HelpDesc.Render(" • ")
		}
		footer += m.styles.HelpKey.Render(k.key) + " " + m.styles.HelpDesc.Render(k.desc)
	}
	return footer
}

// runExplorer starts the Bubble Tea application
func runExplorer(tree *avl.Tree[int], renderer *levelRenderer, styles *Styles) error {
	model := InitialModel(tree, renderer, styles)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
