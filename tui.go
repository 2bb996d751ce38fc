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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/avl"
)

const helpViewKey = "help"

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput    textinput.Model
	treeViewport viewport.Model
	sideViewport viewport.Model

	// Data
	tree      *avl.Tree
	session   *Session
	output    *bytes.Buffer
	viewCache *cache.Cache
	config    *Config

	// State
	showHelp   bool
	status     string
	statusErr  bool
	lastOutput string
	history    []string
	historyIdx int

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// InitialModel creates the initial model around tree.
func InitialModel(tree *avl.Tree, vc *cache.Cache, config *Config) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 5 3 8 · delete 3 · check ..."
	ti.Prompt = "avl> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	treeViewport := viewport.New(0, 0)
	sideViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	output := &bytes.Buffer{}
	m := Model{
		textInput:       ti,
		treeViewport:    treeViewport,
		sideViewport:    sideViewport,
		tree:            tree,
		session:         NewSession(tree, output, config.Render.Style),
		output:          output,
		viewCache:       vc,
		config:          config,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		status:          "Type a command and press enter. f1 shows help.",
	}
	m.refreshTree()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshSide()
			return m, nil
		case "ctrl+y":
			preOrder := joinKeys(m.tree.PreOrder())
			if err := copyToClipboard(preOrder); err != nil {
				m.setStatus(fmt.Sprintf("clipboard: %v", err), true)
			} else {
				m.setStatus("📋 Copied pre-order to clipboard", false)
			}
			return m, nil
		case "enter":
			m.execute(m.textInput.Value())
			m.textInput.SetValue("")
			return m, nil
		case "up":
			m.recall(-1)
			return m, nil
		case "down":
			m.recall(1)
			return m, nil
		case "pgup", "pgdown":
			m.treeViewport, cmd = m.treeViewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
		return m, nil

	case tea.MouseMsg:
		m.treeViewport, cmd = m.treeViewport.Update(msg)
		return m, cmd
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// execute runs one command line against the session and refreshes the panes.
func (m *Model) execute(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	m.history = append(m.history, line)
	m.historyIdx = len(m.history)

	m.output.Reset()
	if err := m.session.Exec(line); err != nil {
		logger.WithError(err).Debug("command failed")
		m.setStatus(err.Error(), true)
	} else {
		m.setStatus(fmt.Sprintf("✔ %s  (%d keys, height %d)", line, m.tree.Len(), m.tree.Height()), false)
	}

	// Output from an earlier command describes a tree that may have changed.
	m.lastOutput = m.output.String()
	m.refreshTree()
	m.refreshSide()
}

// recall walks the command history, delta is -1 for older and 1 for newer.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.historyIdx = min(max(m.historyIdx+delta, 0), len(m.history))
	if m.historyIdx == len(m.history) {
		m.textInput.SetValue("")
		return
	}
	m.textInput.SetValue(m.history[m.historyIdx])
	m.textInput.CursorEnd()
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *Model) refreshTree() {
	view := GetOrRenderTree(m.viewCache, m.tree, m.config.Render.Style)
	if view == "" {
		view = "(empty tree)"
	}
	m.treeViewport.SetContent(view)
}

func (m *Model) refreshSide() {
	if !m.showHelp {
		content := m.lastOutput
		if content == "" {
			content = "Pre-order: " + joinKeys(m.tree.PreOrder())
		}
		m.sideViewport.SetContent(content)
		return
	}

	helpTxt := GetView(m.viewCache, helpViewKey)
	if helpTxt == "" {
		helpTxt = getUsageMarkdown()
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(helpTxt); err == nil {
				helpTxt = rendered
			}
		}
		CacheView(m.viewCache, helpViewKey, helpTxt)
	}
	m.sideViewport.SetContent(helpTxt)
}

// View renders the whole screen
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	treeHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.styles.BorderFocused.
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(" 🌳 Command "),
			m.textInput.View(),
		))

	treeBox := m.styles.BorderBlurred.
		Width(leftWidth).
		Height(treeHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(fmt.Sprintf(" Tree · %d keys · height %d ", m.tree.Len(), m.tree.Height())),
			m.treeViewport.View(),
		))

	sideTitle := " Output "
	if m.showHelp {
		sideTitle = " Help "
	}
	sideBox := m.styles.BorderBlurred.
		Width(rightWidth).
		Height(inputHeight + treeHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(sideTitle),
			m.sideViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, treeBox),
		sideBox,
	)

	statusStyle := m.styles.SuccessMessage
	if m.statusErr {
		statusStyle = m.styles.ErrorMessage
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		lipgloss.NewStyle().Padding(0, 0, 0, 2).Render(statusStyle.Render(m.status)),
		m.renderKeyHelp(),
	)
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	inputHeight := 3
	treeHeight := m.height - inputHeight - 7
	leftWidth := (m.width * 6 / 10) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 10
	m.treeViewport.Width = leftWidth - 2
	m.treeViewport.Height = max(treeHeight-1, 1)
	m.sideViewport.Width = rightWidth - 2
	m.sideViewport.Height = max(inputHeight+treeHeight, 1)
}

// renderKeyHelp renders the key binding footer
func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "↑/↓", "pgup/pgdown", "ctrl+y", "f1", "esc"}
	descs := []string{"run command", "history", "scroll tree", "copy pre-order", "toggle help", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(tree *avl.Tree, vc *cache.Cache, config *Config) error {
	InitializeColors()

	// The alt screen owns the terminal until the program exits.
	restore := muteLogger(logger)
	defer restore()

	model := InitialModel(tree, vc, config)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
