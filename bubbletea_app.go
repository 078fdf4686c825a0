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
	"math"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	input    textinput.Model
	treeView viewport.Model

	// Data
	session  *Session
	renderer *Renderer

	// State
	showStats bool
	status    string
	statusErr bool

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused  lipgloss.Style
	BorderBlurred  lipgloss.Style
	Title          lipgloss.Style
	InputPrompt    lipgloss.Style
	HelpKey        lipgloss.Style
	HelpDesc       lipgloss.Style
	SuccessMessage lipgloss.Style
	ErrorMessage   lipgloss.Style
}

func NewStyles() *Styles {
	scheme := GetColorScheme()
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.BorderFocus).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(scheme.Border).
			Foreground(scheme.Text),
		Title: lipgloss.NewStyle().
			Foreground(scheme.Primary).
			Bold(true),
		InputPrompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(scheme.TextMuted).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(scheme.TextMuted),
		SuccessMessage: lipgloss.NewStyle().
			Foreground(scheme.Balanced).
			Bold(true),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(scheme.Error).
			Bold(true),
	}
}

func InitialModel(session *Session, renderer *Renderer) Model {
	styles := NewStyles()

	ti := textinput.New()
	ti.Placeholder = "Type keys, e.g. 10 20 30, then press enter..."
	ti.CharLimit = 256
	ti.Width = 50
	ti.Prompt = "> "
	ti.PromptStyle = styles.InputPrompt
	ti.Focus()

	treeView := viewport.New(0, 0)
	treeView.SetContent("The tree is empty.")

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return Model{
		input:           ti,
		treeView:        treeView,
		session:         session,
		renderer:        renderer,
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
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.submit()
			return m, nil
		case "?":
			m.showStats = !m.showStats
			m.updateLayout()
			return m, nil
		case "ctrl+y":
			m.copyLayout()
			return m, nil
		case "up", "down", "pgup", "pgdown":
			var cmd tea.Cmd
			m.treeView, cmd = m.treeView.Update(msg)
			return m, cmd
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

// submit inserts every key typed in the input box.
func (m *Model) submit() {
	keys, err := parseKeys(m.input.Value())
	m.input.SetValue("")

	added, ignored := 0, 0
	for _, key := range keys {
		if m.session.Insert(key) {
			added++
		} else {
			ignored++
		}
	}

	switch {
	case err != nil:
		m.setStatus(fmt.Sprintf("Stopped: %v", err), true)
	case len(keys) == 0:
		m.setStatus("Nothing to insert", false)
	default:
		m.setStatus(fmt.Sprintf("Inserted %d, ignored %d duplicate(s)", added, ignored), false)
	}

	m.refreshTree()
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *Model) refreshTree() {
	out := m.renderer.Render(m.session.Root())
	if out == "" {
		out = "The tree is empty."
	}
	m.treeView.SetContent(out)
}

// copyLayout puts the uncoloured layout on the clipboard
func (m *Model) copyLayout() {
	layout := strings.Join(Layout(m.session.Root(), m.renderer.cellWidth), "\n")
	if layout == "" {
		m.setStatus("Nothing to copy", false)
		return
	}
	if err := clipboard.WriteAll(layout); err != nil {
		m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.setStatus("📋 Tree copied to clipboard", false)
}

// updateLayout sizes the tree viewport to whatever the other panels leave.
func (m *Model) updateLayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	treeWidth := m.width - 4
	if m.showStats {
		treeWidth = m.width*2/3 - 4
	}
	m.input.Width = max(m.width-10, 10)

	// title, input box, status, help
	reserved := 1 + 3 + 1 + 1 + 2
	m.treeView.Width = max(treeWidth, 10)
	m.treeView.Height = max(m.height-reserved, 3)
	m.refreshTree()
}

func (m Model) statsMarkdown() string {
	n := m.session.Len()
	bound := 1.45 * math.Log2(float64(n+2))

	var content strings.Builder
	content.WriteString("## Tree\n\n")
	content.WriteString(fmt.Sprintf("**Keys:** %d\n\n", n))
	content.WriteString(fmt.Sprintf("**Height:** %d (bound %.2f)\n\n", m.session.Height(), bound))
	content.WriteString(fmt.Sprintf("**Duplicates ignored:** %d\n\n", m.session.Duplicates()))
	if root := m.session.Root(); root != nil {
		content.WriteString(fmt.Sprintf("**Root:** %d (balance %+d)\n\n", root.Key, root.Balance))
	}
	return content.String()
}

func (m Model) renderStats(width int) string {
	content := m.statsMarkdown()
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			content = rendered
		}
	}
	return m.styles.BorderBlurred.Width(width).Render(content)
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	title := m.styles.Title.Render(fmt.Sprintf("🌳 avlkeys %s", version))

	inputBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Render(m.input.View())

	tree := m.styles.BorderBlurred.
		Width(m.treeView.Width).
		Render(m.treeView.View())

	body := tree
	if m.showStats {
		statsWidth := max(m.width-lipgloss.Width(tree)-4, 10)
		body = lipgloss.JoinHorizontal(lipgloss.Top, tree, m.renderStats(statsWidth))
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = m.styles.ErrorMessage.Render(m.status)
		} else {
			status = m.styles.SuccessMessage.Render(m.status)
		}
	}

	help := strings.Join([]string{
		m.styles.HelpKey.Render("enter") + " " + m.styles.HelpDesc.Render("insert"),
		m.styles.HelpKey.Render("↑/↓") + " " + m.styles.HelpDesc.Render("scroll"),
		m.styles.HelpKey.Render("?") + " " + m.styles.HelpDesc.Render("stats"),
		m.styles.HelpKey.Render("ctrl+y") + " " + m.styles.HelpDesc.Render("copy tree"),
		m.styles.HelpKey.Render("esc") + " " + m.styles.HelpDesc.Render("quit"),
	}, "  ")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		inputBox,
		body,
		ansi.Truncate(status, m.width, "…"),
		help,
	)
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(session *Session, renderer *Renderer) error {
	InitializeColors()

	program := tea.NewProgram(
		InitialModel(session, renderer),
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
