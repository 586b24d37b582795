// Package ui implements the interactive terminal mode: a single URL
// input with a live rendering preview, profile cycling, and a history
// of previous renderings.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mdlink/mdlink/internal/render"
)

// historyShown is how many history entries the view lists at once.
const historyShown = 8

// =============================================================================
// RENDERERS
// =============================================================================

// LineRenderer renders one raw input line. *render.Renderer satisfies it.
type LineRenderer interface {
	Line(raw string, line int) render.Result
}

// Profile pairs a profile name with the renderer built for it. The
// command layer builds one renderer per configured profile so cycling
// needs no config reload.
type Profile struct {
	Name     string
	Renderer LineRenderer
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the main application model.
type Model struct {
	// Components
	input textinput.Model
	help  help.Model
	keys  KeyMap

	// Profiles
	profiles   []Profile
	profileIdx int

	// Data
	history []Entry        // oldest first
	current *Entry         // latest submission, shown in the detail panel
	preview *render.Result // live rendering of the in-progress input
	histPos int            // recall position; len(history) means live input
	draft   string         // live input stashed while browsing history
	seq     int            // 1-based submission counter, used as the line number

	// UI state
	width    int
	quitting bool
}

// New creates the model. The first profile is selected at start;
// profiles must contain at least the general entry.
func New(profiles []Profile) Model {
	ti := textinput.New()
	ti.Placeholder = "https://github.com/rust-lang/rust/issues/120486"
	ti.Prompt = "> "
	ti.PromptStyle = SelectedStyle
	ti.Width = 72
	ti.Focus()

	return Model{
		input:    ti,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		profiles: profiles,
	}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// profile returns the selected profile.
func (m Model) profile() Profile {
	if len(m.profiles) == 0 {
		return Profile{Name: "general"}
	}
	return m.profiles[m.profileIdx]
}

func (m Model) renderer() LineRenderer {
	return m.profile().Renderer
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.input.Width = min(max(msg.Width-4, 20), 96)
		return m, nil

	case RenderedMsg:
		return m.handleRendered(msg)

	case PreviewedMsg:
		return m.handlePreviewed(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Profile):
		if len(m.profiles) < 2 {
			return m, nil
		}
		m.profileIdx = (m.profileIdx + 1) % len(m.profiles)
		return m, m.refreshPreview()

	case key.Matches(msg, m.keys.HistoryPrev):
		m.recallPrev()
		return m, m.refreshPreview()

	case key.Matches(msg, m.keys.HistoryNext):
		m.recallNext()
		return m, m.refreshPreview()

	case key.Matches(msg, m.keys.Clear):
		m.input.SetValue("")
		m.histPos = len(m.history)
		m.preview = nil
		return m, nil
	}

	// Everything else is typing.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.refreshPreview())
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" || m.renderer() == nil {
		return m, nil
	}
	m.seq++
	return m, RenderCmd(m.renderer(), raw, m.profile().Name, m.seq)
}

func (m Model) handleRendered(msg RenderedMsg) (tea.Model, tea.Cmd) {
	e := Entry{Raw: msg.Raw, Profile: msg.Profile, Result: msg.Result}
	m.current = &e
	m.history = append(m.history, e)
	m.histPos = len(m.history)
	m.draft = ""
	m.preview = nil
	m.input.SetValue("")
	return m, nil
}

func (m Model) handlePreviewed(msg PreviewedMsg) (tea.Model, tea.Cmd) {
	// A preview for text that is no longer in the input is stale; a
	// fresher one is already on its way.
	if msg.Raw != strings.TrimSpace(m.input.Value()) || msg.Profile != m.profile().Name {
		return m, nil
	}
	m.preview = &msg.Result
	return m, nil
}

// refreshPreview clears the preview when the input is empty and
// re-renders it otherwise.
func (m *Model) refreshPreview() tea.Cmd {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" || m.renderer() == nil {
		m.preview = nil
		return nil
	}
	return PreviewCmd(m.renderer(), raw, m.profile().Name)
}

// recallPrev moves one entry back in history, stashing the live input
// on first recall.
func (m *Model) recallPrev() {
	if len(m.history) == 0 || m.histPos == 0 {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input.Value()
	}
	m.histPos--
	m.input.SetValue(m.history[m.histPos].Raw)
	m.input.CursorEnd()
}

// recallNext moves one entry forward, restoring the stashed input past
// the newest entry.
func (m *Model) recallNext() {
	if m.histPos >= len(m.history) {
		return
	}
	m.histPos++
	if m.histPos == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.histPos].Raw)
	}
	m.input.CursorEnd()
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var s string

	// Header
	s += TitleStyle.Render("mdlink - URL to Markdown Link")
	s += "\n\n"

	// Profile indicator
	s += fmt.Sprintf("%s %s", StatusStyle.Render("Profile:"), SelectedStyle.Render(m.profile().Name))
	if len(m.profiles) > 1 {
		s += MutedStyle.Render(fmt.Sprintf("  (%d/%d, tab to cycle)", m.profileIdx+1, len(m.profiles)))
	}
	s += "\n\n"

	// Input with live preview
	s += m.input.View()
	s += "\n"
	if m.preview != nil && strings.TrimSpace(m.input.Value()) != "" {
		s += m.renderPreview()
		s += "\n"
	}

	// Detail panel for the latest submission
	if m.current != nil {
		s += "\n" + m.current.DetailView()
	}

	// History
	if h := m.renderHistory(); h != "" {
		s += "\n" + h
	}

	// Help
	s += "\n" + m.help.View(m.keys)

	return s
}

func (m Model) renderPreview() string {
	s := "  " + OutcomeBadge(m.preview.Outcome)
	if m.preview.Output != "" {
		s += " " + m.preview.Output
	}
	return s
}

func (m Model) renderHistory() string {
	if len(m.history) == 0 {
		return ""
	}

	var s string
	s += StatusStyle.Render(fmt.Sprintf("History (%d)", len(m.history)))
	s += "\n"

	// Newest first, the recalled entry highlighted.
	start := max(len(m.history)-historyShown, 0)
	for i := len(m.history) - 1; i >= start; i-- {
		cursor := "  "
		style := NormalStyle
		if i == m.histPos {
			cursor = "> "
			style = SelectedStyle
		}
		s += style.Render(cursor+m.history[i].Line()) + "\n"
	}

	return s
}
