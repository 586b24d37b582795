package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RenderCmd renders one submitted line off the update loop and reports
// the result. line is the 1-based submission counter.
func RenderCmd(r LineRenderer, raw, profile string, line int) tea.Cmd {
	return func() tea.Msg {
		return RenderedMsg{Raw: raw, Profile: profile, Result: r.Line(raw, line)}
	}
}

// PreviewCmd renders the in-progress input for the live preview. Line
// number zero marks the result as a preview, not a submission.
func PreviewCmd(r LineRenderer, raw, profile string) tea.Cmd {
	return func() tea.Msg {
		return PreviewedMsg{Raw: raw, Profile: profile, Result: r.Line(raw, 0)}
	}
}
