package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mdlink/mdlink/internal/render"
)

// Color palette.
var (
	PrimaryColor   = lipgloss.Color("205") // Pink
	SecondaryColor = lipgloss.Color("241") // Gray
	SuccessColor   = lipgloss.Color("82")  // Green
	ErrorColor     = lipgloss.Color("196") // Red
	WarningColor   = lipgloss.Color("214") // Orange (for unrecognized URLs)
	MutedColor     = lipgloss.Color("245") // Dimmed text
)

// Text styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	HelpStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			MarginTop(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)
)

// Detail panel styles.
var (
	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	DetailNoteStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
)

// Badge styles for rendering outcomes.
var (
	BadgeMatched = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(SuccessColor).
			Padding(0, 1)

	BadgeScripted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(PrimaryColor).
			Padding(0, 1)

	BadgeFallback = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(WarningColor).
			Padding(0, 1)

	BadgeVerbatim = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(MutedColor).
			Padding(0, 1)

	BadgeSkipped = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(SecondaryColor).
			Padding(0, 1)

	BadgeDropped = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(ErrorColor).
			Padding(0, 1)
)

// OutcomeBadge returns a styled badge for the given rendering outcome.
func OutcomeBadge(o render.Outcome) string {
	switch o {
	case render.OutcomeMatched:
		return BadgeMatched.Render("MATCHED")
	case render.OutcomeScripted:
		return BadgeScripted.Render("SCRIPTED")
	case render.OutcomeFallback:
		return BadgeFallback.Render("FALLBACK")
	case render.OutcomeVerbatim:
		return BadgeVerbatim.Render("VERBATIM")
	case render.OutcomeSkipped:
		return BadgeSkipped.Render("SKIPPED")
	case render.OutcomeDropped:
		return BadgeDropped.Render("DROPPED")
	default:
		return BadgeDropped.Render("???")
	}
}
