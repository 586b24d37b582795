package ui

import (
	"fmt"
	"strings"

	"github.com/mdlink/mdlink/internal/helpers"
	"github.com/mdlink/mdlink/internal/render"
)

// Entry is one rendered line in the session history.
type Entry struct {
	Raw     string
	Profile string
	Result  render.Result
}

// Line returns the one-line history representation: outcome badge plus
// the rendered output, truncated for display.
func (e Entry) Line() string {
	out := e.Result.Output
	if out == "" {
		out = e.Raw
	}
	return fmt.Sprintf("%s %s", OutcomeBadge(e.Result.Outcome), helpers.TruncateText(out, 64))
}

// DetailView returns an expanded detail view for the latest rendering.
func (e Entry) DetailView() string {
	r := e.Result
	var b strings.Builder

	b.WriteString("┌─ Result ──────────────────────────────────────────────────────────────\n")

	b.WriteString(fmt.Sprintf("│ %s  %s\n", DetailLabelStyle.Render("Outcome:"), OutcomeBadge(r.Outcome)))

	if r.Label != "" {
		b.WriteString(fmt.Sprintf("│ %s    %s\n", DetailLabelStyle.Render("Label:"), r.Label))
	}
	if r.Output != "" {
		b.WriteString(fmt.Sprintf("│ %s   %s\n", DetailLabelStyle.Render("Output:"), r.Output))
	}

	b.WriteString(fmt.Sprintf("│ %s    %s\n", DetailLabelStyle.Render("Input:"), helpers.TruncateURL(e.Raw, 64)))
	b.WriteString(fmt.Sprintf("│ %s  %s\n", DetailLabelStyle.Render("Profile:"), e.Profile))

	b.WriteString("│\n")
	b.WriteString(fmt.Sprintf("│ %s\n", DetailNoteStyle.Render("Note: "+outcomeNote(r.Outcome))))
	b.WriteString("└────────────────────────────────────────────────────────────────────────\n")

	return b.String()
}

// outcomeNote describes an outcome in one user-facing line.
func outcomeNote(o render.Outcome) string {
	switch o {
	case render.OutcomeMatched:
		return "recognized by a built-in service recognizer"
	case render.OutcomeScripted:
		return "labeled by the user script"
	case render.OutcomeFallback:
		return "no recognizer matched, kept as an autolink"
	case render.OutcomeVerbatim:
		return "not an http(s) URL, passed through unchanged"
	case render.OutcomeSkipped:
		return "matched an ignore rule, left unlabeled"
	case render.OutcomeDropped:
		return "does not parse as an absolute URL"
	default:
		return "unknown outcome"
	}
}
