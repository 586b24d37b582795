package output

import (
	"fmt"
	"strings"

	"github.com/mdlink/mdlink/internal/render"
)

// MarkdownFormatter formats reports as Markdown.
type MarkdownFormatter struct{}

// Format implements Formatter.
func (*MarkdownFormatter) Format(report *Report) ([]byte, error) {
	// Pre-grow builder: estimate ~120 bytes per result + ~400 bytes header
	var b strings.Builder
	b.Grow(len(report.Results)*120 + 400)

	// Header
	b.WriteString("# mdlink Report\n\n")
	b.WriteString(fmt.Sprintf("**Generated:** %s  \n", report.GeneratedAt.Format("2006-01-02 15:04:05")))
	if report.Profile != "" {
		b.WriteString(fmt.Sprintf("**Profile:** `%s`  \n", report.Profile))
	}
	b.WriteString(fmt.Sprintf("**Input Lines:** %d\n\n", report.Summary.Total))

	// Summary table
	b.WriteString("## Summary\n\n")
	b.WriteString("| Outcome | Count |\n")
	b.WriteString("|---------|-------|\n")
	b.WriteString(fmt.Sprintf("| Matched | %d |\n", report.Summary.Matched))
	if report.Summary.Scripted > 0 {
		b.WriteString(fmt.Sprintf("| Scripted | %d |\n", report.Summary.Scripted))
	}
	b.WriteString(fmt.Sprintf("| Fallback | %d |\n", report.Summary.Fallback))
	if report.Summary.Verbatim > 0 {
		b.WriteString(fmt.Sprintf("| Verbatim | %d |\n", report.Summary.Verbatim))
	}
	if report.Summary.Skipped > 0 {
		b.WriteString(fmt.Sprintf("| Skipped | %d |\n", report.Summary.Skipped))
	}
	if report.Summary.Dropped > 0 {
		b.WriteString(fmt.Sprintf("| Dropped | %d |\n", report.Summary.Dropped))
	}
	b.WriteString("\n")

	// Labeled links section
	labeled := filterByOutcome(report.Results, render.OutcomeMatched, render.OutcomeScripted)
	if len(labeled) > 0 {
		b.WriteString(fmt.Sprintf("## Labeled Links (%d)\n\n", len(labeled)))
		b.WriteString("| Line | Label | URL |\n")
		b.WriteString("|------|-------|-----|\n")
		for _, r := range labeled {
			label := escapeMarkdown(truncateText(r.Label, 50))
			url := escapeMarkdown(truncateText(r.Input, 70))
			b.WriteString(fmt.Sprintf("| %d | %s | %s |\n", r.Line, label, url))
		}
		b.WriteString("\n")
	}

	// Fallback section
	fallbacks := filterByOutcome(report.Results, render.OutcomeFallback)
	if len(fallbacks) > 0 {
		b.WriteString(fmt.Sprintf("## Unrecognized Links (%d)\n\n", len(fallbacks)))
		b.WriteString("These were rendered as plain autolinks.\n\n")
		for _, r := range fallbacks {
			b.WriteString(fmt.Sprintf("- Line %d: %s\n", r.Line, escapeMarkdown(r.Input)))
		}
		b.WriteString("\n")
	}

	// Passed-through section
	passed := filterByOutcome(report.Results, render.OutcomeVerbatim, render.OutcomeSkipped)
	if len(passed) > 0 {
		b.WriteString(fmt.Sprintf("## Passed Through (%d)\n\n", len(passed)))
		b.WriteString("| Line | Reason | Text |\n")
		b.WriteString("|------|--------|------|\n")
		for _, r := range passed {
			text := escapeMarkdown(truncateText(r.Input, 70))
			b.WriteString(fmt.Sprintf("| %d | %s | %s |\n", r.Line, r.Outcome, text))
		}
		b.WriteString("\n")
	}

	// Dropped section
	dropped := filterByOutcome(report.Results, render.OutcomeDropped)
	if len(dropped) > 0 {
		b.WriteString(fmt.Sprintf("## Dropped Lines (%d)\n\n", len(dropped)))
		b.WriteString("These could not be parsed as URLs and were omitted from the output.\n\n")
		for _, r := range dropped {
			b.WriteString(fmt.Sprintf("- Line %d: `%s`\n", r.Line, truncateText(r.Input, 70)))
		}
		b.WriteString("\n")
	}

	// Skip rule details
	if len(report.Skipped) > 0 {
		b.WriteString(fmt.Sprintf("## Skip Rules Applied (%d)\n\n", len(report.Skipped)))
		b.WriteString("| URL | Line | Kind | Rule |\n")
		b.WriteString("|-----|------|------|------|\n")
		for _, s := range report.Skipped {
			url := escapeMarkdown(truncateText(s.URL, 60))
			b.WriteString(fmt.Sprintf("| %s | %d | %s | `%s` |\n", url, s.Line, s.Kind, s.Rule))
		}
		b.WriteString("\n")
	}

	return []byte(b.String()), nil
}

// escapeMarkdown escapes special markdown characters in a string.
func escapeMarkdown(s string) string {
	// Escape pipe characters which break tables
	s = strings.ReplaceAll(s, "|", "\\|")
	// Escape backticks
	s = strings.ReplaceAll(s, "`", "\\`")
	return s
}

// truncateText shortens text to maxLen characters, adding "..." if truncated.
func truncateText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if len(text) <= maxLen {
		return text
	}
	return text[:maxLen-3] + "..."
}
