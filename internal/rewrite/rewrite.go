// Package rewrite labels bare links in Markdown documents in place.
package rewrite

import (
	"fmt"
	"os"
	"strings"

	"github.com/mdlink/mdlink/internal/render"
)

// Renderer is the part of the line pipeline doc mode needs.
type Renderer interface {
	Line(raw string, line int) render.Result
}

// Change is a single bare link getting a label.
type Change struct {
	URL   string // the URL as written in the document
	Label string
	Old   string // source text the span covers, <url> included when bracketed
	New   string // replacement text, [label](url)
	Start int
	End   int
	Line  int
}

// FileChanges groups the planned changes for a single file.
type FileChanges struct {
	FilePath string
	Changes  []Change
	Scanned  int // bare links inspected, labeled or not
}

// ApplyResult is the outcome of applying changes to a file.
type ApplyResult struct {
	Error    error
	FilePath string
	Applied  int
}

// Rewriter plans and applies label rewrites across Markdown files.
type Rewriter struct {
	renderer Renderer
}

// New creates a Rewriter that labels links through the given renderer.
func New(renderer Renderer) *Rewriter {
	return &Rewriter{renderer: renderer}
}

// PlanFile reads one file and returns the changes labeling would make.
// Only matched and scripted outcomes produce a change; everything else is
// left exactly as written.
func (rw *Rewriter) PlanFile(path string) (FileChanges, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileChanges{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return rw.plan(path, content), nil
}

// Plan runs PlanFile over a set of files.
func (rw *Rewriter) Plan(paths []string) ([]FileChanges, error) {
	changes := make([]FileChanges, 0, len(paths))
	for _, p := range paths {
		fc, err := rw.PlanFile(p)
		if err != nil {
			return nil, err
		}
		changes = append(changes, fc)
	}
	return changes, nil
}

func (rw *Rewriter) plan(path string, content []byte) FileChanges {
	bare := ExtractBareLinks(content)
	fc := FileChanges{FilePath: path, Scanned: len(bare)}

	for _, bl := range bare {
		res := rw.renderer.Line(bl.URL, bl.Line)
		if res.Outcome != render.OutcomeMatched && res.Outcome != render.OutcomeScripted {
			continue
		}

		old := bl.URL
		if bl.Bracketed {
			old = "<" + bl.URL + ">"
		}
		fc.Changes = append(fc.Changes, Change{
			URL:   bl.URL,
			Label: res.Label,
			Old:   old,
			New:   res.Output,
			Start: bl.Start,
			End:   bl.End,
			Line:  bl.Line,
		})
	}

	return fc
}

// ApplyToFile applies planned changes to one file. Spans are spliced from
// the end of the document backwards so earlier offsets stay valid.
func (*Rewriter) ApplyToFile(fc FileChanges) ApplyResult {
	result := ApplyResult{FilePath: fc.FilePath}
	if len(fc.Changes) == 0 {
		return result
	}

	content, err := os.ReadFile(fc.FilePath)
	if err != nil {
		result.Error = fmt.Errorf("reading file: %w", err)
		return result
	}

	spliced := 0
	for i := len(fc.Changes) - 1; i >= 0; i-- {
		ch := fc.Changes[i]
		if ch.End > len(content) || string(content[ch.Start:ch.End]) != ch.Old {
			result.Error = fmt.Errorf("%s:%d changed since planning, not applying", fc.FilePath, ch.Line)
			return result
		}
		content = append(content[:ch.Start], append([]byte(ch.New), content[ch.End:]...)...)
		spliced++
	}

	if err := os.WriteFile(fc.FilePath, content, 0o600); err != nil {
		result.Error = fmt.Errorf("writing file: %w", err)
		return result
	}

	// Applied counts only what reached disk; a verification failure
	// writes nothing.
	result.Applied = spliced
	return result
}

// ApplyAll applies changes to every file and returns per-file results.
func (rw *Rewriter) ApplyAll(changes []FileChanges) []ApplyResult {
	results := make([]ApplyResult, 0, len(changes))
	for _, fc := range changes {
		results = append(results, rw.ApplyToFile(fc))
	}
	return results
}

// Preview returns a formatted string showing what changes would be made.
func Preview(changes []FileChanges) string {
	total := 0
	files := 0
	for _, fc := range changes {
		if len(fc.Changes) > 0 {
			total += len(fc.Changes)
			files++
		}
	}
	if total == 0 {
		return "No bare links to label."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Would label %d link(s) across %d file(s):\n\n", total, files))

	for _, fc := range changes {
		if len(fc.Changes) == 0 {
			continue
		}
		b.WriteString(fmt.Sprintf("%s (%d change(s))\n", fc.FilePath, len(fc.Changes)))

		for _, ch := range fc.Changes {
			b.WriteString(fmt.Sprintf("  Line %d: %s\n", ch.Line, truncateURL(ch.Old, 70)))
			b.WriteString(fmt.Sprintf("          -> %s\n", truncateURL(ch.New, 70)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Summary returns a formatted summary of apply results.
func Summary(results []ApplyResult) string {
	totalApplied := 0
	filesModified := 0
	var errors []string

	for _, r := range results {
		totalApplied += r.Applied
		if r.Applied > 0 {
			filesModified++
		}
		if r.Error != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", r.FilePath, r.Error))
		}
	}

	if totalApplied == 0 && len(errors) == 0 {
		return "No changes made."
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Labeled %d link(s) across %d file(s).\n", totalApplied, filesModified))

	if len(errors) > 0 {
		b.WriteString("\nErrors:\n")
		for _, e := range errors {
			b.WriteString(fmt.Sprintf("  %s\n", e))
		}
	}

	return b.String()
}

// truncateURL shortens a URL for display.
func truncateURL(url string, maxLen int) string {
	if len(url) <= maxLen {
		return url
	}
	return url[:maxLen-3] + "..."
}
