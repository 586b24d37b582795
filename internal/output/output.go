// Package output provides formatting and file writing for rendering reports.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdlink/mdlink/internal/filter"
	"github.com/mdlink/mdlink/internal/render"
)

// Format represents an output format type.
type Format string

const (
	// FormatText outputs the rendered lines only, in input order.
	FormatText Format = "text"
	// FormatJSON outputs as JSON.
	FormatJSON Format = "json"
	// FormatYAML outputs as YAML.
	FormatYAML Format = "yaml"
	// FormatMarkdown outputs as a Markdown report.
	FormatMarkdown Format = "markdown"
)

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatYAML),
		string(FormatMarkdown),
	}
}

// IsValidFormat checks whether the given string names a supported format.
// The check is case-insensitive.
func IsValidFormat(format string) bool {
	normalized := strings.ToLower(format)
	for _, f := range ValidFormats() {
		if f == normalized {
			return true
		}
	}
	return false
}

// Report contains everything a rendering run produced.
type Report struct {
	GeneratedAt time.Time
	Profile     string // active profile name, empty for the general layer
	Summary     render.Summary
	Results     []render.Result
	Skipped     []filter.SkipReason
}

// NewReport builds a report from rendering results and skip records.
func NewReport(profile string, results []render.Result, skipped []filter.SkipReason) *Report {
	return &Report{
		GeneratedAt: time.Now(),
		Profile:     profile,
		Summary:     render.Summarize(results),
		Results:     results,
		Skipped:     skipped,
	}
}

// Formatter is the interface for report formatters.
type Formatter interface {
	Format(report *Report) ([]byte, error)
}

// GetFormatter returns the formatter for the given format.
func GetFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatText:
		return &TextFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	case FormatMarkdown:
		return &MarkdownFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// FormatReport formats a report using the specified format.
func FormatReport(report *Report, format Format) ([]byte, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return nil, err
	}
	return formatter.Format(report)
}

// InferFormat determines the output format from a filename extension.
func InferFormat(filename string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".txt":
		return FormatText, nil
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".md", ".markdown":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf(
			"cannot infer format from extension %q (supported: .txt, .json, .yaml, .yml, .md, .markdown)",
			ext,
		)
	}
}

// WriteToFile formats the report based on the filename extension and writes
// it to the given path.
func WriteToFile(report *Report, filename string) error {
	format, err := InferFormat(filename)
	if err != nil {
		return err
	}

	data, err := FormatReport(report, format)
	if err != nil {
		return fmt.Errorf("formatting report: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o600); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}
