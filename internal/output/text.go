package output

import "strings"

// TextFormatter writes the rendered lines themselves, one per input line.
// Dropped lines produce no output. This is the default format and the one
// meant for pasting into documents.
type TextFormatter struct{}

// Format implements Formatter.
func (*TextFormatter) Format(report *Report) ([]byte, error) {
	var b strings.Builder
	for _, r := range report.Results {
		if !r.Emitted() {
			continue
		}
		b.WriteString(r.Output)
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}
