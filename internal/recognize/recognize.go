// Package recognize classifies URLs that point into well-known
// developer services and produces compact Markdown labels for them.
//
// Each service is handled by a Recognizer registered for the hostnames
// it serves. A recognizer inspects the URL's path, query, and fragment
// against the shapes the service publishes and either returns a
// finished label or declines, leaving the caller to fall back to a
// plain rendering. Labels are buffered in full before they are
// returned, so a recognizer never emits a partial label.
package recognize

import "strings"

// backtick wraps s in Markdown code ticks.
func backtick(s string) string {
	return "`" + s + "`"
}

// writeLineSuffix appends ":<start>" or ":<start>-<end>" for a line
// reference.
func writeLineSuffix(b *strings.Builder, spec LineSpec) {
	b.WriteByte(':')
	b.WriteString(spec.Start)
	if spec.End != "" {
		b.WriteByte('-')
		b.WriteString(spec.End)
	}
}

// writeCommentSuffix appends ", comment <n>" when the fragment names a
// comment anchor. Other fragments leave the label untouched.
func writeCommentSuffix(b *strings.Builder, fragment string) {
	if n, ok := parseCommentFragment(fragment); ok {
		b.WriteString(", comment ")
		b.WriteString(n)
	}
}
