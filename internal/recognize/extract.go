package recognize

import "regexp"

// LineSpec is a source line reference parsed from a URL fragment.
type LineSpec struct {
	Start string
	End   string // empty for a single-line reference
}

var (
	lineSpecRE         = regexp.MustCompile(`L(?P<start>\d+)(?:-L(?P<end>\d+))?`)
	componentVersionRE = regexp.MustCompile(`(?P<component>.+)-(?P<version>v\d+(?:\.\d+){0,2})`)
	commentFragmentRE  = regexp.MustCompile(`^c(\d+)$`)
	digitsRE           = regexp.MustCompile(`^\d+$`)
)

// parseLineSpec finds a "L10" or "L10-L20" line reference anywhere in a
// fragment, the form GitHub's file view produces.
func parseLineSpec(fragment string) (LineSpec, bool) {
	m := lineSpecRE.FindStringSubmatch(fragment)
	if m == nil {
		return LineSpec{}, false
	}
	start := m[lineSpecRE.SubexpIndex("start")]
	if start == "" {
		panic("line reference matched without a start line")
	}
	return LineSpec{Start: start, End: m[lineSpecRE.SubexpIndex("end")]}, true
}

// splitComponentVersion splits a release tag of the form
// "<component>-v<major>[.minor[.patch]]". The component may itself
// contain hyphens; the version match is the rightmost one.
func splitComponentVersion(tag string) (component, version string, ok bool) {
	m := componentVersionRE.FindStringSubmatch(tag)
	if m == nil {
		return "", "", false
	}
	return m[componentVersionRE.SubexpIndex("component")], m[componentVersionRE.SubexpIndex("version")], true
}

// parseCommentFragment extracts the comment number from a "c<digits>"
// fragment.
func parseCommentFragment(fragment string) (string, bool) {
	m := commentFragmentRE.FindStringSubmatch(fragment)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// isDigits reports whether s is one or more ASCII digits.
func isDigits(s string) bool {
	return digitsRE.MatchString(s)
}
