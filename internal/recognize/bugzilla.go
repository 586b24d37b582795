package recognize

import "strings"

// bugzillaRecognizer renders Bugzilla bug links, including the short
// bugzil.la alias. Numeric ids read "bug <id>"; named aliases are
// quoted. A "c<n>" fragment adds the comment number.
type bugzillaRecognizer struct{}

func init() {
	Register(bugzillaRecognizer{})
}

func (bugzillaRecognizer) Hosts() []string {
	return []string{"bugzilla.mozilla.org", "bugzil.la"}
}

func (bugzillaRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	id, ok := path.Next()
	if !ok || !path.Done() || id == "" {
		return "", false
	}

	if id == "show_bug.cgi" {
		id = req.URL.Query().Get("id")
		if id == "" {
			return "", false
		}
	}

	var b strings.Builder
	if isDigits(id) {
		b.WriteString("bug ")
		b.WriteString(id)
	} else {
		b.WriteByte('"')
		b.WriteString(id)
		b.WriteByte('"')
	}
	writeCommentSuffix(&b, req.URL.Fragment)
	return b.String(), true
}
