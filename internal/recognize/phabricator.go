package recognize

import "regexp"

// phabricatorRecognizer renders Phabricator revision links: the
// differential diff form and bare D-number revision pages.
type phabricatorRecognizer struct{}

func init() {
	Register(phabricatorRecognizer{})
}

var revisionIDRE = regexp.MustCompile(`^D\d+$`)

func (phabricatorRecognizer) Hosts() []string {
	return []string{"phabricator.services.mozilla.com"}
}

func (phabricatorRecognizer) Recognize(req Request) (string, bool) {
	probe := req.Path
	if a, b, ok := probe.Next2(); ok && a == "differential" && b == "diff" {
		id, ok := probe.Next()
		if !ok || id == "" || !probe.doneOrTrailingSlash() {
			return "", false
		}
		return "diff " + id, true
	}

	path := req.Path
	id, ok := path.Next()
	if !ok || !path.Done() || !revisionIDRE.MatchString(id) {
		return "", false
	}
	return id, true
}
