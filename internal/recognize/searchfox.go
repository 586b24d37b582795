package recognize

import "strings"

// searchfoxRecognizer renders Searchfox code-search links as the
// backticked file path, carrying any line anchor through verbatim.
type searchfoxRecognizer struct{}

func init() {
	Register(searchfoxRecognizer{})
}

var searchfoxTrees = map[string]bool{
	"mozilla-central": true,
	"autoland":        true,
	"mozilla-beta":    true,
	"mozilla-release": true,
	"comm-central":    true,
	"wubkat":          true,
}

func (searchfoxRecognizer) Hosts() []string {
	return []string{"searchfox.org"}
}

func (searchfoxRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	tree, ok := path.Next()
	if !ok || !searchfoxTrees[tree] {
		return "", false
	}
	section, ok := path.Next()
	if !ok {
		return "", false
	}
	switch section {
	case "source":
	case "rev":
		// The revision segment is not part of the displayed path.
		if _, ok := path.Next(); !ok {
			return "", false
		}
	default:
		return "", false
	}

	rest := path.Rest()
	if len(rest) == 0 {
		return "", false
	}
	var b strings.Builder
	b.WriteString(backtick(strings.Join(rest, "/")))
	if fragment := req.URL.EscapedFragment(); fragment != "" {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String(), true
}
