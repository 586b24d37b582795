package recognize

import "strings"

// clippyRecognizer renders links into the Clippy lint catalog. The
// fragment decides the flavor: empty for the whole catalog, a leading
// slash for a search, anything else for a single lint.
type clippyRecognizer struct{}

func init() {
	Register(clippyRecognizer{})
}

var clippyStages = map[string]bool{
	"master": true,
	"stable": true,
	"beta":   true,
}

func (clippyRecognizer) Hosts() []string {
	return []string{"rust-lang.github.io"}
}

func (clippyRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	project, stage, ok := path.Next2()
	if !ok || project != "rust-clippy" || !clippyStages[stage] {
		return "", false
	}
	page, ok := path.Next()
	if !ok || page != "index.html" || !path.Done() {
		return "", false
	}

	fragment := req.URL.EscapedFragment()
	switch {
	case fragment == "":
		return "clippy lints in " + stage, true
	case strings.HasPrefix(fragment, "/"):
		term := strings.TrimPrefix(fragment, "/")
		return "search for " + backtick(term) + " in clippy lints in " + stage, true
	default:
		return backtick("clippy::"+fragment) + " in " + stage, true
	}
}
