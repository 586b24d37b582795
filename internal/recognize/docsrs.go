package recognize

import "strings"

// docsRSRecognizer renders docs.rs documentation links as the
// backticked "::"-joined path of the documented symbol. The path shape
// is "<crate>/<version>/<crate-module>/..." where the third segment
// repeats the crate name with hyphens folded to underscores.
type docsRSRecognizer struct{}

func init() {
	Register(docsRSRecognizer{})
}

func (docsRSRecognizer) Hosts() []string {
	return []string{"docs.rs"}
}

func (docsRSRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	name, ok := path.Next()
	if !ok || name == "" {
		return "", false
	}
	version, ok := path.Next()
	if !ok || version == "" {
		return "", false
	}
	crateModule, ok := path.Next()
	if !ok || crateModule != strings.ReplaceAll(name, "-", "_") {
		return "", false
	}

	joined, ok := symbolPath(crateModule, path.Rest(), req.URL.Fragment, false)
	if !ok {
		return "", false
	}
	return backtick(joined), true
}
