package recognize

// treeherderRecognizer renders Treeherder push links as
// "`repo` @ `rev`", shortening the revision to twelve characters.
type treeherderRecognizer struct{}

func init() {
	Register(treeherderRecognizer{})
}

func (treeherderRecognizer) Hosts() []string {
	return []string{"treeherder.mozilla.org"}
}

func (treeherderRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	section, ok := path.Next()
	if !ok || section != "jobs" || !path.Done() {
		return "", false
	}

	query := req.URL.Query()
	repo := query.Get("repo")
	revision := query.Get("revision")
	if repo == "" || revision == "" {
		return "", false
	}
	if len(revision) > 12 {
		revision = revision[:12]
	}
	return backtick(repo) + " @ " + backtick(revision), true
}
