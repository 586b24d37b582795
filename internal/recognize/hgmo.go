package recognize

// hgRecognizer renders Mozilla Mercurial revision links as
// "`repo`:`hash`". Both the primary and the edge hostname serve the
// same trees.
type hgRecognizer struct{}

func init() {
	Register(hgRecognizer{})
}

func (hgRecognizer) Hosts() []string {
	return []string{"hg.mozilla.org", "hg-edge.mozilla.org"}
}

func (hgRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	repo, ok := path.Next()
	if !ok || repo == "" {
		return "", false
	}
	section, ok := path.Next()
	if !ok || section != "rev" {
		return "", false
	}
	hash, ok := path.Next()
	if !ok || hash == "" || !path.Done() {
		return "", false
	}
	return backtick(repo) + ":" + backtick(hash), true
}
