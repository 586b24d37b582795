package recognize

// cratesRecognizer renders crates.io package links as "`name` vX.Y.Z".
type cratesRecognizer struct{}

func init() {
	Register(cratesRecognizer{})
}

func (cratesRecognizer) Hosts() []string {
	return []string{"crates.io"}
}

func (cratesRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	section, ok := path.Next()
	if !ok || section != "crates" {
		return "", false
	}
	name, ok := path.Next()
	if !ok || name == "" {
		return "", false
	}
	version, ok := path.Next()
	if !ok || version == "" || !path.Done() {
		return "", false
	}
	return backtick(name) + " v" + version, true
}
