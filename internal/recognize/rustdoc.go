package recognize

// rustdocRecognizer renders standard-library documentation links on
// doc.rust-lang.org. An optional release-channel segment may precede
// the crate root; only the crates the toolchain documents there are
// accepted.
type rustdocRecognizer struct{}

func init() {
	Register(rustdocRecognizer{})
}

var (
	rustdocChannels = map[string]bool{
		"stable":  true,
		"beta":    true,
		"nightly": true,
	}
	rustdocRoots = map[string]bool{
		"std":        true,
		"alloc":      true,
		"core":       true,
		"proc_macro": true,
		"test":       true,
	}
)

func (rustdocRecognizer) Hosts() []string {
	return []string{"doc.rust-lang.org"}
}

func (rustdocRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	crate, ok := path.Next()
	if !ok {
		return "", false
	}
	if rustdocChannels[crate] {
		crate, ok = path.Next()
		if !ok {
			return "", false
		}
	}
	if !rustdocRoots[crate] {
		return "", false
	}

	joined, ok := symbolPath(crate, path.Rest(), req.URL.Fragment, true)
	if !ok {
		return "", false
	}
	return backtick(joined), true
}
