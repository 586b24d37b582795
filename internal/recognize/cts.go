package recognize

// ctsRecognizer renders links into the WebGPU conformance test suite
// runner, labeling them with the query under test.
type ctsRecognizer struct{}

func init() {
	Register(ctsRecognizer{})
}

func (ctsRecognizer) Hosts() []string {
	return []string{"gpuweb.github.io"}
}

func (ctsRecognizer) Recognize(req Request) (string, bool) {
	path := req.Path
	a, b, ok := path.Next2()
	if !ok || a != "cts" || b != "standalone" {
		return "", false
	}
	trailing, ok := path.Next()
	if !ok || trailing != "" || !path.Done() {
		return "", false
	}

	q := req.URL.Query().Get("q")
	if q == "" {
		return "", false
	}
	return backtick(q), true
}
