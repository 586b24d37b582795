package render

import "fmt"

// DefaultCacheSize bounds the per-run label cache. Logs and release
// notes repeat the same URLs heavily, so even a small cache hits
// often.
const DefaultCacheSize = 1024

// ScriptPriority decides where the user script runs relative to the
// built-in recognizers.
type ScriptPriority string

const (
	// ScriptFirst consults the script before the built-in
	// recognizers, letting it shadow them.
	ScriptFirst ScriptPriority = "first"

	// ScriptLast consults the script only for URLs no built-in
	// recognizer claimed.
	ScriptLast ScriptPriority = "last"
)

// ParseScriptPriority converts a command-line value into a
// ScriptPriority.
func ParseScriptPriority(s string) (ScriptPriority, error) {
	switch ScriptPriority(s) {
	case ScriptFirst:
		return ScriptFirst, nil
	case ScriptLast:
		return ScriptLast, nil
	}
	return "", fmt.Errorf("invalid script priority %q, want %q or %q", s, ScriptFirst, ScriptLast)
}

// Options configures a Renderer.
type Options struct {
	// Priority is where the user script runs when one is loaded.
	Priority ScriptPriority

	// CacheSize bounds the label cache. Zero disables caching.
	CacheSize int
}

// DefaultOptions returns the renderer defaults: script first, and a
// modest cache.
func DefaultOptions() Options {
	return Options{
		Priority:  ScriptFirst,
		CacheSize: DefaultCacheSize,
	}
}

// WithPriority sets where the user script runs.
func (o Options) WithPriority(p ScriptPriority) Options {
	if p != "" {
		o.Priority = p
	}
	return o
}

// WithCacheSize sets the label cache bound.
func (o Options) WithCacheSize(n int) Options {
	if n >= 0 {
		o.CacheSize = n
	}
	return o
}
