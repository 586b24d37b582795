package recognize

import (
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/mdlink/mdlink/internal/config"
)

// Request carries one URL through a recognizer attempt.
type Request struct {
	// URL is the parsed link under classification.
	URL *url.URL
	// Path is positioned at the first path segment.
	Path Cursor
	// Layers is the resolved configuration view, innermost layer first.
	Layers config.Layered[*config.Layer]
}

// Recognizer turns URLs of one service into Markdown labels.
type Recognizer interface {
	// Hosts lists the hostnames the recognizer claims, lowercase.
	Hosts() []string
	// Recognize returns the label for the request's URL. It returns
	// false when the URL does not fit any shape the service publishes,
	// in which case nothing else of the request is consumed.
	Recognize(req Request) (string, bool)
}

// Registry maps hostnames to recognizers.
type Registry struct {
	mu          sync.RWMutex
	recognizers map[string]Recognizer
}

// NewRegistry creates an empty recognizer registry.
func NewRegistry() *Registry {
	return &Registry{
		recognizers: make(map[string]Recognizer),
	}
}

// Register adds a recognizer under every host it claims. A later
// registration replaces an earlier one for the same host.
func (r *Registry) Register(rec Recognizer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, host := range rec.Hosts() {
		r.recognizers[normalizeHost(host)] = rec
	}
}

// Get returns the recognizer registered for the given host.
func (r *Registry) Get(host string) (Recognizer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.recognizers[normalizeHost(host)]
	return rec, ok
}

// Hosts returns all registered hostnames, sorted.
func (r *Registry) Hosts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	hosts := make([]string, 0, len(r.recognizers))
	for host := range r.recognizers {
		hosts = append(hosts, host)
	}
	sort.Strings(hosts)
	return hosts
}

// Classify dispatches the URL to the recognizer claiming its host and
// returns the resulting label. It returns false for non-HTTP schemes,
// unknown hosts, and URLs the recognizer declines.
func (r *Registry) Classify(u *url.URL, layers config.Layered[*config.Layer]) (string, bool) {
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", false
	}
	host := u.Hostname()
	if host == "" {
		return "", false
	}
	rec, ok := r.Get(host)
	if !ok {
		return "", false
	}
	return rec.Recognize(Request{URL: u, Path: newCursor(u), Layers: layers})
}

func normalizeHost(host string) string {
	return strings.ToLower(host)
}

// defaultRegistry holds the built-in recognizers, filled by the init
// functions of the per-service files.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the registry holding the built-in recognizers.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// Register adds a recognizer to the default registry.
func Register(rec Recognizer) {
	defaultRegistry.Register(rec)
}

// Classify dispatches the URL against the default registry.
func Classify(u *url.URL, layers config.Layered[*config.Layer]) (string, bool) {
	return defaultRegistry.Classify(u, layers)
}
