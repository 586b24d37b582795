// Package render turns raw input lines into Markdown link lines. Each
// line is parsed, checked against the skip rules, offered to the user
// script and the built-in recognizers, and finally written back as a
// compact link, an autolink, or the original text.
package render

import (
	"log/slog"
	"net/url"
	"strings"

	"github.com/hashicorp/golang-lru/v2"

	"github.com/mdlink/mdlink/internal/config"
	"github.com/mdlink/mdlink/internal/filter"
	"github.com/mdlink/mdlink/internal/recognize"
)

// Scripter supplies a replacement label for a URL, or declines.
// *scripting.Engine satisfies it.
type Scripter interface {
	Render(u *url.URL) (string, bool, error)
}

// Renderer classifies URLs under one fixed configuration view. Batch
// rendering is sequential and order-preserving. Single lines may be
// rendered from concurrent goroutines (the interactive UI does); the
// configuration view is read-only and the mutable collaborators
// serialize themselves.
type Renderer struct {
	layers   config.Layered[*config.Layer]
	registry *recognize.Registry
	opts     Options

	script Scripter
	filter *filter.Filter
	logger *slog.Logger

	// cache memoizes classification per raw URL text. Classification
	// is a pure function of URL and configuration, and the
	// configuration is fixed for the renderer's lifetime.
	cache *lru.Cache[string, cachedLabel]
}

type cachedLabel struct {
	label   string
	outcome Outcome
}

// New builds a Renderer over the resolved configuration layers.
func New(layers config.Layered[*config.Layer], opts Options) *Renderer {
	r := &Renderer{
		layers:   layers,
		registry: recognize.DefaultRegistry(),
		opts:     opts,
		logger:   slog.Default(),
	}
	if opts.CacheSize > 0 {
		// New only fails for a non-positive size.
		r.cache, _ = lru.New[string, cachedLabel](opts.CacheSize)
	}
	return r
}

// WithScript attaches the user script engine.
func (r *Renderer) WithScript(s Scripter) *Renderer {
	r.script = s
	return r
}

// WithFilter attaches the skip filter.
func (r *Renderer) WithFilter(f *filter.Filter) *Renderer {
	r.filter = f
	return r
}

// WithLogger replaces the default logger.
func (r *Renderer) WithLogger(l *slog.Logger) *Renderer {
	if l != nil {
		r.logger = l
	}
	return r
}

// WithRegistry replaces the recognizer registry, mostly useful in
// tests.
func (r *Renderer) WithRegistry(reg *recognize.Registry) *Renderer {
	if reg != nil {
		r.registry = reg
	}
	return r
}

// Line renders one input line. lineNum is 1-based and only used for
// reporting. A line that does not parse as an absolute URL is logged
// and dropped; it never aborts the run.
func (r *Renderer) Line(raw string, lineNum int) Result {
	input := strings.TrimSpace(raw)
	result := Result{Input: input, Line: lineNum}

	u, err := url.Parse(input)
	if err != nil || u.Scheme == "" {
		r.logger.Warn("skipping unparseable input line",
			"line", lineNum,
			"text", raw,
		)
		result.Outcome = OutcomeDropped
		return result
	}

	// A parsed URL with a non-HTTP scheme is out of scope; unlike a
	// parse failure it passes through unchanged.
	if u.Scheme != "http" && u.Scheme != "https" {
		result.Outcome = OutcomeVerbatim
		result.Output = input
		return result
	}

	if r.filter.ShouldSkip(input, u.Hostname(), lineNum) {
		result.Outcome = OutcomeSkipped
		result.Output = input
		return result
	}

	label, outcome := r.classify(input, u)
	result.Outcome = outcome
	if outcome == OutcomeFallback {
		result.Output = "<" + input + ">"
		return result
	}
	result.Label = label
	// The original text goes inside the parentheses byte for byte;
	// re-serializing the parsed URL could change it.
	result.Output = "[" + label + "](" + input + ")"
	return result
}

// Lines renders a batch in input order. Every line yields a Result;
// dropped lines are present with no output so line numbers stay
// aligned for reporting.
func (r *Renderer) Lines(lines []string) []Result {
	results := make([]Result, 0, len(lines))
	for i, line := range lines {
		results = append(results, r.Line(line, i+1))
	}
	return results
}

// classify resolves the label for an in-scope URL, consulting the
// cache first. The script runs before or after the built-in
// recognizers depending on the configured priority.
func (r *Renderer) classify(input string, u *url.URL) (string, Outcome) {
	if r.cache != nil {
		if hit, ok := r.cache.Get(input); ok {
			return hit.label, hit.outcome
		}
	}

	label, outcome := r.resolve(u)

	if r.cache != nil {
		r.cache.Add(input, cachedLabel{label: label, outcome: outcome})
	}
	return label, outcome
}

func (r *Renderer) resolve(u *url.URL) (string, Outcome) {
	if r.script != nil && r.opts.Priority == ScriptFirst {
		if label, ok := r.scriptLabel(u); ok {
			return label, OutcomeScripted
		}
	}
	if label, ok := r.registry.Classify(u, r.layers); ok {
		return label, OutcomeMatched
	}
	if r.script != nil && r.opts.Priority == ScriptLast {
		if label, ok := r.scriptLabel(u); ok {
			return label, OutcomeScripted
		}
	}
	return "", OutcomeFallback
}

// scriptLabel runs the user script for one URL. Script failures are
// logged and treated as a decline so a buggy script cannot take down
// the run.
func (r *Renderer) scriptLabel(u *url.URL) (string, bool) {
	label, ok, err := r.script.Render(u)
	if err != nil {
		r.logger.Warn("user script failed", "url", u.String(), "error", err)
		return "", false
	}
	return label, ok
}
