// Package filter decides which URLs mdlink leaves untouched. Rules
// come from the merged ignore section of the configuration plus any
// command-line additions.
package filter

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/gobwas/glob"

	"github.com/mdlink/mdlink/internal/config"
)

// SkipReason records one skipped URL for reporting.
type SkipReason struct {
	Kind string // "domain", "pattern", or "regex"
	Rule string // the rule that matched
	URL  string // the raw URL text
	Line int    // 1-based input line
}

// Filter matches URLs against the configured skip rules and keeps a
// record of everything it skips. The rules are immutable after New; the
// skip record is guarded so the interactive UI can render from its own
// goroutines.
type Filter struct {
	// domains holds lowercase domain names; each one also covers its
	// subdomains.
	domains map[string]bool

	globs   []compiledGlob
	regexes []compiledRegex

	mu      sync.Mutex
	skipped []SkipReason
}

type compiledGlob struct {
	pattern  glob.Glob
	original string
}

type compiledRegex struct {
	pattern  *regexp.Regexp
	original string
}

// New compiles the merged ignore rules into a filter. Rules are
// compiled once up front; a malformed glob or regex fails the whole
// construction rather than being dropped.
func New(rules config.IgnoreRules) (*Filter, error) {
	f := &Filter{
		domains: map[string]bool{},
	}

	for _, d := range rules.Domains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d != "" {
			f.domains[d] = true
		}
	}

	for _, p := range rules.Patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", p, err)
		}
		f.globs = append(f.globs, compiledGlob{pattern: g, original: p})
	}

	for _, p := range rules.Regex {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		r, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", p, err)
		}
		f.regexes = append(f.regexes, compiledRegex{pattern: r, original: p})
	}

	return f, nil
}

// ShouldSkip reports whether the URL on the given 1-based input line
// matches any rule, recording the reason when it does. Domain rules
// match the parsed hostname and its subdomains; glob and regex rules
// match the raw URL text. Checks run fastest first: domain, glob,
// regex.
func (f *Filter) ShouldSkip(raw, host string, line int) bool {
	if f == nil {
		return false
	}

	if rule, ok := f.matchesDomain(host); ok {
		f.record(SkipReason{Kind: "domain", Rule: rule, URL: raw, Line: line})
		return true
	}
	if rule, ok := f.matchesGlob(raw); ok {
		f.record(SkipReason{Kind: "pattern", Rule: rule, URL: raw, Line: line})
		return true
	}
	if rule, ok := f.matchesRegex(raw); ok {
		f.record(SkipReason{Kind: "regex", Rule: rule, URL: raw, Line: line})
		return true
	}
	return false
}

func (f *Filter) record(reason SkipReason) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.skipped = append(f.skipped, reason)
}

func (f *Filter) matchesDomain(host string) (string, bool) {
	if len(f.domains) == 0 || host == "" {
		return "", false
	}

	host = strings.ToLower(host)
	if f.domains[host] {
		return host, true
	}
	// "example.com" also covers "www.example.com".
	for domain := range f.domains {
		if strings.HasSuffix(host, "."+domain) {
			return domain, true
		}
	}
	return "", false
}

func (f *Filter) matchesGlob(raw string) (string, bool) {
	for _, g := range f.globs {
		if g.pattern.Match(raw) {
			return g.original, true
		}
	}
	return "", false
}

func (f *Filter) matchesRegex(raw string) (string, bool) {
	for _, r := range f.regexes {
		if r.pattern.MatchString(raw) {
			return r.original, true
		}
	}
	return "", false
}

// SkipCount returns how many URLs the filter has skipped so far.
func (f *Filter) SkipCount() int {
	if f == nil {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.skipped)
}

// Skipped returns every skipped URL with its reason, in input order.
func (f *Filter) Skipped() []SkipReason {
	if f == nil {
		return nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]SkipReason(nil), f.skipped...)
}

// Reset clears the skip record so the filter can serve another run.
func (f *Filter) Reset() {
	if f == nil {
		return
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.skipped = f.skipped[:0]
}

// HasRules reports whether any rule is configured at all.
func (f *Filter) HasRules() bool {
	if f == nil {
		return false
	}
	return len(f.domains) > 0 || len(f.globs) > 0 || len(f.regexes) > 0
}

// Rules returns how many rules of each kind are loaded.
func (f *Filter) Rules() (domains, globs, regexes int) {
	if f == nil {
		return 0, 0, 0
	}
	return len(f.domains), len(f.globs), len(f.regexes)
}
