// Package config loads the mdlink configuration file and resolves
// layered profile overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFileName is the file read from the platform config directory.
const ConfigFileName = "config.toml"

// Config is the full on-disk configuration: a general layer that always
// applies, plus named profile layers that override it when selected.
type Config struct {
	General  Layer             `toml:"general"`
	Profiles map[string]*Layer `toml:"profiles"`
}

// Layer is one configuration stratum. Every field is optional; a layer
// that does not supply a value defers to the next layer out.
type Layer struct {
	Orgs   map[string]OrgEntry `toml:"orgs"`
	Ignore IgnoreRules         `toml:"ignore"`
}

// OrgEntry configures rendering for one source-host organization.
type OrgEntry struct {
	// UnmatchedRepoPrefix applies to repositories of this org that have
	// no RepoEntry of their own.
	UnmatchedRepoPrefix *RepoPrefix          `toml:"unmatched-repo-prefix"`
	Repos               map[string]RepoEntry `toml:"repos"`
}

// RepoEntry configures rendering for a single repository.
type RepoEntry struct {
	Prefix *RepoPrefix `toml:"prefix"`
}

// IgnoreRules lists URLs that must never be given a fancy label.
// Matching URLs render as the fallback form instead.
type IgnoreRules struct {
	// Domains to skip (subdomains included, so "example.com" also
	// covers "api.example.com").
	Domains []string `toml:"domains"`

	// Patterns are glob patterns matched against the whole URL.
	Patterns []string `toml:"patterns"`

	// Regex are regular expressions matched against the whole URL.
	Regex []string `toml:"regex"`
}

// RepoPrefix selects how much of `org/repo` a rendered label shows.
type RepoPrefix string

const (
	// PrefixOrgAndRepo renders `org/repo`. The default, since omitting
	// the org is the more surprising choice.
	PrefixOrgAndRepo RepoPrefix = "org-and-repo"
	// PrefixRepoOnly renders just `repo`.
	PrefixRepoOnly RepoPrefix = "repo-only"
	// PrefixNone renders no prefix text at all.
	PrefixNone RepoPrefix = "none"
)

// UnmarshalText validates the enumeration on decode, so a typo in the
// config file is a hard error rather than a silently ignored setting.
func (p *RepoPrefix) UnmarshalText(text []byte) error {
	switch v := RepoPrefix(text); v {
	case PrefixOrgAndRepo, PrefixRepoOnly, PrefixNone:
		*p = v
		return nil
	default:
		return fmt.Errorf("invalid repo prefix %q (want %q, %q, or %q)",
			text, PrefixOrgAndRepo, PrefixRepoOnly, PrefixNone)
	}
}

// Step identifies the phase of a configuration load that failed.
type Step string

const (
	StepCreateDir  Step = "create config directory"
	StepCreateFile Step = "create config file"
	StepOpen       Step = "open config file"
	StepRead       Step = "read config file"
	StepDecode     Step = "decode config file"
)

// LoadError is a fatal configuration load failure. Each phase of the
// load reports its own Step so callers can tell a permissions problem
// from a syntax error.
type LoadError struct {
	Step Step
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// DefaultPath returns the platform config file location,
// e.g. ~/.config/mdlink/config.toml on Linux.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate user config directory: %w", err)
	}
	return filepath.Join(base, "mdlink", ConfigFileName), nil
}

// Load reads the configuration from the platform config directory,
// creating the directory and an empty config file on first run.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &LoadError{Step: StepCreateDir, Path: dir, Err: err}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		if !errors.Is(err, fs.ErrExist) {
			return nil, &LoadError{Step: StepCreateFile, Path: path, Err: err}
		}
	} else {
		f.Close()
	}

	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path. Unlike Load,
// a missing file is an error here: the caller asked for this file
// specifically.
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Step: StepOpen, Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &LoadError{Step: StepRead, Path: path, Err: err}
	}

	return decode(data, path)
}

// decode parses TOML with unknown keys rejected, so a misspelled or
// misplaced key fails the load instead of being dropped.
func decode(data []byte, path string) (*Config, error) {
	cfg := &Config{}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, &LoadError{Step: StepDecode, Path: path, Err: err}
	}
	return cfg, nil
}

// IsEmpty reports whether the config carries no settings at all.
func (c *Config) IsEmpty() bool {
	return len(c.General.Orgs) == 0 &&
		len(c.General.Ignore.Domains) == 0 &&
		len(c.General.Ignore.Patterns) == 0 &&
		len(c.General.Ignore.Regex) == 0 &&
		len(c.Profiles) == 0
}

// ProfileNames returns the configured profile names, sorted.
func (c *Config) ProfileNames() []string {
	names := make([]string, 0, len(c.Profiles))
	for name := range c.Profiles {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MergedIgnore collects ignore rules from every layer, most specific
// first. Ignore rules accumulate across layers rather than overriding:
// a profile adds to the general rules, it does not replace them.
func MergedIgnore(l Layered[*Layer]) IgnoreRules {
	var merged IgnoreRules
	for _, layer := range l.Inwards() {
		merged.Domains = append(merged.Domains, layer.Ignore.Domains...)
		merged.Patterns = append(merged.Patterns, layer.Ignore.Patterns...)
		merged.Regex = append(merged.Regex, layer.Ignore.Regex...)
	}
	return merged
}
