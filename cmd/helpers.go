package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mdlink/mdlink/internal/config"
	"github.com/mdlink/mdlink/internal/filter"
	"github.com/mdlink/mdlink/internal/render"
	"github.com/mdlink/mdlink/internal/scripting"
)

// exitOnError prints an error message and exits if err is not nil.
func exitOnError(err error, message string) {
	if err != nil {
		if message != "" {
			fmt.Fprintf(os.Stderr, "%s: %v\n", message, err)
		} else {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

// loadConfig reads the configuration honoring the persistent flags:
// --no-config starts from an empty configuration, --config reads an
// explicit path (a missing file is an error there), and otherwise the
// platform config file is read, created empty on first run.
func loadConfig() (*config.Config, error) {
	if noConfig {
		return &config.Config{}, nil
	}
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// loadScript compiles the --script file. Returns nil when no script is
// requested. Compile failures are fatal to startup, per-URL script
// failures later are not.
func loadScript() (*scripting.Engine, error) {
	if scriptPath == "" {
		return nil, nil
	}
	return scripting.New(scriptPath)
}

// SkipFlags holds the ad-hoc skip rules a command adds on top of the
// configured ignore section. All three kinds merge additively with the
// config file; flags never replace configured rules.
type SkipFlags struct {
	Domains  []string
	Patterns []string
	Regex    []string
}

// resolveLayers resolves the layered view for the selected profile,
// listing the configured profile names when the requested one does not
// exist.
func resolveLayers(cfg *config.Config, profile string) (config.Layered[*config.Layer], error) {
	layers, err := cfg.Layers(profile)
	if err != nil {
		if errors.Is(err, config.ErrUnknownProfile) && len(cfg.Profiles) > 0 {
			return layers, fmt.Errorf("%w (configured profiles: %s)",
				err, strings.Join(cfg.ProfileNames(), ", "))
		}
		return layers, err
	}
	return layers, nil
}

// buildRenderer assembles the line pipeline for one profile selection:
// resolved config layers, the merged skip filter, and the user script
// when one is loaded. The returned filter is the one the renderer
// consults, so callers can report what it skipped.
func buildRenderer(
	cfg *config.Config, engine *scripting.Engine, profile string, skips SkipFlags,
) (*render.Renderer, *filter.Filter, error) {
	layers, err := resolveLayers(cfg, profile)
	if err != nil {
		return nil, nil, err
	}

	rules := config.MergedIgnore(layers)
	rules.Domains = append(rules.Domains, skips.Domains...)
	rules.Patterns = append(rules.Patterns, skips.Patterns...)
	rules.Regex = append(rules.Regex, skips.Regex...)

	urlFilter, err := filter.New(rules)
	if err != nil {
		return nil, nil, fmt.Errorf("building skip filter: %w", err)
	}

	opts := render.DefaultOptions()
	if scriptPriority != "" {
		priority, err := render.ParseScriptPriority(scriptPriority)
		if err != nil {
			return nil, nil, err
		}
		opts = opts.WithPriority(priority)
	}

	renderer := render.New(layers, opts).WithFilter(urlFilter)
	if engine != nil {
		renderer = renderer.WithScript(engine)
	}
	return renderer, urlFilter, nil
}

// readLines collects the input lines from a reader, dropping lines that
// are empty or whitespace-only. Blank separator lines are formatting,
// not input, so they are not reported as parse failures.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}

// getPathArgs returns the path arguments or the current directory as
// the default.
func getPathArgs(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return []string{"."}
}
