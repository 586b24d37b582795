package cmd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdlink/mdlink/internal/config"
	"github.com/mdlink/mdlink/internal/render"
)

// testConfig returns a config with one profile and some ignore rules,
// enough to exercise layer resolution and filter merging.
func testConfig() *config.Config {
	prefix := config.PrefixRepoOnly
	return &config.Config{
		General: config.Layer{
			Orgs: map[string]config.OrgEntry{
				"rust-lang": {UnmatchedRepoPrefix: &prefix},
			},
			Ignore: config.IgnoreRules{
				Domains: []string{"localhost"},
			},
		},
		Profiles: map[string]*config.Layer{
			"work": {
				Ignore: config.IgnoreRules{
					Domains: []string{"intranet.example.com"},
				},
			},
		},
	}
}

func TestBuildRenderer(t *testing.T) {
	t.Run("GeneralOnly", func(t *testing.T) {
		renderer, urlFilter, err := buildRenderer(testConfig(), nil, "", SkipFlags{})

		require.NoError(t, err)
		require.NotNil(t, renderer)
		require.NotNil(t, urlFilter)

		got := renderer.Line("https://github.com/rust-lang/rust", 1)
		assert.Equal(t, render.OutcomeMatched, got.Outcome)
		assert.Equal(t, "`rust`", got.Label)
	})

	t.Run("UnknownProfile", func(t *testing.T) {
		_, _, err := buildRenderer(testConfig(), nil, "nope", SkipFlags{})

		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrUnknownProfile)
		assert.Contains(t, err.Error(), "work", "the error should list the configured profiles")
	})

	t.Run("MergesConfigAndFlagSkipRules", func(t *testing.T) {
		renderer, urlFilter, err := buildRenderer(testConfig(), nil, "work", SkipFlags{
			Domains:  []string{"staging.example.com"},
			Patterns: []string{"*.local/*"},
		})

		require.NoError(t, err)
		domains, globs, regexes := urlFilter.Rules()
		assert.Equal(t, 3, domains, "general + profile + flag domains")
		assert.Equal(t, 1, globs)
		assert.Equal(t, 0, regexes)

		got := renderer.Line("https://intranet.example.com/wiki", 1)
		assert.Equal(t, render.OutcomeSkipped, got.Outcome)
		assert.Equal(t, "https://intranet.example.com/wiki", got.Output)
	})

	t.Run("InvalidSkipRegex", func(t *testing.T) {
		_, _, err := buildRenderer(testConfig(), nil, "", SkipFlags{
			Regex: []string{"("},
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "skip filter")
	})

	t.Run("InvalidScriptPriority", func(t *testing.T) {
		old := scriptPriority
		scriptPriority = "sometimes"
		defer func() { scriptPriority = old }()

		_, _, err := buildRenderer(testConfig(), nil, "", SkipFlags{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "script priority")
	})
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	t.Run("DropsBlankLines", func(t *testing.T) {
		t.Parallel()
		in := "https://example.com/a\n\n   \nhttps://example.com/b\n"

		lines, err := readLines(strings.NewReader(in))

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/a", "https://example.com/b"}, lines)
	})

	t.Run("KeepsLineContentVerbatim", func(t *testing.T) {
		t.Parallel()
		in := "  https://example.com/with%20space  \nnot a url at all\n"

		lines, err := readLines(strings.NewReader(in))

		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "  https://example.com/with%20space  ", lines[0])
		assert.Equal(t, "not a url at all", lines[1])
	})

	t.Run("EmptyInput", func(t *testing.T) {
		t.Parallel()

		lines, err := readLines(strings.NewReader(""))

		require.NoError(t, err)
		assert.Empty(t, lines)
	})
}

func TestGetPathArgs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"."}, getPathArgs(nil))
	assert.Equal(t, []string{"docs", "README.md"}, getPathArgs([]string{"docs", "README.md"}))
}
