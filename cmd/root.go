package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// version is set by main.go via SetVersion.
var version = "dev"

// SetVersion sets the version string (called from main).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Persistent flag variables shared by every subcommand.
var (
	configPath     string
	noConfig       bool
	profileName    string
	scriptPath     string
	scriptPriority string
	verbose        bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "mdlink",
	Short:   "Turn raw URLs into compact Markdown links",
	Version: version,
	Long: `mdlink rewrites raw hyperlinks as compact Markdown links.

It recognizes links into well-known developer services (GitHub,
Bugzilla, crates.io, docs.rs, Searchfox, and more) and renders a
short canonical label for the exact resource the link points at,
so [` + "`rust-lang/rust`#123" + `](...) replaces a bare issue URL.

Examples:
  mdlink render https://github.com/rust-lang/rust/issues/123
  cat urls.txt | mdlink render
  mdlink render --profile=work --format=json
  mdlink doc ./docs --write   # label bare links inside Markdown files
  mdlink interactive          # try URLs in a terminal UI`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to the config file (default: the platform config directory)")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false,
		"Run with an empty configuration, ignoring any config file")
	rootCmd.PersistentFlags().StringVarP(&profileName, "profile", "p", "",
		"Named config profile to apply on top of the general settings")
	rootCmd.PersistentFlags().StringVar(&scriptPath, "script", "",
		"JavaScript file whose render(url) function can supply labels")
	rootCmd.PersistentFlags().StringVar(&scriptPriority, "script-priority", "",
		`When the script runs relative to built-in recognizers: "first" or "last" (default "first")`)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Log debug details to stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1) //nolint:revive // deep-exit is acceptable for CLI entry points
	}
}
