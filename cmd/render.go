package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mdlink/mdlink/internal/helpers"
	"github.com/mdlink/mdlink/internal/output"
)

// Flag variables for the render command.
var (
	renderFormat string
	renderOutput string

	// Skip flags, merged on top of the configured ignore rules.
	renderSkipDomains  []string
	renderSkipPatterns []string
	renderSkipRegex    []string
)

// renderCmd represents the render command.
var renderCmd = &cobra.Command{
	Use:   "render [url...]",
	Short: "Render URLs as compact Markdown links",
	Long: `Render each input URL as a compact Markdown link.

URLs come from the command line, or from stdin when no arguments are
given (one URL per line). Output preserves input order: URLs into
recognized services become [label](url), anything else http(s) becomes
an <autolink>, non-http(s) URLs pass through unchanged, and lines that
do not parse as URLs are logged to stderr and dropped.

Examples:
  mdlink render https://github.com/rust-lang/rust/issues/123
  cat urls.txt | mdlink render
  mdlink render --profile=work < urls.txt
  mdlink render --format=json < urls.txt
  mdlink render --output=report.md < urls.txt
  mdlink render --skip-domain=internal.example.com < urls.txt
  mdlink render --script=labels.js --script-priority=last < urls.txt

Note: --format and --output are mutually exclusive.

Skip rules:
  mdlink render --skip-domain=localhost,example.com
  mdlink render --skip-pattern="*.local/*"
  mdlink render --skip-regex=".*\\.test$"

Config file (config.toml):
  [general.orgs.rust-lang]
  unmatched-repo-prefix = "repo-only"
  [general.orgs.rust-lang.repos.rust]
  prefix = "org-and-repo"
  [general.ignore]
  domains = ["localhost"]`,
	Run: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	// Output options
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "",
		"Output format for stdout: text, json, yaml, markdown")
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"Write report to file (format inferred from extension: .txt, .json, .yaml, .md)")

	// Skip options
	renderCmd.Flags().StringSliceVar(&renderSkipDomains, "skip-domain", nil,
		"Domains to leave unlabeled, includes subdomains (can be repeated or comma-separated)")
	renderCmd.Flags().StringSliceVar(&renderSkipPatterns, "skip-pattern", nil,
		"Glob patterns to leave unlabeled (can be repeated)")
	renderCmd.Flags().StringSliceVar(&renderSkipRegex, "skip-regex", nil,
		"Regex patterns to leave unlabeled (can be repeated)")
}

// runRender is the main entry point for the render command.
func runRender(_ *cobra.Command, args []string) {
	exitOnError(validateRenderFlags(), "Invalid flags")

	cfg, err := loadConfig()
	exitOnError(err, "Error loading config")

	engine, err := loadScript()
	exitOnError(err, "Error loading script")

	renderer, urlFilter, err := buildRenderer(cfg, engine, profileName, SkipFlags{
		Domains:  renderSkipDomains,
		Patterns: renderSkipPatterns,
		Regex:    renderSkipRegex,
	})
	exitOnError(err, "Error building renderer")

	lines := args
	if len(lines) == 0 {
		lines, err = readLines(os.Stdin)
		exitOnError(err, "Error reading stdin")
	}

	results := renderer.Lines(lines)
	report := output.NewReport(profileName, results, urlFilter.Skipped())

	switch {
	case renderFormat != "":
		data, err := output.FormatReport(report, output.Format(strings.ToLower(renderFormat)))
		exitOnError(err, "Error formatting output")
		fmt.Print(string(data))

	case renderOutput != "":
		exitOnError(output.WriteToFile(report, renderOutput), "Error writing file")
		fmt.Printf("Wrote report to %s\n", renderOutput)
		printRenderSummary(report, lines)

	default:
		// The plain lines themselves, ready to paste into a document.
		data, err := output.FormatReport(report, output.FormatText)
		exitOnError(err, "Error formatting output")
		fmt.Print(string(data))
	}
}

// validateRenderFlags checks for invalid flag combinations.
func validateRenderFlags() error {
	if renderFormat != "" && renderOutput != "" {
		return fmt.Errorf("--format and --output are mutually exclusive; " +
			"use --format for stdout output, or --output for file output")
	}

	if renderFormat != "" && !output.IsValidFormat(renderFormat) {
		return fmt.Errorf("invalid format %q; valid formats: %s",
			renderFormat, strings.Join(output.ValidFormats(), ", "))
	}

	return nil
}

// printRenderSummary prints the one-line outcome tally that accompanies
// a file report.
func printRenderSummary(report *output.Report, lines []string) {
	s := report.Summary
	fmt.Printf("\nSummary: %d labeled | %d fallback | %d passed through | %d dropped\n",
		s.Labeled(), s.Fallback, s.Verbatim+s.Skipped, s.Dropped)

	unique := helpers.CountUniqueStrings(lines)
	if dup := s.Total - unique; dup > 0 {
		fmt.Printf("Classified %d unique URL(s), %d duplicate input line(s)\n", unique, dup)
	}
}
