package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdlink/mdlink/internal/rewrite"
	"github.com/mdlink/mdlink/internal/stats"
)

// Flag variables for the doc command.
var (
	docWrite     bool
	docExclude   []string
	docShowStats bool

	// Skip flags, merged on top of the configured ignore rules.
	docSkipDomains  []string
	docSkipPatterns []string
	docSkipRegex    []string
)

// docCmd represents the doc command.
var docCmd = &cobra.Command{
	Use:   "doc [path...]",
	Short: "Label bare links inside Markdown documents",
	Long: `Scan Markdown files for bare links and rewrite them in place.

Bare links are plain URLs and <url> autolinks; links that already have
a [text](url) label are left alone, as are URLs inside code spans and
code blocks. Every bare link a recognizer or the user script can label
is replaced with [label](url); everything else stays exactly as
written.

If no path is provided, scans the current directory. Files with .md,
.mdx, and .markdown extensions are scanned; hidden directories are
skipped.

By default the command only previews the changes.
Use --write to apply them.

Examples:
  mdlink doc                        # Preview changes in the current directory
  mdlink doc ./docs README.md       # Preview specific paths
  mdlink doc --write                # Apply the changes
  mdlink doc --exclude="vendor/**"  # Skip files by glob
  mdlink doc --profile=work --write
  mdlink doc --stats                # Show performance statistics`,
	Run: runDoc,
}

func init() {
	rootCmd.AddCommand(docCmd)

	// Mode flags
	docCmd.Flags().BoolVarP(&docWrite, "write", "w", false,
		"Apply the changes instead of previewing them")
	docCmd.Flags().StringSliceVar(&docExclude, "exclude", nil,
		"Glob patterns for files to skip, relative to each scanned path (can be repeated)")

	// Stats flag
	docCmd.Flags().BoolVar(&docShowStats, "stats", false,
		"Show detailed performance statistics")

	// Skip options
	docCmd.Flags().StringSliceVar(&docSkipDomains, "skip-domain", nil,
		"Domains to leave unlabeled, includes subdomains (can be repeated or comma-separated)")
	docCmd.Flags().StringSliceVar(&docSkipPatterns, "skip-pattern", nil,
		"Glob patterns to leave unlabeled (can be repeated)")
	docCmd.Flags().StringSliceVar(&docSkipRegex, "skip-regex", nil,
		"Regex patterns to leave unlabeled (can be repeated)")
}

// runDoc is the main entry point for the doc command. It orchestrates
// the scan, plan, and apply phases.
func runDoc(_ *cobra.Command, args []string) {
	perf := stats.New()

	cfg, err := loadConfig()
	exitOnError(err, "Error loading config")

	engine, err := loadScript()
	exitOnError(err, "Error loading script")

	renderer, _, err := buildRenderer(cfg, engine, profileName, SkipFlags{
		Domains:  docSkipDomains,
		Patterns: docSkipPatterns,
		Regex:    docSkipRegex,
	})
	exitOnError(err, "Error building renderer")

	// Phase 1: Scan for Markdown files
	perf.StartScan()
	files, err := findDocFiles(getPathArgs(args))
	exitOnError(err, "Error scanning for files")
	perf.EndScan(len(files))

	fmt.Printf("Found %d Markdown file(s)\n", len(files))
	if len(files) == 0 {
		if docShowStats {
			fmt.Print(perf.String())
		}
		return
	}

	// Phase 2: Extract bare links and plan the labeling
	perf.StartExtract()
	rw := rewrite.New(renderer)
	changes, err := rw.Plan(files)
	exitOnError(err, "Error planning changes")

	scanned, planned := 0, 0
	for _, fc := range changes {
		scanned += fc.Scanned
		planned += len(fc.Changes)
	}
	perf.EndExtract(scanned)

	// Phase 3: Preview, and apply with --write
	perf.StartRender()

	fmt.Println()
	fmt.Print(rewrite.Preview(changes))

	if !docWrite {
		perf.EndRender(planned, 0)
		if planned > 0 {
			fmt.Println("Preview only: no files were modified. Re-run with --write to apply.")
		}
		if docShowStats {
			fmt.Print(perf.String())
		}
		return
	}

	results := rw.ApplyAll(changes)

	applied, filesModified := 0, 0
	for _, r := range results {
		applied += r.Applied
		if r.Applied > 0 {
			filesModified++
		}
	}
	perf.EndRender(applied, filesModified)

	fmt.Print(rewrite.Summary(results))
	if docShowStats {
		fmt.Print(perf.String())
	}
}

// findDocFiles collects Markdown files under every given path. Paths
// are scanned in argument order and the lists concatenated, so output
// follows the order the user asked for.
func findDocFiles(paths []string) ([]string, error) {
	var files []string
	for _, root := range paths {
		found, err := rewrite.FindMarkdownFiles(rewrite.ScanOptions{
			Root:    root,
			Exclude: docExclude,
		})
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", root, err)
		}
		files = append(files, found...)
	}
	return files, nil
}
