package rewrite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// markdownExts are the file extensions doc mode rewrites.
var markdownExts = map[string]bool{
	".md":       true,
	".mdx":      true,
	".markdown": true,
}

// ScanOptions controls Markdown file discovery.
type ScanOptions struct {
	// Root is the directory (or single file) to scan.
	Root string

	// Exclude patterns (glob) are matched against slash-separated paths
	// relative to Root. Matching files are dropped.
	Exclude []string
}

// FindMarkdownFiles walks a directory tree and returns all Markdown file
// paths. Hidden directories (starting with .) like .git are skipped.
func FindMarkdownFiles(opts ScanOptions) ([]string, error) {
	excludes, err := compileGlobs(opts.Exclude)
	if err != nil {
		return nil, err
	}

	var files []string

	err = filepath.WalkDir(opts.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		// Skip hidden directories (like .git, .github, etc.)
		if d.IsDir() && strings.HasPrefix(d.Name(), ".") && path != opts.Root {
			return filepath.SkipDir
		}

		if d.IsDir() {
			return nil
		}

		if !markdownExts[strings.ToLower(filepath.Ext(d.Name()))] {
			return nil
		}

		// Match excludes against the relative path with forward slashes
		relPath, relErr := filepath.Rel(opts.Root, path)
		if relErr != nil {
			relPath = path
		}
		if matchesAnyGlob(filepath.ToSlash(relPath), excludes) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// compileGlobs compiles exclude patterns, failing on the first invalid one.
func compileGlobs(patterns []string) ([]glob.Glob, error) {
	compiled := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("compiling exclude pattern %q: %w", p, err)
		}
		compiled = append(compiled, g)
	}
	return compiled, nil
}

// matchesAnyGlob checks if a path matches any of the compiled glob patterns.
func matchesAnyGlob(path string, patterns []glob.Glob) bool {
	for _, g := range patterns {
		if g.Match(path) {
			return true
		}
	}
	return false
}
