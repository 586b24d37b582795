package rewrite

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// BareLink is an unlabeled URL occurrence in a Markdown document. Start and
// End delimit the bytes a labeled link replaces, including the angle
// brackets when the link is written as <url>.
type BareLink struct {
	URL       string // the URL exactly as written
	Start     int
	End       int
	Line      int  // 1-based line number of Start
	Bracketed bool // written as <url>
}

// ExtractBareLinks returns the http(s) autolinks in a Markdown document:
// explicit <url> autolinks and bare URLs the linkify rule picks up. URLs
// inside code spans, code blocks, and existing [text](url) links are not
// returned.
func ExtractBareLinks(source []byte) []BareLink {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify, // Auto-link bare URLs
		),
	)

	doc := md.Parser().Parse(text.NewReader(source))

	e := &extractor{
		source: source,
		lines:  buildLineIndex(source),
		links:  make([]BareLink, 0, 16),
	}
	_ = ast.Walk(doc, e.walk)

	return e.links
}

// extractor walks the AST and collects autolink spans.
type extractor struct {
	source []byte
	lines  []int // byte offset for the start of each line
	links  []BareLink

	// searchFrom is the next byte offset an autolink occurrence may start
	// at. It advances past every text segment already visited, so an equal
	// URL earlier in the document (inside a code span, say) cannot capture
	// the span.
	searchFrom int
}

// walk is the AST walker function.
func (e *extractor) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		// Inline destinations are not covered by any text segment; step
		// over them once the link's children have been visited.
		switch node := n.(type) {
		case *ast.Link:
			e.skipDestination(node.Destination)
		case *ast.Image:
			e.skipDestination(node.Destination)
		}
		return ast.WalkContinue, nil
	}

	switch n.Kind() {
	case ast.KindCodeBlock, ast.KindFencedCodeBlock, ast.KindHTMLBlock:
		e.skipSegments(n.Lines())
		return ast.WalkSkipChildren, nil
	}

	if n.Type() == ast.TypeBlock {
		if lines := n.Lines(); lines != nil && lines.Len() > 0 {
			e.advance(lines.At(0).Start)
		}
		return ast.WalkContinue, nil
	}

	switch node := n.(type) {
	case *ast.Text:
		e.advance(node.Segment.Stop)
	case *ast.RawHTML:
		e.skipSegments(node.Segments)
	case *ast.AutoLink:
		e.handleAutoLink(node)
	}

	return ast.WalkContinue, nil
}

// handleAutoLink locates the autolink's occurrence in the source and
// records its span.
func (e *extractor) handleAutoLink(node *ast.AutoLink) {
	url := string(node.URL(e.source))
	if !isHTTPURL(url) {
		return
	}

	// Protocol-less linkified text (www.example.com) gets a scheme bolted
	// on by the AST node; it has no faithful occurrence to rewrite.
	idx := bytes.Index(e.source[e.searchFrom:], []byte(url))
	if idx < 0 {
		return
	}

	link := BareLink{
		URL:   url,
		Start: e.searchFrom + idx,
		End:   e.searchFrom + idx + len(url),
	}
	if link.Start > 0 && e.source[link.Start-1] == '<' &&
		link.End < len(e.source) && e.source[link.End] == '>' {
		link.Start--
		link.End++
		link.Bracketed = true
	}
	link.Line = e.offsetToLine(link.Start)

	e.links = append(e.links, link)
	e.advance(link.End)
}

// skipDestination moves the search cursor past a `](destination` sequence.
func (e *extractor) skipDestination(dest []byte) {
	rest := e.source[e.searchFrom:]
	if !bytes.HasPrefix(rest, []byte("](")) {
		return
	}
	if bytes.HasPrefix(rest[2:], dest) {
		e.advance(e.searchFrom + 2 + len(dest))
	}
}

// skipSegments advances the search cursor past a node's raw segments.
func (e *extractor) skipSegments(segments *text.Segments) {
	if segments != nil && segments.Len() > 0 {
		e.advance(segments.At(segments.Len() - 1).Stop)
	}
}

func (e *extractor) advance(offset int) {
	if offset > e.searchFrom {
		e.searchFrom = offset
	}
}

// offsetToLine converts a byte offset to a 1-based line number.
func (e *extractor) offsetToLine(offset int) int {
	line := 1
	for i, lineStart := range e.lines {
		if offset < lineStart {
			return i
		}
		line = i + 1
	}
	return line
}

// buildLineIndex returns the byte offset of the start of each line.
func buildLineIndex(content []byte) []int {
	index := make([]int, 0, 64)
	index = append(index, 0)
	for i, b := range content {
		if b == '\n' && i+1 < len(content) {
			index = append(index, i+1)
		}
	}
	return index
}

// isHTTPURL reports whether s is an absolute http or https URL.
func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
