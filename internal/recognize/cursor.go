package recognize

import (
	"net/url"
	"strings"
)

// Cursor is a read position over a URL's path segments. The segment
// slice is shared and never mutated; the position is part of the value,
// so assigning a Cursor clones it. Recognizers probe sub-patterns on a
// copy and keep their own position when the probe fails.
type Cursor struct {
	segments []string
	index    int
}

// newCursor splits the URL's path into segments the way the original
// serialization spells them (percent-escapes preserved). The root path
// yields a single empty segment, and a trailing slash yields a trailing
// empty segment.
func newCursor(u *url.URL) Cursor {
	p := strings.TrimPrefix(u.EscapedPath(), "/")
	return Cursor{segments: strings.Split(p, "/")}
}

// Next consumes and returns the next segment.
func (c *Cursor) Next() (string, bool) {
	if c.index >= len(c.segments) {
		return "", false
	}
	seg := c.segments[c.index]
	c.index++
	return seg, true
}

// Next2 consumes and returns the next two segments. When fewer than two
// remain it consumes nothing.
func (c *Cursor) Next2() (string, string, bool) {
	if c.index+2 > len(c.segments) {
		return "", "", false
	}
	a, b := c.segments[c.index], c.segments[c.index+1]
	c.index += 2
	return a, b, true
}

// Rest returns the remaining segments without consuming them.
func (c Cursor) Rest() []string {
	return c.segments[c.index:]
}

// Done reports whether every segment has been consumed.
func (c Cursor) Done() bool {
	return c.index >= len(c.segments)
}

// doneOrTrailingSlash reports whether the cursor is exhausted or holds
// only the empty segment left behind by a trailing slash.
func (c Cursor) doneOrTrailingSlash() bool {
	rest := c.Rest()
	return len(rest) == 0 || (len(rest) == 1 && rest[0] == "")
}
