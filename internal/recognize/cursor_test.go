package recognize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCursor_Next(t *testing.T) {
	t.Parallel()

	c := newCursor(parseURL(t, "https://example.com/a/b/c"))

	seg, ok := c.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", seg)

	seg, ok = c.Next()
	assert.True(t, ok)
	assert.Equal(t, "b", seg)

	seg, ok = c.Next()
	assert.True(t, ok)
	assert.Equal(t, "c", seg)

	_, ok = c.Next()
	assert.False(t, ok)
	assert.True(t, c.Done())
}

func TestCursor_Next2(t *testing.T) {
	t.Parallel()

	t.Run("ConsumesPairs", func(t *testing.T) {
		t.Parallel()
		c := newCursor(parseURL(t, "https://example.com/a/b/c/d"))

		a, b, ok := c.Next2()
		assert.True(t, ok)
		assert.Equal(t, "a", a)
		assert.Equal(t, "b", b)

		a, b, ok = c.Next2()
		assert.True(t, ok)
		assert.Equal(t, "c", a)
		assert.Equal(t, "d", b)
		assert.True(t, c.Done())
	})

	t.Run("LeavesPositionOnShortInput", func(t *testing.T) {
		t.Parallel()
		c := newCursor(parseURL(t, "https://example.com/only"))

		_, _, ok := c.Next2()
		assert.False(t, ok)

		seg, ok := c.Next()
		assert.True(t, ok)
		assert.Equal(t, "only", seg)
	})
}

func TestCursor_CopyIsIndependent(t *testing.T) {
	t.Parallel()

	c := newCursor(parseURL(t, "https://example.com/a/b/c"))

	probe := c
	probe.Next()
	probe.Next()

	seg, ok := c.Next()
	assert.True(t, ok)
	assert.Equal(t, "a", seg)
	assert.Equal(t, []string{"b", "c"}, c.Rest())
}

func TestCursor_PathShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		url      string
		segments []string
	}{
		{"Root", "https://example.com", []string{""}},
		{"RootSlash", "https://example.com/", []string{""}},
		{"TrailingSlash", "https://example.com/a/", []string{"a", ""}},
		{"EscapesPreserved", "https://example.com/a%20b/c", []string{"a%20b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := newCursor(parseURL(t, tt.url))
			assert.Equal(t, tt.segments, c.Rest())
		})
	}
}

func TestCursor_DoneOrTrailingSlash(t *testing.T) {
	t.Parallel()

	c := newCursor(parseURL(t, "https://example.com/a/"))
	c.Next()
	assert.True(t, c.doneOrTrailingSlash())
	assert.False(t, c.Done())

	c = newCursor(parseURL(t, "https://example.com/a/b"))
	c.Next()
	assert.False(t, c.doneOrTrailingSlash())
}
