package ui

import "github.com/mdlink/mdlink/internal/render"

// RenderedMsg is sent when a submitted line has been rendered. The
// entry joins the history.
type RenderedMsg struct {
	Raw     string
	Profile string
	Result  render.Result
}

// PreviewedMsg is sent when the text currently in the input has been
// rendered for the live preview. It carries the exact text that was
// rendered so stale previews can be discarded after fast typing.
type PreviewedMsg struct {
	Raw     string
	Profile string
	Result  render.Result
}
