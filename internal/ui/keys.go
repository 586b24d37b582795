package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application. Plain characters
// go to the URL input, so every binding here is a control key.
type KeyMap struct {
	Submit      key.Binding
	Profile     key.Binding
	HistoryPrev key.Binding
	HistoryNext key.Binding
	Clear       key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "render"),
		),
		Profile: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle profile"),
		),
		HistoryPrev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "older"),
		),
		HistoryNext: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "newer"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
// Implements help.KeyMap interface.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Profile, k.HistoryPrev, k.Clear, k.Quit}
}

// FullHelp returns key bindings for the full help view.
// Implements help.KeyMap interface.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Profile},
		{k.HistoryPrev, k.HistoryNext},
		{k.Clear, k.Quit},
	}
}
