package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the dashboard.
type KeyMap struct {
	Quit   key.Binding
	Rerun  key.Binding
	Pause  key.Binding
	Toggle key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
		Rerun: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rerun"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "pause sampling"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "environment"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Rerun, k.Pause, k.Toggle}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
