package prompt

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the question flow.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Yes    key.Binding
	No     key.Binding
	Submit key.Binding
	Cancel key.Binding
}

// DefaultKeyMap uses arrow keys with vim-style j/k for choice lists and
// y/n for confirmations.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up", "shift+tab"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down", "tab"),
		key.WithHelp("j/↓", "down"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}
