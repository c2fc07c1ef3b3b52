package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keys a DropdownInput reacts to. Every other key is
// handed to the embedded text input.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the default dropdown bindings.
// j/k are deliberately absent: they are ordinary text.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/↓", "Move through suggestions"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↑/↓", "Move through suggestions"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "Select"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Close suggestions"),
		),
	}
}

// ShortHelp returns the bindings shown in a one-line help bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Enter, k.Escape}
}

// FullHelp returns all bindings grouped for an expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Enter, k.Escape}}
}
