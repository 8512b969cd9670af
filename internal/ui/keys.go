// Package ui handles the terminal user interface for CodeQuest.
// This file defines the key bindings used by the plan viewer.
package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings for the plan viewer screen.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Expand key.Binding
	Quit   key.Binding
	Help   key.Binding
}

// NewKeyMap builds the default KeyMap, honoring the expand/quit keys
// configured in config.KeybindsConfig when non-empty.
func NewKeyMap(expandKey, quitKey string) *KeyMap {
	if expandKey == "" {
		expandKey = "enter"
	}
	if quitKey == "" {
		quitKey = "q"
	}

	return &KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys(expandKey),
			key.WithHelp(expandKey, "expand/collapse"),
		),
		Quit: key.NewBinding(
			key.WithKeys(quitKey, "ctrl+c"),
			key.WithHelp(quitKey, "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp returns the key bindings for a compact help line. The plan
// viewer's own footer is rendered separately by the screens package.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Quit, k.Help}
}

// FullHelp returns the key bindings grouped for the full help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Expand, k.Quit, k.Help},
	}
}
