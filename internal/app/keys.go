package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/henri123lemoine/etch/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Grid
	Toggle key.Binding
	Reset  key.Binding

	// Prompt
	Confirm key.Binding
	Cancel  key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d/click", "toggle draw"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "n"),
			key.WithHelp("r", "new grid"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Toggle != "" {
		km.Toggle = key.NewBinding(
			key.WithKeys(config.ParseKeys(cfg.Toggle)...),
			key.WithHelp(cfg.Toggle+"/click", "toggle draw"),
		)
	}
	if cfg.Reset != "" {
		km.Reset = key.NewBinding(
			key.WithKeys(config.ParseKeys(cfg.Reset)...),
			key.WithHelp(cfg.Reset, "new grid"),
		)
	}
	if cfg.Help != "" {
		km.Help = key.NewBinding(
			key.WithKeys(config.ParseKeys(cfg.Help)...),
			key.WithHelp(cfg.Help, "more"),
		)
	}
	if cfg.Quit != "" {
		km.Quit = key.NewBinding(
			key.WithKeys(config.ParseKeys(cfg.Quit)...),
			key.WithHelp(cfg.Quit, "quit"),
		)
	}

	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.Confirm, k.Cancel},
		{k.Help, k.Quit},
	}
}
