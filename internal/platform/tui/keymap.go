package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// PlayKeyMap defines the host-level key bindings of the play screen.
// Every other key is forwarded to the simulation as game input.
type PlayKeyMap struct {
	Quit         key.Binding
	AddPlayer    key.Binding
	RemovePlayer key.Binding
	Reload       key.Binding
	Help         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PlayKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.AddPlayer, k.RemovePlayer, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PlayKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.AddPlayer, k.RemovePlayer, k.Reload},
		{k.Help, k.Quit},
	}
}

// DefaultPlayKeyMap returns default key bindings.
func DefaultPlayKeyMap() PlayKeyMap {
	return PlayKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
		AddPlayer: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "add player"),
		),
		RemovePlayer: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "remove player"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload config"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
	}
}

// GameKey translates a key message into the key string the simulation
// matches against player bindings and the start key. Only single printable
// keys are forwarded; ok is false for everything else.
func GameKey(msg tea.KeyMsg) (k string, ok bool) {
	switch msg.Type {
	case tea.KeySpace:
		return " ", true
	case tea.KeyRunes:
		if len(msg.Runes) != 1 || msg.Alt {
			return "", false
		}
		return string(msg.Runes), true
	}
	return "", false
}
