package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tower-time/internal/core"
	"github.com/vovakirdan/tower-time/internal/games/tower"
)

// KeyMap defines the key bindings for the game screen.
// Bindings that make no sense in the current mode are disabled, which both
// stops them from matching and hides them from the help bar.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Climb      key.Binding
	Descend    key.Binding
	Start      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Climb: key.NewBinding(
			key.WithKeys("up", " "),
			key.WithHelp("↑/space", "climb"),
		),
		Descend: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "descend"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Climb, k.Descend, k.Left, k.Right, k.Start, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Climb, k.Descend, k.Left, k.Right},
		{k.Start, k.Restart, k.Screenshot, k.Quit},
	}
}

// SetMode enables the bindings that apply to the given game mode.
func (k *KeyMap) SetMode(mode tower.Mode) {
	playing := mode == tower.ModePlaying
	k.Left.SetEnabled(playing)
	k.Right.SetEnabled(playing)
	k.Climb.SetEnabled(playing)
	k.Descend.SetEnabled(playing)
	k.Start.SetEnabled(!playing)
	k.Restart.SetEnabled(mode == tower.ModeEnded)
}

// Action translates a key message to a game action.
// Keys outside the bindings map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Climb):
		if msg.String() == " " {
			return core.ActionJump
		}
		return core.ActionUp
	case key.Matches(msg, k.Descend):
		return core.ActionDown
	case key.Matches(msg, k.Start):
		return core.ActionConfirm
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
