package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the Bubble Tea key bindings built from the configured key map.
// It also feeds the help line.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Drop    key.Binding
	Rotate  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// NewKeyMap creates bindings for every action in km.
func NewKeyMap(km core.KeyMap) KeyMap {
	return KeyMap{
		Left:    binding(km, core.ActionMoveLeft, "left"),
		Right:   binding(km, core.ActionMoveRight, "right"),
		Drop:    binding(km, core.ActionSoftDrop, "drop"),
		Rotate:  binding(km, core.ActionRotate, "rotate"),
		Pause:   binding(km, core.ActionPause, "pause"),
		Restart: binding(km, core.ActionRestart, "restart"),
		Quit:    binding(km, core.ActionQuit, "quit"),
	}
}

// binding converts normalized key names to Bubble Tea's spelling.
func binding(km core.KeyMap, a core.Action, desc string) key.Binding {
	names := km.Keys(a)
	keys := make([]string, 0, len(names))
	labels := make([]string, 0, len(names))
	for _, n := range names {
		if n == "space" {
			keys = append(keys, " ")
		} else {
			keys = append(keys, n)
		}
		labels = append(labels, keyLabel(n))
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

func keyLabel(name string) string {
	switch name {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	}
	return name
}

// Action translates a key message to a game action.
// Quit is checked first so it cannot be shadowed by a game binding.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Drop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp returns the bindings shown in the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Drop, k.Rotate, k.Pause, k.Quit}
}

// FullHelp returns all bindings grouped for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Drop, k.Rotate},
		{k.Pause, k.Restart, k.Quit},
	}
}
