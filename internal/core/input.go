package core

import "strings"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // A, Left arrow - shift piece left
	ActionMoveRight        // D, Right arrow - shift piece right
	ActionSoftDrop         // S, Down arrow - one gravity step
	ActionRotate           // Space, Up arrow - rotate clockwise
	ActionPause            // P - pause/unpause game
	ActionRestart          // R - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionRotate:
		return "Rotate"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions queued since the previous frame, in arrival order.
// Repeated keystrokes are kept so each one is applied as a separate command.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set queues an action for this frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was queued this frame.
func (f InputFrame) Has(a Action) bool {
	for _, queued := range f.actions {
		if queued == a {
			return true
		}
	}
	return false
}

// Actions returns the queued actions in order.
func (f InputFrame) Actions() []Action {
	return f.actions
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.actions)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{actions: make([]Action, len(f.actions))}
	copy(clone.actions, f.actions)
	return clone
}

// KeyMap translates normalized key names to actions.
// Key names follow Bubble Tea's conventions: single characters, "left",
// "right", "up", "down", "esc", "enter", "ctrl+c" and "space".
type KeyMap struct {
	bindings map[string]Action
	keys     map[Action][]string
}

// NewKeyMap builds a key map from per-action key lists.
// A key bound to several actions keeps the last binding seen.
func NewKeyMap(bindings map[Action][]string) KeyMap {
	km := KeyMap{
		bindings: make(map[string]Action),
		keys:     make(map[Action][]string),
	}
	for a := ActionMoveLeft; a <= ActionQuit; a++ {
		for _, k := range bindings[a] {
			name := NormalizeKey(k)
			if name == "" {
				continue
			}
			km.bindings[name] = a
			km.keys[a] = append(km.keys[a], name)
		}
	}
	return km
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(DefaultBindings())
}

// DefaultBindings returns the standard per-action key lists.
func DefaultBindings() map[Action][]string {
	return map[Action][]string{
		ActionMoveLeft:  {"a", "left"},
		ActionMoveRight: {"d", "right"},
		ActionSoftDrop:  {"s", "down"},
		ActionRotate:    {"space", "up"},
		ActionPause:     {"p"},
		ActionRestart:   {"r"},
		ActionQuit:      {"q", "ctrl+c"},
	}
}

// Lookup returns the action bound to key, or ActionNone.
func (km KeyMap) Lookup(key string) Action {
	if km.bindings == nil {
		return ActionNone
	}
	return km.bindings[NormalizeKey(key)]
}

// Keys returns the key names bound to an action, normalized.
func (km KeyMap) Keys(a Action) []string {
	return km.keys[a]
}

// NormalizeKey lowercases named keys and spells the space bar "space".
// Single printable characters keep their case.
func NormalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	if len([]rune(key)) == 1 {
		return key
	}
	return strings.ToLower(strings.TrimSpace(key))
}
