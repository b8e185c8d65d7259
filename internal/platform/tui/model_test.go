package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/platform/session"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, cfg core.RuntimeConfig) (Model, *tetris.Game) {
	t.Helper()
	game := tetris.New(tetris.WithPickerFactory(func(int64) engine.Picker {
		return engine.NewSequencePicker(engine.ShapeAt(0))
	}))
	s := session.New("tui", game, registry.RunOptions{Config: cfg, Keys: core.DefaultKeyMap()})
	s.Start()
	return NewModel(s, cfg, false), game
}

func TestKeyMapAction(t *testing.T) {
	km := NewKeyMap(core.DefaultKeyMap())

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"a", runes("a"), core.ActionMoveLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMoveLeft},
		{"d", runes("d"), core.ActionMoveRight},
		{"s", runes("s"), core.ActionSoftDrop},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionSoftDrop},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRotate},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionRotate},
		{"p", runes("p"), core.ActionPause},
		{"r", runes("r"), core.ActionRestart},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runes("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(core.DefaultKeyMap())

	if got := km.Rotate.Help().Key; got != "space/↑" {
		t.Errorf("rotate help key = %q, expected %q", got, "space/↑")
	}
	if len(km.ShortHelp()) != 6 {
		t.Errorf("ShortHelp() has %d bindings, expected 6", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp() has %d groups, expected 2", len(km.FullHelp()))
	}
}

func TestModelKeysAndTicks(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 30, BoardW: 10, BoardH: 20, RenderEvery: 1, GravityEvery: 1000}
	m, game := newTestModel(t, cfg)

	next, _ := m.Update(runes("a"))
	next, _ = next.Update(runes("a"))
	next, cmd := next.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}

	if x := game.Snapshot().PieceX; x != 2 {
		t.Errorf("PieceX = %d, expected 2", x)
	}

	_, cmd = next.Update(runes("q"))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
}

func TestModelHoldsGameWhenTooSmall(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 30, BoardW: 10, BoardH: 20, RenderEvery: 1, GravityEvery: 1}
	m, game := newTestModel(t, cfg)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	next, _ = next.Update(TickMsg{})
	if y := game.Snapshot().PieceY; y != 0 {
		t.Errorf("PieceY = %d, game should not advance in a small window", y)
	}
	if !strings.Contains(next.View(), "Window too small") {
		t.Error("small window should show a resize hint")
	}

	next, _ = next.Update(tea.WindowSizeMsg{Width: 40, Height: 30})
	next.Update(TickMsg{})
	if y := game.Snapshot().PieceY; y != 1 {
		t.Errorf("PieceY = %d after resize, expected 1", y)
	}
}

func TestModelView(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 40, ScreenH: 30, BoardW: 10, BoardH: 20, RenderEvery: 1, GravityEvery: 1000}
	m, _ := newTestModel(t, cfg)

	view := m.View()
	if !strings.Contains(view, "[LEVEL: 1 | SCORE: 0 | LINES: 0]") {
		t.Errorf("view missing HUD:\n%s", view)
	}
	if !strings.Contains(view, "rotate") {
		t.Errorf("view missing help line:\n%s", view)
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, '#', core.ColorYellow)
	s.DrawText(1, 1, "ok")

	if got := RenderScreen(s, false); got != "#   \n ok " {
		t.Errorf("RenderScreen(plain) = %q", got)
	}

	colored := RenderScreen(s, true)
	if !strings.Contains(colored, "#") || !strings.Contains(colored, "ok") {
		t.Errorf("RenderScreen(color) lost content: %q", colored)
	}
}

func TestFrontendRegistered(t *testing.T) {
	if !registry.Exists("tui") {
		t.Fatal("tui frontend not registered")
	}
	f, err := registry.Create("tui")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "tui" || f.Description() == "" {
		t.Errorf("Name/Description = %q/%q", f.Name(), f.Description())
	}
}
