package tcellui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/platform/session"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	sim.SetSize(w, h)
	t.Cleanup(sim.Fini)
	return sim
}

func newSession(cfg core.RuntimeConfig) (*session.Session, *tetris.Game) {
	game := tetris.New(tetris.WithPickerFactory(func(int64) engine.Picker {
		return engine.NewSequencePicker(engine.ShapeAt(0))
	}))
	s := session.New("tcell", game, registry.RunOptions{Config: cfg, Keys: core.DefaultKeyMap()})
	s.Start()
	return s, game
}

func row(sim tcell.SimulationScreen, y int) string {
	cells, w, _ := sim.GetContents()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected string
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), "a"},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), "space"},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), "left"},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), "down"},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc"},
		{"ctrl+c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), "ctrl+c"},
		{"unmapped", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := KeyName(tc.ev); got != tc.expected {
				t.Errorf("KeyName() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestStyle(t *testing.T) {
	if Style(core.ColorYellow, false) != tcell.StyleDefault {
		t.Error("monochrome style should be the default style")
	}
	if Style(core.ColorDefault, true) != tcell.StyleDefault {
		t.Error("default color should be the default style")
	}
	expected := tcell.StyleDefault.Foreground(tcell.PaletteColor(208))
	if Style(core.ColorOrange, true) != expected {
		t.Error("orange should map to palette color 208")
	}
}

func TestLoopQuitKey(t *testing.T) {
	sim := newSimScreen(t, 40, 30)
	s, _ := newSession(core.DefaultConfig())

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if reason := loop(ctx, sim, s, true); reason != "quit" {
		t.Errorf("loop() = %q, expected quit", reason)
	}
}

func TestLoopAppliesKeysAndDraws(t *testing.T) {
	sim := newSimScreen(t, 40, 30)
	cfg := core.RuntimeConfig{BoardW: 10, BoardH: 20, RenderEvery: 100, GravityEvery: 1000000}
	s, game := newSession(cfg)

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyLeft, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()
	if reason := loop(ctx, sim, s, false); reason != "signal" {
		t.Errorf("loop() = %q, expected signal", reason)
	}

	if x := game.Snapshot().PieceX; x != 2 {
		t.Errorf("PieceX = %d, expected 2", x)
	}
	if hud := row(sim, 0); !strings.Contains(hud, "[LEVEL: 1 | SCORE: 0 | LINES: 0]") {
		t.Errorf("HUD row = %q", hud)
	}
}

func TestFrontendRegistered(t *testing.T) {
	f, err := registry.Create("tcell")
	if err != nil {
		t.Fatal(err)
	}
	if f.Name() != "tcell" {
		t.Errorf("Name() = %q", f.Name())
	}
}
