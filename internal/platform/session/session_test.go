package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

func newSession(t *testing.T, cfg core.RuntimeConfig, shapes ...engine.Shape) (*Session, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	game := tetris.New(tetris.WithPickerFactory(func(int64) engine.Picker {
		return engine.NewSequencePicker(shapes...)
	}))
	s := New("test", game, registry.RunOptions{
		Config: cfg,
		Keys:   core.DefaultKeyMap(),
		Logger: logging.New(&buf, true),
	})
	s.Start()
	return s, &buf
}

func TestKeyQueuesActions(t *testing.T) {
	cfg := core.RuntimeConfig{BoardW: 10, BoardH: 20, RenderEvery: 1, GravityEvery: 1000}
	s, _ := newSession(t, cfg, engine.ShapeAt(0))

	for _, k := range []string{"a", "left", "x", " "} {
		if s.Key(k) {
			t.Errorf("Key(%q) reported quit", k)
		}
	}
	if s.Pending() != 3 {
		t.Errorf("Pending() = %d, expected 3 (unknown key ignored)", s.Pending())
	}

	s.Tick()
	if s.Pending() != 0 {
		t.Errorf("Pending() after Tick = %d, expected 0", s.Pending())
	}
}

func TestQuitKeys(t *testing.T) {
	s, _ := newSession(t, core.DefaultConfig(), engine.ShapeAt(0))

	for _, k := range []string{"q", "ctrl+c"} {
		if !s.Key(k) {
			t.Errorf("Key(%q) should quit", k)
		}
	}
	if s.Pending() != 0 {
		t.Error("quit must not be queued")
	}
}

func TestRestartOnlyQueuedAfterGameOver(t *testing.T) {
	cfg := core.RuntimeConfig{BoardW: 4, BoardH: 4, RenderEvery: 1, GravityEvery: 1}
	s, buf := newSession(t, cfg, engine.ShapeAt(0))

	s.Key("r")
	if s.Pending() != 0 {
		t.Error("restart should be dropped while playing")
	}

	for i := 0; i < 4; i++ {
		s.Tick()
	}
	if !s.State().GameOver {
		t.Fatal("expected game over")
	}
	if !strings.Contains(buf.String(), "game over") {
		t.Errorf("game over not logged: %q", buf.String())
	}

	s.Key("r")
	res := s.Tick()
	if res.State.GameOver {
		t.Error("restart did not start a new game")
	}
	if !strings.Contains(buf.String(), "game restarted") {
		t.Errorf("restart not logged: %q", buf.String())
	}
}

func TestTickLogsLineClears(t *testing.T) {
	cfg := core.RuntimeConfig{BoardW: 4, BoardH: 4, RenderEvery: 1, GravityEvery: 1000}
	s, buf := newSession(t, cfg, engine.ShapeAt(2))

	for i := 0; i < 4; i++ {
		s.Key("s")
		s.Tick()
	}

	if s.State().Score != 100 {
		t.Errorf("Score = %d, expected 100", s.State().Score)
	}
	if !strings.Contains(buf.String(), "lines cleared") {
		t.Errorf("line clear not logged: %q", buf.String())
	}
}

func TestFitsAndEnd(t *testing.T) {
	s, buf := newSession(t, core.DefaultConfig(), engine.ShapeAt(0))

	if !s.Fits(22, 23) {
		t.Error("22x23 should fit a 10x20 board")
	}
	if s.Fits(21, 23) || s.Fits(22, 22) {
		t.Error("smaller screens should not fit")
	}
	if s.Interval() <= 0 {
		t.Errorf("Interval() = %v", s.Interval())
	}

	s.End("quit")
	out := buf.String()
	if !strings.Contains(out, "session started") || !strings.Contains(out, "session ended") {
		t.Errorf("session boundaries not logged: %q", out)
	}
	if !strings.Contains(out, "reason=quit") {
		t.Errorf("end reason missing: %q", out)
	}
}
