// Package session holds the frontend-independent half of a game loop:
// key translation, the per-frame input queue, stepping and session logging.
// Frontends own the terminal and the clock and call into a Session.
package session

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Session drives one game for a frontend. It is not safe for concurrent use;
// the frontend's loop goroutine owns it.
type Session struct {
	game     registry.Game
	keys     core.KeyMap
	logger   *log.Logger
	cfg      core.RuntimeConfig
	frontend string

	inputFrame core.InputFrame
	state      core.GameState
	started    time.Time
	frames     uint64
}

// New creates a session for game using the frontend's run options.
func New(frontend string, game registry.Game, opts registry.RunOptions) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		game:       game,
		keys:       opts.Keys,
		logger:     logger.With("frontend", frontend),
		cfg:        opts.Config,
		frontend:   frontend,
		inputFrame: core.NewInputFrame(),
	}
}

// Start resets the game and records the session start.
func (s *Session) Start() {
	if s.cfg.Seed == 0 {
		s.cfg.Seed = time.Now().UnixNano()
	}
	s.game.Reset(s.cfg)
	s.state = s.game.State()
	s.started = time.Now()
	s.logger.Info("session started",
		"board", [2]int{s.cfg.BoardW, s.cfg.BoardH},
		"seed", s.cfg.Seed,
	)
}

// Key translates a key name and queues its action.
// Returns true when the key asks to quit.
func (s *Session) Key(name string) bool {
	return s.Queue(s.keys.Lookup(name))
}

// Queue adds an action to the next frame. Quit is not queued; it is reported
// to the caller instead. Restart is only kept once the game is over.
func (s *Session) Queue(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		return true
	case core.ActionRestart:
		if !s.state.GameOver {
			return false
		}
	}
	s.inputFrame.Set(a)
	return false
}

// Tick runs one frame with the queued input and clears the queue.
func (s *Session) Tick() core.StepResult {
	wasOver := s.state.GameOver
	res := s.game.Step(s.inputFrame)
	s.inputFrame.Clear()
	s.frames++

	if wasOver && !res.State.GameOver {
		s.logger.Info("game restarted")
	}
	if res.LinesCleared > 0 {
		s.logger.Debug("lines cleared", "count", res.LinesCleared, "score", res.State.Score)
	}
	if res.LevelChanged {
		s.logger.Debug("level changed", "level", res.State.Level, "frame_interval", s.game.FrameInterval())
	}
	if res.State.GameOver && !wasOver {
		s.logger.Info("game over", "score", res.State.Score, "level", res.State.Level)
	}

	s.state = res.State
	return res
}

// Fits reports whether a w×h screen is large enough to play in.
func (s *Session) Fits(w, h int) bool {
	minW, minH := s.game.MinSize()
	return w >= minW && h >= minH
}

// Interval returns the wait before the next frame.
func (s *Session) Interval() time.Duration {
	return s.game.FrameInterval()
}

// State returns the game state after the last frame.
func (s *Session) State() core.GameState {
	return s.state
}

// Pending returns the number of actions queued for the next frame.
func (s *Session) Pending() int {
	return s.inputFrame.Len()
}

// Keys returns the session's key map.
func (s *Session) Keys() core.KeyMap {
	return s.keys
}

// Render draws the game into dst.
func (s *Session) Render(dst *core.Screen) {
	s.game.Render(dst)
}

// End records the session end with the final state.
func (s *Session) End(reason string) {
	s.logger.Info("session ended",
		"reason", reason,
		"score", s.state.Score,
		"level", s.state.Level,
		"frames", s.frames,
		"duration", time.Since(s.started).Round(time.Millisecond),
	)
}
