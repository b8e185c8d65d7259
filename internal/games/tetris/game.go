// Package tetris adapts the falling-block engine to the platform's Game
// interface: it owns the tick cadence, applies queued actions and draws the
// board into a screen buffer.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Game implements registry.Game for the falling-block puzzle.
type Game struct {
	cfg core.RuntimeConfig
	eng *engine.Engine
	rng *rand.Rand

	// newPicker builds the engine's shape source for a seed.
	newPicker func(seed int64) engine.Picker

	ticks  uint64 // base ticks elapsed since Reset
	frames uint64
	paused bool
}

var _ registry.Game = (*Game)(nil)

// Option configures a Game.
type Option func(*Game)

// WithPickerFactory replaces the random shape source, e.g. for scripted games.
func WithPickerFactory(f func(seed int64) engine.Picker) Option {
	return func(g *Game) {
		g.newPicker = f
	}
}

// New creates a game. Reset must be called before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		newPicker: func(seed int64) engine.Picker {
			return engine.NewRandomPicker(seed)
		},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Reset starts a new game on an empty board and spawns the first piece.
// Zero cadence values fall back to the defaults; a zero seed uses the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.BoardW <= 0 {
		cfg.BoardW = def.BoardW
	}
	if cfg.BoardH <= 0 {
		cfg.BoardH = def.BoardH
	}
	if cfg.RenderEvery <= 0 {
		cfg.RenderEvery = def.RenderEvery
	}
	if cfg.GravityEvery <= 0 {
		cfg.GravityEvery = def.GravityEvery
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.eng = engine.New(cfg.BoardW, cfg.BoardH, engine.WithPicker(g.newPicker(g.rng.Int63())))
	g.ticks = 0
	g.frames = 0
	g.paused = false

	g.eng.Spawn()
}

// Step advances one frame: RenderEvery base ticks of gravity cadence, then
// every queued action in order, then the level update.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng == nil {
		g.Reset(g.cfg)
	}

	// Handle restart
	if in.Has(core.ActionRestart) && g.eng.GameOver() {
		prevLevel := g.eng.Level()
		cfg := g.cfg
		cfg.Seed = g.rng.Int63()
		g.Reset(cfg)
		return core.StepResult{State: g.State(), LevelChanged: g.eng.Level() != prevLevel}
	}

	// Handle pause toggle
	if !g.eng.GameOver() {
		for _, a := range in.Actions() {
			if a == core.ActionPause {
				g.paused = !g.paused
			}
		}
	}

	if g.paused || g.eng.GameOver() {
		return core.StepResult{State: g.State()}
	}

	g.frames++
	prevLevel := g.eng.Level()
	cleared := 0

	for i := 0; i < g.cfg.RenderEvery; i++ {
		g.ticks++
		if g.ticks%uint64(g.cfg.GravityEvery) == 0 {
			g.eng.ApplyGravity()
			cleared += g.eng.ClearLines()
		}
	}

	for _, a := range in.Actions() {
		switch a {
		case core.ActionMoveLeft:
			g.eng.MoveLeft()
		case core.ActionMoveRight:
			g.eng.MoveRight()
		case core.ActionRotate:
			g.eng.Rotate()
		case core.ActionSoftDrop:
			g.eng.ApplyGravity()
			cleared += g.eng.ClearLines()
		}
	}

	g.eng.AdvanceLevel()

	return core.StepResult{
		State:        g.State(),
		LinesCleared: cleared,
		LevelChanged: g.eng.Level() != prevLevel,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{Level: 1}
	}
	return core.GameState{
		Score:    g.eng.Score(),
		Level:    g.eng.Level(),
		GameOver: g.eng.GameOver(),
		Paused:   g.paused,
	}
}

// FrameInterval is RenderEvery base ticks at the current level's tick interval.
func (g *Game) FrameInterval() time.Duration {
	if g.eng == nil {
		_, interval := engine.LevelFor(0)
		return time.Duration(core.DefaultConfig().RenderEvery) * interval
	}
	return time.Duration(g.cfg.RenderEvery) * g.eng.TickInterval()
}

// MinSize returns the screen needed for the HUD line and the bordered board.
func (g *Game) MinSize() (w, h int) {
	bw, bh := g.cfg.BoardW, g.cfg.BoardH
	if g.eng != nil {
		bw, bh = g.eng.Board().Width(), g.eng.Board().Height()
	}
	if bw <= 0 || bh <= 0 {
		def := core.DefaultConfig()
		bw, bh = def.BoardW, def.BoardH
	}
	return bw*cellWidth + 2, bh + 2 + hudHeight
}

// Lines returns the total number of rows cleared this game.
func (g *Game) Lines() int {
	if g.eng == nil {
		return 0
	}
	return g.eng.Lines()
}
