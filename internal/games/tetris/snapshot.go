package tetris

// GameStateType represents the current game state.
type GameStateType string

const (
	StateNotStarted GameStateType = "not_started"
	StatePlaying    GameStateType = "playing"
	StatePaused     GameStateType = "paused"
	StateGameOver   GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Ticks  uint64
	Frames uint64
	Score  int
	Level  int
	Lines  int
	Board  []string // one string per row, spaces for empty cells
	Piece  string   // active shape rows joined by newlines
	PieceX int
	PieceY int
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.eng == nil {
		return Snapshot{Level: 1, State: StateNotStarted}
	}

	state := StatePlaying
	switch {
	case g.eng.GameOver():
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Ticks:  g.ticks,
		Frames: g.frames,
		Score:  g.eng.Score(),
		Level:  g.eng.Level(),
		Lines:  g.eng.Lines(),
		Board:  g.eng.Board().Rows(),
		State:  state,
	}
	if s, x, y, ok := g.eng.Piece(); ok {
		snap.Piece = s.String()
		snap.PieceX = x
		snap.PieceY = y
	}
	return snap
}
