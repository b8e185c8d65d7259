package engine

import "time"

// State is the engine's lifecycle state.
type State int

const (
	StatePlaying State = iota
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// baseLinePoints is the award for the first row cleared in one scan.
const baseLinePoints = 100

// Engine owns the board, the active piece and the score/level counters.
// It is not safe for concurrent use; a single loop drives it.
type Engine struct {
	board  *Board
	picker Picker

	piece    Shape
	hasPiece bool
	x, y     int

	score int
	level int
	lines int
	state State
}

// Option configures an Engine.
type Option func(*Engine)

// WithPicker sets the shape source used by Spawn.
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		e.picker = p
	}
}

// WithSeed uses a RandomPicker seeded with seed.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.picker = NewRandomPicker(seed)
	}
}

// New creates an engine with an empty board, no active piece, level 1 and score 0.
func New(width, height int, opts ...Option) *Engine {
	e := &Engine{
		board: NewBoard(width, height),
		level: 1,
		state: StatePlaying,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.picker == nil {
		e.picker = NewRandomPicker(0)
	}
	return e
}

// Board returns the engine's board. Callers must treat it as read-only.
func (e *Engine) Board() *Board {
	return e.board
}

// Piece returns the active shape and its top-left position.
// ok is false before the first spawn.
func (e *Engine) Piece() (s Shape, x, y int, ok bool) {
	return e.piece, e.x, e.y, e.hasPiece
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Level returns the level stored by the last AdvanceLevel call.
func (e *Engine) Level() int {
	return e.level
}

// Lines returns the total number of rows cleared.
func (e *Engine) Lines() int {
	return e.lines
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool {
	return e.state == StateGameOver
}

// active reports whether piece operations are currently accepted.
func (e *Engine) active() bool {
	return e.hasPiece && e.state == StatePlaying
}

// Spawn places a new piece centered at the top. If it does not fit the
// game is over; the piece stays assigned so it can still be drawn.
func (e *Engine) Spawn() {
	if e.state == StateGameOver {
		return
	}
	e.piece = e.picker.Next()
	e.hasPiece = true
	e.x = e.board.Width()/2 - e.piece.W/2
	e.y = 0

	if e.Collides() {
		e.state = StateGameOver
	}
}

// Collides reports whether the active piece overlaps the board or leaves it.
// Any bounding-box column outside the board collides, filled or not.
// Filled cells collide below the bottom edge or on an occupied cell;
// rows above the top edge never collide.
func (e *Engine) Collides() bool {
	p := e.piece
	for x := 0; x < p.W; x++ {
		for y := 0; y < p.H; y++ {
			bx := e.x + x
			by := e.y + y

			if bx < 0 || bx >= e.board.Width() {
				return true
			}
			if p.Data[y][x] != Empty && e.board.IsOccupied(bx, by) {
				return true
			}
		}
	}
	return false
}

// MoveLeft shifts the piece one column left unless that collides.
func (e *Engine) MoveLeft() {
	e.shift(-1)
}

// MoveRight shifts the piece one column right unless that collides.
func (e *Engine) MoveRight() {
	e.shift(1)
}

func (e *Engine) shift(dx int) {
	if !e.active() {
		return
	}
	e.x += dx
	if e.Collides() {
		e.x -= dx
	}
}

// Rotate turns the piece clockwise around its approximate center.
// On collision both the shape and the position are restored.
func (e *Engine) Rotate() {
	if !e.active() {
		return
	}
	old, oldX, oldY := e.piece, e.x, e.y

	rotated := Rotate(old)
	e.x -= (rotated.W - old.W) / 2
	e.y -= (rotated.H - old.H) / 2
	e.piece = rotated

	if e.Collides() {
		e.piece, e.x, e.y = old, oldX, oldY
	}
}

// ApplyGravity moves the piece down one row. If that collides, the piece is
// burnt into the board at its last valid position and the next one spawns.
// Returns true when the piece locked.
func (e *Engine) ApplyGravity() bool {
	if !e.active() {
		return false
	}
	e.y++
	if !e.Collides() {
		return false
	}

	e.y--
	e.burn()
	e.Spawn()
	return true
}

// burn copies the piece's filled cells into the board.
func (e *Engine) burn() {
	p := e.piece
	for x := 0; x < p.W; x++ {
		for y := 0; y < p.H; y++ {
			if c := p.Data[y][x]; c != Empty {
				e.board.Set(e.x+x, e.y+y, c)
			}
		}
	}
}

// ClearLines removes full rows scanning bottom to top and returns how many
// were removed. Within one call the award doubles per row: 100, 200, 400...
// After a removal the same row index is checked again since the row above
// has moved into it.
func (e *Engine) ClearLines() int {
	if e.state == StateGameOver {
		return 0
	}
	points := baseLinePoints
	cleared := 0

	for y := e.board.Height() - 1; y >= 0; y-- {
		if !e.board.IsRowFull(y) {
			continue
		}
		e.score += points
		points <<= 1
		e.board.ClearRow(y)
		cleared++
		y++
	}

	e.lines += cleared
	return cleared
}

// AdvanceLevel stores the level reached at the current score and returns
// that level's tick interval.
// The score is frozen after game over, so the result is stable from then on.
func (e *Engine) AdvanceLevel() time.Duration {
	level, interval := LevelFor(e.score)
	e.level = level
	return interval
}

// TickInterval returns the tick interval of the stored level.
func (e *Engine) TickInterval() time.Duration {
	return levels[e.level-1].Interval
}
