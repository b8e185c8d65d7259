package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	BoardW  int   // Board width in cells
	BoardH  int   // Board height in cells
	Seed    int64 // RNG seed, 0 means use current time in platform layer

	// RenderEvery is the number of base ticks per frame.
	RenderEvery int
	// GravityEvery is the number of base ticks between gravity steps.
	GravityEvery int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		BoardW:       10,
		BoardH:       20,
		Seed:         0,
		RenderEvery:  50,
		GravityEvery: 350,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current speed level
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState

	// LinesCleared counts rows removed during this frame.
	LinesCleared int
	// LevelChanged is set when the level differs from the previous frame.
	LevelChanged bool
}
