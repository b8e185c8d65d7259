package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			RenderEvery:  50,
			GravityEvery: 350,
		},
		Keys: KeysConfig{
			MoveLeft:  []string{"a", "left"},
			MoveRight: []string{"d", "right"},
			SoftDrop:  []string{"s", "down"},
			Rotate:    []string{"space", "up"},
			Pause:     []string{"p"},
			Restart:   []string{"r"},
			Quit:      []string{"q", "ctrl+c"},
		},
		Display: DisplayConfig{
			Frontend: "tui",
			Color:    true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
