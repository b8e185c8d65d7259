// Package config provides YAML-based configuration loading for the game.
package config

import (
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 4
	MaxBoardSize = 64
)

// Config contains all user-tunable settings.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Keys    KeysConfig    `yaml:"keys"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the playfield dimensions in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the frame and gravity cadence in base ticks.
// A base tick lasts as long as the current level's tick interval.
type TimingConfig struct {
	RenderEvery  int `yaml:"render_every"`
	GravityEvery int `yaml:"gravity_every"`
}

// KeysConfig lists key names per action.
type KeysConfig struct {
	MoveLeft  []string `yaml:"move_left"`
	MoveRight []string `yaml:"move_right"`
	SoftDrop  []string `yaml:"soft_drop"`
	Rotate    []string `yaml:"rotate"`
	Pause     []string `yaml:"pause"`
	Restart   []string `yaml:"restart"`
	Quit      []string `yaml:"quit"`
}

// DisplayConfig selects the frontend and whether it draws in color.
type DisplayConfig struct {
	Frontend string `yaml:"frontend"`
	Color    bool   `yaml:"color"`
}

// Bindings returns the key lists keyed by action.
func (k KeysConfig) Bindings() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionMoveLeft:  k.MoveLeft,
		core.ActionMoveRight: k.MoveRight,
		core.ActionSoftDrop:  k.SoftDrop,
		core.ActionRotate:    k.Rotate,
		core.ActionPause:     k.Pause,
		core.ActionRestart:   k.Restart,
		core.ActionQuit:      k.Quit,
	}
}

// KeyMap builds the key map for the frontends.
func (c Config) KeyMap() core.KeyMap {
	return core.NewKeyMap(c.Keys.Bindings())
}

// Runtime converts the config into the settings passed to Game.Reset.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.BoardW = c.Board.Width
	rc.BoardH = c.Board.Height
	rc.RenderEvery = c.Timing.RenderEvery
	rc.GravityEvery = c.Timing.GravityEvery
	return rc
}
