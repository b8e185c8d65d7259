package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Source names reported by Load when no file was read.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

const localConfigPath = "configs/tetris.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.tetris/config.yaml -> ./configs/tetris.yaml -> embedded default.
// Values missing from a file keep their defaults. The second return value names
// where the configuration came from.
func Load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: cannot parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then the local configs directory.
	// Unreadable or malformed files are skipped.
	for _, path := range []string{userConfigPath(), localConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return Default(), SourceBuiltin, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// Validate reports every setting the game cannot run with.
// Frontend names are checked by the registry when the frontend is created.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Width < MinBoardSize || c.Board.Width > MaxBoardSize {
		errs = append(errs, fmt.Errorf("config: board width %d out of range [%d, %d]",
			c.Board.Width, MinBoardSize, MaxBoardSize))
	}
	if c.Board.Height < MinBoardSize || c.Board.Height > MaxBoardSize {
		errs = append(errs, fmt.Errorf("config: board height %d out of range [%d, %d]",
			c.Board.Height, MinBoardSize, MaxBoardSize))
	}
	if c.Timing.RenderEvery <= 0 {
		errs = append(errs, fmt.Errorf("config: render_every must be positive, got %d", c.Timing.RenderEvery))
	}
	if c.Timing.GravityEvery <= 0 {
		errs = append(errs, fmt.Errorf("config: gravity_every must be positive, got %d", c.Timing.GravityEvery))
	}
	if len(c.Keys.Quit) == 0 {
		errs = append(errs, errors.New("config: at least one quit key is required"))
	}
	for action, keys := range c.Keys.Bindings() {
		for _, k := range keys {
			if core.NormalizeKey(k) == "" {
				errs = append(errs, fmt.Errorf("config: empty key name for %s", action))
			}
		}
	}

	return errors.Join(errs...)
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "config.yaml")
}
