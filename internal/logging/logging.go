// Package logging opens the session log.
// The terminal belongs to the frontend while a game runs, so log output goes
// to a file instead of stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// DefaultPath is where the log is written when no path is given.
const DefaultPath = "~/.tetris/tetris.log"

// Disabled is the path value that turns logging off.
const Disabled = "-"

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open creates a logger writing to path, appending to an existing file.
// It expands ~ and creates the parent directories if needed.
// Debug enables debug-level records. With path Disabled the logger discards everything.
func Open(path string, debug bool) (*log.Logger, io.Closer, error) {
	if path == Disabled {
		return Discard(), nopCloser{}, nil
	}
	if path == "" {
		path = DefaultPath
	}

	path, err := ExpandHome(path)
	if err != nil {
		return nil, nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: cannot create directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: cannot open %s: %w", path, err)
	}

	return New(f, debug), f, nil
}

// New returns a logger with the game's prefix and timestamps writing to w.
func New(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return New(io.Discard, false)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("logging: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
