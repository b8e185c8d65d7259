package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestSizeArgs(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{nil, false},
		{[]string{"12", "24"}, false},
		{[]string{"12"}, true},
		{[]string{"12", "24", "3"}, true},
		{[]string{"wide", "24"}, true},
	}

	for _, tt := range tests {
		err := sizeArgs(rootCmd, tt.args)
		if (err != nil) != tt.wantErr {
			t.Errorf("sizeArgs(%q) error = %v, wantErr %v", tt.args, err, tt.wantErr)
		}
	}
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	flagConfig, flagFrontend = "", ""
	t.Cleanup(func() { flagConfig, flagFrontend = "", "" })
}

func TestLoadConfigOverrides(t *testing.T) {
	isolate(t)
	flagFrontend = "console"

	cfg, source, err := loadConfig([]string{"12", "24"})
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Board.Width != 12 || cfg.Board.Height != 24 {
		t.Errorf("board = %dx%d, expected 12x24", cfg.Board.Width, cfg.Board.Height)
	}
	if cfg.Display.Frontend != "console" {
		t.Errorf("Frontend = %q, expected console", cfg.Display.Frontend)
	}
	if source != "embedded" {
		t.Errorf("source = %q, expected embedded", source)
	}
}

func TestLoadConfigRejectsBadSize(t *testing.T) {
	isolate(t)

	_, _, err := loadConfig([]string{"2", "20"})
	if err == nil || !strings.Contains(err.Error(), "board width 2 out of range") {
		t.Errorf("loadConfig() error = %v, expected width range error", err)
	}
}

func TestFormatPieces(t *testing.T) {
	out := formatPieces(engine.Shapes())

	for _, want := range []string{"1. #  2x2", "3. @  4x1", "       @@@@", "6. Z  3x2"} {
		if !strings.Contains(out, want) {
			t.Errorf("formatPieces() missing %q:\n%s", want, out)
		}
	}
}

func TestFormatLevels(t *testing.T) {
	out := formatLevels(engine.Levels(), 50)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2+len(engine.Levels()) {
		t.Fatalf("got %d lines, expected %d:\n%s", len(lines), 2+len(engine.Levels()), out)
	}
	if !strings.Contains(lines[2], "1.2ms") || !strings.Contains(lines[2], "60ms") {
		t.Errorf("first level row = %q, expected 1.2ms tick and 60ms frame", lines[2])
	}
	if !strings.Contains(lines[3], "1500") {
		t.Errorf("second level row = %q, expected threshold 1500", lines[3])
	}
}
