// Package console runs the game on a plain terminal in raw mode, printing
// each frame as text with ANSI home and clear sequences.
package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/session"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

const (
	clearScreen = "\033[H\033[2J"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	gameOverBanner = "*** GAME OVER ***"
)

// texter is implemented by games with a plain-text frame of their own.
type texter interface {
	Text() string
}

// Frontend reads raw bytes from in and prints frames to out.
type Frontend struct {
	in  *os.File
	out io.Writer
}

func init() {
	registry.Register("console", func() registry.Frontend {
		return &Frontend{in: os.Stdin, out: os.Stdout}
	})
}

// Name returns the frontend identifier.
func (f *Frontend) Name() string {
	return "console"
}

// Description returns a one-line summary.
func (f *Frontend) Description() string {
	return "plain text frames on a raw terminal, exits on game over"
}

// Run switches the terminal to raw mode and plays until game over, quit or
// ctx is cancelled. Input that is not a terminal is read as is.
func (f *Frontend) Run(ctx context.Context, game registry.Game, opts registry.RunOptions) error {
	fd := int(f.in.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("console: cannot enable raw mode: %w", err)
		}
		defer func() {
			_ = term.Restore(fd, oldState)
		}()
	}

	s := session.New(f.Name(), game, opts)
	s.Start()
	reason := loop(ctx, f.out, StartStream(f.in), s, frameText(game, opts.Config))
	s.End(reason)
	return nil
}

// frameText returns the game's own text frame when it has one and a
// rendered screen buffer otherwise.
func frameText(game registry.Game, cfg core.RuntimeConfig) func() string {
	if t, ok := game.(texter); ok {
		return t.Text
	}
	w, h := game.MinSize()
	w, h = max(w, cfg.ScreenW), max(h, cfg.ScreenH)
	buf := core.NewScreen(w, h)
	return func() string {
		game.Render(buf)
		return buf.String()
	}
}

// loop runs frames until the session ends and returns the reason.
func loop(ctx context.Context, w io.Writer, stream *Stream, s *session.Session, text func() string) string {
	fmt.Fprint(w, hideCursor)
	defer fmt.Fprint(w, showCursor)

	writeFrame(w, text())

	timer := time.NewTimer(s.Interval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return "signal"
		case <-timer.C:
		}

		for _, k := range ParseKeys(stream.Drain()) {
			// Raw mode swallows SIGINT, so ctrl+c always quits.
			if k == "ctrl+c" || s.Key(k) {
				return "quit"
			}
		}

		res := s.Tick()
		writeFrame(w, text())

		if res.State.GameOver {
			fmt.Fprint(w, gameOverBanner+"\r\n")
			return "game over"
		}
		timer.Reset(s.Interval())
	}
}

// writeFrame clears the terminal and writes frame with raw-mode line endings.
func writeFrame(w io.Writer, frame string) {
	fmt.Fprint(w, clearScreen+strings.ReplaceAll(frame, "\n", "\r\n")+"\r\n")
}
