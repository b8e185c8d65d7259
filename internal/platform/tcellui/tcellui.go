// Package tcellui runs the game on a tcell screen.
package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/session"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Frontend draws through tcell and reads input from its event queue.
type Frontend struct {
	newScreen func() (tcell.Screen, error)
}

func init() {
	registry.Register("tcell", func() registry.Frontend {
		return &Frontend{newScreen: tcell.NewScreen}
	})
}

// Name returns the frontend identifier.
func (f *Frontend) Name() string {
	return "tcell"
}

// Description returns a one-line summary.
func (f *Frontend) Description() string {
	return "tcell screen with 256-color cells"
}

// Run initializes the screen and drives the game until quit or ctx is cancelled.
func (f *Frontend) Run(ctx context.Context, game registry.Game, opts registry.RunOptions) error {
	screen, err := f.newScreen()
	if err != nil {
		return fmt.Errorf("tcell: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("tcell: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	s := session.New(f.Name(), game, opts)
	s.Start()
	reason := loop(ctx, screen, s, opts.Color)
	s.End(reason)
	return nil
}

// loop runs until the session ends and returns the reason.
func loop(ctx context.Context, screen tcell.Screen, s *session.Session, color bool) string {
	screen.HideCursor()
	screen.Clear()

	w, h := screen.Size()
	buf := core.NewScreen(w, h)

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	timer := time.NewTimer(s.Interval())
	defer timer.Stop()

	draw(screen, s, buf, color)

	for {
		select {
		case <-ctx.Done():
			return "signal"

		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				buf.Resize(screen.Size())
				draw(screen, s, buf, color)
			case *tcell.EventKey:
				if s.Key(KeyName(e)) {
					return "quit"
				}
			}

		case <-timer.C:
			if s.Fits(buf.Width(), buf.Height()) {
				s.Tick()
			}
			draw(screen, s, buf, color)
			timer.Reset(s.Interval())
		}
	}
}

// draw renders the game into buf and copies it to the tcell screen.
func draw(screen tcell.Screen, s *session.Session, buf *core.Screen, color bool) {
	s.Render(buf)
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			cell := buf.GetCell(x, y)
			screen.SetContent(x, y, cell.Rune, nil, Style(cell.Color, color))
		}
	}
	screen.Show()
}

// Style returns the tcell style for a cell color.
func Style(c core.Color, color bool) tcell.Style {
	if !color || c == core.ColorDefault {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(tcell.PaletteColor(c.ANSI()))
}

// KeyName converts a tcell key event to the normalized key names used by core.KeyMap.
func KeyName(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return "space"
		}
		return string(ev.Rune())
	case tcell.KeyLeft:
		return "left"
	case tcell.KeyRight:
		return "right"
	case tcell.KeyUp:
		return "up"
	case tcell.KeyDown:
		return "down"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "ctrl+c"
	}
	return ""
}
