package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/session"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// helpHeight is the number of rows reserved below the game for the help line.
const helpHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	session  *session.Session
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	color    bool
	tooSmall bool
	quitting bool
}

// NewModel creates a Bubble Tea model around a started session.
func NewModel(s *session.Session, cfg core.RuntimeConfig, color bool) Model {
	h := help.New()
	h.ShortSeparator = "  "

	m := Model{
		session: s,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		keys:    NewKeyMap(s.Keys()),
		help:    h,
		color:   color,
	}
	m.tooSmall = !s.Fits(m.screen.Width(), m.screen.Height())
	return m
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session.Queue(m.keys.Action(msg)) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
// The game keeps its state; it is only held while the window is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	m.tooSmall = !m.session.Fits(m.screen.Width(), m.screen.Height())
	return m, nil
}

// handleTick runs one frame unless the window is too small.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.tooSmall {
		m.session.Tick()
	}
	return m, tickCmd(m.session.Interval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen, m.color) + "\n" + m.help.View(m.keys)
}

// Frontend runs the game as a full-screen Bubble Tea program.
type Frontend struct{}

func init() {
	registry.Register("tui", func() registry.Frontend {
		return Frontend{}
	})
}

// Name returns the frontend identifier.
func (Frontend) Name() string {
	return "tui"
}

// Description returns a one-line summary.
func (Frontend) Description() string {
	return "Bubble Tea full-screen UI with colors and a help line (default)"
}

// Run starts the Bubble Tea program and blocks until the player quits or ctx is cancelled.
func (f Frontend) Run(ctx context.Context, game registry.Game, opts registry.RunOptions) error {
	s := session.New(f.Name(), game, opts)
	s.Start()

	p := tea.NewProgram(
		NewModel(s, opts.Config, opts.Color),
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	switch {
	case ctx.Err() != nil:
		s.End("signal")
		return nil
	case err != nil && !errors.Is(err, tea.ErrProgramKilled):
		s.End("error")
		return err
	}
	s.End("quit")
	return nil
}
