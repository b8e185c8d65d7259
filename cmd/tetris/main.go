// tetris is a falling-block puzzle for the terminal.
//
// Usage:
//
//	tetris [width height]   - Play on a width×height board (default 10×20)
//	tetris pieces           - Show the piece catalog
//	tetris levels           - Show the level table
//	tetris frontends        - List available frontends
//	tetris config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.tetris, ./configs)
//	--seed <value>      - RNG seed for reproducible piece order
//	--frontend <name>   - tui, tcell or console
//	--log-file <path>   - Log file (default: ~/.tetris/tetris.log, "-" disables)
//	--debug             - Log line clears and level changes
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/registry"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-tetris/internal/platform/console"
	_ "github.com/vovakirdan/tui-tetris/internal/platform/tcellui"
	_ "github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFrontend string
	flagLogFile  string
	flagDebug    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris [width height]",
	Short: "Falling-block puzzle in your terminal",
	Long: `Stack the falling pieces and clear full rows. Every cleared row scores,
several rows in one drop score more, and the game speeds up as the
score grows.

Controls (default):
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Soft drop
  Space/Up   - Rotate
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  tetris
  tetris 12 24
  tetris --frontend console
  tetris --seed 42 --log-file -
  tetris --config ./my-tetris.yaml`,
	Args: sizeArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagFrontend, "frontend", "", "Frontend: tui, tcell, console (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultPath, `Log file path ("-" disables logging)`)
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(piecesCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

// sizeArgs accepts no arguments or a board width and height.
func sizeArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("expected 0 or 2 arguments (width height), got %d", len(args))
	}
	for _, a := range args {
		if _, err := strconv.Atoi(a); err != nil {
			return fmt.Errorf("invalid board size %q: must be an integer", a)
		}
	}
	return nil
}

// loadConfig reads the configuration and applies the flag and argument overrides.
func loadConfig(args []string) (config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, "", err
	}

	if len(args) == 2 {
		// sizeArgs has already checked both values.
		cfg.Board.Width, _ = strconv.Atoi(args[0])
		cfg.Board.Height, _ = strconv.Atoi(args[1])
	}
	if flagFrontend != "" {
		cfg.Display.Frontend = flagFrontend
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, "", err
	}
	return cfg, source, nil
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	frontend, err := registry.Create(cfg.Display.Frontend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'tetris frontends' to see available frontends.")
		os.Exit(1)
	}

	logger, closer, err := logging.Open(flagLogFile, flagDebug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Continue without logging - game still works
		logger, closer = logging.Discard(), nil
	}
	logger.Debug("config loaded", "source", source, "frontend", cfg.Display.Frontend)

	// Get terminal size for the runtime config
	rc := cfg.Runtime()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	runErr := frontend.Run(ctx, tetris.New(), registry.RunOptions{
		Config: rc,
		Keys:   cfg.KeyMap(),
		Logger: logger,
		Color:  cfg.Display.Color,
	})
	stop()

	// Close the log before potential exit
	if closer != nil {
		closer.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
