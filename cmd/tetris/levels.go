package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table",
	Long: `Prints the score each level starts at, its base tick and the resulting
frame interval with the default render cadence.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	fmt.Fprint(cmd.OutOrStdout(), formatLevels(engine.Levels(), core.DefaultConfig().RenderEvery))
}

func formatLevels(levels []engine.Level, renderEvery int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %-5s  %8s  %8s  %s\n", "Level", "Score", "Tick", "Frame")
	fmt.Fprintf(&sb, "  %-5s  %8s  %8s  %s\n", "-----", "-----", "----", "-----")
	for i, l := range levels {
		frame := l.Interval * time.Duration(renderEvery)
		fmt.Fprintf(&sb, "  %-5d  %8d  %8s  %s\n", i+1, l.Score, l.Interval, frame)
	}
	return sb.String()
}
