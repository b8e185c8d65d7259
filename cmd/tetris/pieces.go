package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

var piecesCmd = &cobra.Command{
	Use:   "pieces",
	Short: "Show the piece catalog",
	Long:  `Prints every piece the game can spawn with its size and marker.`,
	Args:  cobra.NoArgs,
	Run:   runPieces,
}

func runPieces(cmd *cobra.Command, args []string) {
	fmt.Fprint(cmd.OutOrStdout(), formatPieces(engine.Shapes()))
}

func formatPieces(shapes []engine.Shape) string {
	var sb strings.Builder
	sb.WriteString("Pieces:\n\n")
	for i, s := range shapes {
		fmt.Fprintf(&sb, "  %d. %c  %dx%d\n", i+1, rune(s.Marker()), s.W, s.H)
		for _, row := range strings.Split(s.String(), "\n") {
			fmt.Fprintf(&sb, "       %s\n", row)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
