package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [width height]",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after the config file
search and the command line overrides, as YAML. The output can be saved to
~/.tetris/config.yaml as a starting point.`,
	Args: sizeArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	out.Write(data)
}
