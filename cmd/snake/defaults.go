package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-snake/internal/assets"
	"github.com/vovakirdan/tile-snake/internal/config"
)

var defaultsCmd = &cobra.Command{
	Use:   "defaults <snake|theme>",
	Short: "Print an embedded default file",
	Long: `Print the embedded default snake.yaml or theme.yaml. Save the output
to ~/.arcade/configs/ to customize it.

Examples:
  snake defaults snake > ~/.arcade/configs/snake.yaml
  snake defaults theme > ~/.arcade/configs/theme.yaml`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"snake", "theme"},
	Run:       runDefaults,
}

func runDefaults(_ *cobra.Command, args []string) {
	var data []byte
	switch args[0] {
	case "theme":
		data = assets.DefaultYAML()
	default:
		data = config.GetDefaultYAML(args[0])
	}
	if data == nil {
		fmt.Fprintf(os.Stderr, "Error: no default file named %q\n", args[0])
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
