// snake runs the tile-grid snake simulation in the terminal.
//
// Usage:
//
//	snake list              - List available modes
//	snake play [mode]       - Play a round (default: snake)
//	snake menu              - Pick mode and difficulty interactively
//	snake serve             - Start SSH server for remote play
//	snake scores [mode]     - Show, export or import the ranked high scores
//	snake defaults <file>   - Print an embedded default config or theme
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Custom snake.yaml
//	--theme <path>        - Custom theme.yaml
//	--difficulty <name>   - easy, normal, hard or fixed
//	--log <path>          - Log file for interactive commands
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-snake/internal/games/snake"
)

var (
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagTheme      string
	flagDifficulty string
	flagLogPath    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Tile-grid snake in your terminal",
	Long: `Snake moves one tile per step, grows on every meal and speeds up as
the score climbs. Scores that pass the integrity check are kept in a
ranked list of nine.

Available commands:
  list      - Show available modes
  play      - Play a round directly
  menu      - Interactive mode and difficulty picker
  serve     - Start SSH server for remote play
  scores    - View, export or import high scores
  defaults  - Print the embedded default config or theme

Examples:
  snake play
  snake play snake_test --seed 42
  snake menu --difficulty hard
  snake serve --ssh :2222
  snake scores --export scores.txt`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		snake.SetConfigPath(flagConfig)
		snake.SetThemePath(flagTheme)
		snake.SetDifficultyPreset(flagDifficulty)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom snake.yaml")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Path to custom theme.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.arcade/snake.log", "Log file for play and menu")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log step interval changes")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(defaultsCmd)
}
