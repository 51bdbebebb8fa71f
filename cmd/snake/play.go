package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tile-snake/internal/core"
	"github.com/vovakirdan/tile-snake/internal/platform/tui"
	"github.com/vovakirdan/tile-snake/internal/registry"
	"github.com/vovakirdan/tile-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a round",
	Long: `Start a round of the given mode (default: snake).

Controls:
  W/A/S/D, arrows  - Steer
  Enter/P          - Pause, acknowledge a dialog
  Y/N              - Play again after game over
  Ctrl+S           - Save a screenshot to ~/.arcade/screenshots
  Q/Ctrl+C         - Quit

Difficulty options:
  easy    - 1s per step, speeds up every 4 points
  normal  - 750ms per step, speeds up every 4 points
  hard    - 500ms per step, speeds up every 4 points
  fixed   - 750ms per step, never speeds up

Examples:
  snake play
  snake play --difficulty hard
  snake play snake_test --seed 42
  snake play --config ./my-snake.yaml --theme ./my-theme.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// terminalConfig builds a runtime config sized to the terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closer := mustLogger()
	defer closer.Close()

	store := openStore()
	runErr := tui.Run(game, store, terminalConfig(), logger)

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing scores database", "err", err)
		}
	}

	if runErr != nil {
		logger.Error("game exited with error", "game", gameID, "err", runErr)
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
