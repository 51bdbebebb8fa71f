package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tile-snake/internal/registry"
	"github.com/vovakirdan/tile-snake/internal/storage"
)

var (
	flagExport string
	flagImport string
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores for a mode",
	Long: `Display the ranked list of nine high scores for a mode (default: snake).

The list can be moved to and from the plain text format with one score per
line, highest first.

Examples:
  snake scores
  snake scores snake_test
  snake scores --export scores.txt
  snake scores --import scores.txt
  snake scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagExport, "export", "", "Write the ranked list to a file (- for stdout)")
	scoresCmd.Flags().StringVar(&flagImport, "import", "", "Read a ranked list file into the database")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the mode")
	scoresCmd.MarkFlagsMutuallyExclusive("export", "import", "clear")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'snake list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagExport != "":
		err = exportScores(store, gameID)
	case flagImport != "":
		err = importScores(store, gameID)
	case flagClear:
		if err = store.ClearScores(gameID); err == nil {
			fmt.Printf("Cleared scores for %s.\n", gameID)
		}
	default:
		err = printScores(store, gameID)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func exportScores(store *storage.Store, gameID string) error {
	if flagExport == "-" {
		_, err := store.ExportRanked(os.Stdout, gameID)
		return err
	}

	f, err := os.Create(flagExport)
	if err != nil {
		return err
	}
	n, err := store.ExportRanked(f, gameID)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	fmt.Printf("Exported %d scores to %s.\n", n, flagExport)
	return nil
}

func importScores(store *storage.Store, gameID string) error {
	f, err := os.Open(flagImport)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := store.ImportRanked(f, gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d scores from %s.\n", n, flagImport)
	return nil
}

func printScores(store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, storage.RankedListSize)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snake play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "------", "----")
	for i, entry := range scores {
		player := entry.SessionID
		if len(player) > 8 {
			player = player[:8]
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %s\n", i+1, entry.Score, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Rounds: %d  Sessions: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.Sessions, stats.AvgScore)
	}
	return nil
}
