package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, s := range []int{3, 1, 7} {
		if _, err := store.SaveScore("snake", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	store.SaveScore("snake_test", 20)

	scores, err := store.TopScores("snake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 7 || scores[1].Score != 3 || scores[2].Score != 1 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	for _, e := range scores {
		if e.GameID != "snake" {
			t.Errorf("Leaked score from another game: %+v", e)
		}
		if e.CreatedAt.IsZero() {
			t.Errorf("CreatedAt not parsed: %+v", e)
		}
	}

	if _, err := store.SaveScore("snake", -1); err == nil {
		t.Error("SaveScore() should reject negative scores")
	}
}

func TestStoreTopScoresDefaultLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 15; i++ {
		store.SaveScore("snake", i)
	}

	scores, err := store.TopScores("snake", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != RankedListSize {
		t.Errorf("Expected %d scores, got %d", RankedListSize, len(scores))
	}
	if scores[0].Score != 14 || scores[RankedListSize-1].Score != 6 {
		t.Errorf("Unexpected ranked list: first=%d last=%d", scores[0].Score, scores[RankedListSize-1].Score)
	}

	all, _ := store.AllScores("snake")
	if len(all) != 15 {
		t.Errorf("AllScores() = %d entries, expected 15", len(all))
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake")
	if err != nil || high != 0 {
		t.Fatalf("HighScore() on empty store = %d, %v", high, err)
	}

	store.SaveScore("snake", 4)
	store.SaveScore("snake", 12)
	store.SaveScore("snake_test", 30)

	if high, _ = store.HighScore("snake"); high != 12 {
		t.Errorf("HighScore() = %d, expected 12", high)
	}

	if err := store.ClearScores("snake"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("snake", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("snake_test", 10); len(scores) != 1 {
		t.Error("Clearing one game should not affect another")
	}
}

func TestStoreRank(t *testing.T) {
	store := openTestStore(t)
	for _, s := range []int{50, 40, 30, 20, 10, 9, 8, 7, 6} {
		store.SaveScore("snake", s)
	}

	tests := []struct {
		score int
		want  int
	}{
		{100, 1},
		{50, 1}, // ties rank above older entries
		{35, 3},
		{6, 9},
		{5, 0},
	}
	for _, tt := range tests {
		got, err := store.Rank("snake", tt.score)
		if err != nil {
			t.Fatalf("Rank() failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("Rank(%d) = %d, expected %d", tt.score, got, tt.want)
		}
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", stats)
	}

	store.SaveSessionScore("snake", "a", 2)
	store.SaveSessionScore("snake", "a", 4)
	store.SaveSessionScore("snake", "b", 6)
	store.SaveScore("snake", 0)

	stats, err = store.GetGameStats("snake")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 4 || stats.HighScore != 6 || stats.TotalScore != 12 || stats.Sessions != 2 {
		t.Errorf("GetGameStats() = %+v", stats)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore = %v, expected 3", stats.AvgScore)
	}
}
