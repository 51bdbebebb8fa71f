package storage

import (
	"testing"

	"github.com/google/uuid"
)

func TestRecorderBindsSession(t *testing.T) {
	store := openTestStore(t)
	rec := NewRecorder(store)

	if _, err := uuid.Parse(rec.Session()); err != nil {
		t.Fatalf("Session() = %q is not a uuid: %v", rec.Session(), err)
	}

	if err := rec.RecordScore("snake", 11); err != nil {
		t.Fatalf("RecordScore() failed: %v", err)
	}
	scores, _ := store.TopScores("snake", 1)
	if len(scores) != 1 || scores[0].SessionID != rec.Session() || scores[0].Score != 11 {
		t.Errorf("stored entry = %+v", scores)
	}

	rank, err := rec.Rank("snake", 11)
	if err != nil || rank != 1 {
		t.Errorf("Rank() = %d, %v, expected 1", rank, err)
	}

	other := NewRecorder(store)
	if other.Session() == rec.Session() {
		t.Error("two recorders share a session id")
	}
}
