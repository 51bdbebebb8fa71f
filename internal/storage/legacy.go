package storage

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// The legacy ranked list is a text file (scores.txt) with one score per line,
// best first, at most RankedListSize lines.

// ExportRanked writes the top RankedListSize scores of a game in the legacy
// format.
func (s *Store) ExportRanked(w io.Writer, gameID string) (int, error) {
	entries, err := s.TopScores(gameID, RankedListSize)
	if err != nil {
		return 0, err
	}
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%d\n", e.Score); err != nil {
			return 0, fmt.Errorf("storage: cannot write ranked list: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("storage: cannot write ranked list: %w", err)
	}
	return len(entries), nil
}

// ImportRanked reads a legacy ranked list and saves each score. Blank lines
// are skipped; lines past RankedListSize are ignored. Nothing is saved if any
// line fails to parse.
func (s *Store) ImportRanked(r io.Reader, gameID string) (int, error) {
	var scores []int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() && len(scores) < RankedListSize {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		v, err := strconv.Atoi(text)
		if err != nil || v < 0 {
			return 0, fmt.Errorf("storage: ranked list line %d: invalid score %q", line, text)
		}
		scores = append(scores, v)
	}
	if err := sc.Err(); err != nil {
		return 0, fmt.Errorf("storage: cannot read ranked list: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	// Insert lowest first so newest-first ordering keeps the file order on ties.
	for i := len(scores) - 1; i >= 0; i-- {
		if _, err := tx.Exec(
			"INSERT INTO scores (game_id, session_id, score) VALUES (?, 'legacy', ?)",
			gameID, scores[i],
		); err != nil {
			return 0, fmt.Errorf("storage: cannot import score: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit import: %w", err)
	}
	return len(scores), nil
}
