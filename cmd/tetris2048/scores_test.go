package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tetris2048/internal/game"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

func TestSummaryLineUsesAllTimeBest(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for _, rec := range []storage.ScoreRecord{
		{GameID: game.ID, Speed: "slow", Score: 100, MaxTile: 32},
		{GameID: game.ID, Speed: "fast", Score: 3000, MaxTile: 2048, Won: true},
		{GameID: game.ID, Speed: "slow", Score: 200, MaxTile: 128},
	} {
		if _, err := store.SaveScore(rec); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats(game.ID)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	best, err := store.HighScore(game.ID)
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}

	line := summaryLine(stats, best)
	for _, want := range []string{"Games: 3", "Wins: 1", "Best: 3000", "Best tile: 2048", "Average: 1100", "Total: 3300"} {
		if !strings.Contains(line, want) {
			t.Errorf("summaryLine() = %q, missing %q", line, want)
		}
	}
}

func TestFilterSpeed(t *testing.T) {
	entries := []storage.ScoreEntry{
		{ScoreRecord: storage.ScoreRecord{Speed: "slow", Score: 1}},
		{ScoreRecord: storage.ScoreRecord{Speed: "fast", Score: 2}},
		{ScoreRecord: storage.ScoreRecord{Speed: "slow", Score: 3}},
	}

	if got := filterSpeed(entries, ""); len(got) != 3 {
		t.Errorf("Expected all 3 entries without a filter, got %d", len(got))
	}

	got := filterSpeed(entries, "slow")
	if len(got) != 2 || got[0].Score != 1 || got[1].Score != 3 {
		t.Errorf("Expected slow entries 1 and 3, got %+v", got)
	}
}
