package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tetris2048/internal/storage"
)

type recordingReader struct {
	speeds []string
	err    error
}

func (r *recordingReader) TopScores(_ string, speed string, _ int) ([]storage.ScoreEntry, error) {
	r.speeds = append(r.speeds, speed)
	if r.err != nil {
		return nil, r.err
	}
	return []storage.ScoreEntry{
		{ScoreRecord: storage.ScoreRecord{Player: "brave-otter", Speed: "fast", Score: 512, MaxTile: 64}},
	}, nil
}

func TestScoreboardCyclesSpeedFilters(t *testing.T) {
	reader := &recordingReader{}
	m := NewScoreboardModel("tetris2048", reader, 80, 24)

	for range 4 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(ScoreboardModel)
	}

	want := []string{"", "slow", "normal", "fast", ""}
	if strings.Join(reader.speeds, ",") != strings.Join(want, ",") {
		t.Errorf("Expected filters %v, got %v", want, reader.speeds)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if got := reader.speeds[len(reader.speeds)-1]; got != "fast" {
		t.Errorf("Expected shift+tab to wrap to fast, got %q", got)
	}
}

func TestScoreboardView(t *testing.T) {
	m := NewScoreboardModel("tetris2048", &recordingReader{}, 80, 24)

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - All") {
		t.Error("Expected title with filter name")
	}
	if !strings.Contains(view, "brave-otter") {
		t.Error("Expected player name in table")
	}
}

func TestScoreboardEmptyAndError(t *testing.T) {
	m := NewScoreboardModel("tetris2048", nil, 80, 24)
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("Expected empty message without a store")
	}

	m = NewScoreboardModel("tetris2048", &recordingReader{err: errors.New("boom")}, 80, 24)
	if !strings.Contains(m.View(), "Could not load scores") {
		t.Error("Expected error message")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := NewScoreboardModel("tetris2048", nil, 80, 24)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(ScoreboardModel).IsGoingBack() {
		t.Error("Expected esc to go back")
	}

	next, _ = m.Update(runeKey('q'))
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("Expected q to quit")
	}
}
