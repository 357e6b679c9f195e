package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tetris2048/internal/game"
	"github.com/vovakirdan/tetris2048/internal/platform/tui"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse high scores",
	Long: `Open the interactive high score table. Tab switches between speeds.

Controls:
  Up/Down, j/k     - Scroll
  Tab/Shift+Tab    - Next/previous speed
  Esc/b, Q         - Leave`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func runBoard(_ *cobra.Command, _ []string) error {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	var scores tui.ScoreReader
	if store := openStore(); store != nil {
		defer store.Close()
		scores = store
	}

	_, err := tui.RunScoreboard(game.ID, scores, width, height)
	return err
}
