package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/game"
	"github.com/vovakirdan/tetris2048/internal/storage"
)

var (
	flagScoresSpeed string
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best finished games, optionally for one speed.

Examples:
  tetris2048 scores
  tetris2048 scores --speed fast
  tetris2048 scores --limit 0      # every recorded game
  tetris2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresSpeed, "speed", "", "Only show one speed preset")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

var (
	headerColor = color.New(color.FgCyan, color.Bold)
	goldColor   = color.New(color.FgYellow, color.Bold)
	winColor    = color.New(color.FgGreen)
	dimColor    = color.New(color.FgHiBlack)
)

func runScores(cmd *cobra.Command, _ []string) error {
	speed := ""
	if cmd.Flags().Changed("speed") {
		p, err := config.ParseSpeed(flagScoresSpeed)
		if err != nil {
			return err
		}
		speed = string(p)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(game.ID); err != nil {
			return err
		}
		fmt.Println("All scores deleted.")
		return nil
	}

	var scores []storage.ScoreEntry
	if flagScoresLimit > 0 {
		scores, err = store.TopScores(game.ID, speed, flagScoresLimit)
	} else {
		scores, err = store.AllScores(game.ID)
		scores = filterSpeed(scores, speed)
	}
	if err != nil {
		return err
	}

	title := "High Scores - Tetris 2048"
	if speed != "" {
		title += " (" + config.SpeedPreset(speed).Label() + ")"
	}
	headerColor.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tetris2048 play' to set the first high score!")
		return nil
	}

	headerColor.Printf("  %-4s  %-20s  %-7s  %-8s  %-6s  %-6s  %s\n", "Rank", "Player", "Speed", "Score", "Tile", "Result", "Date")
	dimColor.Printf("  %-4s  %-20s  %-7s  %-8s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----", "------", "----")

	for i, e := range scores {
		result := "over"
		if e.Won {
			result = "won"
		}
		line := fmt.Sprintf("  %-4d  %-20s  %-7s  %-8d  %-6d  %-6s  %s",
			i+1, e.Player, e.Speed, e.Score, e.MaxTile, result, e.CreatedAt.Format("2006-01-02 15:04"))
		switch {
		case i == 0:
			goldColor.Println(line)
		case e.Won:
			winColor.Println(line)
		default:
			fmt.Println(line)
		}
	}

	stats, err := store.GetGameStats(game.ID)
	if err != nil || stats.GamesCount == 0 {
		return nil
	}
	best, err := store.HighScore(game.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println(summaryLine(stats, best))
	if !stats.LastPlayed.IsZero() {
		dimColor.Printf("Last played %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

// summaryLine describes every recorded game. best is the all-time high
// score, which may come from a speed the table is not showing.
func summaryLine(stats *storage.GameStats, best int) string {
	return fmt.Sprintf("Games: %d  Wins: %d  Best: %d  Best tile: %d  Average: %.0f  Total: %d",
		stats.GamesCount, stats.Wins, best, stats.BestTile, stats.AvgScore, stats.TotalScore)
}

func filterSpeed(entries []storage.ScoreEntry, speed string) []storage.ScoreEntry {
	if speed == "" {
		return entries
	}
	out := entries[:0]
	for _, e := range entries {
		if e.Speed == speed {
			out = append(out, e)
		}
	}
	return out
}
