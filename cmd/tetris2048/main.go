// tetris2048 is a falling-block puzzle where landed pieces turn into 2048
// tiles that merge, drop and clear.
//
// Usage:
//
//	tetris2048                 - Pick a speed and play in the terminal
//	tetris2048 play            - Same, with play flags (--speed, --gui, --sound)
//	tetris2048 scores          - Print the best results
//	tetris2048 board           - Browse high scores interactively
//	tetris2048 config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.tetris2048/scores.db)
//	--config <path>     - Load game settings from a YAML file
//	--log-file <path>   - Write logs to a file (default: discarded)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris2048/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris2048",
	Short: "Tetris 2048 - falling blocks that merge like 2048 tiles",
	Long: `Tetris 2048 drops tetrominoes onto a 12x20 well. Every block of a
landed piece becomes a 2 or a 4 tile. Equal tiles stacked on top of each
other merge, tiles that lose contact with the floor fall away, and full
rows are cleared for the sum of their tiles.

Available commands:
  play     - Play (default when no command is given)
  scores   - Print high scores
  board    - Interactive high score browser
  config   - Print the default configuration

Examples:
  tetris2048
  tetris2048 play --speed fast
  tetris2048 play --gui --sound
  tetris2048 scores --speed slow`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	RunE:              runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging builds the logger. The terminal belongs to the game, so logs
// only go to a file when one is given.
func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f

	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris2048",
		Level:           level,
	})
	return nil
}

// openStore opens the scores database. Failure is logged and play goes on
// without saving.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
