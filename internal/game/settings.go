package game

import (
	"time"

	"github.com/vovakirdan/tetris2048/internal/board"
	"github.com/vovakirdan/tetris2048/internal/config"
)

// Settings holds the per-session parameters chosen before a game starts.
type Settings struct {
	Speed           config.SpeedPreset
	FallDelay       time.Duration
	Spawn4Prob      float64
	WinValue        int
	CreditFreeTiles bool
}

// SettingsFrom derives session settings from a loaded configuration.
func SettingsFrom(cfg config.Config, speed config.SpeedPreset) Settings {
	return Settings{
		Speed:           speed,
		FallDelay:       cfg.FallDelay(speed),
		Spawn4Prob:      cfg.Tiles.Spawn4Probability,
		WinValue:        cfg.Tiles.WinValue,
		CreditFreeTiles: cfg.Scoring.CreditFreeTiles,
	}
}

// DefaultSettings returns normal speed with the built-in tile rules.
func DefaultSettings() Settings {
	s := SettingsFrom(config.Default(), config.SpeedNormal)
	s.Spawn4Prob = board.DefaultSpawn4Probability
	return s
}
