// Package config provides YAML-based configuration loading and speed preset
// management for Tetris 2048.
package config

// Config contains all tunable parameters of a Tetris 2048 session.
type Config struct {
	Speeds       SpeedsConfig  `yaml:"speeds"`
	Tiles        TilesConfig   `yaml:"tiles"`
	Scoring      ScoringConfig `yaml:"scoring"`
	DefaultSpeed SpeedPreset   `yaml:"default_speed"`
}

// SpeedsConfig defines the fall delay of each speed preset in milliseconds.
type SpeedsConfig struct {
	SlowMs   int `yaml:"slow_ms"`
	NormalMs int `yaml:"normal_ms"`
	FastMs   int `yaml:"fast_ms"`
}

// TilesConfig defines how tiles are created and what counts as a win.
type TilesConfig struct {
	Spawn4Probability float64 `yaml:"spawn4_probability"` // Chance a locked block becomes a 4
	WinValue          int     `yaml:"win_value"`          // Tile value that wins the game
}

// ScoringConfig toggles optional scoring rules.
type ScoringConfig struct {
	CreditFreeTiles bool `yaml:"credit_free_tiles"` // Add removed unsupported tiles to the score
}

// SpeedPreset represents a named fall speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// Presets lists the speed presets in menu order.
var Presets = []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast}

// Label returns the display name of the preset.
func (p SpeedPreset) Label() string {
	switch p {
	case SpeedSlow:
		return "Slow"
	case SpeedNormal:
		return "Normal"
	case SpeedFast:
		return "Fast"
	default:
		return string(p)
	}
}
