package config

import (
	_ "embed"
)

//go:embed defaults/tetris2048.yaml
var defaultYAML []byte

// Default returns the hardcoded Tetris 2048 configuration.
func Default() Config {
	return Config{
		Speeds: SpeedsConfig{
			SlowMs:   400,
			NormalMs: 200,
			FastMs:   75,
		},
		Tiles: TilesConfig{
			Spawn4Probability: 0.5,
			WinValue:          2048,
		},
		Scoring: ScoringConfig{
			CreditFreeTiles: true,
		},
		DefaultSpeed: SpeedNormal,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
