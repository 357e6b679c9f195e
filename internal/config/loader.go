package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the Tetris 2048 configuration.
// Search order: customPath -> ~/.tetris2048/config.yaml -> ./configs/tetris2048.yaml -> embedded default
//
// Values missing from a file keep their defaults, and out-of-range values
// are replaced by defaults.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return sanitize(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return sanitize(cfg), nil
			}
			cfg = Default()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "tetris2048.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return sanitize(cfg), nil
		}
		cfg = Default()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return sanitize(cfg), nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris2048", "config.yaml")
}

func sanitize(cfg Config) Config {
	def := Default()
	if cfg.Speeds.SlowMs <= 0 {
		cfg.Speeds.SlowMs = def.Speeds.SlowMs
	}
	if cfg.Speeds.NormalMs <= 0 {
		cfg.Speeds.NormalMs = def.Speeds.NormalMs
	}
	if cfg.Speeds.FastMs <= 0 {
		cfg.Speeds.FastMs = def.Speeds.FastMs
	}
	if cfg.Tiles.Spawn4Probability < 0 || cfg.Tiles.Spawn4Probability > 1 {
		cfg.Tiles.Spawn4Probability = def.Tiles.Spawn4Probability
	}
	if cfg.Tiles.WinValue < 4 {
		cfg.Tiles.WinValue = def.Tiles.WinValue
	}
	if p, err := ParseSpeed(string(cfg.DefaultSpeed)); err == nil {
		cfg.DefaultSpeed = p
	} else {
		cfg.DefaultSpeed = def.DefaultSpeed
	}
	return cfg
}
