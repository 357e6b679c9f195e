package config

import (
	"fmt"
	"strings"
	"time"
)

// ParseSpeed resolves a preset name. The difficulty names easy, normal and
// hard are accepted as aliases.
func ParseSpeed(s string) (SpeedPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "slow", "easy":
		return SpeedSlow, nil
	case "normal", "":
		return SpeedNormal, nil
	case "fast", "hard":
		return SpeedFast, nil
	default:
		return "", fmt.Errorf("config: unknown speed %q (want slow, normal or fast)", s)
	}
}

// FallDelay returns the time between gravity steps for a preset.
// Unknown presets fall back to normal.
func (c Config) FallDelay(p SpeedPreset) time.Duration {
	var ms int
	switch p {
	case SpeedSlow:
		ms = c.Speeds.SlowMs
	case SpeedFast:
		ms = c.Speeds.FastMs
	default:
		ms = c.Speeds.NormalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// TicksPerFall converts a fall delay into simulation ticks, never less than one.
func TicksPerFall(delay time.Duration, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	ticks := (delay.Milliseconds()*int64(tickRate) + 500) / 1000
	return max(1, int(ticks))
}
