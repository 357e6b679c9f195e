// Package audio synthesizes and plays the short sound effects that accompany
// locks, merges, row clears and the end of a game.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound identifies one effect.
type Sound int

const (
	SoundLock Sound = iota + 1
	SoundMerge
	SoundFreeTiles
	SoundRowClear
	SoundGameOver
	SoundWin
)

// Sounds lists every effect the player preloads.
var Sounds = []Sound{SoundLock, SoundMerge, SoundFreeTiles, SoundRowClear, SoundGameOver, SoundWin}

func (s Sound) String() string {
	switch s {
	case SoundLock:
		return "lock"
	case SoundMerge:
		return "merge"
	case SoundFreeTiles:
		return "free_tiles"
	case SoundRowClear:
		return "row_clear"
	case SoundGameOver:
		return "game_over"
	case SoundWin:
		return "win"
	default:
		return "unknown"
	}
}

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, rate beep.SampleRate, duration, attack, release time.Duration) beep.Streamer {
	return &envelope{
		streamer: beep.Take(rate.N(duration), s),
		total:    rate.N(duration),
		attack:   rate.N(attack),
		release:  rate.N(release),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone is a shaped sine note.
func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// Frequency above Nyquist; play nothing for this note
		return beep.Silence(rate.N(d))
	}
	return newEnvelope(sine, rate, d, 5*time.Millisecond, d/2)
}

// volume scales a stream linearly; zero or less is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Synthesize builds the streamer for a sound at the given sample rate.
func Synthesize(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case SoundLock:
		return volume(tone(rate, 196, 40*time.Millisecond), 0.5)
	case SoundMerge:
		return volume(beep.Seq(
			tone(rate, 660, 45*time.Millisecond),
			tone(rate, 880, 60*time.Millisecond),
		), 0.4)
	case SoundFreeTiles:
		return volume(beep.Seq(
			tone(rate, 520, 50*time.Millisecond),
			tone(rate, 390, 50*time.Millisecond),
			tone(rate, 260, 70*time.Millisecond),
		), 0.35)
	case SoundRowClear:
		return volume(beep.Mix(
			tone(rate, 523.25, 180*time.Millisecond),
			tone(rate, 659.25, 180*time.Millisecond),
			tone(rate, 783.99, 180*time.Millisecond),
		), 0.25)
	case SoundGameOver:
		return volume(beep.Seq(
			tone(rate, 392, 150*time.Millisecond),
			tone(rate, 330, 150*time.Millisecond),
			tone(rate, 262, 300*time.Millisecond),
		), 0.4)
	case SoundWin:
		return volume(beep.Seq(
			tone(rate, 523.25, 100*time.Millisecond),
			tone(rate, 659.25, 100*time.Millisecond),
			tone(rate, 783.99, 100*time.Millisecond),
			tone(rate, 1046.5, 250*time.Millisecond),
		), 0.4)
	default:
		return nil
	}
}
