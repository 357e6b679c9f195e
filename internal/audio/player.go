package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/tetris2048/internal/core"
)

// DefaultSampleRate is the speaker rate used by the shells.
const DefaultSampleRate = beep.SampleRate(44100)

// Player renders every effect into an in-memory buffer up front and plays
// copies of those buffers on the speaker. Play is called from the shell's
// update goroutine only; the speaker goroutine sees read-only buffers.
type Player struct {
	rate    beep.SampleRate
	buffers *intmap.Map[Sound, *beep.Buffer]
	ready   bool
}

// NewPlayer synthesizes all effects at rate. The speaker is not touched
// until Init.
func NewPlayer(rate beep.SampleRate) *Player {
	p := &Player{
		rate:    rate,
		buffers: intmap.New[Sound, *beep.Buffer](len(Sounds)),
	}
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	for _, s := range Sounds {
		buf := beep.NewBuffer(format)
		buf.Append(Synthesize(s, rate))
		p.buffers.Put(s, buf)
	}
	return p
}

// Init opens the audio device.
func (p *Player) Init() error {
	if err := speaker.Init(p.rate, p.rate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

// Samples returns the length of a preloaded effect in samples, or 0 if the
// sound is unknown.
func (p *Player) Samples(s Sound) int {
	buf, ok := p.buffers.Get(s)
	if !ok {
		return 0
	}
	return buf.Len()
}

// Play starts a sound. It is a no-op before Init succeeds.
func (p *Player) Play(s Sound) {
	if !p.ready {
		return
	}
	buf, ok := p.buffers.Get(s)
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// PlayEvents plays the most significant sound for a tick's events.
func (p *Player) PlayEvents(events []core.Event, won bool) {
	if s, ok := SoundFor(events, won); ok {
		p.Play(s)
	}
}

// SoundFor picks one sound for a tick: game over beats row clears, which
// beat free-tile removal, which beats merges, which beat a plain lock.
func SoundFor(events []core.Event, won bool) (Sound, bool) {
	best := Sound(0)
	rank := 0
	for _, e := range events {
		var s Sound
		var r int
		switch e.Kind {
		case core.EventLocked:
			s, r = SoundLock, 1
		case core.EventMerged:
			s, r = SoundMerge, 2
		case core.EventFreeTilesRemoved:
			s, r = SoundFreeTiles, 3
		case core.EventRowsCleared:
			s, r = SoundRowClear, 4
		case core.EventGameOver:
			s, r = SoundGameOver, 5
			if won {
				s = SoundWin
			}
		}
		if r > rank {
			best, rank = s, r
		}
	}
	return best, rank > 0
}
