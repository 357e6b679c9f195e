package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tetris2048/internal/core"
)

// Held movement keys repeat after repeatDelay ticks, then every
// repeatInterval ticks.
const (
	repeatDelay    = 12
	repeatInterval = 3
)

var actionKeys = []struct {
	action core.Action
	keys   []ebiten.Key
	repeat bool
}{
	{core.ActionMoveLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH}, true},
	{core.ActionMoveRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL}, true},
	{core.ActionMoveDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ}, true},
	{core.ActionRotate, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK}, false},
	{core.ActionHardDrop, []ebiten.Key{ebiten.KeySpace}, false},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, false},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}, false},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}, false},
}

// pollActions fills frame with the actions triggered this tick.
func pollActions(frame *core.InputFrame) {
	for _, ak := range actionKeys {
		for _, k := range ak.keys {
			if triggered(k, ak.repeat) {
				frame.Set(ak.action)
				break
			}
		}
	}
}

func triggered(k ebiten.Key, repeat bool) bool {
	if !repeat {
		return inpututil.IsKeyJustPressed(k)
	}
	return repeatDue(inpututil.KeyPressDuration(k))
}

// repeatDue reports whether a key held for d ticks fires this tick.
func repeatDue(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

func justPressedAny(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
