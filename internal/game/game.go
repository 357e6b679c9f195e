// Package game runs the Tetris 2048 session: it spawns pieces, applies
// gravity and player input, and hands landed pieces to the grid for merge,
// support and row-clear resolution.
package game

import (
	"math/rand"

	"github.com/vovakirdan/tetris2048/internal/board"
	"github.com/vovakirdan/tetris2048/internal/config"
	"github.com/vovakirdan/tetris2048/internal/core"
)

// ID is the identifier used for score storage.
const ID = "tetris2048"

// Game implements core.Game for Tetris 2048.
type Game struct {
	settings Settings
	rng      *rand.Rand
	tick     uint64

	grid    *board.Grid
	current *board.Tetromino
	next    *board.Tetromino
	phase   Phase

	fallEvery   int // Ticks between gravity steps
	fallCounter int

	won bool

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the given settings. Call Reset before stepping.
func New(settings Settings) *Game {
	return &Game{settings: settings}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris 2048"
}

// Settings returns the session settings.
func (g *Game) Settings() Settings {
	return g.settings
}

// Reset starts a new game on an empty grid.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.grid = board.NewGrid(g.rng, g.settings.Spawn4Prob)
	g.won = false
	g.fallEvery = config.TicksPerFall(g.settings.FallDelay, cfg.TickRate)
	g.fallCounter = 0

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.checkScreenSize()

	g.next = g.randomPiece()
	g.phase = PhaseSpawning
	g.spawn(nil)
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

func (g *Game) randomPiece() *board.Tetromino {
	return board.NewTetromino(board.Shapes[g.rng.Intn(len(board.Shapes))])
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.phase == PhaseGameOver {
		// Restart is handled by the platform
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.phase {
		case PhasePaused:
			g.phase = PhaseFalling
		case PhaseFalling:
			g.phase = PhasePaused
		}
	}

	if g.phase == PhasePaused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event

	switch {
	case in.Has(core.ActionMoveLeft):
		g.current.Move(board.DirLeft, g.grid)
	case in.Has(core.ActionMoveRight):
		g.current.Move(board.DirRight, g.grid)
	}
	if in.Has(core.ActionRotate) {
		g.current.Rotate(g.grid)
	}
	if in.Has(core.ActionMoveDown) && g.current.Move(board.DirDown, g.grid) {
		g.fallCounter = 0
	}

	if in.Has(core.ActionHardDrop) {
		g.current.Drop(g.grid)
		events = g.lock(events)
		return core.StepResult{State: g.State(), Events: events}
	}

	g.fallCounter++
	if g.fallCounter >= g.fallEvery {
		g.fallCounter = 0
		if !g.current.Move(board.DirDown, g.grid) {
			events = g.lock(events)
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// lock runs Locking, Resolving and SpawningNext for the current piece.
func (g *Game) lock(events []core.Event) []core.Event {
	g.phase = PhaseLocking
	overflow := g.grid.Lock(g.current)
	events = append(events, core.Event{Kind: core.EventLocked, Count: 4})
	if overflow {
		return g.finish(events)
	}

	g.phase = PhaseResolving
	events = g.resolve(events)
	return g.spawn(events)
}

// resolve settles the grid after a lock. Points are credited in order:
// merges, then unsupported tiles, then saturated rows.
func (g *Game) resolve(events []core.Event) []core.Event {
	if merges, gained := g.grid.MergeCascade(); merges > 0 {
		events = append(events, core.Event{Kind: core.EventMerged, Count: merges, Points: gained})
	}
	if removed, gained := g.grid.RemoveUnsupported(g.current, g.settings.CreditFreeTiles); removed > 0 {
		events = append(events, core.Event{Kind: core.EventFreeTilesRemoved, Count: removed, Points: gained})
	}
	if cleared, gained := g.grid.ClearSaturatedRows(); cleared > 0 {
		events = append(events, core.Event{Kind: core.EventRowsCleared, Count: cleared, Points: gained})
	}
	return events
}

// spawn promotes the next piece and draws a new one. A piece that cannot be
// placed at the spawn position ends the game.
func (g *Game) spawn(events []core.Event) []core.Event {
	g.phase = PhaseSpawning
	g.current = g.next
	g.next = g.randomPiece()
	g.fallCounter = 0

	if !g.current.Fits(g.grid) {
		return g.finish(events)
	}
	g.phase = PhaseFalling
	return events
}

func (g *Game) finish(events []core.Event) []core.Event {
	g.phase = PhaseGameOver
	g.won = g.grid.HasTileAtLeast(g.settings.WinValue)
	return append(events, core.Event{Kind: core.EventGameOver, Points: g.grid.Score()})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.grid.Score(),
		GameOver: g.phase == PhaseGameOver,
		Paused:   g.phase == PhasePaused || g.tooSmall,
		Won:      g.won,
		MaxTile:  g.grid.MaxTile(),
	}
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Grid exposes the board for read-only rendering by graphical shells.
func (g *Game) Grid() *board.Grid {
	return g.grid
}

// Current returns the falling piece.
func (g *Game) Current() *board.Tetromino {
	return g.current
}

// Next returns the piece that spawns after the current one.
func (g *Game) Next() *board.Tetromino {
	return g.next
}
