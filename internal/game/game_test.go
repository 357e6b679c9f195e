package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tetris2048/internal/board"
	"github.com/vovakirdan/tetris2048/internal/core"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = seed

	g := New(DefaultSettings())
	g.Reset(cfg)
	require.Equal(t, PhaseFalling, g.Phase())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// fillStack covers rows 0..Height-2 except column 0 with alternating 2 and 4
// rows, so nothing merges and no row is full.
func fillStack(g *Game) {
	for row := range board.Height - 1 {
		v := 2
		if row%2 == 1 {
			v = 4
		}
		for col := 1; col < board.Width; col++ {
			g.grid.Set(board.Point{X: col, Y: row}, board.Tile{Value: v})
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	script := []core.Action{
		core.ActionMoveLeft, core.ActionRotate, core.ActionNone, core.ActionHardDrop,
		core.ActionMoveRight, core.ActionMoveRight, core.ActionHardDrop, core.ActionMoveDown,
	}
	for i := 0; i < 400; i++ {
		in := frame(script[i%len(script)])
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
}

func TestGravityMovesPieceDown(t *testing.T) {
	g := newTestGame(t, 1)
	start := g.current.Anchor()

	for i := 1; i < g.fallEvery; i++ {
		g.Step(frame())
	}
	assert.Equal(t, start, g.current.Anchor(), "piece fell before the fall delay elapsed")

	g.Step(frame())
	assert.Equal(t, start.Y-1, g.current.Anchor().Y)
}

func TestFallEveryFollowsSpeed(t *testing.T) {
	g := newTestGame(t, 1)
	// 200ms at 60 ticks per second
	assert.Equal(t, 12, g.fallEvery)
}

func TestSoftDropAndSideMoves(t *testing.T) {
	g := newTestGame(t, 1)
	start := g.current.Anchor()

	g.Step(frame(core.ActionMoveDown))
	assert.Equal(t, start.Y-1, g.current.Anchor().Y)

	g.Step(frame(core.ActionMoveLeft))
	assert.Equal(t, start.X-1, g.current.Anchor().X)

	g.Step(frame(core.ActionMoveRight))
	g.Step(frame(core.ActionMoveRight))
	assert.Equal(t, start.X+1, g.current.Anchor().X)
}

func TestHardDropLocksAndSpawns(t *testing.T) {
	g := newTestGame(t, 7)
	nextShape := g.next.Shape()

	res := g.Step(frame(core.ActionHardDrop))

	require.NotEmpty(t, res.Events)
	assert.Equal(t, core.EventLocked, res.Events[0].Kind)
	assert.Equal(t, PhaseFalling, g.Phase())
	assert.Equal(t, nextShape, g.current.Shape())
	assert.Positive(t, g.grid.TileCount())
	assert.LessOrEqual(t, g.grid.TileCount(), 4)

	points := 0
	for _, e := range res.Events {
		points += e.Points
	}
	assert.Equal(t, g.grid.Score(), points)
	assert.Equal(t, g.grid.Score(), res.State.Score)
}

func TestResolutionInvariants(t *testing.T) {
	g := newTestGame(t, 99)

	for i := 0; i < 300 && !g.State().GameOver; i++ {
		switch i % 3 {
		case 1:
			g.Step(frame(core.ActionMoveLeft))
		case 2:
			g.Step(frame(core.ActionMoveRight))
		}
		prev := g.grid.Score()
		g.Step(frame(core.ActionHardDrop))

		require.GreaterOrEqual(t, g.grid.Score(), prev, "score decreased")
		for col := range board.Width {
			require.True(t, g.grid.At(board.Point{X: col, Y: board.Height - 1}).Empty(), "tile settled on the overflow row")
		}
	}
}

// newTwosGame starts a game where every locked block becomes a 2.
func newTwosGame(t *testing.T) *Game {
	t.Helper()
	settings := DefaultSettings()
	settings.Spawn4Prob = 0

	g := New(settings)
	g.Reset(core.DefaultConfig())
	require.Equal(t, PhaseFalling, g.Phase())
	return g
}

func TestResolutionOrderThroughStep(t *testing.T) {
	g := newTwosGame(t)

	// Row 0 is full except columns 0-1; an O piece fills the gap and its
	// upper blocks merge into the row before it is cleared.
	for col := 2; col < board.Width; col++ {
		g.grid.Set(board.Point{X: col, Y: 0}, board.Tile{Value: 8})
	}
	// Floating tile, removed with credit before the clear.
	g.grid.Set(board.Point{X: 11, Y: 5}, board.Tile{Value: 32})
	g.current = board.NewTetrominoAt(board.ShapeO, board.Point{X: 0, Y: 10})

	res := g.Step(frame(core.ActionHardDrop))

	kinds := make([]core.EventKind, len(res.Events))
	for i, e := range res.Events {
		kinds[i] = e.Kind
	}
	require.Equal(t, []core.EventKind{
		core.EventLocked, core.EventMerged, core.EventFreeTilesRemoved, core.EventRowsCleared,
	}, kinds)

	// Two 2+2 merges in row 0 give 4 points each.
	assert.Equal(t, core.Event{Kind: core.EventMerged, Count: 2, Points: 8}, res.Events[1])
	assert.Equal(t, core.Event{Kind: core.EventFreeTilesRemoved, Count: 1, Points: 32}, res.Events[2])
	// The cleared row holds the merged 4s: 4+4+10*8.
	assert.Equal(t, core.Event{Kind: core.EventRowsCleared, Count: 1, Points: 88}, res.Events[3])

	assert.Equal(t, 128, res.State.Score)
	assert.Zero(t, g.grid.TileCount())
	assert.Equal(t, PhaseFalling, g.Phase())
}

func TestBlockedSpawnEndsGame(t *testing.T) {
	g := newTwosGame(t)

	// Stack rows 0-18 in the spawn columns, alternating 2 and 4 so nothing
	// merges. Column 11 stays open so no row is full.
	for row := range board.Height - 1 {
		v := 2
		if row%2 == 1 {
			v = 4
		}
		for col := 4; col <= 10; col++ {
			g.grid.Set(board.Point{X: col, Y: row}, board.Tile{Value: v})
		}
	}
	g.current = board.NewTetrominoAt(board.ShapeI, board.Point{X: 0, Y: 10})
	g.next = board.NewTetromino(board.ShapeT)
	require.False(t, g.next.Fits(g.grid))
	tiles := g.grid.TileCount()

	res := g.Step(frame(core.ActionHardDrop))

	require.True(t, res.State.GameOver)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, tiles+4, g.grid.TileCount(), "the dropped piece locks before the spawn fails")
	assert.Equal(t, board.ShapeT, g.current.Shape())

	kinds := make([]core.EventKind, len(res.Events))
	for i, e := range res.Events {
		kinds[i] = e.Kind
	}
	assert.Equal(t, []core.EventKind{core.EventLocked, core.EventGameOver}, kinds)
	assert.Zero(t, res.State.Score)
}

func TestPauseBlocksInput(t *testing.T) {
	g := newTestGame(t, 1)
	start := g.current.Anchor()

	res := g.Step(frame(core.ActionPause))
	assert.True(t, res.State.Paused)
	assert.Equal(t, PhasePaused, g.Phase())

	for range 50 {
		g.Step(frame(core.ActionMoveLeft, core.ActionHardDrop))
	}
	assert.Equal(t, start, g.current.Anchor())
	assert.Zero(t, g.grid.TileCount())

	g.Step(frame(core.ActionPause))
	assert.Equal(t, PhaseFalling, g.Phase())
}

func TestLockOnOverflowEndsGame(t *testing.T) {
	g := newTestGame(t, 3)
	fillStack(g)
	before := g.grid.Score()

	res := g.Step(frame(core.ActionHardDrop))

	require.True(t, res.State.GameOver)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.False(t, res.State.Won)
	assert.Equal(t, before, res.State.Score, "resolution must be skipped")

	last := res.Events[len(res.Events)-1]
	assert.Equal(t, core.EventGameOver, last.Kind)

	// Terminal: further input changes nothing
	snap := g.Snapshot()
	g.Step(frame(core.ActionMoveLeft, core.ActionPause))
	after := g.Snapshot()
	assert.Equal(t, snap.Grid, after.Grid)
	assert.Equal(t, PhaseGameOver, after.Phase)
}

func TestWinReportedAtGameOver(t *testing.T) {
	g := newTestGame(t, 3)
	fillStack(g)
	g.grid.Set(board.Point{X: 1, Y: 0}, board.Tile{Value: 2048})

	res := g.Step(frame(core.ActionHardDrop))

	require.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)
	assert.Equal(t, 2048, res.State.MaxTile)
	assert.True(t, g.Snapshot().Won)
}

func TestResetRestartsGame(t *testing.T) {
	g := newTestGame(t, 3)
	fillStack(g)
	g.Step(frame(core.ActionHardDrop))
	require.True(t, g.State().GameOver)

	g.Reset(core.DefaultConfig())

	assert.False(t, g.State().GameOver)
	assert.Zero(t, g.State().Score)
	assert.Zero(t, g.grid.TileCount())
	assert.Equal(t, PhaseFalling, g.Phase())
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "TETRIS 2048")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Next:")
	assert.Contains(t, out, "████")
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")

	g.Step(frame(core.ActionPause))
	fillStack(g)
	g.Step(frame(core.ActionHardDrop))
	g.Render(screen)
	assert.Contains(t, screen.String(), "GAME OVER")
	assert.Contains(t, screen.String(), "R restart")
}

func TestRenderTooSmall(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 30, 10
	g := New(DefaultSettings())
	g.Reset(cfg)

	screen := core.NewScreen(30, 10)
	g.Render(screen)

	assert.True(t, g.State().Paused)
	assert.True(t, strings.Contains(screen.String(), "Window too small"))
}

func TestRenderTileRowsBottomUp(t *testing.T) {
	g := newTestGame(t, 1)
	g.grid.Set(board.Point{X: 0, Y: 0}, board.Tile{Value: 512})
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	// The floor row is the last row inside the border.
	boardX := (80 - boardW - hudW) / 2
	row := screen.Row(screenRow(1, 0))
	assert.Equal(t, " 512", string([]rune(row)[boardX+1:boardX+5]))
}

func TestTileLabel(t *testing.T) {
	tests := []struct {
		value    int
		expected string
	}{
		{2, "   2"},
		{64, "  64"},
		{2048, "2048"},
		{16384, " 16k"},
	}

	for _, tt := range tests {
		if got := TileLabel(tt.value); got != tt.expected {
			t.Errorf("TileLabel(%d) = %q, expected %q", tt.value, got, tt.expected)
		}
	}
}
