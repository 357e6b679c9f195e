package game

import (
	"github.com/vovakirdan/tetris2048/internal/board"
	"github.com/vovakirdan/tetris2048/internal/config"
)

// PieceSnapshot describes a tetromino by value.
type PieceSnapshot struct {
	Shape    board.Shape
	Rotation int
	Cells    [4]board.Point
}

// Snapshot captures the complete game state for determinism testing and for
// shells that draw from plain values.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Speed    config.SpeedPreset
	Score    int
	Grid     [board.Height][board.Width]int
	Buckets  [board.Height][board.Width]int // -1 for empty cells
	Current  PieceSnapshot
	Next     board.Shape
	MaxTile  int
	Won      bool
	Paused   bool
	GameOver bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Speed:    g.settings.Speed,
		Score:    g.grid.Score(),
		Current:  pieceSnapshot(g.current),
		Next:     g.next.Shape(),
		MaxTile:  g.grid.MaxTile(),
		Won:      g.won,
		Paused:   g.phase == PhasePaused,
		GameOver: g.phase == PhaseGameOver,
	}

	cells := g.grid.Cells()
	for row := range board.Height {
		for col := range board.Width {
			s.Grid[row][col] = cells[row][col].Value
			s.Buckets[row][col] = cells[row][col].Bucket()
		}
	}
	return s
}

func pieceSnapshot(t *board.Tetromino) PieceSnapshot {
	return PieceSnapshot{
		Shape:    t.Shape(),
		Rotation: t.Rotation(),
		Cells:    t.Cells(),
	}
}
