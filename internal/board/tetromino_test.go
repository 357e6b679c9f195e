package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeTablesHaveFourDistinctCells(t *testing.T) {
	for _, s := range Shapes {
		for r := range RotationStates(s) {
			seen := make(map[Point]bool)
			for _, o := range Offsets(s, r) {
				if seen[o] {
					t.Errorf("shape %s rotation %d repeats offset %v", s, r, o)
				}
				seen[o] = true
			}
		}
	}
	assert.Equal(t, 1, RotationStates(ShapeO))
	assert.Equal(t, 4, RotationStates(ShapeT))
}

func TestNewTetrominoSpawnPosition(t *testing.T) {
	tests := []struct {
		shape   Shape
		anchorX int
	}{
		{ShapeI, 4},
		{ShapeO, 5},
		{ShapeT, 4},
		{ShapeS, 4},
	}

	for _, tt := range tests {
		t.Run(tt.shape.String(), func(t *testing.T) {
			piece := NewTetromino(tt.shape)
			assert.Equal(t, tt.anchorX, piece.Anchor().X)

			top := -1
			for _, c := range piece.Cells() {
				top = max(top, c.Y)
			}
			assert.Equal(t, Height-1, top)
		})
	}
}

func TestMoveAgainstWalls(t *testing.T) {
	g := NewGrid(nil, 0)
	piece := NewTetrominoAt(ShapeI, Point{X: 0, Y: 5})

	assert.False(t, piece.Move(DirLeft, g))
	assert.Equal(t, Point{X: 0, Y: 5}, piece.Anchor())

	for range Width - 4 {
		require.True(t, piece.Move(DirRight, g))
	}
	assert.False(t, piece.Move(DirRight, g))
	assert.Equal(t, Width-4, piece.Anchor().X)
}

func TestMoveDownStopsOnTiles(t *testing.T) {
	g := NewGrid(nil, 0)
	g.Set(Point{X: 5, Y: 3}, Tile{Value: 2})
	piece := NewTetrominoAt(ShapeO, Point{X: 5, Y: 5})

	require.True(t, piece.Move(DirDown, g))
	assert.False(t, piece.Move(DirDown, g))
	assert.Equal(t, Point{X: 5, Y: 4}, piece.Anchor())
}

func TestMoveAboveTopIsLegal(t *testing.T) {
	g := NewGrid(nil, 0)
	piece := NewTetrominoAt(ShapeO, Point{X: 0, Y: Height})

	assert.True(t, piece.Move(DirRight, g))
	assert.True(t, piece.Move(DirDown, g))
}

func TestDropLandsOnFloor(t *testing.T) {
	g := NewGrid(nil, 0)
	piece := NewTetromino(ShapeO)

	rows := piece.Drop(g)

	assert.Equal(t, Height-2, rows)
	assert.Equal(t, 0, piece.Anchor().Y)
	assert.False(t, piece.Move(DirDown, g))
}

func TestRotateCycles(t *testing.T) {
	g := NewGrid(nil, 0)
	piece := NewTetrominoAt(ShapeT, Point{X: 4, Y: 5})
	start := piece.Cells()

	for i := 1; i <= 4; i++ {
		require.True(t, piece.Rotate(g))
		assert.Equal(t, i%4, piece.Rotation())
	}
	assert.Equal(t, start, piece.Cells())
}

func TestRotateO(t *testing.T) {
	g := NewGrid(nil, 0)
	piece := NewTetrominoAt(ShapeO, Point{X: 4, Y: 5})
	before := piece.Cells()

	assert.True(t, piece.Rotate(g))
	assert.Equal(t, before, piece.Cells())
}

func TestRotateBlocked(t *testing.T) {
	g := NewGrid(nil, 0)
	// T rotation 1 needs (anchor.X+1, anchor.Y) free.
	g.Set(Point{X: 5, Y: 5}, Tile{Value: 2})
	piece := NewTetrominoAt(ShapeT, Point{X: 4, Y: 5})

	assert.False(t, piece.Rotate(g))
	assert.Equal(t, 0, piece.Rotation())
}

func TestRotateNoWallKick(t *testing.T) {
	g := NewGrid(nil, 0)
	// Vertical I hugging the left wall cannot turn horizontal.
	piece := NewTetrominoAt(ShapeI, Point{X: -1, Y: 5})
	piece.rotation = 3

	assert.False(t, piece.Rotate(g))
	assert.Equal(t, 3, piece.Rotation())
	assert.Equal(t, Point{X: -1, Y: 5}, piece.Anchor())
}

func TestGhostCells(t *testing.T) {
	g := NewGrid(nil, 0)
	piece := NewTetrominoAt(ShapeI, Point{X: 2, Y: 10})

	ghost := piece.GhostCells(g)

	for _, c := range ghost {
		assert.Equal(t, 0, c.Y)
	}
	assert.Equal(t, Point{X: 2, Y: 10}, piece.Anchor())
}
