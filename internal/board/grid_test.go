package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFrom builds a grid from rows listed top to bottom, so the last slice
// element is row 0.
func gridFrom(rows ...[]int) *Grid {
	g := NewGrid(nil, DefaultSpawn4Probability)
	for i, values := range rows {
		row := len(rows) - 1 - i
		for col, v := range values {
			g.cells[row][col] = Tile{Value: v}
		}
	}
	return g
}

func TestTileBucket(t *testing.T) {
	tests := []struct {
		value    int
		expected int
	}{
		{0, -1},
		{2, 0},
		{4, 1},
		{8, 2},
		{1024, 9},
		{2048, 10},
		{4096, 11},
		{8192, 11},
	}

	for _, tt := range tests {
		got := Tile{Value: tt.value}.Bucket()
		if got != tt.expected {
			t.Errorf("Tile{%d}.Bucket() = %d, expected %d", tt.value, got, tt.expected)
		}
	}
}

func TestMergeOnceStackedPair(t *testing.T) {
	g := NewGrid(nil, 0)
	g.Set(Point{X: 3, Y: 0}, Tile{Value: 2})
	g.Set(Point{X: 3, Y: 1}, Tile{Value: 2})

	merged, gained := g.MergeOnce()

	require.True(t, merged)
	assert.Equal(t, 4, gained)
	assert.Equal(t, 4, g.Score())
	assert.Equal(t, 4, g.At(Point{X: 3, Y: 0}).Value)
	assert.True(t, g.At(Point{X: 3, Y: 1}).Empty())
	assert.Equal(t, 1, g.TileCount())
}

func TestMergeOnceShiftsColumnDown(t *testing.T) {
	g := NewGrid(nil, 0)
	g.Set(Point{X: 0, Y: 0}, Tile{Value: 8})
	g.Set(Point{X: 0, Y: 1}, Tile{Value: 8})
	g.Set(Point{X: 0, Y: 2}, Tile{Value: 2})
	g.Set(Point{X: 0, Y: 3}, Tile{Value: 32})

	merged, gained := g.MergeOnce()

	require.True(t, merged)
	assert.Equal(t, 16, gained)
	assert.Equal(t, 16, g.At(Point{X: 0, Y: 0}).Value)
	assert.Equal(t, 2, g.At(Point{X: 0, Y: 1}).Value)
	assert.Equal(t, 32, g.At(Point{X: 0, Y: 2}).Value)
	assert.True(t, g.At(Point{X: 0, Y: 3}).Empty())
}

func TestMergeOnceScanOrder(t *testing.T) {
	// A pair lower in the grid wins over a pair further left.
	g := NewGrid(nil, 0)
	g.Set(Point{X: 0, Y: 3}, Tile{Value: 4})
	g.Set(Point{X: 0, Y: 4}, Tile{Value: 4})
	g.Set(Point{X: 5, Y: 1}, Tile{Value: 2})
	g.Set(Point{X: 5, Y: 2}, Tile{Value: 2})

	merged, gained := g.MergeOnce()

	require.True(t, merged)
	assert.Equal(t, 4, gained)
	assert.Equal(t, 4, g.At(Point{X: 5, Y: 1}).Value)
	assert.Equal(t, 4, g.At(Point{X: 0, Y: 3}).Value)
	assert.Equal(t, 4, g.At(Point{X: 0, Y: 4}).Value)

	// Within one row the leftmost column goes first.
	g = NewGrid(nil, 0)
	g.Set(Point{X: 7, Y: 0}, Tile{Value: 2})
	g.Set(Point{X: 7, Y: 1}, Tile{Value: 2})
	g.Set(Point{X: 2, Y: 0}, Tile{Value: 8})
	g.Set(Point{X: 2, Y: 1}, Tile{Value: 8})

	_, gained = g.MergeOnce()
	assert.Equal(t, 16, gained)
	assert.Equal(t, 2, g.At(Point{X: 7, Y: 1}).Value)
}

func TestMergeOnceNoPair(t *testing.T) {
	g := gridFrom(
		[]int{2, 0, 0},
		[]int{4, 2, 0},
		[]int{2, 4, 8},
	)

	merged, gained := g.MergeOnce()
	assert.False(t, merged)
	assert.Zero(t, gained)
	assert.Zero(t, g.Score())
}

func TestMergeCascadeChain(t *testing.T) {
	g := gridFrom(
		[]int{4},
		[]int{2},
		[]int{2},
	)

	merges, gained := g.MergeCascade()

	assert.Equal(t, 2, merges)
	assert.Equal(t, 12, gained)
	assert.Equal(t, 12, g.Score())
	assert.Equal(t, 8, g.At(Point{X: 0, Y: 0}).Value)
	assert.Equal(t, 1, g.TileCount())
}

func TestMergeCascadeConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	values := []int{2, 4, 8, 16}

	for range 200 {
		g := NewGrid(nil, 0)
		for row := range Height - 1 {
			for col := range Width {
				if rng.Intn(3) == 0 {
					continue
				}
				g.cells[row][col] = Tile{Value: values[rng.Intn(len(values))]}
			}
		}
		before := g.Score()

		_, gained := g.MergeCascade()

		require.False(t, g.HasEqualVerticalPair(), "equal pair left after cascade")
		require.Equal(t, before+gained, g.Score())
	}
}

func TestClearSaturatedRowsScenario(t *testing.T) {
	g := gridFrom([]int{2, 2, 4, 4, 8, 8, 16, 16, 32, 32, 64, 64})

	cleared, gained := g.ClearSaturatedRows()

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 252, gained)
	assert.Equal(t, 252, g.Score())
	assert.Zero(t, g.TileCount())
}

func TestClearSaturatedRowsCompacts(t *testing.T) {
	full := make([]int, Width)
	for i := range full {
		full[i] = 2
	}
	g := gridFrom(
		[]int{16},
		full,
		[]int{8, 4},
		full,
	)

	cleared, gained := g.ClearSaturatedRows()

	assert.Equal(t, 2, cleared)
	assert.Equal(t, 2*2*Width, gained)
	assert.Equal(t, 8, g.At(Point{X: 0, Y: 0}).Value)
	assert.Equal(t, 4, g.At(Point{X: 1, Y: 0}).Value)
	assert.Equal(t, 16, g.At(Point{X: 0, Y: 1}).Value)
	assert.Equal(t, 3, g.TileCount())
}

func TestClearSaturatedRowsNoop(t *testing.T) {
	g := gridFrom(
		[]int{2, 4, 8},
		[]int{2, 4, 8, 16, 32, 64, 2, 4, 8, 16, 32},
	)
	before := g.Cells()

	cleared, gained := g.ClearSaturatedRows()

	assert.Zero(t, cleared)
	assert.Zero(t, gained)
	assert.Zero(t, g.Score())
	assert.Equal(t, before, g.Cells())
}

func TestRemoveUnsupportedLoneTile(t *testing.T) {
	g := NewGrid(nil, 0)
	g.Set(Point{X: 3, Y: 10}, Tile{Value: 16})

	removed, gained := g.RemoveUnsupported(nil, true)

	assert.Equal(t, 1, removed)
	assert.Equal(t, 16, gained)
	assert.Equal(t, 16, g.Score())
	assert.Zero(t, g.TileCount())
}

func TestRemoveUnsupportedWithoutCredit(t *testing.T) {
	g := NewGrid(nil, 0)
	g.Set(Point{X: 3, Y: 10}, Tile{Value: 16})

	removed, gained := g.RemoveUnsupported(nil, false)

	assert.Equal(t, 1, removed)
	assert.Zero(t, gained)
	assert.Zero(t, g.Score())
}

func TestDetectUnsupportedHorizontalChain(t *testing.T) {
	g := NewGrid(nil, 0)
	// A tower in column 0 with an overhang along row 5.
	for row, v := range []int{8, 16, 2, 4, 2, 8} {
		g.Set(Point{X: 0, Y: row}, Tile{Value: v})
	}
	for col := 1; col <= 4; col++ {
		g.Set(Point{X: col, Y: 5}, Tile{Value: 2 << col})
	}
	g.Set(Point{X: 9, Y: 2}, Tile{Value: 8})

	free := g.DetectUnsupported(nil)

	assert.Equal(t, []Point{{X: 9, Y: 2}}, free)
}

func TestDetectUnsupportedNeverReturnsFloorOrActive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for range 200 {
		g := NewGrid(nil, 0)
		for row := range Height - 1 {
			for col := range Width {
				if rng.Intn(2) == 0 {
					g.cells[row][col] = Tile{Value: 2 << rng.Intn(5)}
				}
			}
		}
		piece := NewTetrominoAt(Shapes[rng.Intn(len(Shapes))], Point{X: rng.Intn(Width - 3), Y: 5 + rng.Intn(10)})
		g.Lock(piece)

		for _, p := range g.DetectUnsupported(piece) {
			require.NotZero(t, p.Y, "floor cell %v reported unsupported", p)
			require.False(t, piece.Occupies(p), "active cell %v reported unsupported", p)
			require.True(t, g.Occupied(p))
		}
	}
}

func TestDetectUnsupportedRowMajorOrder(t *testing.T) {
	g := NewGrid(nil, 0)
	g.Set(Point{X: 7, Y: 12}, Tile{Value: 2})
	g.Set(Point{X: 1, Y: 12}, Tile{Value: 4})
	g.Set(Point{X: 5, Y: 3}, Tile{Value: 8})

	free := g.DetectUnsupported(nil)

	assert.Equal(t, []Point{{X: 5, Y: 3}, {X: 1, Y: 12}, {X: 7, Y: 12}}, free)
}

func TestLockOverflowIsGameOver(t *testing.T) {
	g := NewGrid(nil, 0)
	piece := NewTetromino(ShapeT)

	assert.True(t, g.Lock(piece))
}

func TestLockWritesTilesOfTwoOrFour(t *testing.T) {
	g := NewGrid(rand.New(rand.NewSource(3)), DefaultSpawn4Probability)
	piece := NewTetrominoAt(ShapeO, Point{X: 4, Y: 0})

	require.False(t, g.Lock(piece))
	for _, p := range piece.Cells() {
		v := g.At(p).Value
		assert.Contains(t, []int{2, 4}, v, "cell %v", p)
	}
	assert.Equal(t, 4, g.TileCount())
}

func TestLockSpawnProbabilityExtremes(t *testing.T) {
	g := NewGrid(nil, 0)
	g.Lock(NewTetrominoAt(ShapeI, Point{X: 0, Y: -2}))
	for col := range 4 {
		assert.Equal(t, 2, g.At(Point{X: col, Y: 0}).Value)
	}

	g = NewGrid(nil, 1)
	g.Lock(NewTetrominoAt(ShapeI, Point{X: 0, Y: -2}))
	for col := range 4 {
		assert.Equal(t, 4, g.At(Point{X: col, Y: 0}).Value)
	}
}

func TestLockAndResolveOnlyAddsTiles(t *testing.T) {
	g := gridFrom(
		[]int{4, 8, 4, 8, 4, 8, 4, 8},
	)
	g.spawn4 = 0
	piece := NewTetrominoAt(ShapeI, Point{X: 0, Y: 5})
	piece.Drop(g)
	require.Equal(t, 1, piece.Cells()[0].Y)

	require.False(t, g.Lock(piece))
	merges, _ := g.MergeCascade()
	removed, _ := g.RemoveUnsupported(piece, true)
	cleared, _ := g.ClearSaturatedRows()

	assert.Zero(t, merges)
	assert.Zero(t, removed)
	assert.Zero(t, cleared)
	assert.Equal(t, 12, g.TileCount())
	assert.Zero(t, g.Score())
}
