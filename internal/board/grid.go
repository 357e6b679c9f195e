package board

import (
	"math/rand"
)

// Grid dimensions. Row Height-1 is the overflow row: a piece that locks with
// a block there ends the game, so settled tiles only ever occupy rows
// 0..Height-2.
const (
	Height = 20
	Width  = 12
)

// DefaultSpawn4Probability is the chance that a locked block becomes a 4
// instead of a 2.
const DefaultSpawn4Probability = 0.5

// Grid is the fixed-size board of settled tiles together with the
// cumulative score of the game being played on it.
type Grid struct {
	cells  [Height][Width]Tile
	score  int
	rng    *rand.Rand
	spawn4 float64
}

// NewGrid creates an empty grid. New tiles draw their value from rng; a nil
// rng gets a fixed-seed source so that tests stay deterministic.
func NewGrid(rng *rand.Rand, spawn4Prob float64) *Grid {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Grid{
		rng:    rng,
		spawn4: spawn4Prob,
	}
}

// InBounds reports whether p lies inside the grid.
func InBounds(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}

// At returns the tile at p, or an empty tile when p is outside the grid.
func (g *Grid) At(p Point) Tile {
	if !InBounds(p) {
		return Tile{}
	}
	return g.cells[p.Y][p.X]
}

// Set places t at p. Out-of-bounds points are ignored.
func (g *Grid) Set(p Point, t Tile) {
	if !InBounds(p) {
		return
	}
	g.cells[p.Y][p.X] = t
}

// Occupied reports whether p is inside the grid and holds a tile.
func (g *Grid) Occupied(p Point) bool {
	return InBounds(p) && !g.cells[p.Y][p.X].Empty()
}

// Cells returns a copy of the tile matrix, indexed [row][col].
func (g *Grid) Cells() [Height][Width]Tile {
	return g.cells
}

// Score returns the cumulative score.
func (g *Grid) Score() int {
	return g.score
}

// TileCount returns the number of occupied cells.
func (g *Grid) TileCount() int {
	n := 0
	for row := range Height {
		for col := range Width {
			if !g.cells[row][col].Empty() {
				n++
			}
		}
	}
	return n
}

// MaxTile returns the highest tile value on the grid, or 0 when empty.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for row := range Height {
		for col := range Width {
			if g.cells[row][col].Value > maxVal {
				maxVal = g.cells[row][col].Value
			}
		}
	}
	return maxVal
}

// HasTileAtLeast scans the whole grid for a tile of at least value.
func (g *Grid) HasTileAtLeast(value int) bool {
	return g.MaxTile() >= value
}

// Lock writes the blocks of a landed piece into the grid as new tiles of
// value 2 or 4. Any block on or above the overflow row signals game over;
// blocks below it are still written.
func (g *Grid) Lock(piece *Tetromino) (gameOver bool) {
	for _, p := range piece.Cells() {
		if p.Y >= Height-1 {
			gameOver = true
			continue
		}
		if !InBounds(p) {
			continue
		}
		g.cells[p.Y][p.X] = g.newTile()
	}
	return gameOver
}

// newTile draws a 2 or a 4.
func (g *Grid) newTile() Tile {
	if g.rng.Float64() < g.spawn4 {
		return Tile{Value: 4}
	}
	return Tile{Value: 2}
}

// fits reports whether every cell is a legal position for a falling block:
// inside the side walls, not below the floor, and not on a settled tile.
// Cells above the top of the grid are legal.
func (g *Grid) fits(cells [4]Point) bool {
	for _, p := range cells {
		if p.X < 0 || p.X >= Width || p.Y < 0 {
			return false
		}
		if p.Y < Height && !g.cells[p.Y][p.X].Empty() {
			return false
		}
	}
	return true
}
