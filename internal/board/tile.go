// Package board implements the Tetris 2048 playfield: numbered tiles, the
// fixed-size grid with its merge, connectivity and row-clear algorithms, and
// the falling tetrominoes that collide with it.
package board

import "math/bits"

// Tile bucket bounds. Buckets index a 12-entry palette: value 2 is bucket 0
// and every value from 4096 upward shares the last bucket.
const (
	MinTileValue = 2
	MaxBucket    = 11
)

// Tile is a numbered unit on the grid. The zero Tile is an empty cell.
type Tile struct {
	Value int
}

// Empty reports whether the cell holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Bucket returns floor(log2(value))-1, saturating at MaxBucket.
// Empty tiles return -1.
func (t Tile) Bucket() int {
	if t.Value < MinTileValue {
		return -1
	}
	b := bits.Len(uint(t.Value)) - 2
	if b > MaxBucket {
		return MaxBucket
	}
	return b
}
