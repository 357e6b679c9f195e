package board

// MergeOnce finds the first vertically adjacent pair of equal tiles and
// merges it. Rows are scanned bottom to top and, within a row, columns left
// to right; that order decides which pair wins when several qualify.
//
// The lower tile doubles and the score grows by the doubled value. The upper
// tile and everything above it in the column drop by one cell, vacating the
// top of the column.
func (g *Grid) MergeOnce() (merged bool, gained int) {
	for row := 1; row < Height; row++ {
		for col := range Width {
			upper := g.cells[row][col]
			lower := g.cells[row-1][col]
			if upper.Empty() || lower.Empty() || upper.Value != lower.Value {
				continue
			}

			result := lower.Value * 2
			g.cells[row-1][col] = Tile{Value: result}
			g.score += result

			for r := row; r < Height-1; r++ {
				g.cells[r][col] = g.cells[r+1][col]
			}
			g.cells[Height-1][col] = Tile{}

			return true, result
		}
	}
	return false, 0
}

// MergeCascade calls MergeOnce until no pair is left. A merge can expose a
// new equal pair above or below it, so the scan restarts from the bottom
// after every merge.
func (g *Grid) MergeCascade() (merges, gained int) {
	for {
		merged, points := g.MergeOnce()
		if !merged {
			return merges, gained
		}
		merges++
		gained += points
	}
}

// HasEqualVerticalPair reports whether any column still holds two adjacent
// tiles of the same value.
func (g *Grid) HasEqualVerticalPair() bool {
	for row := 1; row < Height; row++ {
		for col := range Width {
			upper, lower := g.cells[row][col], g.cells[row-1][col]
			if !upper.Empty() && upper.Value == lower.Value {
				return true
			}
		}
	}
	return false
}
