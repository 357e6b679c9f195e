package board

// RowSaturated reports whether every cell of row holds a tile.
func (g *Grid) RowSaturated(row int) bool {
	if row < 0 || row >= Height {
		return false
	}
	for col := range Width {
		if g.cells[row][col].Empty() {
			return false
		}
	}
	return true
}

// ClearSaturatedRows removes every full row in one settle step. Each removed
// row adds the sum of its tile values to the score. The remaining rows drop
// down in their original order and empty rows fill in at the top.
func (g *Grid) ClearSaturatedRows() (cleared, gained int) {
	write := 0
	for row := range Height {
		if g.RowSaturated(row) {
			for col := range Width {
				gained += g.cells[row][col].Value
			}
			cleared++
			continue
		}
		if write != row {
			g.cells[write] = g.cells[row]
		}
		write++
	}

	for ; write < Height; write++ {
		g.cells[write] = [Width]Tile{}
	}

	g.score += gained
	return cleared, gained
}
