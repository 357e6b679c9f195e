package board

// DetectUnsupported returns every settled tile that has no path to the floor.
//
// A tile is supported when an occupied bottom-row cell reaches it through
// up/down/left/right steps over occupied cells, or when it shares a cell with
// the active piece. The traversal is an iterative depth-first search with an
// explicit stack. Results are in row-major order, bottom row first.
func (g *Grid) DetectUnsupported(active *Tetromino) []Point {
	var visited [Height][Width]bool
	stack := make([]Point, 0, Height*Width)

	for col := range Width {
		if !g.cells[0][col].Empty() {
			stack = append(stack, Point{X: col, Y: 0})
		}
	}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[p.Y][p.X] {
			continue
		}
		visited[p.Y][p.X] = true

		for _, n := range p.Neighborhood() {
			if g.Occupied(n) && !visited[n.Y][n.X] {
				stack = append(stack, n)
			}
		}
	}

	if active != nil {
		for _, p := range active.Cells() {
			if InBounds(p) {
				visited[p.Y][p.X] = true
			}
		}
	}

	var free []Point
	for row := range Height {
		for col := range Width {
			if !g.cells[row][col].Empty() && !visited[row][col] {
				free = append(free, Point{X: col, Y: row})
			}
		}
	}
	return free
}

// RemoveUnsupported deletes every tile DetectUnsupported reports. With credit
// set, each removed tile's value is added to the score before it goes.
func (g *Grid) RemoveUnsupported(active *Tetromino, credit bool) (removed, gained int) {
	for _, p := range g.DetectUnsupported(active) {
		t := g.cells[p.Y][p.X]
		if credit {
			g.score += t.Value
			gained += t.Value
		}
		g.cells[p.Y][p.X] = Tile{}
		removed++
	}
	return removed, gained
}
