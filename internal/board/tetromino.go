package board

// Direction is a translation a falling piece can attempt.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirDown
)

func (d Direction) delta() Point {
	switch d {
	case DirLeft:
		return Point{-1, 0}
	case DirRight:
		return Point{1, 0}
	case DirDown:
		return Point{0, -1}
	default:
		return Point{}
	}
}

// Tetromino is a falling piece: a shape, its rotation state, and the grid
// position of the bottom-left corner of its bounding box.
type Tetromino struct {
	shape    Shape
	rotation int
	anchor   Point
}

// NewTetromino creates a piece at the spawn position: horizontally centered
// with its highest block on the overflow row.
func NewTetromino(shape Shape) *Tetromino {
	t := &Tetromino{shape: shape}

	var maxX, maxY int
	for _, o := range Offsets(shape, 0) {
		maxX = max(maxX, o.X)
		maxY = max(maxY, o.Y)
	}
	t.anchor = Point{X: (Width - (maxX + 1)) / 2, Y: Height - 1 - maxY}
	return t
}

// NewTetrominoAt creates a piece in rotation state 0 with its bounding box
// anchored at the given grid point.
func NewTetrominoAt(shape Shape, anchor Point) *Tetromino {
	return &Tetromino{shape: shape, anchor: anchor}
}

// Shape returns the piece variant.
func (t *Tetromino) Shape() Shape { return t.shape }

// Rotation returns the current rotation state.
func (t *Tetromino) Rotation() int { return t.rotation }

// Anchor returns the bottom-left corner of the bounding box.
func (t *Tetromino) Anchor() Point { return t.anchor }

// Offsets returns the block offsets for the current rotation.
func (t *Tetromino) Offsets() [4]Point {
	return Offsets(t.shape, t.rotation)
}

// Cells returns the grid coordinates of the four blocks.
func (t *Tetromino) Cells() [4]Point {
	return t.cellsAt(t.anchor, t.rotation)
}

func (t *Tetromino) cellsAt(anchor Point, rotation int) [4]Point {
	var cells [4]Point
	for i, o := range Offsets(t.shape, rotation) {
		cells[i] = anchor.Add(o)
	}
	return cells
}

// Occupies reports whether one of the piece's blocks is at p.
func (t *Tetromino) Occupies(p Point) bool {
	for _, c := range t.Cells() {
		if c == p {
			return true
		}
	}
	return false
}

// Move shifts the piece one cell in dir if the target position is legal.
// A false result from DirDown means the piece has landed.
func (t *Tetromino) Move(dir Direction, g *Grid) bool {
	target := t.anchor.Add(dir.delta())
	if !g.fits(t.cellsAt(target, t.rotation)) {
		return false
	}
	t.anchor = target
	return true
}

// Rotate advances the piece to its next clockwise state. The rotation is
// rejected, without any wall kick, if a rotated block would be illegal.
func (t *Tetromino) Rotate(g *Grid) bool {
	next := (t.rotation + 1) % RotationStates(t.shape)
	if next == t.rotation {
		return true
	}
	if !g.fits(t.cellsAt(t.anchor, next)) {
		return false
	}
	t.rotation = next
	return true
}

// Drop moves the piece down until it lands and returns the rows travelled.
func (t *Tetromino) Drop(g *Grid) int {
	rows := 0
	for t.Move(DirDown, g) {
		rows++
	}
	return rows
}

// GhostCells returns where the piece would land if dropped now.
func (t *Tetromino) GhostCells(g *Grid) [4]Point {
	ghost := *t
	ghost.Drop(g)
	return ghost.Cells()
}

// Fits reports whether the piece's current position is legal on g.
func (t *Tetromino) Fits(g *Grid) bool {
	return g.fits(t.Cells())
}
