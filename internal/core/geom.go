// Package core holds the types shared by the game and its shells: input
// actions, tick results, runtime settings and the character screen the game
// renders into. It imports neither Bubble Tea nor Ebiten.
package core

// Rect is a rectangle of screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
