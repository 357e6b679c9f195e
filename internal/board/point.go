package board

import (
	"strconv"
	"strings"
)

// Point is a grid coordinate or offset. X is the column, Y is the row, and
// row 0 is the floor.
type Point struct {
	X, Y int
}

// Add returns the component-wise sum of two points.
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}

// Neighborhood returns the Von Neumann neighborhood of a point
func (p Point) Neighborhood() [4]Point {
	return [4]Point{
		{p.X - 1, p.Y},
		{p.X, p.Y - 1},
		{p.X + 1, p.Y},
		{p.X, p.Y + 1},
	}
}
