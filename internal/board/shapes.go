package board

// Shape is one of the seven tetromino variants.
type Shape int

const (
	ShapeI Shape = iota
	ShapeO
	ShapeZ
	ShapeJ
	ShapeL
	ShapeT
	ShapeS
)

// Shapes lists every variant in spawn-table order.
var Shapes = [...]Shape{ShapeI, ShapeO, ShapeZ, ShapeJ, ShapeL, ShapeT, ShapeS}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	default:
		return "?"
	}
}

// rotationTable holds block offsets for each clockwise rotation state,
// relative to the bottom-left corner of the piece's bounding box. Y grows
// upward. O has a single state.
var rotationTable = map[Shape][][4]Point{
	ShapeI: {
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{2, 3}, {2, 2}, {2, 1}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{1, 3}, {1, 2}, {1, 1}, {1, 0}},
	},
	ShapeO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	ShapeZ: {
		{{0, 2}, {1, 2}, {1, 1}, {2, 1}},
		{{2, 2}, {1, 1}, {2, 1}, {1, 0}},
		{{0, 1}, {1, 1}, {1, 0}, {2, 0}},
		{{1, 2}, {0, 1}, {1, 1}, {0, 0}},
	},
	ShapeJ: {
		{{0, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {2, 2}, {1, 1}, {1, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 2}, {1, 1}, {0, 0}, {1, 0}},
	},
	ShapeL: {
		{{2, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {1, 1}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 0}},
		{{0, 2}, {1, 2}, {1, 1}, {1, 0}},
	},
	ShapeT: {
		{{1, 2}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 2}, {1, 1}, {2, 1}, {1, 0}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 0}},
		{{1, 2}, {0, 1}, {1, 1}, {1, 0}},
	},
	ShapeS: {
		{{1, 2}, {2, 2}, {0, 1}, {1, 1}},
		{{1, 2}, {1, 1}, {2, 1}, {2, 0}},
		{{1, 1}, {2, 1}, {0, 0}, {1, 0}},
		{{0, 2}, {0, 1}, {1, 1}, {1, 0}},
	},
}

// RotationStates returns how many distinct rotation states a shape has.
func RotationStates(s Shape) int {
	return len(rotationTable[s])
}

// Offsets returns the block offsets of shape s in rotation state r.
func Offsets(s Shape, r int) [4]Point {
	states := rotationTable[s]
	return states[r%len(states)]
}
