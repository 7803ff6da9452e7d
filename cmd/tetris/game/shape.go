package game

import "fmt"

type shapeSet struct {
	I Shape
	J Shape
	L Shape
	O Shape
	S Shape
	T Shape
	Z Shape
}

// Shapes represents the set of tetromino shapes that can be used.
var Shapes = shapeSet{
	I: newShape("I"),
	J: newShape("J"),
	L: newShape("L"),
	O: newShape("O"),
	S: newShape("S"),
	T: newShape("T"),
	Z: newShape("Z"),
}

// AllShapes returns the seven shapes in a fixed order.
func AllShapes() [7]Shape {
	return [7]Shape{Shapes.I, Shapes.J, Shapes.L, Shapes.O, Shapes.S, Shapes.T, Shapes.Z}
}

// =============================================================================

// Set of known shapes.
var shapes = make(map[string]Shape)

// Shape represents a tetromino shape in the system.
type Shape struct {
	name string
}

func newShape(shape string) Shape {
	s := Shape{shape}
	shapes[shape] = s
	return s
}

// IsZero checks if the shape is set to its zero value.
func (s Shape) IsZero() bool {
	return s.name == ""
}

// String returns the name of the shape.
func (s Shape) String() string {
	return s.name
}

// Equal provides support for the go-cmp package and testing.
func (s Shape) Equal(s2 Shape) bool {
	return s.name == s2.name
}

// =============================================================================

// ParseShape parses the string value and returns a shape if one exists.
func ParseShape(value string) (Shape, error) {
	shape, exists := shapes[value]
	if !exists {
		return Shape{}, fmt.Errorf("invalid shape %q", value)
	}

	return shape, nil
}

// MustParseShape parses the string value and returns a shape if one exists. If
// an error occurs the function panics.
func MustParseShape(value string) Shape {
	shape, err := ParseShape(value)
	if err != nil {
		panic(err)
	}

	return shape
}

// =============================================================================

const (
	rotationStates = 4
	cellsPerPiece  = 4
)

// Offset is a (row, col) displacement from a piece's anchor cell.
type Offset struct {
	Row int
	Col int
}

// shapeOffsets holds the four rotation states for every shape. Each state is
// the set of cell offsets from the anchor. Negative rows extend above the
// anchor, which lets a freshly spawned piece overlap the top of the grid.
var shapeOffsets = map[Shape][rotationStates][cellsPerPiece]Offset{
	Shapes.I: {
		{{0, 0}, {0, -1}, {0, 1}, {0, 2}},
		{{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
		{{0, 0}, {0, -1}, {0, 1}, {0, 2}},
		{{0, 0}, {-1, 0}, {1, 0}, {2, 0}},
	},
	Shapes.J: {
		{{0, 0}, {0, -1}, {0, 1}, {-1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {1, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, -1}},
		{{0, 0}, {-1, 0}, {1, 0}, {-1, 1}},
	},
	Shapes.L: {
		{{0, 0}, {0, -1}, {0, 1}, {-1, -1}},
		{{0, 0}, {-1, 0}, {1, 0}, {-1, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, 1}},
		{{0, 0}, {-1, 0}, {1, 0}, {1, 1}},
	},
	Shapes.O: {
		{{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, 0}, {-1, 1}},
	},
	Shapes.S: {
		{{0, 0}, {0, -1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {-1, -1}, {0, -1}, {1, 0}},
		{{0, 0}, {0, -1}, {-1, 0}, {-1, 1}},
		{{0, 0}, {-1, -1}, {0, -1}, {1, 0}},
	},
	Shapes.T: {
		{{0, 0}, {0, -1}, {0, 1}, {-1, 0}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, -1}},
		{{0, 0}, {0, -1}, {0, 1}, {1, 0}},
		{{0, 0}, {-1, 0}, {1, 0}, {0, 1}},
	},
	Shapes.Z: {
		{{0, 0}, {0, 1}, {-1, -1}, {-1, 0}},
		{{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
		{{0, 0}, {0, 1}, {-1, -1}, {-1, 0}},
		{{0, 0}, {1, 0}, {0, 1}, {-1, 1}},
	},
}

// offsets returns the cell offsets for the shape at the specified rotation
// state. The rotation state must already be normalized to 0..3.
func (s Shape) offsets(rotation int) [cellsPerPiece]Offset {
	return shapeOffsets[s][rotation]
}

// Cells returns the cell offsets for the shape at rotation state 0. UIs use
// this to draw the next and held piece previews.
func (s Shape) Cells() [cellsPerPiece]Offset {
	return shapeOffsets[s][0]
}
