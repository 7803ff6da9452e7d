package game

// Piece represents the active tetromino: its shape, rotation state, and the
// grid position of its anchor cell. A Piece is a value; candidate moves are
// new values that the engine only commits after a legality check.
type Piece struct {
	shape    Shape
	rotation int
	row      int
	col      int
}

// spawnPiece returns a piece at the spawn pose: rotation 0 with the anchor at
// the top center of a grid with the specified width. Offsets with negative
// rows overlap above the grid, which the collision rules permit.
func spawnPiece(shape Shape, width int) Piece {
	return Piece{
		shape: shape,
		col:   width / 2,
	}
}

// Shape returns the piece's shape.
func (p Piece) Shape() Shape {
	return p.shape
}

// Cells returns the grid positions occupied by the piece, derived from the
// shape's offset table.
func (p Piece) Cells() []Position {
	offsets := p.shape.offsets(p.rotation)

	positions := make([]Position, len(offsets))
	for i, offset := range offsets {
		positions[i] = Position{
			Row: p.row + offset.Row,
			Col: p.col + offset.Col,
		}
	}

	return positions
}

// moved returns a copy of the piece with the anchor shifted by the specified
// amounts.
func (p Piece) moved(dRow int, dCol int) Piece {
	p.row += dRow
	p.col += dCol
	return p
}

// rotated returns a copy of the piece advanced one rotation state in the
// specified direction (+1 clockwise, -1 counterclockwise), wrapping modulo 4.
func (p Piece) rotated(direction int) Piece {
	p.rotation = (p.rotation + direction + rotationStates) % rotationStates
	return p
}
