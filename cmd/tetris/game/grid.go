// Package game implements the tetris engine: the grid, the active piece, the
// bag randomizer, and the rules that tie them together. The package has no UI
// imports; any rendering layer works from the Snapshot it produces.
package game

import "fmt"

// Position is an absolute (row, col) cell location in grid coordinates. Row 0
// is the top of the grid and rows grow downward.
type Position struct {
	Row int
	Col int
}

type cell struct {
	hasPiece bool
	shape    Shape
}

// Grid represents the playfield: a fixed width by height matrix of cells.
type Grid struct {
	width  int
	height int
	cells  [][]cell
}

// NewGrid constructs an empty grid with the specified dimensions. Both
// dimensions must be at least 4 so every tetromino can exist on the grid.
func NewGrid(width int, height int) (*Grid, error) {
	if width < cellsPerPiece || height < cellsPerPiece {
		return nil, fmt.Errorf("invalid grid dimensions %dx%d: minimum is %dx%d", width, height, cellsPerPiece, cellsPerPiece)
	}

	g := Grid{
		width:  width,
		height: height,
	}
	g.reset()

	return &g, nil
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// reset empties every cell.
func (g *Grid) reset() {
	g.cells = make([][]cell, g.height)
	for row := range g.cells {
		g.cells[row] = make([]cell, g.width)
	}
}

// IsOccupied reports whether the specified cell can't hold a piece cell. The
// sides and the bottom of the grid act as a solid boundary. Rows above the
// grid are open so a spawning piece may overlap the top edge.
func (g *Grid) IsOccupied(row int, col int) bool {
	if col < 0 || col >= g.width || row >= g.height {
		return true
	}

	if row < 0 {
		return false
	}

	return g.cells[row][col].hasPiece
}

// Fits reports whether every cell of the piece lands on a legal position.
// This is the single legality check behind every move, rotation, and spawn.
func (g *Grid) Fits(p Piece) bool {
	for _, pos := range p.Cells() {
		if g.IsOccupied(pos.Row, pos.Col) {
			return false
		}
	}

	return true
}

// IsRowFull reports whether every cell in the specified row holds a piece.
func (g *Grid) IsRowFull(row int) bool {
	if row < 0 || row >= g.height {
		return false
	}

	for col := range g.cells[row] {
		if !g.cells[row][col].hasPiece {
			return false
		}
	}

	return true
}

// SetCells writes the shape into the specified cells. Positions outside the
// grid are skipped, which covers a piece locking while it still overlaps the
// top edge.
func (g *Grid) SetCells(positions []Position, shape Shape) {
	for _, pos := range positions {
		if pos.Row < 0 || pos.Row >= g.height || pos.Col < 0 || pos.Col >= g.width {
			continue
		}

		g.cells[pos.Row][pos.Col] = cell{
			hasPiece: true,
			shape:    shape,
		}
	}
}

// fullRows returns the indices of every completed row, top to bottom.
func (g *Grid) fullRows() []int {
	var rows []int

	for row := 0; row < g.height; row++ {
		if g.IsRowFull(row) {
			rows = append(rows, row)
		}
	}

	return rows
}

// ClearRows removes the specified rows, shifts everything above them down by
// the number of rows removed below, and leaves fresh empty rows at the top.
func (g *Grid) ClearRows(rows []int) {
	cleared := make(map[int]bool, len(rows))
	for _, row := range rows {
		cleared[row] = true
	}

	dest := g.height - 1
	for src := g.height - 1; src >= 0; src-- {
		if cleared[src] {
			continue
		}

		g.cells[dest] = g.cells[src]
		dest--
	}

	for ; dest >= 0; dest-- {
		g.cells[dest] = make([]cell, g.width)
	}
}

// filledCount returns the number of cells currently holding a piece.
func (g *Grid) filledCount() int {
	var count int

	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].hasPiece {
				count++
			}
		}
	}

	return count
}
