package game

import "time"

// GridCell represents a cell in the grid.
type GridCell struct {
	HasPiece bool  `json:"hasPiece"`
	Shape    Shape `json:"shape"`
}

// ActivePiece represents the falling piece.
type ActivePiece struct {
	Shape    Shape      `json:"shape"`
	Rotation int        `json:"rotation"`
	Row      int        `json:"row"`
	Col      int        `json:"col"`
	Cells    []Position `json:"cells"`
}

// Snapshot represents the state of the game for any UI to display.
type Snapshot struct {
	ID           string        `json:"id"`
	Width        int           `json:"width"`
	Height       int           `json:"height"`
	Cells        [][]GridCell  `json:"cells"`
	Active       ActivePiece   `json:"active"`
	Held         Shape         `json:"held"`
	Next         []Shape       `json:"next"`
	Score        int           `json:"score"`
	Level        int           `json:"level"`
	Lines        int           `json:"lines"`
	GameOver     bool          `json:"gameOver"`
	Paused       bool          `json:"paused"`
	FallInterval time.Duration `json:"fallInterval"`
}

// Snapshot captures the current state of the game. The engine keeps exclusive
// ownership of its state; the returned value shares nothing with it.
func (g *Game) Snapshot() Snapshot {
	cells := make([][]GridCell, g.grid.height)
	for row := range g.grid.cells {
		cells[row] = make([]GridCell, g.grid.width)
		for col := range g.grid.cells[row] {
			cells[row][col].HasPiece = g.grid.cells[row][col].hasPiece
			cells[row][col].Shape = g.grid.cells[row][col].shape
		}
	}

	return Snapshot{
		ID:     g.id.String(),
		Width:  g.grid.width,
		Height: g.grid.height,
		Cells:  cells,
		Active: ActivePiece{
			Shape:    g.piece.shape,
			Rotation: g.piece.rotation,
			Row:      g.piece.row,
			Col:      g.piece.col,
			Cells:    g.piece.Cells(),
		},
		Held:         g.held,
		Next:         g.bag.Peek(g.preview),
		Score:        g.score,
		Level:        g.level,
		Lines:        g.lines,
		GameOver:     g.gameOver,
		Paused:       g.paused,
		FallInterval: FallInterval(g.level),
	}
}
