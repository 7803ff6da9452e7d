package game

import (
	"fmt"

	"github.com/google/uuid"
)

const defaultPreview = 1

// Config carries the knobs for constructing a game.
type Config struct {
	Width   int
	Height  int
	Preview int
	Policy  Policy
	Seed    int64
}

// Game represents a single tetris game and all its state. It processes one
// command at a time and owns every mutable structure; rendering layers only
// ever see the Snapshot an operation returns.
type Game struct {
	id       uuid.UUID
	grid     *Grid
	bag      *Bag
	piece    Piece
	held     Shape
	holdUsed bool
	preview  int
	score    int
	level    int
	lines    int
	gameOver bool
	paused   bool
}

// New constructs a game with an empty grid and the first piece spawned from
// the bag.
func New(cfg Config) (*Game, error) {
	grid, err := NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("new grid: %w", err)
	}

	preview := cfg.Preview
	if preview <= 0 {
		preview = defaultPreview
	}

	g := Game{
		id:      uuid.New(),
		grid:    grid,
		bag:     NewBag(cfg.Policy, cfg.Seed),
		preview: preview,
		level:   1,
	}
	g.spawn()

	return &g, nil
}

// MoveLeft shifts the active piece one column left when legal. An illegal
// move is a silent no-op.
func (g *Game) MoveLeft() Snapshot {
	g.tryMove(0, -1)
	return g.Snapshot()
}

// MoveRight shifts the active piece one column right when legal. An illegal
// move is a silent no-op.
func (g *Game) MoveRight() Snapshot {
	g.tryMove(0, 1)
	return g.Snapshot()
}

// SoftDrop moves the active piece down one row. When the piece can't move
// down it locks into the grid instead.
func (g *Game) SoftDrop() Snapshot {
	if !g.playable() {
		return g.Snapshot()
	}

	if !g.tryMove(1, 0) {
		g.lock()
	}

	return g.Snapshot()
}

// Tick applies one gravity step. Gravity is just a downward move the player
// didn't ask for.
func (g *Game) Tick() Snapshot {
	return g.SoftDrop()
}

// HardDrop sends the active piece straight down to its lowest legal position
// and locks it there.
func (g *Game) HardDrop() Snapshot {
	if !g.playable() {
		return g.Snapshot()
	}

	for g.tryMove(1, 0) {
	}
	g.lock()

	return g.Snapshot()
}

// RotateCW advances the active piece one rotation state clockwise when legal.
// There is no kick search: a rotation that would collide is a silent no-op.
func (g *Game) RotateCW() Snapshot {
	g.tryRotate(1)
	return g.Snapshot()
}

// RotateCCW advances the active piece one rotation state counterclockwise
// when legal.
func (g *Game) RotateCCW() Snapshot {
	g.tryRotate(-1)
	return g.Snapshot()
}

// Hold sets the active shape aside and continues with the previously held
// shape, or with the next shape from the bag when nothing is held. The swap
// is allowed at most once per spawn cycle; a second call before the next
// lock-in is a no-op.
func (g *Game) Hold() Snapshot {
	if !g.playable() || g.holdUsed {
		return g.Snapshot()
	}

	prev := g.held
	g.held = g.piece.shape

	switch {
	case prev.IsZero():
		g.spawn()
	default:
		g.spawnShape(prev)
	}

	g.holdUsed = true

	return g.Snapshot()
}

// Pause suspends the game. While paused every operation except Resume and
// Restart is a no-op.
func (g *Game) Pause() Snapshot {
	if !g.gameOver {
		g.paused = true
	}

	return g.Snapshot()
}

// Resume lifts a pause, leaving all other state unchanged.
func (g *Game) Resume() Snapshot {
	g.paused = false
	return g.Snapshot()
}

// Restart abandons the current game and starts a fresh one on the same grid
// dimensions and bag. This is the only way out of the game over state.
func (g *Game) Restart() Snapshot {
	g.id = uuid.New()
	g.grid.reset()
	g.held = Shape{}
	g.score = 0
	g.lines = 0
	g.level = 1
	g.gameOver = false
	g.paused = false
	g.spawn()

	return g.Snapshot()
}

// =============================================================================

// playable reports whether the game accepts piece commands.
func (g *Game) playable() bool {
	return !g.gameOver && !g.paused
}

// tryMove commits a shifted candidate piece when it fits and reports whether
// the move was committed.
func (g *Game) tryMove(dRow int, dCol int) bool {
	if !g.playable() {
		return false
	}

	candidate := g.piece.moved(dRow, dCol)
	if !g.grid.Fits(candidate) {
		return false
	}

	g.piece = candidate

	return true
}

// tryRotate commits a rotated candidate piece when it fits and reports
// whether the rotation was committed.
func (g *Game) tryRotate(direction int) bool {
	if !g.playable() {
		return false
	}

	candidate := g.piece.rotated(direction)
	if !g.grid.Fits(candidate) {
		return false
	}

	g.piece = candidate

	return true
}

// lock writes the active piece into the grid, clears any completed rows,
// updates the score and level, and spawns the next piece.
func (g *Game) lock() {
	g.grid.SetCells(g.piece.Cells(), g.piece.shape)

	if full := g.grid.fullRows(); len(full) > 0 {
		g.grid.ClearRows(full)

		// The score for a clear uses the level the rows were cleared at.
		g.score += scoreForClear(len(full), g.level)
		g.lines += len(full)
		g.level = levelForLines(g.lines)
	}

	g.spawn()
}

// spawn pops the next shape from the bag and places it at the spawn pose.
func (g *Game) spawn() {
	g.spawnShape(g.bag.Next())
}

// spawnShape places the specified shape at the spawn pose and re-arms the
// hold. The game is over when the spawn position is already blocked.
func (g *Game) spawnShape(shape Shape) {
	g.piece = spawnPiece(shape, g.grid.width)
	g.holdUsed = false

	if !g.grid.Fits(g.piece) {
		g.gameOver = true
	}
}
