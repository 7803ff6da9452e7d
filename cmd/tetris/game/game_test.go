package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()

	g, err := New(Config{Width: 10, Height: 20, Policy: Policies.SevenBag, Seed: 1})
	require.NoError(t, err)

	return g
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)
	snap := g.Snapshot()

	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, 10, snap.Width)
	assert.Equal(t, 20, snap.Height)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 1, snap.Level)
	assert.Equal(t, 0, snap.Lines)
	assert.False(t, snap.GameOver)
	assert.True(t, snap.Held.IsZero())
	assert.Len(t, snap.Next, 1)

	// The first piece spawns at the top center.
	assert.Equal(t, 0, snap.Active.Row)
	assert.Equal(t, 5, snap.Active.Col)
	assert.Equal(t, 0, snap.Active.Rotation)

	_, err := New(Config{Width: 2, Height: 2})
	assert.Error(t, err)
}

func TestHardDropOPiece(t *testing.T) {
	g := newTestGame(t)
	g.piece = spawnPiece(Shapes.O, 10)

	snap := g.HardDrop()

	// The O locked in the bottom two rows, nothing cleared, play continues
	// with a fresh piece.
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Lines)
	assert.False(t, snap.GameOver)
	assert.Equal(t, 0, snap.Active.Row)

	for _, pos := range []Position{{19, 5}, {19, 6}, {18, 5}, {18, 6}} {
		assert.True(t, g.grid.IsOccupied(pos.Row, pos.Col), "cell %v", pos)
	}
	assert.Equal(t, 4, g.grid.filledCount())
}

func TestSingleLineClear(t *testing.T) {
	g := newTestGame(t)

	// Bottom row full except one column, then drop a vertical I into the gap.
	var filled []Position
	for col := 0; col < 10; col++ {
		if col != 5 {
			filled = append(filled, Position{Row: 19, Col: col})
		}
	}
	g.grid.SetCells(filled, Shapes.J)

	g.piece = Piece{shape: Shapes.I, rotation: 1, row: 0, col: 5}

	snap := g.HardDrop()

	assert.Equal(t, 1, snap.Lines)
	assert.Equal(t, 100, snap.Score)
	assert.Equal(t, 1, snap.Level)
	assert.False(t, snap.GameOver)

	// The cleared row is gone and the rest of the I shifted down one row.
	assert.False(t, g.grid.IsRowFull(19))
	assert.Equal(t, 3, g.grid.filledCount())
	for _, row := range []int{17, 18, 19} {
		assert.True(t, g.grid.IsOccupied(row, 5), "row %d", row)
	}
	assert.False(t, g.grid.IsOccupied(16, 5))
	assert.False(t, g.grid.IsOccupied(19, 0))
}

func TestHoldOncePerSpawn(t *testing.T) {
	g := newTestGame(t)
	first := g.piece.Shape()

	snap := g.Hold()
	require.Equal(t, first, snap.Held)
	require.NotEqual(t, first, snap.Active.Shape)

	// A second hold in the same spawn cycle changes nothing.
	again := g.Hold()
	assert.Equal(t, snap.Held, again.Held)
	assert.Equal(t, snap.Active, again.Active)
}

func TestHoldSwapsAfterLock(t *testing.T) {
	g := newTestGame(t)
	first := g.piece.Shape()

	g.Hold()

	// Locking re-arms the hold.
	g.HardDrop()
	spawned := g.piece.Shape()

	snap := g.Hold()
	assert.Equal(t, first, snap.Active.Shape)
	assert.Equal(t, spawned, snap.Held)
	assert.Equal(t, 0, snap.Active.Row)
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	g := newTestGame(t)

	// Block the spawn anchor so the piece after this one can't appear.
	g.piece = spawnPiece(Shapes.O, 10)
	g.grid.SetCells([]Position{{Row: 0, Col: 5}}, Shapes.Z)

	snap := g.HardDrop()
	require.True(t, snap.GameOver)

	// Every further command is a silent no-op.
	for _, op := range []func() Snapshot{
		g.MoveLeft, g.MoveRight, g.SoftDrop, g.HardDrop,
		g.RotateCW, g.RotateCCW, g.Hold, g.Tick, g.Pause,
	} {
		assert.Equal(t, snap, op())
	}

	// Only a restart brings the game back.
	restarted := g.Restart()
	assert.False(t, restarted.GameOver)
	assert.Equal(t, 0, restarted.Score)
	assert.Equal(t, 0, g.grid.filledCount())
}

func TestPauseResume(t *testing.T) {
	g := newTestGame(t)

	paused := g.Pause()
	require.True(t, paused.Paused)

	// Everything except resume and restart is suspended.
	for _, op := range []func() Snapshot{
		g.MoveLeft, g.MoveRight, g.SoftDrop, g.HardDrop,
		g.RotateCW, g.RotateCCW, g.Hold, g.Tick,
	} {
		assert.Equal(t, paused, op())
	}

	resumed := g.Resume()
	assert.False(t, resumed.Paused)
	assert.Equal(t, paused.Active, resumed.Active)
	assert.Equal(t, paused.Score, resumed.Score)

	snap := g.SoftDrop()
	assert.Equal(t, 1, snap.Active.Row)
}

func TestRestart(t *testing.T) {
	g := newTestGame(t)
	before := g.Snapshot()

	g.HardDrop()
	g.HardDrop()
	g.Hold()
	g.Pause()

	snap := g.Restart()

	assert.NotEqual(t, before.ID, snap.ID)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Lines)
	assert.Equal(t, 1, snap.Level)
	assert.False(t, snap.Paused)
	assert.False(t, snap.GameOver)
	assert.True(t, snap.Held.IsZero())
	assert.Equal(t, 0, g.grid.filledCount())
}

func TestWallsStopMovement(t *testing.T) {
	g := newTestGame(t)
	g.piece = Piece{shape: Shapes.I, row: 5, col: 1}

	// The horizontal I spans columns col-1 .. col+2.
	snap := g.MoveLeft()
	assert.Equal(t, 1, snap.Active.Col)

	for i := 0; i < 20; i++ {
		snap = g.MoveRight()
	}
	assert.Equal(t, 7, snap.Active.Col)
}

func TestBlockedRotationIsRejected(t *testing.T) {
	g := newTestGame(t)
	g.piece = Piece{shape: Shapes.T, row: 0, col: 5}

	// Both vertical rotation states need the cell below the anchor.
	g.grid.SetCells([]Position{{Row: 1, Col: 5}}, Shapes.J)

	snap := g.RotateCW()
	assert.Equal(t, 0, snap.Active.Rotation)

	snap = g.RotateCCW()
	assert.Equal(t, 0, snap.Active.Rotation)
}

func TestTickIsGravity(t *testing.T) {
	g1 := newTestGame(t)
	g2 := newTestGame(t)

	s1 := g1.Tick()
	s2 := g2.SoftDrop()

	assert.Equal(t, s2.Active, s1.Active)
	assert.Equal(t, 1, s1.Active.Row)
}

func TestInvariantsAcrossCommands(t *testing.T) {
	g := newTestGame(t)

	ops := []func() Snapshot{
		g.MoveLeft, g.RotateCW, g.MoveRight, g.SoftDrop, g.MoveLeft,
		g.HardDrop, g.RotateCCW, g.MoveRight, g.SoftDrop, g.Hold,
	}

	var prevScore, prevLevel int

	for i := 0; i < 300; i++ {
		snap := ops[i%len(ops)]()

		// Score and level never go backward.
		require.GreaterOrEqual(t, snap.Score, prevScore, "step %d", i)
		require.GreaterOrEqual(t, snap.Level, prevLevel, "step %d", i)
		prevScore = snap.Score
		prevLevel = snap.Level

		if snap.GameOver {
			break
		}

		// The active piece never overlaps filled cells or leaves the grid.
		require.True(t, g.grid.Fits(g.piece), "step %d piece %+v", i, g.piece)
	}
}

func TestSnapshotSharesNothing(t *testing.T) {
	g := newTestGame(t)

	snap := g.Snapshot()
	snap.Cells[5][5].HasPiece = true

	assert.False(t, g.grid.IsOccupied(5, 5))
	assert.False(t, g.Snapshot().Cells[5][5].HasPiece)
}
