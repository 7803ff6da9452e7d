package board

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/rilder-almeida/termtris/cmd/tetris/game"
)

// pollEvents starts goroutines to handle terminal events and gravity ticks.
// All engine calls happen on one goroutine, so commands and ticks are
// processed strictly one at a time.
func (b *Board) pollEvents() chan struct{} {
	quit := make(chan struct{})

	events := make(chan tcell.Event)

	go func() {
		for {
			event := b.screen.PollEvent()
			if event == nil {

				// The screen was finalized.
				return
			}
			events <- event
		}
	}()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				b.screen.Clear()
				fmt.Println(r)
				debug.PrintStack()
			}
		}()

		ticker := time.NewTicker(b.last.FallInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:

				// Pause suspends gravity; game over stops it.
				if b.last.Paused || b.last.GameOver {
					continue
				}

				b.apply(b.game.Tick(), ticker)

			case event := <-events:
				switch ev := event.(type) {
				case *tcell.EventResize:
					b.screen.Sync()
					b.render(b.last)

				case *tcell.EventKey:
					if b.handleKey(ev, quit, ticker) {
						return
					}
				}
			}
		}
	}()

	return quit
}

// handleKey processes a single key event and reports whether the player quit.
func (b *Board) handleKey(ev *tcell.EventKey, quit chan struct{}, ticker *time.Ticker) bool {
	switch ev.Key() {
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			close(quit)
			return true

		case 'n':
			b.logf("game %s restarted at score %d", b.last.ID, b.last.Score)
			b.apply(b.game.Restart(), ticker)

		case 'p':
			if b.last.Paused {
				b.apply(b.game.Resume(), ticker)
			} else {
				b.apply(b.game.Pause(), ticker)
			}

		case 'z':
			b.apply(b.game.RotateCCW(), ticker)

		case 'x':
			b.apply(b.game.RotateCW(), ticker)

		case 'c':
			b.apply(b.game.Hold(), ticker)

		case ' ':
			b.apply(b.game.HardDrop(), ticker)
		}

	case tcell.KeyLeft:
		b.apply(b.game.MoveLeft(), ticker)

	case tcell.KeyRight:
		b.apply(b.game.MoveRight(), ticker)

	case tcell.KeyDown:
		b.apply(b.game.SoftDrop(), ticker)

	case tcell.KeyUp:
		b.apply(b.game.RotateCW(), ticker)

	case tcell.KeyEscape, tcell.KeyCtrlC:
		close(quit)
		return true
	}

	return false
}

// apply renders the snapshot an operation produced and keeps the gravity
// ticker in step with the engine's fall interval.
func (b *Board) apply(snap game.Snapshot, ticker *time.Ticker) {
	if snap.GameOver && !b.last.GameOver {
		b.logf("game %s over: score %d level %d lines %d", snap.ID, snap.Score, snap.Level, snap.Lines)
	}

	if snap.FallInterval != b.last.FallInterval {
		ticker.Reset(snap.FallInterval)
	}

	b.render(snap)
}
