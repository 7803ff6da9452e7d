// Package board renders the game in a terminal and feeds it player input.
package board

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/rilder-almeida/termtris/cmd/tetris/game"
)

const (
	cellWidth = 2
	padTop    = 2
	padLeft   = 2
	panelGap  = 4
)

const (
	hozBotRune = '▅'
	verRune    = '┃'
	emptyRune  = '·'
	space      = 32
)

var shapeColors = map[game.Shape]tcell.Color{
	game.Shapes.I: tcell.ColorAqua,
	game.Shapes.J: tcell.ColorBlue,
	game.Shapes.L: tcell.ColorOrange,
	game.Shapes.O: tcell.ColorYellow,
	game.Shapes.S: tcell.ColorGreen,
	game.Shapes.T: tcell.ColorPurple,
	game.Shapes.Z: tcell.ColorRed,
}

// Board renders the game on a terminal screen and owns the event loop that
// drives the engine.
type Board struct {
	game   *game.Game
	screen tcell.Screen
	style  tcell.Style
	debug  bool
	last   game.Snapshot
}

// New constructs a board on the real terminal and renders the initial state.
func New(g *game.Game, debug bool) (*Board, error) {
	tcell.SetEncodingFallback(tcell.EncodingFallbackASCII)

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("new screen: %w", err)
	}

	return newBoard(g, screen, debug)
}

func newBoard(g *game.Game, screen tcell.Screen, debug bool) (*Board, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("screen init: %w", err)
	}

	style := tcell.StyleDefault
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

	board := Board{
		game:   g,
		screen: screen,
		style:  style,
		debug:  debug,
	}

	board.render(g.Snapshot())

	return &board, nil
}

// Shutdown tears down the game board.
func (b *Board) Shutdown() {
	b.screen.Fini()
}

// Run starts a goroutine to handle terminal events and gravity ticks. The
// returned channel is closed when the player quits.
func (b *Board) Run() chan struct{} {
	return b.pollEvents()
}

// render draws the complete screen for the specified snapshot.
func (b *Board) render(snap game.Snapshot) {
	b.last = snap

	b.screen.Clear()

	b.drawWell(snap)
	b.drawCells(snap)
	b.drawPanel(snap)

	switch {
	case snap.GameOver:
		b.drawModal(snap, " GAME OVER ", "<n> new game  <q> quit")
	case snap.Paused:
		b.drawModal(snap, " PAUSED ", "<p> resume")
	}

	b.screen.Show()
}

// drawWell draws the playfield border and the title line.
func (b *Board) drawWell(snap game.Snapshot) {
	style := b.style
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorGrey)

	wellWidth := snap.Width * cellWidth

	for row := 0; row < snap.Height; row++ {
		b.screen.SetContent(padLeft-1, row+padTop, verRune, nil, style)
		b.screen.SetContent(padLeft+wellWidth, row+padTop, verRune, nil, style)
	}

	for w := padLeft - 1; w <= padLeft+wellWidth; w++ {
		b.screen.SetContent(w, snap.Height+padTop, hozBotRune, nil, style)
	}

	b.print(padLeft, 0, "T E R M T R I S")
}

// drawCells draws the settled grid contents and the active piece over them.
func (b *Board) drawCells(snap game.Snapshot) {
	emptyStyle := b.style.Foreground(tcell.ColorGrey)

	for row := range snap.Cells {
		for col := range snap.Cells[row] {
			x := padLeft + col*cellWidth
			y := padTop + row

			cell := snap.Cells[row][col]
			if !cell.HasPiece {
				b.screen.SetContent(x, y, space, nil, emptyStyle)
				b.screen.SetContent(x+1, y, emptyRune, nil, emptyStyle)
				continue
			}

			b.fillCell(x, y, shapeColors[cell.Shape])
		}
	}

	if snap.GameOver {
		return
	}

	color := shapeColors[snap.Active.Shape]
	for _, pos := range snap.Active.Cells {
		if pos.Row < 0 {
			continue
		}
		b.fillCell(padLeft+pos.Col*cellWidth, padTop+pos.Row, color)
	}
}

// fillCell paints one grid cell, two characters wide.
func (b *Board) fillCell(x int, y int, color tcell.Color) {
	style := b.style.Background(color)
	b.screen.SetContent(x, y, space, nil, style)
	b.screen.SetContent(x+1, y, space, nil, style)
}

// drawPanel draws the score panel, the next and held previews, and the key
// help to the right of the well.
func (b *Board) drawPanel(snap game.Snapshot) {
	x := padLeft + snap.Width*cellWidth + panelGap
	y := padTop

	b.print(x, y, fmt.Sprintf("score  %d", snap.Score))
	b.print(x, y+1, fmt.Sprintf("level  %d", snap.Level))
	b.print(x, y+2, fmt.Sprintf("lines  %d", snap.Lines))

	b.print(x, y+4, "next")
	for i, shape := range snap.Next {
		b.drawPreview(shape, x, y+6+i*3)
	}

	heldY := y + 6 + len(snap.Next)*3 + 1
	b.print(x, heldY, "held")
	if !snap.Held.IsZero() {
		b.drawPreview(snap.Held, x, heldY+2)
	}

	keysY := heldY + 5
	b.print(x, keysY, "<left/right> move")
	b.print(x, keysY+1, "<down> soft drop   <space> hard drop")
	b.print(x, keysY+2, "<up> rotate        <z> rotate ccw")
	b.print(x, keysY+3, "<c> hold           <p> pause")
	b.print(x, keysY+4, "<n> new game       <q> quit")
}

// drawPreview draws a shape in a 2x4 cell area with its anchor at the second
// row, matching the rotation 0 offset ranges.
func (b *Board) drawPreview(shape game.Shape, x int, y int) {
	color := shapeColors[shape]

	for _, offset := range shape.Cells() {
		col := offset.Col + 1
		row := offset.Row + 1
		b.fillCell(x+col*cellWidth, y+row, color)
	}
}

// drawModal draws a message box centered over the well.
func (b *Board) drawModal(snap game.Snapshot, title string, help string) {
	wellWidth := snap.Width * cellWidth

	boxWidth := len(help) + 4
	if boxWidth < len(title)+4 {
		boxWidth = len(title) + 4
	}

	x := padLeft + (wellWidth-boxWidth)/2
	if x < 0 {
		x = 0
	}
	y := padTop + snap.Height/2 - 2

	b.drawBox(x, y, x+boxWidth, y+5)
	b.print(x+(boxWidth-len(title))/2, y+1, title)
	b.print(x+(boxWidth-len(help))/2, y+3, help)
}

// drawBox draws an empty box on the screen.
func (b *Board) drawBox(x int, y int, width int, height int) {
	style := b.style
	style = style.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			b.screen.SetContent(w, h, ' ', nil, b.style)
		}
	}

	for h := y; h < height; h++ {
		for w := x; w < width; w++ {
			if h == y {
				b.screen.SetContent(w, h, '▀', nil, style)
			}
			if h == height-1 {
				b.screen.SetContent(w, h, '▄', nil, style)
			}
			if w == x || w == width-1 {
				b.screen.SetContent(w, h, '█', nil, style)
			}
		}
	}
}

func (b *Board) print(x, y int, str string) {
	for _, c := range str {
		var comb []rune
		w := runewidth.RuneWidth(c)
		if w == 0 {
			comb = []rune{c}
			c = ' '
			w = 1
		}
		b.screen.SetContent(x, y, c, comb, b.style)
		x += w
	}
}
