package snake

import (
	"fmt"

	"github.com/vovakirdan/snakefield/internal/core"
)

// hudHeight is the number of rows above the board used for the score line.
const hudHeight = 1

// FX holds the effect countdowns a renderer is currently showing.
type FX struct {
	Flash int
	Pulse int
	Ring  int
}

// Tick decrements every countdown by one frame.
func (f *FX) Tick() {
	f.Flash = max(f.Flash-1, 0)
	f.Pulse = max(f.Pulse-1, 0)
	f.Ring = max(f.Ring-1, 0)
}

// Merge starts the countdowns of a newly received effect.
func (f *FX) Merge(fx Effect) {
	f.Flash = max(f.Flash, fx.Flash)
	f.Pulse = max(f.Pulse, fx.Pulse)
	f.Ring = max(f.Ring, fx.Ring)
}

// Layout places a board on the terminal. One grid pixel is one terminal
// column; terminal rows are about twice as tall as columns are wide, so a
// cell spans Box columns and Box/2 rows.
type Layout struct {
	X, Y int // Top-left corner of the board interior
	grid Grid
}

// NewLayout centers the board of snap inside area, leaving room for the
// border and the HUD line.
func NewLayout(snap Snapshot, area core.Rect) Layout {
	l := Layout{grid: snap.Grid()}
	w := l.grid.PixelSize() + 2
	h := l.grid.Size()*l.rowsPerCell() + 2 + hudHeight
	l.X = area.X + max((area.W-w)/2, 0) + 1
	l.Y = area.Y + max((area.H-h)/2, 0) + hudHeight + 1
	return l
}

// BoxForTerminal picks the largest cell size whose board fits in a terminal
// area of w×h characters, capped at maxWidth columns.
func BoxForTerminal(w, h, size, maxWidth int) int {
	availW := w - 2
	if maxWidth > 0 {
		availW = min(availW, maxWidth)
	}
	availH := (h - 2 - hudHeight) * 2
	return BoxFor(min(availW, availH), size)
}

func (l Layout) rowsPerCell() int {
	return max(l.grid.Box()/2, 1)
}

// Board returns the rectangle of the board interior.
func (l Layout) Board() core.Rect {
	return core.NewRect(l.X, l.Y, l.grid.PixelSize(), l.grid.Size()*l.rowsPerCell())
}

// CellRect converts a cell to terminal characters.
func (l Layout) CellRect(c Cell) core.Rect {
	px := l.grid.Rect(c)
	rows := l.rowsPerCell()
	return core.NewRect(l.X+px.X, l.Y+c.Row*rows, px.W, rows)
}

// Draw renders snap with the active effects into dst.
func Draw(dst *core.Screen, snap Snapshot, area core.Rect, fx FX) {
	l := NewLayout(snap, area)
	board := l.Board()
	visible := clipRect(board, area)

	border := core.ColorGray
	if fx.Flash > 0 {
		border = core.ColorBrightCyan
	}
	dst.DrawRect(board, ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(board.X-1, board.Y-1, board.W+2, board.H+2), border)

	hud := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore)
	dst.DrawText(board.X-1, board.Y-1-hudHeight, hud, core.ColorWhite)

	if snap.State == StateIdle {
		drawOverlay(dst, visible, "S N A K E", "Press an arrow key to start")
		return
	}

	drawFood(dst, l, snap, fx)
	drawBody(dst, l, snap)

	switch snap.State {
	case StatePaused:
		drawOverlay(dst, visible, "Paused", "Press P to continue")
	case StateGameOver:
		title := "Game Over"
		if snap.Won {
			title = "You Win!"
		}
		drawOverlay(dst, visible, title, "Press ENTER")
	}
}

func drawFood(dst *core.Screen, l Layout, snap Snapshot, fx FX) {
	if !snap.HasFood {
		return
	}
	glyph, color := '●', core.ColorRed
	if fx.Pulse > 0 {
		glyph, color = '◆', core.ColorBrightRed
	}
	dst.DrawRect(l.CellRect(snap.Food), glyph, color)

	if fx.Ring > 0 {
		for _, h := range []Heading{HeadingUp, HeadingDown, HeadingLeft, HeadingRight} {
			c := l.grid.Step(snap.Food, h)
			if l.grid.InBounds(c) {
				dst.DrawRect(l.CellRect(c), '·', core.ColorRed)
			}
		}
	}
}

func drawBody(dst *core.Screen, l Layout, snap Snapshot) {
	for i := len(snap.Body) - 1; i >= 0; i-- {
		r := l.CellRect(snap.Body[i])
		if i > 0 {
			dst.DrawRect(r, '█', core.ColorGreen)
			continue
		}
		dst.DrawRect(r, '█', core.ColorBrightGreen)
		drawEyes(dst, r, snap.Heading)
	}
}

// drawEyes marks the leading edge of the head so the heading is visible.
func drawEyes(dst *core.Screen, r core.Rect, h Heading) {
	eye := map[Heading]rune{HeadingUp: '▀', HeadingDown: '▄', HeadingLeft: '▌', HeadingRight: '▐'}[h]
	switch h {
	case HeadingRight:
		dst.SetColored(r.Right()-1, r.Y, eye, core.ColorBrightWhite)
	case HeadingLeft:
		dst.SetColored(r.X, r.Y, eye, core.ColorBrightWhite)
	case HeadingUp:
		dst.SetColored(r.X, r.Y, eye, core.ColorBrightWhite)
		dst.SetColored(r.Right()-1, r.Y, eye, core.ColorBrightWhite)
	case HeadingDown:
		dst.SetColored(r.X, r.Bottom()-1, eye, core.ColorBrightWhite)
		dst.SetColored(r.Right()-1, r.Bottom()-1, eye, core.ColorBrightWhite)
	}
}

// clipRect returns the part of r inside area, or area when they do not
// overlap.
func clipRect(r, area core.Rect) core.Rect {
	x0, y0 := max(r.X, area.X), max(r.Y, area.Y)
	x1, y1 := min(r.Right(), area.Right()), min(r.Bottom(), area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return area
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// drawOverlay draws a centered two-line message box over the visible part
// of the board.
func drawOverlay(dst *core.Screen, board core.Rect, line1, line2 string) {
	n := max(len([]rune(line1)), len([]rune(line2)))
	boxW := min(n+4, board.W)
	boxH := 5
	box := core.NewRect(board.X+(board.W-boxW)/2, board.Y+(board.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box, box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box, box.Y+3, line2, core.ColorGray)
}
