package snake

import (
	"fmt"

	"github.com/vovakirdan/snakefield/internal/core"
)

// DefaultGridSize is the number of cells along each side of the board.
const DefaultGridSize = 20

// Cell is a logical board coordinate. Positions are always stored as cells
// and only multiplied by the cell size when something is drawn, so a layout
// change never moves the snake.
type Cell struct {
	Col, Row int
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Grid is the square play field: size×size cells of box pixels each.
// It is an immutable value; resizing produces a new Grid.
type Grid struct {
	size int
	box  int
}

// NewGrid validates the dimensions and returns a grid.
func NewGrid(size, box int) (Grid, error) {
	if size <= 0 {
		return Grid{}, fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalidConfig, size)
	}
	if box <= 0 {
		return Grid{}, fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, box)
	}
	return Grid{size: size, box: box}, nil
}

// BoxFor derives the cell size for a surface of the given width:
// floor(availableWidth / size), never less than 1.
func BoxFor(availableWidth, size int) int {
	if size <= 0 {
		return 1
	}
	return max(availableWidth/size, 1)
}

// Size returns the number of cells per side.
func (g Grid) Size() int { return g.size }

// Box returns the cell size in pixels.
func (g Grid) Box() int { return g.box }

// Capacity returns the total number of cells.
func (g Grid) Capacity() int { return g.size * g.size }

// PixelSize returns the side of the whole board in pixels.
func (g Grid) PixelSize() int { return g.size * g.box }

// WithBox returns a copy of the grid with a different cell size.
func (g Grid) WithBox(box int) (Grid, error) {
	return NewGrid(g.size, box)
}

// InBounds reports whether c lies on the board.
func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.size && c.Row >= 0 && c.Row < g.size
}

// Rect returns the pixel rectangle covered by c.
func (g Grid) Rect(c Cell) core.Rect {
	return core.NewRect(c.Col*g.box, c.Row*g.box, g.box, g.box)
}

// CellAt converts a pixel position to the cell containing it.
func (g Grid) CellAt(x, y int) (Cell, bool) {
	if !core.NewRect(0, 0, g.PixelSize(), g.PixelSize()).Contains(x, y) {
		return Cell{}, false
	}
	return Cell{Col: x / g.box, Row: y / g.box}, true
}

// Step returns the neighbour of c in direction h. The result may be off the
// board; callers check InBounds.
func (g Grid) Step(c Cell, h Heading) Cell {
	dc, dr := h.Vector()
	return c.Add(dc, dr)
}
