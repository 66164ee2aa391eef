package snake

// Body is the ordered list of occupied cells, head first.
type Body struct {
	cells []Cell
}

// Move is the result of projecting the head one step forward.
type Move struct {
	Head    Cell
	AteFood bool
}

// NewBody creates a body from cells, head first. At least one cell is
// required.
func NewBody(cells ...Cell) *Body {
	if len(cells) == 0 {
		panic("snake: body needs at least one cell")
	}
	b := &Body{cells: make([]Cell, len(cells))}
	copy(b.cells, cells)
	return b
}

// Len returns the number of segments.
func (b *Body) Len() int { return len(b.cells) }

// Head returns the first segment.
func (b *Body) Head() Cell { return b.cells[0] }

// Tail returns the last segment.
func (b *Body) Tail() Cell { return b.cells[len(b.cells)-1] }

// Cells returns a copy of the segments, head first.
func (b *Body) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Advance computes where the head goes next on g and whether that cell is
// food. It does not mutate the body.
func (b *Body) Advance(g Grid, h Heading, food Cell) Move {
	head := g.Step(b.Head(), h)
	return Move{Head: head, AteFood: head == food}
}

// Prepend adds a new head.
func (b *Body) Prepend(c Cell) {
	b.cells = append(b.cells, Cell{})
	copy(b.cells[1:], b.cells)
	b.cells[0] = c
}

// DropTail removes the last segment. A single-segment body is left intact.
func (b *Body) DropTail() {
	if len(b.cells) > 1 {
		b.cells = b.cells[:len(b.cells)-1]
	}
}

// Occupies reports whether any segment is on c.
func (b *Body) Occupies(c Cell) bool {
	for _, seg := range b.cells {
		if seg == c {
			return true
		}
	}
	return false
}

// OccupiesExceptTail is Occupies ignoring the last segment, which is about
// to be vacated when the snake moves without eating.
func (b *Body) OccupiesExceptTail(c Cell) bool {
	for _, seg := range b.cells[:len(b.cells)-1] {
		if seg == c {
			return true
		}
	}
	return false
}
