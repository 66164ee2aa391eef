package snake

import "math/rand"

// DefaultEnumerateThreshold is the board occupancy above which food placement
// stops sampling and enumerates free cells instead.
const DefaultEnumerateThreshold = 0.6

// maxSamples bounds the sampling phase even below the threshold.
const maxSamples = 64

// FoodPlacer picks a uniformly random free cell for the next food item.
type FoodPlacer struct {
	rng       *rand.Rand
	threshold float64
}

// NewFoodPlacer creates a placer. A threshold outside (0, 1] falls back to
// DefaultEnumerateThreshold.
func NewFoodPlacer(rng *rand.Rand, threshold float64) *FoodPlacer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultEnumerateThreshold
	}
	return &FoodPlacer{rng: rng, threshold: threshold}
}

// Place returns a cell of g not occupied by body. It returns ErrBoardFull
// when the snake covers every cell.
func (p *FoodPlacer) Place(body *Body, g Grid) (Cell, error) {
	capacity := g.Capacity()
	if body.Len() >= capacity {
		return Cell{}, ErrBoardFull
	}

	if float64(body.Len())/float64(capacity) <= p.threshold {
		for range maxSamples {
			c := Cell{Col: p.rng.Intn(g.Size()), Row: p.rng.Intn(g.Size())}
			if !body.Occupies(c) {
				return c, nil
			}
		}
	}

	return p.enumerate(body, g)
}

// enumerate collects every free cell and picks one.
func (p *FoodPlacer) enumerate(body *Body, g Grid) (Cell, error) {
	occupied := make(map[Cell]bool, body.Len())
	for _, c := range body.cells {
		occupied[c] = true
	}

	free := make([]Cell, 0, g.Capacity()-len(occupied))
	for row := range g.Size() {
		for col := range g.Size() {
			c := Cell{Col: col, Row: row}
			if !occupied[c] {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return Cell{}, ErrBoardFull
	}
	return free[p.rng.Intn(len(free))], nil
}
