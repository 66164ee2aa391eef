package snake

// State is the engine lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Status is the read-only summary exposed to the host.
type Status struct {
	State     State
	Score     int
	HighScore int
	Won       bool // GameOver because the board filled up
}

// Snapshot is a deep copy of the game state handed to renderers. Mutating
// it never affects the engine.
type Snapshot struct {
	State     State
	Won       bool
	Tick      uint64
	Score     int
	HighScore int
	Body      []Cell // Head first
	Food      Cell
	HasFood   bool // False once the board is full
	Heading   Heading
	GridSize  int
	Box       int
}

// Head returns the head cell.
func (s Snapshot) Head() Cell {
	if len(s.Body) == 0 {
		return Cell{}
	}
	return s.Body[0]
}

// Grid rebuilds the grid the snapshot was taken on.
func (s Snapshot) Grid() Grid {
	return Grid{size: s.GridSize, box: s.Box}
}
