package snake

// Effect is the fire-and-forget visual feedback raised when food is eaten.
// Counts are frame countdowns owned by whoever draws them.
type Effect struct {
	Cell  Cell // Where the food was eaten
	Flash int  // Board flash frames
	Pulse int  // Food pulse frames
	Ring  int  // Ring frames around the new food
}

// Renderer consumes engine output. Methods are called synchronously with
// the engine lock held: implementations must return quickly, must not panic
// and must not call back into the engine.
type Renderer interface {
	OnStateUpdate(snap Snapshot)
	OnGameOver(snap Snapshot)
	OnIdle()
	OnEffect(fx Effect)
}

// Booster is the particle collaborator. Boost is a one-way signal.
type Booster interface {
	Boost()
}

// HighScores persists the best score across sessions.
type HighScores interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// NopRenderer discards every event.
type NopRenderer struct{}

func (NopRenderer) OnStateUpdate(Snapshot) {}
func (NopRenderer) OnGameOver(Snapshot)    {}
func (NopRenderer) OnIdle()                {}
func (NopRenderer) OnEffect(Effect)        {}

type nopBooster struct{}

func (nopBooster) Boost() {}
