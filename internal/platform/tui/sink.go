package tui

import (
	"sync"

	"github.com/vovakirdan/snakefield/internal/games/snake"
)

// Sink receives engine events on the engine's goroutine and hands them to
// the Bubble Tea loop, which drains it once per frame. It implements
// snake.Renderer and snake.Booster without ever blocking the engine.
type Sink struct {
	mu       sync.Mutex
	snap     snake.Snapshot
	updated  bool
	idle     bool
	effects  []snake.Effect
	boosts   int
	finished []snake.Snapshot
}

// Frame is everything that happened since the previous Drain.
type Frame struct {
	Snapshot snake.Snapshot
	Updated  bool // Snapshot holds a new state
	Idle     bool // The engine went idle; fetch a fresh snapshot
	Effects  []snake.Effect
	Boosts   int
	Finished []snake.Snapshot // Rounds that ended, oldest first
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// OnStateUpdate implements snake.Renderer.
func (s *Sink) OnStateUpdate(snap snake.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap, s.updated, s.idle = snap, true, false
}

// OnGameOver implements snake.Renderer.
func (s *Sink) OnGameOver(snap snake.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap, s.updated, s.idle = snap, true, false
	s.finished = append(s.finished, snap)
}

// OnIdle implements snake.Renderer.
func (s *Sink) OnIdle() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.idle, s.updated = true, false
}

// OnEffect implements snake.Renderer.
func (s *Sink) OnEffect(fx snake.Effect) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.effects = append(s.effects, fx)
}

// Boost implements snake.Booster.
func (s *Sink) Boost() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boosts++
}

// Drain returns and clears the pending events.
func (s *Sink) Drain() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := Frame{
		Snapshot: s.snap,
		Updated:  s.updated,
		Idle:     s.idle,
		Effects:  s.effects,
		Boosts:   s.boosts,
		Finished: s.finished,
	}
	s.updated, s.idle = false, false
	s.effects, s.boosts, s.finished = nil, 0, nil
	return f
}

var (
	_ snake.Renderer = (*Sink)(nil)
	_ snake.Booster  = (*Sink)(nil)
)
