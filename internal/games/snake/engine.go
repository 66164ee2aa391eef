// Package snake implements the snake game engine: a fixed-period tick loop
// over a square grid with collision detection, scoring and an explicit
// idle/running/paused/game-over lifecycle. Rendering, persistence and the
// particle field are collaborators reached through small interfaces.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakefield/internal/clock"
	"github.com/vovakirdan/snakefield/internal/core"
)

// Engine owns one game session. All methods are safe for concurrent use;
// timer callbacks and host calls are serialized by an internal lock.
type Engine struct {
	mu sync.Mutex

	cfg    Config
	grid   Grid
	period time.Duration
	rng    *rand.Rand
	placer *FoodPlacer

	// Round state
	body      *Body
	steer     steering
	food      Cell
	hasFood   bool
	score     int
	highScore int
	state     State
	won       bool
	tick      uint64

	// Tick scheduling. gen invalidates callbacks that were already in
	// flight when their timer was cancelled.
	sched clock.Scheduler
	timer clock.Timer
	gen   uint64

	renderer Renderer
	booster  Booster
	scores   HighScores
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithScheduler sets the tick scheduler. Defaults to the wall clock.
func WithScheduler(s clock.Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithRenderer sets the render adapter.
func WithRenderer(r Renderer) Option {
	return func(e *Engine) { e.renderer = r }
}

// WithBooster sets the particle collaborator.
func WithBooster(b Booster) Option {
	return func(e *Engine) { e.booster = b }
}

// WithHighScores sets the best-score store.
func WithHighScores(h HighScores) Option {
	return func(e *Engine) { e.scores = h }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRand sets the random source used for food placement.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// New validates cfg and creates an idle engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGrid(cfg.GridSize, cfg.CellSize)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:      cfg,
		grid:     grid,
		period:   cfg.Period,
		state:    StateIdle,
		sched:    clock.NewReal(),
		renderer: NopRenderer{},
		booster:  nopBooster{},
		scores:   NewMemoryHighScores(0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	if e.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
	e.placer = NewFoodPlacer(e.rng, cfg.EnumerateThreshold)

	best, err := e.scores.HighScore()
	if err != nil {
		e.logger.Warn("could not load high score", "error", err)
		best = 0
	}
	e.highScore = max(best, 0)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.newRoundLocked()
	e.renderer.OnIdle()

	return e, nil
}

// Start begins a fresh round from Idle or GameOver. It is a no-op while a
// round is running or paused.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.startLocked()
}

// Pause suspends ticking. Snake, food and score are preserved.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.pauseLocked()
}

// Resume continues a paused round. The next tick fires one full period
// after the resume.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resumeLocked()
}

// Reset abandons the current round and returns to Idle.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resetLocked()
}

// SubmitInput feeds one normalized input event to the engine.
func (e *Engine) SubmitInput(a core.Action) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case StateIdle:
		if a.IsDirectional() || a == core.ActionConfirm {
			e.startLocked()
		}
	case StateRunning:
		if h, ok := headingFor(a); ok {
			if !e.steer.queue(h) {
				e.logger.Debug("reversal rejected", "heading", h, "current", e.steer.current)
			}
			return
		}
		if a == core.ActionPause {
			e.pauseLocked()
		}
	case StatePaused:
		if a == core.ActionPause {
			e.resumeLocked()
		}
	case StateGameOver:
		if a != core.ActionConfirm {
			return
		}
		if e.cfg.Restart == RestartToRunning {
			e.startLocked()
		} else {
			e.resetLocked()
		}
	}
}

// Status returns the current lifecycle state and scores.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Status{State: e.state, Score: e.score, HighScore: e.highScore, Won: e.won}
}

// Snapshot returns a deep copy of the game state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Grid returns the current grid.
func (e *Engine) Grid() Grid {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid
}

// Resize changes the cell size after a layout change. Snake and food are
// stored as cells, so nothing else moves.
func (e *Engine) Resize(box int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, err := e.grid.WithBox(box)
	if err != nil {
		return err
	}
	if g == e.grid {
		return nil
	}
	e.grid = g
	e.logger.Debug("grid resized", "box", box)
	if e.state == StateIdle {
		e.renderer.OnIdle()
		return nil
	}
	e.renderer.OnStateUpdate(e.snapshotLocked())
	return nil
}

// SetPeriod changes the tick period. A tick already scheduled keeps its
// deadline; the new period applies from the next one.
func (e *Engine) SetPeriod(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: tick period must be positive, got %s", ErrInvalidConfig, d)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.period = d
	return nil
}

// Period returns the current tick period.
func (e *Engine) Period() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.period
}

func (e *Engine) startLocked() {
	if e.state != StateIdle && e.state != StateGameOver {
		return
	}
	e.newRoundLocked()
	e.setStateLocked(StateRunning)
	if !e.hasFood {
		// A board with no room beyond the starting cell is won on the spot.
		e.endLocked(true, "board full")
		return
	}
	e.scheduleLocked()
	e.renderer.OnStateUpdate(e.snapshotLocked())
}

func (e *Engine) pauseLocked() {
	if e.state != StateRunning {
		return
	}
	e.cancelLocked()
	e.setStateLocked(StatePaused)
	e.renderer.OnStateUpdate(e.snapshotLocked())
}

func (e *Engine) resumeLocked() {
	if e.state != StatePaused {
		return
	}
	e.setStateLocked(StateRunning)
	e.scheduleLocked()
	e.renderer.OnStateUpdate(e.snapshotLocked())
}

func (e *Engine) resetLocked() {
	e.cancelLocked()
	e.newRoundLocked()
	e.setStateLocked(StateIdle)
	e.renderer.OnIdle()
}

// newRoundLocked rebuilds snake, food and score.
func (e *Engine) newRoundLocked() {
	e.body = NewBody(e.cfg.Start)
	e.steer = newSteering(e.cfg.StartHeading)
	e.score = 0
	e.won = false
	e.tick = 0

	food, err := e.placer.Place(e.body, e.grid)
	e.food, e.hasFood = food, err == nil
}

func (e *Engine) scheduleLocked() {
	e.gen++
	gen := e.gen
	e.timer = e.sched.AfterFunc(e.period, func() { e.onTimer(gen) })
}

func (e *Engine) cancelLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

func (e *Engine) onTimer(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.gen || e.state != StateRunning {
		return
	}
	e.timer = nil
	e.stepLocked()
	if e.state == StateRunning {
		e.scheduleLocked()
	}
}

// stepLocked advances the round by one cell.
func (e *Engine) stepLocked() {
	e.tick++

	heading := e.steer.apply()
	move := e.body.Advance(e.grid, heading, e.food)
	move.AteFood = move.AteFood && e.hasFood

	if !e.grid.InBounds(move.Head) {
		e.endLocked(false, "wall")
		return
	}

	// The tail moves out of the way unless the snake grows this tick.
	hit := e.body.OccupiesExceptTail(move.Head)
	if move.AteFood {
		hit = e.body.Occupies(move.Head)
	}
	if hit {
		e.endLocked(false, "self")
		return
	}

	e.body.Prepend(move.Head)

	if !move.AteFood {
		e.body.DropTail()
		e.renderer.OnStateUpdate(e.snapshotLocked())
		return
	}

	e.score++
	if e.score > e.highScore {
		e.highScore = e.score
		if err := e.scores.SetHighScore(e.highScore); err != nil {
			e.logger.Warn("could not save high score", "score", e.highScore, "error", err)
		}
	}

	fx := e.cfg.Effect
	fx.Cell = move.Head
	e.renderer.OnEffect(fx)
	e.booster.Boost()

	food, err := e.placer.Place(e.body, e.grid)
	if err != nil {
		e.hasFood = false
		e.endLocked(true, "board full")
		return
	}
	e.food = food
	e.renderer.OnStateUpdate(e.snapshotLocked())
}

func (e *Engine) endLocked(won bool, reason string) {
	e.cancelLocked()
	e.won = won
	e.setStateLocked(StateGameOver)
	e.logger.Info("round over", "reason", reason, "score", e.score, "length", e.body.Len(), "ticks", e.tick)
	e.renderer.OnGameOver(e.snapshotLocked())
}

func (e *Engine) setStateLocked(s State) {
	if e.state == s {
		return
	}
	e.logger.Debug("state change", "from", e.state, "to", s)
	e.state = s
}

func (e *Engine) snapshotLocked() Snapshot {
	return Snapshot{
		State:     e.state,
		Won:       e.won,
		Tick:      e.tick,
		Score:     e.score,
		HighScore: e.highScore,
		Body:      e.body.Cells(),
		Food:      e.food,
		HasFood:   e.hasFood,
		Heading:   e.steer.current,
		GridSize:  e.grid.Size(),
		Box:       e.grid.Box(),
	}
}

// headingFor maps a directional action to a heading.
func headingFor(a core.Action) (Heading, bool) {
	switch a {
	case core.ActionUp:
		return HeadingUp, true
	case core.ActionDown:
		return HeadingDown, true
	case core.ActionLeft:
		return HeadingLeft, true
	case core.ActionRight:
		return HeadingRight, true
	}
	return HeadingRight, false
}
