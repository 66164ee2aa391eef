package snake

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/snakefield/internal/clock"
	"github.com/vovakirdan/snakefield/internal/core"
)

const period = 120 * time.Millisecond

// recorder captures everything the engine emits.
type recorder struct {
	updates   int
	gameOvers int
	idles     int
	boosts    int
	effects   []Effect
	last      Snapshot
	onUpdate  func(Snapshot)
}

func (r *recorder) OnStateUpdate(s Snapshot) {
	r.updates++
	r.last = s
	if r.onUpdate != nil {
		r.onUpdate(s)
	}
}

func (r *recorder) OnGameOver(s Snapshot) {
	r.gameOvers++
	r.last = s
}

func (r *recorder) OnIdle() { r.idles++ }
func (r *recorder) OnEffect(fx Effect) { r.effects = append(r.effects, fx) }
func (r *recorder) Boost() { r.boosts++ }

func newTestEngine(t *testing.T, cfg Config, opts ...Option) (*Engine, *clock.Manual, *recorder) {
	t.Helper()
	clk := clock.NewManual(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	rec := &recorder{}
	all := append([]Option{
		WithScheduler(clk),
		WithRenderer(rec),
		WithBooster(rec),
		WithRand(rand.New(rand.NewSource(7))),
	}, opts...)

	e, err := New(cfg, all...)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return e, clk, rec
}

// placeSnake overwrites the running round with a known layout.
func placeSnake(e *Engine, h Heading, food Cell, cells ...Cell) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.body = NewBody(cells...)
	e.steer = newSteering(h)
	e.food, e.hasFood = food, true
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero grid", func(c *Config) { c.GridSize = 0 }},
		{"negative grid", func(c *Config) { c.GridSize = -3 }},
		{"zero cell size", func(c *Config) { c.CellSize = 0 }},
		{"zero period", func(c *Config) { c.Period = 0 }},
		{"start off board", func(c *Config) { c.Start = Cell{Col: 20, Row: 0} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestEngineStartsIdle(t *testing.T) {
	e, clk, rec := newTestEngine(t, DefaultConfig())

	if st := e.Status(); st.State != StateIdle || st.Score != 0 {
		t.Errorf("Initial status = %+v, expected idle with score 0", st)
	}
	if rec.idles != 1 {
		t.Errorf("Expected one OnIdle at construction, got %d", rec.idles)
	}
	if clk.Pending() != 0 {
		t.Errorf("Idle engine should not schedule ticks, %d pending", clk.Pending())
	}

	clk.Advance(time.Second)
	if rec.updates != 0 {
		t.Errorf("No updates expected while idle, got %d", rec.updates)
	}
}

func TestSingleSegmentTick(t *testing.T) {
	e, clk, _ := newTestEngine(t, DefaultConfig())
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 0, Row: 0}, Cell{Col: 9, Row: 9})

	clk.Advance(period)

	snap := e.Snapshot()
	if len(snap.Body) != 1 {
		t.Fatalf("Length should stay 1, got %d", len(snap.Body))
	}
	if snap.Head() != (Cell{Col: 10, Row: 9}) {
		t.Errorf("Head = %v, expected (10,9)", snap.Head())
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}
}

func TestDefaultRoundLayout(t *testing.T) {
	e, _, rec := newTestEngine(t, DefaultConfig())
	e.Start()

	snap := e.Snapshot()
	if snap.State != StateRunning {
		t.Fatalf("State = %v, expected running", snap.State)
	}
	if len(snap.Body) != 1 || snap.Head() != (Cell{Col: 9, Row: 9}) {
		t.Errorf("Body = %v, expected single cell at (9,9)", snap.Body)
	}
	if snap.Heading != HeadingRight {
		t.Errorf("Heading = %v, expected right", snap.Heading)
	}
	if !snap.HasFood || snap.Food == snap.Head() {
		t.Errorf("Food %v must exist and not be on the snake", snap.Food)
	}
	if rec.updates != 1 {
		t.Errorf("Start should emit one update, got %d", rec.updates)
	}
}

func TestTailCellIsFreeWhenNotEating(t *testing.T) {
	e, clk, _ := newTestEngine(t, DefaultConfig())
	e.Start()
	// Food sits on the current tail
	placeSnake(e, HeadingRight, Cell{Col: 3, Row: 5},
		Cell{Col: 5, Row: 5}, Cell{Col: 4, Row: 5}, Cell{Col: 3, Row: 5})

	clk.Advance(period)

	snap := e.Snapshot()
	if snap.State != StateRunning {
		t.Fatalf("State = %v, expected running", snap.State)
	}
	want := []Cell{{Col: 6, Row: 5}, {Col: 5, Row: 5}, {Col: 4, Row: 5}}
	if len(snap.Body) != len(want) {
		t.Fatalf("Body = %v, expected %v", snap.Body, want)
	}
	for i := range want {
		if snap.Body[i] != want[i] {
			t.Errorf("Body[%d] = %v, expected %v", i, snap.Body[i], want[i])
		}
	}
}

func TestMoveIntoVacatedTail(t *testing.T) {
	e, clk, _ := newTestEngine(t, DefaultConfig())
	e.Start()
	// A 2x2 loop: moving right puts the head where the tail is now
	placeSnake(e, HeadingRight, Cell{Col: 0, Row: 0},
		Cell{Col: 5, Row: 5}, Cell{Col: 5, Row: 6}, Cell{Col: 6, Row: 6}, Cell{Col: 6, Row: 5})

	clk.Advance(period)

	snap := e.Snapshot()
	if snap.State != StateRunning {
		t.Fatalf("Chasing the tail should be legal, state = %v", snap.State)
	}
	if snap.Head() != (Cell{Col: 6, Row: 5}) || len(snap.Body) != 4 {
		t.Errorf("Body = %v, expected head (6,5) and length 4", snap.Body)
	}
}

func TestEatingOntoTailCollides(t *testing.T) {
	e, clk, rec := newTestEngine(t, DefaultConfig())
	e.Start()
	// Forced layout: food on the tail means the tail stays, so it is a hit
	placeSnake(e, HeadingRight, Cell{Col: 6, Row: 5},
		Cell{Col: 5, Row: 5}, Cell{Col: 5, Row: 6}, Cell{Col: 6, Row: 6}, Cell{Col: 6, Row: 5})

	clk.Advance(period)

	if st := e.Status(); st.State != StateGameOver {
		t.Errorf("State = %v, expected game over", st.State)
	}
	if rec.gameOvers != 1 {
		t.Errorf("Expected one OnGameOver, got %d", rec.gameOvers)
	}
}

func TestWallCollision(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = Cell{Col: cfg.GridSize - 1, Row: 9}
	e, clk, rec := newTestEngine(t, cfg)
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 0, Row: 0}, cfg.Start)

	clk.Advance(period)

	snap := e.Snapshot()
	if snap.State != StateGameOver || snap.Won {
		t.Fatalf("Status = %v won=%v, expected lost game over", snap.State, snap.Won)
	}
	if snap.Head() != cfg.Start {
		t.Errorf("Head should not move on collision, got %v", snap.Head())
	}
	if rec.gameOvers != 1 {
		t.Errorf("Expected one OnGameOver, got %d", rec.gameOvers)
	}
	if clk.Pending() != 0 {
		t.Errorf("No tick may stay scheduled after game over, %d pending", clk.Pending())
	}
}

func TestSelfCollision(t *testing.T) {
	e, clk, _ := newTestEngine(t, DefaultConfig())
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 0, Row: 0},
		Cell{Col: 5, Row: 5},
		Cell{Col: 5, Row: 6},
		Cell{Col: 6, Row: 6},
		Cell{Col: 6, Row: 5},
		Cell{Col: 6, Row: 4},
	)

	clk.Advance(period)

	if st := e.Status(); st.State != StateGameOver {
		t.Errorf("Game should be over after self collision, state = %v", st.State)
	}
}

func TestEatFood(t *testing.T) {
	store := NewMemoryHighScores(0)
	e, clk, rec := newTestEngine(t, DefaultConfig(), WithHighScores(store))
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 10, Row: 9}, Cell{Col: 9, Row: 9})

	clk.Advance(period)

	snap := e.Snapshot()
	if len(snap.Body) != 2 {
		t.Errorf("Snake should grow to 2, got %d", len(snap.Body))
	}
	if snap.Score != 1 || snap.HighScore != 1 {
		t.Errorf("Score/best = %d/%d, expected 1/1", snap.Score, snap.HighScore)
	}
	for _, c := range snap.Body {
		if c == snap.Food {
			t.Errorf("New food %v placed on the snake", snap.Food)
		}
	}
	if len(rec.effects) != 1 || rec.effects[0].Cell != (Cell{Col: 10, Row: 9}) {
		t.Errorf("Expected one effect at (10,9), got %+v", rec.effects)
	}
	if rec.effects[0].Flash != 4 || rec.effects[0].Pulse != 6 || rec.effects[0].Ring != 8 {
		t.Errorf("Effect countdowns = %+v, expected 4/6/8", rec.effects[0])
	}
	if rec.boosts != 1 {
		t.Errorf("Expected one particle boost, got %d", rec.boosts)
	}
	if best, _ := store.HighScore(); best != 1 {
		t.Errorf("Stored best = %d, expected 1", best)
	}
}

func TestHighScoreNeverDecreases(t *testing.T) {
	store := NewMemoryHighScores(5)
	e, clk, _ := newTestEngine(t, DefaultConfig(), WithHighScores(store))

	if got := e.Status().HighScore; got != 5 {
		t.Fatalf("High score should load from store, got %d", got)
	}

	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 10, Row: 9}, Cell{Col: 9, Row: 9})
	clk.Advance(period)

	st := e.Status()
	if st.Score != 1 || st.HighScore != 5 {
		t.Errorf("Score/best = %d/%d, expected 1/5", st.Score, st.HighScore)
	}
	if store.Saves() != 0 {
		t.Errorf("Store should not be written below the best, got %d saves", store.Saves())
	}
}

type failingStore struct{}

func (failingStore) HighScore() (int, error) { return 0, errors.New("disk on fire") }
func (failingStore) SetHighScore(int) error { return errors.New("disk on fire") }

func TestHighScoreStoreFailuresDoNotStopPlay(t *testing.T) {
	e, clk, _ := newTestEngine(t, DefaultConfig(), WithHighScores(failingStore{}))
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 10, Row: 9}, Cell{Col: 9, Row: 9})

	clk.Advance(period)

	st := e.Status()
	if st.State != StateRunning || st.Score != 1 || st.HighScore != 1 {
		t.Errorf("Status = %+v, expected running with score and best 1", st)
	}
}

func TestReversalRejected(t *testing.T) {
	e, clk, _ := newTestEngine(t, DefaultConfig())
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 0, Row: 0},
		Cell{Col: 5, Row: 5}, Cell{Col: 4, Row: 5}, Cell{Col: 3, Row: 5})

	e.SubmitInput(core.ActionLeft)
	clk.Advance(period)

	snap := e.Snapshot()
	if snap.State != StateRunning || snap.Head() != (Cell{Col: 6, Row: 5}) {
		t.Errorf("Reversal should be ignored, got state %v head %v", snap.State, snap.Head())
	}
}

func TestTwoTurnsInOneTickCannotReverse(t *testing.T) {
	e, clk, _ := newTestEngine(t, DefaultConfig())
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 0, Row: 0},
		Cell{Col: 5, Row: 5}, Cell{Col: 4, Row: 5}, Cell{Col: 3, Row: 5})

	// Up is accepted; Left is still the opposite of the heading in effect
	e.SubmitInput(core.ActionUp)
	e.SubmitInput(core.ActionLeft)
	clk.Advance(period)

	snap := e.Snapshot()
	if snap.Heading != HeadingUp || snap.Head() != (Cell{Col: 5, Row: 4}) {
		t.Errorf("Heading %v head %v, expected up to (5,4)", snap.Heading, snap.Head())
	}
}

func TestSteeringApplyRejectsOpposite(t *testing.T) {
	s := newSteering(HeadingRight)
	// Bypass the queue check to exercise the apply-time guard
	s.next = HeadingLeft
	if got := s.apply(); got != HeadingRight {
		t.Errorf("apply() = %v, expected right", got)
	}
}

func TestPauseStopsTicking(t *testing.T) {
	e, clk, rec := newTestEngine(t, DefaultConfig())
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 0, Row: 0}, Cell{Col: 2, Row: 9})

	clk.Advance(period / 2)
	e.Pause()
	if clk.Pending() != 0 {
		t.Fatalf("Pause must cancel the pending tick, %d pending", clk.Pending())
	}

	updates := rec.updates
	before := e.Snapshot()
	clk.Advance(3*period + 50*time.Millisecond)

	if rec.updates != updates {
		t.Errorf("No updates expected while paused, got %d more", rec.updates-updates)
	}
	if after := e.Snapshot(); after.Head() != before.Head() || after.Tick != 0 {
		t.Errorf("Paused state changed: head %v tick %d", after.Head(), after.Tick)
	}

	e.Resume()
	clk.Advance(period - time.Millisecond)
	if e.Snapshot().Tick != 0 {
		t.Fatal("Resume must wait a full period before the next tick")
	}
	clk.Advance(time.Millisecond)
	if got := e.Snapshot().Tick; got != 1 {
		t.Errorf("Expected exactly one tick one period after resume, got %d", got)
	}
	clk.Advance(period)
	if got := e.Snapshot().Tick; got != 2 {
		t.Errorf("Cadence after resume should be one tick per period, got %d", got)
	}
}

func TestPauseToggleInput(t *testing.T) {
	e, _, _ := newTestEngine(t, DefaultConfig())
	e.Start()

	e.SubmitInput(core.ActionPause)
	if st := e.Status().State; st != StatePaused {
		t.Fatalf("State = %v, expected paused", st)
	}

	// Directions are ignored while paused
	e.SubmitInput(core.ActionUp)
	if st := e.Status().State; st != StatePaused {
		t.Fatalf("State = %v, expected paused", st)
	}

	e.SubmitInput(core.ActionPause)
	if st := e.Status().State; st != StateRunning {
		t.Errorf("State = %v, expected running", st)
	}
}

func TestDuplicateCallsAreNoops(t *testing.T) {
	e, clk, rec := newTestEngine(t, DefaultConfig())

	e.Pause()
	e.Resume()
	if st := e.Status().State; st != StateIdle {
		t.Fatalf("Pause/Resume from idle should do nothing, state = %v", st)
	}

	e.Start()
	e.Start()
	if clk.Pending() != 1 {
		t.Errorf("Double Start must keep one scheduled tick, got %d", clk.Pending())
	}

	e.Pause()
	updates := rec.updates
	e.Pause()
	if rec.updates != updates {
		t.Error("Second Pause should not emit")
	}

	e.Resume()
	e.Resume()
	if clk.Pending() != 1 {
		t.Errorf("Double Resume must keep one scheduled tick, got %d", clk.Pending())
	}
}

func TestStaleTimerCallbackIgnored(t *testing.T) {
	e, _, _ := newTestEngine(t, DefaultConfig())
	e.Start()

	e.mu.Lock()
	gen := e.gen
	e.mu.Unlock()

	// A callback that was already running when Pause cancelled it
	e.Pause()
	e.onTimer(gen)

	if tick := e.Snapshot().Tick; tick != 0 {
		t.Errorf("Stale callback advanced the game to tick %d", tick)
	}
}

func TestNoMutationAfterGameOver(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = Cell{Col: 0, Row: 0}
	cfg.StartHeading = HeadingUp
	e, clk, rec := newTestEngine(t, cfg)
	e.Start()
	clk.Advance(period)

	final := e.Snapshot()
	if final.State != StateGameOver {
		t.Fatalf("State = %v, expected game over", final.State)
	}

	updates := rec.updates
	for _, a := range []core.Action{core.ActionDown, core.ActionRight, core.ActionPause} {
		e.SubmitInput(a)
	}
	e.Pause()
	e.Resume()
	clk.Advance(10 * period)

	after := e.Snapshot()
	if after.State != StateGameOver || after.Tick != final.Tick || after.Head() != final.Head() {
		t.Errorf("Game changed after game over: %+v", after)
	}
	if rec.updates != updates {
		t.Errorf("No updates expected after game over, got %d more", rec.updates-updates)
	}
}

func TestRestartToIdle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = Cell{Col: 0, Row: 0}
	cfg.StartHeading = HeadingLeft
	e, clk, rec := newTestEngine(t, cfg)
	e.Start()
	clk.Advance(period)

	e.SubmitInput(core.ActionConfirm)
	if st := e.Status().State; st != StateIdle {
		t.Fatalf("Confirm after game over should go idle, got %v", st)
	}
	if rec.idles != 2 {
		t.Errorf("Expected OnIdle on restart, got %d calls", rec.idles)
	}

	e.SubmitInput(core.ActionDown)
	st := e.Status()
	if st.State != StateRunning || st.Score != 0 {
		t.Errorf("Direction in idle should start a fresh round, got %+v", st)
	}
	// The start heading is fixed, not the pressed key
	if h := e.Snapshot().Heading; h != HeadingLeft {
		t.Errorf("Heading = %v, expected configured start heading", h)
	}
}

func TestRestartToRunning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Start = Cell{Col: 0, Row: 0}
	cfg.StartHeading = HeadingUp
	cfg.Restart = RestartToRunning
	e, clk, _ := newTestEngine(t, cfg)
	e.Start()
	clk.Advance(period)

	e.SubmitInput(core.ActionConfirm)
	if st := e.Status().State; st != StateRunning {
		t.Errorf("Confirm should restart immediately, got %v", st)
	}
	if clk.Pending() != 1 {
		t.Errorf("Restarted round should have one tick scheduled, got %d", clk.Pending())
	}
}

func TestIdleIgnoresPauseToggle(t *testing.T) {
	e, _, _ := newTestEngine(t, DefaultConfig())
	e.SubmitInput(core.ActionPause)
	if st := e.Status().State; st != StateIdle {
		t.Errorf("Pause in idle should be ignored, got %v", st)
	}
	e.SubmitInput(core.ActionConfirm)
	if st := e.Status().State; st != StateRunning {
		t.Errorf("Confirm in idle should start, got %v", st)
	}
}

func TestResetFromRunning(t *testing.T) {
	e, clk, rec := newTestEngine(t, DefaultConfig())
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 10, Row: 9}, Cell{Col: 9, Row: 9})
	clk.Advance(period)

	e.Reset()

	st := e.Status()
	if st.State != StateIdle || st.Score != 0 || st.HighScore != 1 {
		t.Errorf("Status after reset = %+v, expected idle, score 0, best kept", st)
	}
	if clk.Pending() != 0 {
		t.Errorf("Reset must cancel ticking, %d pending", clk.Pending())
	}
	if rec.idles != 2 {
		t.Errorf("Expected OnIdle after reset, got %d", rec.idles)
	}
}

func TestBoardFullIsWon(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 2
	cfg.Start = Cell{Col: 0, Row: 0}
	e, clk, rec := newTestEngine(t, cfg)
	e.Start()
	placeSnake(e, HeadingRight, Cell{Col: 1, Row: 0},
		Cell{Col: 0, Row: 0}, Cell{Col: 0, Row: 1}, Cell{Col: 1, Row: 1})

	clk.Advance(period)

	snap := e.Snapshot()
	if snap.State != StateGameOver || !snap.Won {
		t.Fatalf("Filling the board should win, got %v won=%v", snap.State, snap.Won)
	}
	if snap.HasFood {
		t.Error("A full board has no food")
	}
	if len(snap.Body) != 4 || snap.Score != 1 {
		t.Errorf("Body %v score %d, expected full board and score 1", snap.Body, snap.Score)
	}
	if rec.gameOvers != 1 {
		t.Errorf("Expected one OnGameOver, got %d", rec.gameOvers)
	}
}

func TestOneCellBoardWinsOnStart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridSize = 1
	cfg.Start = Cell{}
	e, clk, _ := newTestEngine(t, cfg)
	e.Start()

	if st := e.Status(); st.State != StateGameOver || !st.Won {
		t.Errorf("Status = %+v, expected immediate win", st)
	}
	if clk.Pending() != 0 {
		t.Errorf("No tick expected, got %d pending", clk.Pending())
	}
}

func TestResizeKeepsCells(t *testing.T) {
	e, _, _ := newTestEngine(t, DefaultConfig())
	e.Start()
	before := e.Snapshot()

	if err := e.Resize(7); err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	after := e.Snapshot()
	if after.Box != 7 || after.Head() != before.Head() || after.Food != before.Food {
		t.Errorf("Resize moved the game: before %+v after %+v", before, after)
	}

	if err := e.Resize(0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Resize(0) error = %v, expected ErrInvalidConfig", err)
	}
	if got := e.Grid().Box(); got != 7 {
		t.Errorf("Failed resize changed box to %d", got)
	}
}

func TestResizeWhileIdleNotifiesRenderer(t *testing.T) {
	e, _, rec := newTestEngine(t, DefaultConfig())
	idles := rec.idles

	if err := e.Resize(7); err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	if rec.idles != idles+1 {
		t.Errorf("Resize in Idle should call OnIdle, idles = %d, expected %d", rec.idles, idles+1)
	}
	if rec.updates != 0 {
		t.Errorf("Resize in Idle should not send state updates, got %d", rec.updates)
	}
	if got := e.Snapshot().Box; got != 7 {
		t.Errorf("Snapshot box = %d, expected 7", got)
	}

	if err := e.Resize(7); err != nil {
		t.Fatalf("Resize() failed: %v", err)
	}
	if rec.idles != idles+1 {
		t.Errorf("Resize to the same box should be silent, idles = %d", rec.idles)
	}
}

func TestSetPeriodAppliesFromNextTick(t *testing.T) {
	e, clk, _ := newTestEngine(t, DefaultConfig())
	e.Start()
	placeSnake(e, HeadingDown, Cell{Col: 0, Row: 0}, Cell{Col: 9, Row: 0})

	if err := e.SetPeriod(200 * time.Millisecond); err != nil {
		t.Fatalf("SetPeriod() failed: %v", err)
	}

	clk.Advance(period)
	if got := e.Snapshot().Tick; got != 1 {
		t.Fatalf("Scheduled tick should keep its deadline, tick = %d", got)
	}
	clk.Advance(199 * time.Millisecond)
	if got := e.Snapshot().Tick; got != 1 {
		t.Fatalf("Next tick should use the new period, tick = %d", got)
	}
	clk.Advance(time.Millisecond)
	if got := e.Snapshot().Tick; got != 2 {
		t.Errorf("Expected tick 2 after the new period, got %d", got)
	}

	if err := e.SetPeriod(0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("SetPeriod(0) error = %v, expected ErrInvalidConfig", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e, _, _ := newTestEngine(t, DefaultConfig())
	e.Start()

	snap := e.Snapshot()
	snap.Body[0] = Cell{Col: -5, Row: -5}

	if e.Snapshot().Head() == (Cell{Col: -5, Row: -5}) {
		t.Error("Mutating a snapshot changed the engine")
	}
}

func TestRandomPlayKeepsBoardConsistent(t *testing.T) {
	e, clk, rec := newTestEngine(t, DefaultConfig())
	inputs := rand.New(rand.NewSource(99))
	actions := []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

	prevLen, prevScore, prevBest := 1, 0, 0
	rec.onUpdate = func(s Snapshot) {
		if s.State != StateRunning || s.Tick == 0 {
			prevLen, prevScore = len(s.Body), s.Score
			return
		}
		if len(s.Body) < prevLen {
			t.Fatalf("Length decreased from %d to %d", prevLen, len(s.Body))
		}
		if s.Score-prevScore > 1 || s.Score < prevScore {
			t.Fatalf("Score jumped from %d to %d", prevScore, s.Score)
		}
		if (len(s.Body) > prevLen) != (s.Score > prevScore) {
			t.Fatalf("Growth without food: len %d->%d score %d->%d", prevLen, len(s.Body), prevScore, s.Score)
		}
		if s.HighScore < prevBest {
			t.Fatalf("High score decreased from %d to %d", prevBest, s.HighScore)
		}
		seen := make(map[Cell]bool)
		for _, c := range s.Body {
			if seen[c] {
				t.Fatalf("Snake overlaps itself at %v", c)
			}
			seen[c] = true
		}
		if s.HasFood && seen[s.Food] {
			t.Fatalf("Food %v on the snake", s.Food)
		}
		prevLen, prevScore, prevBest = len(s.Body), s.Score, s.HighScore
	}

	for range 2000 {
		switch e.Status().State {
		case StateIdle:
			e.Start()
		case StateGameOver:
			e.SubmitInput(core.ActionConfirm)
			continue
		}
		if inputs.Intn(3) == 0 {
			e.SubmitInput(actions[inputs.Intn(len(actions))])
		}
		clk.Advance(period)
	}
}
