package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snakefield/internal/config"
)

// RestartPolicy decides what Confirm does after a game over.
type RestartPolicy int

const (
	// RestartToIdle shows the start prompt again; another input starts a round.
	RestartToIdle RestartPolicy = iota
	// RestartToRunning starts a fresh round immediately.
	RestartToRunning
)

// ParseRestartPolicy parses "idle" or "running". Empty means idle.
func ParseRestartPolicy(s string) (RestartPolicy, error) {
	switch s {
	case "", "idle":
		return RestartToIdle, nil
	case "running":
		return RestartToRunning, nil
	}
	return RestartToIdle, fmt.Errorf("%w: unknown restart policy %q", ErrInvalidConfig, s)
}

func (p RestartPolicy) String() string {
	if p == RestartToRunning {
		return "running"
	}
	return "idle"
}

// Config holds engine parameters.
type Config struct {
	GridSize           int
	CellSize           int
	Period             time.Duration
	Start              Cell
	StartHeading       Heading
	EnumerateThreshold float64
	Restart            RestartPolicy
	Effect             Effect // Countdowns copied into every food-eaten event
	Seed               int64  // 0 seeds from the clock
}

// DefaultConfig returns the classic 20×20 board, 120ms ticks, starting at
// (9,9) heading right.
func DefaultConfig() Config {
	return Config{
		GridSize:           DefaultGridSize,
		CellSize:           15,
		Period:             120 * time.Millisecond,
		Start:              Cell{Col: 9, Row: 9},
		StartHeading:       HeadingRight,
		EnumerateThreshold: DefaultEnumerateThreshold,
		Restart:            RestartToIdle,
		Effect:             Effect{Flash: 4, Pulse: 6, Ring: 8},
	}
}

// Validate checks the configuration and returns an error wrapping
// ErrInvalidConfig.
func (c Config) Validate() error {
	g, err := NewGrid(c.GridSize, c.CellSize)
	if err != nil {
		return err
	}
	if c.Period <= 0 {
		return fmt.Errorf("%w: tick period must be positive, got %s", ErrInvalidConfig, c.Period)
	}
	if !g.InBounds(c.Start) {
		return fmt.Errorf("%w: start cell %s outside %dx%d grid", ErrInvalidConfig, c.Start, c.GridSize, c.GridSize)
	}
	return nil
}

// FromFileConfig converts the YAML configuration into engine parameters.
func FromFileConfig(fc config.SnakeConfig) (Config, error) {
	cfg := DefaultConfig()

	heading, err := ParseHeading(fc.Start.Heading)
	if err != nil {
		return cfg, err
	}
	policy, err := ParseRestartPolicy(fc.RestartPolicy)
	if err != nil {
		return cfg, err
	}
	period, err := fc.TickPeriod()
	if err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.GridSize = fc.Grid.Size
	cfg.CellSize = fc.Grid.CellSize
	cfg.Period = period
	cfg.Start = Cell{Col: fc.Start.Col, Row: fc.Start.Row}
	cfg.StartHeading = heading
	cfg.EnumerateThreshold = fc.Food.EnumerateThreshold
	cfg.Restart = policy
	cfg.Effect = Effect{Flash: fc.Effects.Flash, Pulse: fc.Effects.Pulse, Ring: fc.Effects.Ring}

	return cfg, cfg.Validate()
}
