// Package config provides YAML-based game configuration loading, difficulty
// presets and live reload for snakefield.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation error in this package.
var ErrInvalid = errors.New("config: invalid value")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid          GridConfig       `yaml:"grid"`
	Tick          TickConfig       `yaml:"tick"`
	Start         StartConfig      `yaml:"start"`
	Food          FoodConfig       `yaml:"food"`
	RestartPolicy string           `yaml:"restart_policy"` // "idle" or "running"
	Effects       EffectsConfig    `yaml:"effects"`
	Particles     ParticlesConfig  `yaml:"particles"`
	Difficulty    DifficultyConfig `yaml:"difficulty"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Size     int `yaml:"size"`      // Cells per side
	CellSize int `yaml:"cell_size"` // Initial box; recomputed from the terminal at layout time
	MaxWidth int `yaml:"max_width"` // Cap on the board width in columns
}

// TickConfig defines the movement cadence.
type TickConfig struct {
	PeriodMS int `yaml:"period_ms"`
}

// StartConfig defines where every round begins.
type StartConfig struct {
	Col     int    `yaml:"col"`
	Row     int    `yaml:"row"`
	Heading string `yaml:"heading"`
}

// FoodConfig tunes food placement.
type FoodConfig struct {
	EnumerateThreshold float64 `yaml:"enumerate_threshold"` // Occupancy above which free cells are enumerated
}

// EffectsConfig holds the visual feedback countdowns, in frames.
type EffectsConfig struct {
	Flash int `yaml:"flash"`
	Pulse int `yaml:"pulse"`
	Ring  int `yaml:"ring"`
}

// ParticlesConfig defines the background particle field.
type ParticlesConfig struct {
	Count       int     `yaml:"count"`
	MinSize     int     `yaml:"min_size"`
	MaxSize     int     `yaml:"max_size"`
	Speed       float64 `yaml:"speed"`        // Initial velocity range per axis, cells per frame
	MouseRadius float64 `yaml:"mouse_radius"` // Pointer repulsion radius in cells
	BoostFactor float64 `yaml:"boost_factor"` // Velocity multiplier while boosted
	BoostMS     int     `yaml:"boost_ms"`     // Boost duration
}

// TickPeriod returns the configured tick period.
func (c SnakeConfig) TickPeriod() (time.Duration, error) {
	if c.Tick.PeriodMS <= 0 {
		return 0, fmt.Errorf("%w: tick.period_ms must be positive, got %d", ErrInvalid, c.Tick.PeriodMS)
	}
	return time.Duration(c.Tick.PeriodMS) * time.Millisecond, nil
}

// BoostDuration returns how long a particle boost lasts.
func (c ParticlesConfig) BoostDuration() time.Duration {
	return time.Duration(c.BoostMS) * time.Millisecond
}

// Validate checks the parts of the configuration the engine does not own.
// Grid and start values are validated when the engine is built.
func (c SnakeConfig) Validate() error {
	if _, err := c.TickPeriod(); err != nil {
		return err
	}
	if t := c.Food.EnumerateThreshold; t < 0 || t > 1 {
		return fmt.Errorf("%w: food.enumerate_threshold must be in [0, 1], got %v", ErrInvalid, t)
	}
	if c.Effects.Flash < 0 || c.Effects.Pulse < 0 || c.Effects.Ring < 0 {
		return fmt.Errorf("%w: effect countdowns must not be negative", ErrInvalid)
	}

	p := c.Particles
	if p.Count < 0 {
		return fmt.Errorf("%w: particles.count must not be negative, got %d", ErrInvalid, p.Count)
	}
	if p.MinSize < 1 || p.MaxSize < p.MinSize {
		return fmt.Errorf("%w: particle sizes must satisfy 1 <= min_size <= max_size, got %d..%d", ErrInvalid, p.MinSize, p.MaxSize)
	}
	if p.Speed < 0 {
		return fmt.Errorf("%w: particles.speed must not be negative, got %v", ErrInvalid, p.Speed)
	}
	if p.BoostFactor <= 0 || p.BoostMS < 0 {
		return fmt.Errorf("%w: particle boost must have a positive factor and non-negative duration", ErrInvalid)
	}

	if _, err := ParseDifficultyPreset(string(c.Difficulty.Preset)); err != nil {
		return err
	}
	return nil
}
