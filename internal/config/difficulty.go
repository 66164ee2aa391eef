package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/snakefield/internal/core"
)

// DifficultyConfig defines the tick speed and how it changes during a round.
type DifficultyConfig struct {
	Preset      DifficultyPreset  `yaml:"preset"`
	Progression ProgressionConfig `yaml:"progression"`
	MinPeriodMS int               `yaml:"min_period_ms"` // Fastest period reached at max difficulty
}

// ProgressionConfig defines how difficulty increases during a round.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score" or "none"
	MaxAt int    `yaml:"max_at"` // Score at which the minimum period is reached
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. Empty means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w: unknown difficulty preset %q", ErrInvalid, s)
}

// PeriodForPreset returns the tick period in milliseconds for a preset, or 0
// if the preset keeps the configured value.
func PeriodForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 160
	case DifficultyNormal:
		return 120
	case DifficultyHard:
		return 80
	default:
		return 0
	}
}

// ApplySnakePreset modifies the config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Preset = preset
	if preset == DifficultyFixed {
		cfg.Difficulty.Progression.Type = "none"
		return
	}
	if ms := PeriodForPreset(preset); ms > 0 {
		cfg.Tick.PeriodMS = ms
	}
}

// DifficultyManager calculates the tick period from the score.
type DifficultyManager struct {
	cfg  DifficultyConfig
	base time.Duration
}

// NewDifficultyManager creates a manager that starts at base.
func NewDifficultyManager(cfg DifficultyConfig, base time.Duration) *DifficultyManager {
	return &DifficultyManager{cfg: cfg, base: base}
}

// IsEnabled returns whether the period changes with score.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Progression.Type == "score" && d.cfg.MinPeriodMS > 0
}

// Level returns the current difficulty level (0.0 to 1.0) for a score.
func (d *DifficultyManager) Level(score int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}
	return core.ClampF(float64(score)/maxAt, 0, 1)
}

// Period interpolates from the base period down to the minimum period.
func (d *DifficultyManager) Period(score int) time.Duration {
	minPeriod := time.Duration(d.cfg.MinPeriodMS) * time.Millisecond
	if !d.IsEnabled() || minPeriod >= d.base {
		return d.base
	}
	span := float64(d.base - minPeriod)
	return d.base - time.Duration(d.Level(score)*span)
}
