package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:     20,
			CellSize: 15,
			MaxWidth: 420,
		},
		Tick: TickConfig{
			PeriodMS: 120,
		},
		Start: StartConfig{
			Col:     9,
			Row:     9,
			Heading: "right",
		},
		Food: FoodConfig{
			EnumerateThreshold: 0.6,
		},
		RestartPolicy: "idle",
		Effects: EffectsConfig{
			Flash: 4,
			Pulse: 6,
			Ring:  8,
		},
		Particles: ParticlesConfig{
			Count:       100,
			MinSize:     1,
			MaxSize:     3,
			Speed:       0.25,
			MouseRadius: 8,
			BoostFactor: 1.4,
			BoostMS:     300,
		},
		Difficulty: DifficultyConfig{
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 50,
			},
			MinPeriodMS: 60,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
