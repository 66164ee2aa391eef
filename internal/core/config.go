package core

// RuntimeConfig carries what the front-end learns about its surroundings at
// startup: terminal size, frame rate for animation, and the RNG seed.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Animation frames per second (particles, effects)
	Seed      int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 30,
		Seed:      0,
	}
}
