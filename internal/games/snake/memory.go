package snake

import "sync"

// MemoryHighScores keeps the best score in memory. It is the default store
// and is handy in tests.
type MemoryHighScores struct {
	mu    sync.Mutex
	best  int
	saves int
}

// NewMemoryHighScores creates a store holding initial.
func NewMemoryHighScores(initial int) *MemoryHighScores {
	return &MemoryHighScores{best: initial}
}

// HighScore implements HighScores.
func (m *MemoryHighScores) HighScore() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// SetHighScore implements HighScores. Lower scores are ignored.
func (m *MemoryHighScores) SetHighScore(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if score > m.best {
		m.best = score
	}
	return nil
}

// Saves returns how many times SetHighScore was called.
func (m *MemoryHighScores) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
