package storage

// Keeper exposes one game's best score through the engine's HighScores
// interface.
type Keeper struct {
	store  *Store
	gameID string
}

// Keeper returns the best-score keeper for gameID.
func (s *Store) Keeper(gameID string) *Keeper {
	return &Keeper{store: s, gameID: gameID}
}

// HighScore returns the stored best.
func (k *Keeper) HighScore() (int, error) {
	return k.store.HighScore(k.gameID)
}

// SetHighScore raises the stored best.
func (k *Keeper) SetHighScore(score int) error {
	return k.store.SetHighScore(k.gameID, score)
}
