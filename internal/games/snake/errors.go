package snake

import "errors"

var (
	// ErrInvalidConfig is returned when the engine is built with a
	// non-positive grid size, cell size or tick period.
	ErrInvalidConfig = errors.New("snake: invalid configuration")

	// ErrBoardFull means no free cell is left for food. The engine treats it
	// as a won round, not a failure.
	ErrBoardFull = errors.New("snake: board is full")
)
