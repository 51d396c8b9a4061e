package cubelet

import "errors"

// Sentinel errors for the cubelet package.
var (
	// Move errors
	ErrInvalidMove     = errors.New("cubelet: invalid move")
	ErrInvalidNotation = errors.New("cubelet: invalid move notation")

	// State errors
	ErrInvalidState = errors.New("cubelet: invalid cube state")

	// Sequencer errors
	ErrScrambling = errors.New("cubelet: scramble in progress")
)
