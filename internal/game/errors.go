package game

import "errors"

var (
	// ErrInvalidGuess: the guess is not an integer in [0,360]. The round stays open.
	ErrInvalidGuess = errors.New("guess must be a whole number between 0 and 360")
	// ErrOutOfSequence: commit on a locked or not-yet-unlocked round. Callers treat it as a no-op.
	ErrOutOfSequence = errors.New("round is not accepting guesses")
	// ErrMissingElement: the UI host cannot resolve a field the game needs.
	ErrMissingElement = errors.New("ui host is missing a required element")
)
