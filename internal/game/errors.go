package game

import "errors"

var (
	// ErrNotStarted is returned when an operation runs before Initialize
	ErrNotStarted = errors.New("game not started")

	// ErrGameOver is returned when an operation runs after the game ended
	ErrGameOver = errors.New("game is over")

	// ErrWrongPhase is returned when an operation does not match the phase
	ErrWrongPhase = errors.New("operation not allowed in current phase")

	// ErrNotYourTurn is returned when a player acts out of turn
	ErrNotYourTurn = errors.New("not this player's turn")

	// ErrUnknownCharacter is returned for a character outside the suspect catalog
	ErrUnknownCharacter = errors.New("unknown character")

	// ErrIllegalMove is returned for a destination outside the last computed moves
	ErrIllegalMove = errors.New("destination is not a valid move")

	// ErrIllegalChoice is returned for a suspect, weapon or room outside the catalogs
	ErrIllegalChoice = errors.New("choice is outside the catalogs")

	// ErrHumanTurn is returned when the automated turn driver is invoked
	// while it is the human player's turn
	ErrHumanTurn = errors.New("current player is human")
)
