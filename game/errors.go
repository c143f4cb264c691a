package game

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariantViolation marks caller misuse of the mutating
	// surface: applying a move that fails validation, moving after the
	// winner is decided, or advancing turns with every color frozen.
	ErrInvariantViolation = errors.New("invariant violation")
)

// AddressError reports a malformed square coordinate, notation or
// index. It signals a caller bug, not a game-state condition.
type AddressError struct {
	Input string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("invalid square address %q", e.Input)
}
