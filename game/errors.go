package game

import (
	"errors"
	"fmt"
)

// InvalidGameError reports an inconsistent game construction: duplicate or
// missing players, preferences over the wrong metric set, or a partial
// outcome function.
type InvalidGameError struct {
	// PlayerID names the offending player, when the problem is
	// player-level.
	PlayerID string

	// Reason is a human-readable description.
	Reason string

	// Err carries an underlying cause, if any.
	Err error
}

func (e *InvalidGameError) Error() string {
	if e.PlayerID != "" {
		return fmt.Sprintf("invalid game: %s (player %q)", e.Reason, e.PlayerID)
	}
	return fmt.Sprintf("invalid game: %s", e.Reason)
}

func (e *InvalidGameError) Unwrap() error { return e.Err }

// EmptyActionSpaceError reports a player with no available actions.
type EmptyActionSpaceError struct {
	PlayerID string
}

func (e *EmptyActionSpaceError) Error() string {
	return fmt.Sprintf("player %q has an empty action set", e.PlayerID)
}

// IsInvalidGame reports whether err is an InvalidGameError.
// Uses errors.As to handle wrapped errors.
func IsInvalidGame(err error) bool {
	var ge *InvalidGameError
	return errors.As(err, &ge)
}

// IsEmptyActionSpace reports whether err is (or wraps) an
// EmptyActionSpaceError.
func IsEmptyActionSpace(err error) bool {
	var ae *EmptyActionSpaceError
	return errors.As(err, &ae)
}
