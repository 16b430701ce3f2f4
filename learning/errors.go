package learning

import (
	"errors"
	"fmt"
)

// InvalidBeliefError reports a malformed belief construction: no candidates,
// duplicate candidates, weights outside [0, 1], or zero total mass.
type InvalidBeliefError struct {
	Reason string
}

func (e *InvalidBeliefError) Error() string {
	return fmt.Sprintf("invalid belief: %s", e.Reason)
}

// ZeroMassError reports an update whose likelihoods left no candidate with
// positive mass. It marks an observation inconsistent with every candidate,
// which is a different situation from a belief that merely fails to
// concentrate.
type ZeroMassError struct {
	// PlayerID names the belief's subject when known.
	PlayerID string
}

func (e *ZeroMassError) Error() string {
	if e.PlayerID != "" {
		return fmt.Sprintf("belief update for player %q lost all mass", e.PlayerID)
	}
	return "belief update lost all mass"
}

// IsInvalidBelief reports whether err is an InvalidBeliefError.
// Uses errors.As to handle wrapped errors.
func IsInvalidBelief(err error) bool {
	var be *InvalidBeliefError
	return errors.As(err, &be)
}

// IsZeroMass reports whether err is (or wraps) a ZeroMassError.
func IsZeroMass(err error) bool {
	var ze *ZeroMassError
	return errors.As(err, &ze)
}
