package order

import (
	"errors"
	"fmt"
)

// InvalidRelationError reports a malformed relation input: a pair referencing
// an element outside the declared ground set, or an empty ground set.
type InvalidRelationError struct {
	// Element is the offending element, when one can be named.
	Element string

	// Pair is the offending input pair, when the problem is pair-level.
	Pair [2]string

	// Reason is a human-readable description.
	Reason string
}

func (e *InvalidRelationError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("invalid relation: %s (element %q)", e.Reason, e.Element)
	}
	if e.Pair != [2]string{} {
		return fmt.Sprintf("invalid relation: %s (pair %q <= %q)", e.Reason, e.Pair[0], e.Pair[1])
	}
	return fmt.Sprintf("invalid relation: %s", e.Reason)
}

// NotAPartialOrderError reports an antisymmetry violation: two distinct
// elements related in both directions where a partial order was required.
type NotAPartialOrderError struct {
	A, B string
}

func (e *NotAPartialOrderError) Error() string {
	return fmt.Sprintf("not a partial order: both %q <= %q and %q <= %q for distinct elements", e.A, e.B, e.B, e.A)
}

// IsInvalidRelation reports whether err is an InvalidRelationError.
// Uses errors.As to handle wrapped errors.
func IsInvalidRelation(err error) bool {
	var re *InvalidRelationError
	return errors.As(err, &re)
}

// IsNotAPartialOrder reports whether err is a NotAPartialOrderError.
func IsNotAPartialOrder(err error) bool {
	var pe *NotAPartialOrderError
	return errors.As(err, &pe)
}
