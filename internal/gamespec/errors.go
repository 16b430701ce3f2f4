package gamespec

import (
	"errors"
	"fmt"

	"cuelang.org/go/cue/token"
)

// Error codes for game definition loading. The G0xx range covers file and
// CUE evaluation problems, G1xx covers definition-level validation.
const (
	CodeNotFound    = "G001" // definition directory missing
	CodeNoFiles     = "G002" // no .cue files in the directory
	CodeLoadFailed  = "G003" // CUE instance load failed
	CodeBuildFailed = "G004" // CUE evaluation failed

	CodeMissingGame = "G101" // no top-level game struct
	CodeBadMetrics  = "G102" // metrics list missing or malformed
	CodeBadPlayer   = "G103" // player entry malformed
	CodeBadPriority = "G104" // priority pairs not a partial order
	CodeBadPayoffs  = "G105" // payoff table incomplete or malformed
)

// SpecError reports a problem in a game definition, with the CUE source
// position when one is available.
type SpecError struct {
	Code    string
	Message string
	Pos     token.Pos
	Err     error
}

func (e *SpecError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *SpecError) Unwrap() error { return e.Err }

// IsSpec reports whether err is (or wraps) a SpecError.
func IsSpec(err error) bool {
	var se *SpecError
	return errors.As(err, &se)
}
