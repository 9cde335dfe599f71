package field

import "errors"

// Sentinel errors for field map construction and mutation.
var (
	// ErrBadTimeLimit indicates a non-positive time limit.
	ErrBadTimeLimit = errors.New("field: time limit must be positive")
	// ErrWrongShape indicates label rows whose dimensions are not (2T+1)×(2T+1).
	ErrWrongShape = errors.New("field: label rows must be (2T+1)×(2T+1)")
	// ErrOutOfRange indicates a coordinate outside [−T, +T].
	ErrOutOfRange = errors.New("field: coordinate outside [-T, +T]")
)
