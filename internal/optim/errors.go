package optim

import "errors"

var (
	// ErrNotScalar is returned when the objective does not evaluate to a
	// single value.
	ErrNotScalar = errors.New("objective is not scalar")

	// ErrDiverged is returned when the objective or its gradient becomes
	// NaN or infinite.
	ErrDiverged = errors.New("objective diverged")

	// ErrNoStart is returned for an empty starting point.
	ErrNoStart = errors.New("empty starting point")
)
