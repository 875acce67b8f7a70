package graph

import "errors"

// Common errors.
var (
	ErrShapeMismatch = errors.New("shape mismatch")
	ErrNilNode       = errors.New("nil node")
	ErrEmpty         = errors.New("empty vector")
	ErrExpandSource  = errors.New("expand source must have length 1")
)
