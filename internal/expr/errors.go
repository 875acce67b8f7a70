package expr

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrSyntax          = errors.New("syntax error")
	ErrUnknownVariable = errors.New("unknown variable")
	ErrUnknownFunc     = errors.New("unknown function")
)

// SyntaxError reports where parsing stopped.
type SyntaxError struct {
	Pos int    // Byte offset in the source
	Msg string // What was expected or found
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", ErrSyntax, e.Pos, e.Msg)
}

// Unwrap lets errors.Is match ErrSyntax.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
