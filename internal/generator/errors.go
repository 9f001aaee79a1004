package generator

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownGenerator = errors.New("unknown generator")
	ErrInvalidConfig    = errors.New("invalid generator config")
	ErrInvalidCount     = errors.New("invalid case count")
)

// InputParseError reports a case count that could not be read from input
type InputParseError struct {
	Input string
	Err   error
}

func (e *InputParseError) Error() string {
	return fmt.Sprintf("parse case count %q: %v", e.Input, e.Err)
}

func (e *InputParseError) Unwrap() error { return e.Err }

// ComputationError reports a numeric routine that produced an unusable result
type ComputationError struct {
	Op  string
	Err error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }
