package generator

import "errors"

var (
	// ErrInput is returned for a missing or non-integer process count.
	ErrInput = errors.New("invalid input")
	// ErrIO is returned when the output file cannot be created or written.
	ErrIO = errors.New("output error")
)
