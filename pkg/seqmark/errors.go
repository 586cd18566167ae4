package seqmark

import "errors"

var (
	// ErrInvalidData reports a payload whose bytes cannot be decoded as text.
	ErrInvalidData = errors.New("seqmark: invalid data")
)
