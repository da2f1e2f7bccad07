package buf

import "errors"

// Errors returned by the text engine's core data structures.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid buffer range.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates an invalid range (end before start, or out of bounds).
	ErrRangeInvalid = errors.New("invalid range")
)
