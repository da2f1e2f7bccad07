package editor

import "errors"

// Errors returned by editor-level operations.
var (
	// ErrNoFilename indicates a save was attempted with no associated path.
	ErrNoFilename = errors.New("no filename")
)
