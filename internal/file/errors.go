package file

import "errors"

// ErrNoFilename indicates a save was attempted with no destination path.
var ErrNoFilename = errors.New("no filename")
