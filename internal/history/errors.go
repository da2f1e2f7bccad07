package history

import "errors"

// ErrNothingToUndo indicates the undo stack is empty.
var ErrNothingToUndo = errors.New("nothing to undo")
