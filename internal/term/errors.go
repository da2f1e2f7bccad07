package term

import "errors"

// ErrNotATTY is returned by Init when stdin/stdout are not attached to a
// real terminal.
var ErrNotATTY = errors.New("not a terminal")
