package app

import (
	"fmt"
	"os"
)

// Fatal reports a startup failure the editor cannot recover from (a
// non-TTY stdin/stdout, a tcell.Screen.Init failure, an unreadable
// argument file) and exits with status 1. Grounded on
// original_source/wee_util.c's die(): clear the screen if a terminal
// was already initialized, print to stderr, exit 1. Unlike die(), this
// never touches the terminal itself — the caller must have already
// torn it down (or never brought it up) before calling Fatal, since by
// the time a Go program can construct an error value the raw escape
// write die() does is no longer the right layer to do it at.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "wee: %v\n", err)
	os.Exit(1)
}
