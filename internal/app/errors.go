package app

import "errors"

var (
	// ErrAlreadyRunning is returned by Run if the Application is already
	// inside its event loop.
	ErrAlreadyRunning = errors.New("application already running")
)
