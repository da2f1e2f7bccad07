package app

import (
	"fmt"

	"github.com/dshills/wee/internal/editor"
)

// Run puts the terminal in raw mode and runs the single-threaded
// refresh/read/dispatch loop until the editor sets Quit, then restores
// the terminal. Grounded on original_source/wee.c's main loop
// (winchtick, refresh, processkey, repeat); SpecialNull resize events
// fold into the same HandleKey call as real keys since HandleKey is
// already a no-op for them, rather than a separate winchtick step.
func (app *Application) Run() error {
	if app.running {
		return ErrAlreadyRunning
	}
	app.running = true
	defer func() { app.running = false }()

	if err := app.Term.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer app.Term.Shutdown()

	for !app.Editor.Quit {
		app.Renderer.Layout(app.Editor)
		app.Renderer.Refresh(app.Editor)

		k := app.Term.ReadKey()
		if k.Special != editor.SpecialNull {
			app.Logger.Debug("key dispatched: %+v", k)
		}
		app.Editor.HandleKey(k)
	}

	return nil
}
