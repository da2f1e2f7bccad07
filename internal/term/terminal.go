// Package term adapts gdamore/tcell to the raw-terminal contract wee's
// editor and render packages depend on: put the terminal in raw mode,
// decode one keypress into an editor.Key, report window size and resize
// events, and paint cells.
package term

import (
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/dshills/wee/internal/editor"
)

// Terminal wraps a tcell.Screen, exposing wee's narrower read_key/
// window_size/cell-paint contract instead of tcell's full event model.
type Terminal struct {
	Screen tcell.Screen

	// checkTTY gates the stdin/stdout TTY validation in Init. Real
	// terminals (NewTerminal) need it; a simulation screen injected by
	// tests never has a real stdin/stdout to check.
	checkTTY bool
}

// NewTerminal allocates a tcell screen without touching terminal state;
// call Init to actually enter raw mode.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Terminal{Screen: screen, checkTTY: true}, nil
}

// NewFromScreen wraps an already-constructed tcell.Screen, bypassing
// NewTerminal's allocation and its TTY check. Tests use this with
// tcell.NewSimulationScreen to exercise rendering without a real TTY.
func NewFromScreen(s tcell.Screen) *Terminal {
	return &Terminal{Screen: s}
}

// Init validates stdin/stdout are a real TTY, then puts the terminal in
// raw mode via tcell. It intentionally does not enable mouse or
// bracketed-paste reporting, since spec.md names neither as a wee
// input source.
func (t *Terminal) Init() error {
	if t.checkTTY && (!term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd()))) {
		return ErrNotATTY
	}
	return t.Screen.Init()
}

// Shutdown restores the terminal to cooked mode.
func (t *Terminal) Shutdown() {
	t.Screen.Fini()
}

// WindowSize reports the current terminal dimensions as (rows, cols).
func (t *Terminal) WindowSize() (rows, cols int) {
	cols, rows = t.Screen.Size()
	return rows, cols
}

// ReadKey blocks for the next terminal event and decodes it into an
// editor.Key. A resize event yields the SpecialNull sentinel so the
// caller can re-query WindowSize and redraw without otherwise touching
// editor state, matching spec.md §2's read_key contract.
func (t *Terminal) ReadKey() editor.Key {
	for {
		switch ev := t.Screen.PollEvent().(type) {
		case *tcell.EventKey:
			return convertKey(ev)
		case *tcell.EventResize:
			return editor.Key{Special: editor.SpecialNull}
		case nil:
			// Screen was finalized concurrently (e.g. during shutdown);
			// report the null sentinel rather than spin.
			return editor.Key{Special: editor.SpecialNull}
		default:
			// Unsupported event types (mouse, paste, focus) are ignored;
			// wee names no input source for them.
		}
	}
}

// ShowCursor positions and reveals the terminal cursor.
func (t *Terminal) ShowCursor(x, y int) {
	t.Screen.ShowCursor(x, y)
}

// HideCursor hides the terminal cursor.
func (t *Terminal) HideCursor() {
	t.Screen.HideCursor()
}

// SetCursorStyle changes the cursor's visual shape, or hides it for
// CursorHidden.
func (t *Terminal) SetCursorStyle(style CursorStyle) {
	if style == CursorHidden {
		t.Screen.HideCursor()
		return
	}
	t.Screen.SetCursorStyle(style.tcell())
}

// Beep sounds the terminal bell; failures are ignored, matching
// tcell.Screen.Beep's own best-effort contract.
func (t *Terminal) Beep() {
	_ = t.Screen.Beep()
}

// Clear erases the whole screen.
func (t *Terminal) Clear() {
	t.Screen.Clear()
}

// Show flushes pending cell writes to the physical terminal.
func (t *Terminal) Show() {
	t.Screen.Show()
}

// convertKey decodes a tcell key event into wee's abstract Key.
func convertKey(ev *tcell.EventKey) editor.Key {
	if ev.Key() == tcell.KeyCtrlQ {
		return editor.Key{Special: editor.SpecialCtrlQ}
	}
	switch ev.Key() {
	case tcell.KeyEscape:
		return editor.Key{Special: editor.SpecialEsc}
	case tcell.KeyEnter:
		return editor.Key{Special: editor.SpecialEnter}
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return editor.Key{Special: editor.SpecialBackspace}
	case tcell.KeyDelete:
		return editor.Key{Special: editor.SpecialDelete}
	case tcell.KeyHome:
		return editor.Key{Special: editor.SpecialHome}
	case tcell.KeyEnd:
		return editor.Key{Special: editor.SpecialEnd}
	case tcell.KeyPgUp:
		return editor.Key{Special: editor.SpecialPageUp}
	case tcell.KeyPgDn:
		return editor.Key{Special: editor.SpecialPageDown}
	case tcell.KeyUp:
		return editor.Key{Special: editor.SpecialUp}
	case tcell.KeyDown:
		return editor.Key{Special: editor.SpecialDown}
	case tcell.KeyLeft:
		return editor.Key{Special: editor.SpecialLeft}
	case tcell.KeyRight:
		return editor.Key{Special: editor.SpecialRight}
	case tcell.KeyTab:
		return editor.Key{Rune: '\t', Bytes: []byte{'\t'}}
	case tcell.KeyRune:
		r := ev.Rune()
		return editor.Key{Rune: r, Bytes: []byte(string(r))}
	default:
		return editor.Key{Special: editor.SpecialNull}
	}
}
