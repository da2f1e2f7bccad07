// Package editor implements wee's core editing state: the buffer-backed
// aggregate, its primitive edit operations, and the modal (vi-style)
// key-dispatch engine built on top of them.
package editor

import (
	"fmt"
	"time"

	"github.com/dshills/wee/internal/buf"
	"github.com/dshills/wee/internal/history"
)

// Mode is one of wee's four editing modes.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeCmd
)

// String returns the status-line label for m.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeCmd:
		return "CMD"
	default:
		return "?"
	}
}

// Operator is a pending operator awaiting a motion or text object.
type Operator byte

const (
	OpNone   Operator = 0
	OpDelete Operator = 'd'
	OpYank   Operator = 'y'
	OpChange Operator = 'c'
)

// Editor is the single owned aggregate holding all editing state: the
// text buffer, cursor, pending command state, yank register, undo log,
// and view offsets. Callers pass it around by pointer and borrow it
// exclusively; it is not safe for concurrent use, matching wee's
// single-threaded event loop.
type Editor struct {
	Mode     Mode
	PrevMode Mode

	Filename string
	Dirty    bool

	Buf   *buf.ByteBuffer
	Lines *buf.LineIndex
	Undo  *history.UndoLog

	Cur   int
	VMark int

	RowOff int
	ColOff int

	Yank     []byte
	YankLine bool

	Count int
	Op    Operator

	Status     string
	StatusTime time.Time

	Cmd    []byte
	CmdPre byte
	Search []byte
	Parser ParseState

	ShowNum    bool
	ShowNumRel bool

	ScreenRows int
	ScreenCols int
	TextRows   int

	// Executor runs ex commands and searches; wired in by the
	// application from the ex package to avoid an import cycle.
	Executor Executor

	// Quit is set by the ex engine (:q, :q!, :wq) to signal the event
	// loop to stop.
	Quit     bool
	QuitCode int
}

// New returns a fresh editor over an empty buffer.
func New() *Editor {
	b := buf.NewByteBuffer()
	return &Editor{
		Buf:   b,
		Lines: buf.NewLineIndex(b),
		Undo:  history.New(),
		Mode:  ModeNormal,
	}
}

// NewFromBytes returns a fresh editor seeded with content.
func NewFromBytes(content []byte) *Editor {
	b := buf.NewByteBufferFromString(string(content))
	return &Editor{
		Buf:   b,
		Lines: buf.NewLineIndex(b),
		Undo:  history.New(),
		Mode:  ModeNormal,
	}
}

// SetStatus formats and sets the transient status message, stamping the
// time it was shown so the renderer can auto-hide it after a few
// seconds.
func (e *Editor) SetStatus(format string, args ...any) {
	e.Status = fmt.Sprintf(format, args...)
	e.StatusTime = time.Now()
}

// ClampCur keeps Cur within bounds and on a UTF-8 lead byte.
func (e *Editor) ClampCur() {
	e.Cur = e.Lines.ClampCursor(e.Cur)
}
