// Package app wires wee's terminal, editor, ex engine, and renderer
// together and runs the single-threaded poll/handle/refresh loop
// spec.md §5 specifies. Grounded on the teacher's internal/app
// Application shape (a struct of component fields plus a running
// flag), trimmed to the one backend/one document/no-plugin model wee
// actually has — the teacher's event bus, dispatcher, mode manager,
// LSP/plugin/project managers, and document set have no SPEC_FULL.md
// component to bind to (see DESIGN.md's drop log).
package app

import (
	"fmt"
	"os"

	"github.com/dshills/wee/internal/applog"
	"github.com/dshills/wee/internal/editor"
	"github.com/dshills/wee/internal/ex"
	"github.com/dshills/wee/internal/file"
	"github.com/dshills/wee/internal/render"
	"github.com/dshills/wee/internal/session"
	"github.com/dshills/wee/internal/term"
)

// Options configures Application construction: the file to open (if
// any) and where to send log output. spec.md §1.7 is explicit that wee
// has no configuration file, so this is the entire surface — no nested
// config object, no env var fallback.
type Options struct {
	Path     string
	LogLevel applog.LogLevel
	LogFile  string
}

// Application is wee's top-level aggregate: one terminal, one editor,
// one ex engine wired in as the editor's Executor, one renderer.
type Application struct {
	Term     *term.Terminal
	Editor   *editor.Editor
	Engine   *ex.Engine
	Renderer *render.Renderer
	Logger   *applog.Logger

	logFile *os.File
	running bool
}

// New constructs an Application: opens the terminal backend, opens the
// named file (or an empty buffer), restores last-session state if a
// fresh sidecar is present, and wires the ex engine as the editor's
// Executor. It does not put the terminal in raw mode — that happens in
// Run, so construction failures never leave a half-initialized screen.
func New(opts Options) (*Application, error) {
	t, err := term.NewTerminal()
	if err != nil {
		return nil, fmt.Errorf("create terminal: %w", err)
	}
	return newWithTerminal(opts, t)
}

// newWithTerminal builds an Application over an already-constructed
// Terminal, letting tests substitute a tcell simulation screen instead
// of a real tty-backed one.
func newWithTerminal(opts Options, t *term.Terminal) (*Application, error) {
	logger, logFile, err := newLogger(opts)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	e, err := openEditor(opts.Path, logger)
	if err != nil {
		return nil, err
	}

	eng := ex.New()
	eng.Logger = logger
	e.Executor = eng

	return &Application{
		Term:     t,
		Editor:   e,
		Engine:   eng,
		Renderer: render.New(t),
		Logger:   logger,
		logFile:  logFile,
	}, nil
}

// Close releases resources that outlive a single Run call (currently
// just the log file, if one was opened).
func (app *Application) Close() {
	if app.logFile != nil {
		_ = app.logFile.Close()
	}
}

// newLogger builds the application logger. With no -log-file, output
// goes nowhere rather than stderr: stderr is the alternate-screen
// terminal itself once Run starts, and writing log lines there would
// corrupt the display (SPEC_FULL.md §1.3).
func newLogger(opts Options) (*applog.Logger, *os.File, error) {
	if opts.LogFile == "" {
		return applog.Null, nil, nil
	}
	f, err := os.OpenFile(opts.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	cfg := applog.DefaultConfig()
	cfg.Output = f
	cfg.Level = opts.LogLevel
	return applog.New(cfg), f, nil
}

// openEditor loads path into a fresh Editor, or returns an empty
// buffer if path is "". A missing file is not an error (file.Load
// reports isNew); restoring a stale or absent session sidecar is
// likewise never an error, only a skipped convenience.
func openEditor(path string, logger *applog.Logger) (*editor.Editor, error) {
	if path == "" {
		return editor.New(), nil
	}

	data, isNew, err := file.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	e := editor.NewFromBytes(data)
	e.Filename = path

	if isNew {
		logger.Info("new file %s", path)
	} else {
		logger.Info("loaded %s (%d bytes)", path, len(data))
	}

	if st, ok := session.Load(path); ok {
		e.ShowNum = st.ShowNum
		e.ShowNumRel = st.ShowNumRel
		e.Cur = e.Lines.ClampCursor(st.Cursor)
	}

	return e, nil
}
