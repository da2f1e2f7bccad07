package ex

import (
	"bytes"

	"github.com/dshills/wee/internal/applog"
	"github.com/dshills/wee/internal/buf"
	"github.com/dshills/wee/internal/editor"
	"github.com/dshills/wee/internal/file"
	"github.com/dshills/wee/internal/session"
)

// Engine implements editor.Executor: it interprets the ':'-prompt
// command line and the '/'-prompt search against an *editor.Editor.
type Engine struct {
	// Logger receives Warn-level notices for best-effort side paths
	// (session sidecar writes) that must never surface as an editor
	// status message or block a save. Nil is safe; logging is skipped.
	Logger *applog.Logger
}

// New returns a ready-to-wire ex Engine.
func New() *Engine { return &Engine{} }

func isBlank(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f' }

func (eng *Engine) normalOrVisualStatus(e *editor.Editor) string {
	if e.Mode == editor.ModeVisual {
		return "VISUAL"
	}
	return "NORMAL"
}

func (eng *Engine) warn(format string, args ...any) {
	if eng.Logger != nil {
		eng.Logger.Warn(format, args...)
	}
}

func (eng *Engine) save(e *editor.Editor) {
	if err := file.Save(e.Filename, e.Buf.Bytes()); err != nil {
		e.SetStatus("%s", err.Error())
		return
	}
	e.Dirty = false
	e.SetStatus("%d bytes written", e.Buf.Len())

	st := session.State{Cursor: e.Cur, ShowNum: e.ShowNum, ShowNumRel: e.ShowNumRel}
	if err := session.Save(e.Filename, st); err != nil {
		eng.warn("session save %s: %v", e.Filename, err)
	}
}

// Exec implements editor.Executor.Exec: runs the text currently in the
// ':' or '/' prompt buffer.
func (eng *Engine) Exec(e *editor.Editor) {
	if e.CmdPre == '/' {
		eng.SearchDo(e, +1)
		e.Mode = e.PrevMode
		e.SetStatus("%s", eng.normalOrVisualStatus(e))
		return
	}

	cmd := e.Cmd
	if len(cmd) == 0 {
		e.Mode = e.PrevMode
		e.SetStatus("%s", eng.normalOrVisualStatus(e))
		return
	}

	switch string(cmd) {
	case "set nu":
		e.ShowNum, e.ShowNumRel = true, false
		e.Mode = editor.ModeNormal
		e.SetStatus("NORMAL")
		return
	case "set nonu":
		e.ShowNum, e.ShowNumRel = false, false
		e.Mode = editor.ModeNormal
		e.SetStatus("NORMAL")
		return
	case "set rnu":
		e.ShowNum, e.ShowNumRel = true, true
		e.Mode = editor.ModeNormal
		e.SetStatus("NORMAL")
		return
	case "set nornu":
		e.ShowNum, e.ShowNumRel = true, false
		e.Mode = editor.ModeNormal
		e.SetStatus("NORMAL")
		return
	}

	if sub, r0, r1, kind := parseSubEx(e, cmd); kind != 0 {
		switch kind {
		case 2:
			a := e.Lines.RowToOffset(r0 - 1)
			b := e.Lines.LineEnd(e.Lines.RowToOffset(r1 - 1))
			subCmd(e, sub, a, b, true)
			if e.PrevMode == editor.ModeVisual {
				e.VisOff()
			}
			e.Mode = editor.ModeNormal
			return
		default:
			if e.PrevMode == editor.ModeVisual {
				if a, b, ok := e.VisRange(); ok {
					sa := e.Lines.RowOfOffset(e.Lines.LineStart(a)) + 1
					sb := e.Lines.RowOfOffset(e.Lines.LineStart(b)) + 1
					a = e.Lines.RowToOffset(sa - 1)
					b = e.Lines.LineEnd(e.Lines.RowToOffset(sb - 1))
					subCmd(e, sub, a, b, true)
				}
				e.VisOff()
				e.Mode = editor.ModeNormal
				return
			}
			subCmd(e, sub, 0, 0, false)
			e.Mode = editor.ModeNormal
			return
		}
	}

	if bytes.HasPrefix(cmd, []byte("run")) && (len(cmd) == 3 || isBlank(cmd[3])) {
		p := cmd[3:]
		pi := skipSpaces(p, 0)
		p = p[pi:]
		if len(p) == 0 {
			e.SetStatus("usage: :run <script>")
			e.Mode = e.PrevMode
			return
		}
		out, err := runStdout(string(p))
		if err != nil {
			e.SetStatus("run failed")
			e.Mode = e.PrevMode
			return
		}
		if len(out) == 0 {
			e.SetStatus("run: no output")
			e.Mode = e.PrevMode
			return
		}

		cursor := buf.NewUtfCursor(e.Buf)
		at := e.Cur
		if at < e.Buf.Len() {
			at = cursor.Next(at)
		}
		e.BufInsert(at, out)
		if e.PrevMode == editor.ModeVisual {
			e.VisOff()
		}
		e.Mode = editor.ModeNormal
		e.SetStatus("run: %d bytes", len(out))
		return
	}

	switch string(cmd) {
	case "q":
		if e.Dirty {
			e.SetStatus("no write since last change (:q! to quit)")
			e.Mode = editor.ModeNormal
			return
		}
		e.Quit = true
		e.QuitCode = 0
		return
	case "q!":
		e.Quit = true
		e.QuitCode = 0
		return
	case "w":
		eng.save(e)
		e.Mode = editor.ModeNormal
		e.SetStatus("NORMAL")
		return
	case "wq":
		eng.save(e)
		if !e.Dirty {
			e.Quit = true
			e.QuitCode = 0
			return
		}
		e.Mode = editor.ModeNormal
		e.SetStatus("NORMAL")
		return
	}

	e.SetStatus("unknown command: %s", string(cmd))
	e.Mode = e.PrevMode
}
