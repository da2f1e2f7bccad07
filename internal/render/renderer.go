package render

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wee/internal/buf"
	"github.com/dshills/wee/internal/editor"
	"github.com/dshills/wee/internal/term"
)

// Renderer paints an Editor's buffer, status bar, and message line onto
// a terminal, keeping the viewport scrolled so the cursor stays
// visible. Grounded on the original's scroll/drawrows/drawstatus/
// drawmsg/refresh pipeline (render.c), redirected to tcell cell writes
// instead of a raw escape-sequence byte buffer. Unlike the teacher's
// renderer.go, Renderer talks to a single concrete *editor.Editor
// rather than a BufferReader/CursorProvider/HighlightProvider trio:
// wee has exactly one buffer and one terminal, so the provider
// indirection has no second implementation to justify it.
type Renderer struct {
	term *term.Terminal
}

// New returns a Renderer painting onto t.
func New(t *term.Terminal) *Renderer {
	return &Renderer{term: t}
}

// Layout recomputes e's screen dimensions from the terminal's current
// size, reserving the last two rows for the status bar and message
// line.
func (r *Renderer) Layout(e *editor.Editor) {
	rows, cols := r.term.WindowSize()
	e.ScreenRows = rows
	e.ScreenCols = cols
	e.TextRows = rows - 2
	if e.TextRows < 1 {
		e.TextRows = 1
	}
}

// scroll adjusts RowOff/ColOff so the cursor stays within the visible
// text area, mirroring render.c's scroll(). It does not animate or
// ease the offset: spec.md's event loop is a single blocking-poll
// cycle with no timers besides the status message TTL, so an
// instantaneous clamp is the whole of the model.
func (r *Renderer) scroll(e *editor.Editor) {
	cy := e.Lines.RowOfOffset(e.Cur)
	cx := e.Lines.ColOfOffset(e.Cur)
	w := e.Lines.NumW(e.ShowNum)
	textCols := e.ScreenCols - w
	if textCols < 1 {
		textCols = 1
	}
	if cy < e.RowOff {
		e.RowOff = cy
	}
	if cy >= e.RowOff+e.TextRows {
		e.RowOff = cy - e.TextRows + 1
	}
	if cx < e.ColOff {
		e.ColOff = cx
	}
	if cx >= e.ColOff+textCols {
		e.ColOff = cx - textCols + 1
	}
	if e.RowOff < 0 {
		e.RowOff = 0
	}
	if e.ColOff < 0 {
		e.ColOff = 0
	}
}

// Refresh repaints the whole screen for e's current state: text rows,
// status bar, message line, and cursor position/shape.
func (r *Renderer) Refresh(e *editor.Editor) {
	r.scroll(e)
	r.term.Screen.Clear()
	r.drawRows(e)
	r.drawStatus(e)
	r.drawMessage(e)
	r.positionCursor(e)
	if e.Mode == editor.ModeInsert {
		r.term.SetCursorStyle(term.CursorBar)
	} else {
		r.term.SetCursorStyle(term.CursorBlock)
	}
	r.term.Show()
}

// drawRows paints the text area: a '~' for rows past end of buffer, a
// numbered gutter when ShowNum is set, and the visible slice of each
// line with tabs expanded and the VISUAL-mode selection inverted.
func (r *Renderer) drawRows(e *editor.Editor) {
	w := e.Lines.NumW(e.ShowNum)
	textCols := e.ScreenCols - w
	if textCols < 1 {
		textCols = 1
	}
	lineCount := e.Lines.LineCount()
	curLine := e.Lines.RowOfOffset(e.Cur) + 1
	sa, sb, hasVis := e.VisRange()
	data := e.Buf.Bytes()

	for y := 0; y < e.TextRows; y++ {
		lineno := e.RowOff + y + 1
		if lineno > lineCount {
			x := 0
			if w > 0 {
				r.setText(0, y, w, "~", GutterStyle())
				x = w
			} else {
				r.setText(0, y, 1, "~", TextStyle())
				x = 1
			}
			r.clearFrom(x, y, e.ScreenCols)
			continue
		}

		ls := e.Lines.RowToOffset(lineno - 1)
		le := e.Lines.LineEnd(ls)

		if w > 0 {
			shown := lineno
			if e.ShowNumRel && lineno != curLine {
				if lineno > curLine {
					shown = lineno - curLine
				} else {
					shown = curLine - lineno
				}
			}
			numStr := fmt.Sprintf("%*d ", w-1, shown)
			r.setText(0, y, w, numStr, GutterStyle())
		}

		col := 0
		x := w
		i := ls
		for i < le && i < len(data) && col < e.ColOff+textCols {
			style := TextStyle()
			if hasVis && i >= sa && i < sb {
				style = SelectionStyle()
			}
			if data[i] == '\t' {
				step := buf.Tabstop - col%buf.Tabstop
				for k := 0; k < step && col < e.ColOff+textCols; k++ {
					if col >= e.ColOff {
						r.term.Screen.SetContent(x, y, ' ', nil, style)
						x++
					}
					col++
				}
				i++
				continue
			}
			rw, size := e.Lines.RuneWidthAt(i)
			if col >= e.ColOff {
				rn, _ := utf8.DecodeRune(data[i:])
				r.term.Screen.SetContent(x, y, rn, nil, style)
				x++
			}
			col += rw
			i += size
		}
		r.clearFrom(x, y, e.ScreenCols)
	}
}

func (r *Renderer) drawStatus(e *editor.Editor) {
	row := e.ScreenRows - 2
	if row < 0 {
		return
	}
	left, right := StatusText(e.Filename, e.Dirty, e.Lines.LineCount(), e.Mode.String(),
		e.Lines.RowOfOffset(e.Cur)+1, e.Lines.ColOfOffset(e.Cur)+1)
	cells := LayoutStatusBar(left, right, e.ScreenCols)
	style := StatusBarStyle()
	for x, rn := range cells {
		r.term.Screen.SetContent(x, row, rn, nil, style)
	}
}

func (r *Renderer) drawMessage(e *editor.Editor) {
	row := e.ScreenRows - 1
	if row < 0 {
		return
	}
	msg := MessageLine(e, e.ScreenCols)
	style := TextStyle()
	x := 0
	for _, rn := range msg {
		if x >= e.ScreenCols {
			break
		}
		r.term.Screen.SetContent(x, row, rn, nil, style)
		x++
	}
	r.clearFrom(x, row, e.ScreenCols)
	if e.Mode == editor.ModeCmd {
		r.term.ShowCursor(utf8.RuneCountInString(msg), row)
	}
}

// positionCursor places the terminal cursor at e.Cur's screen location.
// CMD mode positions the cursor at the end of the command line instead,
// already handled by drawMessage.
func (r *Renderer) positionCursor(e *editor.Editor) {
	if e.Mode == editor.ModeCmd {
		return
	}
	w := e.Lines.NumW(e.ShowNum)
	cy := e.Lines.RowOfOffset(e.Cur) - e.RowOff
	cx := e.Lines.ColOfOffset(e.Cur) - e.ColOff + w
	if cy < 0 {
		cy = 0
	}
	if cy >= e.TextRows {
		cy = e.TextRows - 1
	}
	if cx < 0 {
		cx = 0
	}
	if cx >= e.ScreenCols {
		cx = e.ScreenCols - 1
	}
	r.term.ShowCursor(cx, cy)
}

func (r *Renderer) setText(x, y, maxW int, s string, style tcell.Style) {
	i := 0
	for _, rn := range s {
		if i >= maxW {
			break
		}
		r.term.Screen.SetContent(x+i, y, rn, nil, style)
		i++
	}
}

func (r *Renderer) clearFrom(x, y, cols int) {
	style := TextStyle()
	for ; x < cols; x++ {
		r.term.Screen.SetContent(x, y, ' ', nil, style)
	}
}
