package term

import "github.com/gdamore/tcell/v2"

// CursorStyle selects the terminal cursor's visual shape, used by the
// renderer to distinguish NORMAL (block) from INSERT (bar) mode.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorBar
	CursorUnderline
	CursorHidden
)

func (s CursorStyle) tcell() tcell.CursorStyle {
	switch s {
	case CursorBar:
		return tcell.CursorStyleSteadyBar
	case CursorUnderline:
		return tcell.CursorStyleSteadyUnderline
	default:
		return tcell.CursorStyleSteadyBlock
	}
}
