package render

import (
	"fmt"
	"time"

	"github.com/dshills/wee/internal/editor"
)

// statusMessageTTL is how long a transient status message stays visible
// after SetStatus, matching spec.md §5's five-second window.
const statusMessageTTL = 5 * time.Second

// StatusText builds the left and right segments of the status bar,
// grounded on render.c's drawstatus: "<name><*> - N lines [MODE]" on the
// left, "<row>,<col>" right-justified.
func StatusText(filename string, dirty bool, lineCount int, mode string, row, col int) (left, right string) {
	name := filename
	if name == "" {
		name = "[No Name]"
	}
	mark := ""
	if dirty {
		mark = "*"
	}
	left = fmt.Sprintf(" %s%s - %d lines [%s] ", name, mark, lineCount, mode)
	right = fmt.Sprintf(" %d,%d ", row, col)
	return left, right
}

// LayoutStatusBar lays left and right out over cols columns, padding
// with spaces between them and placing right flush against the far edge
// when it fits, and dropping it entirely otherwise — matching
// drawstatus's space-by-space fill loop rather than an unconditional
// right-anchor.
func LayoutStatusBar(left, right string, cols int) []rune {
	cells := make([]rune, cols)
	for i := range cells {
		cells[i] = ' '
	}
	l := []rune(left)
	if len(l) > cols {
		l = l[:cols]
	}
	copy(cells, l)
	r := []rune(right)
	if len(l)+len(r) <= cols {
		copy(cells[cols-len(r):], r)
	}
	return cells
}

// MessageLine returns the text of the bottom line: the live command
// buffer while in CMD mode, else the transient status message if it
// hasn't expired, else empty. Grounded on render.c's drawmsg.
func MessageLine(e *editor.Editor, cols int) string {
	if e.Mode == editor.ModeCmd {
		prefix := e.CmdPre
		if prefix == 0 {
			prefix = ':'
		}
		return string(prefix) + string(e.Cmd)
	}
	if e.Status != "" && time.Since(e.StatusTime) < statusMessageTTL {
		s := e.Status
		if len(s) > cols {
			s = s[:cols]
		}
		return s
	}
	return ""
}
