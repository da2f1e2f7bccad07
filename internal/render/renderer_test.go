package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wee/internal/editor"
	"github.com/dshills/wee/internal/term"
)

// newSimTerminal builds a Terminal over a tcell simulation screen sized
// cols x rows, so render logic can be exercised without a real TTY.
func newSimTerminal(t *testing.T, cols, rows int) *term.Terminal {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	if err := sim.Init(); err != nil {
		t.Fatalf("sim.Init: %v", err)
	}
	sim.SetSize(cols, rows)
	return term.NewFromScreen(sim)
}

func TestLayoutSetsScreenDimensions(t *testing.T) {
	tm := newSimTerminal(t, 40, 10)
	e := editor.NewFromBytes([]byte("hello"))
	r := New(tm)
	r.Layout(e)
	if e.ScreenCols != 40 || e.ScreenRows != 10 || e.TextRows != 8 {
		t.Fatalf("dims = %d,%d,%d", e.ScreenCols, e.ScreenRows, e.TextRows)
	}
}

func TestScrollKeepsCursorVisible(t *testing.T) {
	tm := newSimTerminal(t, 20, 5)
	content := ""
	for i := 0; i < 20; i++ {
		content += "line\n"
	}
	e := editor.NewFromBytes([]byte(content))
	r := New(tm)
	r.Layout(e)
	e.Cur = e.Lines.RowToOffset(15)
	r.scroll(e)
	cy := e.Lines.RowOfOffset(e.Cur)
	if cy < e.RowOff || cy >= e.RowOff+e.TextRows {
		t.Fatalf("cursor row %d not within [%d,%d)", cy, e.RowOff, e.RowOff+e.TextRows)
	}
}

func TestRefreshDrawsTildeForEmptyBuffer(t *testing.T) {
	tm := newSimTerminal(t, 10, 5)
	e := editor.New()
	r := New(tm)
	r.Layout(e)
	r.Refresh(e)
	// row 0 is the buffer's single (empty) line; row 1 is past end of
	// buffer and should carry the '~' fill marker.
	mainc, _, _, _ := tm.Screen.GetContent(0, 1)
	if mainc != '~' {
		t.Fatalf("cell (0,1) = %q, want '~'", mainc)
	}
}

func TestRefreshPaintsStatusBarRow(t *testing.T) {
	tm := newSimTerminal(t, 20, 5)
	e := editor.NewFromBytes([]byte("abc"))
	e.Filename = "x.txt"
	r := New(tm)
	r.Layout(e)
	r.Refresh(e)
	mainc, _, _, _ := tm.Screen.GetContent(1, e.ScreenRows-2)
	if mainc != 'x' {
		t.Fatalf("status row cell = %q, want 'x'", mainc)
	}
}

func TestDrawMessageShowsCommandLine(t *testing.T) {
	tm := newSimTerminal(t, 20, 5)
	e := editor.NewFromBytes([]byte("abc"))
	e.Mode = editor.ModeCmd
	e.CmdPre = ':'
	e.Cmd = []byte("wq")
	r := New(tm)
	r.Layout(e)
	r.Refresh(e)
	c0, _, _, _ := tm.Screen.GetContent(0, e.ScreenRows-1)
	c1, _, _, _ := tm.Screen.GetContent(1, e.ScreenRows-1)
	c2, _, _, _ := tm.Screen.GetContent(2, e.ScreenRows-1)
	if c0 != ':' || c1 != 'w' || c2 != 'q' {
		t.Fatalf("message row = %q%q%q, want :wq", c0, c1, c2)
	}
}
