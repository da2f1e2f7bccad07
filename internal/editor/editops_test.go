package editor

import "testing"

func TestEnterInsertBeginsNewGroup(t *testing.T) {
	e := NewFromBytes([]byte("abc"))
	e.EnterInsert()
	if e.Mode != ModeInsert {
		t.Fatalf("mode = %v", e.Mode)
	}
	e.InsertByte('x')
	e.NormReset()
	e.Mode = ModeNormal
	e.EnterInsert()
	e.InsertByte('y')
	if cur, err := e.Undo.Undo(e.Buf); err != nil || e.Buf.String() != "xabc" {
		t.Fatalf("after one undo: buf=%q cur=%d err=%v", e.Buf.String(), cur, err)
	}
}

func TestVisRangeInclusive(t *testing.T) {
	e := NewFromBytes([]byte("abcdef"))
	e.VisOn()
	e.Cur = 3
	a, b, ok := e.VisRange()
	if !ok || a != 0 || b != 4 {
		t.Fatalf("a=%d b=%d ok=%v", a, b, ok)
	}
}

func TestVisRangeSwapsWhenCursorBeforeMark(t *testing.T) {
	e := NewFromBytes([]byte("abcdef"))
	e.Cur = 4
	e.VisOn()
	e.Cur = 1
	a, b, ok := e.VisRange()
	if !ok || a != 1 || b != 5 {
		t.Fatalf("a=%d b=%d ok=%v", a, b, ok)
	}
}

func TestVisRangeFalseWhenNotVisual(t *testing.T) {
	e := NewFromBytes([]byte("abc"))
	if _, _, ok := e.VisRange(); ok {
		t.Fatalf("ok = true outside VISUAL")
	}
}

func TestYankSetAndPasteAfterCharwise(t *testing.T) {
	e := NewFromBytes([]byte("abcdef"))
	e.YankSet(1, 3, false)
	if string(e.Yank) != "bc" {
		t.Fatalf("yank = %q", e.Yank)
	}
	e.Cur = 0
	e.PasteAfter()
	if got := e.Buf.String(); got != "abcbcdef" {
		t.Fatalf("buf = %q", got)
	}
}

func TestPasteAfterLinewise(t *testing.T) {
	e := NewFromBytes([]byte("one\ntwo\n"))
	e.YankSet(0, 4, true)
	e.Cur = 0
	e.PasteAfter()
	if got := e.Buf.String(); got != "one\none\ntwo\n" {
		t.Fatalf("buf = %q", got)
	}
}

func TestBufDelRangeRecordsUndo(t *testing.T) {
	e := NewFromBytes([]byte("abcdef"))
	e.BufDelRange(1, 3)
	if got := e.Buf.String(); got != "adef" {
		t.Fatalf("buf = %q", got)
	}
	if !e.Dirty {
		t.Fatalf("Dirty = false after delete")
	}
	cur, err := e.Undo.Undo(e.Buf)
	if err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := e.Buf.String(); got != "abcdef" {
		t.Fatalf("buf after undo = %q", got)
	}
	if cur != 1 {
		t.Fatalf("cur after undo = %d, want 1", cur)
	}
}

func TestDeleteCharAtEndOfBufferNoop(t *testing.T) {
	e := NewFromBytes([]byte("a"))
	e.Cur = 1
	e.DeleteChar()
	if got := e.Buf.String(); got != "a" {
		t.Fatalf("buf = %q, want unchanged", got)
	}
}

func TestOpenBelowEntersInsertOnNewLine(t *testing.T) {
	e := NewFromBytes([]byte("abc\ndef\n"))
	e.Cur = 1
	e.OpenBelow()
	if e.Mode != ModeInsert {
		t.Fatalf("mode = %v", e.Mode)
	}
	if got := e.Buf.String(); got != "abc\n\ndef\n" {
		t.Fatalf("buf = %q", got)
	}
	if e.Cur != 4 {
		t.Fatalf("cur = %d, want 4", e.Cur)
	}
}

func TestOpenAboveEntersInsertOnNewLine(t *testing.T) {
	e := NewFromBytes([]byte("abc\ndef\n"))
	e.Cur = 5
	e.OpenAbove()
	if got := e.Buf.String(); got != "abc\n\ndef\n" {
		t.Fatalf("buf = %q", got)
	}
	if e.Cur != 4 {
		t.Fatalf("cur = %d, want 4", e.Cur)
	}
}

func TestBackspaceAtStartIsNoop(t *testing.T) {
	e := NewFromBytes([]byte("abc"))
	e.Cur = 0
	e.Backspace()
	if got := e.Buf.String(); got != "abc" {
		t.Fatalf("buf = %q", got)
	}
}

func TestInsertByteCoalescesUndoGroup(t *testing.T) {
	e := NewFromBytes(nil)
	e.EnterInsert()
	e.InsertByte('a')
	e.InsertByte('b')
	e.InsertByte('c')
	if got := e.Buf.String(); got != "abc" {
		t.Fatalf("buf = %q", got)
	}
	if _, err := e.Undo.Undo(e.Buf); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	if got := e.Buf.String(); got != "" {
		t.Fatalf("buf after single undo = %q, want empty (coalesced insert group)", got)
	}
}

func TestUseCountDefaultsToOne(t *testing.T) {
	e := NewFromBytes(nil)
	if n := e.UseCount(); n != 1 {
		t.Fatalf("UseCount() = %d, want 1", n)
	}
	e.Count = 5
	if n := e.UseCount(); n != 5 {
		t.Fatalf("UseCount() = %d, want 5", n)
	}
}

func TestNormResetClearsCountOpAndParser(t *testing.T) {
	e := NewFromBytes(nil)
	e.Count = 4
	e.Op = OpDelete
	e.Parser.Stage = StageAwaitG
	e.NormReset()
	if e.Count != 0 || e.Op != OpNone || e.Parser.Stage != StageIdle {
		t.Fatalf("NormReset left state: count=%d op=%v stage=%v", e.Count, e.Op, e.Parser.Stage)
	}
}
