package history

import (
	"testing"

	"github.com/dshills/wee/internal/buf"
)

func TestUndoLogPushInsertMerge(t *testing.T) {
	l := New()
	l.BeginInsertGroup()
	l.PushInsert(0, []byte("a"), 0, true)
	l.PushInsert(1, []byte("b"), 1, true)
	l.PushInsert(2, []byte("c"), 2, true)
	if got := l.Len(); got != 1 {
		t.Fatalf("Len() = %d, want 1 (inserts should merge)", got)
	}
}

func TestUndoLogPushInsertNoMergeAcrossGroups(t *testing.T) {
	l := New()
	l.BeginInsertGroup()
	l.PushInsert(0, []byte("a"), 0, true)
	l.BeginInsertGroup()
	l.PushInsert(1, []byte("b"), 1, true)
	if got := l.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2 (different insert groups must not merge)", got)
	}
}

func TestUndoLogPushInsertNoMergeNonContiguous(t *testing.T) {
	l := New()
	l.BeginInsertGroup()
	l.PushInsert(0, []byte("a"), 0, true)
	l.PushInsert(5, []byte("b"), 5, true)
	if got := l.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2 (non-contiguous inserts must not merge)", got)
	}
}

func TestUndoLogUndoInsert(t *testing.T) {
	b := buf.NewByteBufferFromString("hello world")
	l := New()
	l.PushDelete(0, nil, 0) // no-op: empty text is never pushed

	// simulate an insert of " there" at offset 5 with prior cursor at 5
	l.PushInsert(5, []byte(" there"), 5, false)

	cur, err := l.Undo(b)
	if err != nil {
		t.Fatalf("Undo returned error: %v", err)
	}
	if got := b.String(); got != "hello world" {
		t.Errorf("after undo = %q, want %q", got, "hello world")
	}
	if cur != 5 {
		t.Errorf("Undo cursor = %d, want 5", cur)
	}
}

func TestUndoLogUndoDelete(t *testing.T) {
	b := buf.NewByteBufferFromString("hello")
	l := New()
	l.PushDelete(2, []byte("ll"), 2)
	b.DeleteRange(2, 2)
	if got := b.String(); got != "heo" {
		t.Fatalf("setup: = %q, want %q", got, "heo")
	}

	cur, err := l.Undo(b)
	if err != nil {
		t.Fatalf("Undo returned error: %v", err)
	}
	if got := b.String(); got != "hello" {
		t.Errorf("after undo = %q, want %q", got, "hello")
	}
	if cur != 2 {
		t.Errorf("Undo cursor = %d, want 2", cur)
	}
}

func TestUndoLogUndoEmptyStack(t *testing.T) {
	b := buf.NewByteBufferFromString("x")
	l := New()
	if _, err := l.Undo(b); err != ErrNothingToUndo {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoLogMutedDuringUndo(t *testing.T) {
	l := New()
	l.PushInsert(0, []byte("a"), 0, false)
	if l.Muted() {
		t.Fatalf("Muted() = true before Undo")
	}
}
