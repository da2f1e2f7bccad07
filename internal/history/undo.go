// Package history implements the editor's undo log: a stack of
// insert/delete records, with contiguous same-group inserts merged into
// a single record, that can be replayed in reverse to undo edits.
package history

// Target is the buffer an UndoLog applies its inverse operations to.
// internal/buf.ByteBuffer satisfies this directly.
type Target interface {
	Len() int
	InsertAt(at int, p []byte) int
	DeleteRange(at, n int) int
}

type entryKind int

const (
	kindInsert entryKind = iota
	kindDelete
)

type entry struct {
	kind  entryKind
	at    int
	cur   int
	group int
	text  []byte
}

// UndoLog is a stack of edit records supporting coalesced-insert
// recording and single-level undo (there is no redo: wee's undo is a
// strict stack of inverse operations, not a command history).
type UndoLog struct {
	entries []entry
	insGrp  int
	muted   bool
}

// New returns an empty undo log.
func New() *UndoLog {
	return &UndoLog{}
}

// BeginInsertGroup starts a new insert-coalescing group. Call this each
// time the editor enters INSERT mode; consecutive contiguous inserts
// recorded within the same group merge into a single undo record.
func (l *UndoLog) BeginInsertGroup() {
	l.insGrp++
}

// Muted reports whether the log is currently suppressing pushes,
// i.e. an Undo is in progress and must not record its own inverse.
func (l *UndoLog) Muted() bool {
	return l.muted
}

// Len returns the number of records on the stack.
func (l *UndoLog) Len() int {
	return len(l.entries)
}

// Clear discards all recorded history.
func (l *UndoLog) Clear() {
	l.entries = nil
}

// PushInsert records that n bytes (text) were inserted at at, with the
// cursor at cur immediately before the insert. If merge is true and the
// top of the stack is an insert record from the same group ending
// exactly at at, the new bytes are appended to it instead of creating a
// new record.
func (l *UndoLog) PushInsert(at int, text []byte, cur int, merge bool) {
	if l.muted || len(text) == 0 {
		return
	}
	if merge && len(l.entries) > 0 {
		top := &l.entries[len(l.entries)-1]
		if top.kind == kindInsert && top.group == l.insGrp && top.at+len(top.text) == at {
			top.text = append(top.text, text...)
			return
		}
	}
	cp := make([]byte, len(text))
	copy(cp, text)
	l.entries = append(l.entries, entry{
		kind:  kindInsert,
		at:    at,
		cur:   cur,
		group: l.insGrp,
		text:  cp,
	})
}

// PushDelete records that n bytes (text) were deleted starting at at,
// with the cursor at cur immediately before the delete.
func (l *UndoLog) PushDelete(at int, text []byte, cur int) {
	if l.muted || len(text) == 0 {
		return
	}
	cp := make([]byte, len(text))
	copy(cp, text)
	l.entries = append(l.entries, entry{
		kind: kindDelete,
		at:   at,
		cur:  cur,
		text: cp,
	})
}

// Undo pops and applies the inverse of the most recent record against
// target, returning the cursor offset to restore. It returns
// ErrNothingToUndo if the stack is empty.
func (l *UndoLog) Undo(target Target) (int, error) {
	if len(l.entries) == 0 {
		return 0, ErrNothingToUndo
	}
	e := l.entries[len(l.entries)-1]
	l.entries = l.entries[:len(l.entries)-1]

	l.muted = true
	switch e.kind {
	case kindInsert:
		if e.at <= target.Len() {
			target.DeleteRange(e.at, len(e.text))
		}
	case kindDelete:
		if e.at <= target.Len() {
			target.InsertAt(e.at, e.text)
		}
	}
	l.muted = false

	return e.cur, nil
}
