package editor

// EnterInsert switches to INSERT mode and starts a new undo insert
// group so immediately-following inserted bytes coalesce into one undo
// record.
func (e *Editor) EnterInsert() {
	e.Mode = ModeInsert
	e.Undo.BeginInsertGroup()
}

// VisOn starts a visual selection anchored at the current cursor.
func (e *Editor) VisOn() {
	e.VMark = e.Cur
	e.Mode = ModeVisual
}

// VisOff exits visual mode back to NORMAL.
func (e *Editor) VisOff() {
	e.Mode = ModeNormal
}

// VisWant reports whether a visual selection is active, including while
// a ':' or '/' prompt was opened from VISUAL mode.
func (e *Editor) VisWant() bool {
	return e.Mode == ModeVisual || (e.Mode == ModeCmd && e.PrevMode == ModeVisual)
}

// VisRange computes the selected byte range as [a,b), with b extended
// one codepoint past the cursor to make the selection inclusive. It
// returns ok=false if no visual selection is active.
func (e *Editor) VisRange() (a, b int, ok bool) {
	if !e.VisWant() {
		return 0, 0, false
	}
	lo, hi := e.VMark, e.Cur
	if hi < lo {
		lo, hi = hi, lo
	}
	if hi < e.Buf.Len() {
		hi = e.utfNext(hi)
	}
	if lo > e.Buf.Len() {
		lo = e.Buf.Len()
	}
	if hi > e.Buf.Len() {
		hi = e.Buf.Len()
	}
	return lo, hi, true
}

// YankSet copies [a,b) into the yank register, optionally marking it as
// a linewise yank (affects PasteAfter's placement).
func (e *Editor) YankSet(a, b int, linewise bool) {
	if b < a {
		a, b = b, a
	}
	n := e.Buf.Len()
	if a > n {
		a = n
	}
	if b > n {
		b = n
	}
	data, _ := e.Buf.Slice(a, b)
	e.Yank = data
	e.YankLine = linewise
}

// BufDelRange deletes bytes in [a,b) from the buffer, recording an undo
// entry, and leaves the cursor at a.
func (e *Editor) BufDelRange(a, b int) {
	if b < a {
		a, b = b, a
	}
	n := e.Buf.Len()
	if a > n {
		a = n
	}
	if b > n {
		b = n
	}
	if b == a {
		return
	}
	cur := e.Cur
	removed, _ := e.Buf.Slice(a, b)
	e.Undo.PushDelete(a, removed, cur)
	e.Buf.DeleteRange(a, b-a)
	e.Lines.MarkDirty()
	e.Dirty = true
	e.Cur = a
	e.ClampCur()
}

// BufInsert inserts p at offset at, recording an undo entry.
func (e *Editor) BufInsert(at int, p []byte) {
	if len(p) == 0 {
		return
	}
	n := e.Buf.Len()
	if at > n {
		at = n
	}
	cur := e.Cur
	e.Undo.PushInsert(at, p, cur, false)
	e.Buf.InsertAt(at, p)
	e.Lines.MarkDirty()
	e.Dirty = true
}

// PasteAfter inserts the yank register after the cursor: on the line
// following the current one for a linewise yank, or at the next
// codepoint boundary otherwise.
func (e *Editor) PasteAfter() {
	if len(e.Yank) == 0 {
		return
	}
	var at int
	if e.YankLine {
		le := e.Lines.LineEnd(e.Cur)
		if le < e.Buf.Len() {
			if b, _ := e.Buf.ByteAt(le); b == '\n' {
				at = le + 1
			} else {
				at = le
			}
		} else {
			at = le
		}
	} else {
		if e.Cur < e.Buf.Len() {
			at = e.utfNext(e.Cur)
		} else {
			at = e.Cur
		}
	}

	cur := e.Cur
	e.Undo.PushInsert(at, e.Yank, cur, false)
	e.Buf.InsertAt(at, e.Yank)
	e.Lines.MarkDirty()
	e.Dirty = true
	e.Cur = at
	e.ClampCur()
}

// DeleteChar deletes the codepoint under the cursor (x / Delete).
func (e *Editor) DeleteChar() {
	if e.Cur >= e.Buf.Len() {
		return
	}
	next := e.utfNext(e.Cur)
	e.BufDelRange(e.Cur, next)
}

// OpenBelow inserts a newline after the current line and enters INSERT
// mode positioned on the new line.
func (e *Editor) OpenBelow() {
	le := e.Lines.LineEnd(e.Cur)
	var at int
	if le < e.Buf.Len() {
		if b, _ := e.Buf.ByteAt(le); b == '\n' {
			at = le + 1
		} else {
			at = le
		}
	} else {
		at = le
	}
	cur := e.Cur
	e.Undo.PushInsert(at, []byte{'\n'}, cur, false)
	e.Buf.InsertAt(at, []byte{'\n'})
	e.Lines.MarkDirty()
	e.Dirty = true
	e.Cur = at
	e.EnterInsert()
}

// OpenAbove inserts a newline before the current line and enters
// INSERT mode positioned on the new line.
func (e *Editor) OpenAbove() {
	ls := e.Lines.LineStart(e.Cur)
	cur := e.Cur
	e.Undo.PushInsert(ls, []byte{'\n'}, cur, false)
	e.Buf.InsertAt(ls, []byte{'\n'})
	e.Lines.MarkDirty()
	e.Dirty = true
	e.Cur = ls
	e.EnterInsert()
}

// Backspace deletes the codepoint preceding the cursor (INSERT mode).
func (e *Editor) Backspace() {
	if e.Cur == 0 {
		return
	}
	p := e.utfPrev(e.Cur)
	e.BufDelRange(p, e.Cur)
}

// InsertByte inserts a single byte at the cursor, coalescing with the
// current insert group's undo record (INSERT mode).
func (e *Editor) InsertByte(c byte) {
	cur := e.Cur
	e.Undo.PushInsert(e.Cur, []byte{c}, cur, true)
	e.Buf.InsertAt(e.Cur, []byte{c})
	e.Lines.MarkDirty()
	e.Cur++
	e.Dirty = true
}

// InsertBytes inserts p (a run of bytes making up one or more runes
// typed or pasted together) at the cursor, coalescing with the current
// insert group.
func (e *Editor) InsertBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	cur := e.Cur
	e.Undo.PushInsert(e.Cur, p, cur, true)
	e.Buf.InsertAt(e.Cur, p)
	e.Lines.MarkDirty()
	e.Cur += len(p)
	e.Dirty = true
}

// InsertNewline inserts a newline at the cursor (INSERT mode Enter key).
func (e *Editor) InsertNewline() {
	e.InsertByte('\n')
}

// NormReset clears pending count/operator state.
func (e *Editor) NormReset() {
	e.Count = 0
	e.Op = OpNone
	e.Parser = ParseState{}
}

// UseCount returns the active pending count, defaulting to 1.
func (e *Editor) UseCount() int {
	if e.Count == 0 {
		return 1
	}
	return e.Count
}

