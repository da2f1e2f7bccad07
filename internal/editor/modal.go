package editor

// ParseStage names a pending sub-state of the NORMAL/VISUAL key parser:
// a state reached after a prefix key that needs one more key to
// complete (g, f, t, or i after a pending operator). This is a pushdown
// parser state rather than a blocking nested read, since the event loop
// that drives the modal engine is not reentrant.
type ParseStage int

const (
	StageIdle ParseStage = iota
	StageAwaitG
	StageAwaitFindChar
	StageAwaitTextObj
)

// ParseState is the NORMAL/VISUAL parser's pending sub-state.
type ParseState struct {
	Stage      ParseStage
	FindMotion byte // 't' or 'f', valid when Stage == StageAwaitFindChar
}

// Executor runs ex commands and searches against the editor. It is
// implemented by the ex package; the interface lives here to avoid an
// import cycle (editor cannot import ex, since ex needs the Editor
// type).
type Executor interface {
	// Exec runs the current command-line buffer (the ':' or '/' prompt
	// contents) and updates the editor's mode/status accordingly.
	Exec(e *Editor)
	// SearchDo repeats the last search in direction dir (+1 forward,
	// -1 backward).
	SearchDo(e *Editor, dir int)
}

func keyDisplayByte(k Key) byte {
	if k.IsRune() {
		return byte(k.Rune)
	}
	return 0
}

// HandleKey dispatches k to the handler for the editor's current mode.
// A SpecialNull key (the resize-interrupt sentinel) is a pure no-op.
func (e *Editor) HandleKey(k Key) {
	if k.Special == SpecialNull {
		return
	}
	switch e.Mode {
	case ModeNormal:
		e.NormalKey(k)
	case ModeInsert:
		e.InsertKey(k)
	case ModeVisual:
		e.VisualKey(k)
	case ModeCmd:
		e.CmdKey(k)
	}
}

// resolvePendingStage resolves a pending two-key sequence (g, f, t, or
// an operator-pending text object) and reports whether k was consumed
// by it.
func (e *Editor) resolvePendingStage(k Key) bool {
	switch e.Parser.Stage {
	case StageAwaitG:
		e.Parser.Stage = StageIdle
		if k.IsRune() && k.Rune == 'g' {
			end := e.MotionGG(e.Cur)
			e.applyMotionResolved('g', end)
		} else {
			e.SetStatus("unknown g%c", keyDisplayByte(k))
			e.NormReset()
		}
		return true
	case StageAwaitFindChar:
		motionKey := e.Parser.FindMotion
		e.Parser.Stage = StageIdle
		if k.Special == SpecialEsc || !k.IsRune() {
			e.SetStatus("find cancelled")
			e.NormReset()
			return true
		}
		e.applyFindMotion(motionKey, byte(k.Rune))
		return true
	case StageAwaitTextObj:
		e.Parser.Stage = StageIdle
		if k.IsRune() {
			e.ApplyTextObjInner(byte(k.Rune))
		} else {
			e.NormReset()
		}
		return true
	}
	return false
}

// applyMotionResolved finishes a motion: if no operator is pending the
// cursor simply moves; otherwise the pending operator is applied to
// [start,end), with 'e' and 'f' extended one codepoint to make their
// landing position inclusive.
func (e *Editor) applyMotionResolved(key byte, end int) {
	if e.Op == OpNone {
		e.Cur = end
		e.ClampCur()
		e.NormReset()
		return
	}

	start := e.Cur
	if key == 'e' || key == 'f' {
		if end < e.Buf.Len() {
			end = e.utfNext(end)
		}
	}

	switch e.Op {
	case OpDelete, OpChange:
		e.YankSet(start, end, false)
		e.BufDelRange(start, end)
		if e.Op == OpChange {
			e.EnterInsert()
		}
	case OpYank:
		e.YankSet(start, end, false)
		e.SetStatus("yanked %d bytes", len(e.Yank))
	}
	e.NormReset()
}

// applySimpleMotion resolves one of the single-key motions, honoring
// the pending count, then feeds the result through applyMotionResolved.
func (e *Editor) applySimpleMotion(key byte) {
	n := e.UseCount()
	end := e.Cur
	switch key {
	case 'h':
		for ; n > 0; n-- {
			end = e.MotionH(end)
		}
	case 'l':
		for ; n > 0; n-- {
			end = e.MotionL(end)
		}
	case 'j':
		for ; n > 0; n-- {
			end = e.MotionJ(end)
		}
	case 'k':
		for ; n > 0; n-- {
			end = e.MotionK(end)
		}
	case ')':
		for ; n > 0; n-- {
			for t := 0; t < e.TextRows; t++ {
				end = e.MotionJ(end)
			}
		}
	case '(':
		for ; n > 0; n-- {
			for t := 0; t < e.TextRows; t++ {
				end = e.MotionK(end)
			}
		}
	case '0':
		end = e.MotionBol(end)
	case '$':
		end = e.MotionEol(end)
	case 'w':
		for ; n > 0; n-- {
			end = e.MotionW(end)
		}
	case 'b':
		for ; n > 0; n-- {
			end = e.MotionB(end)
		}
	case 'e':
		for ; n > 0; n-- {
			end = e.MotionE(end)
		}
	default:
		e.SetStatus("unknown motion %c", key)
		e.NormReset()
		return
	}
	e.applyMotionResolved(key, end)
}

func (e *Editor) applyFindMotion(motionKey, ch byte) {
	n := e.UseCount()
	var end int
	if motionKey == 't' {
		end = e.MotionT(e.Cur, ch, n)
	} else {
		end = e.MotionF(e.Cur, ch, n)
	}
	e.applyMotionResolved(motionKey, end)
}

func (e *Editor) applyCapG() {
	var end int
	if e.Count != 0 {
		end = e.Lines.RowToOffset(e.Count - 1)
	} else {
		end = e.MotionCapG(e.Cur)
	}
	e.applyMotionResolved('G', end)
}

// startCmdLine switches into CMD mode with the given prompt prefix.
func (e *Editor) startCmdLine(prefix byte, statusWhilePrompting string) {
	e.PrevMode = e.Mode
	e.Mode = ModeCmd
	e.CmdPre = prefix
	e.Cmd = e.Cmd[:0]
	e.SetStatus("%s", statusWhilePrompting)
	e.NormReset()
}

// NormalKey parses one key in NORMAL mode: counts, operators, motions,
// and mode-switching commands.
func (e *Editor) NormalKey(k Key) {
	if e.resolvePendingStage(k) {
		return
	}

	if k.IsRune() && k.Rune >= '0' && k.Rune <= '9' {
		if e.Count == 0 && k.Rune == '0' {
			e.applySimpleMotion('0')
			return
		}
		e.Count = e.Count*10 + int(k.Rune-'0')
		return
	}

	if !k.IsRune() {
		switch k.Special {
		case SpecialEsc:
			e.NormReset()
		case SpecialLeft:
			e.applySimpleMotion('h')
		case SpecialRight:
			e.applySimpleMotion('l')
		case SpecialUp:
			e.applySimpleMotion('k')
		case SpecialDown:
			e.applySimpleMotion('j')
		case SpecialCtrlQ:
			e.Quit = true
		default:
			if e.Op != OpNone {
				e.SetStatus("op %c cancelled", byte(e.Op))
				e.NormReset()
			}
		}
		return
	}

	key := byte(k.Rune)
	switch key {
	case 'i':
		if e.Op != OpNone {
			e.Parser.Stage = StageAwaitTextObj
			return
		}
		e.EnterInsert()
		e.SetStatus("INSERT")
		e.NormReset()
	case 'a':
		e.Cur = e.MotionL(e.Cur)
		e.EnterInsert()
		e.SetStatus("INSERT")
		e.NormReset()
	case 'A':
		e.Cur = e.MotionEol(e.Cur)
		e.EnterInsert()
		e.SetStatus("INSERT")
		e.NormReset()
	case 'o':
		e.OpenBelow()
		e.SetStatus("INSERT")
		e.NormReset()
	case 'O':
		e.OpenAbove()
		e.SetStatus("INSERT")
		e.NormReset()
	case 'C':
		e.Op = OpChange
		e.Count = 0
		e.applySimpleMotion('$')
		e.SetStatus("INSERT")
	case 'x':
		n := e.UseCount()
		for ; n > 0; n-- {
			e.DeleteChar()
		}
		e.NormReset()
	case 'u':
		cur, err := e.Undo.Undo(e.Buf)
		if err != nil {
			e.SetStatus("nothing to undo")
			e.NormReset()
			return
		}
		e.Lines.MarkDirty()
		e.Dirty = true
		e.Cur = cur
		e.ClampCur()
		e.SetStatus("undone")
		e.NormReset()
	case 'p':
		e.PasteAfter()
		e.NormReset()
	case 'd':
		if e.Op == OpDelete {
			a := e.Lines.LineStart(e.Cur)
			b := e.Lines.LineEnd(e.Cur)
			if bt, ok := e.Buf.ByteAt(b); ok && bt == '\n' {
				b++
			}
			e.YankSet(a, b, true)
			e.BufDelRange(a, b)
			e.NormReset()
			return
		}
		e.Op = OpDelete
	case 'y':
		if e.Op == OpYank {
			a := e.Lines.LineStart(e.Cur)
			b := e.Lines.LineEnd(e.Cur)
			if bt, ok := e.Buf.ByteAt(b); ok && bt == '\n' {
				b++
			}
			e.YankSet(a, b, true)
			e.SetStatus("yanked line")
			e.NormReset()
			return
		}
		e.Op = OpYank
	case 'c':
		e.Op = OpChange
	case ':':
		e.startCmdLine(':', "CMD")
	case 'v':
		e.VisOn()
		e.SetStatus("VISUAL")
		e.NormReset()
	case '/':
		e.startCmdLine('/', "/")
	case 'n':
		if e.Executor != nil {
			e.Executor.SearchDo(e, +1)
		}
		e.NormReset()
	case 'N':
		if e.Executor != nil {
			e.Executor.SearchDo(e, -1)
		}
		e.NormReset()
	case 'h', 'j', 'k', 'l', '(', ')', 'w', 'b', 'e', '$':
		e.applySimpleMotion(key)
	case 't':
		e.Parser.Stage = StageAwaitFindChar
		e.Parser.FindMotion = 't'
	case 'f':
		e.Parser.Stage = StageAwaitFindChar
		e.Parser.FindMotion = 'f'
	case 'g':
		e.Parser.Stage = StageAwaitG
	case 'G':
		e.applyCapG()
	default:
		if e.Op != OpNone {
			e.SetStatus("op %c cancelled", byte(e.Op))
			e.NormReset()
		}
	}
}

// VisualKey parses one key in VISUAL mode.
func (e *Editor) VisualKey(k Key) {
	if e.resolvePendingStage(k) {
		return
	}

	if k.IsRune() && k.Rune >= '0' && k.Rune <= '9' {
		if e.Count == 0 && k.Rune == '0' {
			e.applySimpleMotion('0')
			return
		}
		e.Count = e.Count*10 + int(k.Rune-'0')
		return
	}

	if !k.IsRune() {
		switch k.Special {
		case SpecialEsc:
			e.VisOff()
			e.SetStatus("NORMAL")
			e.NormReset()
		case SpecialLeft:
			e.applySimpleMotion('h')
		case SpecialRight:
			e.applySimpleMotion('l')
		case SpecialUp:
			e.applySimpleMotion('k')
		case SpecialDown:
			e.applySimpleMotion('j')
		}
		return
	}

	key := byte(k.Rune)
	switch key {
	case 'v':
		e.VisOff()
		e.SetStatus("NORMAL")
		e.NormReset()
	case 'd':
		if a, b, ok := e.VisRange(); ok {
			e.YankSet(a, b, false)
			e.BufDelRange(a, b)
		}
		e.VisOff()
		e.SetStatus("NORMAL")
		e.NormReset()
	case 'y':
		if a, b, ok := e.VisRange(); ok {
			e.YankSet(a, b, false)
			e.SetStatus("yanked %d bytes", len(e.Yank))
		}
		e.VisOff()
		e.NormReset()
	case 'c':
		if a, b, ok := e.VisRange(); ok {
			e.YankSet(a, b, false)
			e.BufDelRange(a, b)
			e.EnterInsert()
			e.SetStatus("INSERT")
		}
		e.VisOff()
		e.NormReset()
	case ':':
		e.startCmdLine(':', "CMD")
	case '/':
		e.startCmdLine('/', "/")
	case 'n':
		if e.Executor != nil {
			e.Executor.SearchDo(e, +1)
		}
		e.NormReset()
	case 'N':
		if e.Executor != nil {
			e.Executor.SearchDo(e, -1)
		}
		e.NormReset()
	case 'h', 'j', 'k', 'l', 'w', 'b', 'e', '$':
		e.applySimpleMotion(key)
	case 't':
		e.Parser.Stage = StageAwaitFindChar
		e.Parser.FindMotion = 't'
	case 'f':
		e.Parser.Stage = StageAwaitFindChar
		e.Parser.FindMotion = 'f'
	case 'g':
		e.Parser.Stage = StageAwaitG
	case 'G':
		e.applyCapG()
	}
}

// InsertKey parses one key in INSERT mode.
func (e *Editor) InsertKey(k Key) {
	clamp := true
	switch {
	case k.Special == SpecialEsc:
		e.Mode = ModeNormal
		if e.Cur > 0 {
			if b, ok := e.Buf.ByteAt(e.Cur - 1); ok && b != '\n' {
				e.Cur = e.utfPrev(e.Cur)
			}
		}
		e.SetStatus("NORMAL")
	case k.Special == SpecialEnter:
		e.InsertNewline()
	case k.Special == SpecialBackspace:
		e.Backspace()
	case k.Special == SpecialDelete:
		e.DeleteChar()
	case k.Special == SpecialLeft:
		e.Cur = e.MotionH(e.Cur)
	case k.Special == SpecialRight:
		e.Cur = e.MotionL(e.Cur)
	case k.Special == SpecialUp:
		e.Cur = e.MotionK(e.Cur)
	case k.Special == SpecialDown:
		e.Cur = e.MotionJ(e.Cur)
	case k.IsRune() && k.Rune == '\t':
		e.InsertByte('\t')
		clamp = false
	case k.IsRune():
		e.InsertBytes(k.Bytes)
		clamp = false
	}
	if clamp {
		e.ClampCur()
	}
}

// CmdKey edits the command-line buffer and runs it on Enter.
func (e *Editor) CmdKey(k Key) {
	switch {
	case k.Special == SpecialEsc:
		e.Mode = e.PrevMode
		if e.Mode == ModeVisual {
			e.SetStatus("VISUAL")
		} else {
			e.SetStatus("NORMAL")
		}
	case k.Special == SpecialEnter:
		if e.Executor != nil {
			e.Executor.Exec(e)
		}
	case k.Special == SpecialBackspace:
		if len(e.Cmd) > 0 {
			e.Cmd = e.Cmd[:len(e.Cmd)-1]
		}
	case k.IsRune():
		e.Cmd = append(e.Cmd, k.Bytes...)
	}
}
