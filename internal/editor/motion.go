package editor

import "github.com/dshills/wee/internal/buf"

func (e *Editor) utfNext(i int) int {
	return buf.NewUtfCursor(e.Buf).Next(i)
}

func (e *Editor) utfPrev(i int) int {
	return buf.NewUtfCursor(e.Buf).Prev(i)
}

// isWordByte reports whether c is a word character for motion grouping.
func isWordByte(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isSpaceByte(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// cclass classifies a byte into word-motion groups: 0 = whitespace/NUL,
// 1 = word, 2 = other punctuation.
func cclass(c byte) int {
	if c == 0 || c == '\n' || isSpaceByte(c) {
		return 0
	}
	if isWordByte(c) {
		return 1
	}
	return 2
}

// MotionH moves left by one codepoint.
func (e *Editor) MotionH(p int) int { return e.utfPrev(p) }

// MotionL moves right by one codepoint.
func (e *Editor) MotionL(p int) int { return e.utfNext(p) }

// MotionBol moves to the beginning of the line containing p.
func (e *Editor) MotionBol(p int) int { return e.Lines.LineStart(p) }

// MotionEol moves to the end of the line containing p.
func (e *Editor) MotionEol(p int) int { return e.Lines.LineEnd(p) }

// MotionJ moves down one screen line, preserving display column.
func (e *Editor) MotionJ(p int) int {
	row := e.Lines.RowOfOffset(p)
	col := e.Lines.ColOfOffset(p)
	ls := e.Lines.RowToOffset(row + 1)
	le := e.Lines.LineEnd(ls)
	return e.Lines.OffsetAtCol(ls, le, col)
}

// MotionK moves up one screen line, preserving display column.
func (e *Editor) MotionK(p int) int {
	row := e.Lines.RowOfOffset(p)
	col := e.Lines.ColOfOffset(p)
	ls := e.Lines.RowToOffset(row - 1)
	le := e.Lines.LineEnd(ls)
	return e.Lines.OffsetAtCol(ls, le, col)
}

// MotionGG moves to the start of the buffer.
func (e *Editor) MotionGG(p int) int { return 0 }

// MotionCapG moves to the start of the last line.
func (e *Editor) MotionCapG(p int) int {
	return e.Lines.RowToOffset(e.Lines.LineCount() - 1)
}

// MotionT searches forward on the line for the n-th occurrence of ch and
// stops just before it.
func (e *Editor) MotionT(p int, ch byte, n int) int {
	if p >= e.Buf.Len() {
		return p
	}
	scan := p
	for k := 0; k < n; k++ {
		ls := e.Lines.LineStart(scan)
		le := e.Lines.LineEnd(scan)
		start := e.utfNext(scan)
		if start > le {
			return p
		}
		found := le
		for i := start; i < le; i++ {
			if b, _ := e.Buf.ByteAt(i); b == ch {
				found = i
				break
			}
		}
		if found == le {
			return p
		}
		scan = found
		_ = ls
	}
	ls := e.Lines.LineStart(scan)
	if scan <= ls {
		return ls
	}
	return e.utfPrev(scan)
}

// MotionF searches forward on the line for the n-th occurrence of ch and
// lands on it.
func (e *Editor) MotionF(p int, ch byte, n int) int {
	if p >= e.Buf.Len() {
		return p
	}
	scan := p
	for k := 0; k < n; k++ {
		le := e.Lines.LineEnd(scan)
		start := e.utfNext(scan)
		if start > le {
			return p
		}
		found := le
		for i := start; i < le; i++ {
			if b, _ := e.Buf.ByteAt(i); b == ch {
				found = i
				break
			}
		}
		if found == le {
			return p
		}
		scan = found
	}
	return scan
}

// MotionW implements vi-like forward word motion.
func (e *Editor) MotionW(p int) int {
	n := e.Buf.Len()
	if p >= n {
		return p
	}
	c, _ := e.Buf.ByteAt(p)
	t := cclass(c)

	if t == 0 {
		for p < n {
			c, _ = e.Buf.ByteAt(p)
			if cclass(c) != 0 {
				break
			}
			p = e.utfNext(p)
		}
		return p
	}

	for p < n {
		c, _ = e.Buf.ByteAt(p)
		if c == '\n' || cclass(c) != t {
			break
		}
		p = e.utfNext(p)
	}
	for p < n {
		c, _ = e.Buf.ByteAt(p)
		if cclass(c) != 0 {
			break
		}
		p = e.utfNext(p)
	}
	return p
}

// MotionB implements vi-like backward word motion.
func (e *Editor) MotionB(p int) int {
	if p == 0 {
		return 0
	}
	p = e.utfPrev(p)
	for p > 0 {
		c, _ := e.Buf.ByteAt(p)
		if c == '\n' || isWordByte(c) {
			break
		}
		p = e.utfPrev(p)
	}
	for p > 0 {
		c, _ := e.Buf.ByteAt(p)
		if c == '\n' || !isWordByte(c) {
			break
		}
		pp := e.utfPrev(p)
		cp, _ := e.Buf.ByteAt(pp)
		if !isWordByte(cp) {
			break
		}
		p = pp
	}
	return p
}

// MotionE implements vi-like end-of-word motion.
func (e *Editor) MotionE(p int) int {
	n := e.Buf.Len()
	if p >= n {
		return p
	}
	p = e.MotionW(p)
	if p >= n {
		return p
	}
	for p < n {
		c, _ := e.Buf.ByteAt(p)
		if c == '\n' || !isWordByte(c) {
			break
		}
		p = e.utfNext(p)
	}
	return e.utfPrev(p)
}

// pairFor maps a delimiter byte to its opening/closing pair.
func pairFor(c byte) (open, close byte, ok bool) {
	switch c {
	case '(', ')':
		return '(', ')', true
	case '[', ']':
		return '[', ']', true
	case '{', '}':
		return '{', '}', true
	case '<', '>':
		return '<', '>', true
	case '\'':
		return '\'', '\'', true
	case '"':
		return '"', '"', true
	}
	return 0, 0, false
}

// findInnerPair locates the inner [a,b) range for a surrounding
// delimiter pair containing the cursor.
func (e *Editor) findInnerPair(open, close byte) (a, b int, ok bool) {
	if e.Buf.Len() == 0 {
		return 0, 0, false
	}

	if open == close {
		ls := e.Lines.LineStart(e.Cur)
		le := e.Lines.LineEnd(e.Cur)
		if e.Cur > le {
			return 0, 0, false
		}
		oi, ci := -1, -1
		for i := e.Cur; i > ls; {
			i = e.utfPrev(i)
			if b, _ := e.Buf.ByteAt(i); b == open {
				oi = i
				break
			}
		}
		for i := e.Cur; i < le; {
			if b, _ := e.Buf.ByteAt(i); b == close {
				ci = i
				break
			}
			i = e.utfNext(i)
		}
		if oi < 0 || ci < 0 || oi >= ci {
			return 0, 0, false
		}
		return oi + 1, ci, true
	}

	depth := 0
	oi := -1
	for i := e.Cur; i > 0; {
		i = e.utfPrev(i)
		c, _ := e.Buf.ByteAt(i)
		if c == close {
			depth++
			continue
		}
		if c == open {
			if depth == 0 {
				oi = i
				break
			}
			depth--
		}
	}
	if oi < 0 {
		return 0, 0, false
	}

	depth = 0
	ci := -1
	for i := oi + 1; i < e.Buf.Len(); {
		c, _ := e.Buf.ByteAt(i)
		if c == open {
			depth++
			i = e.utfNext(i)
			continue
		}
		if c == close {
			if depth == 0 {
				ci = i
				break
			}
			depth--
			i = e.utfNext(i)
			continue
		}
		i = e.utfNext(i)
	}
	if ci < 0 {
		return 0, 0, false
	}
	return oi + 1, ci, true
}

// ApplyTextObjInner applies the pending operator to the inner text
// object named by ch (one of the pairing delimiters).
func (e *Editor) ApplyTextObjInner(ch byte) {
	open, close, ok := pairFor(ch)
	if !ok {
		e.SetStatus("unknown textobj %c", ch)
		e.NormReset()
		return
	}
	a, b, ok := e.findInnerPair(open, close)
	if !ok {
		e.SetStatus("no match for %c", ch)
		e.NormReset()
		return
	}

	switch e.Op {
	case OpDelete, OpChange:
		e.YankSet(a, b, false)
		e.BufDelRange(a, b)
		if e.Op == OpChange {
			e.EnterInsert()
		}
	case OpYank:
		e.YankSet(a, b, false)
		e.SetStatus("yanked %d bytes", len(e.Yank))
	}
	e.NormReset()
}
