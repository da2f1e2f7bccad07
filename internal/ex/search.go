package ex

import (
	"bytes"

	"github.com/dshills/wee/internal/buf"
	"github.com/dshills/wee/internal/editor"
)

// findNext returns the offset of the first occurrence of pat in s at or
// after start.
func findNext(s, pat []byte, start int) (int, bool) {
	if len(pat) == 0 || start > len(s) || len(pat) > len(s) {
		return 0, false
	}
	idx := bytes.Index(s[start:], pat)
	if idx < 0 {
		return 0, false
	}
	return start + idx, true
}

// findPrev returns the offset of the last occurrence of pat in s
// strictly before "before".
func findPrev(s, pat []byte, before int) (int, bool) {
	if len(pat) == 0 {
		return 0, false
	}
	if before > len(s) {
		before = len(s)
	}
	if len(pat) > len(s) {
		return 0, false
	}
	found := false
	last := 0
	for i := 0; i+len(pat) <= before; i++ {
		if bytes.Equal(s[i:i+len(pat)], pat) {
			last = i
			found = true
		}
	}
	return last, found
}

func prevLineStart(buf []byte, ls int) int {
	if ls == 0 {
		return 0
	}
	i := ls - 1
	for i > 0 && buf[i-1] != '\n' {
		i--
	}
	return i
}

// anchMatch reports whether the candidate offset cand in line [ls,le)
// satisfies the requested anchors and, if so, returns the matched
// offset and true.
func anchMatch(buf []byte, pat []byte, a0, a1 bool, ls, le, cand int) (int, bool) {
	if len(pat) == 0 {
		switch {
		case a0 && a1:
			if ls == le {
				return ls, true
			}
		case a0:
			return ls, true
		case a1:
			return le, true
		}
		return 0, false
	}
	if cand+len(pat) > le {
		return 0, false
	}
	if a0 && cand != ls {
		return 0, false
	}
	if a1 && cand+len(pat) != le {
		return 0, false
	}
	if !bytes.Equal(buf[cand:cand+len(pat)], pat) {
		return 0, false
	}
	return cand, true
}

// findAnchNext searches forward from start for an anchored match.
func findAnchNext(e *editor.Editor, pat []byte, a0, a1 bool, start int) (int, bool) {
	n := e.Buf.Len()
	if start > n {
		return 0, false
	}
	ls := e.Lines.LineStart(start)
	if start != ls {
		le := e.Lines.LineEnd(start)
		if nb, ok := e.Buf.ByteAt(le); ok && nb == '\n' {
			ls = le + 1
		} else {
			return 0, false
		}
	}

	buf := e.Buf.Bytes()
	for {
		if ls > n {
			break
		}
		le := e.Lines.LineEnd(ls)
		cand := ls
		if !a0 && a1 {
			if le-ls < len(pat) {
				goto next
			}
			cand = le - len(pat)
		}
		if cand < start {
			goto next
		}
		if pos, ok := anchMatch(buf, pat, a0, a1, ls, le, cand); ok {
			return pos, true
		}

	next:
		if nb, ok := e.Buf.ByteAt(le); ok && nb == '\n' {
			ls = le + 1
			continue
		}
		break
	}
	return 0, false
}

// findAnchNextRange is findAnchNext bounded to [rs,re].
func findAnchNextRange(e *editor.Editor, pat []byte, a0, a1 bool, start, rs, re int) (int, bool) {
	n := e.Buf.Len()
	if rs > n {
		rs = n
	}
	if re > n {
		re = n
	}
	if re < rs {
		rs, re = re, rs
	}
	if start < rs {
		start = rs
	}
	if start > re {
		return 0, false
	}

	ls := e.Lines.LineStart(start)
	if start != ls {
		le := e.Lines.LineEnd(start)
		if nb, ok := e.Buf.ByteAt(le); ok && nb == '\n' {
			ls = le + 1
		} else {
			return 0, false
		}
	}

	buf := e.Buf.Bytes()
	for {
		if ls > re {
			break
		}
		le := e.Lines.LineEnd(ls)
		cand := ls
		if !a0 && a1 {
			if le-ls < len(pat) {
				goto next
			}
			cand = le - len(pat)
		}
		if cand < start || cand < rs || cand+len(pat) > re {
			goto next
		}
		if pos, ok := anchMatch(buf, pat, a0, a1, ls, le, cand); ok {
			return pos, true
		}

	next:
		if nb, ok := e.Buf.ByteAt(le); ok && nb == '\n' {
			ls = le + 1
			continue
		}
		break
	}
	return 0, false
}

// findAnchPrev searches backward from (and including) "before" for an
// anchored match.
func findAnchPrev(e *editor.Editor, pat []byte, a0, a1 bool, before int) (int, bool) {
	n := e.Buf.Len()
	if before > n {
		before = n
	}
	ls := e.Lines.LineStart(before)
	buf := e.Buf.Bytes()

	for {
		le := e.Lines.LineEnd(ls)
		cand := ls
		if !a0 && a1 {
			if le-ls < len(pat) {
				goto prev
			}
			cand = le - len(pat)
		}
		if len(pat) == 0 {
			switch {
			case a0 && a1:
				if ls == le && ls <= before {
					return ls, true
				}
			case a0:
				if ls <= before {
					return ls, true
				}
			case a1:
				if le <= before {
					return le, true
				}
			}
			goto prev
		}
		if cand+len(pat) > le || cand+len(pat) > before {
			goto prev
		}
		if a0 && cand != ls {
			goto prev
		}
		if a1 && cand+len(pat) != le {
			goto prev
		}
		if bytes.Equal(buf[cand:cand+len(pat)], pat) {
			return cand, true
		}

	prev:
		if ls == 0 {
			break
		}
		ls = prevLineStart(buf, ls)
	}
	return 0, false
}

// SearchDo implements editor.Executor.SearchDo: repeats the last search
// pattern (refreshed from the '/' prompt buffer if one was just typed)
// in the given direction.
func (eng *Engine) SearchDo(e *editor.Editor, dir int) {
	if e.CmdPre == '/' && len(e.Cmd) > 0 {
		e.Search = append(e.Search[:0], e.Cmd...)
	}
	if len(e.Search) == 0 {
		e.SetStatus("no previous search")
		return
	}

	pat, a0, a1 := parsePattern(e.Search)

	var pos int
	var ok bool
	cursor := buf.NewUtfCursor(e.Buf)
	if dir >= 0 {
		start := e.Cur
		if start < e.Buf.Len() {
			start = cursor.Next(start)
		}
		if a0 || a1 {
			pos, ok = findAnchNext(e, pat, a0, a1, start)
		} else {
			pos, ok = findNext(e.Buf.Bytes(), pat, start)
		}
	} else {
		start := e.Cur
		if start > 0 {
			start = cursor.Prev(start)
		}
		if a0 || a1 {
			pos, ok = findAnchPrev(e, pat, a0, a1, start)
		} else {
			pos, ok = findPrev(e.Buf.Bytes(), pat, start)
		}
	}
	if !ok {
		e.SetStatus("pattern not found")
		return
	}

	e.Cur = pos
	e.ClampCur()
	e.SetStatus("match")
}
