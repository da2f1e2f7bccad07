package ex

import (
	"github.com/dshills/wee/internal/editor"
)

// subCmd implements ":s" and ":%s" over a byte range: cmd is the
// command text starting at the 's', e.g. "s/foo/bar/g". When hasRange
// is false the substitution runs over the line containing the cursor;
// otherwise it runs over [rs,re].
func subCmd(e *editor.Editor, cmd []byte, rs, re int, hasRange bool) {
	if len(cmd) == 0 || cmd[0] != 's' {
		e.SetStatus("unknown command: %s", string(cmd))
		return
	}
	cmd = cmd[1:]
	if len(cmd) == 0 {
		e.SetStatus("bad substitute")
		return
	}
	delim := cmd[0]
	cmd = cmd[1:]

	raw := make([]byte, 0, len(cmd))
	i := 0
	esc := false
	for i < len(cmd) {
		c := cmd[i]
		if !esc && c == delim {
			break
		}
		if !esc && c == '\\' && i+1 < len(cmd) {
			esc = true
			raw = append(raw, c)
			i++
			continue
		}
		esc = false
		raw = append(raw, c)
		i++
	}
	if i >= len(cmd) || cmd[i] != delim {
		e.SetStatus("bad substitute")
		return
	}

	pat, a0, a1 := parsePattern(raw)
	if len(pat) == 0 && !(a0 || a1) {
		e.SetStatus("empty pattern")
		return
	}
	i++

	rep := make([]byte, 0, len(cmd)-i)
	for ; i < len(cmd); i++ {
		c := cmd[i]
		if c == '\\' && i+1 < len(cmd) {
			i++
			rep = append(rep, cmd[i])
			continue
		}
		if c == delim {
			break
		}
		rep = append(rep, c)
	}
	if i < len(cmd) && cmd[i] == delim {
		i++
	}
	global := false
	for ; i < len(cmd); i++ {
		if cmd[i] == 'g' {
			global = true
		}
	}

	var rangeStart, rangeEnd int
	if !hasRange {
		rangeStart = e.Lines.LineStart(e.Cur)
		rangeEnd = e.Lines.LineEnd(e.Cur)
	} else {
		rangeStart, rangeEnd = rs, re
		n := e.Buf.Len()
		if rangeStart > n {
			rangeStart = n
		}
		if rangeEnd > n {
			rangeEnd = n
		}
		if rangeEnd < rangeStart {
			rangeStart, rangeEnd = rangeEnd, rangeStart
		}
	}

	firstHit := 0
	firstSet := false
	nsub := 0

	ls := e.Lines.LineStart(rangeStart)
	for ls <= rangeEnd {
		le := e.Lines.LineEnd(ls)
		if le > rangeEnd {
			le = rangeEnd
		}

		pos := ls
		for {
			var m int
			var ok bool
			if a0 || a1 {
				m, ok = findAnchNextRange(e, pat, a0, a1, pos, ls, le)
			} else {
				m, ok = findNext(e.Buf.Bytes()[:minInt(le, e.Buf.Len())], pat, pos)
			}
			if !ok || m+len(pat) > le {
				break
			}

			if !firstSet {
				firstHit = m
				firstSet = true
			}
			nsub++

			e.BufDelRange(m, m+len(pat))
			e.BufInsert(m, rep)
			next := m + len(rep)
			le = le + len(rep) - len(pat)
			rangeEnd = rangeEnd + len(rep) - len(pat)

			if !global {
				break
			}
			if len(pat) == 0 && (a0 || a1) {
				break
			}
			pos = next
			if pos > le {
				break
			}
		}

		le = e.Lines.LineEnd(ls)
		if nb, ok := e.Buf.ByteAt(le); ok && nb == '\n' {
			ls = le + 1
			continue
		}
		break
	}

	if !firstSet {
		e.SetStatus("no match")
		return
	}
	e.Cur = firstHit
	e.ClampCur()
	e.SetStatus("%d substitutions", nsub)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
