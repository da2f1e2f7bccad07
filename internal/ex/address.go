package ex

import (
	"github.com/dshills/wee/internal/editor"
)

func skipSpaces(p []byte, i int) int {
	for i < len(p) && (p[i] == ' ' || p[i] == '\t') {
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// addrFindLine implements the "/literal/" address form: search forward
// for lit starting at line startRow (1-based), wrapping to the top of
// the buffer once if nothing is found before the end.
func addrFindLine(e *editor.Editor, lit []byte, startRow int) (int, bool) {
	if len(lit) == 0 {
		return 0, false
	}
	if startRow < 1 {
		startRow = 1
	}
	lineCount := e.Lines.LineCount()
	if startRow > lineCount {
		startRow = lineCount
	}

	start := e.Lines.RowToOffset(startRow - 1)
	if pos, ok := findNext(e.Buf.Bytes(), lit, start); ok {
		return e.Lines.RowOfOffset(pos) + 1, true
	}
	if start > 0 {
		if pos, ok := findNext(e.Buf.Bytes(), lit, 0); ok {
			return e.Lines.RowOfOffset(pos) + 1, true
		}
	}
	return 0, false
}

// parseAddr parses a single ex address (., $, a line number, or
// /literal/) optionally followed by +n/-n adjustments, starting at p[i].
// It returns the resolved 1-based row, the index just past what it
// consumed, and whether parsing succeeded.
func parseAddr(e *editor.Editor, p []byte, i int) (row, next int, ok bool) {
	i = skipSpaces(p, i)
	base := -1
	lineCount := e.Lines.LineCount()

	switch {
	case i < len(p) && p[i] == '.':
		base = e.Lines.RowOfOffset(e.Cur) + 1
		i++
	case i < len(p) && p[i] == '$':
		base = lineCount
		i++
	case i < len(p) && isDigit(p[i]):
		v := 0
		for i < len(p) && isDigit(p[i]) {
			v = v*10 + int(p[i]-'0')
			i++
			if v > 1000000 {
				break
			}
		}
		base = v
	case i < len(p) && p[i] == '/':
		i++
		lit := make([]byte, 0, 8)
		for i < len(p) {
			c := p[i]
			if c == '\\' && i+1 < len(p) {
				i++
				lit = append(lit, p[i])
				i++
				continue
			}
			if c == '/' {
				break
			}
			lit = append(lit, c)
			i++
		}
		if i >= len(p) || p[i] != '/' {
			return 0, 0, false
		}
		found, fok := addrFindLine(e, lit, e.Lines.RowOfOffset(e.Cur)+1)
		if !fok {
			return 0, 0, false
		}
		base = found
		i++
	}

	if base < 0 {
		return 0, 0, false
	}

	for {
		i = skipSpaces(p, i)
		sign := 0
		if i < len(p) && p[i] == '+' {
			sign = 1
			i++
		} else if i < len(p) && p[i] == '-' {
			sign = -1
			i++
		} else {
			break
		}
		i = skipSpaces(p, i)
		n := 0
		if i >= len(p) || !isDigit(p[i]) {
			n = 1
		}
		for i < len(p) && isDigit(p[i]) {
			n = n*10 + int(p[i]-'0')
			i++
			if n > 1000000 {
				break
			}
		}
		base += sign * n
	}

	if base < 1 {
		base = 1
	}
	if base > lineCount {
		base = lineCount
	}
	return base, i, true
}

// parseSubEx parses an optional address range prefix ("%", "N,M", or a
// single address) in front of an "s" substitute command. kind is 0 if
// cmd doesn't name an "s" command at all, 1 for an unranged "s", and 2
// for a ranged one (r0, r1 set to the 1-based row bounds).
func parseSubEx(e *editor.Editor, cmd []byte) (sub []byte, r0, r1, kind int) {
	i := skipSpaces(cmd, 0)
	var a0, a1 int
	has0, has1 := false, false

	if i < len(cmd) && cmd[i] == '%' {
		a0 = 1
		a1 = e.Lines.LineCount()
		has0, has1 = true, true
		i++
	} else {
		var ok bool
		a0, i, ok = parseAddr(e, cmd, i)
		has0 = ok
		i = skipSpaces(cmd, i)
		if has0 && i < len(cmd) && cmd[i] == ',' {
			i++
			a1, i, ok = parseAddr(e, cmd, i)
			if !ok {
				return nil, 0, 0, 0
			}
			has1 = true
		} else if has0 {
			a1 = a0
			has1 = true
		}
	}

	i = skipSpaces(cmd, i)
	if i >= len(cmd) || cmd[i] != 's' {
		return nil, 0, 0, 0
	}

	sub = cmd[i:]
	if has0 && has1 {
		return sub, a0, a1, 2
	}
	return sub, 0, 0, 1
}
