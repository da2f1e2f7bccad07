package ex

import (
	"testing"

	"github.com/dshills/wee/internal/editor"
)

func TestParseAddrDot(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\nc\n"))
	e.Cur = 2 // second line
	row, _, ok := parseAddr(e, []byte("."), 0)
	if !ok || row != 2 {
		t.Fatalf("row=%d ok=%v, want 2,true", row, ok)
	}
}

func TestParseAddrDollar(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\nc\n"))
	row, _, ok := parseAddr(e, []byte("$"), 0)
	if !ok || row != 3 {
		t.Fatalf("row=%d ok=%v, want 3,true", row, ok)
	}
}

func TestParseAddrNumber(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\nc\n"))
	row, _, ok := parseAddr(e, []byte("2"), 0)
	if !ok || row != 2 {
		t.Fatalf("row=%d ok=%v, want 2,true", row, ok)
	}
}

func TestParseAddrPlusMinus(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\nc\nd\n"))
	row, _, ok := parseAddr(e, []byte("2+1"), 0)
	if !ok || row != 3 {
		t.Fatalf("row=%d ok=%v, want 3,true", row, ok)
	}
	row, _, ok = parseAddr(e, []byte("$-1"), 0)
	if !ok || row != 3 {
		t.Fatalf("row=%d ok=%v, want 3,true", row, ok)
	}
}

func TestParseAddrClampsToLineCount(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\n"))
	row, _, ok := parseAddr(e, []byte("100"), 0)
	if !ok || row != 2 {
		t.Fatalf("row=%d ok=%v, want 2,true", row, ok)
	}
}

func TestParseAddrLiteral(t *testing.T) {
	e := editor.NewFromBytes([]byte("foo\nbar\nbaz\n"))
	row, _, ok := parseAddr(e, []byte("/baz/"), 0)
	if !ok || row != 3 {
		t.Fatalf("row=%d ok=%v, want 3,true", row, ok)
	}
}

func TestParseAddrInvalid(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\n"))
	if _, _, ok := parseAddr(e, []byte("x"), 0); ok {
		t.Fatalf("ok = true, want false")
	}
}

func TestParseSubExRange(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\nc\n"))
	sub, r0, r1, kind := parseSubEx(e, []byte("1,2s/a/b/"))
	if kind != 2 || r0 != 1 || r1 != 2 || string(sub) != "s/a/b/" {
		t.Fatalf("sub=%q r0=%d r1=%d kind=%d", sub, r0, r1, kind)
	}
}

func TestParseSubExPercent(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\nc\n"))
	sub, r0, r1, kind := parseSubEx(e, []byte("%s/a/b/g"))
	if kind != 2 || r0 != 1 || r1 != 3 || string(sub) != "s/a/b/g" {
		t.Fatalf("sub=%q r0=%d r1=%d kind=%d", sub, r0, r1, kind)
	}
}

func TestParseSubExUnranged(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\n"))
	sub, _, _, kind := parseSubEx(e, []byte("s/a/b/"))
	if kind != 1 || string(sub) != "s/a/b/" {
		t.Fatalf("sub=%q kind=%d", sub, kind)
	}
}

func TestParseSubExNotASubstitute(t *testing.T) {
	e := editor.NewFromBytes([]byte("a\nb\n"))
	if _, _, _, kind := parseSubEx(e, []byte("q")); kind != 0 {
		t.Fatalf("kind = %d, want 0", kind)
	}
}
