package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/wee/internal/editor"
)

func TestConvertKeyRune(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	k := convertKey(ev)
	if !k.IsRune() || k.Rune != 'x' {
		t.Fatalf("k = %+v, want rune x", k)
	}
}

func TestConvertKeyCtrlQ(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	k := convertKey(ev)
	if k.Special != editor.SpecialCtrlQ {
		t.Fatalf("k.Special = %v, want SpecialCtrlQ", k.Special)
	}
}

func TestConvertKeyEscape(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	k := convertKey(ev)
	if k.Special != editor.SpecialEsc {
		t.Fatalf("k.Special = %v, want SpecialEsc", k.Special)
	}
}

func TestConvertKeyBackspace2(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	k := convertKey(ev)
	if k.Special != editor.SpecialBackspace {
		t.Fatalf("k.Special = %v, want SpecialBackspace", k.Special)
	}
}

func TestConvertKeyTabInsertsLiteralTab(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)
	k := convertKey(ev)
	if !k.IsRune() || k.Rune != '\t' {
		t.Fatalf("k = %+v, want literal tab", k)
	}
}

func TestConvertKeyUnsupportedIsNull(t *testing.T) {
	ev := tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone)
	k := convertKey(ev)
	if k.Special != editor.SpecialNull {
		t.Fatalf("k.Special = %v, want SpecialNull", k.Special)
	}
}
