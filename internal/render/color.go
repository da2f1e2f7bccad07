package render

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Base palette, expressed in go-colorful's perceptual color space so the
// derived gutter/status tones stay visually consistent instead of being
// picked as raw SGR literals (the original's "\x1b[7m" inverse-video
// escape is replaced by an explicit, testable color pair).
var (
	paperColor = colorful.Color{R: 0.92, G: 0.92, B: 0.90}
	inkColor   = colorful.Color{R: 0.10, G: 0.10, B: 0.12}
	accent     = colorful.Color{R: 0.20, G: 0.45, B: 0.85}
)

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// TextStyle is the default, unstyled cell appearance.
func TextStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(inkColor)).Background(toTcell(paperColor))
}

// GutterStyle renders line numbers in a muted tone blended two-thirds of
// the way from ink toward paper.
func GutterStyle() tcell.Style {
	dim := inkColor.BlendLuv(paperColor, 0.45)
	return tcell.StyleDefault.Foreground(toTcell(dim)).Background(toTcell(paperColor))
}

// SelectionStyle swaps foreground and background for the VISUAL-mode
// highlighted range, replacing the original's raw "\x1b[7m"/"\x1b[m" pair.
func SelectionStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(paperColor)).Background(toTcell(inkColor))
}

// StatusBarStyle is the inverted bar spec.md's drawstatus paints at the
// bottom of the screen, tinted with the accent color rather than a flat
// reverse-video swap.
func StatusBarStyle() tcell.Style {
	bg := inkColor.BlendLuv(accent, 0.35)
	return tcell.StyleDefault.Foreground(toTcell(paperColor)).Background(toTcell(bg)).Bold(true)
}
