package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/arturogbruno/lights-out-game/pkg/game/renderer"
)

// segmentColor returns the draw colour for a markup style.
func segmentColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleAction:
		return colorAction
	case renderer.StyleSubtle:
		return colorSubtle
	case renderer.StyleDenied:
		return colorDenied
	default:
		return colorText
	}
}

// drawColoredText draws text with a specific color and font face, with its
// top-left corner at (x, y).
func drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawMarkup draws a message with markup, each segment in its own colour.
// Returns the width drawn.
func drawMarkup(screen *ebiten.Image, msg string, x, y float64, face *text.GoTextFace) float64 {
	start := x
	for _, seg := range renderer.ParseMarkup(msg) {
		drawColoredText(screen, seg.Text, x, y, segmentColor(seg.Style), face)
		w, _ := text.Measure(seg.Text, face, 0)
		x += w
	}
	return x - start
}

// markupWidth measures a message with markup removed.
func markupWidth(msg string, face *text.GoTextFace) float64 {
	w, _ := text.Measure(renderer.PlainText(msg), face, 0)
	return w
}

// drawPair draws two words centred on the screen width at y, the first in
// neon orange and the second in neon blue.
func drawPair(screen *ebiten.Image, first, second string, y float64, face *text.GoTextFace) {
	firstW, _ := text.Measure(first+" ", face, 0)
	secondW, _ := text.Measure(second, face, 0)
	x := (float64(screen.Bounds().Dx()) - firstW - secondW) / 2
	drawColoredText(screen, first, x, y, colorNeonOrange, face)
	drawColoredText(screen, second, x+firstW, y, colorNeonBlue, face)
}
