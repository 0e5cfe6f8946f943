package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"raycaster/pkg/game/renderer"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

// styleColor maps a text style to its on-screen color
func styleColor(style renderer.TextStyle) color.Color {
	switch style {
	case renderer.StyleItem:
		return colorItem
	case renderer.StyleDenied:
		return colorDenied
	case renderer.StyleSubtle:
		return colorSubtle
	case renderer.StyleHUD:
		return renderer.HUDText
	default:
		return colorText
	}
}

// parseMarkup splits a message into colored segments
func (e *EbitenRenderer) parseMarkup(msg string) []textSegment {
	parsed := renderer.ParseMarkup(msg)
	segments := make([]textSegment, 0, len(parsed))
	for _, seg := range parsed {
		segments = append(segments, textSegment{text: seg.Text, color: styleColor(seg.Style)})
	}
	return segments
}

// applyAlpha fades a color towards transparent black
func (e *EbitenRenderer) applyAlpha(c color.Color, alpha float64) color.Color {
	if alpha <= 0 {
		alpha = 0
	}
	if alpha > 1.0 {
		alpha = 1.0
	}

	r, g, b, a := c.RGBA()
	// RGBA returns values in 0-65535 range
	return color.RGBA{
		uint8(float64(r>>8) * alpha),
		uint8(float64(g>>8) * alpha),
		uint8(float64(b>>8) * alpha),
		uint8(float64(a>>8) * alpha),
	}
}

// drawColoredText draws text with a specific color and font face, top-left at (x, y)
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y float64, col color.Color, face *text.GoTextFace) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)

	text.Draw(screen, str, face, op)
}

// drawColoredTextSegments draws multiple text segments with different colors on one line
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, segments []textSegment, x, y float64, face *text.GoTextFace) {
	currentX := x

	for _, seg := range segments {
		if seg.text == "" {
			continue
		}
		e.drawColoredText(screen, seg.text, currentX, y, seg.color, face)

		w, _ := text.Measure(seg.text, face, 0)
		currentX += w
	}
}

// segmentsWidth returns the total width of a line of segments
func segmentsWidth(segments []textSegment, face *text.GoTextFace) float64 {
	total := 0.0
	for _, seg := range segments {
		w, _ := text.Measure(seg.text, face, 0)
		total += w
	}
	return total
}
