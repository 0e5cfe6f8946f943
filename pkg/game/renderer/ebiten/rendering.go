package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"raycaster/pkg/game/frame"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/state"
)

// Draw renders the latest frame to the screen
// This is called by Ebiten's game loop
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(renderer.Background)

	snap := e.getSnapshot()
	bounds := screen.Bounds()
	screenWidth, screenHeight := bounds.Dx(), bounds.Dy()

	var f *frame.Frame
	if snap.valid {
		f = snap.frame
		e.drawWalls(screen, f, screenWidth, screenHeight)
		if f.Minimap != nil && e.opts.MinimapSize > 0 {
			e.drawMinimap(screen, f.Minimap, screenWidth)
		}
		e.drawHUD(screen, f.Debug, screenHeight)
	}
	e.drawMessages(screen, f, screenWidth, screenHeight)
}

// drawWalls fills one vertical strip per wall segment, stretched to the screen when the
// frame was built for a different size
func (e *EbitenRenderer) drawWalls(screen *ebiten.Image, f *frame.Frame, screenWidth, screenHeight int) {
	if f.Width <= 0 || f.Height <= 0 {
		return
	}
	colW := float32(screenWidth) / float32(f.Width)
	rowH := float32(screenHeight) / float32(f.Height)

	for _, seg := range f.Segments {
		if !seg.Visible {
			continue
		}
		x := float32(seg.Column) * colW
		y := float32(seg.YStart) * rowH
		h := float32(seg.YEnd-seg.YStart+1) * rowH
		vector.DrawFilledRect(screen, x, y, colW, h, seg.Color, false)
	}
}

// drawMinimap draws the overhead map in the top-right corner: cells, the rays cast this
// frame, then the player marker
func (e *EbitenRenderer) drawMinimap(screen *ebiten.Image, m *frame.Minimap, screenWidth int) {
	layout := renderer.NewMinimapLayout(m, e.opts.MinimapSize)
	ox := float32(screenWidth - layout.Width)
	scale := float32(layout.Scale)

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			vector.DrawFilledRect(screen,
				ox+float32(col)*scale, float32(row)*scale, scale, scale,
				renderer.MinimapCellColor(m, row, col), false)
		}
	}

	px, py := layout.ToPixel(m.PlayerX, m.PlayerY)
	for _, ray := range m.Rays {
		ex, ey := layout.ToPixel(ray.X, ray.Y)
		vector.StrokeLine(screen,
			ox+float32(px), float32(py), ox+float32(ex), float32(ey),
			1, renderer.MinimapRay, false)
	}

	mx, my := layout.Marker(m, renderer.MinimapMarkerSize)
	vector.DrawFilledRect(screen,
		ox+float32(mx), float32(my),
		renderer.MinimapMarkerSize, renderer.MinimapMarkerSize,
		renderer.MinimapPlayer, false)
}

// drawHUD draws the debug lines down the top-left corner
func (e *EbitenRenderer) drawHUD(screen *ebiten.Image, lines []string, screenHeight int) {
	if len(lines) == 0 {
		return
	}
	face := e.getMonoFontFace(screenHeight)
	for i, line := range lines {
		y := float64(hudMargin + i*hudLineSpacing)
		e.drawColoredText(screen, line, hudMargin, y, renderer.HUDText, face)
	}
}

// drawMessages draws recent messages in a panel at the bottom of the window.
// Messages fade out over the last part of their lifetime.
func (e *EbitenRenderer) drawMessages(screen *ebiten.Image, f *frame.Frame, screenWidth, screenHeight int) {
	var gameMessages []state.Message
	if f != nil {
		gameMessages = f.Messages
	}
	now := time.Now().UnixMilli()
	msgs := e.visibleMessages(gameMessages, now)
	if len(msgs) == 0 {
		return
	}

	face := e.getSansFontFace(screenHeight)
	lineHeight := face.Size + 4

	lines := make([][]textSegment, 0, len(msgs))
	maxTextWidth := 0.0
	for _, m := range msgs {
		alpha := messageAlpha(now - m.Timestamp)
		segments := e.parseMarkup(m.Text)
		for i := range segments {
			segments[i].color = e.applyAlpha(segments[i].color, alpha)
		}
		if w := segmentsWidth(segments, face); w > maxTextWidth {
			maxTextWidth = w
		}
		lines = append(lines, segments)
	}

	panelWidth := int(maxTextWidth) + 20 // 10px padding on each side
	if panelWidth < 100 {
		panelWidth = 100
	}
	if panelWidth > screenWidth-40 {
		panelWidth = screenWidth - 40
	}
	panelHeight := int(float64(len(lines))*lineHeight) + 16

	// Bottom of the window, centered horizontally
	const marginBottom = 20
	bgX := float32((screenWidth - panelWidth) / 2)
	bgY := float32(screenHeight - marginBottom - panelHeight)
	if bgY < 0 {
		bgY = 0
	}
	bgW, bgH := float32(panelWidth), float32(panelHeight)

	vector.DrawFilledRect(screen, bgX-1, bgY-1, bgW+2, bgH+2, colorPanelBorder, false)
	vector.DrawFilledRect(screen, bgX, bgY, bgW, bgH, colorPanelBackground, false)

	for i, segments := range lines {
		y := float64(bgY) + 8 + float64(i)*lineHeight
		e.drawColoredTextSegments(screen, segments, float64(bgX)+10, y, face)
	}
}
