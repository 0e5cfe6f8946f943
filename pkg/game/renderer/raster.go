package renderer

import (
	"image"
	"image/color"
	"image/draw"

	"raycaster/pkg/game/frame"
)

// Colors shared by every backend
var (
	Background = color.RGBA{0, 0, 0, 255}

	MinimapBackground = color.RGBA{0, 0, 0, 255}
	MinimapWall       = color.RGBA{0, 0, 0, 255}
	MinimapSpace      = color.RGBA{255, 255, 255, 255}
	MinimapUnseenWall = color.RGBA{70, 70, 70, 255}
	MinimapPlayer     = color.RGBA{255, 0, 0, 255}
	MinimapRay        = color.RGBA{255, 200, 0, 255}

	HUDText = color.RGBA{255, 255, 255, 255}
)

// MinimapMarkerSize is the side of the player marker in minimap pixels
const MinimapMarkerSize = 4

// PixelColor returns the color of view pixel (x, y): the wall segment color inside the
// segment's extent, the background elsewhere
func PixelColor(f *frame.Frame, x, y int) color.RGBA {
	if x < 0 || x >= len(f.Segments) {
		return Background
	}
	seg := f.Segments[x]
	if seg.Visible && y >= seg.YStart && y <= seg.YEnd {
		return seg.Color
	}
	return Background
}

// MinimapCellColor returns the color of one minimap cell. Walls no ray has reached yet
// are drawn grey.
func MinimapCellColor(m *frame.Minimap, row, col int) color.RGBA {
	if !m.Cell(row, col).IsWall() {
		return MinimapSpace
	}
	if !m.IsDiscovered(row, col) {
		return MinimapUnseenWall
	}
	return MinimapWall
}

// MinimapLayout places a grid of rows x cols cells in a square of size pixels
type MinimapLayout struct {
	Scale  int // pixels per cell
	Width  int
	Height int
}

// NewMinimapLayout computes the cell scale for a minimap of at most size pixels across.
// The scale is never below 1.
func NewMinimapLayout(m *frame.Minimap, size int) MinimapLayout {
	longest := m.Cols
	if m.Rows > longest {
		longest = m.Rows
	}
	scale := size / longest
	if scale < 1 {
		scale = 1
	}
	return MinimapLayout{Scale: scale, Width: m.Cols * scale, Height: m.Rows * scale}
}

// ToPixel converts pose coordinates to minimap pixels. Pose X runs down the rows, so it
// becomes the vertical pixel coordinate.
func (l MinimapLayout) ToPixel(x, y float64) (px, py int) {
	return int(y * float64(l.Scale)), int(x * float64(l.Scale))
}

// Marker returns the top-left corner of the player marker, clamped so the whole marker
// stays inside the minimap
func (l MinimapLayout) Marker(m *frame.Minimap, markerSize int) (px, py int) {
	px, py = l.ToPixel(m.PlayerX, m.PlayerY)
	return clamp(px, 0, l.Width-markerSize), clamp(py, 0, l.Height-markerSize)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// TerminalMinimapSize picks a minimap size for a character-cell view of width x height
// pixels, about a third of the narrower side
func TerminalMinimapSize(width, height int) int {
	side := width
	if height < side {
		side = height
	}
	return side / 3
}

// RasterizeMinimap draws the minimap into an image at most size pixels across:
// cells, then the rays cast this frame, then the player marker
func RasterizeMinimap(m *frame.Minimap, size int) *image.RGBA {
	l := NewMinimapLayout(m, size)
	img := image.NewRGBA(image.Rect(0, 0, l.Width, l.Height))

	for row := 0; row < m.Rows; row++ {
		for col := 0; col < m.Cols; col++ {
			r := image.Rect(col*l.Scale, row*l.Scale, (col+1)*l.Scale, (row+1)*l.Scale)
			draw.Draw(img, r, image.NewUniform(MinimapCellColor(m, row, col)), image.Point{}, draw.Src)
		}
	}

	px, py := l.ToPixel(m.PlayerX, m.PlayerY)
	for _, ray := range m.Rays {
		ex, ey := l.ToPixel(ray.X, ray.Y)
		drawLine(img, px, py, ex, ey, MinimapRay)
	}

	mx, my := l.Marker(m, MinimapMarkerSize)
	marker := image.Rect(mx, my, mx+MinimapMarkerSize, my+MinimapMarkerSize)
	draw.Draw(img, marker, image.NewUniform(MinimapPlayer), image.Point{}, draw.Src)
	return img
}

// drawLine plots a straight line; points outside img are dropped
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	n := max(abs(dx), abs(dy))
	if n == 0 {
		img.SetRGBA(x0, y0, c)
		return
	}
	for i := 0; i <= n; i++ {
		img.SetRGBA(x0+dx*i/n, y0+dy*i/n, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Rasterize flattens a frame into pixels with the minimap, if any, over the top-right
// corner. A minimapSize of 0 leaves the minimap out.
func Rasterize(f *frame.Frame, minimapSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	for _, seg := range f.Segments {
		if !seg.Visible {
			continue
		}
		r := image.Rect(seg.Column, seg.YStart, seg.Column+1, seg.YEnd+1)
		draw.Draw(img, r, image.NewUniform(seg.Color), image.Point{}, draw.Src)
	}

	if f.Minimap != nil && minimapSize > 0 {
		mm := RasterizeMinimap(f.Minimap, minimapSize)
		at := image.Pt(f.Width-mm.Bounds().Dx(), 0)
		draw.Draw(img, mm.Bounds().Add(at), mm, image.Point{}, draw.Src)
	}
	return img
}
