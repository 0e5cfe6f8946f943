// Package projection turns ray hits into vertical wall slices: how tall each slice is
// on screen and what shaded color it is drawn in.
package projection

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"raycaster/pkg/engine/raycast"
	"raycaster/pkg/engine/world"
)

// ErrUnsupportedWallType is returned for a hit on a wall type the palette has no colors for.
// The segment is still produced, drawn in FallbackColors.
var ErrUnsupportedWallType = errors.New("unsupported wall type")

const (
	epsilon = 1e-10

	// DefaultDepthFade is how much intensity, out of 255, a wall loses per grid unit of distance
	DefaultDepthFade = 16.0

	// maxLineHeight keeps the float to int conversion in range for walls touching the camera
	maxLineHeight = math.MaxInt32
)

// Segment is one vertical wall slice to draw, from YStart to YEnd inclusive
type Segment struct {
	Column  int
	YStart  int
	YEnd    int
	Color   color.RGBA
	Visible bool
}

// Projector maps hits onto a view of a fixed height
type Projector struct {
	height    int
	palette   Palette
	depthFade float64
}

// New creates a projector for a view height pixels tall.
// A nil palette uses DefaultPalette.
func New(height int, palette Palette) *Projector {
	if height <= 0 {
		panic(fmt.Sprintf("projection height must be positive, got %d", height))
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Projector{height: height, palette: palette, depthFade: DefaultDepthFade}
}

// SetDepthFade changes the per-unit intensity falloff
func (p *Projector) SetDepthFade(fade float64) {
	if fade < 0 {
		fade = 0
	}
	p.depthFade = fade
}

// Height returns the view height
func (p *Projector) Height() int {
	return p.height
}

// Palette returns the wall palette
func (p *Projector) Palette() Palette {
	return p.palette
}

// LineHeight returns the on-screen height of a wall at the given perpendicular distance
func (p *Projector) LineHeight(distance float64) int {
	h := math.Floor(float64(p.height) / (distance + epsilon))
	if h > maxLineHeight || math.IsNaN(h) {
		return maxLineHeight
	}
	if h < 0 {
		return 0
	}
	return int(h)
}

// Extent returns the clamped vertical span of a wall slice of the given line height
func (p *Projector) Extent(lineHeight int) (start, end int) {
	start = clamp(p.height/2-lineHeight/2, 0, p.height-1)
	end = clamp(p.height/2+lineHeight/2, 0, p.height-1)
	return start, end
}

// Intensity returns the depth fade factor in [0, 255] for a distance
func (p *Projector) Intensity(distance float64) float64 {
	return math.Max(0, 255-distance*p.depthFade)
}

// Shade scales a base color by the depth fade for a distance
func (p *Projector) Shade(base color.RGBA, distance float64) color.RGBA {
	k := p.Intensity(distance) / 255
	return color.RGBA{
		R: scaleChannel(base.R, k),
		G: scaleChannel(base.G, k),
		B: scaleChannel(base.B, k),
		A: 255,
	}
}

// Project converts a single hit into a draw segment. A miss yields an invisible segment.
// A wall type outside the palette yields a fallback-colored segment and ErrUnsupportedWallType.
func (p *Projector) Project(hit raycast.Hit) (Segment, error) {
	seg := Segment{Column: hit.Column}
	if !hit.Hit {
		return seg, nil
	}

	seg.Visible = true
	seg.YStart, seg.YEnd = p.Extent(p.LineHeight(hit.Distance))

	var err error
	colors, ok := p.palette[hit.Cell]
	if !ok {
		colors = FallbackColors
		err = fmt.Errorf("wall type %d at (%d,%d): %w", hit.Cell, hit.Row, hit.Col, ErrUnsupportedWallType)
	}

	seg.Color = p.Shade(colors.For(hit.Side), hit.Distance)
	return seg, err
}

// ProjectFrame converts a frame of hits into segments. It never stops early; wall types
// that had no palette entry are returned once each, in the order first seen.
func (p *Projector) ProjectFrame(hits []raycast.Hit, segments []Segment) ([]Segment, []world.CellType) {
	segments = segments[:0]
	var unsupported []world.CellType

	for _, h := range hits {
		seg, err := p.Project(h)
		if err != nil && !containsType(unsupported, h.Cell) {
			unsupported = append(unsupported, h.Cell)
		}
		segments = append(segments, seg)
	}

	return segments, unsupported
}

func containsType(types []world.CellType, t world.CellType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}

func scaleChannel(c uint8, k float64) uint8 {
	v := math.Round(float64(c) * k)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
