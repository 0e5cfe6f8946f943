package projection

import (
	"image/color"

	"raycaster/pkg/engine/raycast"
	"raycaster/pkg/engine/world"
)

// WallColors is the two-tone base color of a wall type, one per face orientation
type WallColors struct {
	X color.RGBA // faces struck on an X step
	Y color.RGBA // faces struck on a Y step
}

// For returns the base color for a side
func (w WallColors) For(side raycast.Side) color.RGBA {
	if side == raycast.SideY {
		return w.Y
	}
	return w.X
}

// Palette maps wall types to their colors
type Palette map[world.CellType]WallColors

// FallbackColors are drawn for wall types missing from the palette
var FallbackColors = WallColors{
	X: color.RGBA{128, 128, 128, 255},
	Y: color.RGBA{96, 96, 96, 255},
}

// DefaultPalette returns the built-in wall colors for types 1 to 4
func DefaultPalette() Palette {
	return Palette{
		1: {X: color.RGBA{216, 191, 216, 255}, Y: color.RGBA{221, 160, 221, 255}}, // thistle / plum
		2: {X: color.RGBA{176, 196, 222, 255}, Y: color.RGBA{135, 160, 200, 255}}, // steel blue
		3: {X: color.RGBA{240, 200, 140, 255}, Y: color.RGBA{210, 170, 110, 255}}, // sandstone
		4: {X: color.RGBA{160, 210, 160, 255}, Y: color.RGBA{120, 180, 120, 255}}, // moss
	}
}

// Supports reports whether the palette has colors for a wall type
func (p Palette) Supports(t world.CellType) bool {
	_, ok := p[t]
	return ok
}
