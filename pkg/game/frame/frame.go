// Package frame turns the game state into a self-contained snapshot that a renderer can
// draw without touching the live state.
package frame

import (
	"log"

	"github.com/leonelquinteros/gotext"

	"raycaster/pkg/engine/camera"
	"raycaster/pkg/engine/projection"
	"raycaster/pkg/engine/raycast"
	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/state"
)

// RayEnd is where a minimap ray stopped, in pose coordinates (X along rows, Y along columns)
type RayEnd struct {
	X, Y float64
	Hit  bool
}

// Minimap is a copy of the grid and player needed to draw the overhead map
type Minimap struct {
	Rows, Cols int
	Cells      []world.CellType // row-major
	Discovered []bool           // row-major, parallel to Cells

	PlayerX, PlayerY float64
	DirX, DirY       float64

	Rays []RayEnd
}

// Cell returns the cell at (row, col). The caller keeps indices in range.
func (m *Minimap) Cell(row, col int) world.CellType {
	return m.Cells[row*m.Cols+col]
}

// IsDiscovered reports whether (row, col) has been seen
func (m *Minimap) IsDiscovered(row, col int) bool {
	return m.Discovered[row*m.Cols+col]
}

// Frame is everything a renderer needs for one picture
type Frame struct {
	Width, Height int
	Pose          camera.Pose

	// Segments holds one vertical wall slice per screen column
	Segments []projection.Segment

	// Minimap is nil when the overlay is hidden
	Minimap *Minimap

	// Debug holds HUD lines, empty when the overlay is hidden
	Debug []string

	// Messages is a copy of the game's message log, oldest first
	Messages []state.Message
	Tick     int
}

// Builder casts and projects frames. A Builder is not safe for concurrent use.
type Builder struct {
	palette   projection.Palette
	depthFade float64
	rayStep   int

	proj *projection.Projector
	hits []raycast.Hit
	segs []projection.Segment
}

// NewBuilder creates a builder. A nil palette selects the default colors;
// rayStep is the column stride for minimap rays.
func NewBuilder(palette projection.Palette, depthFade float64, rayStep int) *Builder {
	if palette == nil {
		palette = projection.DefaultPalette()
	}
	if rayStep < 1 {
		rayStep = 1
	}
	return &Builder{palette: palette, depthFade: depthFade, rayStep: rayStep}
}

// projector returns a projector for the given height, reusing the last one when the
// height has not changed
func (b *Builder) projector(height int) *projection.Projector {
	if b.proj == nil || b.proj.Height() != height {
		b.proj = projection.New(height, b.palette)
		b.proj.SetDepthFade(b.depthFade)
	}
	return b.proj
}

// Build casts one ray per column of a width x height view from the player's pose.
// Cells struck by rays are marked discovered. Wall types missing from the palette are
// drawn in the fallback color and reported once per type.
func (b *Builder) Build(g *state.Game, width, height int) *Frame {
	pose := g.Player.Pose()
	f := &Frame{
		Width:  width,
		Height: height,
		Pose:   pose,
		Tick:   g.Tick,
	}
	if width <= 0 || height <= 0 {
		f.Messages = append([]state.Message(nil), g.Messages...)
		return f
	}

	if cap(b.hits) < width {
		b.hits = make([]raycast.Hit, width)
	}
	b.hits = b.hits[:width]
	g.Caster.CastInto(pose, b.hits)

	var unsupported []world.CellType
	b.segs, unsupported = b.projector(height).ProjectFrame(b.hits, b.segs)
	// renderers may hold a frame past the next Build
	f.Segments = append([]projection.Segment(nil), b.segs...)

	for _, h := range b.hits {
		if h.Hit {
			g.Discover(h.Coord())
		}
	}
	g.Discover(g.Player.Cell())

	for _, t := range unsupported {
		if g.WarnedWallTypes.Has(t) {
			continue
		}
		g.WarnedWallTypes.Put(t)
		log.Printf("Warning: wall type %d has no colors, drawing fallback", t)
		g.AddMessage(gotext.Get("UNSUPPORTED_WALL", int(t)))
	}

	if g.ShowMinimap {
		f.Minimap = b.minimap(g, pose, width)
	}
	if g.ShowDebug {
		f.Debug = DebugLines(g)
	}
	f.Messages = append([]state.Message(nil), g.Messages...)
	return f
}

func (b *Builder) minimap(g *state.Game, pose camera.Pose, width int) *Minimap {
	rows, cols := g.Grid.Rows(), g.Grid.Cols()
	m := &Minimap{
		Rows:       rows,
		Cols:       cols,
		Cells:      make([]world.CellType, rows*cols),
		Discovered: make([]bool, rows*cols),
		PlayerX:    pose.X,
		PlayerY:    pose.Y,
		DirX:       pose.DirX,
		DirY:       pose.DirY,
	}
	g.Grid.ForEachCell(func(row, col int, cell world.CellType) {
		i := row*cols + col
		m.Cells[i] = cell
		m.Discovered[i] = g.IsDiscovered(row, col)
	})

	for _, h := range g.Caster.CastSampled(pose, width, b.rayStep) {
		x, y := h.End(pose)
		m.Rays = append(m.Rays, RayEnd{X: x, Y: y, Hit: h.Hit})
	}
	return m
}

// DebugLines returns the HUD text: tick rate, field of view and position
func DebugLines(g *state.Game) []string {
	pose := g.Player.Pose()
	return []string{
		gotext.Get("HUD_FPS", g.FPS),
		gotext.Get("HUD_FOV", pose.FOV),
		gotext.Get("HUD_POS_X", pose.X),
		gotext.Get("HUD_POS_Y", pose.Y),
	}
}
