// Package raycast marches rays through a world grid with the DDA algorithm and reports,
// for each screen column, which wall was struck and its fisheye-free distance.
package raycast

import (
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"raycaster/pkg/engine/camera"
	"raycaster/pkg/engine/world"
)

// epsilon biases every division by a ray component so axis-aligned rays never divide by zero
const epsilon = 1e-10

// Hit is the result of casting one ray
type Hit struct {
	Column int

	// Hit is false when the ray left the grid without striking a wall
	Hit  bool
	Cell world.CellType

	// Row and Col are the last cell the ray entered. For a miss this is the
	// first cell outside the grid.
	Row int
	Col int

	Side Side

	// Distance is measured perpendicular to the camera plane, not along the ray
	Distance float64

	// RayX and RayY are the unnormalised ray direction
	RayX float64
	RayY float64

	Steps int
}

// Coord returns the grid coordinate the ray stopped in
func (h Hit) Coord() world.Coord {
	return world.Coord{Row: h.Row, Col: h.Col}
}

// End returns the point where the ray met the face it stopped at
func (h Hit) End(p camera.Pose) (x, y float64) {
	return p.X + h.RayX*h.Distance, p.Y + h.RayY*h.Distance
}

// Caster casts rays against a single grid
type Caster struct {
	grid    *world.Grid
	workers int
}

// New creates a caster. A worker count below one uses one worker per CPU.
func New(grid *world.Grid, workers int) *Caster {
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	return &Caster{grid: grid, workers: workers}
}

// Grid returns the grid the caster marches through
func (c *Caster) Grid() *world.Grid {
	return c.grid
}

// Workers returns the number of goroutines CastFrame fans out to
func (c *Caster) Workers() int {
	return c.workers
}

// MaxSteps is the most cells any ray can visit before leaving the grid
func (c *Caster) MaxSteps() int {
	return c.grid.Rows() + c.grid.Cols()
}

// CastColumn casts the ray for one screen column of a view width pixels wide
func (c *Caster) CastColumn(p camera.Pose, column, width int) Hit {
	rayX, rayY := p.RayDir(column, width)
	h := c.CastRay(p, rayX, rayY)
	h.Column = column
	return h
}

// CastRay marches a ray from the pose position along (rayX, rayY).
// X steps move between rows and Y steps between columns.
func (c *Caster) CastRay(p camera.Pose, rayX, rayY float64) Hit {
	mapX := int(math.Floor(p.X))
	mapY := int(math.Floor(p.Y))

	h := Hit{RayX: rayX, RayY: rayY, Row: mapX, Col: mapY}
	if !c.grid.IsValidPosition(mapX, mapY) {
		return h
	}

	deltaDistX := math.Abs(1 / (rayX + epsilon))
	deltaDistY := math.Abs(1 / (rayY + epsilon))

	var stepX, stepY int
	var sideDistX, sideDistY float64

	if rayX < 0 {
		stepX = -1
		sideDistX = (p.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - p.X) * deltaDistX
	}

	if rayY < 0 {
		stepY = -1
		sideDistY = (p.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - p.Y) * deltaDistY
	}

	maxSteps := c.MaxSteps()
	for h.Steps < maxSteps {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			h.Side = SideX
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			h.Side = SideY
		}
		h.Steps++
		h.Row, h.Col = mapX, mapY

		if !c.grid.IsValidPosition(mapX, mapY) {
			break
		}

		cell, err := c.grid.Cell(mapX, mapY)
		if err != nil {
			panic(fmt.Sprintf("raycast: bounds-checked cell unreadable: %v", err))
		}
		if cell.IsWall() {
			h.Hit = true
			h.Cell = cell
			break
		}
	}

	if h.Side == SideX {
		h.Distance = (float64(mapX) - p.X + float64(1-stepX)/2) / (rayX + epsilon)
	} else {
		h.Distance = (float64(mapY) - p.Y + float64(1-stepY)/2) / (rayY + epsilon)
	}

	return h
}

// CastFrame casts one ray per column for a view width pixels wide.
// Columns are split into contiguous bands, one per worker; each band writes only its
// own slots of the result, so no locking is needed.
func (c *Caster) CastFrame(p camera.Pose, width int) []Hit {
	hits := make([]Hit, width)
	c.CastInto(p, hits)
	return hits
}

// CastInto fills hits with one ray per slot, treating len(hits) as the view width
func (c *Caster) CastInto(p camera.Pose, hits []Hit) {
	width := len(hits)
	if width == 0 {
		return
	}

	workers := c.workers
	if workers > width {
		workers = width
	}
	band := (width + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)

	for start := 0; start < width; start += band {
		end := start + band
		if end > width {
			end = width
		}
		g.Go(func() error {
			for x := start; x < end; x++ {
				hits[x] = c.CastColumn(p, x, width)
			}
			return nil
		})
	}

	// Workers never fail
	_ = g.Wait()
}

// CastSampled casts every stride-th column of a view width pixels wide, for overlays
// that only need a sparse fan of rays
func (c *Caster) CastSampled(p camera.Pose, width, stride int) []Hit {
	if stride < 1 {
		stride = 1
	}
	hits := make([]Hit, 0, width/stride+1)
	for x := 0; x < width; x += stride {
		hits = append(hits, c.CastColumn(p, x, width))
	}
	return hits
}
