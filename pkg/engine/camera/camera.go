// Package camera holds the viewer pose used to cast rays: a position, a unit facing
// direction and a camera plane perpendicular to it whose length sets the field of view.
package camera

import "math"

// Field of view limits, in whole degrees
const (
	MinFOV = 1
	MaxFOV = 180
)

// Pose is an immutable snapshot of where the viewer stands and looks.
// X runs down the grid rows and Y across the columns, so (X, Y) is a right-handed
// frame when the map is drawn with row 0 at the top.
type Pose struct {
	X, Y           float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
	FOV            int
}

// New builds a pose at (x, y) facing (dirX, dirY) with the given field of view.
// The camera plane is derived from the direction and the clamped FOV.
func New(x, y, dirX, dirY float64, fov int) Pose {
	p := Pose{X: x, Y: y, DirX: dirX, DirY: dirY}
	return p.WithFOV(fov)
}

// ClampFOV limits a field of view to [MinFOV, MaxFOV]
func ClampFOV(deg int) int {
	if deg < MinFOV {
		return MinFOV
	}
	if deg > MaxFOV {
		return MaxFOV
	}
	return deg
}

// PlaneFor returns the camera plane for a facing direction and FOV.
// The plane is the direction turned a quarter turn toward the viewer's right, scaled by
// tan(fov/2).
func PlaneFor(dirX, dirY float64, fov int) (planeX, planeY float64) {
	half := math.Tan(float64(ClampFOV(fov)) / 2 * math.Pi / 180)
	return dirY * half, -dirX * half
}

// WithFOV returns a copy of the pose with the FOV clamped and the plane recomputed
func (p Pose) WithFOV(deg int) Pose {
	p.FOV = ClampFOV(deg)
	p.PlaneX, p.PlaneY = PlaneFor(p.DirX, p.DirY, p.FOV)
	return p
}

// Rotated returns a copy of the pose with direction and plane turned by angle radians.
// Positive angles turn the viewer to the left.
func (p Pose) Rotated(angle float64) Pose {
	sin, cos := math.Sincos(angle)

	dirX := p.DirX
	p.DirX = p.DirX*cos - p.DirY*sin
	p.DirY = dirX*sin + p.DirY*cos

	planeX := p.PlaneX
	p.PlaneX = p.PlaneX*cos - p.PlaneY*sin
	p.PlaneY = planeX*sin + p.PlaneY*cos

	return p
}

// Moved returns a copy of the pose translated to (x, y)
func (p Pose) Moved(x, y float64) Pose {
	p.X = x
	p.Y = y
	return p
}

// RayDir returns the ray direction for a screen column.
// cameraX sweeps from -1 at the viewer's left edge to just under +1 at the right.
func (p Pose) RayDir(column, width int) (rayX, rayY float64) {
	cameraX := 2*float64(column)/float64(width) - 1
	return p.DirX + p.PlaneX*cameraX, p.DirY + p.PlaneY*cameraX
}

// PlaneRatio returns |plane| / |dir|, which equals tan(FOV/2)
func (p Pose) PlaneRatio() float64 {
	return math.Hypot(p.PlaneX, p.PlaneY) / math.Hypot(p.DirX, p.DirY)
}
