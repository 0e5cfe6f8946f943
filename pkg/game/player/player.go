// Package player holds the single mutable viewer: its pose, field of view and the
// movement rules that keep it out of walls.
package player

import (
	"raycaster/pkg/engine/camera"
	"raycaster/pkg/engine/world"
)

// Default movement tuning
const (
	DefaultMoveSpeed   = 0.1
	DefaultStrafeSlow  = 0.05 // strafing moves at MoveSpeed minus this
	DefaultRotateSpeed = 0.1  // radians per tick
	DefaultFOV         = 60
)

// MoveCommand is a single discrete movement request for one tick
type MoveCommand int

// Movement commands
const (
	Forward MoveCommand = iota
	Backward
	StrafeLeft
	StrafeRight
	RotateLeft
	RotateRight
)

// AllMoveCommands returns every command for iteration
func AllMoveCommands() []MoveCommand {
	return []MoveCommand{Forward, Backward, StrafeLeft, StrafeRight, RotateLeft, RotateRight}
}

// String returns the string representation of a command
func (c MoveCommand) String() string {
	switch c {
	case Forward:
		return "Forward"
	case Backward:
		return "Backward"
	case StrafeLeft:
		return "StrafeLeft"
	case StrafeRight:
		return "StrafeRight"
	case RotateLeft:
		return "RotateLeft"
	case RotateRight:
		return "RotateRight"
	default:
		return "Unknown"
	}
}

// IsRotation returns true for commands that turn rather than translate
func (c MoveCommand) IsRotation() bool {
	return c == RotateLeft || c == RotateRight
}

// Speeds configures how far each command moves or turns the player
type Speeds struct {
	Move   float64
	Strafe float64 // subtracted from Move when strafing
	Rotate float64
}

// DefaultSpeeds returns the standard movement tuning
func DefaultSpeeds() Speeds {
	return Speeds{Move: DefaultMoveSpeed, Strafe: DefaultStrafeSlow, Rotate: DefaultRotateSpeed}
}

// Player is the viewer moving through a grid
type Player struct {
	pose   camera.Pose
	grid   *world.Grid
	speeds Speeds
}

// New creates a player from an initial pose on the given grid
func New(pose camera.Pose, grid *world.Grid, speeds Speeds) *Player {
	return &Player{pose: pose.WithFOV(pose.FOV), grid: grid, speeds: speeds}
}

// Pose returns a snapshot of the player's current pose
func (p *Player) Pose() camera.Pose {
	return p.pose
}

// FOV returns the current field of view in degrees
func (p *Player) FOV() int {
	return p.pose.FOV
}

// Speeds returns the movement tuning
func (p *Player) Speeds() Speeds {
	return p.speeds
}

// SetFOV sets the field of view, clamped to [1, 180], and recomputes the camera plane
func (p *Player) SetFOV(deg int) {
	p.pose = p.pose.WithFOV(deg)
}

// AdjustFOV changes the field of view by delta degrees
func (p *Player) AdjustFOV(delta int) {
	p.SetFOV(p.pose.FOV + delta)
}

// Move applies one command. It returns false when a translation was blocked by a wall,
// in which case the position is left untouched.
func (p *Player) Move(cmd MoveCommand) bool {
	s := p.speeds
	x, y := p.pose.X, p.pose.Y

	switch cmd {
	case Forward:
		x += p.pose.DirX * s.Move
		y += p.pose.DirY * s.Move
	case Backward:
		x -= p.pose.DirX * s.Move
		y -= p.pose.DirY * s.Move
	case StrafeLeft:
		x -= p.pose.PlaneX * (s.Move - s.Strafe)
		y -= p.pose.PlaneY * (s.Move - s.Strafe)
	case StrafeRight:
		x += p.pose.PlaneX * (s.Move - s.Strafe)
		y += p.pose.PlaneY * (s.Move - s.Strafe)
	case RotateLeft:
		p.pose = p.pose.Rotated(s.Rotate)
		return true
	case RotateRight:
		p.pose = p.pose.Rotated(-s.Rotate)
		return true
	default:
		return true
	}

	if !p.CanStand(x, y) {
		return false
	}
	p.pose = p.pose.Moved(x, y)
	return true
}

// CanStand reports whether (x, y) lies in an empty cell; x is the row, y the column.
// Coordinates are truncated toward zero, so positions in (-1, 0) map to cell 0.
func (p *Player) CanStand(x, y float64) bool {
	return p.grid.IsWalkable(int(x), int(y))
}

// Cell returns the grid cell the player stands in
func (p *Player) Cell() world.Coord {
	return world.Coord{Row: int(p.pose.X), Col: int(p.pose.Y)}
}
