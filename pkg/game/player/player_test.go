package player

import (
	"math"
	"testing"

	"raycaster/pkg/engine/camera"
	"raycaster/pkg/engine/world"
)

const tolerance = 1e-9

// makePlayer places a player facing north on a 10x10 bordered grid
func makePlayer(t *testing.T, x, y float64) *Player {
	t.Helper()
	return New(camera.New(x, y, -1, 0, DefaultFOV), world.NewBorderedGrid(10, 10), DefaultSpeeds())
}

func TestSetFOV_Clamps(t *testing.T) {
	p := makePlayer(t, 3, 3)
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{200, 180},
		{90, 90},
	}
	for _, tt := range tests {
		p.SetFOV(tt.in)
		if p.FOV() != tt.want {
			t.Errorf("SetFOV(%d): FOV = %d, want %d", tt.in, p.FOV(), tt.want)
		}
	}

	p.SetFOV(90)
	if got := p.Pose().PlaneRatio(); math.Abs(got-1) > tolerance {
		t.Errorf("plane ratio at 90 = %v, want 1", got)
	}
}

func TestAdjustFOV(t *testing.T) {
	p := makePlayer(t, 3, 3)
	p.AdjustFOV(-1)
	if p.FOV() != DefaultFOV-1 {
		t.Errorf("AdjustFOV(-1): FOV = %d, want %d", p.FOV(), DefaultFOV-1)
	}
	p.AdjustFOV(500)
	if p.FOV() != camera.MaxFOV {
		t.Errorf("AdjustFOV(500): FOV = %d, want %d", p.FOV(), camera.MaxFOV)
	}
}

func TestMove_Forward(t *testing.T) {
	p := makePlayer(t, 3, 3)
	if !p.Move(Forward) {
		t.Fatal("Move(Forward) = false, want true")
	}
	pose := p.Pose()
	if math.Abs(pose.X-2.9) > tolerance || math.Abs(pose.Y-3) > tolerance {
		t.Errorf("after Forward pos = (%v,%v), want (2.9,3)", pose.X, pose.Y)
	}

	p.Move(Backward)
	pose = p.Pose()
	if math.Abs(pose.X-3) > tolerance {
		t.Errorf("after Backward X = %v, want 3", pose.X)
	}
}

func TestMove_BlockedByWall(t *testing.T) {
	p := makePlayer(t, 1.05, 3)
	before := p.Pose()
	if p.Move(Forward) {
		t.Error("Move(Forward) into wall = true, want false")
	}
	if p.Pose() != before {
		t.Errorf("blocked move changed pose from %+v to %+v", before, p.Pose())
	}
}

func TestMove_Strafe(t *testing.T) {
	p := makePlayer(t, 5, 5)
	plane := p.Pose()
	step := DefaultMoveSpeed - DefaultStrafeSlow

	p.Move(StrafeRight)
	got := p.Pose()
	if math.Abs(got.X-(5+plane.PlaneX*step)) > tolerance || math.Abs(got.Y-(5+plane.PlaneY*step)) > tolerance {
		t.Errorf("StrafeRight pos = (%v,%v), want (5,5) + plane*%v", got.X, got.Y, step)
	}

	p.Move(StrafeLeft)
	got = p.Pose()
	if math.Abs(got.X-5) > tolerance || math.Abs(got.Y-5) > tolerance {
		t.Errorf("StrafeLeft after StrafeRight pos = (%v,%v), want (5,5)", got.X, got.Y)
	}
}

func TestMove_RotationRoundTrip(t *testing.T) {
	p := makePlayer(t, 3, 3)
	before := p.Pose()

	p.Move(RotateLeft)
	if p.Pose().DirY == before.DirY {
		t.Error("RotateLeft did not change direction")
	}
	p.Move(RotateRight)
	after := p.Pose()

	if math.Abs(after.DirX-before.DirX) > tolerance || math.Abs(after.DirY-before.DirY) > tolerance {
		t.Errorf("dir after round trip = (%v,%v), want (%v,%v)", after.DirX, after.DirY, before.DirX, before.DirY)
	}
	if math.Abs(after.PlaneRatio()-before.PlaneRatio()) > tolerance {
		t.Errorf("plane ratio after round trip = %v, want %v", after.PlaneRatio(), before.PlaneRatio())
	}
	if after.X != before.X || after.Y != before.Y {
		t.Error("rotation moved the player")
	}
}

func TestMove_RotateLeftDirection(t *testing.T) {
	p := makePlayer(t, 3, 3)
	p.Move(RotateLeft)
	pose := p.Pose()
	// (-1,0) turned by +0.1 rad
	if math.Abs(pose.DirX+math.Cos(0.1)) > tolerance || math.Abs(pose.DirY+math.Sin(0.1)) > tolerance {
		t.Errorf("RotateLeft dir = (%v,%v), want (%v,%v)", pose.DirX, pose.DirY, -math.Cos(0.1), -math.Sin(0.1))
	}
}

func TestMove_LeftMeansWest(t *testing.T) {
	// facing north, left is toward column 0 on the map
	p := makePlayer(t, 5, 5)
	p.Move(StrafeLeft)
	if got := p.Pose(); got.Y >= 5 || math.Abs(got.X-5) > tolerance {
		t.Errorf("StrafeLeft facing north pos = (%v,%v), want lower column on row 5", got.X, got.Y)
	}

	p = makePlayer(t, 5, 5)
	p.Move(RotateLeft)
	if got := p.Pose(); got.DirY >= 0 {
		t.Errorf("RotateLeft facing north dir = (%v,%v), want a westward (negative Y) component", got.DirX, got.DirY)
	}
	p.Move(Forward)
	if got := p.Cell(); got != (world.Coord{Row: 4, Col: 4}) {
		t.Errorf("Cell() after turning left and stepping = %v, want {4 4}", got)
	}
}

func TestCanStand_TruncatesTowardZero(t *testing.T) {
	p := New(camera.New(0.02, 1.5, -1, 0, DefaultFOV), world.NewGrid(3, 3), DefaultSpeeds())

	// int(-0.08) == 0, so stepping just past the left edge still reads cell 0
	if !p.Move(Forward) {
		t.Fatal("Move(Forward) past x=0 = false, want true (truncation toward zero)")
	}
	if p.Pose().X >= 0 {
		t.Errorf("X = %v, want negative", p.Pose().X)
	}
	if p.CanStand(-1.2, 1.5) {
		t.Error("CanStand(-1.2, 1.5) = true, want false")
	}
}

func TestCell(t *testing.T) {
	p := makePlayer(t, 4.7, 2.2)
	if got := p.Cell(); got != (world.Coord{Row: 4, Col: 2}) {
		t.Errorf("Cell() = %v, want {4 2}", got)
	}
}

func TestMoveCommandString(t *testing.T) {
	for _, c := range AllMoveCommands() {
		if c.String() == "Unknown" {
			t.Errorf("MoveCommand(%d).String() = Unknown", int(c))
		}
	}
	if !RotateLeft.IsRotation() || Forward.IsRotation() {
		t.Error("IsRotation mismatch")
	}
}
