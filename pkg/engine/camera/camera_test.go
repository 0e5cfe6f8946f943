package camera

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestClampFOV(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-30, 1},
		{1, 1},
		{60, 60},
		{180, 180},
		{200, 180},
	}
	for _, tt := range tests {
		if got := ClampFOV(tt.in); got != tt.want {
			t.Errorf("ClampFOV(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestWithFOV_PlaneRatio(t *testing.T) {
	p := New(3, 3, -1, 0, 90)
	if !approx(p.PlaneRatio(), math.Tan(math.Pi/4)) {
		t.Errorf("PlaneRatio() at 90 = %v, want %v", p.PlaneRatio(), math.Tan(math.Pi/4))
	}
	// plane = (dirY*tan, -dirX*tan) = (0, 1)
	if !approx(p.PlaneX, 0) || !approx(p.PlaneY, 1) {
		t.Errorf("plane = (%v,%v), want (0,1)", p.PlaneX, p.PlaneY)
	}

	narrow := p.WithFOV(0)
	if narrow.FOV != MinFOV {
		t.Errorf("WithFOV(0).FOV = %d, want %d", narrow.FOV, MinFOV)
	}
	wide := p.WithFOV(200)
	if wide.FOV != MaxFOV {
		t.Errorf("WithFOV(200).FOV = %d, want %d", wide.FOV, MaxFOV)
	}
}

func TestPlanePerpendicular(t *testing.T) {
	p := New(0, 0, 0.6, 0.8, 66)
	dot := p.DirX*p.PlaneX + p.DirY*p.PlaneY
	if !approx(dot, 0) {
		t.Errorf("dir . plane = %v, want 0", dot)
	}
}

func TestRotated_RoundTrip(t *testing.T) {
	p := New(2.5, 4.5, -1, 0, 60)
	ratio := p.PlaneRatio()

	q := p.Rotated(0.1).Rotated(-0.1)
	if !approx(q.DirX, p.DirX) || !approx(q.DirY, p.DirY) {
		t.Errorf("dir after round trip = (%v,%v), want (%v,%v)", q.DirX, q.DirY, p.DirX, p.DirY)
	}
	if !approx(q.PlaneX, p.PlaneX) || !approx(q.PlaneY, p.PlaneY) {
		t.Errorf("plane after round trip = (%v,%v), want (%v,%v)", q.PlaneX, q.PlaneY, p.PlaneX, p.PlaneY)
	}

	r := p
	for i := 0; i < 37; i++ {
		r = r.Rotated(0.1)
	}
	if !approx(r.PlaneRatio(), ratio) {
		t.Errorf("PlaneRatio after 37 turns = %v, want %v", r.PlaneRatio(), ratio)
	}
	if r.X != p.X || r.Y != p.Y {
		t.Errorf("rotation moved the pose to (%v,%v)", r.X, r.Y)
	}
}

func TestHandedness(t *testing.T) {
	// X runs down the rows and Y across the columns; facing north is (-1, 0)
	north := New(3, 3, -1, 0, 60)
	if _, y := north.RayDir(0, 100); y >= 0 {
		t.Errorf("facing north, left column ray Y = %v, want negative (west)", y)
	}
	if _, y := north.RayDir(99, 100); y <= 0 {
		t.Errorf("facing north, right column ray Y = %v, want positive (east)", y)
	}
	if turned := north.Rotated(0.1); turned.DirY >= 0 {
		t.Errorf("left turn from north dir = (%v,%v), want west of north", turned.DirX, turned.DirY)
	}

	east := New(3, 3, 0, 1, 60)
	if x, _ := east.RayDir(0, 100); x >= 0 {
		t.Errorf("facing east, left column ray X = %v, want negative (north)", x)
	}
}

func TestRayDir_CenterColumn(t *testing.T) {
	p := New(0, 0, -1, 0, 60)
	x, y := p.RayDir(400, 800)
	if !approx(x, p.DirX) || !approx(y, p.DirY) {
		t.Errorf("RayDir(center) = (%v,%v), want dir (%v,%v)", x, y, p.DirX, p.DirY)
	}

	lx, ly := p.RayDir(0, 800)
	if !approx(lx, p.DirX-p.PlaneX) || !approx(ly, p.DirY-p.PlaneY) {
		t.Errorf("RayDir(0) = (%v,%v), want dir - plane", lx, ly)
	}
}
