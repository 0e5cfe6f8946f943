package projection

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"raycaster/pkg/engine/camera"
	"raycaster/pkg/engine/raycast"
	"raycaster/pkg/engine/world"
)

const viewHeight = 600

func TestLineHeight(t *testing.T) {
	p := New(viewHeight, nil)
	tests := []struct {
		distance float64
		want     int
	}{
		{7, 85},
		{4, 149}, // the epsilon bias floors exact quotients down by one
		{1000, 0},
		{0, maxLineHeight},
	}
	for _, tt := range tests {
		if got := p.LineHeight(tt.distance); got != tt.want {
			t.Errorf("LineHeight(%v) = %d, want %d", tt.distance, got, tt.want)
		}
	}
}

func TestExtent_Clamped(t *testing.T) {
	p := New(viewHeight, nil)
	tests := []struct {
		name       string
		lineHeight int
		wantStart  int
		wantEnd    int
	}{
		{"short wall", 85, 258, 342},
		{"zero", 0, 300, 300},
		{"taller than view", 5000, 0, viewHeight - 1},
		{"touching camera", maxLineHeight, 0, viewHeight - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := p.Extent(tt.lineHeight)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Extent(%d) = (%d,%d), want (%d,%d)", tt.lineHeight, start, end, tt.wantStart, tt.wantEnd)
			}
			if start < 0 || end > viewHeight-1 || start > end {
				t.Errorf("Extent(%d) = (%d,%d) outside [0,%d]", tt.lineHeight, start, end, viewHeight-1)
			}
		})
	}
}

func TestShade(t *testing.T) {
	p := New(viewHeight, nil)
	base := color.RGBA{216, 191, 216, 255}

	if got := p.Shade(base, 0); got != base {
		t.Errorf("Shade(base, 0) = %v, want %v", got, base)
	}
	if got := p.Shade(base, 16); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Shade(base, 16) = %v, want black", got)
	}
	if got := p.Shade(base, 100); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Shade(base, 100) = %v, want black", got)
	}
	want := color.RGBA{108, 95, 108, 255}
	if got := p.Shade(base, 8); got != want {
		t.Errorf("Shade(base, 8) = %v, want %v", got, want)
	}
}

func TestSetDepthFade(t *testing.T) {
	p := New(viewHeight, nil)
	p.SetDepthFade(0)
	if got := p.Intensity(50); got != 255 {
		t.Errorf("Intensity(50) with no fade = %v, want 255", got)
	}
	p.SetDepthFade(-4)
	if got := p.Intensity(50); got != 255 {
		t.Errorf("Intensity(50) with negative fade = %v, want 255", got)
	}
}

func TestProject_TwoTone(t *testing.T) {
	p := New(viewHeight, nil)
	p.SetDepthFade(0)

	x, err := p.Project(raycast.Hit{Column: 4, Hit: true, Cell: 1, Side: raycast.SideX, Distance: 2})
	if err != nil {
		t.Fatalf("Project(type 1) err = %v", err)
	}
	if x.Color != (color.RGBA{216, 191, 216, 255}) {
		t.Errorf("side X color = %v, want thistle", x.Color)
	}
	if x.Column != 4 || !x.Visible {
		t.Errorf("segment = %+v, want visible column 4", x)
	}

	y, _ := p.Project(raycast.Hit{Hit: true, Cell: 1, Side: raycast.SideY, Distance: 2})
	if y.Color != (color.RGBA{221, 160, 221, 255}) {
		t.Errorf("side Y color = %v, want plum", y.Color)
	}
}

func TestProject_Miss(t *testing.T) {
	p := New(viewHeight, nil)
	seg, err := p.Project(raycast.Hit{Column: 9})
	if err != nil {
		t.Errorf("Project(miss) err = %v, want nil", err)
	}
	if seg.Visible {
		t.Error("Project(miss).Visible = true, want false")
	}
}

func TestProject_UnsupportedWallType(t *testing.T) {
	p := New(viewHeight, Palette{1: DefaultPalette()[1]})
	p.SetDepthFade(0)

	seg, err := p.Project(raycast.Hit{Hit: true, Cell: 7, Distance: 3})
	if !errors.Is(err, ErrUnsupportedWallType) {
		t.Fatalf("Project(type 7) err = %v, want ErrUnsupportedWallType", err)
	}
	if !seg.Visible || seg.Color != FallbackColors.X {
		t.Errorf("fallback segment = %+v, want visible with %v", seg, FallbackColors.X)
	}
}

func TestProjectFrame_ContinuesPastUnsupported(t *testing.T) {
	p := New(viewHeight, Palette{1: DefaultPalette()[1]})
	hits := []raycast.Hit{
		{Column: 0, Hit: true, Cell: 1, Distance: 2},
		{Column: 1, Hit: true, Cell: 5, Distance: 2},
		{Column: 2},
		{Column: 3, Hit: true, Cell: 5, Distance: 2},
		{Column: 4, Hit: true, Cell: 6, Distance: 2},
	}
	segs, unsupported := p.ProjectFrame(hits, nil)
	if len(segs) != len(hits) {
		t.Fatalf("ProjectFrame returned %d segments, want %d", len(segs), len(hits))
	}
	if len(unsupported) != 2 || unsupported[0] != 5 || unsupported[1] != 6 {
		t.Errorf("unsupported = %v, want [5 6]", unsupported)
	}
	for i, s := range segs {
		if s.Column != i {
			t.Errorf("segs[%d].Column = %d", i, s.Column)
		}
	}
	if segs[2].Visible {
		t.Error("miss column is visible")
	}
}

func TestEndToEnd_BorderedGrid(t *testing.T) {
	const width = 800
	caster := raycast.New(world.NewBorderedGrid(10, 10), 2)
	pose := camera.New(3, 3, -1, 0, 60)
	proj := New(viewHeight, nil)

	hit := caster.CastColumn(pose, width/2, width)
	seg, err := proj.Project(hit)
	if err != nil {
		t.Fatalf("Project: %v", err)
	}

	lh := proj.LineHeight(hit.Distance)
	want := int(math.Floor(viewHeight / (hit.Distance + epsilon)))
	if lh != want {
		t.Errorf("LineHeight = %d, want %d", lh, want)
	}
	if lh < viewHeight/2-1 || lh > viewHeight/2 {
		t.Errorf("LineHeight = %d, want about %d for a wall 2 units away", lh, viewHeight/2)
	}
	if seg.YStart != viewHeight/2-lh/2 || seg.YEnd != viewHeight/2+lh/2 {
		t.Errorf("extent = (%d,%d), want centered on %d", seg.YStart, seg.YEnd, viewHeight/2)
	}
}
