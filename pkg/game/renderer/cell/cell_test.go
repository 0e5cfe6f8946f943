package cell

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"raycaster/pkg/engine/projection"
	"raycaster/pkg/game/frame"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/state"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want string
	}{
		{tcell.KeyRune, 'W', "w"},
		{tcell.KeyUp, 0, "arrow_up"},
		{tcell.KeyEscape, 0, "escape"},
		{tcell.KeyF9, 0, "f9"},
		{tcell.KeyCtrlC, 0, "quit"},
		{tcell.KeyHome, 0, ""},
	}
	for _, tt := range tests {
		if got := KeyCode(tt.key, tt.r); got != tt.want {
			t.Errorf("KeyCode(%v, %q) = %q, want %q", tt.key, tt.r, got, tt.want)
		}
	}
}

func makeRenderer(t *testing.T, cols, rows int) *CellRenderer {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	r := New(s)
	if err := r.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(r.Close)
	return r
}

func TestGetViewportSize(t *testing.T) {
	r := makeRenderer(t, 80, 25)
	w, h := r.GetViewportSize()
	if w != 80 || h != 40 {
		t.Errorf("GetViewportSize() = %dx%d, want 80x40", w, h)
	}
}

func TestRenderFrame_DrawsHalfBlocksAndText(t *testing.T) {
	r := makeRenderer(t, 10, 7)
	wall := color.RGBA{200, 0, 0, 255}
	f := &frame.Frame{
		Width:  10,
		Height: 4,
		Segments: []projection.Segment{
			{Column: 0, YStart: 0, YEnd: 3, Color: wall, Visible: true},
		},
		Debug:    []string{"FPS"},
		Messages: []state.Message{{Text: "ITEM{hi}"}},
	}
	r.RenderFrame(f)

	if mainc, _, _, _ := r.screen.GetContent(0, 0); mainc != '▀' {
		t.Errorf("view cell = %q, want half block", mainc)
	}
	if mainc, _, _, _ := r.screen.GetContent(0, 2); mainc != 'F' {
		t.Errorf("HUD cell = %q, want 'F'", mainc)
	}
	if mainc, _, _, _ := r.screen.GetContent(0, 3); mainc != 'h' {
		t.Errorf("message cell = %q, want 'h'", mainc)
	}
}

func TestMessageLines_KeepsLatest(t *testing.T) {
	r := New(nil)
	for _, m := range []string{"a", "b", "c"} {
		r.ShowMessage(m)
	}
	f := &frame.Frame{Messages: []state.Message{{Text: "x"}, {Text: "y"}}}
	got := r.messageLines(f)
	want := []string{"y", "a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("messageLines() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStyleText_DrawnInColor(t *testing.T) {
	r := makeRenderer(t, 10, 7)
	msg := r.FormatText("x " + r.StyleText("%s", renderer.StyleDenied), "no")
	if msg != "x DENIED{no}" {
		t.Fatalf("FormatText = %q, want markup kept", msg)
	}

	r.ShowMessage(msg)
	r.RenderFrame(&frame.Frame{Width: 10, Height: 4})
	mainc, _, style, _ := r.screen.GetContent(2, 3)
	if mainc != 'n' {
		t.Fatalf("message cell = %q, want 'n'", mainc)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.ColorRed {
		t.Errorf("denied text color = %v, want red", fg)
	}
}
