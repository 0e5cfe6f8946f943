package ebiten

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/state"
)

func TestKeyCode(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want string
	}{
		{ebiten.KeyW, "w"},
		{ebiten.KeyArrowUp, "arrow_up"},
		{ebiten.KeyF9, "f9"},
		{ebiten.KeyEscape, "escape"},
		{ebiten.KeyTab, "tab"},
		{ebiten.KeyDigit1, "1"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := keyCode(tt.key); got != tt.want {
				t.Errorf("keyCode(%v) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestStickCodes(t *testing.T) {
	if got := stickCodes(0.1, -0.2); len(got) != 0 {
		t.Errorf("stickCodes in dead zone = %v, want none", got)
	}
	got := stickCodes(-0.9, 0.9)
	if len(got) != 2 || got[0] != "gamepad_dpad_left" || got[1] != "gamepad_dpad_down" {
		t.Errorf("stickCodes(-0.9, 0.9) = %v", got)
	}
}

func TestGetInput_HeldActionsCarryOverUntilReleased(t *testing.T) {
	e := New(Options{})

	e.held[engineinput.ActionMoveForward] = true
	e.heldNow[engineinput.ActionMoveForward] = true
	e.queueOneShot(engineinput.Intent{Action: engineinput.ActionToggleMinimap})
	e.queueOneShot(engineinput.Intent{Action: engineinput.ActionMoveForward}) // held actions are not queued

	got := e.GetInput()
	if len(got) != 2 {
		t.Fatalf("GetInput() = %v, want toggle + forward", got)
	}
	if got[0].Action != engineinput.ActionToggleMinimap || got[1].Action != engineinput.ActionMoveForward {
		t.Errorf("GetInput() = %v", got)
	}

	// Still held: forward again, toggle consumed
	if got := e.GetInput(); len(got) != 1 || got[0].Action != engineinput.ActionMoveForward {
		t.Errorf("second GetInput() = %v, want forward", got)
	}

	// Released
	e.heldNow = map[engineinput.Action]bool{}
	e.GetInput()
	if got := e.GetInput(); len(got) != 0 {
		t.Errorf("GetInput() after release = %v, want none", got)
	}
}

func TestGetInput_QuitsAfterWindowClosed(t *testing.T) {
	e := New(Options{})
	e.closed.Store(true)
	got := e.GetInput()
	if len(got) != 1 || got[0].Action != engineinput.ActionQuit {
		t.Errorf("GetInput() = %v, want quit", got)
	}
}

func TestMessageAlpha(t *testing.T) {
	tests := []struct {
		age  int64
		want float64
	}{
		{0, 1},
		{7000, 1},
		{8500, 0.5},
		{10000, 0},
		{20000, 0},
	}
	for _, tt := range tests {
		if got := messageAlpha(tt.age); got != tt.want {
			t.Errorf("messageAlpha(%d) = %v, want %v", tt.age, got, tt.want)
		}
	}
}

func TestVisibleMessages(t *testing.T) {
	e := New(Options{})
	now := int64(100000)
	e.trackedMessages = []messageEntry{
		{Text: "old", Timestamp: now - messageLifetime},
		{Text: "shown", Timestamp: now - 50},
	}
	game := []state.Message{
		{Text: "a", Timestamp: now - 400},
		{Text: "b", Timestamp: now - 300},
		{Text: "c", Timestamp: now - 200},
		{Text: "d", Timestamp: now - 100},
	}

	got := e.visibleMessages(game, now)
	want := []string{"b", "c", "d", "shown"}
	if len(got) != len(want) {
		t.Fatalf("visibleMessages() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i].Text != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i].Text, want[i])
		}
	}
	if len(e.trackedMessages) != 1 {
		t.Errorf("expired tracked message kept: %v", e.trackedMessages)
	}
}

func TestStyleText(t *testing.T) {
	e := New(Options{})
	got := e.FormatText("Saved "+e.StyleText("%s", renderer.StyleItem), "map.txt")
	if got != "Saved ITEM{map.txt}" {
		t.Errorf("FormatText = %q", got)
	}
}
