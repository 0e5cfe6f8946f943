package input

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveForward
	ActionMoveBackward
	ActionStrafeLeft
	ActionStrafeRight
	ActionRotateLeft
	ActionRotateRight

	// View
	ActionFOVNarrow
	ActionFOVWiden

	// Meta / UI
	ActionToggleMinimap
	ActionToggleDebug // FPS / FOV / position overlay
	ActionDumpMap     // Write map.txt (F9)
	ActionScreenshot  // Save the current frame as PNG (F12)
	ActionQuit
)

// allActions lists every bindable action in display order
var allActions = []Action{
	ActionMoveForward,
	ActionMoveBackward,
	ActionStrafeLeft,
	ActionStrafeRight,
	ActionRotateLeft,
	ActionRotateRight,
	ActionFOVNarrow,
	ActionFOVWiden,
	ActionToggleMinimap,
	ActionToggleDebug,
	ActionDumpMap,
	ActionScreenshot,
	ActionQuit,
}

// AllActions returns every bindable action
func AllActions() []Action {
	out := make([]Action, len(allActions))
	copy(out, allActions)
	return out
}

// IsHeld reports whether the action repeats every tick while its key is down.
// Other actions fire once per key press.
func (a Action) IsHeld() bool {
	switch a {
	case ActionMoveForward, ActionMoveBackward,
		ActionStrafeLeft, ActionStrafeRight,
		ActionRotateLeft, ActionRotateRight,
		ActionFOVNarrow, ActionFOVWiden:
		return true
	}
	return false
}

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "w", "arrow_up", "gamepad_dpad_up").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
// Codes are normalised to lower case so "W" and "w" bind the same.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   strings.ToLower(raw.Code),
	}
}

// defaultBindings is the initial code to action table
var defaultBindings = map[string]Action{
	// Movement (WASD + arrows)
	"w":           ActionMoveForward,
	"arrow_up":    ActionMoveForward,
	"s":           ActionMoveBackward,
	"arrow_down":  ActionMoveBackward,
	"a":           ActionRotateLeft,
	"arrow_left":  ActionRotateLeft,
	"d":           ActionRotateRight,
	"arrow_right": ActionRotateRight,
	"z":           ActionStrafeLeft,
	"c":           ActionStrafeRight,

	// Field of view
	"q": ActionFOVNarrow,
	"e": ActionFOVWiden,

	// Overlays
	"m":   ActionToggleMinimap,
	"f3":  ActionToggleDebug,
	"tab": ActionToggleDebug,
	"f9":  ActionDumpMap,
	"f12": ActionScreenshot,
	"p":   ActionScreenshot,

	// Quit
	"quit":   ActionQuit,
	"escape": ActionQuit,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionMoveForward,
	"gamepad_dpad_down":  ActionMoveBackward,
	"gamepad_dpad_left":  ActionRotateLeft,
	"gamepad_dpad_right": ActionRotateRight,
	"gamepad_lb":         ActionStrafeLeft,
	"gamepad_rb":         ActionStrafeRight,
	"gamepad_x":          ActionToggleMinimap,
	"gamepad_back":       ActionToggleDebug,
	"gamepad_b":          ActionQuit,
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = cloneBindings(defaultBindings)

func cloneBindings(src map[string]Action) map[string]Action {
	out := make(map[string]Action, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

// ResetBindings restores the default bindings
func ResetBindings() {
	bindings = cloneBindings(defaultBindings)
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// MapCode runs a raw code from a device through every layer
func MapCode(device Device, code string) Intent {
	return MapToIntent(NewDebouncedInput(RawInput{
		Device:    device,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveForward:
		return "Move Forward"
	case ActionMoveBackward:
		return "Move Backward"
	case ActionStrafeLeft:
		return "Strafe Left"
	case ActionStrafeRight:
		return "Strafe Right"
	case ActionRotateLeft:
		return "Rotate Left"
	case ActionRotateRight:
		return "Rotate Right"
	case ActionFOVNarrow:
		return "Narrow FOV"
	case ActionFOVWiden:
		return "Widen FOV"
	case ActionToggleMinimap:
		return "Toggle Minimap"
	case ActionToggleDebug:
		return "Toggle Debug"
	case ActionDumpMap:
		return "Dump Map"
	case ActionScreenshot:
		return "Screenshot"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// ParseAction finds an action by its ActionName, ignoring case and spaces
func ParseAction(name string) (Action, error) {
	want := strings.ReplaceAll(strings.ToLower(name), " ", "")
	for _, a := range allActions {
		if strings.ReplaceAll(strings.ToLower(ActionName(a)), " ", "") == want {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}

// isReservedCode reports codes that can never be rebound
func isReservedCode(code string) bool {
	switch code {
	case "arrow_up", "arrow_down", "arrow_left", "arrow_right", "escape":
		return true
	}
	return false
}

// SetSingleBinding replaces all bindings for the given action with a single code.
// Arrow keys and Escape keep their default meaning.
func SetSingleBinding(action Action, code string) {
	code = strings.ToLower(code)
	for c, a := range bindings {
		if isReservedCode(c) {
			continue
		}
		if a == action {
			delete(bindings, c)
		}
	}
	if code != "" && !isReservedCode(code) {
		bindings[code] = action
	}
}
