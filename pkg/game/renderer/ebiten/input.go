package ebiten

import (
	"log"
	"strings"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "raycaster/pkg/engine/input"
)

// gamepadButtons maps standard-layout buttons to gamepad codes
var gamepadButtons = map[ebiten.StandardGamepadButton]string{
	ebiten.StandardGamepadButtonLeftTop:       "gamepad_dpad_up",
	ebiten.StandardGamepadButtonLeftBottom:    "gamepad_dpad_down",
	ebiten.StandardGamepadButtonLeftLeft:      "gamepad_dpad_left",
	ebiten.StandardGamepadButtonLeftRight:     "gamepad_dpad_right",
	ebiten.StandardGamepadButtonRightBottom:   "gamepad_a",
	ebiten.StandardGamepadButtonRightRight:    "gamepad_b",
	ebiten.StandardGamepadButtonRightLeft:     "gamepad_x",
	ebiten.StandardGamepadButtonRightTop:      "gamepad_y",
	ebiten.StandardGamepadButtonFrontTopLeft:  "gamepad_lb",
	ebiten.StandardGamepadButtonFrontTopRight: "gamepad_rb",
	ebiten.StandardGamepadButtonCenterLeft:    "gamepad_back",
	ebiten.StandardGamepadButtonCenterRight:   "gamepad_start",
}

// keyCode converts an Ebiten key to the code used by the bindings:
// "ArrowUp" becomes "arrow_up", "A" becomes "a" and "Digit1" becomes "1"
func keyCode(k ebiten.Key) string {
	name := strings.TrimPrefix(k.String(), "Digit")

	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) && i > 0 {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// Update polls the keyboard and gamepads.
// This is called by Ebiten's game loop
func (e *EbitenRenderer) Update() error {
	if e.stopping.Load() {
		return ebiten.Termination
	}

	if !e.windowOpenedLogged {
		w, h := e.GetViewportSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
		e.windowOpenedLogged = true
	}

	heldNow := make(map[engineinput.Action]bool)
	e.checkInput(heldNow)
	e.checkGamepadInput(heldNow)

	e.heldMutex.Lock()
	for a := range heldNow {
		e.held[a] = true
	}
	e.heldNow = heldNow
	e.heldMutex.Unlock()

	return nil
}

// checkInput records held keyboard actions and queues one-shot actions on key press
func (e *EbitenRenderer) checkInput(heldNow map[engineinput.Action]bool) {
	e.keys = inpututil.AppendPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		intent := engineinput.MapCode(engineinput.DeviceKeyboard, keyCode(k))
		if intent.Action.IsHeld() {
			heldNow[intent.Action] = true
		}
	}

	e.keys = inpututil.AppendJustPressedKeys(e.keys[:0])
	for _, k := range e.keys {
		e.queueOneShot(engineinput.MapCode(engineinput.DeviceKeyboard, keyCode(k)))
	}
}

// checkGamepadInput does the same for every connected gamepad with a standard layout.
// The left stick acts as the d-pad.
func (e *EbitenRenderer) checkGamepadInput(heldNow map[engineinput.Action]bool) {
	e.pads = ebiten.AppendGamepadIDs(e.pads[:0])

	for _, id := range e.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		for button, code := range gamepadButtons {
			intent := engineinput.MapCode(engineinput.DeviceGamepad, code)
			switch {
			case intent.Action.IsHeld():
				if ebiten.IsStandardGamepadButtonPressed(id, button) {
					heldNow[intent.Action] = true
				}
			case inpututil.IsStandardGamepadButtonJustPressed(id, button):
				e.queueOneShot(intent)
			}
		}

		stickX := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		stickY := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		for _, code := range stickCodes(stickX, stickY) {
			if intent := engineinput.MapCode(engineinput.DeviceGamepad, code); intent.Action.IsHeld() {
				heldNow[intent.Action] = true
			}
		}
	}
}

// stickCodes returns the d-pad codes an analog stick position stands for
func stickCodes(x, y float64) []string {
	var codes []string
	if x < -stickDeadZone {
		codes = append(codes, "gamepad_dpad_left")
	} else if x > stickDeadZone {
		codes = append(codes, "gamepad_dpad_right")
	}
	if y < -stickDeadZone {
		codes = append(codes, "gamepad_dpad_up")
	} else if y > stickDeadZone {
		codes = append(codes, "gamepad_dpad_down")
	}
	return codes
}

// queueOneShot sends a non-held intent to the game loop, dropping it if the queue is full
func (e *EbitenRenderer) queueOneShot(intent engineinput.Intent) {
	if intent.Action == engineinput.ActionNone || intent.Action.IsHeld() {
		return
	}
	select {
	case e.inputChan <- intent:
	default:
		log.Printf("Input queue full, dropping %s", engineinput.ActionName(intent.Action))
	}
}

// GetInput returns queued one-shot intents and one intent for every held action seen
// since the last call. Once the window is closed it returns a quit intent.
func (e *EbitenRenderer) GetInput() []engineinput.Intent {
	var intents []engineinput.Intent

	if e.closed.Load() {
		return []engineinput.Intent{{Action: engineinput.ActionQuit}}
	}

drain:
	for {
		select {
		case intent := <-e.inputChan:
			intents = append(intents, intent)
		default:
			break drain
		}
	}

	e.heldMutex.Lock()
	for _, a := range engineinput.AllActions() {
		if e.held[a] {
			intents = append(intents, engineinput.Intent{Action: a})
		}
	}
	// Keys still down carry over; keys released since are dropped
	e.held = make(map[engineinput.Action]bool, len(e.heldNow))
	for a := range e.heldNow {
		e.held[a] = true
	}
	e.heldMutex.Unlock()

	return intents
}

// Layout records the window size and uses it as the logical screen size.
// This is called by Ebiten's game loop
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.sizeMutex.Lock()
	defer e.sizeMutex.Unlock()

	if outsideWidth > 0 && outsideHeight > 0 {
		e.windowWidth = outsideWidth
		e.windowHeight = outsideHeight
	}
	return e.windowWidth, e.windowHeight
}
