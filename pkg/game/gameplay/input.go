package gameplay

import (
	"log"

	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/game/config"
	"raycaster/pkg/game/devtools"
	"raycaster/pkg/game/frame"
	"raycaster/pkg/game/player"
	"raycaster/pkg/game/state"
)

// moveCommands maps movement actions to player commands
var moveCommands = map[engineinput.Action]player.MoveCommand{
	engineinput.ActionMoveForward:  player.Forward,
	engineinput.ActionMoveBackward: player.Backward,
	engineinput.ActionStrafeLeft:   player.StrafeLeft,
	engineinput.ActionStrafeRight:  player.StrafeRight,
	engineinput.ActionRotateLeft:   player.RotateLeft,
	engineinput.ActionRotateRight:  player.RotateRight,
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if cmd, ok := moveCommands[intent.Action]; ok {
		MovePlayer(g, cmd)
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionFOVNarrow:
		AdjustFOV(g, -1)

	case engineinput.ActionFOVWiden:
		AdjustFOV(g, 1)

	case engineinput.ActionToggleMinimap:
		g.ShowMinimap = !g.ShowMinimap

	case engineinput.ActionToggleDebug:
		g.ShowDebug = !g.ShowDebug

	case engineinput.ActionDumpMap:
		path, err := devtools.DumpMapToFile(g, config.Current().DumpDir)
		if err != nil {
			log.Printf("map dump failed: %v", err)
			logMessage(g, "MAP_DUMP_FAILED", err.Error())
		} else {
			logMessage(g, "MAP_DUMPED", path)
		}

	case engineinput.ActionScreenshot:
		g.ScreenshotRequested = true

	case engineinput.ActionQuit:
		g.Quit = true
	}
}

// saveScreenshot writes f next to the map dumps and reports where it went
func saveScreenshot(g *state.Game, f *frame.Frame) {
	cfg := config.Current()
	path, err := devtools.SaveScreenshot(f, cfg.DumpDir, cfg.Render.MinimapSize)
	if err != nil {
		log.Printf("screenshot failed: %v", err)
		logMessage(g, "SCREENSHOT_FAILED", err.Error())
		return
	}
	logMessage(g, "SCREENSHOT_SAVED", path)
}

// ProcessIntents handles every intent gathered in one tick, in order. Each action is
// applied at most once per tick, so a key reported by two devices does not double-step.
func ProcessIntents(g *state.Game, intents []engineinput.Intent) {
	var seen [engineinput.ActionQuit + 1]bool
	for _, intent := range intents {
		a := intent.Action
		if a >= 0 && int(a) < len(seen) {
			if seen[a] {
				continue
			}
			seen[a] = true
		}
		ProcessIntent(g, intent)
		if g.Quit {
			return
		}
	}
}
