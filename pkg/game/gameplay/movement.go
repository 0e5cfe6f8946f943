// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	"raycaster/pkg/game/player"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/state"
)

// MovePlayer applies one movement command. A step into a wall leaves the player where
// they were, plays the bump cue and logs the block.
func MovePlayer(g *state.Game, cmd player.MoveCommand) bool {
	if g.Player.Move(cmd) {
		if !cmd.IsRotation() {
			g.Discover(g.Player.Cell())
		}
		return true
	}

	if g.Sound != nil {
		g.Sound.PlayBump()
	}
	// Holding a key against a wall blocks every tick; log it once
	blocked := formatMessage("BLOCKED")
	if n := len(g.Messages); n == 0 || g.Messages[n-1].Text != blocked {
		logMessage(g, "BLOCKED")
	}
	return false
}

// AdjustFOV widens (positive delta) or narrows the player's field of view.
// It returns false once the limit is reached.
func AdjustFOV(g *state.Game, delta int) bool {
	before := g.Player.FOV()
	g.Player.AdjustFOV(delta)
	return g.Player.FOV() != before
}

// formatMessage translates a message key and formats it with the active renderer's markup
func formatMessage(key string, a ...any) string {
	return renderer.FormatText(gotext.Get(key), a...)
}

func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(formatMessage(key, a...))
}
