package gameplay

import (
	"fmt"
	"log"
	"os"

	"raycaster/pkg/engine/camera"
	"raycaster/pkg/engine/raycast"
	"raycaster/pkg/engine/sound"
	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/config"
	"raycaster/pkg/game/player"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/state"
)

// BuildGame creates a new game on grid using the settings in cfg. Grids with no empty
// cell to stand in are rejected.
func BuildGame(cfg *config.Config, grid *world.Grid) (*state.Game, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	pose := SpawnPose(cfg, grid)
	p := player.New(pose, grid, cfg.Speeds())

	g := state.NewGame(grid, p, raycast.New(grid, cfg.Render.Workers))
	g.ShowMinimap = cfg.Render.Minimap
	g.ShowDebug = cfg.Render.Debug

	logMessage(g, "WELCOME")
	return g, nil
}

// SpawnPose returns the configured starting pose. When the configured cell is not empty
// the player is moved to the centre of the first empty cell in row-major order.
func SpawnPose(cfg *config.Config, grid *world.Grid) camera.Pose {
	pose := cfg.SpawnPose()
	if grid.IsWalkable(int(pose.X), int(pose.Y)) {
		return pose
	}

	c, ok := grid.FirstWalkable()
	if !ok {
		// world.Grid.Validate rejects these grids before a game is built
		return pose
	}
	log.Printf("spawn (%.2f, %.2f) is blocked, starting in cell %d,%d", pose.X, pose.Y, c.Row, c.Col)
	return pose.Moved(float64(c.Row)+0.5, float64(c.Col)+0.5)
}

// EnableSound opens the audio device and attaches it to the game. Failure leaves the
// game silent.
func EnableSound(g *state.Game) {
	m := sound.NewManager()
	if err := m.Initialize(); err != nil {
		reportSoundDisabled(err)
		return
	}
	g.Sound = m
}

// reportSoundDisabled warns on stderr and in the renderer's message area, which stays
// visible while the game log scrolls
func reportSoundDisabled(err error) {
	fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
	renderer.ShowMessage(renderer.StyleText(formatMessage("SOUND_DISABLED", err.Error()), renderer.StyleSubtle))
}

// Shutdown releases resources held by the game
func Shutdown(g *state.Game) {
	if g.Sound != nil {
		g.Sound.Close()
		g.Sound = nil
	}
}
