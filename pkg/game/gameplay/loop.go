package gameplay

import (
	"time"

	"raycaster/pkg/game/frame"
	"raycaster/pkg/game/renderer"
	"raycaster/pkg/game/state"
)

// Loop runs the fixed-rate simulation: each tick reads input, applies it, builds a frame
// and hands it to the renderer
type Loop struct {
	Game     *state.Game
	Renderer renderer.Renderer
	Builder  *frame.Builder
	TPS      int

	now func() time.Time

	// tick rate measurement
	windowStart time.Time
	windowTicks int
}

// NewLoop creates a loop running at tps ticks per second
func NewLoop(g *state.Game, r renderer.Renderer, b *frame.Builder, tps int) *Loop {
	if tps < 1 {
		tps = 1
	}
	return &Loop{Game: g, Renderer: r, Builder: b, TPS: tps, now: time.Now}
}

// Step runs one tick. It returns false once the player has quit.
func (l *Loop) Step() bool {
	g := l.Game

	ProcessIntents(g, l.Renderer.GetInput())
	if g.Quit {
		return false
	}

	g.Tick++
	l.measure()

	width, height := l.Renderer.GetViewportSize()
	f := l.Builder.Build(g, width, height)
	if g.ScreenshotRequested {
		g.ScreenshotRequested = false
		saveScreenshot(g, f)
	}
	l.Renderer.RenderFrame(f)
	return true
}

// Run steps the game at the loop's tick rate until the player quits
func (l *Loop) Run() error {
	ticker := time.NewTicker(time.Second / time.Duration(l.TPS))
	defer ticker.Stop()

	for range ticker.C {
		if !l.Step() {
			return nil
		}
	}
	return nil
}

// measure updates the game's FPS once per second of wall time
func (l *Loop) measure() {
	now := l.now()
	if l.windowStart.IsZero() {
		l.windowStart = now
		return
	}
	l.windowTicks++

	elapsed := now.Sub(l.windowStart)
	if elapsed >= time.Second {
		l.Game.FPS = float64(l.windowTicks) / elapsed.Seconds()
		l.windowStart = now
		l.windowTicks = 0
	}
}
