package state

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"raycaster/pkg/engine/raycast"
	"raycaster/pkg/engine/sound"
	"raycaster/pkg/engine/world"
	"raycaster/pkg/game/player"
)

// maxMessages is how many log lines are kept
const maxMessages = 5

// Message is a single log line with the time it was added
type Message struct {
	Text      string
	Timestamp int64 // Unix milliseconds
}

// Game represents the running session: the level, the player and UI toggles
type Game struct {
	Grid   *world.Grid
	Player *player.Player
	Caster *raycast.Caster

	// Sound plays feedback cues; nil means silent
	Sound *sound.Manager

	Messages []Message

	// Discovered holds every cell a ray has struck or the player has stood in
	Discovered world.CoordSet

	// WarnedWallTypes holds wall types already reported as missing from the palette
	WarnedWallTypes mapset.Set[world.CellType]

	ShowMinimap bool
	ShowDebug   bool

	// ScreenshotRequested asks the loop to save the next frame as a PNG
	ScreenshotRequested bool

	// MapPath is the file the level was loaded from, empty for built-in or generated levels
	MapPath string

	// Tick counts simulation steps; FPS is the measured tick rate
	Tick int
	FPS  float64

	Quit bool

	now func() time.Time
}

// NewGame creates a new game instance on a grid
func NewGame(grid *world.Grid, p *player.Player, caster *raycast.Caster) *Game {
	g := &Game{
		Grid:            grid,
		Player:          p,
		Caster:          caster,
		Messages:        make([]Message, 0),
		Discovered:      world.NewCoordSet(),
		WarnedWallTypes: mapset.New[world.CellType](),
		ShowMinimap:     true,
		now:             time.Now,
	}
	if p != nil {
		g.Discovered.Put(p.Cell())
	}
	return g
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, Message{Text: msg, Timestamp: g.now().UnixMilli()})

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]Message, 0)
}

// MessageTexts returns the text of each message, oldest first
func (g *Game) MessageTexts() []string {
	out := make([]string, len(g.Messages))
	for i, m := range g.Messages {
		out[i] = m.Text
	}
	return out
}

// Discover records a cell as seen. It returns true the first time a cell is seen.
func (g *Game) Discover(c world.Coord) bool {
	if g.Discovered.Has(c) {
		return false
	}
	g.Discovered.Put(c)
	return true
}

// IsDiscovered reports whether a cell has been seen
func (g *Game) IsDiscovered(row, col int) bool {
	return g.Discovered.Has(world.Coord{Row: row, Col: col})
}

// DiscoveredCount returns how many cells have been seen
func (g *Game) DiscoveredCount() int {
	return g.Discovered.Size()
}
