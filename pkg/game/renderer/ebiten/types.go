// Package ebiten provides an Ebiten-based window renderer for the raycaster.
package ebiten

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/game/frame"
)

// Options configures the window
type Options struct {
	Width       int
	Height      int
	Title       string
	MinimapSize int // pixels across; 0 hides the minimap whatever the frame says
}

// renderSnapshot holds the frame to draw and any messages shown outside the game log.
// This prevents jitter from races between the game loop and Ebiten's Draw.
type renderSnapshot struct {
	valid bool
	frame *frame.Frame
}

// EbitenRenderer is the Ebiten-based graphical renderer
type EbitenRenderer struct {
	opts Options

	// Current window size, updated from Layout
	windowWidth  int
	windowHeight int
	sizeMutex    sync.RWMutex

	// Font sources for text rendering
	monoFontSource *text.GoTextFaceSource // Monospace font for the HUD
	sansFontSource *text.GoTextFaceSource // Sans-serif font for messages

	// Cached font faces (recreated when the window height changes)
	cachedUIFontSize float64
	cachedMonoFace   *text.GoTextFace
	cachedSansFace   *text.GoTextFace

	// Cached render snapshot for consistent drawing
	snapshot      renderSnapshot
	snapshotMutex sync.RWMutex

	// Input channel for one-shot intents (toggles, dump, quit) from Update to the game loop
	inputChan chan engineinput.Intent

	// Held actions seen since the last GetInput, and those down on the latest Update
	held      map[engineinput.Action]bool
	heldNow   map[engineinput.Action]bool
	heldMutex sync.Mutex

	// Scratch buffers reused by Update
	keys []ebiten.Key
	pads []ebiten.GamepadID

	// Messages shown with ShowMessage, drawn above the game log
	trackedMessages []messageEntry
	messagesMutex   sync.RWMutex

	// stopping is set when the game loop has returned; Update then ends the run
	stopping atomic.Bool

	// closed is set once the window has been closed by the user
	closed atomic.Bool

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// messageEntry represents a message with timestamp for fade-out
type messageEntry struct {
	Text      string
	Timestamp int64 // Unix timestamp in milliseconds when message was added
}
