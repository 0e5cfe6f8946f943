package ebiten

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "raycaster/pkg/engine/input"
	"raycaster/pkg/game/renderer"
)

// New creates a new Ebiten renderer
func New(opts Options) *EbitenRenderer {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	if opts.Title == "" {
		opts.Title = "Raycaster"
	}
	return &EbitenRenderer{
		opts:         opts,
		windowWidth:  opts.Width,
		windowHeight: opts.Height,
		inputChan:    make(chan engineinput.Intent, 64),
		held:         make(map[engineinput.Action]bool),
		heldNow:      make(map[engineinput.Action]bool),
	}
}

// Init sets up the window and loads fonts
func (e *EbitenRenderer) Init() error {
	if err := e.loadFonts(); err != nil {
		return err
	}

	ebiten.SetWindowSize(e.opts.Width, e.opts.Height)
	ebiten.SetWindowTitle(e.opts.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return nil
}

// StyleText wraps text in the markup for the given style, which Draw turns into color
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return renderer.Markup(text, style)
}

// FormatText keeps markup in place; it is parsed into colors when drawn
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatMarkup(msg, args...)
}

// ShowMessage displays a message in the message panel
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.trackMessage(msg)
}

// GetViewportSize returns the current window size in pixels
func (e *EbitenRenderer) GetViewportSize() (width, height int) {
	e.sizeMutex.RLock()
	defer e.sizeMutex.RUnlock()

	return e.windowWidth, e.windowHeight
}

// Run opens the window and runs loop on its own goroutine, since Ebiten needs the
// main goroutine. Closing the window makes GetInput report quit so loop can return.
func (e *EbitenRenderer) Run(loop func() error) error {
	loopErr := make(chan error, 1)
	go func() {
		loopErr <- loop()
		e.stopping.Store(true)
	}()

	err := ebiten.RunGame(e)
	e.closed.Store(true)
	if err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}

	return <-loopErr
}

// Close stops the window if it is still open
func (e *EbitenRenderer) Close() {
	if !e.stopping.Swap(true) {
		log.Printf("Closing window")
	}
}
