package renderer

import (
	"raycaster/pkg/engine/input"
	"raycaster/pkg/game/frame"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleItem
	StyleDenied
	StyleSubtle
	StyleHUD
)

// Renderer defines the interface for game rendering backends
// Implementations include Ebiten (window), TUI (ANSI text) and Cell (tcell screen).
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init() error

	// RenderFrame draws a complete frame: wall columns, minimap, HUD and messages.
	// The renderer may keep f until the next call; the caller must not modify it.
	RenderFrame(f *frame.Frame)

	// GetInput returns the intents gathered since the last call, without blocking.
	// Held movement keys yield one intent per call.
	GetInput() []input.Intent

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user outside the frame
	ShowMessage(msg string)

	// GetViewportSize returns the size of the first-person view in pixels
	GetViewportSize() (width, height int)

	// Run hands control to the renderer and calls loop, which drives the game.
	// It returns when loop returns or the display is closed.
	Run(loop func() error) error

	// Close releases the display and restores the terminal
	Close()
}

// Default view size used before a display reports its own
const (
	DefaultViewportWidth  = 800
	DefaultViewportHeight = 600
)

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// StyleText applies a style to text. Without a renderer the style is kept as markup.
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return Markup(text, style)
}

// FormatText formats a message with markup. Without a renderer the markup is kept.
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return FormatMarkup(msg, args...)
}

// ShowMessage displays a message using the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}
