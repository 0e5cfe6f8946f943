// Package terminal provides terminal sizing and the few ANSI control sequences the
// text renderer needs to redraw in place.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI control sequences
const (
	enterAltScreen = "\x1b[?1049h"
	exitAltScreen  = "\x1b[?1049l"
	hideCursor     = "\x1b[?25l"
	showCursor     = "\x1b[?25h"
	cursorHome     = "\x1b[H"
	clearScreen    = "\x1b[2J"
	eraseLine      = "\x1b[K"
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// EnterFullscreen switches to the alternate screen and hides the cursor
func EnterFullscreen(w io.Writer) {
	io.WriteString(w, enterAltScreen+hideCursor+clearScreen+cursorHome)
}

// ExitFullscreen restores the cursor and the main screen
func ExitFullscreen(w io.Writer) {
	io.WriteString(w, showCursor+exitAltScreen)
}

// Home moves the cursor to the top-left corner without clearing
func Home(w io.Writer) {
	io.WriteString(w, cursorHome)
}

// Clear erases the screen and homes the cursor
func Clear(w io.Writer) {
	io.WriteString(w, clearScreen+cursorHome)
}

// EraseLine clears from the cursor to the end of the line
func EraseLine(w io.Writer) {
	io.WriteString(w, eraseLine)
}
