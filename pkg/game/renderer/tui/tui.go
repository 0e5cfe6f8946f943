// Package tui draws frames as ANSI half-block characters on a plain terminal.
package tui

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"strings"
	"sync"

	gcolor "github.com/gookit/color"

	"raycaster/pkg/engine/input"
	"raycaster/pkg/engine/terminal"
	"raycaster/pkg/game/frame"
	"raycaster/pkg/game/renderer"
)

// HalfBlock is drawn in every character cell: the foreground paints the top pixel and
// the background the bottom one
const HalfBlock = "▀"

// Lines below the view
const (
	hudLines     = 1 // debug overlay, joined on one line
	messageLines = 4
	reservedRows = hudLines + messageLines
	minViewRows  = 4
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out io.Writer
	buf *bufio.Writer

	colorItem   gcolor.Style
	colorDenied gcolor.Style
	colorSubtle gcolor.Style
	colorHUD    gcolor.Style

	keys *input.KeyReader

	// Messages from ShowMessage, shown after the game log
	shown   []string
	shownMu sync.Mutex

	// Terminal size at the last frame; a change clears the screen
	lastCols, lastRows int
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout}
}

// Init sets up colors, switches the terminal to raw mode and enters the alternate screen
func (t *TUIRenderer) Init() error {
	t.colorItem = gcolor.Style{gcolor.FgMagenta}
	t.colorDenied = gcolor.Style{gcolor.FgRed, gcolor.OpBold}
	t.colorSubtle = gcolor.Style{gcolor.FgGray, gcolor.OpBold}
	t.colorHUD = gcolor.Style{gcolor.FgWhite, gcolor.OpBold}

	keys, err := input.NewKeyReader()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	t.keys = keys

	t.buf = bufio.NewWriterSize(t.out, 64*1024)
	terminal.EnterFullscreen(t.buf)
	return t.buf.Flush()
}

// GetInput returns the intents for every key pressed since the last call.
// Terminals report no key releases, so a held key repeats at the keyboard's rate.
// A closed stdin reads as quit.
func (t *TUIRenderer) GetInput() []input.Intent {
	if t.keys == nil {
		return nil
	}
	codes, err := t.keys.Poll()
	intents := make([]input.Intent, 0, len(codes))
	for _, code := range codes {
		if intent := input.MapCode(input.DeviceTerminal, code); intent.Action != input.ActionNone {
			intents = append(intents, intent)
		}
	}
	if err != nil {
		intents = append(intents, input.Intent{Action: input.ActionQuit})
	}
	return intents
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleHUD:
		return t.colorHUD.Sprint(text)
	default:
		return text
	}
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ExpandMarkup(func(function, operand string) string {
		return t.StyleText(operand, renderer.MarkupStyle(function))
	}, msg, args...)
}

// ShowMessage queues a message for the message lines
func (t *TUIRenderer) ShowMessage(msg string) {
	t.shownMu.Lock()
	defer t.shownMu.Unlock()

	t.shown = append(t.shown, msg)
	if len(t.shown) > messageLines {
		t.shown = t.shown[len(t.shown)-messageLines:]
	}
}

// GetViewportSize returns the view size in pixels: one column per character and two
// rows per line, less the lines kept for text
func (t *TUIRenderer) GetViewportSize() (width, height int) {
	cols, rows := terminal.GetSize()
	return ViewportFor(cols, rows)
}

// ViewportFor converts a terminal of cols x rows characters to view pixels
func ViewportFor(cols, rows int) (width, height int) {
	viewRows := rows - reservedRows
	if viewRows < minViewRows {
		viewRows = minViewRows
	}
	return cols, viewRows * 2
}

// RenderFrame draws the frame, the HUD line and the message lines in place
func (t *TUIRenderer) RenderFrame(f *frame.Frame) {
	if t.buf == nil || f == nil {
		return
	}

	cols, rows := terminal.GetSize()
	if cols != t.lastCols || rows != t.lastRows {
		terminal.Clear(t.buf)
		t.lastCols, t.lastRows = cols, rows
	} else {
		terminal.Home(t.buf)
	}

	img := renderer.Rasterize(f, renderer.TerminalMinimapSize(f.Width, f.Height))
	WriteHalfBlocks(t.buf, img)

	hud := t.StyleText(strings.Join(f.Debug, "  "), renderer.StyleHUD)
	io.WriteString(t.buf, hud)
	terminal.EraseLine(t.buf)
	io.WriteString(t.buf, "\r\n")

	for i, line := range t.messageLines(f) {
		io.WriteString(t.buf, t.FormatText(line))
		terminal.EraseLine(t.buf)
		if i < messageLines-1 {
			io.WriteString(t.buf, "\r\n")
		}
	}

	t.buf.Flush()
}

// messageLines returns exactly messageLines lines: the latest game and shown messages,
// padded with blanks at the top
func (t *TUIRenderer) messageLines(f *frame.Frame) []string {
	var all []string
	for _, m := range f.Messages {
		all = append(all, m.Text)
	}
	t.shownMu.Lock()
	all = append(all, t.shown...)
	t.shownMu.Unlock()

	if len(all) > messageLines {
		all = all[len(all)-messageLines:]
	}
	lines := make([]string, messageLines-len(all), messageLines)
	return append(lines, all...)
}

// WriteHalfBlocks writes img as rows of half-block characters, two pixel rows per line.
// Runs of identical cells share one escape sequence. An odd last row is paired with
// the background.
func WriteHalfBlocks(w io.Writer, img *image.RGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		var run strings.Builder
		var runTop, runBottom color.RGBA
		flush := func() {
			if run.Len() == 0 {
				return
			}
			style := gcolor.NewRGBStyle(rgb(runTop), rgb(runBottom))
			io.WriteString(w, style.Sprint(run.String()))
			run.Reset()
		}

		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := renderer.Background
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			if run.Len() > 0 && (top != runTop || bottom != runBottom) {
				flush()
			}
			runTop, runBottom = top, bottom
			run.WriteString(HalfBlock)
		}
		flush()
		io.WriteString(w, "\r\n")
	}
}

func rgb(c color.RGBA) gcolor.RGBColor {
	return gcolor.RGB(c.R, c.G, c.B)
}

// Run hands control straight to the game loop
func (t *TUIRenderer) Run(loop func() error) error {
	return loop()
}

// Close restores the terminal
func (t *TUIRenderer) Close() {
	if t.keys != nil {
		t.keys.Close()
		t.keys = nil
	}
	if t.buf != nil {
		terminal.ExitFullscreen(t.buf)
		t.buf.Flush()
	}
}
