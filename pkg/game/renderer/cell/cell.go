// Package cell draws frames through a tcell screen, two view pixels per character.
package cell

import (
	"fmt"
	"image/color"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"

	"raycaster/pkg/engine/input"
	"raycaster/pkg/game/frame"
	"raycaster/pkg/game/renderer"
)

// Lines below the view
const (
	messageLines = 4
	reservedRows = 1 + messageLines
	minViewRows  = 4
)

// CellRenderer renders through tcell
type CellRenderer struct {
	screen tcell.Screen

	// Intents read by the event goroutine, handed out by GetInput
	pending   []input.Intent
	pendingMu sync.Mutex

	shown   []string
	shownMu sync.Mutex

	closed atomic.Bool
	done   chan struct{}
}

// New creates a renderer for screen; a nil screen opens the real terminal in Init
func New(screen tcell.Screen) *CellRenderer {
	return &CellRenderer{screen: screen, done: make(chan struct{})}
}

// Init starts the screen and the event reader
func (c *CellRenderer) Init() error {
	if c.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("cell: failed to start tcell: %w", err)
		}
		c.screen = s
	}
	if err := c.screen.Init(); err != nil {
		return fmt.Errorf("cell: failed to init screen: %w", err)
	}
	c.screen.HideCursor()
	c.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	c.screen.Clear()

	go c.pollEvents()
	return nil
}

// pollEvents turns key events into intents until the screen is finalized
func (c *CellRenderer) pollEvents() {
	for {
		switch ev := c.screen.PollEvent().(type) {
		case nil:
			c.closed.Store(true)
			return
		case *tcell.EventKey:
			code := KeyCode(ev.Key(), ev.Rune())
			if code == "" {
				continue
			}
			if intent := input.MapCode(input.DeviceKeyboard, code); intent.Action != input.ActionNone {
				c.pendingMu.Lock()
				c.pending = append(c.pending, intent)
				c.pendingMu.Unlock()
			}
		case *tcell.EventResize:
			c.screen.Sync()
		}
	}
}

// KeyCode converts a tcell key to the code used by the bindings
func KeyCode(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyRune:
		return strings.ToLower(string(r))
	case tcell.KeyUp:
		return "arrow_up"
	case tcell.KeyDown:
		return "arrow_down"
	case tcell.KeyLeft:
		return "arrow_left"
	case tcell.KeyRight:
		return "arrow_right"
	case tcell.KeyEscape:
		return "escape"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyCtrlC:
		return "quit"
	}
	if key >= tcell.KeyF1 && key <= tcell.KeyF12 {
		return fmt.Sprintf("f%d", key-tcell.KeyF1+1)
	}
	return ""
}

// GetInput returns the intents read since the last call.
// Terminals report no key releases, so held keys repeat at the keyboard's rate.
func (c *CellRenderer) GetInput() []input.Intent {
	c.pendingMu.Lock()
	intents := c.pending
	c.pending = nil
	c.pendingMu.Unlock()

	if c.closed.Load() {
		intents = append(intents, input.Intent{Action: input.ActionQuit})
	}
	return intents
}

// StyleText wraps text in markup, which drawMarkup turns into cell colors
func (c *CellRenderer) StyleText(text string, style renderer.TextStyle) string {
	return renderer.Markup(text, style)
}

// FormatText formats a message, keeping the markup for drawMarkup
func (c *CellRenderer) FormatText(msg string, args ...any) string {
	return renderer.FormatMarkup(msg, args...)
}

// ShowMessage queues a message for the message lines
func (c *CellRenderer) ShowMessage(msg string) {
	c.shownMu.Lock()
	defer c.shownMu.Unlock()

	c.shown = append(c.shown, msg)
	if len(c.shown) > messageLines {
		c.shown = c.shown[len(c.shown)-messageLines:]
	}
}

// GetViewportSize returns the view size in pixels, two rows per character line
func (c *CellRenderer) GetViewportSize() (width, height int) {
	if c.screen == nil {
		return renderer.DefaultViewportWidth, renderer.DefaultViewportHeight
	}
	cols, rows := c.screen.Size()
	viewRows := rows - reservedRows
	if viewRows < minViewRows {
		viewRows = minViewRows
	}
	return cols, viewRows * 2
}

// RenderFrame draws the frame, the HUD line and the message lines
func (c *CellRenderer) RenderFrame(f *frame.Frame) {
	if c.screen == nil || f == nil {
		return
	}
	c.screen.Clear()

	img := renderer.Rasterize(f, renderer.TerminalMinimapSize(f.Width, f.Height))
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			bottom := renderer.Background
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			c.screen.SetContent(x, y/2, '▀', nil, halfBlockStyle(img.RGBAAt(x, y), bottom))
		}
	}

	row := (b.Dy() + 1) / 2
	hud := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(rgb(renderer.HUDText))
	c.drawString(0, row, strings.Join(f.Debug, "  "), hud)
	row++

	for _, line := range c.messageLines(f) {
		c.drawMarkup(0, row, line)
		row++
	}

	c.screen.Show()
}

// messageLines returns the latest game and shown messages, at most messageLines of them
func (c *CellRenderer) messageLines(f *frame.Frame) []string {
	var all []string
	for _, m := range f.Messages {
		all = append(all, m.Text)
	}
	c.shownMu.Lock()
	all = append(all, c.shown...)
	c.shownMu.Unlock()

	if len(all) > messageLines {
		all = all[len(all)-messageLines:]
	}
	return all
}

// drawMarkup draws a message, coloring marked-up parts by style
func (c *CellRenderer) drawMarkup(x, y int, msg string) {
	for _, seg := range renderer.ParseMarkup(msg) {
		x = c.drawString(x, y, seg.Text, textStyle(seg.Style))
	}
}

// drawString draws s from (x, y) and returns the column after it
func (c *CellRenderer) drawString(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func textStyle(s renderer.TextStyle) tcell.Style {
	base := tcell.StyleDefault.Background(tcell.ColorBlack)
	switch s {
	case renderer.StyleItem:
		return base.Foreground(tcell.ColorPurple)
	case renderer.StyleDenied:
		return base.Foreground(tcell.ColorRed).Bold(true)
	case renderer.StyleSubtle:
		return base.Foreground(tcell.ColorGray)
	default:
		return base.Foreground(tcell.ColorWhite)
	}
}

func halfBlockStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Run hands control straight to the game loop
func (c *CellRenderer) Run(loop func() error) error {
	return loop()
}

// Close finalizes the screen and restores the terminal
func (c *CellRenderer) Close() {
	if c.screen == nil {
		return
	}
	select {
	case <-c.done:
		return
	default:
		close(c.done)
	}
	c.screen.Fini()
}
