package ebiten

import "image/color"

// Color palette for the overlays
var (
	colorPanelBackground = color.RGBA{30, 30, 50, 220}   // Semi-transparent dark
	colorPanelBorder     = color.RGBA{80, 80, 100, 255}  // Panel outline
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
)

// Layout
const (
	hudMargin      = 10  // HUD text inset from the top-left corner
	hudLineSpacing = 30  // vertical distance between HUD lines
	hudFontSize    = 18  // HUD font size at a 600px tall window
	minFontSize    = 10  // smallest font size at any window size
	baseHeight     = 600 // window height the font sizes are tuned for

	maxVisibleMessages = 4
	messageLifetime    = 10000 // 10 seconds in milliseconds

	stickDeadZone = 0.5 // Threshold to avoid drift
)
