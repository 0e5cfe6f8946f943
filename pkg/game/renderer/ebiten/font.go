package ebiten

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// loadFonts parses the embedded Go fonts
func (e *EbitenRenderer) loadFonts() error {
	mono, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return fmt.Errorf("load mono font: %w", err)
	}
	sans, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("load sans font: %w", err)
	}
	e.monoFontSource = mono
	e.sansFontSource = sans
	return nil
}

// getUIFontSize returns the font size for HUD and message text, scaled to the window height
func (e *EbitenRenderer) getUIFontSize(screenHeight int) float64 {
	size := hudFontSize * float64(screenHeight) / baseHeight
	if size < minFontSize {
		size = minFontSize
	}
	return size
}

// getMonoFontFace returns a cached monospace font face for the HUD
func (e *EbitenRenderer) getMonoFontFace(screenHeight int) *text.GoTextFace {
	e.refreshFaces(screenHeight)
	return e.cachedMonoFace
}

// getSansFontFace returns a cached sans-serif font face for messages
func (e *EbitenRenderer) getSansFontFace(screenHeight int) *text.GoTextFace {
	e.refreshFaces(screenHeight)
	return e.cachedSansFace
}

// refreshFaces rebuilds the faces when the size they need has changed
func (e *EbitenRenderer) refreshFaces(screenHeight int) {
	size := e.getUIFontSize(screenHeight)
	if e.cachedMonoFace != nil && e.cachedUIFontSize == size {
		return
	}
	e.cachedUIFontSize = size
	e.cachedMonoFace = &text.GoTextFace{Source: e.monoFontSource, Size: size}
	e.cachedSansFace = &text.GoTextFace{Source: e.sansFontSource, Size: size}
}
