package devtools

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"raycaster/pkg/game/frame"
	"raycaster/pkg/game/renderer"
)

// SaveScreenshot writes the frame, with its minimap at minimapSize pixels, as a PNG in dir
// (the working directory when empty) and returns the absolute path
func SaveScreenshot(f *frame.Frame, dir string, minimapSize int) (string, error) {
	if f == nil || f.Width <= 0 || f.Height <= 0 {
		return "", fmt.Errorf("nothing to capture")
	}
	if dir == "" {
		dir = "."
	}

	timestamp := time.Now().Format("20060102-150405")
	path, err := filepath.Abs(filepath.Join(dir, fmt.Sprintf("screenshot-%s-t%d.png", timestamp, f.Tick)))
	if err != nil {
		return "", err
	}

	out, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create screenshot: %w", err)
	}

	if err := png.Encode(out, renderer.Rasterize(f, minimapSize)); err != nil {
		out.Close()
		return "", fmt.Errorf("failed to encode screenshot: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", err
	}
	return path, nil
}
