// Package clipboard publishes rendered frames to the system clipboard.
package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
)

var (
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
	// ErrUnsupported is returned where no clipboard backend is compiled in.
	ErrUnsupported = errors.New("clipboard is not supported in this build")
)

func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

// encodePNG returns img as PNG bytes, the only image format every backend accepts.
func encodePNG(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, errors.New("clipboard: nil image")
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
