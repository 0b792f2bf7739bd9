// Package backdrop loads the picture drawn behind a scene: a desktop
// screenshot, the X11 root window or an image file.
package backdrop

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/example/acrylicreveal/internal/render"
)

// ErrUnsupported is returned when a live backdrop source is not available on
// this platform.
var ErrUnsupported = errors.New("backdrop source is not supported on this platform")

// Kind names the source a backdrop spec resolves to.
type Kind int

const (
	KindNone Kind = iota
	KindDesktop
	KindX11
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDesktop:
		return "desktop"
	case KindX11:
		return "x11"
	case KindFile:
		return "file"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind classifies spec. Anything that is not a reserved word is a path.
func ParseKind(spec string) Kind {
	switch strings.ToLower(strings.TrimSpace(spec)) {
	case "", "none":
		return KindNone
	case "desktop", "portal", "screenshot":
		return KindDesktop
	case "x11", "root":
		return KindX11
	}
	return KindFile
}

// Sources are swapped out in tests.
var (
	desktopSource = portalScreenshot
	x11Source     = rootWindowImage
	fileSource    = loadFile
)

// Load resolves spec and scales the result to size. KindNone returns a nil
// image and no error; the caller paints its theme background instead.
func Load(spec string, size image.Point) (*image.RGBA, error) {
	var (
		img *image.RGBA
		err error
	)
	switch ParseKind(spec) {
	case KindNone:
		return nil, nil
	case KindDesktop:
		img, err = desktopSource()
	case KindX11:
		img, err = x11Source()
	case KindFile:
		img, err = fileSource(strings.TrimSpace(spec))
	}
	if err != nil {
		return nil, fmt.Errorf("backdrop %q: %w", spec, err)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("backdrop %q: empty image", spec)
	}
	return render.Scale(img, size), nil
}

func loadFile(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
