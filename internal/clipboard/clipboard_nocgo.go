//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && !cgo

package clipboard

import (
	"errors"
	"image"
	"sync"
)

var (
	initOnce sync.Once
	initErr  error
)

func ensureInit() error {
	initOnce.Do(func() {
		if hasDisplay() {
			initErr = errors.Join(ErrUnsupported, errors.New("clipboard operations require cgo support"))
			return
		}
		initErr = errNoDisplay
	})
	return initErr
}

func WriteImage(img image.Image) error {
	if err := ensureInit(); err != nil {
		return err
	}
	_, err := encodePNG(img)
	return err
}

func WriteText(string) error {
	return ensureInit()
}
