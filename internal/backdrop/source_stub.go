//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package backdrop

import "image"

func portalScreenshot() (*image.RGBA, error) { return nil, ErrUnsupported }
func rootWindowImage() (*image.RGBA, error)  { return nil, ErrUnsupported }
