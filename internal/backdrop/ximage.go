package backdrop

import (
	"fmt"
	"image"
)

// xImageToRGBA converts ZPixmap data in BGR(A) byte order. Pixels without an
// alpha byte, and 24-bit depths that pad to 32, come out opaque.
func xImageToRGBA(bitsPerPixel int, data []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("image has empty geometry")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("pixels: empty image data")
	}
	bytesPerPixel := bitsPerPixel / 8
	if bytesPerPixel < 3 {
		return nil, fmt.Errorf("unsupported pixel format %d bpp", bitsPerPixel)
	}
	stride := len(data) / height
	if stride*height != len(data) || stride < width*bytesPerPixel {
		return nil, fmt.Errorf("pixels: unexpected stride")
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		row := data[y*stride : (y+1)*stride]
		for x := 0; x < width; x++ {
			off := x * bytesPerPixel
			pix := img.PixOffset(x, y)
			img.Pix[pix+0] = row[off+2]
			img.Pix[pix+1] = row[off+1]
			img.Pix[pix+2] = row[off]
			img.Pix[pix+3] = 0xFF
		}
	}
	return img, nil
}
