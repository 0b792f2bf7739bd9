//go:build linux || freebsd || openbsd || netbsd || dragonfly

package backdrop

import (
	"fmt"
	"image"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"
)

// rootWindowImage grabs the root window, cropped to the primary monitor
// when RandR reports one.
func rootWindowImage() (*image.RGBA, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect X server: %w", err)
	}
	defer conn.Close()

	setup := xproto.Setup(conn)
	if setup == nil {
		return nil, fmt.Errorf("xproto setup unavailable")
	}
	screen := setup.DefaultScreen(conn)
	if screen == nil {
		return nil, fmt.Errorf("xproto screen unavailable")
	}

	area := image.Rect(0, 0, int(screen.WidthInPixels), int(screen.HeightInPixels))
	if mon, err := primaryMonitor(conn, screen.Root); err == nil && !mon.Empty() {
		area = mon.Intersect(area)
	}
	if area.Empty() {
		return nil, fmt.Errorf("root window has empty geometry")
	}

	reply, err := xproto.GetImage(conn, xproto.ImageFormatZPixmap, xproto.Drawable(screen.Root),
		int16(area.Min.X), int16(area.Min.Y), uint16(area.Dx()), uint16(area.Dy()), ^uint32(0)).Reply()
	if err != nil {
		return nil, fmt.Errorf("root pixels: %w", err)
	}
	return xImageToRGBA(pixmapBits(setup, reply.Depth), reply.Data, area.Dx(), area.Dy())
}

func primaryMonitor(conn *xgb.Conn, root xproto.Window) (image.Rectangle, error) {
	if err := randr.Init(conn); err != nil {
		return image.Rectangle{}, fmt.Errorf("init randr: %w", err)
	}
	primary, err := randr.GetOutputPrimary(conn, root).Reply()
	if err != nil {
		return image.Rectangle{}, err
	}
	if primary.Output == 0 {
		return image.Rectangle{}, fmt.Errorf("no primary output")
	}
	info, err := randr.GetOutputInfo(conn, primary.Output, 0).Reply()
	if err != nil {
		return image.Rectangle{}, err
	}
	if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
		return image.Rectangle{}, fmt.Errorf("primary output is not active")
	}
	crtc, err := randr.GetCrtcInfo(conn, info.Crtc, 0).Reply()
	if err != nil {
		return image.Rectangle{}, err
	}
	return image.Rect(int(crtc.X), int(crtc.Y), int(crtc.X)+int(crtc.Width), int(crtc.Y)+int(crtc.Height)), nil
}

func pixmapBits(setup *xproto.SetupInfo, depth byte) int {
	for _, format := range setup.PixmapFormats {
		if format.Depth == depth {
			return int(format.BitsPerPixel)
		}
	}
	return 0
}
