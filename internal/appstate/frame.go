package appstate

import (
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/example/acrylicreveal/internal/render"
	"github.com/example/acrylicreveal/internal/scene"
)

var messageFace font.Face

func init() {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal("parse font", "error", err)
	}
	messageFace, err = opentype.NewFace(f, &opentype.FaceOptions{Size: 16, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		log.Fatal("font face", "error", err)
	}
}

// paintState is everything drawFrame needs besides the live layout.
type paintState struct {
	background   color.RGBA
	backdrop     image.Image
	message      string
	messageUntil time.Time
	now          time.Time
}

// backdropCache holds the acrylic rendition of one backdrop.
type backdropCache struct {
	src  image.Image
	opts render.AcrylicOptions
	out  *image.RGBA
}

// get returns the material for src, rebuilding it only when src or opts
// change. A nil src blurs a plain background of the given size and color.
func (c *backdropCache) get(src image.Image, size image.Point, bg color.RGBA, opts render.AcrylicOptions) *image.RGBA {
	if c.out != nil && c.src == src && c.opts == opts && c.out.Bounds().Size() == size {
		return c.out
	}
	base := src
	if base == nil {
		plain := image.NewRGBA(image.Rectangle{Max: size})
		render.Fill(plain, bg)
		base = plain
	}
	c.src, c.opts = src, opts
	c.out = render.Acrylic(render.Scale(base, size), opts)
	return c.out
}

// drawFrame composes the window contents into dst. The scene sits at the
// top-left; any window area beyond it shows the theme background.
func drawFrame(dst *image.RGBA, l *scene.Layout, st paintState) {
	render.Fill(dst, st.background)
	sceneRect := image.Rectangle{Max: l.Size()}.Intersect(dst.Bounds())
	if !sceneRect.Empty() {
		frame := l.Frame(st.backdrop)
		draw.Draw(dst, sceneRect, frame, image.Point{}, draw.Src)
	}
	if st.message != "" && st.now.Before(st.messageUntil) {
		drawMessage(dst, st.message)
	}
}

func drawMessage(dst *image.RGBA, msg string) {
	d := &font.Drawer{Dst: dst, Src: image.White, Face: messageFace}
	wmsg := d.MeasureString(msg).Ceil()
	ascent := messageFace.Metrics().Ascent.Ceil()
	descent := messageFace.Metrics().Descent.Ceil()
	b := dst.Bounds()
	px := b.Min.X + (b.Dx()-wmsg)/2
	py := b.Max.Y - descent - 12
	rect := image.Rect(px-8, py-ascent-6, px+wmsg+8, py+descent+6)
	draw.Draw(dst, rect, &image.Uniform{color.RGBA{0, 0, 0, 180}}, image.Point{}, draw.Over)
	d.Dot = fixed.P(px, py)
	d.DrawString(msg)
}
