package appstate

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"

	"github.com/example/acrylicreveal/internal/host"
	"github.com/example/acrylicreveal/internal/render"
	"github.com/example/acrylicreveal/internal/reveal"
	"github.com/example/acrylicreveal/internal/scene"
)

func buildScene(t *testing.T) *scene.Layout {
	t.Helper()
	s, err := scene.Parse([]byte(`
name: tiny
size: {w: 60, h: 40}
boundaries:
  - rect: [0, 0, 60, 40]
    targets:
      - {label: x, rect: [10, 10, 40, 20]}
`))
	if err != nil {
		t.Fatal(err)
	}
	l, err := scene.Build(s, reveal.NewManager(reveal.WithScheduler(&host.FrameQueue{})), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(l.Close)
	return l
}

func TestKeymapTrigger(t *testing.T) {
	k := newKeymap()
	var fired []string
	k.register("quit", shortcutList{{Rune: 'q'}, {Code: key.CodeEscape, Rune: -1}}, func() { fired = append(fired, "quit") })
	k.register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, func() { fired = append(fired, "copy") })
	k.register("none", nil, func() { fired = append(fired, "none") })

	tests := []struct {
		sc   KeyShortcut
		want bool
	}{
		{KeyShortcut{Rune: 'q', Code: key.CodeQ}, true},
		{KeyShortcut{Rune: -1, Code: key.CodeEscape}, true},
		{KeyShortcut{Rune: 'c', Code: key.CodeC, Modifiers: key.ModControl}, true},
		{KeyShortcut{Rune: 'c', Code: key.CodeC}, false},
		{KeyShortcut{Rune: 'z', Code: key.CodeZ}, false},
	}
	for _, tc := range tests {
		if got := k.trigger(tc.sc); got != tc.want {
			t.Errorf("trigger(%+v) = %v, want %v", tc.sc, got, tc.want)
		}
	}
	if len(fired) != 3 || fired[2] != "copy" {
		t.Fatalf("unexpected actions %v", fired)
	}
}

func TestDrawFrame(t *testing.T) {
	l := buildScene(t)
	dst := image.NewRGBA(image.Rect(0, 0, 80, 40))
	bg := color.RGBA{1, 2, 3, 255}
	now := time.Now()
	drawFrame(dst, l, paintState{background: bg, now: now})
	if got := dst.RGBAAt(70, 5); got != bg {
		t.Errorf("area outside the scene = %v, want background", got)
	}
	if got := dst.RGBAAt(30, 20); got == bg {
		t.Error("target plate was not drawn")
	}

	quiet := cloneRGBA(dst)
	drawFrame(dst, l, paintState{background: bg, message: "hello", messageUntil: now.Add(time.Second), now: now})
	same := true
	for i := range dst.Pix {
		if dst.Pix[i] != quiet.Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("message overlay was not drawn")
	}
}

func TestBackdropCache(t *testing.T) {
	var c backdropCache
	opts := render.DefaultAcrylicOptions()
	size := image.Pt(20, 10)
	first := c.get(nil, size, color.RGBA{A: 255}, opts)
	if first.Bounds().Size() != size {
		t.Fatalf("material size %v", first.Bounds())
	}
	if c.get(nil, size, color.RGBA{A: 255}, opts) != first {
		t.Error("unchanged inputs should reuse the material")
	}
	opts.Radius = 2
	if c.get(nil, size, color.RGBA{A: 255}, opts) == first {
		t.Error("new options should rebuild the material")
	}
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	if got := c.get(src, size, color.RGBA{}, opts); got.Bounds().Size() != size {
		t.Errorf("backdrop should be scaled to %v, got %v", size, got.Bounds())
	}
}

// noWindowScreen fails every window request.
type noWindowScreen struct{ screen.Screen }

func (noWindowScreen) NewWindow(*screen.NewWindowOptions) (screen.Window, error) {
	return nil, errors.New("no display")
}

func TestMainStopsClockWhenWindowFails(t *testing.T) {
	closed := 0
	a := New(WithFPS(120), WithOnClose(func() { closed++ }))
	a.Main(noWindowScreen{}, buildScene(t))
	if closed != 1 {
		t.Fatalf("close callback ran %d times, want 1", closed)
	}
	done := make(chan struct{})
	go func() {
		a.Close()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("second Close blocked")
	}
	if closed != 1 {
		t.Fatalf("close callback ran %d times after second Close", closed)
	}
}
