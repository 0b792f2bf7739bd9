// Package appstate hosts a reveal scene in a native window.
package appstate

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"sync"
	"time"
	"unicode"

	"github.com/charmbracelet/log"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/acrylicreveal/internal/clipboard"
	"github.com/example/acrylicreveal/internal/host"
	"github.com/example/acrylicreveal/internal/render"
	"github.com/example/acrylicreveal/internal/reveal"
	"github.com/example/acrylicreveal/internal/scene"
)

// AppState holds the configuration of the preview window.
type AppState struct {
	Backdrop *image.RGBA
	Acrylic  bool
	Material render.AcrylicOptions
	Output   string
	FPS      int

	relay  host.Relay
	ticker *host.Ticker

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithBackdrop sets the picture drawn behind the scene.
func WithBackdrop(img *image.RGBA) Option { return func(a *AppState) { a.Backdrop = img } }

// WithAcrylic starts the window with the frosted backdrop enabled.
func WithAcrylic(on bool) Option { return func(a *AppState) { a.Acrylic = on } }

// WithMaterial sets the acrylic blur and tint.
func WithMaterial(opts render.AcrylicOptions) Option {
	return func(a *AppState) { a.Material = opts }
}

// WithOutput sets the file written by the save shortcut.
func WithOutput(out string) Option { return func(a *AppState) { a.Output = out } }

// WithFPS sets the frame rate of the reveal animation.
func WithFPS(fps int) Option { return func(a *AppState) { a.FPS = fps } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState and starts its frame clock. Build the scene on a
// manager using Scheduler before calling Run.
func New(opts ...Option) *AppState {
	a := &AppState{
		Material: render.DefaultAcrylicOptions(),
		Output:   "acrylic.png",
		FPS:      60,
	}
	for _, o := range opts {
		o(a)
	}
	a.ticker = host.NewTicker(host.Interval(a.FPS), a.relay.Post)
	return a
}

// Scheduler is the frame source boundaries shown by this window must use.
func (a *AppState) Scheduler() reveal.Scheduler { return a.ticker }

// frameEvent carries ticker callbacks onto the window's event loop.
type frameEvent struct{ run func() }

// Close stops the frame clock and runs the close callback. Run calls it
// when the window goes away; call it directly if Run is never reached.
func (a *AppState) Close() {
	a.closeOnce.Do(func() {
		a.relay.Detach()
		a.ticker.Stop()
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run shows l until the window closes, using shiny's driver.
func (a *AppState) Run(l *scene.Layout) {
	driver.Main(func(s screen.Screen) { a.Main(s, l) })
}

// Main runs the event loop on an existing screen.
func (a *AppState) Main(s screen.Screen, l *scene.Layout) {
	size0 := l.Size()
	width, height := size0.X, size0.Y
	defer a.Close()
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: width, Height: height, Title: "Acrylic Reveal: " + l.Scene.Name})
	if err != nil {
		log.Error("new window", "error", err)
		return
	}
	defer w.Release()

	a.relay.Attach(func(fn func()) { w.Send(frameEvent{run: fn}) })

	d := host.NewDispatcher(l.Regions()...)
	acrylic := a.Acrylic
	var material backdropCache
	var message string
	var messageUntil time.Time
	var lastFrame *image.RGBA

	say := func(msg string) {
		message = msg
		messageUntil = time.Now().Add(2 * time.Second)
		log.Info(msg)
		w.Send(paint.Event{})
	}
	repaintIfDirty := func() {
		if l.TakeDirty() {
			w.Send(paint.Event{})
		}
	}

	keys := newKeymap()
	quit := false
	keys.register("quit", shortcutList{{Rune: 'q'}, {Code: key.CodeEscape, Rune: -1}}, func() { quit = true })
	keys.register("reset", shortcutList{{Rune: 'r'}}, func() {
		l.ResetAll()
		say("reveal reset")
	})
	keys.register("acrylic", shortcutList{{Rune: 'b'}}, func() {
		acrylic = !acrylic
		if acrylic {
			say("acrylic on")
		} else {
			say("acrylic off")
		}
	})
	keys.register("copy", shortcutList{{Rune: 'c', Modifiers: key.ModControl}}, func() {
		if lastFrame == nil {
			return
		}
		if err := clipboard.WriteImage(lastFrame); err != nil {
			log.Warn("copy", "error", err)
			return
		}
		say("frame copied to clipboard")
	})
	keys.register("save", shortcutList{{Rune: 's', Modifiers: key.ModControl}}, func() {
		if lastFrame == nil {
			return
		}
		if err := savePNG(a.Output, lastFrame); err != nil {
			log.Warn("save", "error", err)
			return
		}
		say(fmt.Sprintf("saved %s", a.Output))
	})

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case frameEvent:
			e.run()
			repaintIfDirty()
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
		case size.Event:
			width, height = e.WidthPx, e.HeightPx
			w.Send(paint.Event{})
		case paint.Event:
			if width <= 0 || height <= 0 {
				continue
			}
			var bd image.Image
			if a.Backdrop != nil {
				bd = a.Backdrop
			}
			if acrylic {
				bd = material.get(bd, l.Size(), l.Theme.Background, a.Material)
			}
			b, err := s.NewBuffer(image.Point{width, height})
			if err != nil {
				log.Error("new buffer", "error", err)
				continue
			}
			drawFrame(b.RGBA(), l, paintState{
				background:   l.Theme.Background,
				backdrop:     bd,
				message:      message,
				messageUntil: messageUntil,
				now:          time.Now(),
			})
			lastFrame = cloneRGBA(b.RGBA())
			w.Upload(image.Point{}, b, b.Bounds())
			w.Publish()
			b.Release()
		case mouse.Event:
			x, y := float64(e.X), float64(e.Y)
			if e.X < 0 || e.Y < 0 || int(e.X) >= width || int(e.Y) >= height {
				d.Leave()
				repaintIfDirty()
				continue
			}
			switch {
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
				d.Press(x, y)
			case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
				d.Release(x, y)
			default:
				d.Move(x, y)
			}
			repaintIfDirty()
		case key.Event:
			if e.Direction != key.DirPress {
				continue
			}
			if !keys.trigger(KeyShortcut{Rune: unicode.ToLower(e.Rune), Code: e.Code, Modifiers: e.Modifiers}) {
				continue
			}
			if quit {
				return
			}
		}
	}
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	return out
}

func savePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		if cerr := out.Close(); cerr != nil {
			log.Warn("save: closing file", "error", cerr)
		}
		return err
	}
	return out.Close()
}
