// Package tui hosts a reveal scene in a terminal, drawing two scene rows
// per character cell with half-block glyphs.
package tui

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/example/acrylicreveal/internal/host"
	"github.com/example/acrylicreveal/internal/render"
	"github.com/example/acrylicreveal/internal/reveal"
	"github.com/example/acrylicreveal/internal/scene"
)

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen constructor. Nil restores tcell's.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Host runs the terminal event loop and owns its frame clock.
type Host struct {
	Backdrop image.Image
	Acrylic  bool
	Material render.AcrylicOptions

	relay  host.Relay
	ticker *host.Ticker

	mu    sync.Mutex
	inbox []func()
}

// New starts a host clock at fps. Build the scene on a manager using
// Scheduler before calling Run.
func New(fps int) *Host {
	h := &Host{Material: render.DefaultAcrylicOptions()}
	h.ticker = host.NewTicker(host.Interval(fps), h.relay.Post)
	return h
}

// Scheduler is the frame source boundaries shown by this host must use.
func (h *Host) Scheduler() reveal.Scheduler { return h.ticker }

// Close stops the frame clock. Run does this on return.
func (h *Host) Close() { h.ticker.Stop() }

func (h *Host) put(fn func()) {
	h.mu.Lock()
	h.inbox = append(h.inbox, fn)
	h.mu.Unlock()
}

// drain runs every delivered callback and reports whether any ran.
func (h *Host) drain() bool {
	h.mu.Lock()
	fns := h.inbox
	h.inbox = nil
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// Run shows l until q, Escape or Ctrl-C.
func (h *Host) Run(l *scene.Layout) error {
	defer h.Close()

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.DisableMouse()
	screen.EnableFocus()
	screen.Clear()

	h.relay.Attach(func(fn func()) {
		h.put(fn)
		// A full queue drops the wake-up; the next event drains the inbox.
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer h.relay.Detach()

	d := host.NewDispatcher(l.Regions()...)
	var material render.AcrylicOptions
	var blurred *image.RGBA
	acrylic := h.Acrylic
	buttons := tcell.ButtonNone

	draw := func() {
		cols, rows := screen.Size()
		bd := h.Backdrop
		if acrylic {
			if blurred == nil || material != h.Material {
				blurred = acrylicBase(h.Backdrop, l, h.Material)
				material = h.Material
			}
			bd = blurred
		}
		Paint(screen, l.Frame(bd), cols, rows)
		screen.Show()
	}
	draw()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		ran := h.drain()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
			draw()
			continue
		case *tcell.EventFocus:
			if !ev.Focused {
				d.Leave()
			}
		case *tcell.EventMouse:
			cx, cy := ev.Position()
			cols, rows := screen.Size()
			x, y := CellToScene(cx, cy, cols, rows, l.Size())
			now := ev.Buttons() & tcell.Button1
			switch {
			case now != 0 && buttons == 0:
				d.Press(x, y)
			case now == 0 && buttons != 0:
				d.Release(x, y)
			default:
				d.Move(x, y)
			}
			buttons = now
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return nil
			case ev.Key() != tcell.KeyRune:
			case ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'r':
				l.ResetAll()
			case ev.Rune() == 'b':
				acrylic = !acrylic
				log.Debug("acrylic toggled", "on", acrylic)
				draw()
			}
		}
		if l.TakeDirty() || ran {
			draw()
		}
	}
}

func acrylicBase(backdrop image.Image, l *scene.Layout, opts render.AcrylicOptions) *image.RGBA {
	base := backdrop
	if base == nil {
		plain := image.NewRGBA(image.Rectangle{Max: l.Size()})
		render.Fill(plain, l.Theme.Background)
		base = plain
	}
	return render.Acrylic(render.Scale(base, l.Size()), opts)
}

// CellToScene maps the centre of a terminal cell to scene coordinates when
// the scene is stretched over cols x rows cells of two pixels each.
func CellToScene(cx, cy, cols, rows int, size image.Point) (float64, float64) {
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	sx := float64(size.X) / float64(cols)
	sy := float64(size.Y) / float64(rows*2)
	return (float64(cx) + 0.5) * sx, (float64(cy)*2 + 1) * sy
}

// Paint stretches frame over the screen, one '▀' per cell with the upper
// pixel as foreground and the lower as background.
func Paint(screen tcell.Screen, frame image.Image, cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	px := render.Scale(frame, image.Pt(cols, rows*2))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := px.RGBAAt(x, y*2)
			bottom := px.RGBAAt(x, y*2+1)
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			screen.SetContent(x, y, '▀', nil, style)
		}
	}
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
