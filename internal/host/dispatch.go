package host

import (
	"fmt"
	"image"
	"strings"

	"github.com/example/acrylicreveal/internal/reveal"
)

// Region binds a boundary to the host rectangle it covers.
type Region struct {
	Rect     image.Rectangle
	Boundary *reveal.Boundary
}

func (r Region) contains(x, y float64) bool {
	return x >= float64(r.Rect.Min.X) && x < float64(r.Rect.Max.X) &&
		y >= float64(r.Rect.Min.Y) && y < float64(r.Rect.Max.Y)
}

// InputKind is a raw pointer input.
type InputKind int

const (
	InputMove InputKind = iota
	InputDown
	InputUp
	InputLeave
)

// ParseInputKind accepts enter, move, down, up and leave. Enter is a move
// that lands inside a region.
func ParseInputKind(s string) (InputKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "enter", "move":
		return InputMove, nil
	case "down", "press":
		return InputDown, nil
	case "up", "release":
		return InputUp, nil
	case "leave":
		return InputLeave, nil
	}
	return InputMove, fmt.Errorf("unknown pointer event %q", s)
}

func (k InputKind) String() string {
	switch k {
	case InputMove:
		return "move"
	case InputDown:
		return "down"
	case InputUp:
		return "up"
	case InputLeave:
		return "leave"
	}
	return fmt.Sprintf("InputKind(%d)", int(k))
}

// Input is one raw pointer event in host coordinates.
type Input struct {
	Kind InputKind
	X, Y float64
}

// Dispatcher turns raw pointer input into boundary-scoped calls,
// synthesizing enter and leave when the pointer crosses a region edge.
type Dispatcher struct {
	regions []Region
	inside  map[*reveal.Boundary]bool
	pressed []*reveal.Boundary
}

// NewDispatcher returns a dispatcher over regions.
func NewDispatcher(regions ...Region) *Dispatcher {
	return &Dispatcher{
		regions: regions,
		inside:  make(map[*reveal.Boundary]bool),
	}
}

// Regions returns the regions hit-tested by the dispatcher.
func (d *Dispatcher) Regions() []Region { return d.regions }

// Dispatch routes in.
func (d *Dispatcher) Dispatch(in Input) {
	switch in.Kind {
	case InputMove:
		d.Move(in.X, in.Y)
	case InputDown:
		d.Press(in.X, in.Y)
	case InputUp:
		d.Release(in.X, in.Y)
	case InputLeave:
		d.Leave()
	}
}

// Move updates every boundary the pointer is in or just left.
func (d *Dispatcher) Move(x, y float64) {
	for _, r := range d.regions {
		b := r.Boundary
		in := r.contains(x, y)
		switch {
		case in && !d.inside[b]:
			b.PointerMove(x, y)
			b.PointerEnter()
			d.inside[b] = true
		case in:
			b.PointerMove(x, y)
		case d.inside[b]:
			b.PointerMove(x, y)
			b.PointerLeave()
			delete(d.inside, b)
		}
	}
}

// Press starts a ripple in every boundary under the pointer.
func (d *Dispatcher) Press(x, y float64) {
	d.Move(x, y)
	for _, r := range d.regions {
		if !d.inside[r.Boundary] {
			continue
		}
		r.Boundary.Press()
		d.pressed = append(d.pressed, r.Boundary)
	}
}

// Release ends the ripple in every boundary that saw the press, even if the
// pointer has since left it.
func (d *Dispatcher) Release(x, y float64) {
	d.Move(x, y)
	for _, b := range d.pressed {
		b.Release()
	}
	d.pressed = d.pressed[:0]
}

// Leave handles the pointer leaving the host window.
func (d *Dispatcher) Leave() {
	for _, r := range d.regions {
		if d.inside[r.Boundary] {
			r.Boundary.PointerLeave()
			delete(d.inside, r.Boundary)
		}
	}
}
