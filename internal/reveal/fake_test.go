package reveal

import "image"

type opKind int

const (
	opClear opKind = iota
	opPut
	opGradient
)

type surfaceOp struct {
	kind opKind
	rect image.Rectangle
	at   image.Point
	src  *image.RGBA
	grad RadialGradient
}

// recordingSurface logs every drawing call instead of rasterizing.
type recordingSurface struct {
	rect     Rect
	detached bool
	size     image.Point
	resizes  int
	ops      []surfaceOp
}

func newRecordingSurface(left, top, w, h float64) *recordingSurface {
	return &recordingSurface{rect: Rect{Top: top, Left: left, Width: w, Height: h}}
}

func (s *recordingSurface) BoundingRect() Rect { return s.rect }
func (s *recordingSurface) Available() bool    { return !s.detached }

func (s *recordingSurface) Resize(w, h int) {
	s.size = image.Pt(w, h)
	s.resizes++
}

func (s *recordingSurface) Clear(r image.Rectangle) {
	s.ops = append(s.ops, surfaceOp{kind: opClear, rect: r})
}

func (s *recordingSurface) PutImage(src *image.RGBA, at image.Point, clip image.Rectangle) {
	s.ops = append(s.ops, surfaceOp{kind: opPut, rect: clip, at: at, src: src})
}

func (s *recordingSurface) FillGradient(r image.Rectangle, g RadialGradient) {
	s.ops = append(s.ops, surfaceOp{kind: opGradient, rect: r, grad: g})
}

func (s *recordingSurface) take() []surfaceOp {
	ops := s.ops
	s.ops = nil
	return ops
}

func (s *recordingSurface) count(k opKind) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == k {
			n++
		}
	}
	return n
}

type fakeElement Rect

func (e fakeElement) BoundingRect() Rect { return Rect(e) }

type fakeFrame struct {
	fn        func(float64)
	cancelled bool
}

func (f *fakeFrame) Cancel() { f.cancelled = true }

// manualScheduler queues callbacks until run is called.
type manualScheduler struct {
	queue []*fakeFrame
}

func (s *manualScheduler) RequestFrame(fn func(float64)) FrameHandle {
	f := &fakeFrame{fn: fn}
	s.queue = append(s.queue, f)
	return f
}

// run delivers frame to every live callback queued so far and returns how
// many ran.
func (s *manualScheduler) run(frame float64) int {
	q := s.queue
	s.queue = nil
	n := 0
	for _, f := range q {
		if f.cancelled {
			continue
		}
		f.fn(frame)
		n++
	}
	return n
}

func (s *manualScheduler) live() int {
	n := 0
	for _, f := range s.queue {
		if !f.cancelled {
			n++
		}
	}
	return n
}
