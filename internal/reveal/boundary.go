package reveal

// initialPointer is the pointer position before any move event, far outside
// any realistic target.
var initialPointer = Point{X: -1000, Y: -1000}

// Boundary groups targets that share one pointer and one press ripple.
// It must only be used from the host's UI goroutine.
type Boundary struct {
	id        int
	scheduler Scheduler

	pointer  Point
	painted  Point
	hovering bool
	targets  []*Target

	phase    Phase
	progress float64
	frame    float64
	dirty    bool

	pending FrameHandle
}

func newBoundary(id int, sched Scheduler) *Boundary {
	return &Boundary{
		id:        id,
		scheduler: sched,
		pointer:   initialPointer,
		painted:   initialPointer,
		phase:     Idle{},
	}
}

// ID returns the identifier assigned by the manager.
func (b *Boundary) ID() int { return b.id }

// Pointer returns the live pointer position in host coordinates.
func (b *Boundary) Pointer() Point { return b.pointer }

// Hovering reports whether the pointer is inside the boundary.
func (b *Boundary) Hovering() bool { return b.hovering }

// Phase returns the ripple state.
func (b *Boundary) Phase() Phase { return b.phase }

// Progress returns the ripple progress computed by the last paint pass.
func (b *Boundary) Progress() float64 { return b.progress }

// Dirty reports whether a paint pass ran since the last TakeDirty.
func (b *Boundary) Dirty() bool { return b.dirty }

// TakeDirty returns and clears the dirty flag.
func (b *Boundary) TakeDirty() bool {
	d := b.dirty
	b.dirty = false
	return d
}

// Targets returns the registered targets in registration order.
func (b *Boundary) Targets() []*Target {
	out := make([]*Target, len(b.targets))
	copy(out, b.targets)
	return out
}

// PointerEnter marks the pointer as inside the boundary and starts the
// repaint loop.
func (b *Boundary) PointerEnter() {
	b.hovering = true
	b.requestFrame()
}

// PointerLeave marks the pointer as outside and clears every target.
func (b *Boundary) PointerLeave() {
	b.hovering = false
	b.cancelFrame()
	b.PaintAll(b.frame, true)
}

// PointerMove records the live pointer. Painting happens on the next frame.
func (b *Boundary) PointerMove(x, y float64) {
	b.pointer = Point{X: x, Y: y}
}

// Press starts a ripple on the target under the pointer.
func (b *Boundary) Press() {
	b.setPhase(Step(b.phase, PressEvent{Target: b.HoveringTarget()}))
	b.progress = 0
}

// Release lets the ripple run to completion.
func (b *Boundary) Release() {
	b.setPhase(Step(b.phase, ReleaseEvent{}))
}

// AddReveal registers s with the boundary. The bitmap cache is built before
// AddReveal returns.
func (b *Boundary) AddReveal(s Surface, style Style, opts ...TargetOption) (*Target, error) {
	if b == nil {
		return nil, ErrNoBoundary
	}
	if s == nil {
		return nil, ErrNilSurface
	}
	t := newTarget(s, style, opts...)
	b.targets = append(b.targets, t)
	return t, nil
}

// RemoveReveal unregisters every target painting into s. Unknown surfaces
// are ignored. A ripple running on a removed target is dropped.
func (b *Boundary) RemoveReveal(s Surface) {
	if b == nil {
		return
	}
	kept := b.targets[:0]
	for _, t := range b.targets {
		if t.surface == s {
			b.setPhase(Step(b.phase, CancelEvent{Target: t}))
			continue
		}
		kept = append(kept, t)
	}
	for i := len(kept); i < len(b.targets); i++ {
		b.targets[i] = nil
	}
	b.targets = kept
}

// HoveringTarget returns the first target, in registration order, that
// contains the pointer.
func (b *Boundary) HoveringTarget() *Target {
	for _, t := range b.targets {
		if t.Contains(b.pointer) {
			return t
		}
	}
	return nil
}

// PaintAll runs a paint pass and keeps the frame loop going while the
// pointer hovers.
func (b *Boundary) PaintAll(frame float64, force bool) {
	if b.Pump(frame, force) {
		b.requestFrame()
	}
}

// Pump runs one paint pass without scheduling anything. It reports whether
// another frame is wanted.
func (b *Boundary) Pump(frame float64, force bool) bool {
	if !b.hovering && !force {
		return false
	}
	b.frame = frame
	previous := Subject(b.phase)
	next, progress := Advance(b.phase, frame, b.pointer)
	b.setPhase(next)
	b.progress = progress

	st := b.passState(force)
	st.previous = previous
	for _, t := range b.targets {
		paintTarget(t, &st)
	}
	b.painted = b.pointer
	b.dirty = true
	return b.hovering
}

// ResetAll repaints every target from the current state without advancing
// the ripple.
func (b *Boundary) ResetAll() {
	st := b.passState(true)
	for _, t := range b.targets {
		paintTarget(t, &st)
	}
	b.dirty = true
}

func (b *Boundary) passState(force bool) passState {
	return passState{
		pointer:  b.pointer,
		painted:  b.painted,
		hovering: b.hovering,
		force:    force,
		phase:    b.phase,
		progress: b.progress,
		subject:  Subject(b.phase),
	}
}

func (b *Boundary) setPhase(p Phase) {
	if phaseName(p) != phaseName(b.phase) {
		Logger().Debug("reveal phase", "boundary", b.id,
			"from", phaseName(b.phase), "to", phaseName(p))
	}
	b.phase = p
	if _, idle := p.(Idle); idle {
		b.progress = 0
	}
}

func (b *Boundary) requestFrame() {
	if b.scheduler == nil || b.pending != nil {
		return
	}
	b.pending = b.scheduler.RequestFrame(func(frame float64) {
		b.pending = nil
		b.PaintAll(frame, false)
	})
}

func (b *Boundary) cancelFrame() {
	if b.pending == nil {
		return
	}
	b.pending.Cancel()
	b.pending = nil
}
