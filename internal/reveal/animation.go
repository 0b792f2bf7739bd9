package reveal

import "math"

// Phase is the state of a boundary's press ripple. It is one of Idle,
// Pressed or Releasing.
type Phase interface {
	phase()
}

// Idle means no press is in progress.
type Idle struct{}

// Pressed follows a pointer press. Target is nil when the press landed
// outside every target, in which case no ripple is drawn.
type Pressed struct {
	Target *Target
	// StartFrame is meaningful once Started is set by the first frame that
	// follows the press.
	StartFrame float64
	Started    bool
	// ReleaseRequested records a release the next frame will latch.
	ReleaseRequested bool
}

// Releasing follows the release of a press that hit a target.
type Releasing struct {
	Target     *Target
	StartFrame float64
	// ReleaseFrame is the frame of the release relative to StartFrame.
	ReleaseFrame float64
	// ReleasePoint is the pointer position, in host coordinates, when the
	// release was latched.
	ReleasePoint Point
}

func (Idle) phase()      {}
func (Pressed) phase()   {}
func (Releasing) phase() {}

// Event drives Step.
type Event interface {
	event()
}

// PressEvent starts a ripple on Target (nil for no target).
type PressEvent struct{ Target *Target }

// ReleaseEvent ends the pressed part of the ripple.
type ReleaseEvent struct{}

// FrameEvent is delivered once per paint pass before any target is painted.
type FrameEvent struct {
	Frame   float64
	Pointer Point
}

// CancelEvent drops the ripple if its subject is Target. A nil Target
// cancels unconditionally.
type CancelEvent struct{ Target *Target }

func (PressEvent) event()   {}
func (ReleaseEvent) event() {}
func (FrameEvent) event()   {}
func (CancelEvent) event()  {}

// Step is the ripple transition function.
func Step(p Phase, ev Event) Phase {
	if p == nil {
		p = Idle{}
	}
	switch ev := ev.(type) {
	case PressEvent:
		return Pressed{Target: ev.Target}
	case ReleaseEvent:
		if pr, ok := p.(Pressed); ok {
			if pr.Target == nil {
				return Idle{}
			}
			pr.ReleaseRequested = true
			return pr
		}
	case FrameEvent:
		if pr, ok := p.(Pressed); ok {
			if !pr.Started {
				pr.StartFrame = ev.Frame
				pr.Started = true
			}
			if pr.ReleaseRequested {
				return Releasing{
					Target:       pr.Target,
					StartFrame:   pr.StartFrame,
					ReleaseFrame: ev.Frame - pr.StartFrame,
					ReleasePoint: ev.Pointer,
				}
			}
			return pr
		}
	case CancelEvent:
		if ev.Target == nil || (Subject(p) != nil && Subject(p) == ev.Target) {
			return Idle{}
		}
	}
	return p
}

// Subject returns the target the ripple is drawn on, if any.
func Subject(p Phase) *Target {
	switch p := p.(type) {
	case Pressed:
		return p.Target
	case Releasing:
		return p.Target
	}
	return nil
}

// Progress returns the normalized ripple progress at frame. It is zero
// when nothing animates and grows past 1 when the ripple has finished.
func Progress(p Phase, frame float64) float64 {
	var v float64
	switch p := p.(type) {
	case Pressed:
		if p.Target == nil || !p.Started {
			return 0
		}
		speed := p.Target.style.AnimateSpeed
		if !(speed > 0) || math.IsInf(speed, 1) {
			return math.Inf(1)
		}
		v = (frame - p.StartFrame) / speed
	case Releasing:
		speed := p.Target.style.AnimateSpeed
		if !(speed > 0) || math.IsInf(speed, 1) {
			return math.Inf(1)
		}
		rel := frame - p.StartFrame
		v = rel/speed + (rel-p.ReleaseFrame)/speed*p.Target.style.ReleasedAccelerateRate
	default:
		return 0
	}
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// Advance delivers a frame to p and resolves the resulting progress. A
// ripple whose progress exceeds 1 returns to Idle with zero progress.
func Advance(p Phase, frame float64, pointer Point) (Phase, float64) {
	next := Step(p, FrameEvent{Frame: frame, Pointer: pointer})
	v := Progress(next, frame)
	if v > 1 {
		return Idle{}, 0
	}
	return next, v
}

func phaseName(p Phase) string {
	switch p.(type) {
	case Pressed:
		return "pressed"
	case Releasing:
		return "releasing"
	}
	return "idle"
}
