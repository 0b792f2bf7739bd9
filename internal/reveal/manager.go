package reveal

import "sync"

// Manager is the registry of boundaries.
type Manager struct {
	scheduler  Scheduler
	nextID     int
	boundaries []*Boundary
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithScheduler sets the frame scheduler handed to new boundaries. Without
// one, boundaries only paint when the host calls PaintAll or Pump.
func WithScheduler(s Scheduler) ManagerOption {
	return func(m *Manager) { m.scheduler = s }
}

// NewManager returns an empty registry.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{}
	for _, o := range opts {
		o(m)
	}
	return m
}

// CreateBoundary registers a new boundary with a fresh id.
func (m *Manager) CreateBoundary() *Boundary {
	b := newBoundary(m.nextID, m.scheduler)
	m.nextID++
	m.boundaries = append(m.boundaries, b)
	Logger().Debug("reveal boundary created", "id", b.id)
	return b
}

// Destroy unregisters b and cancels its pending frame. Destroying a
// boundary twice is a no-op.
func (m *Manager) Destroy(b *Boundary) {
	if b == nil {
		return
	}
	for i, cur := range m.boundaries {
		if cur != b {
			continue
		}
		b.cancelFrame()
		m.boundaries = append(m.boundaries[:i], m.boundaries[i+1:]...)
		Logger().Debug("reveal boundary destroyed", "id", b.id)
		return
	}
}

// Boundaries returns a snapshot of the registered boundaries.
func (m *Manager) Boundaries() []*Boundary {
	out := make([]*Boundary, len(m.boundaries))
	copy(out, m.boundaries)
	return out
}

// Len returns the number of registered boundaries.
func (m *Manager) Len() int { return len(m.boundaries) }

var (
	defaultMu      sync.Mutex
	defaultManager *Manager
)

// DefaultManager returns the process-wide manager, creating it on first use.
func DefaultManager() *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultManager == nil {
		defaultManager = NewManager()
	}
	return defaultManager
}

// SetDefaultManager replaces the process-wide manager and returns the
// previous one.
func SetDefaultManager(m *Manager) *Manager {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	prev := defaultManager
	defaultManager = m
	return prev
}
