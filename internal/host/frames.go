// Package host adapts native event loops to the reveal engine: frame
// schedulers and a pointer dispatcher.
package host

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/example/acrylicreveal/internal/reveal"
)

type request struct {
	fn        func(frame float64)
	cancelled atomic.Bool
}

func (r *request) Cancel() { r.cancelled.Store(true) }

func runBatch(batch []*request, frame float64) int {
	n := 0
	for _, r := range batch {
		if r.cancelled.Load() {
			continue
		}
		r.fn(frame)
		n++
	}
	return n
}

// FrameQueue is a deterministic scheduler. Callbacks wait until Advance.
type FrameQueue struct {
	pending []*request
	frame   float64
}

// RequestFrame queues fn for the next Advance.
func (q *FrameQueue) RequestFrame(fn func(frame float64)) reveal.FrameHandle {
	r := &request{fn: fn}
	q.pending = append(q.pending, r)
	return r
}

// Advance runs the callbacks requested before the call with frame and
// returns how many ran. Callbacks requested while running wait for the next
// Advance.
func (q *FrameQueue) Advance(frame float64) int {
	q.frame = frame
	batch := q.pending
	q.pending = nil
	return runBatch(batch, frame)
}

// Frame returns the last frame passed to Advance.
func (q *FrameQueue) Frame() float64 { return q.frame }

// Pending returns the number of live requests.
func (q *FrameQueue) Pending() int {
	n := 0
	for _, r := range q.pending {
		if !r.cancelled.Load() {
			n++
		}
	}
	return n
}

// Ticker is a wall-clock scheduler. A background goroutine collects due
// requests every interval and hands them to post, which must run the given
// function on the UI goroutine.
type Ticker struct {
	post  func(func())
	start time.Time

	mu      sync.Mutex
	pending []*request

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewTicker starts a ticker firing every interval.
func NewTicker(interval time.Duration, post func(func())) *Ticker {
	if interval <= 0 {
		interval = time.Second / 60
	}
	t := &Ticker{
		post:  post,
		start: time.Now(),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go t.run(interval)
	return t
}

// Interval converts a frame rate to a tick interval.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second / time.Duration(fps)
}

// RequestFrame queues fn for the next tick.
func (t *Ticker) RequestFrame(fn func(frame float64)) reveal.FrameHandle {
	r := &request{fn: fn}
	t.mu.Lock()
	t.pending = append(t.pending, r)
	t.mu.Unlock()
	return r
}

// Now returns the current frame clock in milliseconds.
func (t *Ticker) Now() float64 {
	return float64(time.Since(t.start).Microseconds()) / 1000
}

func (t *Ticker) run(interval time.Duration) {
	defer close(t.done)
	tk := time.NewTicker(interval)
	defer tk.Stop()
	for {
		select {
		case <-t.stop:
			return
		case <-tk.C:
			t.flush()
		}
	}
}

func (t *Ticker) flush() {
	t.mu.Lock()
	batch := t.pending
	t.pending = nil
	t.mu.Unlock()
	if len(batch) == 0 {
		return
	}
	frame := t.Now()
	t.post(func() { runBatch(batch, frame) })
}

// Stop ends the background goroutine. Requests still queued are dropped.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() { close(t.stop) })
	<-t.done
}

// Relay buffers callbacks posted before a UI loop is ready and forwards
// them once it attaches. Its Post method is a Ticker post function.
type Relay struct {
	mu      sync.Mutex
	deliver func(func())
	queued  []func()
}

// Post forwards fn to the attached loop, or holds it until Attach.
func (r *Relay) Post(fn func()) {
	r.mu.Lock()
	deliver := r.deliver
	if deliver == nil {
		r.queued = append(r.queued, fn)
		r.mu.Unlock()
		return
	}
	r.mu.Unlock()
	deliver(fn)
}

// Attach starts forwarding to deliver, flushing anything held.
func (r *Relay) Attach(deliver func(func())) {
	r.mu.Lock()
	r.deliver = deliver
	queued := r.queued
	r.queued = nil
	r.mu.Unlock()
	for _, fn := range queued {
		deliver(fn)
	}
}

// Detach stops forwarding. Later posts are held again.
func (r *Relay) Detach() {
	r.mu.Lock()
	r.deliver = nil
	r.mu.Unlock()
}
