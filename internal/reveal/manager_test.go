package reveal

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestManagerCreateAndDestroy(t *testing.T) {
	m := NewManager()
	a := m.CreateBoundary()
	b := m.CreateBoundary()
	if a.ID() == b.ID() {
		t.Fatalf("ids must differ, both %d", a.ID())
	}
	if m.Len() != 2 {
		t.Fatalf("expected 2 boundaries, got %d", m.Len())
	}

	m.Destroy(a)
	m.Destroy(a)
	m.Destroy(nil)
	got := m.Boundaries()
	if len(got) != 1 || got[0] != b {
		t.Fatalf("unexpected boundaries %v", got)
	}

	c := m.CreateBoundary()
	if c.ID() <= b.ID() {
		t.Fatalf("ids must keep increasing: %d after %d", c.ID(), b.ID())
	}
}

func TestManagerBoundariesSnapshot(t *testing.T) {
	m := NewManager()
	m.CreateBoundary()
	snap := m.Boundaries()
	snap[0] = nil
	if m.Boundaries()[0] == nil {
		t.Fatal("snapshot aliases the registry")
	}
}

func TestDestroyCancelsPendingFrame(t *testing.T) {
	sched := &manualScheduler{}
	m := NewManager(WithScheduler(sched))
	b := m.CreateBoundary()
	b.PointerEnter()
	if sched.live() != 1 {
		t.Fatal("expected a pending frame")
	}
	m.Destroy(b)
	if sched.live() != 0 {
		t.Fatal("destroy should cancel the pending frame")
	}
}

func TestManagerWithoutScheduler(t *testing.T) {
	m := NewManager()
	b := m.CreateBoundary()
	s := newRecordingSurface(0, 0, 20, 20)
	if _, err := b.AddReveal(s, DefaultStyle()); err != nil {
		t.Fatal(err)
	}
	b.PointerMove(5, 5)
	b.PointerEnter()
	if !b.Pump(16, false) {
		t.Fatal("hovering pump should ask for another frame")
	}
	if s.count(opPut) != 2 {
		t.Fatalf("expected border and fill, got %+v", s.ops)
	}
}

func TestDefaultManager(t *testing.T) {
	prev := SetDefaultManager(nil)
	t.Cleanup(func() { SetDefaultManager(prev) })

	m := DefaultManager()
	if m == nil || DefaultManager() != m {
		t.Fatal("default manager should be created once")
	}
	custom := NewManager()
	SetDefaultManager(custom)
	if DefaultManager() != custom {
		t.Fatal("SetDefaultManager did not replace the default")
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	m := NewManager()
	b := m.CreateBoundary()
	b.PointerMove(1, 1)
	b.Press()
	if !strings.Contains(buf.String(), "reveal boundary created") {
		t.Fatalf("missing boundary log: %q", buf.String())
	}
	if !strings.Contains(buf.String(), "to=pressed") {
		t.Fatalf("missing phase log: %q", buf.String())
	}
}
