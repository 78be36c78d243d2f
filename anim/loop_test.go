package anim

import (
	"errors"
	"math"
	"testing"
	"time"
)

const tolerance = 1e-4

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestNewLoopValidation(t *testing.T) {
	s := NewScalar("s", 0)

	if _, err := NewLoop("empty", s); !errors.Is(err, ErrEmptyLoop) {
		t.Errorf("expected ErrEmptyLoop, got %v", err)
	}
	if _, err := NewLoop("nil", nil, Segment{0, 1, time.Second, Linear}); err == nil {
		t.Error("expected error for loop without target")
	}
	if _, err := NewLoop("zero", s, Segment{0, 1, 0, Linear}); err == nil {
		t.Error("expected error for zero duration")
	}

	l, err := NewLoop("ok", s, Segment{0, 1, ms(100), Linear}, Segment{1, 0, ms(300), Linear})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Period() != ms(400) {
		t.Errorf("expected period 400ms, got %v", l.Period())
	}
	if l.Name() != "ok" {
		t.Errorf("expected name ok, got %s", l.Name())
	}
}

func TestLoopsAlternateAxes(t *testing.T) {
	x := NewScalar("x", 0)
	y := NewScalar("y", 0)
	lx, err := NewLoop("x", x,
		Segment{0, 100, ms(100), Linear},
		Hold(100, ms(100)),
		Segment{100, 0, ms(100), Linear},
		Hold(0, ms(100)),
	)
	if err != nil {
		t.Fatal(err)
	}
	ly, err := NewLoop("y", y,
		Hold(0, ms(100)),
		Segment{0, 100, ms(100), Linear},
		Hold(100, ms(100)),
		Segment{100, 0, ms(100), Linear},
	)
	if err != nil {
		t.Fatal(err)
	}
	tl := NewTimeline(lx, ly)
	tl.Start()

	tests := []struct {
		dt   time.Duration
		x, y float64
	}{
		{ms(50), 50, 0},
		{ms(50), 100, 0},
		{ms(50), 100, 50},
		{ms(100), 50, 100},
		{ms(100), 0, 50},
		{ms(50), 0, 0},
		{ms(30), 30, 0},
	}

	for i, tt := range tests {
		tl.Tick(tt.dt)
		if !near(x.Value(), tt.x) || !near(y.Value(), tt.y) {
			t.Errorf("step %d: got (%v, %v), want (%v, %v)", i, x.Value(), y.Value(), tt.x, tt.y)
		}
	}
}

func TestLoopLargeAdvance(t *testing.T) {
	s := NewScalar("s", 0)
	l, _ := NewLoop("saw", s, Segment{0, 1, time.Second, Linear})
	l.Start()

	l.Advance(10*time.Second + ms(250))
	if !near(s.Value(), 0.25) {
		t.Errorf("expected 0.25 after ten whole periods, got %v", s.Value())
	}
}

func TestLoopRestartsEachIteration(t *testing.T) {
	s := NewScalar("s", 0)
	l, _ := NewLoop("saw", s, Segment{0, 1, time.Second, Linear})
	l.Start()

	l.Advance(ms(999))
	l.Advance(ms(11))
	if !near(s.Value(), 0.01) {
		t.Errorf("expected loop to restart from 0, got %v", s.Value())
	}
}

func TestLoopStartResetsTarget(t *testing.T) {
	s := NewScalar("s", 42)
	l, _ := NewLoop("fade", s, Segment{1, 0.3, ms(500), Linear}, Segment{0.3, 1, ms(500), Linear})
	l.Start()
	if s.Value() != 1 {
		t.Errorf("expected Start to reset target to 1, got %v", s.Value())
	}
}

func TestLoopStoppedDoesNotAdvance(t *testing.T) {
	s := NewScalar("s", 0)
	l, _ := NewLoop("saw", s, Segment{0, 1, time.Second, Linear})

	l.Advance(ms(500))
	if s.Value() != 0 || l.Running() {
		t.Fatalf("loop advanced before Start")
	}

	l.Start()
	l.Advance(ms(400))
	l.Stop()
	l.Advance(ms(400))
	if !near(s.Value(), 0.4) {
		t.Errorf("expected value frozen at 0.4, got %v", s.Value())
	}

	l.Start()
	l.Advance(-time.Second)
	if s.Value() != 0 {
		t.Errorf("negative dt changed value to %v", s.Value())
	}
}

func TestTimeline(t *testing.T) {
	a := NewScalar("a", 0)
	b := NewScalar("b", 0)
	la, _ := NewLoop("a", a, Segment{0, 1, time.Second, Linear})
	lb, _ := NewLoop("b", b, Segment{0, 10, ms(100), Linear})
	tl := NewTimeline(la, lb)

	if tl.Running() {
		t.Fatal("timeline running before Start")
	}
	tl.Tick(ms(100))
	if tl.Elapsed() != 0 {
		t.Error("stopped timeline counted elapsed time")
	}

	tl.Start()
	tl.Tick(ms(150))
	tl.Tick(0)

	if !near(a.Value(), 0.15) {
		t.Errorf("a = %v, want 0.15", a.Value())
	}
	if !near(b.Value(), 5) {
		t.Errorf("b = %v, want 5", b.Value())
	}
	if tl.Elapsed() != ms(150) {
		t.Errorf("elapsed = %v", tl.Elapsed())
	}

	tl.Stop()
	if tl.Running() {
		t.Error("timeline running after Stop")
	}
}
