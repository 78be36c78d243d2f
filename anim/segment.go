package anim

import (
	"time"

	"github.com/tanema/gween"
)

// A Segment interpolates a scalar from one value to another over a duration.
// A segment with From == To holds the value.
type Segment struct {
	From     float64
	To       float64
	Duration time.Duration
	Easing   Easing
}

// Hold keeps v for d.
func Hold(v float64, d time.Duration) Segment {
	return Segment{From: v, To: v, Duration: d, Easing: Linear}
}

// Tween returns a gween tween for the segment, timed in milliseconds.
func (s Segment) Tween() *gween.Tween {
	easing := s.Easing
	if easing == nil {
		easing = Linear
	}
	return gween.New(float32(s.From), float32(s.To), millis(s.Duration), easing.TweenFunc())
}

// ValueAt returns the segment value after elapsed time. Values before the
// start clamp to From and values past the end clamp to To.
func (s Segment) ValueAt(elapsed time.Duration) float64 {
	if s.Duration <= 0 || elapsed >= s.Duration {
		return s.To
	}
	if elapsed <= 0 {
		return s.From
	}

	v, _ := s.Tween().Update(millis(elapsed))
	return float64(v)
}

func millis(d time.Duration) float32 {
	return float32(d) / float32(time.Millisecond)
}
