package anim

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween"
)

// ErrEmptyLoop is returned when a loop is built without any segments.
var ErrEmptyLoop = errors.New("anim: loop has no segments")

// A Loop is an Animation that plays segments on one scalar in order and
// repeats forever. Every iteration starts again from the first segment.
type Loop struct {
	name     string
	target   *Scalar
	segments []Segment
	period   time.Duration
	sequence *gween.Sequence
}

// NewLoop creates a Loop. Every segment needs a positive duration.
func NewLoop(name string, target *Scalar, segments ...Segment) (*Loop, error) {
	if target == nil {
		return nil, fmt.Errorf("anim: loop %s has no target", name)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyLoop)
	}

	l := new(Loop)
	l.name = name
	l.target = target
	for i, s := range segments {
		if s.Duration <= 0 {
			return nil, fmt.Errorf("anim: loop %s segment %d has non-positive duration %v", name, i, s.Duration)
		}
		l.period += s.Duration
	}
	l.segments = append([]Segment(nil), segments...)

	return l, nil
}

func (l *Loop) Name() string {
	return l.name
}

// Period is the length of one iteration.
func (l *Loop) Period() time.Duration {
	return l.period
}

// Start rewinds the loop to its first segment and sets it running.
func (l *Loop) Start() {
	tweens := make([]*gween.Tween, len(l.segments))
	for i, s := range l.segments {
		tweens[i] = s.Tween()
	}
	l.sequence = gween.NewSequence(tweens...)
	l.sequence.SetLoop(-1)
	l.target.Set(l.segments[0].From)
}

// Stop halts the loop. The target keeps its current value.
func (l *Loop) Stop() {
	l.sequence = nil
}

func (l *Loop) Running() bool {
	return l.sequence != nil
}

// Advance moves the loop forward by dt.
func (l *Loop) Advance(dt time.Duration) {
	if l.sequence == nil || dt <= 0 {
		return
	}

	// Whole iterations leave the loop where it was.
	dt %= l.period
	if dt == 0 {
		return
	}
	v, _, _ := l.sequence.Update(millis(dt))
	l.target.Set(float64(v))
}
