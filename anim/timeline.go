package anim

import "time"

// A Timeline advances a set of animations together from a single tick.
type Timeline struct {
	animations []Animation
	elapsed    time.Duration
}

// NewTimeline creates a Timeline over animations.
func NewTimeline(animations ...Animation) *Timeline {
	t := new(Timeline)
	t.animations = append(t.animations, animations...)
	return t
}

// Start starts every animation from the beginning.
func (t *Timeline) Start() {
	t.elapsed = 0
	for _, a := range t.animations {
		a.Start()
	}
}

// Stop halts every animation at its current value.
func (t *Timeline) Stop() {
	for _, a := range t.animations {
		a.Stop()
	}
}

// Running reports whether any animation is still active.
func (t *Timeline) Running() bool {
	for _, a := range t.animations {
		if a.Running() {
			return true
		}
	}
	return false
}

// Tick advances all running animations by dt. It does nothing while no
// animation is running.
func (t *Timeline) Tick(dt time.Duration) {
	if dt <= 0 || !t.Running() {
		return
	}

	t.elapsed += dt
	for _, a := range t.animations {
		a.Advance(dt)
	}
}

// Elapsed is the time ticked since the last Start.
func (t *Timeline) Elapsed() time.Duration {
	return t.elapsed
}
