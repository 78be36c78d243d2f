package anim

import "time"

// An Animation drives one or more scalars as time passes.
type Animation interface {
	Start()
	Stop()
	Running() bool
	Advance(dt time.Duration)
}
