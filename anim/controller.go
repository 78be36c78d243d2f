package anim

import (
	"fmt"
	"log"
	"math"
	"sync"
	"time"
)

// Travel is the distance in pixels covered by the position loop on each axis.
const Travel = 250.0

// Position is the cube offset recorded when the animation was last stopped.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rounded returns the position rounded to whole pixels.
func (p Position) Rounded() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

func (p Position) String() string {
	x, y := p.Rounded()
	return fmt.Sprintf("Position: X = %d px, Y = %d px", x, y)
}

// Controller that manages the cube animation.
type Controller struct {
	mu sync.Mutex

	x        *Scalar
	y        *Scalar
	scale    *Scalar
	rotation *Scalar
	opacity  *Scalar

	timeline *Timeline
	position Position
	onStop   []func(Position)
}

// NewController creates an instance of a Controller with the cube's
// loops ready to start.
func NewController() *Controller {
	c := new(Controller)
	c.x = NewScalar("x", 0)
	c.y = NewScalar("y", 0)
	c.scale = NewScalar("scale", 1)
	c.rotation = NewScalar("rotation", 0)
	c.opacity = NewScalar("opacity", 1)

	ms := func(n int) time.Duration {
		return time.Duration(n) * time.Millisecond
	}

	// The position loop moves one axis at a time; each axis holds while
	// the other moves.
	c.timeline = NewTimeline(
		mustLoop("x", c.x,
			Segment{0, Travel, ms(1500), Ease},
			Hold(Travel, ms(1500)),
			Segment{Travel, 0, ms(1500), Ease},
			Hold(0, ms(1500)),
		),
		mustLoop("y", c.y,
			Hold(0, ms(1500)),
			Segment{0, Travel, ms(1500), Ease},
			Hold(Travel, ms(1500)),
			Segment{Travel, 0, ms(1500), Ease},
		),
		mustLoop("scale", c.scale,
			Segment{1, 1.5, ms(500), Ease},
			Segment{1.5, 1, ms(500), Ease},
		),
		mustLoop("rotation", c.rotation,
			Segment{0, 1, ms(2000), Linear},
		),
		mustLoop("opacity", c.opacity,
			Segment{1, 0.3, ms(500), Ease},
			Segment{0.3, 1, ms(500), Ease},
		),
	)

	return c
}

func mustLoop(name string, target *Scalar, segments ...Segment) *Loop {
	l, err := NewLoop(name, target, segments...)
	if err != nil {
		panic(err)
	}
	return l
}

// OnStop registers fn to be called with the captured position after each
// Stop. Callbacks run outside the controller lock.
func (c *Controller) OnStop(fn func(Position)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onStop = append(c.onStop, fn)
}

// Start begins the loops. Calling Start while running has no effect and
// returns false.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timeline.Running() {
		return false
	}
	c.timeline.Start()
	log.Println("Animation started")
	return true
}

// Stop halts the loops and records the offsets they were halted at. Stop
// while stopped returns the stored position unchanged.
func (c *Controller) Stop() Position {
	c.mu.Lock()
	if !c.timeline.Running() {
		p := c.position
		c.mu.Unlock()
		return p
	}

	c.timeline.Stop()
	c.position = Position{X: c.x.Value(), Y: c.y.Value()}
	p := c.position
	callbacks := append([]func(Position){}, c.onStop...)
	c.mu.Unlock()

	log.Printf("Animation stopped at %+v", p)
	for _, fn := range callbacks {
		fn(p)
	}
	return p
}

// Tick advances the animation by dt. It does nothing while stopped.
func (c *Controller) Tick(dt time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.timeline.Tick(dt)
}

// Running reports whether the loops are active.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeline.Running()
}

// Elapsed is the animation time ticked since the last Start.
func (c *Controller) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeline.Elapsed()
}

// Snapshot reads all five scalars at once.
func (c *Controller) Snapshot() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Values{
		X:        c.x.Value(),
		Y:        c.y.Value(),
		Scale:    c.scale.Value(),
		Rotation: c.rotation.Value(),
		Opacity:  c.opacity.Value(),
	}
}

// Style renders the current snapshot.
func (c *Controller) Style() Style {
	return Render(c.Snapshot())
}

// Position returns the position recorded by the last Stop.
func (c *Controller) Position() Position {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position
}

// Label is the position readout shown on screen.
func (c *Controller) Label() string {
	return c.Position().String()
}
