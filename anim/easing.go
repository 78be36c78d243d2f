package anim

import (
	"math"

	"github.com/fogleman/ease"
	"github.com/matt-g-everett/cube/util"
	tween "github.com/tanema/gween/ease"
)

// An Easing maps the elapsed fraction of a segment to its progress fraction.
type Easing func(t float64) float64

// Linear progresses at a constant rate.
var Linear Easing = ease.Linear

// Ease is the default timing curve, cubic-bezier(0.42, 0, 1, 1). It is
// evaluated from a look-up table since it runs for several scalars per frame.
var Ease Easing = util.GenerateLut(CubicBezier(0.42, 0, 1, 1), 512).At

// TweenFunc adapts the curve to gween's (elapsed, begin, change, duration)
// form.
func (e Easing) TweenFunc() tween.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(e(float64(t/d)))
	}
}

// CubicBezier returns the timing curve through (0,0), (x1,y1), (x2,y2), (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Solve x(u) = t for the curve parameter u, then evaluate y(u).
		u := t
		for i := 0; i < 8; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezier(y1, y2, u)
			}
			d := bezierSlope(x1, x2, u)
			if math.Abs(d) < 1e-7 {
				break
			}
			u -= x / d
		}

		lo, hi := 0.0, 1.0
		u = math.Max(lo, math.Min(hi, u))
		for i := 0; i < 32; i++ {
			x := bezier(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) / 2
		}
		return bezier(y1, y2, u)
	}
}

func bezier(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*u*p1 + 3*v*u*u*p2 + u*u*u
}

func bezierSlope(p1, p2, u float64) float64 {
	v := 1 - u
	return 3*v*v*p1 + 6*v*u*(p2-p1) + 3*u*u*(1-p2)
}
