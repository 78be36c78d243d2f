package anim

import (
	"github.com/lucasb-eyer/go-colorful"
)

// GradientTable maps an input value to a colour through a set of control
// points sorted by Pos. Colours between points are blended per RGB channel.
type GradientTable []struct {
	Pos    float64
	Colour colorful.Color
}

// GetColor gets the colour at x. Inputs outside the table clamp to the first
// or last control point.
func (g GradientTable) GetColor(x float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}
	if x <= g[0].Pos {
		return g[0].Colour
	}

	for i := 0; i < len(g)-1; i++ {
		c1 := g[i]
		c2 := g[i+1]
		if c1.Pos <= x && x <= c2.Pos {
			if c2.Pos == c1.Pos {
				return c2.Colour
			}
			t := (x - c1.Pos) / (c2.Pos - c1.Pos)
			return c1.Colour.BlendRgb(c2.Colour, t)
		}
	}

	return g[len(g)-1].Colour
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
