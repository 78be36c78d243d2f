package anim

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Colours of the cube at the horizontal control points.
var (
	ColourStart = mustHex("#FF6347")
	ColourMid   = mustHex("#FFD700")
	ColourEnd   = mustHex("#32CD32")
)

// CubeGradient colours the cube by its horizontal offset.
var CubeGradient = GradientTable{
	{0.0, ColourStart},
	{150.0, ColourMid},
	{250.0, ColourEnd},
}

// Values is a snapshot of the five animated scalars.
type Values struct {
	X        float64
	Y        float64
	Scale    float64
	Rotation float64
	Opacity  float64
}

// Style holds the visual attributes of the cube derived from Values.
type Style struct {
	MarginLeft float64
	MarginTop  float64
	Scale      float64
	RotateX    float64 // degrees
	RotateY    float64 // degrees
	Opacity    float64
	Background colorful.Color
}

// Render derives the cube's style from a snapshot.
func Render(v Values) Style {
	degrees := v.Rotation * 360.0
	return Style{
		MarginLeft: v.X,
		MarginTop:  v.Y,
		Scale:      v.Scale,
		RotateX:    degrees,
		RotateY:    degrees,
		Opacity:    v.Opacity,
		Background: CubeGradient.GetColor(v.X),
	}
}
