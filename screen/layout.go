package screen

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/cube/anim"
)

// Logical screen size.
const (
	ScreenWidth  = 480
	ScreenHeight = 800
)

// CubeSize is the side of the unscaled cube in pixels.
const CubeSize = 150

// Top-left of the cube at zero offset. The cube travels anim.Travel pixels
// right and down from here.
const (
	originX = (ScreenWidth - CubeSize - anim.Travel) / 2
	originY = 120
)

const (
	titleY  = 60
	buttonY = originY + anim.Travel + CubeSize + 50
	labelY  = buttonY + 80

	// Size of a glyph in ebitenutil's debug font.
	glyphWidth  = 6
	glyphHeight = 16
)

// Background of the screen.
var Background, _ = colorful.Hex("#4e73df")

var toggleButton = Button{
	X:      ScreenWidth * 0.1,
	Y:      buttonY,
	Width:  ScreenWidth * 0.8,
	Height: 44,
}

// CubeTransform places the cube on screen.
type CubeTransform struct {
	CenterX float64
	CenterY float64
	ScaleX  float64
	ScaleY  float64
}

// cubeTransform projects a style onto the flat screen. Rotation about the X
// axis foreshortens the cube's height and rotation about Y its width.
func cubeTransform(s anim.Style) CubeTransform {
	return CubeTransform{
		CenterX: originX + s.MarginLeft + CubeSize/2,
		CenterY: originY + s.MarginTop + CubeSize/2,
		ScaleX:  s.Scale * math.Cos(s.RotateY*math.Pi/180),
		ScaleY:  s.Scale * math.Cos(s.RotateX*math.Pi/180),
	}
}

// centredX is the x coordinate that centres text on the screen.
func centredX(text string) int {
	return (ScreenWidth - len(text)*glyphWidth) / 2
}

func buttonLabel(running bool) string {
	if running {
		return "Stop Animation"
	}
	return "Start Animation"
}
