package screen

// Button is a rectangular tap target.
type Button struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point (x, y) lies inside the button.
func (b Button) Contains(x, y int) bool {
	px, py := float64(x), float64(y)
	return px >= b.X && px < b.X+b.Width && py >= b.Y && py < b.Y+b.Height
}
