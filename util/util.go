package util

// Lut is a curve sampled at evenly spaced points across [0, 1].
type Lut []float64

// GenerateLut samples fn at length points, including both ends of [0, 1].
func GenerateLut(fn func(float64) float64, length int) Lut {
	if length < 2 {
		length = 2
	}

	increment := 1.0 / float64(length-1)
	lut := make(Lut, length)
	for i := range lut {
		lut[i] = fn(float64(i) * increment)
	}
	lut[length-1] = fn(1.0)
	return lut
}

// At returns the table value at t, interpolating between neighbouring samples.
// t is clamped to [0, 1].
func (l Lut) At(t float64) float64 {
	if len(l) == 0 {
		return t
	}
	if t <= 0 {
		return l[0]
	}
	if t >= 1 {
		return l[len(l)-1]
	}

	pos := t * float64(len(l)-1)
	i := int(pos)
	frac := pos - float64(i)
	return l[i] + (l[i+1]-l[i])*frac
}
