package anim

// A Scalar is a single animated value. It is not safe for concurrent use;
// the Controller serialises access.
type Scalar struct {
	name  string
	value float64
}

// NewScalar creates a Scalar holding initial.
func NewScalar(name string, initial float64) *Scalar {
	s := new(Scalar)
	s.name = name
	s.value = initial
	return s
}

func (s *Scalar) Name() string {
	return s.name
}

func (s *Scalar) Value() float64 {
	return s.value
}

func (s *Scalar) Set(v float64) {
	s.value = v
}
