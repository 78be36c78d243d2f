package stream

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/cube/anim"
)

// FrameLength is the encoded size of a Frame: six float32 attributes
// followed by an RGB triple.
const FrameLength = 6*4 + 3

// ErrShortFrame is returned when decoding fewer than FrameLength bytes.
var ErrShortFrame = errors.New("stream: short frame")

// Frame is the style of the cube at one tick, as sent to subscribers.
type Frame struct {
	style anim.Style
}

// NewFrame creates a new Frame instance.
func NewFrame(style anim.Style) *Frame {
	f := new(Frame)
	f.style = style
	return f
}

func (f *Frame) Style() anim.Style {
	return f.style
}

// MarshalBinary converts a Frame into little endian binary data.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 0, FrameLength)
	for _, v := range []float64{
		f.style.MarginLeft,
		f.style.MarginTop,
		f.style.Scale,
		f.style.RotateX,
		f.style.RotateY,
		f.style.Opacity,
	} {
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(float32(v)))
	}

	r, g, b := f.style.Background.Clamped().RGB255()
	data = append(data, r, g, b)

	return data, nil
}

// UnmarshalBinary decodes data written by MarshalBinary.
func (f *Frame) UnmarshalBinary(data []byte) error {
	if len(data) < FrameLength {
		return ErrShortFrame
	}

	values := make([]float64, 6)
	for i := range values {
		values[i] = float64(math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:])))
	}
	rgb := data[24:27]

	f.style = anim.Style{
		MarginLeft: values[0],
		MarginTop:  values[1],
		Scale:      values[2],
		RotateX:    values[3],
		RotateY:    values[4],
		Opacity:    values[5],
		Background: colorful.Color{
			R: float64(rgb[0]) / 255.0,
			G: float64(rgb[1]) / 255.0,
			B: float64(rgb[2]) / 255.0,
		},
	}
	return nil
}
