package daynight

import (
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/glgl/math/ms1"
)

// Color is a RGBA color with each channel on the range 0..1.
type Color struct {
	R, G, B, A float32
}

// Default colors restored by [Scene.RestartAll].
var (
	DefaultDayColor   = Color{R: 0.15, G: 0.463, B: 1.0, A: 0}
	DefaultNightColor = Color{R: 0, G: 0, B: 0.262, A: 0}
)

// RGB returns the red, green and blue channels of c as a vector, the layout
// used for per-vertex colors.
func (c Color) RGB() ms3.Vec {
	return ms3.Vec{X: c.R, Y: c.G, Z: c.B}
}

// Clamp returns c with all channels clamped to 0..1.
func (c Color) Clamp() Color {
	return Color{
		R: ms1.Clamp(c.R, 0, 1),
		G: ms1.Clamp(c.G, 0, 1),
		B: ms1.Clamp(c.B, 0, 1),
		A: ms1.Clamp(c.A, 0, 1),
	}
}
