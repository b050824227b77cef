package daynight

import (
	"errors"
	"fmt"

	math "github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
	"github.com/soypat/geometry/ms3"
)

// MinSides is the least amount of sides a polygon fan can have.
const MinSides = 3

// ErrTooFewSides is returned when building a fan with less than MinSides sides.
var ErrTooFewSides = errors.New("polygon needs at least 3 sides")

// FanMesh is a regular polygon laid out for drawing as a triangle fan.
// Vertex 0 is the center, vertices 1..N lie on the unit circle and the last
// vertex repeats vertex 1 to close the fan.
type FanMesh struct {
	// Positions are tightly packed 2 float32 components.
	Positions []ms2.Vec
	// Colors are tightly packed 3 float32 components, one per position.
	Colors []ms3.Vec
}

// BuildFan returns a new fan mesh of a regular polygon with the given amount
// of sides, every vertex colored with the RGB channels of fill.
func BuildFan(sides int, fill Color) (FanMesh, error) {
	var mesh FanMesh
	err := mesh.Build(sides, fill)
	return mesh, err
}

// Build overwrites the contents of mesh with a regular polygon fan, reusing
// allocated vertex storage.
func (mesh *FanMesh) Build(sides int, fill Color) error {
	if sides < MinSides {
		return fmt.Errorf("%w: got %d", ErrTooFewSides, sides)
	}
	n := sides + 2
	c := fill.RGB()
	mesh.Positions = append(mesh.Positions[:0], ms2.Vec{})
	mesh.Colors = mesh.Colors[:0]
	step := 2 * math.Pi / float32(sides)
	for i := 0; i < sides; i++ {
		// Angle from integer index so float error cannot add a vertex.
		s, co := math.Sincos(float32(i) * step)
		mesh.Positions = append(mesh.Positions, ms2.Vec{X: co, Y: s})
	}
	mesh.Positions = append(mesh.Positions, mesh.Positions[1])
	for i := 0; i < n; i++ {
		mesh.Colors = append(mesh.Colors, c)
	}
	return nil
}

// VertexCount returns the amount of vertices to draw.
func (mesh *FanMesh) VertexCount() int {
	return len(mesh.Positions)
}

// FanKey identifies the geometry a [FanMesh] was built from.
type FanKey struct {
	Sides int
	Fill  ms3.Vec
}

// KeyOf returns the key that identifies a fan with the given arguments.
func KeyOf(sides int, fill Color) FanKey {
	return FanKey{Sides: sides, Fill: fill.RGB()}
}
