package daynight

import (
	"errors"
	"testing"

	math "github.com/chewxy/math32"
	"github.com/soypat/geometry/ms2"
)

const tol = 1e-6

func TestBuildFanCounts(t *testing.T) {
	fill := Color{R: 0.1, G: 0.2, B: 0.3, A: 0.4}
	for sides := MinSides; sides <= MaxSides; sides++ {
		mesh, err := BuildFan(sides, fill)
		if err != nil {
			t.Fatal(sides, err)
		}
		if len(mesh.Positions) != sides+2 {
			t.Errorf("sides=%d: want %d positions, got %d", sides, sides+2, len(mesh.Positions))
		}
		if len(mesh.Colors) != sides+2 {
			t.Errorf("sides=%d: want %d colors, got %d", sides, sides+2, len(mesh.Colors))
		}
		if mesh.VertexCount() != sides+2 {
			t.Errorf("sides=%d: bad vertex count %d", sides, mesh.VertexCount())
		}
		if mesh.Positions[0] != (ms2.Vec{}) {
			t.Errorf("sides=%d: center not at origin: %v", sides, mesh.Positions[0])
		}
		if mesh.Positions[sides+1] != mesh.Positions[1] {
			t.Errorf("sides=%d: closing vertex %v != first perimeter vertex %v", sides, mesh.Positions[sides+1], mesh.Positions[1])
		}
		for i, c := range mesh.Colors {
			if c != fill.RGB() {
				t.Fatalf("sides=%d: color %d is %v, want %v", sides, i, c, fill.RGB())
			}
		}
		for i, p := range mesh.Positions[1:] {
			if r := math.Hypot(p.X, p.Y); math.Abs(r-1) > tol {
				t.Errorf("sides=%d: vertex %d off unit circle, r=%g", sides, i+1, r)
			}
		}
	}
}

func TestBuildFanSquare(t *testing.T) {
	mesh, err := BuildFan(4, DefaultDayColor)
	if err != nil {
		t.Fatal(err)
	}
	want := []ms2.Vec{{}, {X: 1}, {Y: 1}, {X: -1}, {Y: -1}, {X: 1}}
	for i := range want {
		got := mesh.Positions[i]
		if math.Abs(got.X-want[i].X) > tol || math.Abs(got.Y-want[i].Y) > tol {
			t.Errorf("vertex %d: want %v, got %v", i, want[i], got)
		}
	}
}

func TestBuildFanTooFewSides(t *testing.T) {
	for _, sides := range []int{-1, 0, 1, 2} {
		_, err := BuildFan(sides, DefaultDayColor)
		if !errors.Is(err, ErrTooFewSides) {
			t.Errorf("sides=%d: want ErrTooFewSides, got %v", sides, err)
		}
	}
}

func TestBuildFanIdempotent(t *testing.T) {
	a, _ := BuildFan(7, DefaultNightColor)
	var b FanMesh
	// Reused storage must not leak vertices from a larger previous build.
	if err := b.Build(30, DefaultDayColor); err != nil {
		t.Fatal(err)
	}
	if err := b.Build(7, DefaultNightColor); err != nil {
		t.Fatal(err)
	}
	if len(a.Positions) != len(b.Positions) || len(a.Colors) != len(b.Colors) {
		t.Fatalf("length mismatch %d/%d vs %d/%d", len(a.Positions), len(a.Colors), len(b.Positions), len(b.Colors))
	}
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] || a.Colors[i] != b.Colors[i] {
			t.Errorf("vertex %d differs: %v %v vs %v %v", i, a.Positions[i], a.Colors[i], b.Positions[i], b.Colors[i])
		}
	}
	if KeyOf(7, DefaultNightColor) != KeyOf(7, DefaultNightColor) {
		t.Error("equal arguments produced different keys")
	}
	if KeyOf(7, DefaultNightColor) == KeyOf(8, DefaultNightColor) {
		t.Error("key ignores side count")
	}
}
