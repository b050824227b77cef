// Package daynight models an animated regular polygon that scales in over a
// day or night background. A [Scene] holds the user settings and the
// animation state; every paint advances it and yields a [Frame] describing
// what to draw. Geometry is built with [BuildFan].
package daynight

import (
	"time"

	"github.com/soypat/glgl/math/ms1"
)

// Ranges of the user editable settings.
const (
	MaxSides = 50
	MinSpeed = 1
	MaxSpeed = 10
)

// Settings are the user editable parameters of the demo. UI widgets write
// directly into these fields between frames.
type Settings struct {
	Day   Color
	Night Color
	// Sides of the polygon, on the range MinSides..MaxSides.
	Sides int
	// Speed multiplies the animation rate, on the range MinSpeed..MaxSpeed.
	Speed float32
}

// DefaultSettings returns the settings the demo starts with.
func DefaultSettings() Settings {
	return Settings{
		Day:   DefaultDayColor,
		Night: DefaultNightColor,
		Sides: MinSides,
		Speed: MinSpeed,
	}
}

// Clamp returns s with every field within its valid range.
func (s Settings) Clamp() Settings {
	s.Day = s.Day.Clamp()
	s.Night = s.Night.Clamp()
	s.Sides = min(max(s.Sides, MinSides), MaxSides)
	s.Speed = ms1.Clamp(s.Speed, MinSpeed, MaxSpeed)
	return s
}

// Frame describes what to render for one paint callback.
type Frame struct {
	// Clear is the background color of the active mode.
	Clear Color
	// Draw is false when the animation idles at MaxFrame; only Clear applies.
	Draw bool
	// Sides and Fill are the fan mesh arguments. Fill is the color of the
	// inactive mode.
	Sides int
	Fill  Color
	// Scale is the value of the scale uniform.
	Scale float32
	// Flipped is set on the frame the counter reached MaxFrame and the mode changed.
	Flipped bool
}

// Scene owns the settings and animation state of a day/night window.
type Scene struct {
	Settings
	Animation
}

// NewScene returns a scene in Day mode at frame 0 with settings s clamped to valid ranges.
func NewScene(s Settings) *Scene {
	return &Scene{Settings: s.Clamp()}
}

// ActiveColor returns the color of the current mode.
func (s *Scene) ActiveColor() Color {
	return s.modeColor(s.Mode)
}

// InactiveColor returns the color of the mode that is not active.
func (s *Scene) InactiveColor() Color {
	return s.modeColor(s.Mode.Other())
}

func (s *Scene) modeColor(m Mode) Color {
	if m == Day {
		return s.Day
	}
	return s.Night
}

// Paint advances the scene by one rendered frame and returns what to draw.
// The clear color is chosen before the mode can flip, so the frame that
// reaches MaxFrame still clears with the previous mode's color.
func (s *Scene) Paint(now time.Time) Frame {
	f := Frame{Clear: s.ActiveColor()}
	if s.Done() {
		if !s.AutoRestart {
			return f
		}
		s.Restart()
	}
	s.advance(now, s.Speed)
	f.Draw = true
	f.Sides = s.Sides
	f.Fill = s.InactiveColor()
	f.Scale = s.Scale()
	if s.Done() {
		s.Mode = s.Mode.Other()
		f.Flipped = true
	}
	return f
}

// ChangeMode restarts the scale sweep. The mode itself is left unchanged;
// it flips when the sweep completes.
func (s *Scene) ChangeMode() {
	s.Restart()
}

// RestartAll restores the default colors. Frame, mode, sides and speed are kept.
func (s *Scene) RestartAll() {
	s.Day = DefaultDayColor
	s.Night = DefaultNightColor
}
