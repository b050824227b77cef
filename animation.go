package daynight

import "time"

const (
	// MaxFrame is the value at which the animation counter stops and the mode flips.
	MaxFrame = 200
	// FrameStep is the amount the counter advances per throttle tick.
	FrameStep = 2
	// DefaultDelay is the fixed step throttle interval at speed 1.
	DefaultDelay = 32 * time.Millisecond
	// LegacyDelay is the paint spacing under which the legacy throttle advances.
	LegacyDelay = 160 * time.Millisecond
)

// Mode is the active background mode.
type Mode uint8

const (
	Day Mode = iota
	Night
)

func (m Mode) String() string {
	switch m {
	case Day:
		return "Day"
	case Night:
		return "Night"
	}
	return "Mode(?)"
}

// Other returns the opposite mode.
func (m Mode) Other() Mode {
	if m == Day {
		return Night
	}
	return Day
}

// Throttle selects how [Animation] gates counter increments on elapsed time.
type Throttle uint8

const (
	// ThrottleFixedStep advances the counter once per whole Delay/Speed
	// interval elapsed since the last advance.
	ThrottleFixedStep Throttle = iota
	// ThrottleLegacy advances the counter when the time since the previous
	// paint is less than Delay and restarts the timer on every paint.
	ThrottleLegacy
)

// Animation is the frame counter and mode state machine.
// The zero value starts in Day mode at frame 0 with the fixed step throttle.
type Animation struct {
	Frame int
	Mode  Mode
	// Delay is the throttle interval. Zero means DefaultDelay for the fixed
	// step throttle and LegacyDelay for the legacy throttle.
	Delay    time.Duration
	Throttle Throttle
	// AutoRestart resets the counter once it idles at MaxFrame instead of
	// waiting for [Animation.Restart].
	AutoRestart bool

	last time.Time
}

// Scale returns the scale factor for the current frame, 0 at frame 0 and 2 at MaxFrame.
func (a *Animation) Scale() float32 {
	return float32(a.Frame) / 100.0
}

// Done reports whether the counter reached MaxFrame.
func (a *Animation) Done() bool {
	return a.Frame >= MaxFrame
}

// Restart resets the counter to 0 without changing the mode.
func (a *Animation) Restart() {
	a.Frame = 0
	a.last = time.Time{}
}

func (a *Animation) delay() time.Duration {
	if a.Delay <= 0 {
		if a.Throttle == ThrottleLegacy {
			return LegacyDelay
		}
		return DefaultDelay
	}
	return a.Delay
}

// advance moves the counter according to the throttle. speed scales the
// fixed step interval and is ignored by the legacy throttle.
func (a *Animation) advance(now time.Time, speed float32) {
	if a.Done() {
		return
	}
	switch a.Throttle {
	case ThrottleLegacy:
		if !a.last.IsZero() && now.Sub(a.last) < a.delay() {
			a.Frame += FrameStep
		}
		a.last = now
	default:
		if a.last.IsZero() {
			a.last = now
			return
		}
		if speed < MinSpeed {
			speed = MinSpeed
		}
		interval := time.Duration(float32(a.delay()) / speed)
		if interval <= 0 {
			interval = 1
		}
		ticks := int(now.Sub(a.last) / interval)
		if ticks <= 0 {
			return
		}
		a.last = a.last.Add(time.Duration(ticks) * interval)
		a.Frame += ticks * FrameStep
	}
	if a.Frame > MaxFrame {
		a.Frame = MaxFrame
	}
}
