// Package daynightaux opens the day/night window and drives an [App] through
// its lifecycle. [DayNight] is the App that renders a [daynight.Scene].
package daynightaux

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/soypat/daynight"
	"github.com/soypat/daynight/glrender"
	"github.com/soypat/daynight/imui"
)

// App receives window lifecycle callbacks. All callbacks are invoked
// sequentially on the thread that called [Run] with the OpenGL context current.
type App interface {
	// OnCreate is called once after the context is created.
	OnCreate() error
	// OnResize is called with the framebuffer size at start and whenever it changes.
	OnResize(width, height int)
	// OnPaint renders one frame.
	OnPaint(now time.Time) error
	// OnPaintUI declares the UI widgets of the frame. Always called after OnPaint.
	OnPaintUI(p *imui.Panel)
	// OnDestroy releases resources before the window closes.
	OnDestroy()
}

// WindowConfig configures the window created by [Run].
type WindowConfig struct {
	Width, Height int
	Title         string
	// VSync synchronizes buffer swaps with the display refresh rate.
	VSync bool
	// Context, if set, closes the window when done.
	Context context.Context
	Silent  bool
}

// Run opens a window and drives app until the window is closed or the
// configured context is done. It must be called from the main thread, see
// [runtime.LockOSThread].
func Run(app App, cfg WindowConfig) error {
	if app == nil {
		return errors.New("nil App")
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}
	if cfg.Title == "" {
		cfg.Title = "Day/Night"
	}
	return run(app, cfg)
}

// FrameRenderer draws the scene frames. [glrender.Renderer] implements it.
type FrameRenderer interface {
	Paint(f daynight.Frame) error
	Resize(width, height int)
	Clear()
	Delete()
}

// DayNightConfig configures a [DayNight] controller.
type DayNightConfig struct {
	Renderer glrender.RendererConfig
	// NewRenderer overrides the OpenGL renderer. Used for testing.
	NewRenderer func() (FrameRenderer, error)
	Silent      bool
}

// DayNight is the window controller of the day/night demo: it advances the
// scene on every paint, hands the resulting frame to the renderer and exposes
// the scene settings through UI widgets.
type DayNight struct {
	Scene       *daynight.Scene
	newRenderer func() (FrameRenderer, error)
	renderer    FrameRenderer
	log         func(args ...any)
}

// NewDayNight returns a controller of scene.
func NewDayNight(scene *daynight.Scene, cfg DayNightConfig) *DayNight {
	newRenderer := cfg.NewRenderer
	if newRenderer == nil {
		newRenderer = func() (FrameRenderer, error) {
			r, err := glrender.NewRenderer(cfg.Renderer)
			if err != nil {
				return nil, err
			}
			return r, nil
		}
	}
	return &DayNight{
		Scene:       scene,
		newRenderer: newRenderer,
		log:         logger(cfg.Silent),
	}
}

func (dn *DayNight) OnCreate() error {
	r, err := dn.newRenderer()
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}
	dn.renderer = r
	dn.renderer.Clear()
	return nil
}

func (dn *DayNight) OnResize(width, height int) {
	if dn.renderer != nil {
		dn.renderer.Resize(width, height)
	}
}

func (dn *DayNight) OnPaint(now time.Time) error {
	if dn.renderer == nil {
		return errors.New("OnPaint called before OnCreate")
	}
	f := dn.Scene.Paint(now)
	if f.Flipped {
		dn.log("sweep complete, mode is now", dn.Scene.Mode)
	}
	return dn.renderer.Paint(f)
}

func (dn *DayNight) OnPaintUI(p *imui.Panel) {
	s := dn.Scene
	p.Text("Animation frame %d\nMode: %s", s.Frame, s.Mode)
	p.Text("Day Mode Color:")
	p.SliderFloat("Day_R", &s.Day.R, 0, 1)
	p.SliderFloat("Day_G", &s.Day.G, 0, 1)
	p.SliderFloat("Day_B", &s.Day.B, 0, 1)
	p.Swatch(toRGBA(s.Day), Hex(s.Day), captionColor(s.Day))

	p.Text("Night Mode Color:")
	p.SliderFloat("Night_R", &s.Night.R, 0, 1)
	p.SliderFloat("Night_G", &s.Night.G, 0, 1)
	p.SliderFloat("Night_B", &s.Night.B, 0, 1)
	p.Swatch(toRGBA(s.Night), Hex(s.Night), captionColor(s.Night))

	p.SliderInt("Sides", &s.Sides, daynight.MinSides, daynight.MaxSides)
	p.SliderFloat("Speed", &s.Speed, daynight.MinSpeed, daynight.MaxSpeed)

	if p.Button("Change Mode") {
		s.ChangeMode()
		dn.log("sweep restarted in", s.Mode, "mode")
	}
	if p.Button("Restart All") {
		s.RestartAll()
		if dn.renderer != nil {
			dn.renderer.Clear()
		}
		dn.log("colors restored to defaults")
	}
}

func (dn *DayNight) OnDestroy() {
	if dn.renderer != nil {
		dn.renderer.Delete()
		dn.renderer = nil
	}
}

func logger(silent bool) func(args ...any) {
	return func(args ...any) {
		if !silent {
			log.Println(args...)
		}
	}
}

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}
