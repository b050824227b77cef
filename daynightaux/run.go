//go:build !tinygo && cgo

package daynightaux

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/soypat/daynight/glrender"
	"github.com/soypat/daynight/imui"
	"github.com/soypat/geometry/ms2"
)

func run(app App, cfg WindowConfig) (err error) {
	log := logger(cfg.Silent)
	watch := stopwatch()
	window, term, err := startGLFW(cfg)
	if err != nil {
		return err
	}
	defer term()
	log("OpenGL", gl.GoStr(gl.GetString(gl.VERSION)))

	atlas, err := imui.DefaultAtlas()
	if err != nil {
		return fmt.Errorf("rasterizing UI font: %w", err)
	}
	overlay, err := glrender.NewOverlay(atlas)
	if err != nil {
		return err
	}
	defer overlay.Delete()
	style := imui.DefaultStyle()
	panel := imui.NewPanel(ms2.Vec{X: style.Padding, Y: style.Padding}, style, atlas)

	err = app.OnCreate()
	if err != nil {
		return err
	}
	defer app.OnDestroy()
	app.OnResize(window.GetFramebufferSize())
	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		app.OnResize(width, height)
	})
	log("window ready in", watch())

	ctx := cfg.Context
	for !window.ShouldClose() {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
		glfw.PollEvents()
		err = app.OnPaint(time.Now())
		if err != nil {
			return fmt.Errorf("paint: %w", err)
		}
		x, y := window.GetCursorPos()
		panel.Begin(imui.Input{
			Cursor: ms2.Vec{X: float32(x), Y: float32(y)},
			Down:   window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press,
		})
		app.OnPaintUI(panel)
		width, height := window.GetSize()
		err = overlay.Draw(panel.End(), width, height)
		if err != nil {
			return fmt.Errorf("paint UI: %w", err)
		}
		window.SwapBuffers()
	}
	return nil
}

func startGLFW(cfg WindowConfig) (window *glfw.Window, term func(), err error) {
	if err := glfw.Init(); err != nil {
		return nil, nil, fmt.Errorf("initializing GLFW: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err = glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, nil, fmt.Errorf("creating GLFW window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, nil, errors.Join(errors.New("initializing OpenGL"), err)
	}
	return window, glfw.Terminate, nil
}
