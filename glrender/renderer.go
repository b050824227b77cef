//go:build !tinygo && cgo

package glrender

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/soypat/daynight"
	"github.com/soypat/daynight/glbuild"
	"github.com/soypat/glgl/v4.1-core/glgl"
)

// Renderer clears the window with the active mode color and draws the
// scaled polygon fan. Requires a current OpenGL context.
type Renderer struct {
	cfg      RendererConfig
	prog     glgl.Program
	scaleLoc int32
	fan      *FanBuffers
	mesh     daynight.FanMesh
	key      daynight.FanKey
	width    int32
	height   int32
}

// NewRenderer compiles the fan program and resolves its inputs.
func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	vert, frag := glbuild.NewDefaultProgrammer().FanSources()
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   vert,
		Fragment: frag,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling fan program: %w\n\n%s\n%s", err, vert, frag)
	}
	scaleLoc, err := prog.UniformLocation(glbuild.CString(glbuild.UniformScale))
	if err != nil {
		prog.Delete()
		return nil, err
	}
	fan, err := NewFanBuffers(prog)
	if err != nil {
		prog.Delete()
		return nil, err
	}
	return &Renderer{cfg: cfg, prog: prog, scaleLoc: scaleLoc, fan: fan}, nil
}

// Resize sets the viewport to the framebuffer size and clears it.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = int32(width), int32(height)
	gl.Viewport(0, 0, r.width, r.height)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Clear clears the color buffer with the last set clear color.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Paint clears with f.Clear and, when f.Draw is set, builds and uploads the
// fan mesh and draws it with the scale uniform set to f.Scale.
func (r *Renderer) Paint(f daynight.Frame) error {
	c := f.Clear
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if !f.Draw {
		return nil
	}
	key := daynight.KeyOf(f.Sides, f.Fill)
	if !r.cfg.CacheMesh || r.fan.Count() == 0 || key != r.key {
		err := r.mesh.Build(f.Sides, f.Fill)
		if err != nil {
			return err
		}
		err = r.fan.Upload(r.mesh)
		if err != nil {
			return fmt.Errorf("uploading fan: %w", err)
		}
		r.key = key
	}
	gl.Viewport(0, 0, r.width, r.height)
	r.prog.Bind()
	gl.Uniform1f(r.scaleLoc, f.Scale)
	r.fan.Draw()
	r.prog.Unbind()
	return glgl.Err()
}

// Uploads returns the amount of times fan buffers were created.
func (r *Renderer) Uploads() uint64 { return r.fan.Uploads() }

// Delete releases the program and fan buffers.
func (r *Renderer) Delete() {
	r.fan.Release()
	r.prog.Delete()
}
