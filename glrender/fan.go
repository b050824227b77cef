//go:build !tinygo && cgo

package glrender

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/soypat/daynight"
	"github.com/soypat/daynight/glbuild"
	"github.com/soypat/glgl/v4.1-core/glgl"
)

// FanBuffers holds the GPU side of a [daynight.FanMesh]: a position buffer,
// a color buffer and the vertex array binding them to the program attributes.
type FanBuffers struct {
	vao         uint32
	vboPos      uint32
	vboColor    uint32
	count       int32
	posAttrib   uint32
	colorAttrib uint32
	uploads     uint64
}

// NewFanBuffers resolves the fan attributes of prog. No GPU buffers are
// allocated until the first call to Upload.
func NewFanBuffers(prog glgl.Program) (*FanBuffers, error) {
	posAttrib, err := prog.AttribLocation(glbuild.CString(glbuild.AttribPosition))
	if err != nil {
		return nil, err
	}
	colorAttrib, err := prog.AttribLocation(glbuild.CString(glbuild.AttribColor))
	if err != nil {
		return nil, err
	}
	return &FanBuffers{posAttrib: posAttrib, colorAttrib: colorAttrib}, nil
}

// Upload releases the previously held buffers and vertex array and creates
// new ones holding mesh.
func (fb *FanBuffers) Upload(mesh daynight.FanMesh) error {
	pos, color, err := fanBufferData(mesh)
	if err != nil {
		return err
	}
	fb.Release()

	gl.GenBuffers(1, &fb.vboPos)
	gl.BindBuffer(gl.ARRAY_BUFFER, fb.vboPos)
	gl.BufferData(gl.ARRAY_BUFFER, pos.size, pos.ptr, gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenBuffers(1, &fb.vboColor)
	gl.BindBuffer(gl.ARRAY_BUFFER, fb.vboColor)
	gl.BufferData(gl.ARRAY_BUFFER, color.size, color.ptr, gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.GenVertexArrays(1, &fb.vao)
	gl.BindVertexArray(fb.vao)

	gl.EnableVertexAttribArray(fb.posAttrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, fb.vboPos)
	gl.VertexAttribPointer(fb.posAttrib, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.EnableVertexAttribArray(fb.colorAttrib)
	gl.BindBuffer(gl.ARRAY_BUFFER, fb.vboColor)
	gl.VertexAttribPointer(fb.colorAttrib, 3, gl.FLOAT, false, 0, gl.PtrOffset(0))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	gl.BindVertexArray(0)
	fb.count = int32(len(mesh.Positions))
	fb.uploads++
	return glgl.Err()
}

// Draw draws the uploaded fan with the currently bound program.
func (fb *FanBuffers) Draw() {
	if fb.vao == 0 {
		return
	}
	gl.BindVertexArray(fb.vao)
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, fb.count)
	gl.BindVertexArray(0)
}

// Count returns the amount of vertices uploaded.
func (fb *FanBuffers) Count() int { return int(fb.count) }

// Uploads returns the amount of times buffers were created.
func (fb *FanBuffers) Uploads() uint64 { return fb.uploads }

// Release deletes the buffers and vertex array. It is safe to call more than once.
func (fb *FanBuffers) Release() {
	if fb.vboPos != 0 {
		gl.DeleteBuffers(1, &fb.vboPos)
		fb.vboPos = 0
	}
	if fb.vboColor != 0 {
		gl.DeleteBuffers(1, &fb.vboColor)
		fb.vboColor = 0
	}
	if fb.vao != 0 {
		gl.DeleteVertexArrays(1, &fb.vao)
		fb.vao = 0
	}
	fb.count = 0
}
