//go:build !tinygo && cgo

package glrender

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/soypat/daynight/glbuild"
	"github.com/soypat/daynight/imui"
	"github.com/soypat/glgl/v4.1-core/glgl"
)

// Overlay draws [imui.DrawList]s over the scene with alpha blending.
type Overlay struct {
	prog     glgl.Program
	resLoc   int32
	atlasLoc int32
	vao      uint32
	vbo      uint32
	tex      uint32
	atlas    *imui.GlyphAtlas
	verts    []float32
	quads    []imui.GlyphQuad
}

// NewOverlay compiles the overlay program and uploads the glyph atlas as a texture.
func NewOverlay(atlas *imui.GlyphAtlas) (*Overlay, error) {
	if atlas == nil {
		return nil, errors.New("nil glyph atlas")
	}
	vert, frag := glbuild.NewDefaultProgrammer().OverlaySources()
	prog, err := glgl.CompileProgram(glgl.ShaderSource{
		Vertex:   vert,
		Fragment: frag,
	})
	if err != nil {
		return nil, fmt.Errorf("compiling overlay program: %w\n\n%s\n%s", err, vert, frag)
	}
	o := &Overlay{prog: prog, atlas: atlas}
	err = o.init()
	if err != nil {
		o.Delete()
		return nil, err
	}
	return o, nil
}

func (o *Overlay) init() (err error) {
	o.resLoc, err = o.prog.UniformLocation(glbuild.CString(glbuild.UniformResolution))
	if err != nil {
		return err
	}
	o.atlasLoc, err = o.prog.UniformLocation(glbuild.CString(glbuild.UniformAtlas))
	if err != nil {
		return err
	}
	var attribs [3]uint32
	for i, name := range []string{glbuild.AttribOverlayPos, glbuild.AttribOverlayUV, glbuild.AttribOverlayColor} {
		attribs[i], err = o.prog.AttribLocation(glbuild.CString(name))
		if err != nil {
			return err
		}
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	const stride = overlayStride * 4
	sizes := [3]int32{2, 2, 4}
	offset := 0
	for i, attrib := range attribs {
		gl.EnableVertexAttribArray(attrib)
		gl.VertexAttribPointer(attrib, sizes[i], gl.FLOAT, false, stride, gl.PtrOffset(offset))
		offset += 4 * int(sizes[i])
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	img := o.atlas.Image()
	gl.GenTextures(1, &o.tex)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return glgl.Err()
}

// Draw draws list in a window of the given size in screen coordinates.
func (o *Overlay) Draw(list imui.DrawList, width, height int) error {
	o.verts, o.quads = AppendOverlayVertices(o.verts[:0], list, o.atlas, o.quads)
	if len(o.verts) == 0 {
		return nil
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	o.prog.Bind()
	gl.Uniform2f(o.resLoc, float32(width), float32(height))
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.tex)
	gl.Uniform1i(o.atlasLoc, 0)

	gl.BindVertexArray(o.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*len(o.verts), gl.Ptr(o.verts), gl.DYNAMIC_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(o.verts)/overlayStride))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	o.prog.Unbind()
	gl.Disable(gl.BLEND)
	return glgl.Err()
}

// Delete releases the program, buffers and atlas texture.
func (o *Overlay) Delete() {
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.tex != 0 {
		gl.DeleteTextures(1, &o.tex)
		o.tex = 0
	}
	o.prog.Delete()
}
