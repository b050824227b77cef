// Package glrender draws the day/night scene and its UI overlay with OpenGL.
// GPU types require cgo; without it constructors return an error.
package glrender

import (
	"errors"
	"unsafe"

	"github.com/soypat/daynight"
	"github.com/soypat/daynight/glbuild"
	"github.com/soypat/daynight/imui"
	"github.com/soypat/geometry/ms2"
)

// RendererConfig configures a [Renderer].
type RendererConfig struct {
	// CacheMesh skips rebuilding the fan buffers when side count and fill
	// color are unchanged since the last upload. When false the buffers are
	// released and recreated on every drawn frame.
	CacheMesh bool
}

// bufferData is a pointer to the first element of a slice and the slice's
// size in bytes, the arguments of glBufferData.
type bufferData struct {
	ptr  unsafe.Pointer
	size int
}

func sliceData[T any](s []T) bufferData {
	if len(s) == 0 {
		return bufferData{}
	}
	return bufferData{ptr: unsafe.Pointer(&s[0]), size: len(s) * elemSize[T]()}
}

func elemSize[T any]() int {
	var z T
	return int(unsafe.Sizeof(z))
}

// fanBufferData returns the position and color buffer contents of mesh.
func fanBufferData(mesh daynight.FanMesh) (pos, color bufferData, err error) {
	if len(mesh.Positions) == 0 || len(mesh.Positions) != len(mesh.Colors) {
		return pos, color, errors.New("fan mesh position and color length mismatch or empty")
	}
	return sliceData(mesh.Positions), sliceData(mesh.Colors), nil
}

// overlayStride is the amount of float32 per overlay vertex: position(2), uv(2), color(4).
const overlayStride = 8

// AppendOverlayVertices appends two triangles per rectangle and glyph of list to dst.
// Rectangles are emitted first so text is drawn over them.
func AppendOverlayVertices(dst []float32, list imui.DrawList, atlas *imui.GlyphAtlas, scratch []imui.GlyphQuad) ([]float32, []imui.GlyphQuad) {
	solid := ms2.Box{
		Min: ms2.Vec{X: glbuild.SolidUV, Y: glbuild.SolidUV},
		Max: ms2.Vec{X: glbuild.SolidUV, Y: glbuild.SolidUV},
	}
	for _, r := range list.Rects {
		dst = appendQuad(dst, r.Box, solid, r.Color)
	}
	if atlas == nil {
		return dst, scratch
	}
	for _, txt := range list.Texts {
		scratch = atlas.AppendLayout(scratch[:0], txt.Text, txt.Origin)
		for _, q := range scratch {
			dst = appendQuad(dst, q.Box, q.UV, txt.Color)
		}
	}
	return dst, scratch
}

func appendQuad(dst []float32, box, uv ms2.Box, c imui.RGBA) []float32 {
	x0, y0, x1, y1 := box.Min.X, box.Min.Y, box.Max.X, box.Max.Y
	u0, v0, u1, v1 := uv.Min.X, uv.Min.Y, uv.Max.X, uv.Max.Y
	return append(dst,
		x0, y0, u0, v0, c[0], c[1], c[2], c[3],
		x1, y0, u1, v0, c[0], c[1], c[2], c[3],
		x1, y1, u1, v1, c[0], c[1], c[2], c[3],

		x0, y0, u0, v0, c[0], c[1], c[2], c[3],
		x1, y1, u1, v1, c[0], c[1], c[2], c[3],
		x0, y1, u0, v1, c[0], c[1], c[2], c[3],
	)
}
