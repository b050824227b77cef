// Package glbuild generates the GLSL programs used to draw the day/night scene
// and its UI overlay.
package glbuild

import (
	"bytes"
	"errors"
	"io"
	"strconv"
)

const VersionStr = "#version 410\n"

// Vertex attribute and uniform names shared by generated shaders and the
// renderers that look them up.
const (
	AttribPosition = "inPosition"
	AttribColor    = "inColor"
	UniformScale   = "scale"

	AttribOverlayPos   = "aPos"
	AttribOverlayUV    = "aUV"
	AttribOverlayColor = "aColor"
	UniformResolution  = "uResolution"
	UniformAtlas       = "uAtlas"
)

// SolidUV is the texture coordinate overlay vertices use to mark an untextured
// (solid color) fragment.
const SolidUV float32 = -1

// Programmer writes shader source code. The zero value is not ready for use,
// create one with [NewDefaultProgrammer].
type Programmer struct {
	header  []byte
	scratch []byte
}

// NewDefaultProgrammer returns a Programmer targeting OpenGL 4.1 core.
func NewDefaultProgrammer() *Programmer {
	return &Programmer{
		header:  []byte(VersionStr),
		scratch: make([]byte, 0, 1024),
	}
}

// SetVersion sets the GLSL version directive written at the start of every shader, i.e: 410, 460.
func (p *Programmer) SetVersion(version int) error {
	if version < 330 {
		return errors.New("GLSL version must be 330 or newer")
	}
	p.header = append(p.header[:0], "#version "...)
	p.header = strconv.AppendInt(p.header, int64(version), 10)
	p.header = append(p.header, '\n')
	return nil
}

// WriteFanVertex writes the triangle fan vertex shader. Positions are
// multiplied by the scale uniform. inColor is declared vec4 so a 3 component
// color attribute gets an alpha of 1.
func (p *Programmer) WriteFanVertex(w io.Writer) (int, error) {
	b := append(p.scratch[:0], p.header...)
	b = append(b, "layout(location = 0) in vec2 "+AttribPosition+";\n"...)
	b = append(b, "layout(location = 1) in vec4 "+AttribColor+";\n"...)
	b = append(b, "uniform float "+UniformScale+";\n"...)
	b = append(b, `out vec4 fragColor;

void main() {
	vec2 newPosition = `+AttribPosition+` * `+UniformScale+`;
	gl_Position = vec4(newPosition, 0.0, 1.0);
	fragColor = `+AttribColor+`;
}
`...)
	p.scratch = b
	return w.Write(b)
}

// WriteFanFragment writes the triangle fan fragment shader which outputs the
// interpolated vertex color.
func (p *Programmer) WriteFanFragment(w io.Writer) (int, error) {
	b := append(p.scratch[:0], p.header...)
	b = append(b, `in vec4 fragColor;
out vec4 outColor;

void main() { outColor = fragColor; }
`...)
	p.scratch = b
	return w.Write(b)
}

// WriteOverlayVertex writes the UI overlay vertex shader. Positions are in window
// pixels with the origin at the top left corner.
func (p *Programmer) WriteOverlayVertex(w io.Writer) (int, error) {
	b := append(p.scratch[:0], p.header...)
	b = append(b, "in vec2 "+AttribOverlayPos+";\n"...)
	b = append(b, "in vec2 "+AttribOverlayUV+";\n"...)
	b = append(b, "in vec4 "+AttribOverlayColor+";\n"...)
	b = append(b, "uniform vec2 "+UniformResolution+";\n"...)
	b = append(b, `out vec2 vUV;
out vec4 vColor;

void main() {
	vec2 ndc = `+AttribOverlayPos+` / `+UniformResolution+` * 2.0 - 1.0;
	gl_Position = vec4(ndc.x, -ndc.y, 0.0, 1.0);
	vUV = `+AttribOverlayUV+`;
	vColor = `+AttribOverlayColor+`;
}
`...)
	p.scratch = b
	return w.Write(b)
}

// WriteOverlayFragment writes the UI overlay fragment shader. Fragments with
// a UV of [SolidUV] are filled with the vertex color, the rest are masked by
// the red channel of the glyph atlas.
func (p *Programmer) WriteOverlayFragment(w io.Writer) (int, error) {
	b := append(p.scratch[:0], p.header...)
	b = AppendFloatDecl(b, "solidUV", SolidUV)
	b = append(b, "uniform sampler2D "+UniformAtlas+";\n"...)
	b = append(b, `in vec2 vUV;
in vec4 vColor;
out vec4 outColor;

void main() {
	if (vUV.x <= solidUV) {
		outColor = vColor;
		return;
	}
	float mask = texture(`+UniformAtlas+`, vUV).r;
	outColor = vec4(vColor.rgb, vColor.a * mask);
}
`...)
	p.scratch = b
	return w.Write(b)
}

// FanSources returns the null terminated fan vertex and fragment shader sources.
func (p *Programmer) FanSources() (vertex, fragment string) {
	return p.sources(p.WriteFanVertex, p.WriteFanFragment)
}

// OverlaySources returns the null terminated overlay vertex and fragment shader sources.
func (p *Programmer) OverlaySources() (vertex, fragment string) {
	return p.sources(p.WriteOverlayVertex, p.WriteOverlayFragment)
}

func (p *Programmer) sources(vert, frag func(io.Writer) (int, error)) (vertex, fragment string) {
	var buf bytes.Buffer
	vert(&buf) // bytes.Buffer writes do not fail.
	buf.WriteByte(0)
	vertex = buf.String()
	buf.Reset()
	frag(&buf)
	buf.WriteByte(0)
	fragment = buf.String()
	return vertex, fragment
}

// CString returns s null terminated, as OpenGL name lookups require.
func CString(s string) string {
	if len(s) > 0 && s[len(s)-1] == 0 {
		return s
	}
	return s + "\x00"
}

// AppendFloatDecl appends a GLSL float constant declaration.
func AppendFloatDecl(b []byte, floatVarname string, v float32) []byte {
	b = append(b, "const float "...)
	b = append(b, floatVarname...)
	b = append(b, " = "...)
	b = AppendFloat(b, '-', '.', v)
	b = append(b, ";\n"...)
	return b
}

const decimalDigits = 9

// AppendFloat appends v in decimal notation using neg as the minus sign and
// decimal as the decimal separator. Trailing zeros after the separator are trimmed.
func AppendFloat(b []byte, neg, decimal byte, v float32) []byte {
	start := len(b)
	b = strconv.AppendFloat(b, float64(v), 'f', decimalDigits, 32)
	idx := bytes.IndexByte(b[start:], '.')
	if decimal != '.' && idx >= 0 {
		b[start+idx] = decimal
	}
	if b[start] == '-' {
		b[start] = neg
	}
	end := len(b)
	for i := len(b) - 1; idx >= 0 && i > idx+start+1 && b[i] == '0'; i-- {
		end--
	}
	return b[:end]
}
