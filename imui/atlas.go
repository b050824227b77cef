package imui

import (
	"errors"
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/soypat/geometry/ms2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph = ' '
	lastGlyph  = '~'
	atlasWidth = 256
	cellPad    = 1
	numGlyphs  = lastGlyph - firstGlyph + 1
)

// GlyphQuad is a glyph to draw: Box in screen pixels and UV in normalized atlas coordinates.
type GlyphQuad struct {
	Box ms2.Box
	UV  ms2.Box
}

type glyphInfo struct {
	// bounds of the glyph relative to the pen on the baseline, y down.
	bounds  ms2.Box
	uv      ms2.Box
	advance float32
	empty   bool
}

// GlyphAtlas is a printable ASCII glyph atlas rasterized from a TrueType font.
// Runes outside the printable ASCII range are drawn as '?'.
type GlyphAtlas struct {
	img        *image.Alpha
	glyphs     [numGlyphs]glyphInfo
	ascent     float32
	lineHeight float32
	face       font.Face
}

// DefaultAtlas returns an atlas of the Go Regular font at 14pt.
func DefaultAtlas() (*GlyphAtlas, error) {
	return NewGlyphAtlas(goregular.TTF, 14)
}

// NewGlyphAtlas parses a TTF file blob and rasterizes it at the given point size (72 DPI).
func NewGlyphAtlas(ttf []byte, size float64) (*GlyphAtlas, error) {
	if size <= 0 {
		return nil, errors.New("font size must be positive")
	}
	ft, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(ft, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	metrics := face.Metrics()
	atlas := &GlyphAtlas{
		ascent:     float32(metrics.Ascent.Ceil()),
		lineHeight: float32(metrics.Height.Ceil()),
		face:       face,
	}

	// First pass: measure glyphs and pack cells in shelves.
	var rects [numGlyphs]image.Rectangle
	var cells [numGlyphs]image.Point
	x, y, shelf := 0, 0, 0
	for i := range atlas.glyphs {
		r := rune(firstGlyph + i)
		dr, _, _, adv, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			return nil, errors.New("font missing printable ASCII glyph " + string(r))
		}
		atlas.glyphs[i].advance = float32(adv) / 64
		rects[i] = dr
		if dr.Empty() {
			atlas.glyphs[i].empty = true
			continue
		}
		w, h := dr.Dx()+2*cellPad, dr.Dy()+2*cellPad
		if x+w > atlasWidth {
			x = 0
			y += shelf
			shelf = 0
		}
		cells[i] = image.Pt(x+cellPad, y+cellPad)
		x += w
		shelf = max(shelf, h)
	}
	atlas.img = image.NewAlpha(image.Rect(0, 0, atlasWidth, y+shelf))

	// Second pass: rasterize. The face reuses its mask buffer so each glyph
	// is drawn before the next one is requested.
	size2 := ms2.Vec{X: float32(atlas.img.Rect.Dx()), Y: float32(atlas.img.Rect.Dy())}
	for i := range atlas.glyphs {
		g := &atlas.glyphs[i]
		if g.empty {
			continue
		}
		dr0 := rects[i]
		dot := fixed.P(cells[i].X-dr0.Min.X, cells[i].Y-dr0.Min.Y)
		dr, mask, maskp, _, _ := face.Glyph(dot, rune(firstGlyph+i))
		draw.DrawMask(atlas.img, dr, image.Opaque, image.Point{}, mask, maskp, draw.Src)
		g.bounds = ms2.Box{
			Min: ms2.Vec{X: float32(dr0.Min.X), Y: float32(dr0.Min.Y)},
			Max: ms2.Vec{X: float32(dr0.Max.X), Y: float32(dr0.Max.Y)},
		}
		g.uv = ms2.Box{
			Min: ms2.Vec{X: float32(dr.Min.X) / size2.X, Y: float32(dr.Min.Y) / size2.Y},
			Max: ms2.Vec{X: float32(dr.Max.X) / size2.X, Y: float32(dr.Max.Y) / size2.Y},
		}
	}
	return atlas, nil
}

// Image returns the rasterized atlas. Glyph coverage is stored in the alpha channel.
func (a *GlyphAtlas) Image() *image.Alpha { return a.img }

// LineHeight returns the distance between consecutive baselines in pixels.
func (a *GlyphAtlas) LineHeight() float32 { return a.lineHeight }

// Measure returns the advance width of the widest line of s in pixels.
func (a *GlyphAtlas) Measure(s string) float32 {
	var width, widest float32
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			widest = max(widest, width)
			width = 0
			prev = -1
			continue
		}
		r = a.printable(r)
		if prev >= 0 {
			width += float32(a.face.Kern(prev, r)) / 64
		}
		width += a.glyph(r).advance
		prev = r
	}
	return max(widest, width)
}

// AppendLayout appends the quads of s with its first line box starting at
// topLeft. Glyphs with no coverage, such as spaces, advance the pen but add no quad.
func (a *GlyphAtlas) AppendLayout(dst []GlyphQuad, s string, topLeft ms2.Vec) []GlyphQuad {
	pen := ms2.Vec{X: topLeft.X, Y: topLeft.Y + a.ascent}
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			pen.X = topLeft.X
			pen.Y += a.lineHeight
			prev = -1
			continue
		}
		r = a.printable(r)
		if prev >= 0 {
			pen.X += float32(a.face.Kern(prev, r)) / 64
		}
		g := a.glyph(r)
		if !g.empty {
			dst = append(dst, GlyphQuad{
				Box: ms2.Box{Min: ms2.Add(pen, g.bounds.Min), Max: ms2.Add(pen, g.bounds.Max)},
				UV:  g.uv,
			})
		}
		pen.X += g.advance
		prev = r
	}
	return dst
}

func (a *GlyphAtlas) printable(r rune) rune {
	if r < firstGlyph || r > lastGlyph {
		return '?'
	}
	return r
}

func (a *GlyphAtlas) glyph(r rune) *glyphInfo {
	return &a.glyphs[r-firstGlyph]
}
