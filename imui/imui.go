// Package imui implements a minimal immediate-mode UI panel. Widgets are
// declared every frame between [Panel.Begin] and [Panel.End]; the result is a
// [DrawList] of rectangles and text runs in window pixel coordinates with the
// origin at the top left corner.
package imui

import (
	"fmt"
	"strings"

	"github.com/soypat/geometry/ms2"
	"github.com/soypat/glgl/math/ms1"
)

// RGBA is a color with channels on the range 0..1.
type RGBA [4]float32

// Input is the pointer state sampled once per frame.
type Input struct {
	Cursor ms2.Vec
	// Down is true while the primary button is held.
	Down bool
}

// Measurer reports text extents in pixels.
type Measurer interface {
	// Measure returns the width of the widest line of s.
	Measure(s string) float32
	// LineHeight is the distance between consecutive baselines.
	LineHeight() float32
}

// Rect is a filled rectangle.
type Rect struct {
	Box   ms2.Box
	Color RGBA
	// Widget is the label of the widget this rectangle is the hit area of, or
	// empty for decorations.
	Widget string
}

// TextRun is a block of text whose first line box starts at Origin.
type TextRun struct {
	Origin ms2.Vec
	Text   string
	Color  RGBA
}

// DrawList is the output of one frame of widgets, in draw order.
type DrawList struct {
	Rects []Rect
	Texts []TextRun
}

// Style sets panel layout and colors.
type Style struct {
	Width        float32
	Padding      float32
	Spacing      float32
	LabelWidth   float32
	RowHeight    float32
	ButtonHeight float32
	GrabWidth    float32

	Background  RGBA
	Frame       RGBA
	FrameActive RGBA
	Grab        RGBA
	Button      RGBA
	ButtonHover RGBA
	Text        RGBA
}

// DefaultStyle returns a dark, slightly translucent style.
func DefaultStyle() Style {
	return Style{
		Width:        280,
		Padding:      8,
		Spacing:      4,
		LabelWidth:   70,
		RowHeight:    20,
		ButtonHeight: 30,
		GrabWidth:    10,

		Background:  RGBA{0.06, 0.06, 0.06, 0.94},
		Frame:       RGBA{0.16, 0.29, 0.48, 0.54},
		FrameActive: RGBA{0.26, 0.59, 0.98, 0.67},
		Grab:        RGBA{0.24, 0.52, 0.88, 1},
		Button:      RGBA{0.26, 0.59, 0.98, 0.40},
		ButtonHover: RGBA{0.26, 0.59, 0.98, 1},
		Text:        RGBA{1, 1, 1, 1},
	}
}

// Panel lays out widgets top to bottom in a fixed width column.
type Panel struct {
	Style  Style
	origin ms2.Vec
	text   Measurer
	pen    ms2.Vec
	in     Input
	prev   Input
	// active is the label of the widget that captured the current press.
	active string
	list   DrawList
}

// NewPanel returns a panel whose top left corner is at origin.
func NewPanel(origin ms2.Vec, style Style, text Measurer) *Panel {
	return &Panel{Style: style, origin: origin, text: text}
}

// Begin starts a new frame of widgets with the pointer state in.
func (p *Panel) Begin(in Input) {
	p.in = in
	p.list.Rects = p.list.Rects[:0]
	p.list.Texts = p.list.Texts[:0]
	// Background is resized in End once the content height is known.
	p.list.Rects = append(p.list.Rects, Rect{Color: p.Style.Background})
	p.pen = ms2.Vec{X: p.origin.X + p.Style.Padding, Y: p.origin.Y + p.Style.Padding}
}

// End finishes the frame and returns the draw list. The returned list is
// valid until the next call to Begin.
func (p *Panel) End() DrawList {
	p.list.Rects[0].Box = ms2.Box{
		Min: p.origin,
		Max: ms2.Vec{X: p.origin.X + p.Style.Width, Y: p.pen.Y - p.Style.Spacing + p.Style.Padding},
	}
	if !p.in.Down {
		p.active = ""
	}
	p.prev = p.in
	return p.list
}

// Contains reports whether the cursor is over the panel as laid out in the last frame.
func (p *Panel) Contains(cursor ms2.Vec) bool {
	if len(p.list.Rects) == 0 {
		return false
	}
	return inside(p.list.Rects[0].Box, cursor)
}

// Text adds a text block. Newlines in the formatted result start new lines.
func (p *Panel) Text(format string, args ...any) {
	s := fmt.Sprintf(format, args...)
	lines := strings.Count(s, "\n") + 1
	p.list.Texts = append(p.list.Texts, TextRun{Origin: p.pen, Text: s, Color: p.Style.Text})
	p.advance(float32(lines) * p.text.LineHeight())
}

// SliderFloat adds a horizontal slider editing v on the range lo..hi and
// reports whether v changed this frame.
func (p *Panel) SliderFloat(label string, v *float32, lo, hi float32) bool {
	track := p.sliderRow(label)
	changed := false
	if t, ok := p.drag(label, track); ok {
		nv := lo + t*(hi-lo)
		changed = nv != *v
		*v = nv
	}
	*v = ms1.Clamp(*v, lo, hi)
	p.sliderDecor(label, track, (*v-lo)/(hi-lo), fmt.Sprintf("%.3f", *v))
	return changed
}

// SliderInt adds a horizontal slider editing v on the range lo..hi and
// reports whether v changed this frame.
func (p *Panel) SliderInt(label string, v *int, lo, hi int) bool {
	track := p.sliderRow(label)
	changed := false
	if t, ok := p.drag(label, track); ok {
		nv := lo + int(t*float32(hi-lo)+0.5)
		changed = nv != *v
		*v = nv
	}
	*v = min(max(*v, lo), hi)
	p.sliderDecor(label, track, float32(*v-lo)/float32(hi-lo), fmt.Sprintf("%d", *v))
	return changed
}

// Button adds a full width button and reports whether it was clicked, that is,
// the pointer was pressed and released over it.
func (p *Panel) Button(label string) bool {
	box := p.row(p.Style.ButtonHeight)
	hover := inside(box, p.in.Cursor)
	if hover && p.pressed() {
		p.active = label
	}
	clicked := p.released() && p.active == label && hover
	color := p.Style.Button
	if hover || p.active == label {
		color = p.Style.ButtonHover
	}
	p.list.Rects = append(p.list.Rects, Rect{Box: box, Color: color, Widget: label})
	p.centeredText(box, label)
	return clicked
}

// Swatch adds a row filled with color c and a centered caption drawn in textColor.
func (p *Panel) Swatch(c RGBA, caption string, textColor RGBA) {
	box := p.row(p.Style.RowHeight)
	p.list.Rects = append(p.list.Rects, Rect{Box: box, Color: RGBA{c[0], c[1], c[2], 1}})
	p.list.Texts = append(p.list.Texts, TextRun{Origin: p.centerOf(box, caption), Text: caption, Color: textColor})
}

func (p *Panel) sliderRow(label string) ms2.Box {
	row := p.row(p.Style.RowHeight)
	row.Max.X -= p.Style.LabelWidth
	return row
}

// drag returns the normalized cursor position along track while the slider
// identified by label holds the pointer.
func (p *Panel) drag(label string, track ms2.Box) (t float32, ok bool) {
	if p.pressed() && inside(track, p.in.Cursor) {
		p.active = label
	}
	if p.active != label || !p.in.Down {
		return 0, false
	}
	w := track.Max.X - track.Min.X
	if w <= 0 {
		return 0, false
	}
	return ms1.Clamp((p.in.Cursor.X-track.Min.X)/w, 0, 1), true
}

func (p *Panel) sliderDecor(label string, track ms2.Box, t float32, value string) {
	frame := p.Style.Frame
	if p.active == label {
		frame = p.Style.FrameActive
	}
	p.list.Rects = append(p.list.Rects, Rect{Box: track, Color: frame, Widget: label})
	gw := p.Style.GrabWidth
	gx := track.Min.X + t*(track.Max.X-track.Min.X-gw)
	grab := ms2.Box{
		Min: ms2.Vec{X: gx, Y: track.Min.Y + 1},
		Max: ms2.Vec{X: gx + gw, Y: track.Max.Y - 1},
	}
	p.list.Rects = append(p.list.Rects, Rect{Box: grab, Color: p.Style.Grab})
	p.centeredText(track, value)
	labelOrigin := ms2.Vec{
		X: track.Max.X + p.Style.Spacing,
		Y: track.Min.Y + (track.Max.Y-track.Min.Y-p.text.LineHeight())/2,
	}
	p.list.Texts = append(p.list.Texts, TextRun{Origin: labelOrigin, Text: label, Color: p.Style.Text})
}

func (p *Panel) centeredText(box ms2.Box, s string) {
	p.list.Texts = append(p.list.Texts, TextRun{Origin: p.centerOf(box, s), Text: s, Color: p.Style.Text})
}

func (p *Panel) centerOf(box ms2.Box, s string) ms2.Vec {
	return ms2.Vec{
		X: (box.Min.X + box.Max.X - p.text.Measure(s)) / 2,
		Y: (box.Min.Y + box.Max.Y - p.text.LineHeight()) / 2,
	}
}

// row reserves a full width row of height h and returns its box.
func (p *Panel) row(h float32) ms2.Box {
	box := ms2.Box{
		Min: p.pen,
		Max: ms2.Vec{X: p.origin.X + p.Style.Width - p.Style.Padding, Y: p.pen.Y + h},
	}
	p.advance(h)
	return box
}

func (p *Panel) advance(h float32) {
	p.pen.Y += h + p.Style.Spacing
}

func (p *Panel) pressed() bool  { return p.in.Down && !p.prev.Down }
func (p *Panel) released() bool { return !p.in.Down && p.prev.Down }

func inside(box ms2.Box, v ms2.Vec) bool {
	return v.X >= box.Min.X && v.X < box.Max.X && v.Y >= box.Min.Y && v.Y < box.Max.Y
}
