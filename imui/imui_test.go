package imui

import (
	"strings"
	"testing"

	"github.com/soypat/geometry/ms2"
)

// mono is a monospace measurer for layout tests.
type mono struct{}

func (mono) Measure(s string) float32 {
	widest := 0
	for _, line := range strings.Split(s, "\n") {
		widest = max(widest, len(line))
	}
	return float32(8 * widest)
}

func (mono) LineHeight() float32 { return 16 }

func widgetBox(t *testing.T, list DrawList, label string) ms2.Box {
	t.Helper()
	for _, r := range list.Rects {
		if r.Widget == label {
			return r.Box
		}
	}
	t.Fatalf("widget %q not in draw list", label)
	return ms2.Box{}
}

func center(b ms2.Box) ms2.Vec {
	return ms2.Vec{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

func TestSliderDrag(t *testing.T) {
	p := NewPanel(ms2.Vec{X: 10, Y: 10}, DefaultStyle(), mono{})
	v := float32(0.5)
	frame := func(in Input) (bool, DrawList) {
		p.Begin(in)
		changed := p.SliderFloat("R", &v, 0, 1)
		return changed, p.End()
	}
	_, list := frame(Input{})
	track := widgetBox(t, list, "R")
	y := center(track).Y

	// Press at the left edge.
	changed, _ := frame(Input{Cursor: ms2.Vec{X: track.Min.X, Y: y}, Down: true})
	if !changed || v != 0 {
		t.Fatalf("press at left edge: changed=%v v=%g", changed, v)
	}
	// Dragging past the right edge clamps, even outside the track.
	changed, _ = frame(Input{Cursor: ms2.Vec{X: track.Max.X + 100, Y: y + 100}, Down: true})
	if !changed || v != 1 {
		t.Fatalf("drag past right edge: changed=%v v=%g", changed, v)
	}
	// Release leaves the value.
	changed, _ = frame(Input{Cursor: center(track)})
	if changed || v != 1 {
		t.Fatalf("release: changed=%v v=%g", changed, v)
	}
	// Hovering without pressing does nothing.
	changed, _ = frame(Input{Cursor: ms2.Vec{X: track.Min.X, Y: y}})
	if changed || v != 1 {
		t.Fatalf("hover: changed=%v v=%g", changed, v)
	}
}

func TestSliderPressOutsideIgnored(t *testing.T) {
	p := NewPanel(ms2.Vec{}, DefaultStyle(), mono{})
	v := float32(0.25)
	p.Begin(Input{})
	p.SliderFloat("G", &v, 0, 1)
	list := p.End()
	track := widgetBox(t, list, "G")

	// Press starts below the slider then moves onto it while held.
	p.Begin(Input{Cursor: ms2.Vec{X: track.Min.X, Y: track.Max.Y + 50}, Down: true})
	p.SliderFloat("G", &v, 0, 1)
	p.End()
	p.Begin(Input{Cursor: center(track), Down: true})
	changed := p.SliderFloat("G", &v, 0, 1)
	p.End()
	if changed || v != 0.25 {
		t.Fatalf("slider captured a press that started elsewhere: v=%g", v)
	}
}

func TestSliderInt(t *testing.T) {
	p := NewPanel(ms2.Vec{}, DefaultStyle(), mono{})
	sides := 3
	p.Begin(Input{})
	p.SliderInt("Sides", &sides, 3, 50)
	track := widgetBox(t, p.End(), "Sides")

	p.Begin(Input{Cursor: ms2.Vec{X: track.Max.X - 0.001, Y: center(track).Y}, Down: true})
	changed := p.SliderInt("Sides", &sides, 3, 50)
	p.End()
	if !changed || sides != 50 {
		t.Fatalf("want 50, got %d (changed=%v)", sides, changed)
	}
	p.Begin(Input{Cursor: center(track), Down: true})
	p.SliderInt("Sides", &sides, 3, 50)
	p.End()
	if sides < 26 || sides > 27 {
		t.Errorf("center of track should be mid range, got %d", sides)
	}
	// Out of range values written elsewhere are clamped on display.
	sides = 99
	p.Begin(Input{})
	p.SliderInt("Sides", &sides, 3, 50)
	p.End()
	if sides != 50 {
		t.Errorf("want clamp to 50, got %d", sides)
	}
}

func TestButtonClick(t *testing.T) {
	p := NewPanel(ms2.Vec{}, DefaultStyle(), mono{})
	frame := func(in Input) (a, b bool, list DrawList) {
		p.Begin(in)
		a = p.Button("A")
		b = p.Button("B")
		return a, b, p.End()
	}
	_, _, list := frame(Input{})
	boxA := widgetBox(t, list, "A")
	boxB := widgetBox(t, list, "B")
	if boxB.Min.Y <= boxA.Max.Y-1 {
		t.Fatalf("buttons overlap: %v %v", boxA, boxB)
	}

	a, b, _ := frame(Input{Cursor: center(boxA), Down: true})
	if a || b {
		t.Fatal("buttons fire on release, not on press")
	}
	a, b, _ = frame(Input{Cursor: center(boxA)})
	if !a || b {
		t.Fatalf("want A clicked, got a=%v b=%v", a, b)
	}
	// Press on A, release on B: no click.
	frame(Input{Cursor: center(boxA), Down: true})
	a, b, _ = frame(Input{Cursor: center(boxB)})
	if a || b {
		t.Fatalf("dragged release must not click: a=%v b=%v", a, b)
	}
}

func TestTextLayout(t *testing.T) {
	p := NewPanel(ms2.Vec{}, DefaultStyle(), mono{})
	p.Begin(Input{})
	p.Text("Animation frame %d\nMode: %s", 42, "Day")
	p.Text("after")
	list := p.End()
	lineHeight := mono{}.LineHeight()
	if len(list.Texts) != 2 {
		t.Fatalf("want 2 text runs, got %d", len(list.Texts))
	}
	if list.Texts[0].Text != "Animation frame 42\nMode: Day" {
		t.Errorf("bad formatting %q", list.Texts[0].Text)
	}
	dy := list.Texts[1].Origin.Y - list.Texts[0].Origin.Y
	if dy < 2*lineHeight {
		t.Errorf("two line text must push the next widget down by two lines, got %g", dy)
	}
	bg := list.Rects[0].Box
	if !p.Contains(ms2.Vec{X: 1, Y: 1}) || p.Contains(ms2.Vec{X: bg.Max.X + 1, Y: 1}) {
		t.Error("bad panel hit test")
	}
	if bg.Max.Y < list.Texts[1].Origin.Y+lineHeight {
		t.Errorf("background %v does not cover content", bg)
	}
}

func TestGlyphAtlas(t *testing.T) {
	atlas, err := DefaultAtlas()
	if err != nil {
		t.Fatal(err)
	}
	img := atlas.Image()
	if img.Rect.Dx() != atlasWidth || img.Rect.Dy() <= 0 {
		t.Fatalf("bad atlas size %v", img.Rect)
	}
	if atlas.LineHeight() <= 0 {
		t.Fatal("zero line height")
	}
	var covered int
	for _, a := range img.Pix {
		if a > 0 {
			covered++
		}
	}
	if covered == 0 {
		t.Fatal("atlas has no glyph coverage")
	}

	quads := atlas.AppendLayout(nil, "AB", ms2.Vec{X: 10, Y: 10})
	if len(quads) != 2 {
		t.Fatalf("want 2 quads, got %d", len(quads))
	}
	if quads[1].Box.Min.X <= quads[0].Box.Min.X {
		t.Errorf("glyphs not laid out left to right: %v %v", quads[0].Box, quads[1].Box)
	}
	for _, q := range quads {
		if q.UV.Min.X < 0 || q.UV.Max.X > 1 || q.UV.Min.Y < 0 || q.UV.Max.Y > 1 {
			t.Errorf("uv out of range %v", q.UV)
		}
		if q.Box.Min.Y < 10 {
			t.Errorf("glyph above line box: %v", q.Box)
		}
	}
	if n := len(atlas.AppendLayout(nil, "A B", ms2.Vec{})); n != 2 {
		t.Errorf("space must not produce a quad, got %d quads", n)
	}
	twoLines := atlas.AppendLayout(nil, "A\nA", ms2.Vec{})
	if len(twoLines) != 2 || twoLines[1].Box.Min.Y-twoLines[0].Box.Min.Y != atlas.LineHeight() {
		t.Errorf("newline must move one line down: %v", twoLines)
	}
	if atlas.Measure("AB") <= atlas.Measure("A") || atlas.Measure("A\nA") != atlas.Measure("A") {
		t.Error("bad measure")
	}
	if atlas.Measure("é") != atlas.Measure("?") {
		t.Error("non ASCII runes must fall back to '?'")
	}
}
