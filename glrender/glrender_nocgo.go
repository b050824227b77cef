//go:build tinygo || !cgo

package glrender

import (
	"errors"

	"github.com/soypat/daynight"
	"github.com/soypat/daynight/imui"
)

var errNoCGO = errors.New("OpenGL rendering requires CGo and is not supported on TinyGo")

type Renderer struct{}

func NewRenderer(cfg RendererConfig) (*Renderer, error) {
	return nil, errNoCGO
}

func (r *Renderer) Resize(width, height int) {}
func (r *Renderer) Clear() {}
func (r *Renderer) Paint(f daynight.Frame) error { return errNoCGO }
func (r *Renderer) Uploads() uint64 { return 0 }
func (r *Renderer) Delete() {}

type Overlay struct{}

func NewOverlay(atlas *imui.GlyphAtlas) (*Overlay, error) {
	return nil, errNoCGO
}

func (o *Overlay) Draw(list imui.DrawList, width, height int) error { return errNoCGO }
func (o *Overlay) Delete() {}
