package daynightaux

import (
	"fmt"

	math "github.com/chewxy/math32"
	"github.com/soypat/daynight"
	"github.com/soypat/daynight/imui"
	"github.com/soypat/glgl/math/ms1"
)

// A great portion of logic in this file taken from Esme Lamb's (@dedelala)
// excellent color manipulation work presented at Gophercon AU 2024.
// https://github.com/dedelala/disco/tree/main/color

var (
	black = imui.RGBA{0, 0, 0, 1}
	white = imui.RGBA{1, 1, 1, 1}
)

// Hex returns the RGB channels of c in #RRGGBB notation. Channels are clamped to 0..1.
func Hex(c daynight.Color) string {
	return fmt.Sprintf("#%06X", rgbToC(c.R, c.G, c.B))
}

func toRGBA(c daynight.Color) imui.RGBA {
	return imui.RGBA{c.R, c.G, c.B, c.A}
}

// captionColor returns black or white, whichever reads best over c.
func captionColor(c daynight.Color) imui.RGBA {
	_, s, v := rgbToHSV(c.R, c.G, c.B)
	if v > 0.6 && s < 0.6 {
		return black
	}
	return white
}

// rgbToC converts r, g, and b float32 values on the range of 0.0 to 1.0 to a
// 24 bit RGB value stored in the least significant bits of a uint32. The inputs
// are clamped to the range of 0.0 to 1.0
func rgbToC(r, g, b float32) (c uint32) {
	return uint32(math.Round(ms1.Clamp(r, 0, 1)*math.MaxUint8))<<16 |
		uint32(math.Round(ms1.Clamp(g, 0, 1)*math.MaxUint8))<<8 |
		uint32(math.Round(ms1.Clamp(b, 0, 1)*math.MaxUint8))
}

// rgbToHSV converts red, green, and blue floating point values on the range
// 0.0 to 1.0 to hue, saturation and brightness values on the range 0.0 to 1.0
func rgbToHSV(r, g, b float32) (h, s, v float32) {
	var (
		xmax = max(r, g, b)
		xmin = min(r, g, b)
		c    = xmax - xmin
	)
	v = xmax
	switch {
	case c == 0:
		h = 0
	case v == r:
		h = (g - b) / (c * 6)
	case v == g:
		h = 1.0/3 + (b-r)/(c*6)
	case v == b:
		h = 2.0/3 + (r-g)/(c*6)
	}
	if h < 0 {
		h += 1
	}
	if xmax > 0 {
		s = c / xmax
	}
	return
}
