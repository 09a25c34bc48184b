package imaging

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// None is the colour name that disables an optional map element.
const None = "none"

// ParseColor parses a colour written as "#RRGGBB", "RRGGBB", "#RGB" or as
// three decimal components "r g b" (commas allowed). The name "none" and
// the empty string yield a nil colour and no error.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, None) {
		return nil, nil
	}

	if fields := strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' }); len(fields) == 3 {
		var rgb [3]uint8
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 || v > 255 {
				return nil, fmt.Errorf("invalid colour component %q in %q", f, s)
			}
			rgb[i] = uint8(v)
		}
		return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}, nil
	}

	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// Blend returns orig moved (100-pctOriginal) percent of the way towards
// target in RGB space. The result is opaque.
func Blend(orig color.RGBA, target color.Color, pctOriginal int) color.RGBA {
	from := colorful.Color{
		R: float64(orig.R) / 255.0,
		G: float64(orig.G) / 255.0,
		B: float64(orig.B) / 255.0,
	}
	to, _ := colorful.MakeColor(opaque(target))
	r, g, b := from.BlendRgb(to, float64(100-pctOriginal)/100.0).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Hex formats c as "#RRGGBB", ignoring alpha.
func Hex(c color.Color) string {
	cc, _ := colorful.MakeColor(opaque(c))
	return strings.ToUpper(cc.Hex())
}

// SameRGB reports whether a and b have identical 8-bit RGB components.
func SameRGB(a, b color.Color) bool {
	ar, ag, ab, _ := a.RGBA()
	br, bg, bb, _ := b.RGBA()
	return ar>>8 == br>>8 && ag>>8 == bg>>8 && ab>>8 == bb>>8
}

// opaque drops alpha so colorful never sees a fully transparent colour,
// which it refuses to convert.
func opaque(c color.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}
