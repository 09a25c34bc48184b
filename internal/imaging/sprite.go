package imaging

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/transform"
	"github.com/disintegration/imaging"
)

// Headings is the number of clock headings a sprite is pre-rotated to.
const Headings = 12

// SpriteOptions controls how a source sprite is turned into heading images.
type SpriteOptions struct {
	// Scale is applied to the source before rotation.
	Scale float64

	// Resample selects linear filtering when scaling and rotating.
	// Without it nearest-neighbour sampling keeps hard pixel edges.
	Resample bool

	// Key is the colour treated as transparent, normally the sprite
	// background (black on a colour map, white on a bitonal map).
	Key color.Color
}

// Recolor replaces every pixel matching from with to. When swap is set,
// pixels matching to become from as well.
func Recolor(src image.Image, from, to color.Color, swap bool) *image.RGBA {
	f := color.RGBAModel.Convert(from).(color.RGBA)
	t := color.RGBAModel.Convert(to).(color.RGBA)
	return adjust.Apply(src, func(c color.RGBA) color.RGBA {
		switch {
		case SameRGB(c, f):
			return color.RGBA{R: t.R, G: t.G, B: t.B, A: c.A}
		case swap && SameRGB(c, t):
			return color.RGBA{R: f.R, G: f.G, B: f.B, A: c.A}
		}
		return c
	})
}

// Invert swaps black and white, turning a white-on-black sprite into a
// black-on-white one for bitonal maps.
func Invert(src image.Image) *image.RGBA {
	return Recolor(src, color.Black, color.White, true)
}

// SpinSize returns the side of the square that holds src scaled by scale at
// any rotation.
func SpinSize(src image.Image, scale float64) int {
	b := src.Bounds()
	diag := math.Sqrt(float64(b.Dx()*b.Dx() + b.Dy()*b.Dy()))
	return int(0.9999 + scale*diag)
}

// Spin returns src scaled and rotated clockwise by degrees, centred on a
// transparent square of side SpinSize. Pixels of the key colour become
// transparent before any filtering so they never bleed into the sprite.
func Spin(src image.Image, degrees float64, opts SpriteOptions) *image.RGBA {
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	keyed := src
	if opts.Key != nil {
		keyed = keyOut(src, opts.Key)
	}

	filter := transform.NearestNeighbor
	if opts.Resample {
		filter = transform.Linear
	}

	b := src.Bounds()
	w := max(1, int(math.Round(float64(b.Dx())*scale)))
	h := max(1, int(math.Round(float64(b.Dy())*scale)))
	scaled := transform.Resize(keyed, w, h, filter)

	side := max(1, SpinSize(src, scale))
	square := imaging.PasteCenter(imaging.New(side, side, color.Transparent), scaled)

	return transform.Rotate(square, degrees, nil)
}

// SpinAll renders src at every clock heading, 30 degrees apart.
func SpinAll(src image.Image, opts SpriteOptions) [Headings]*image.RGBA {
	var out [Headings]*image.RGBA
	for h := 0; h < Headings; h++ {
		out[h] = Spin(src, float64(h)*360.0/Headings, opts)
	}
	return out
}

func keyOut(src image.Image, key color.Color) *image.RGBA {
	return adjust.Apply(src, func(c color.RGBA) color.RGBA {
		if SameRGB(c, key) {
			return color.RGBA{}
		}
		return c
	})
}
