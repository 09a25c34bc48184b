// Package glyph defines the fixed-pitch font tiers used for map text and
// draws strings with them.
//
// Every tier has a pinned glyph cell size. Layout code measures text only
// through these cells, so placement results do not depend on font rendering.
// Drawing uses the 7x13 bitmap face from golang.org/x/image, whose glyphs are
// six pixels wide, laid out at the tier's advance and vertically centred in
// the tier's cell.
package glyph

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Tier identifies a font size.
type Tier int

const (
	Tiny Tier = iota
	Small
	Medium
	Large
	Giant
)

// Metrics is the fixed glyph cell of a tier, in pixels.
type Metrics struct {
	W int
	H int
}

var metrics = [...]Metrics{
	Tiny:   {W: 5, H: 8},
	Small:  {W: 6, H: 13},
	Medium: {W: 7, H: 13},
	Large:  {W: 8, H: 16},
	Giant:  {W: 9, H: 15},
}

var names = [...]string{"tiny", "small", "medium", "large", "giant"}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return names[t]
}

// Metrics returns the glyph cell of t.
func (t Tier) Metrics() Metrics {
	return metrics[t]
}

// Measure returns the pixel size of s set in tier t.
func (t Tier) Measure(s string) (w, h int) {
	m := metrics[t]
	return utf8.RuneCountInString(s) * m.W, m.H
}

// Draw writes s onto dst with its top-left corner at (x, y).
func Draw(dst draw.Image, t Tier, x, y int, s string, c color.Color) {
	face := basicfont.Face7x13
	m := metrics[t]

	// The face cell is 13 pixels tall with an 11 pixel ascent.
	baseline := y + (m.H-face.Height)/2 + face.Ascent

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	i := 0
	for _, r := range s {
		d.Dot = fixed.P(x+i*m.W, baseline)
		d.DrawString(string(r))
		i++
	}
}
