package imaging

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/glyph"
)

// Style is a repeating per-pixel colour pattern for lines. A nil entry
// leaves the pixel untouched, so {c, nil, nil, nil} draws one pixel in four.
type Style []color.Color

// Solid returns a style that draws every pixel in c.
func Solid(c color.Color) Style {
	return Style{c}
}

// Dashed returns a style of on pixels in c followed by off transparent
// pixels.
func Dashed(c color.Color, on, off int) Style {
	s := make(Style, 0, on+off)
	for i := 0; i < on; i++ {
		s = append(s, c)
	}
	for i := 0; i < off; i++ {
		s = append(s, nil)
	}
	return s
}

// Canvas is the mutable map surface.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas creates a width x height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{img: img}
}

// Image returns the underlying RGBA image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// Set colours one pixel. Points outside the canvas are ignored.
func (c *Canvas) Set(p geom.Point, col color.Color) {
	if !image.Pt(p.X, p.Y).In(c.img.Bounds()) {
		return
	}
	c.img.Set(p.X, p.Y, col)
}

// At returns the colour of one pixel.
func (c *Canvas) At(p geom.Point) color.RGBA {
	return c.img.RGBAAt(p.X, p.Y)
}

// Line draws the segment p1-p2 inclusive of both ends using Bresenham's
// algorithm, advancing through style one pixel at a time.
func (c *Canvas) Line(p1, p2 geom.Point, style Style) {
	if len(style) == 0 {
		return
	}
	dx := abs(p2.X - p1.X)
	dy := -abs(p2.Y - p1.Y)
	sx, sy := 1, 1
	if p1.X > p2.X {
		sx = -1
	}
	if p1.Y > p2.Y {
		sy = -1
	}

	x, y := p1.X, p1.Y
	err := dx + dy
	for i := 0; ; i++ {
		if col := style[i%len(style)]; col != nil {
			c.Set(geom.Pt(x, y), col)
		}
		if x == p2.X && y == p2.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Outline draws the four edges of b.
func (c *Canvas) Outline(b geom.Box, style Style) {
	c.Line(geom.Pt(b.MinX, b.MinY), geom.Pt(b.MinX, b.MaxY), style)
	c.Line(geom.Pt(b.MinX, b.MaxY), geom.Pt(b.MaxX, b.MaxY), style)
	c.Line(geom.Pt(b.MaxX, b.MaxY), geom.Pt(b.MaxX, b.MinY), style)
	c.Line(geom.Pt(b.MaxX, b.MinY), geom.Pt(b.MinX, b.MinY), style)
}

// Text draws s in tier t with its top-left corner at p.
func (c *Canvas) Text(t glyph.Tier, p geom.Point, s string, col color.Color) {
	glyph.Draw(c.img, t, p.X, p.Y, s, col)
}

// DrawImage copies src onto the canvas with its top-left at p, replacing
// the pixels underneath.
func (c *Canvas) DrawImage(src image.Image, p geom.Point) {
	b := src.Bounds()
	r := image.Rect(p.X, p.Y, p.X+b.Dx(), p.Y+b.Dy())
	draw.Draw(c.img, r, src, b.Min, draw.Src)
}

// DrawSprite composites src over the canvas with its top-left at p.
// Transparent sprite pixels leave the canvas unchanged.
func (c *Canvas) DrawSprite(src image.Image, p geom.Point) {
	b := src.Bounds()
	r := image.Rect(p.X, p.Y, p.X+b.Dx(), p.Y+b.Dy())
	draw.Draw(c.img, r, src, b.Min, draw.Over)
}

// FadeBox blends every pixel of b, edges included, pct percent of the way
// to black.
func (c *Canvas) FadeBox(b geom.Box, pct int) {
	for x := b.MinX; x <= b.MaxX; x++ {
		for y := b.MinY; y <= b.MaxY; y++ {
			c.MergePixel(geom.Pt(x, y), color.Black, 100-pct)
		}
	}
}

// FadeCircle blends every pixel within radius r of centre pct percent of
// the way to black.
func (c *Canvas) FadeCircle(centre geom.Point, r, pct int) {
	for x := centre.X - r; x <= centre.X+r; x++ {
		for y := centre.Y - r; y <= centre.Y+r; y++ {
			dx := float64(x - centre.X)
			dy := float64(y - centre.Y)
			if math.Sqrt(dx*dx+dy*dy) <= float64(r) {
				c.MergePixel(geom.Pt(x, y), color.Black, 100-pct)
			}
		}
	}
}

// MergePixel replaces the pixel at p with a blend that keeps pctOriginal
// percent of its colour and takes the rest from target.
func (c *Canvas) MergePixel(p geom.Point, target color.Color, pctOriginal int) {
	if !image.Pt(p.X, p.Y).In(c.img.Bounds()) {
		return
	}
	c.img.SetRGBA(p.X, p.Y, Blend(c.img.RGBAAt(p.X, p.Y), target, pctOriginal))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
