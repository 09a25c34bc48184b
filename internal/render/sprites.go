package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/imaging"
)

// sprite is a class image pre-rotated to every clock heading.
type sprite struct {
	headings [imaging.Headings]*image.RGBA
	radius   int
}

// loadSprites reads and rotates the image of every class. Sprites are drawn
// white on black; bitonal maps invert them and colour maps swap white for
// the foreground colour.
func (r *renderer) loadSprites() error {
	white := color.RGBA{255, 255, 255, 255}
	key := color.Color(color.RGBA{0, 0, 0, 255})
	if r.opts.Bitonal {
		key = white
	}

	r.sprites = make([]sprite, len(r.s.Classes))
	for i, c := range r.s.Classes {
		src, err := r.images.Load(c.Image)
		if err != nil {
			return fmt.Errorf("class %s: %w", c.Name, err)
		}

		switch {
		case r.opts.Bitonal:
			src = imaging.Invert(src)
		case r.pal.Foreground != nil && !imaging.SameRGB(r.pal.Foreground, white):
			src = imaging.Recolor(src, white, r.pal.Foreground, false)
		}

		headings := imaging.SpinAll(src, imaging.SpriteOptions{
			Scale:    c.Scale,
			Resample: r.opts.Resample,
			Key:      key,
		})
		sp := sprite{headings: headings, radius: headings[0].Bounds().Dx() / 2}
		r.sprites[i] = sp
		r.log.Debug("loaded sprite", "class", c.Name, "image", r.images.Resolve(c.Image), "radius", sp.radius)
	}
	return nil
}

// drawBackground copies the scenario's background image onto colour maps.
// A background that cannot be loaded is reported and the map is drawn
// plain.
func (r *renderer) drawBackground() error {
	if r.opts.Bitonal || !r.s.HasBackground() {
		return nil
	}
	back, err := r.images.Load(r.s.Background)
	if err != nil {
		r.log.Warn("unable to load background image, drawing a plain map", "err", err)
		return nil
	}
	r.canvas.DrawImage(imaging.FitBackground(back, r.width, r.height, r.opts.Wallpaper), geom.Pt(0, 0))
	r.background = true
	return nil
}
