package palette

import (
	"image"
	"image/color"
)

// Quantizer builds GIF palettes for rendered maps. The reserved colours come
// first, unchanged, so the map's own lines and text keep their exact
// colours; the remaining entries are filled from an octree over the image.
//
// Quantizer implements draw.Quantizer.
type Quantizer struct {
	Reserved color.Palette
}

// Quantize appends the reserved colours and up to the remaining capacity of
// p, at most ImageColors, octree colours taken from m.
func (q Quantizer) Quantize(p color.Palette, m image.Image) color.Palette {
	reserved := q.Reserved
	if room := cap(p) - len(p); len(reserved) > room {
		reserved = reserved[:room]
	}
	p = append(p, reserved...)

	room := min(cap(p)-len(p), ImageColors)
	if room <= 0 {
		return p
	}
	t := New(room)
	t.AddImage(m)
	return append(p, t.Palette()...)
}
