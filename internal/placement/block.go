package placement

import (
	"iter"
	"math"

	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/glyph"
)

// BlockAnchors yields the top-left anchors scanned for a w x h text block
// on the placer's canvas, y-major and ascending. Rows are half a block
// apart; columns are one pixel apart and keep a margin of one glyph width
// on both sides.
func (p *Placer) BlockAnchors(w, h, margin int) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		step := max(h/2, 1)
		limit := float64(p.height) - float64(h)*1.5
		for y := h / 2; float64(y) < limit; y += step {
			for x := margin; x+w+margin < p.width; x++ {
				if !yield(geom.Pt(x, y)) {
					return
				}
			}
		}
	}
}

// PlaceBlock scans every anchor from BlockAnchors and returns the w x h
// box with the lowest clash score, keeping the first on ties. The scan never
// stops early. When the canvas is too small for any anchor the box at the
// origin is returned.
func (p *Placer) PlaceBlock(w, h, margin int) geom.Box {
	best := geom.NewBox(0, 0, w, h)
	bestScore := math.MaxInt
	for a := range p.BlockAnchors(w, h, margin) {
		b := geom.NewBox(a.X, a.Y, a.X+w, a.Y+h)
		if s := p.index.Score(b); s < bestScore {
			bestScore = s
			best = b
		}
	}
	return best
}

// PlaceTitle positions text set in tier t using PlaceBlock with a one glyph
// margin.
func (p *Placer) PlaceTitle(text string, t glyph.Tier) geom.Box {
	w, h := t.Measure(text)
	return p.PlaceBlock(w, h, t.Metrics().W)
}
