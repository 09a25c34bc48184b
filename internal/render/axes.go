package render

import (
	"math"
	"strconv"

	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/glyph"
	"github.com/ironsheep/ftmap/internal/imaging"
	"github.com/ironsheep/ftmap/internal/placement"
)

// Tick lengths in pixels for every unit, every fifth unit and every tenth
// unit of the axes.
const (
	tickUnit  = 3
	tickFive  = 6
	tickTen   = 11
	yTextLead = 10
)

// drawAxes draws the left and bottom axes with their ticks and labels, the
// optional grid, and registers the map edges so annotations stay inside the
// map and clear of the axis labels.
//
//	      +----------------------+
//	 top  |                      |
//	      +-y-+--------------+---+
//	      | | |              |   |
//	 left | | |              |   | right
//	      | | |              |   |
//	      +-|-+--------------+---+
//	      | -----------------x   | bottom
//	      +----------------------+
func (r *renderer) drawAxes() error {
	w, h := r.width, r.height
	m := glyph.Small.Metrics()
	axes := imaging.Solid(r.pal.Axes)

	var grid imaging.Style
	if r.opts.Grid && r.pal.Grid != nil {
		grid = imaging.Style{r.pal.Grid, r.pal.Grid}
		if r.opts.Bitonal {
			grid = imaging.Style{r.pal.Grid, nil}
		}
	}

	r.canvas.Line(geom.Pt(0, 0), geom.Pt(0, h-1), axes)
	r.canvas.Line(geom.Pt(0, h-1), geom.Pt(w-1, h-1), axes)

	// The x axis labels sit on a band above the bottom edge.
	band := h - tickTen - m.H
	for a := int(math.Ceil(r.s.MinX)); geom.Round((float64(a)-r.s.MinX)*r.s.PPU) < w-1; a++ {
		x := geom.Round((float64(a) - r.s.MinX) * r.s.PPU)
		switch abs(a % 10) {
		case 0:
			text := strconv.Itoa(a)
			if x != 0 {
				r.canvas.Line(geom.Pt(x, h-1), geom.Pt(x, h-tickTen), axes)
				r.canvas.Text(glyph.Small, geom.Pt(x-(len(text)/2)*m.W, band), text, r.pal.AxesText)
			}
			if grid != nil {
				r.canvas.Line(geom.Pt(x, band), geom.Pt(x, 0), grid)
				if err := r.register(geom.NewBox(x, band, x, 0).Dilate(placement.LineDilation)); err != nil {
					return err
				}
			}
		case 5:
			r.canvas.Line(geom.Pt(x, h-1), geom.Pt(x, h-tickFive), axes)
		default:
			r.canvas.Line(geom.Pt(x, h-1), geom.Pt(x, h-tickUnit), axes)
		}
	}

	if err := r.register(geom.NewBox(-EdgeDilation, 0, w+EdgeDilation, -EdgeDilation)); err != nil {
		return err
	}
	if err := r.register(geom.NewBox(-EdgeDilation, h+EdgeDilation, w+EdgeDilation, band)); err != nil {
		return err
	}

	widest := 0
	for a := int(math.Ceil(r.s.MinY)); geom.Round((float64(a)-r.s.MinY)*r.s.PPU) < h-1; a++ {
		y := geom.Round(float64(h) - (float64(a)-r.s.MinY)*r.s.PPU)
		switch abs(a % 10) {
		case 0:
			text := strconv.Itoa(a)
			widest = max(widest, len(text))
			if y != h {
				r.canvas.Line(geom.Pt(0, y), geom.Pt(yTextLead, y), axes)
				r.canvas.Text(glyph.Small, geom.Pt(yTextLead+m.W, y-m.H/2), text, r.pal.AxesText)
			}
			if grid != nil {
				x := yTextLead + m.W*(len(text)+1)
				r.canvas.Line(geom.Pt(x, y), geom.Pt(w, y), grid)
				if err := r.register(geom.NewBox(x, y, w, y).Dilate(placement.LineDilation)); err != nil {
					return err
				}
			}
		case 5:
			r.canvas.Line(geom.Pt(0, y), geom.Pt(tickFive-1, y), axes)
		default:
			r.canvas.Line(geom.Pt(0, y), geom.Pt(tickUnit-1, y), axes)
		}
	}

	if err := r.register(geom.NewBox(-EdgeDilation, 0, yTextLead+m.W*(widest+1), h-1)); err != nil {
		return err
	}
	return r.register(geom.NewBox(w, 0, w+EdgeDilation, h-1))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
