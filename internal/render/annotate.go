package render

import (
	"strings"

	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/glyph"
	"github.com/ironsheep/ftmap/internal/imaging"
	"github.com/ironsheep/ftmap/internal/placement"
)

// annotateObjects labels every named object in scenario order. Each label
// is registered before the next is placed.
func (r *renderer) annotateObjects() error {
	for _, o := range r.objects {
		if strings.TrimSpace(o.Name) != "" {
			if err := r.label(o); err != nil {
				return err
			}
		}
		if r.pal.Locus != nil {
			r.canvas.Set(o.center, r.pal.Locus)
		}
	}
	return nil
}

func (r *renderer) label(o object) error {
	w, h := glyph.Small.Measure(o.Name)
	f := placement.Feature{Center: o.center, Radius: r.sprites[o.class].radius, Name: o.Name}
	l := r.placer.PlaceLabel(f, w, h)
	text := l.Text

	if r.background {
		r.canvas.FadeBox(text, LabelFade)
	}
	r.canvas.Text(glyph.Small, text.TopLeft(), o.Name, r.pal.LabelText)

	// The leader meets the dilated box, leaving the text margin clear.
	margin := text.Dilate(placement.TextDilation)
	if err := r.register(margin); err != nil {
		return err
	}

	leader := r.pal.Leader != nil
	if leader {
		end := margin.ClosestMidpoint(o.center)
		r.canvas.Line(end, o.center, imaging.Solid(r.pal.Leader))
		if err := r.register(geom.LineBox(end, o.center, placement.LineDilation)); err != nil {
			return err
		}
	}

	r.result.Labels = append(r.result.Labels, PlacedLabel{
		Name:   o.Name,
		Text:   text,
		Score:  l.Score,
		Tried:  l.Tried,
		Leader: leader,
	})
	r.log.Debug("placed label", "name", o.Name, "at", text.TopLeft(), "score", l.Score, "tried", l.Tried)
	return nil
}

// drawTitle places the title where it clashes least with everything drawn
// so far. A blank title is skipped.
func (r *renderer) drawTitle() error {
	title := strings.TrimSpace(r.s.Title)
	if title == "" {
		return nil
	}

	// On a canvas too small to scan, the title still gets its full size at
	// the origin rather than an empty box, so it is drawn and registered.
	box := r.placer.PlaceTitle(title, glyph.Giant)
	if r.background {
		r.canvas.FadeBox(box, TitleFade)
	}
	r.canvas.Text(glyph.Giant, box.TopLeft(), title, r.pal.TitleText)
	r.result.Title = &box
	r.log.Debug("placed title", "box", box)
	return r.register(box.Dilate(placement.TextDilation))
}

// drawLegend draws the classes flagged for the legend in the top-right
// corner. The legend is drawn over whatever is already there.
func (r *renderer) drawLegend() error {
	if !r.opts.Legend {
		return nil
	}

	var classes []int
	var entries []placement.LegendEntry
	for i, c := range r.s.Classes {
		if c.Legend {
			classes = append(classes, i)
			entries = append(entries, placement.LegendEntry{Name: c.Name, Radius: r.sprites[i].radius})
		}
	}
	if len(entries) == 0 {
		r.log.Debug("no classes flagged for the legend")
		return nil
	}

	lg := placement.PlaceLegend(entries, r.width, glyph.Small)
	if r.background {
		r.canvas.FadeBox(lg.Box, LegendFade)
	}
	r.canvas.Outline(lg.Box, imaging.Solid(r.pal.Legend))
	for i, row := range lg.Rows {
		r.canvas.DrawSprite(r.sprites[classes[i]].headings[LegendHeading], row.Icon)
		r.canvas.Text(glyph.Small, row.Text, entries[i].Name, r.pal.LegendText)
	}
	r.result.Legend = &lg
	return nil
}

// drawClashBoxes outlines every registered box in debug mode.
func (r *renderer) drawClashBoxes() error {
	if !r.opts.Debug {
		return nil
	}
	c := r.pal.Leader
	if c == nil {
		c = r.pal.LabelText
	}
	style := imaging.Style{c, nil}
	for _, b := range r.index.Boxes() {
		r.canvas.Outline(b, style)
	}
	return nil
}
