package placement

import (
	"unicode/utf8"

	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/glyph"
)

// Legend offsets from the top-right of the canvas.
const (
	LegendMarginRight = 15
	LegendMarginTop   = 30
)

// LegendEntry is one class shown in the legend.
type LegendEntry struct {
	Name   string
	Radius int
}

// LegendRow locates one entry inside the legend.
type LegendRow struct {
	// Icon is the top-left of the class sprite.
	Icon geom.Point `json:"icon"`
	// Text is the top-left of the right-aligned class name.
	Text geom.Point `json:"text"`
}

// Legend is the computed legend block.
type Legend struct {
	Box  geom.Box    `json:"box"`
	Rows []LegendRow `json:"rows"`
}

// PlaceLegend lays out entries as a block anchored near the top-right of a
// canvas canvasWidth pixels wide. Names are right-aligned in a column one
// glyph wider than the longest name, followed by a column as wide as the
// largest sprite. Each row is as tall as its sprite or a line of text,
// whichever is taller.
//
// The legend is not searched for and its box is not meant to be registered
// as an obstacle; it is drawn last.
func PlaceLegend(entries []LegendEntry, canvasWidth int, t glyph.Tier) Legend {
	m := t.Metrics()

	maxName, maxR, totalH := 0, 0, 0
	for _, e := range entries {
		maxName = max(maxName, utf8.RuneCountInString(e.Name))
		maxR = max(maxR, e.Radius)
		totalH += max(2*e.Radius, m.H)
	}
	textCols := maxName + 1

	width := 2*maxR + textCols*m.W
	x := canvasWidth - width - LegendMarginRight
	y := LegendMarginTop

	rows := make([]LegendRow, 0, len(entries))
	ypos := y
	for _, e := range entries {
		n := utf8.RuneCountInString(e.Name)
		rows = append(rows, LegendRow{
			Icon: geom.Pt(x+textCols*m.W+maxR-e.Radius, ypos),
			Text: geom.Pt(x+(textCols-n)*m.W, ypos+e.Radius-m.H/2),
		})
		ypos += max(2*e.Radius, m.H)
	}

	return Legend{
		Box:  geom.NewBox(x, y, x+width, y+totalH),
		Rows: rows,
	}
}
