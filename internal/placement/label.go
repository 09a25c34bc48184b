package placement

import (
	"iter"
	"math"

	"github.com/ironsheep/ftmap/internal/clash"
	"github.com/ironsheep/ftmap/internal/geom"
)

const (
	// MaxLeader is the number of leader lengths tried beyond the feature
	// radius.
	MaxLeader = 32

	// AngleStep is the angular step of the label search in degrees.
	AngleStep = 1

	// LeaderWeight scales leader clashes relative to text clashes.
	LeaderWeight = 0.3

	// TextDilation is the margin kept around placed text.
	TextDilation = 2

	// LineDilation gives orthogonal lines a clash area.
	LineDilation = 4
)

// Feature is a labelled point on the map.
type Feature struct {
	Center geom.Point
	Radius int
	Name   string
}

// Candidate is one position considered by the label search.
type Candidate struct {
	// R is the leader length and D the angle in degrees, clockwise from
	// the positive x axis in screen space.
	R, D int

	// Anchor is the leader end, a corner of Text.
	Anchor geom.Point

	Text   geom.Box
	Leader geom.Box
}

// Label is the outcome of a label search.
type Label struct {
	Candidate

	// Score is the weighted clash of the chosen candidate; zero means a
	// clear spot was found.
	Score float64

	// Tried counts the candidates evaluated.
	Tried int
}

// Placer scores annotation candidates against a clash index.
type Placer struct {
	index  *clash.Index
	width  int
	height int
}

// NewPlacer returns a placer for a canvas of the given size.
func NewPlacer(index *clash.Index, width, height int) *Placer {
	return &Placer{index: index, width: width, height: height}
}

// Index returns the clash index the placer scores against.
func (p *Placer) Index() *clash.Index { return p.index }

// Register records b as occupied.
func (p *Placer) Register(b geom.Box) error {
	return p.index.Add(b)
}

// LabelCandidates yields the label search positions for f and a w x h text
// block in priority order: leader length ascending, then angle ascending.
// The sequence is lazy and may be ranged over more than once.
func LabelCandidates(f Feature, w, h int) iter.Seq[Candidate] {
	return func(yield func(Candidate) bool) {
		for r := f.Radius; r < f.Radius+MaxLeader; r++ {
			for d := 0; d < 360; d += AngleStep {
				if !yield(candidateAt(f.Center, r, d, w, h)) {
					return
				}
			}
		}
	}
}

func candidateAt(c geom.Point, r, d, w, h int) Candidate {
	angle := float64(d) / 180.0 * math.Pi
	from := geom.Pt(
		geom.Round(float64(r)*math.Cos(angle)+float64(c.X)),
		geom.Round(float64(r)*math.Sin(angle)+float64(c.Y)),
	)

	// Hang the text from the corner facing the feature so the leader always
	// meets the block the same way within a quadrant.
	var to geom.Point
	switch {
	case d <= 90:
		to = geom.Pt(from.X+w, from.Y+h)
	case d <= 180:
		to = geom.Pt(from.X-w, from.Y+h)
	case d <= 270:
		to = geom.Pt(from.X-w, from.Y-h)
	default:
		to = geom.Pt(from.X+w, from.Y-h)
	}

	text := geom.BoxFromPoints(from, to)
	return Candidate{
		R:      r,
		D:      d,
		Anchor: from,
		Text:   text,
		Leader: geom.BoxFromPoints(c, text.ClosestMidpoint(c)),
	}
}

// Score returns the weighted clash of c against the index.
func (p *Placer) Score(c Candidate) float64 {
	return float64(p.index.Score(c.Text)) + LeaderWeight*float64(p.index.Score(c.Leader))
}

// PlaceLabel searches for the position of a w x h label for f. The first
// clear candidate is returned immediately; if none exists the lowest scoring
// candidate is returned, keeping the earliest on ties.
func (p *Placer) PlaceLabel(f Feature, w, h int) Label {
	best := Label{Score: math.Inf(1)}
	tried := 0
	for c := range LabelCandidates(f, w, h) {
		tried++
		s := p.Score(c)
		if s == 0 {
			return Label{Candidate: c, Score: 0, Tried: tried}
		}
		if s < best.Score {
			best = Label{Candidate: c, Score: s}
		}
	}
	best.Tried = tried
	return best
}
