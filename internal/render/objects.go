package render

import (
	"math"

	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/imaging"
	"github.com/ironsheep/ftmap/internal/placement"
)

// fadeObjects darkens the background under every object. All fading happens
// before any sprite is drawn so sprites are never faded themselves.
func (r *renderer) fadeObjects() error {
	if !r.background {
		return nil
	}
	for _, o := range r.objects {
		r.canvas.FadeCircle(o.center, r.sprites[o.class].radius, GameObjectFade)
	}
	return nil
}

// drawObjects draws each object's sprite at its facing, then its course so
// the course ends on the object's centre, and registers the sprite box.
func (r *renderer) drawObjects() error {
	for _, o := range r.objects {
		sp := r.sprites[o.class]
		topLeft := geom.Pt(o.center.X-sp.radius, o.center.Y-sp.radius)
		r.canvas.DrawSprite(sp.headings[o.ClockFacing()], topLeft)

		if r.s.Tracking && r.pal.Course != nil {
			if err := r.drawCourse(o); err != nil {
				return err
			}
		}

		box := geom.NewBox(topLeft.X, topLeft.Y, topLeft.X+2*sp.radius, topLeft.Y+2*sp.radius)
		if err := r.register(box); err != nil {
			return err
		}
	}
	return nil
}

// drawCourse plots the track of o. Full Thrust tracks run back from the
// object in two legs of half its speed, the first along its heading and the
// second along the heading before the second half of its turn. Real Thrust
// tracks run forward one move along a heading in degrees.
//
// Only orthogonal legs are registered; angled legs would claim too much of
// the map.
func (r *renderer) drawCourse(o object) error {
	style := imaging.Style{r.pal.Course, nil, nil, nil}

	leg := func(from, to geom.Point) error {
		r.canvas.Line(from, to, style)
		if !geom.IsOrthogonal(from, to) {
			return nil
		}
		return r.register(geom.BoxFromPoints(from, to).Dilate(placement.LineDilation))
	}

	if r.opts.RealThrust {
		rad := float64(o.Heading) / 180.0 * math.Pi
		end := r.coursePixel(o.X+o.Speed*math.Sin(rad), o.Y+o.Speed*math.Cos(rad))
		return leg(o.center, end)
	}

	midTurn := o.Delta - int(float64(o.Delta)/2.0)
	h2 := o.Heading % 12
	h1 := (o.Heading - midTurn) % 12
	half := o.Speed / 2.0

	midX := o.X - half*math.Sin(math.Pi*float64(h2)/6.0)
	midY := o.Y - half*math.Cos(math.Pi*float64(h2)/6.0)
	startX := midX - half*math.Sin(math.Pi*float64(h1)/6.0)
	startY := midY - half*math.Cos(math.Pi*float64(h1)/6.0)

	mid := r.coursePixel(midX, midY)
	if err := leg(o.center, mid); err != nil {
		return err
	}
	return leg(mid, r.coursePixel(startX, startY))
}

// coursePixel converts map coordinates for course plotting, which measures
// y from the last pixel row rather than from the canvas height.
func (r *renderer) coursePixel(x, y float64) geom.Point {
	return geom.Pt(
		geom.Round((x-r.s.MinX)*r.s.PPU),
		r.height-1-geom.Round((y-r.s.MinY)*r.s.PPU),
	)
}
