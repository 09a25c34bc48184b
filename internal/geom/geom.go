// Package geom provides the integer pixel geometry used by the clash
// avoidance engine.
//
// All coordinates use the image convention: origin at the top-left corner,
// X increasing rightward and Y increasing downward. A Box is a closed
// axis-aligned rectangle whose area is (MaxX-MinX)*(MaxY-MinY), so a box
// describing a horizontal or vertical line has zero area until it is dilated.
package geom

import (
	"fmt"
	"math"
)

// Point is a pixel coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Box is an axis-aligned rectangle with MinX <= MaxX and MinY <= MaxY.
//
// Boxes are values: every operation returns a new Box and never modifies
// the receiver.
type Box struct {
	MinX int `json:"min_x"`
	MinY int `json:"min_y"`
	MaxX int `json:"max_x"`
	MaxY int `json:"max_y"`
}

// NewBox builds a Box from two arbitrary corners, normalising the order of
// each axis.
func NewBox(x1, y1, x2, y2 int) Box {
	return Box{
		MinX: min(x1, x2),
		MinY: min(y1, y2),
		MaxX: max(x1, x2),
		MaxY: max(y1, y2),
	}
}

// BoxFromPoints builds a Box spanning p1 and p2.
func BoxFromPoints(p1, p2 Point) Box {
	return NewBox(p1.X, p1.Y, p2.X, p2.Y)
}

// Dilate returns the box grown outward by d on all four sides.
func (b Box) Dilate(d int) Box {
	return Box{
		MinX: b.MinX - d,
		MinY: b.MinY - d,
		MaxX: b.MaxX + d,
		MaxY: b.MaxY + d,
	}
}

// Width returns MaxX - MinX.
func (b Box) Width() int { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Box) Height() int { return b.MaxY - b.MinY }

// Area returns the box area; zero for line-like boxes.
func (b Box) Area() int { return b.Width() * b.Height() }

// TopLeft returns the (MinX, MinY) corner.
func (b Box) TopLeft() Point { return Point{X: b.MinX, Y: b.MinY} }

func (b Box) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

// Overlap returns the area shared by a and b. Boxes that are disjoint, or
// only touch along an edge, overlap by zero.
func Overlap(a, b Box) int {
	w := min(a.MaxX, b.MaxX) - max(a.MinX, b.MinX)
	h := min(a.MaxY, b.MaxY) - max(a.MinY, b.MinY)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// ClosestCorner returns the corner of b nearest to p. On an axis where p
// lies strictly between the box edges the box centre is used for that axis.
func (b Box) ClosestCorner(p Point) Point {
	var out Point

	switch {
	case b.MinX >= p.X:
		out.X = b.MinX
	case b.MaxX <= p.X:
		out.X = b.MaxX
	default:
		out.X = (b.MinX + b.MaxX) / 2
	}

	switch {
	case b.MinY >= p.Y:
		out.Y = b.MinY
	case b.MaxY <= p.Y:
		out.Y = b.MaxY
	default:
		out.Y = (b.MinY + b.MaxY) / 2
	}

	return out
}

// Midpoints returns the midpoints of the box edges in the order left,
// bottom, right, top.
func (b Box) Midpoints() [4]Point {
	midX := b.MinX + b.Width()/2
	midY := b.MinY + b.Height()/2
	return [4]Point{
		{X: b.MinX, Y: midY},
		{X: midX, Y: b.MaxY},
		{X: b.MaxX, Y: midY},
		{X: midX, Y: b.MinY},
	}
}

// ClosestMidpoint returns the edge midpoint of b nearest to p, measured with
// Distance. Ties keep the first midpoint in Midpoints order.
func (b Box) ClosestMidpoint(p Point) Point {
	mids := b.Midpoints()
	best := 0
	bestDist := math.MaxInt
	for i, m := range mids {
		if d := Distance(p, m); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return mids[best]
}

// Distance returns the Euclidean distance between p1 and p2 truncated to an
// integer.
func Distance(p1, p2 Point) int {
	dx := float64(p1.X - p2.X)
	dy := float64(p1.Y - p2.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

// IsOrthogonal reports whether the segment p1-p2 is horizontal or vertical.
func IsOrthogonal(p1, p2 Point) bool {
	return p1.X == p2.X || p1.Y == p2.Y
}

// LineBox returns the clash box for the segment p1-p2. Orthogonal segments
// have zero area, so their box is dilated by d.
func LineBox(p1, p2 Point, d int) Box {
	b := BoxFromPoints(p1, p2)
	if IsOrthogonal(p1, p2) {
		return b.Dilate(d)
	}
	return b
}

// Round rounds half away from zero.
func Round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
