// Package scenario reads the map data file: a header describing the map
// extent, a table of object classes and the game objects themselves.
//
// The file is whitespace separated, except for the title and object names
// which each take a whole line:
//
//	Battle of Sector 7          title
//	starfield.gif               background image, or "-" for none
//	1                           draw courses (0 or 1)
//	0 0 40 30                   map extent: min x, min y, max x, max y
//	20                          pixels per map unit
//	cruiser cruiser.gif 1.0 1   class: name, image, scale, legend flag
//	*                           end of classes
//	Enterprise                  object name (a blank line for none)
//	cruiser 10 12 3 3 4 1       class, x, y, heading, facing, speed, turn
//	*                           end of objects
package scenario

import (
	"errors"

	"github.com/ironsheep/ftmap/internal/geom"
)

// NoBackground is the background entry for a plain map.
const NoBackground = "-"

// ErrLimit is returned when a data file holds more classes or objects than
// the configured limits allow.
var ErrLimit = errors.New("limit exceeded")

// Header describes the whole map.
type Header struct {
	Title      string  `json:"title"`
	Background string  `json:"background,omitempty"`
	Tracking   bool    `json:"tracking"`
	MinX       float64 `json:"min_x"`
	MinY       float64 `json:"min_y"`
	MaxX       float64 `json:"max_x"`
	MaxY       float64 `json:"max_y"`
	PPU        float64 `json:"pixels_per_unit"`
}

// Class is a kind of game object sharing one sprite.
type Class struct {
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Scale  float64 `json:"scale"`
	Legend bool    `json:"legend"`
}

// Object is one game object. Heading is a clock position (0-11) for Full
// Thrust maps and degrees for Real Thrust maps. Delta is the turn made
// during the last move, positive to starboard.
type Object struct {
	Name    string  `json:"name"`
	Class   string  `json:"class"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading int     `json:"heading"`
	Facing  int     `json:"facing"`
	Speed   float64 `json:"speed"`
	Delta   int     `json:"delta"`
}

// Scenario is a parsed data file.
type Scenario struct {
	Header
	Classes []Class  `json:"classes"`
	Objects []Object `json:"objects"`
}

// Size returns the canvas size in pixels.
func (s *Scenario) Size() (width, height int) {
	width = int(0.5 + s.PPU*(s.MaxX-s.MinX))
	height = int(0.5 + s.PPU*(s.MaxY-s.MinY))
	return width, height
}

// ToPixel converts map coordinates to a canvas pixel. Map y grows upwards.
func (s *Scenario) ToPixel(x, y float64) geom.Point {
	_, height := s.Size()
	return geom.Pt(
		int(0.5+(x-s.MinX)*s.PPU),
		height-int(0.5+(y-s.MinY)*s.PPU),
	)
}

// HasBackground reports whether the header names a background image.
func (s *Scenario) HasBackground() bool {
	return s.Background != "" && s.Background != NoBackground
}

// ClassIndex returns the index of the named class, or -1.
func (s *Scenario) ClassIndex(name string) int {
	for i, c := range s.Classes {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ClockFacing returns the object's facing as a clock position in 0-11.
func (o Object) ClockFacing() int {
	return ((o.Facing % 12) + 12) % 12
}
