// Package render draws a tactical map from a parsed scenario.
//
// A render runs a fixed sequence of stages over one canvas and one clash
// index. Every stage registers what it draws before the next stage looks for
// space, so later annotations avoid earlier ones:
//
//  1. background and axes, with the map edges registered as obstacles
//  2. fading under game objects (background maps only)
//  3. sprites and courses
//  4. object labels with leader lines
//  5. title
//  6. legend
//  7. clash box overlay (debug only)
//
// The legend is drawn last and is not registered.
package render

import (
	"context"
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/ftmap/internal/clash"
	"github.com/ironsheep/ftmap/internal/config"
	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/imaging"
	"github.com/ironsheep/ftmap/internal/palette"
	"github.com/ironsheep/ftmap/internal/placement"
	"github.com/ironsheep/ftmap/internal/scenario"
)

// Fade percentages towards black applied under map elements on background
// maps.
const (
	LabelFade      = 25
	GameObjectFade = 25
	TitleFade      = 50
	LegendFade     = 50
)

// EdgeDilation is how far the map edge obstacles extend beyond the canvas.
const EdgeDilation = 50

// LegendHeading is the sprite heading shown in the legend.
const LegendHeading = 3

// Options configures a render.
type Options struct {
	config.Options

	Palette config.Palette
	Limits  config.Limits

	// Images loads sprites and backgrounds. A cache rooted at ImageDir is
	// created when nil.
	Images *imaging.ImageCache

	Logger *log.Logger
}

// PlacedLabel records where an object's name was drawn.
type PlacedLabel struct {
	Name   string   `json:"name"`
	Text   geom.Box `json:"text"`
	Score  float64  `json:"score"`
	Tried  int      `json:"tried"`
	Leader bool     `json:"leader"`
}

// Result is a finished map.
type Result struct {
	Image *image.RGBA `json:"-"`

	// Boxes are the registered clash boxes in registration order.
	Boxes  []geom.Box        `json:"boxes"`
	Labels []PlacedLabel     `json:"labels"`
	Title  *geom.Box         `json:"title,omitempty"`
	Legend *placement.Legend `json:"legend,omitempty"`

	// Quantizer reduces Image to a GIF palette that keeps the map colours.
	Quantizer palette.Quantizer `json:"-"`
}

// Render draws s. It fails when an image cannot be loaded, when the
// scenario exceeds the configured limits or when the clash index fills up.
func Render(ctx context.Context, s *scenario.Scenario, opts Options) (*Result, error) {
	r, err := newRenderer(s, opts)
	if err != nil {
		return nil, err
	}

	stages := []struct {
		name string
		run  func() error
	}{
		{"load sprites", r.loadSprites},
		{"background", r.drawBackground},
		{"axes", r.drawAxes},
		{"fade objects", r.fadeObjects},
		{"objects", r.drawObjects},
		{"labels", r.annotateObjects},
		{"title", r.drawTitle},
		{"legend", r.drawLegend},
		{"debug overlay", r.drawClashBoxes},
	}
	for _, st := range stages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		r.log.Debug("render stage", "stage", st.name, "boxes", r.index.Len())
		if err := st.run(); err != nil {
			return nil, fmt.Errorf("%s: %w", st.name, err)
		}
	}

	r.result.Image = r.canvas.Image()
	r.result.Boxes = r.index.Boxes()
	r.result.Quantizer = palette.Quantizer{Reserved: r.pal.Reserved()}
	return r.result, nil
}

// object is a game object resolved to canvas space.
type object struct {
	scenario.Object
	class  int
	center geom.Point
}

type renderer struct {
	s    *scenario.Scenario
	opts Options
	pal  config.Palette
	log  *log.Logger

	width, height int

	images     *imaging.ImageCache
	canvas     *imaging.Canvas
	index      *clash.Index
	placer     *placement.Placer
	background bool
	sprites    []sprite
	objects    []object
	result     *Result
}

func newRenderer(s *scenario.Scenario, opts Options) (*renderer, error) {
	width, height := s.Size()
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("map is %dx%d pixels; increase the pixels per unit", width, height)
	}

	lim := opts.Limits.WithDefaults()
	if len(s.Classes) > lim.Classes {
		return nil, fmt.Errorf("%d classes, more than %d: %w", len(s.Classes), lim.Classes, scenario.ErrLimit)
	}
	if len(s.Objects) > lim.Objects {
		return nil, fmt.Errorf("%d objects, more than %d: %w", len(s.Objects), lim.Objects, scenario.ErrLimit)
	}

	pal := opts.Palette
	if pal.Background == nil {
		pal = config.DefaultPalette(opts.Bitonal)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	images := opts.Images
	if images == nil {
		images = imaging.NewImageCache(opts.ImageDir)
	}

	r := &renderer{
		s:      s,
		opts:   opts,
		pal:    pal,
		log:    logger,
		width:  width,
		height: height,
		images: images,
		canvas: imaging.NewCanvas(width, height, pal.Background),
		index:  clash.New(lim.ClashBoxes),
		result: &Result{},
	}
	r.placer = placement.NewPlacer(r.index, width, height)

	r.objects = make([]object, 0, len(s.Objects))
	for _, o := range s.Objects {
		class := s.ClassIndex(o.Class)
		if class < 0 {
			return nil, fmt.Errorf("object %q: unknown class %s", o.Name, o.Class)
		}
		r.objects = append(r.objects, object{
			Object: o,
			class:  class,
			center: s.ToPixel(o.X, o.Y),
		})
	}

	mode := "color"
	if opts.Bitonal {
		mode = "bitonal"
	}
	logger.Debug("map",
		"title", strings.TrimSpace(s.Title),
		"extent", fmt.Sprintf("%g,%g %g,%g", s.MinX, s.MinY, s.MaxX, s.MaxY),
		"size", fmt.Sprintf("%dx%d", width, height),
		"mode", mode,
		"tracking", s.Tracking,
		"real_thrust", opts.RealThrust,
		"grid", opts.Grid,
		"legend", opts.Legend,
	)
	return r, nil
}

func (r *renderer) register(b geom.Box) error {
	return r.placer.Register(b)
}
