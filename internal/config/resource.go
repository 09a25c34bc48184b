// Package config holds the render options and the resource file that sets
// map colours and limits.
//
// A resource file is TOML:
//
//	[colors]
//	background = "#000000"
//	title_text = "#60FF60"
//	leader     = "none"
//
//	[limits]
//	clash_boxes = 2000
//
// Colours are "#RRGGBB" or three decimal components "r g b". Optional
// elements (leader, locus, grid and course lines) are switched off with
// "none". Resource colours are ignored on bitonal maps.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ironsheep/ftmap/internal/imaging"
)

// Default limits.
const (
	DefaultClashBoxes = 1000
	DefaultObjects    = 20000
	DefaultClasses    = 500
)

// Colors names the map colours by resource key. Empty entries keep the
// default.
type Colors struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	TitleText  string `toml:"title_text"`
	LabelText  string `toml:"label_text"`
	Axes       string `toml:"axes"`
	AxesText   string `toml:"axes_text"`
	Grid       string `toml:"grid"`
	Leader     string `toml:"leader"`
	Legend     string `toml:"legend"`
	LegendText string `toml:"legend_text"`
	Locus      string `toml:"locus"`
	Course     string `toml:"course"`
}

// Limits bounds the size of a single render. Zero entries keep the
// default.
type Limits struct {
	ClashBoxes int `toml:"clash_boxes"`
	Objects    int `toml:"objects"`
	Classes    int `toml:"classes"`
}

// Resource is the decoded resource file.
type Resource struct {
	Colors Colors `toml:"colors"`
	Limits Limits `toml:"limits"`
}

// LoadResource reads a resource file. An empty path yields the defaults.
func LoadResource(path string) (*Resource, error) {
	if path == "" {
		return &Resource{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource file: %w", err)
	}
	r, err := ParseResource(string(data))
	if err != nil {
		return nil, fmt.Errorf("resource file %s: %w", path, err)
	}
	return r, nil
}

// ParseResource decodes resource file text. Unknown keys are an error.
func ParseResource(data string) (*Resource, error) {
	var r Resource
	md, err := toml.Decode(data, &r)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := r.Limits.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (l Limits) validate() error {
	var errs []error
	for _, f := range []struct {
		key string
		v   int
	}{
		{"clash_boxes", l.ClashBoxes},
		{"objects", l.Objects},
		{"classes", l.Classes},
	} {
		if f.v < 0 {
			errs = append(errs, fmt.Errorf("limits.%s: must not be negative, got %d", f.key, f.v))
		}
	}
	return errors.Join(errs...)
}

// WithDefaults returns l with zero entries replaced by the defaults.
func (l Limits) WithDefaults() Limits {
	if l.ClashBoxes == 0 {
		l.ClashBoxes = DefaultClashBoxes
	}
	if l.Objects == 0 {
		l.Objects = DefaultObjects
	}
	if l.Classes == 0 {
		l.Classes = DefaultClasses
	}
	return l
}

// Palette resolves the map colours. Bitonal maps ignore the resource
// colours and draw black on white.
func (r *Resource) Palette(bitonal bool) (Palette, error) {
	p := DefaultPalette(bitonal)
	if bitonal {
		return p, nil
	}

	c := r.Colors
	entries := []struct {
		key      string
		value    string
		dst      *color.Color
		optional bool
	}{
		{"background", c.Background, &p.Background, false},
		{"foreground", c.Foreground, &p.Foreground, false},
		{"title_text", c.TitleText, &p.TitleText, false},
		{"label_text", c.LabelText, &p.LabelText, false},
		{"axes", c.Axes, &p.Axes, false},
		{"axes_text", c.AxesText, &p.AxesText, false},
		{"grid", c.Grid, &p.Grid, true},
		{"leader", c.Leader, &p.Leader, true},
		{"legend", c.Legend, &p.Legend, false},
		{"legend_text", c.LegendText, &p.LegendText, false},
		{"locus", c.Locus, &p.Locus, true},
		{"course", c.Course, &p.Course, true},
	}

	set := make(map[string]bool)
	for _, e := range entries {
		if strings.TrimSpace(e.value) == "" {
			continue
		}
		v, err := imaging.ParseColor(e.value)
		if err != nil {
			return Palette{}, fmt.Errorf("colors.%s: %w", e.key, err)
		}
		if v == nil && !e.optional {
			return Palette{}, fmt.Errorf("colors.%s: cannot be %q", e.key, imaging.None)
		}
		*e.dst = v
		set[e.key] = true
	}

	// Derived colours follow their source unless set explicitly.
	if !set["axes_text"] {
		p.AxesText = p.Axes
	}
	if !set["legend"] {
		p.Legend = p.Axes
	}
	if !set["legend_text"] {
		p.LegendText = p.Axes
	}
	if !set["leader"] {
		p.Leader = p.LabelText
	}
	return p, nil
}
