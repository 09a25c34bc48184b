package config

import (
	"image/color"

	"github.com/ironsheep/ftmap/internal/imaging"
	"github.com/ironsheep/ftmap/internal/palette"
)

// Palette is the resolved set of map drawing colours. A nil optional
// colour (Grid, Leader, Locus, Course) disables that element.
type Palette struct {
	Background color.Color
	Foreground color.Color
	TitleText  color.Color
	LabelText  color.Color
	Axes       color.Color
	AxesText   color.Color
	Grid       color.Color
	Leader     color.Color
	Legend     color.Color
	LegendText color.Color
	Locus      color.Color
	Course     color.Color
}

// DefaultPalette returns the built-in colours: green text and axes with
// blue courses on black, or black on white for bitonal maps.
func DefaultPalette(bitonal bool) Palette {
	if bitonal {
		fg := color.RGBA{0, 0, 0, 255}
		return Palette{
			Background: color.RGBA{255, 255, 255, 255},
			Foreground: fg,
			TitleText:  fg,
			LabelText:  fg,
			Axes:       fg,
			AxesText:   fg,
			Grid:       fg,
			Leader:     fg,
			Legend:     fg,
			LegendText: fg,
			Course:     fg,
		}
	}

	text := color.RGBA{96, 255, 96, 255}
	axes := color.RGBA{64, 196, 64, 255}
	return Palette{
		Background: color.RGBA{0, 0, 0, 255},
		Foreground: color.RGBA{255, 255, 255, 255},
		TitleText:  text,
		LabelText:  text,
		Axes:       axes,
		AxesText:   axes,
		Grid:       color.RGBA{33, 100, 33, 255},
		Leader:     text,
		Legend:     axes,
		LegendText: axes,
		Course:     color.RGBA{96, 96, 255, 255},
	}
}

// Reserved returns the distinct drawing colours, background first, for the
// reserved block of the output palette.
func (p Palette) Reserved() color.Palette {
	var out color.Palette
	for _, c := range []color.Color{
		p.Background, p.Foreground, p.TitleText, p.LabelText, p.Axes,
		p.AxesText, p.Grid, p.Leader, p.Legend, p.LegendText, p.Locus, p.Course,
	} {
		if c == nil || len(out) == palette.Reserved {
			continue
		}
		dup := false
		for _, have := range out {
			if imaging.SameRGB(have, c) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, c)
		}
	}
	return out
}
