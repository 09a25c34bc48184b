package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// FitBackground returns back sized to exactly width x height.
//
// Stretched backgrounds are cropped from the top-left to the canvas aspect
// ratio and then resized. Wallpaper backgrounds are tiled at their natural
// size from the top-left corner.
func FitBackground(back image.Image, width, height int, wallpaper bool) *image.NRGBA {
	if !wallpaper {
		return imaging.Fill(back, width, height, imaging.TopLeft, imaging.Linear)
	}

	out := imaging.New(width, height, color.Black)
	tw, th := back.Bounds().Dx(), back.Bounds().Dy()
	if tw == 0 || th == 0 {
		return out
	}
	for y := 0; y < height; y += th {
		for x := 0; x < width; x += tw {
			out = imaging.Paste(out, back, image.Pt(x, y))
		}
	}
	return out
}
