package imaging

import (
	"image"
	"image/color"
	"testing"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    color.Color
		wantErr bool
	}{
		{"#FF0000", color.RGBA{255, 0, 0, 255}, false},
		{"00ff00", color.RGBA{0, 255, 0, 255}, false},
		{"#0F0", color.RGBA{0, 255, 0, 255}, false},
		{"#6060ff", color.RGBA{96, 96, 255, 255}, false},
		{"96 255 96", color.RGBA{96, 255, 96, 255}, false},
		{"64, 196, 64", color.RGBA{64, 196, 64, 255}, false},
		{"  #000000  ", color.RGBA{0, 0, 0, 255}, false},
		{"none", nil, false},
		{"NONE", nil, false},
		{"", nil, false},
		{"#GGGGGG", nil, true},
		{"#12345", nil, true},
		{"1 2 300", nil, true},
		{"1 2 x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseColor(%q) should have failed", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) failed: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestBlend(t *testing.T) {
	tests := []struct {
		name   string
		orig   color.RGBA
		target color.Color
		pct    int
		want   color.RGBA
	}{
		{"quarter fade", color.RGBA{200, 100, 0, 255}, color.Black, 75, color.RGBA{150, 75, 0, 255}},
		{"half fade", color.RGBA{200, 100, 50, 255}, color.Black, 50, color.RGBA{100, 50, 25, 255}},
		{"keep all", color.RGBA{12, 34, 56, 255}, color.Black, 100, color.RGBA{12, 34, 56, 255}},
		{"replace", color.RGBA{12, 34, 56, 255}, color.White, 0, color.RGBA{255, 255, 255, 255}},
		{"towards white", color.RGBA{0, 0, 0, 255}, color.White, 50, color.RGBA{128, 128, 128, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blend(tt.orig, tt.target, tt.pct); got != tt.want {
				t.Errorf("Blend(%v, %v, %d) = %v, want %v", tt.orig, tt.target, tt.pct, got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{96, 255, 96, 255}); got != "#60FF60" {
		t.Errorf("Hex = %s, want #60FF60", got)
	}
	if got := Hex(color.Transparent); got != "#000000" {
		t.Errorf("Hex(transparent) = %s, want #000000", got)
	}
}

func TestSameRGB(t *testing.T) {
	if !SameRGB(color.RGBA{1, 2, 3, 255}, color.NRGBA{1, 2, 3, 255}) {
		t.Error("identical opaque colours should match")
	}
	if SameRGB(color.White, color.Black) {
		t.Error("white and black should differ")
	}
}
