package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestSpinSize(t *testing.T) {
	tests := []struct {
		w, h  int
		scale float64
		want  int
	}{
		{3, 4, 1, 5},
		{3, 4, 2, 10},
		{10, 10, 1, 15},
		{16, 16, 0.5, 12},
	}
	for _, tt := range tests {
		src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
		if got := SpinSize(src, tt.scale); got != tt.want {
			t.Errorf("SpinSize(%dx%d, %v) = %d, want %d", tt.w, tt.h, tt.scale, got, tt.want)
		}
	}
}

func TestRecolor(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	src.SetRGBA(1, 0, color.RGBA{0, 0, 0, 255})

	red := color.RGBA{255, 0, 0, 255}
	got := Recolor(src, color.White, red, false)
	if got.RGBAAt(0, 0) != red {
		t.Errorf("white pixel = %v, want red", got.RGBAAt(0, 0))
	}
	if got.RGBAAt(1, 0) != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("black pixel changed to %v", got.RGBAAt(1, 0))
	}

	inv := Invert(src)
	if inv.RGBAAt(0, 0) != (color.RGBA{0, 0, 0, 255}) || inv.RGBAAt(1, 0) != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Invert gave %v %v", inv.RGBAAt(0, 0), inv.RGBAAt(1, 0))
	}

	// The source is never modified.
	if src.RGBAAt(0, 0) != (color.RGBA{255, 255, 255, 255}) {
		t.Error("Recolor modified its source")
	}
}

func TestSpin(t *testing.T) {
	// White centre on a black key background.
	src := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			src.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	src.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})

	out := Spin(src, 0, SpriteOptions{Scale: 1, Key: color.Black})
	side := SpinSize(src, 1)
	if out.Bounds().Dx() != side || out.Bounds().Dy() != side {
		t.Fatalf("spun size = %v, want %dx%d", out.Bounds(), side, side)
	}
	if got := out.RGBAAt(side/2, side/2); got.A == 0 || got.R != 255 {
		t.Errorf("centre = %v, want opaque white", got)
	}
	if got := out.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("corner = %v, want transparent", got)
	}

	keyed := keyOut(src, color.Black)
	if got := keyed.RGBAAt(0, 0); got.A != 0 {
		t.Errorf("keyed pixel = %v, want transparent", got)
	}
	if got := keyed.RGBAAt(1, 1); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("unkeyed pixel = %v, want white", got)
	}
}

func TestSpinAll(t *testing.T) {
	src := createInMemoryImage(4, 2, color.White)
	all := SpinAll(src, SpriteOptions{Scale: 2, Resample: true})
	side := SpinSize(src, 2)
	for h, img := range all {
		if img == nil {
			t.Fatalf("heading %d missing", h)
		}
		if img.Bounds().Dx() != side {
			t.Errorf("heading %d size = %v, want %d square", h, img.Bounds(), side)
		}
		if img.RGBAAt(side/2, side/2).A == 0 {
			t.Errorf("heading %d lost the sprite centre", h)
		}
	}
}
