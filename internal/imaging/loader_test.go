package imaging

import (
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// writeTestImage writes a solid width x height image into dir and returns
// its file name.
func writeTestImage(t *testing.T, dir, name string, width, height int, c color.Color) string {
	t.Helper()
	img := createInMemoryImage(width, height, c)

	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to create image file: %v", err)
	}
	defer f.Close()

	switch filepath.Ext(name) {
	case ".gif":
		err = gif.Encode(f, img, nil)
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return name
}

func TestNewImageCache(t *testing.T) {
	cache := NewImageCache("")
	if cache == nil {
		t.Fatal("NewImageCache returned nil")
	}
	if cache.images == nil {
		t.Fatal("NewImageCache did not initialize images map")
	}
}

func TestImageCache_Resolve(t *testing.T) {
	tests := []struct {
		dir, name, want string
	}{
		{"", "ship.gif", "ship.gif"},
		{"/maps", "ship.gif", "/maps/ship.gif"},
		{"/maps", "/abs/ship.gif", "/abs/ship.gif"},
		{"/maps", "sub/ship.gif", "/maps/sub/ship.gif"},
	}
	for _, tt := range tests {
		if got := NewImageCache(tt.dir).Resolve(tt.name); got != tt.want {
			t.Errorf("Resolve(%q) in %q = %q, want %q", tt.name, tt.dir, got, tt.want)
		}
	}
}

func TestImageCache_Load(t *testing.T) {
	dir := t.TempDir()
	name := writeTestImage(t, dir, "cruiser.png", 100, 80, color.RGBA{255, 0, 0, 255})
	cache := NewImageCache(dir)

	img1, err := cache.Load(name)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	bounds := img1.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}

	img2, err := cache.Load(name)
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if img1 != img2 {
		t.Error("second Load did not return cached image")
	}
	if cache.Len() != 1 {
		t.Errorf("Len = %d, want 1", cache.Len())
	}
}

func TestImageCache_Load_GIF(t *testing.T) {
	dir := t.TempDir()
	name := writeTestImage(t, dir, "scout.gif", 12, 9, color.White)

	img, err := NewImageCache(dir).Load(name)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if img.Bounds().Dx() != 12 || img.Bounds().Dy() != 9 {
		t.Errorf("unexpected dimensions: %v", img.Bounds())
	}
}

func TestImageCache_Load_NonExistent(t *testing.T) {
	cache := NewImageCache(t.TempDir())
	if _, err := cache.Load("missing.gif"); err == nil {
		t.Error("Load should fail for non-existent file")
	}
}

func TestImageCache_Load_InvalidImage(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := NewImageCache(dir).Load("bad.png"); err == nil {
		t.Error("Load should fail for invalid image data")
	}
}

func TestImageCache_ClearAndEvict(t *testing.T) {
	dir := t.TempDir()
	a := writeTestImage(t, dir, "a.png", 5, 5, color.Black)
	b := writeTestImage(t, dir, "b.png", 5, 5, color.White)
	cache := NewImageCache(dir)

	for _, name := range []string{a, b} {
		if _, err := cache.Load(name); err != nil {
			t.Fatalf("Load(%s) failed: %v", name, err)
		}
	}

	cache.Evict(a)
	cache.mu.RLock()
	_, exists := cache.images[cache.Resolve(a)]
	cache.mu.RUnlock()
	if exists {
		t.Error("Evict did not remove image from cache")
	}

	// Should not panic.
	cache.Evict("never-loaded.png")

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Clear did not empty cache: %d images remain", cache.Len())
	}
}

func TestImageCache_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	name := writeTestImage(t, dir, "grey.png", 50, 50, color.RGBA{128, 128, 128, 255})
	cache := NewImageCache(dir)

	var wg sync.WaitGroup
	errors := make(chan error, 100)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cache.Load(name); err != nil {
				errors <- err
			}
		}()
	}

	wg.Wait()
	close(errors)

	for err := range errors {
		t.Errorf("concurrent Load error: %v", err)
	}
}

func TestFitBackground(t *testing.T) {
	back := createPatternImage(10, 10)

	stretched := FitBackground(back, 40, 20, false)
	if stretched.Bounds().Dx() != 40 || stretched.Bounds().Dy() != 20 {
		t.Fatalf("stretched size = %v, want 40x20", stretched.Bounds())
	}

	tiled := FitBackground(back, 25, 15, true)
	if tiled.Bounds().Dx() != 25 || tiled.Bounds().Dy() != 15 {
		t.Fatalf("tiled size = %v, want 25x15", tiled.Bounds())
	}
	// Tiles repeat at the source size: (12,2) maps to (2,2), red.
	if got := tiled.NRGBAAt(12, 2); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("tiled (12,2) = %v, want red", got)
	}
	// (17,12) maps to (7,2) of the second row of tiles, green.
	if got := tiled.NRGBAAt(17, 12); got != (color.NRGBA{0, 255, 0, 255}) {
		t.Errorf("tiled (17,12) = %v, want green", got)
	}
}
