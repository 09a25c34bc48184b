package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/ftmap/internal/clash"
	"github.com/ironsheep/ftmap/internal/config"
	"github.com/ironsheep/ftmap/internal/geom"
	"github.com/ironsheep/ftmap/internal/placement"
	"github.com/ironsheep/ftmap/internal/scenario"
)

// writeImage writes a solid w x h PNG into dir.
func writeImage(t *testing.T, dir, name string, w, h int, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("failed to create %s: %v", name, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode %s: %v", name, err)
	}
}

// testMap is 200x150 pixels with a 6x6 sprite (radius 3) per object.
const testMap = `Test Map
%s
%d
0 0 20 15
10
ship ship.png 1 1
*
Alpha
ship 5 5 0 0 4 0

ship 12 8 3 0 2 0
*
`

func setup(t *testing.T, background string, tracking int) (*scenario.Scenario, Options) {
	t.Helper()
	dir := t.TempDir()
	writeImage(t, dir, "ship.png", 4, 4, color.White)
	writeImage(t, dir, "back.png", 20, 15, color.RGBA{200, 0, 0, 255})

	s, err := scenario.ParseString(fmt.Sprintf(testMap, background, tracking), scenario.Limits{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	opts := Options{
		Palette: config.DefaultPalette(false),
		Logger:  log.New(&bytes.Buffer{}),
	}
	opts.ImageDir = dir
	return s, opts
}

func TestRender_Basic(t *testing.T) {
	s, opts := setup(t, "-", 0)

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if b := res.Image.Bounds(); b.Dx() != 200 || b.Dy() != 150 {
		t.Fatalf("image size = %v, want 200x150", b)
	}

	// Edges, two sprites, one label with its leader, title.
	if len(res.Boxes) != 9 {
		t.Fatalf("registered %d boxes, want 9: %v", len(res.Boxes), res.Boxes)
	}
	if res.Boxes[0] != geom.NewBox(-50, -50, 250, 0) {
		t.Errorf("first box = %v, want the top edge", res.Boxes[0])
	}
	if res.Boxes[4] != geom.NewBox(47, 97, 53, 103) {
		t.Errorf("first sprite box = %v", res.Boxes[4])
	}

	// The unnamed object is not labelled.
	if len(res.Labels) != 1 || res.Labels[0].Name != "Alpha" {
		t.Fatalf("labels = %+v, want only Alpha", res.Labels)
	}
	l := res.Labels[0]
	if l.Score != 0 || !l.Leader {
		t.Errorf("label = %+v, want a clear spot with a leader", l)
	}
	if l.Text.Width() != 30 || l.Text.Height() != 13 {
		t.Errorf("label box = %v, want 30x13", l.Text)
	}
	for _, b := range res.Boxes[4:6] {
		if geom.Overlap(b, l.Text) != 0 {
			t.Errorf("label %v overlaps sprite %v", l.Text, b)
		}
	}

	if res.Title == nil {
		t.Fatal("title not placed")
	}
	if res.Title.Width() != 72 || res.Title.Height() != 15 {
		t.Errorf("title box = %v, want 72x15", *res.Title)
	}
	for _, b := range res.Boxes[:8] {
		if geom.Overlap(b, *res.Title) != 0 {
			t.Errorf("title %v overlaps %v", *res.Title, b)
		}
	}

	if res.Legend != nil {
		t.Error("legend drawn without being requested")
	}
	if len(res.Quantizer.Reserved) == 0 || res.Quantizer.Reserved[0] != opts.Palette.Background {
		t.Errorf("reserved colours = %v", res.Quantizer.Reserved)
	}
}

func TestRender_Deterministic(t *testing.T) {
	s, opts := setup(t, "-", 1)
	a, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	b, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !bytes.Equal(a.Image.Pix, b.Image.Pix) {
		t.Error("identical renders produced different images")
	}
	if len(a.Boxes) != len(b.Boxes) {
		t.Fatalf("box counts differ: %d and %d", len(a.Boxes), len(b.Boxes))
	}
	for i := range a.Boxes {
		if a.Boxes[i] != b.Boxes[i] {
			t.Errorf("box %d differs: %v and %v", i, a.Boxes[i], b.Boxes[i])
		}
	}
}

func TestRender_FullThrustCourse(t *testing.T) {
	s, opts := setup(t, "-", 1)

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Alpha heads north at speed 4: two vertical legs behind it, from
	// (50,100) to (50,119) and on to (50,139).
	if res.Boxes[4] != geom.NewBox(46, 96, 54, 123) {
		t.Errorf("first leg box = %v", res.Boxes[4])
	}
	if res.Boxes[5] != geom.NewBox(46, 115, 54, 143) {
		t.Errorf("second leg box = %v", res.Boxes[5])
	}
	if res.Boxes[6] != geom.NewBox(47, 97, 53, 103) {
		t.Errorf("sprite box = %v, want it after the course", res.Boxes[6])
	}

	course := color.RGBA{96, 96, 255, 255}
	for _, p := range []geom.Point{{X: 50, Y: 119}, {X: 50, Y: 123}, {X: 50, Y: 139}} {
		if got := res.Image.RGBAAt(p.X, p.Y); got != course {
			t.Errorf("course pixel %v = %v, want %v", p, got, course)
		}
	}
	if got := res.Image.RGBAAt(50, 120); got == course {
		t.Errorf("course should be dashed at (50,120)")
	}
}

func TestRender_RealThrustCourse(t *testing.T) {
	s, opts := setup(t, "-", 1)
	opts.RealThrust = true

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Heading 0 degrees at speed 4 runs forward to map (5,9).
	if res.Boxes[4] != geom.NewBox(46, 55, 54, 104) {
		t.Errorf("course box = %v", res.Boxes[4])
	}
	if res.Boxes[5] != geom.NewBox(47, 97, 53, 103) {
		t.Errorf("sprite box = %v", res.Boxes[5])
	}
}

func TestRender_Overflow(t *testing.T) {
	s, opts := setup(t, "-", 0)
	opts.Limits.ClashBoxes = 5

	_, err := Render(context.Background(), s, opts)
	if !errors.Is(err, clash.ErrFull) {
		t.Fatalf("err = %v, want clash.ErrFull", err)
	}
	if !strings.Contains(err.Error(), "objects") {
		t.Errorf("error %q does not name the stage", err)
	}
}

func TestRender_Limits(t *testing.T) {
	s, opts := setup(t, "-", 0)
	opts.Limits.Objects = 1

	if _, err := Render(context.Background(), s, opts); !errors.Is(err, scenario.ErrLimit) {
		t.Errorf("err = %v, want scenario.ErrLimit", err)
	}
}

func TestRender_Legend(t *testing.T) {
	s, opts := setup(t, "-", 0)
	opts.Legend = true

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if res.Legend == nil || len(res.Legend.Rows) != 1 {
		t.Fatalf("legend = %+v, want one row", res.Legend)
	}
	// "ship" plus one column of text and a 6 pixel sprite.
	want := geom.NewBox(149, 30, 185, 43)
	if res.Legend.Box != want {
		t.Errorf("legend box = %v, want %v", res.Legend.Box, want)
	}
	if len(res.Boxes) != 9 {
		t.Errorf("legend registered boxes: %d", len(res.Boxes))
	}
	if got := res.Image.RGBAAt(149, 30); got != (color.RGBA{64, 196, 64, 255}) {
		t.Errorf("legend outline = %v", got)
	}
}

func TestRender_Background(t *testing.T) {
	s, opts := setup(t, "back.png", 0)

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := res.Image.RGBAAt(190, 60); got != (color.RGBA{200, 0, 0, 255}) {
		t.Errorf("background pixel = %v, want red", got)
	}
	// Transparent sprite edge of the unnamed object shows the faded
	// background.
	if got := res.Image.RGBAAt(117, 70); got != (color.RGBA{150, 0, 0, 255}) {
		t.Errorf("faded pixel = %v, want (150,0,0)", got)
	}
}

func TestRender_MissingBackground(t *testing.T) {
	s, opts := setup(t, "nowhere.png", 0)
	var buf bytes.Buffer
	opts.Logger = log.New(&buf)

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(buf.String(), "unable to load background") {
		t.Errorf("no warning logged: %q", buf.String())
	}
	if got := res.Image.RGBAAt(190, 60); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("plain map pixel = %v, want black", got)
	}
}

func TestRender_MissingSprite(t *testing.T) {
	s, opts := setup(t, "-", 0)
	s.Classes[0].Image = "missing.png"

	_, err := Render(context.Background(), s, opts)
	if err == nil || !strings.Contains(err.Error(), "class ship") {
		t.Errorf("err = %v, want a class load failure", err)
	}
}

func TestRender_Bitonal(t *testing.T) {
	s, opts := setup(t, "back.png", 0)
	opts.Bitonal = true
	opts.Palette = config.DefaultPalette(true)

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := res.Image.RGBAAt(190, 60); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("bitonal background = %v, want white", got)
	}
	if len(res.Quantizer.Reserved) != 2 {
		t.Errorf("reserved colours = %v, want black and white", res.Quantizer.Reserved)
	}
}

func TestRender_Debug(t *testing.T) {
	s, opts := setup(t, "-", 0)
	opts.Debug = true

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := res.Image.RGBAAt(47, 97); got != (color.RGBA{96, 255, 96, 255}) {
		t.Errorf("sprite box corner = %v, want outlined", got)
	}
}

func TestRender_Cancelled(t *testing.T) {
	s, opts := setup(t, "-", 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Render(ctx, s, opts); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

// crowdedMap puts two named ships one map unit apart so their labels
// compete for the same space.
const crowdedMap = `Crowded
-
0
0 0 20 15
10
ship ship.png 1 1
*
Alpha
ship 5 5 0 0 4 0
Bravo
ship 6 5 0 0 4 0
*
`

func TestRender_LabelsAvoidEarlierLabels(t *testing.T) {
	_, opts := setup(t, "-", 0)
	s, err := scenario.ParseString(crowdedMap, scenario.Limits{})
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(res.Labels) != 2 || res.Labels[0].Name != "Alpha" || res.Labels[1].Name != "Bravo" {
		t.Fatalf("labels = %+v, want Alpha then Bravo", res.Labels)
	}

	alpha, bravo := res.Labels[0], res.Labels[1]
	for _, l := range res.Labels {
		if l.Score != 0 {
			t.Errorf("label %s score = %v, want a clear spot", l.Name, l.Score)
		}
	}
	margin := alpha.Text.Dilate(placement.TextDilation)
	if geom.Overlap(bravo.Text, margin) != 0 {
		t.Errorf("Bravo %v overlaps Alpha's margin %v", bravo.Text, margin)
	}

	// Alpha's margin is in the index before Bravo's label.
	first, second := -1, -1
	for i, b := range res.Boxes {
		switch b {
		case margin:
			first = i
		case bravo.Text.Dilate(placement.TextDilation):
			second = i
		}
	}
	if first < 0 || second < 0 || first > second {
		t.Errorf("label margins registered at %d and %d, want Alpha first", first, second)
	}
}

func TestRender_LocusOnUnnamedObject(t *testing.T) {
	s, opts := setup(t, "-", 0)
	locus := color.RGBA{255, 0, 255, 255}
	opts.Palette.Locus = locus

	res, err := Render(context.Background(), s, opts)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if len(res.Labels) != 1 {
		t.Fatalf("labels = %+v, want only Alpha", res.Labels)
	}

	// Alpha at map (5,5) and the unnamed ship at map (12,8).
	for _, p := range []geom.Point{{X: 50, Y: 100}, {X: 120, Y: 70}} {
		if got := res.Image.RGBAAt(p.X, p.Y); got != locus {
			t.Errorf("centre %v = %v, want the locus marker", p, got)
		}
	}
}
