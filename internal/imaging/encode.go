package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultOutput is the file written when no output name is given.
const DefaultOutput = "ftmap.gif"

// FormatFor returns the encoding format for an output file name. Names
// without a recognised extension are written as GIF.
func FormatFor(name string) imaging.Format {
	if filepath.Ext(name) == "" {
		return imaging.GIF
	}
	f, err := imaging.FormatFromFilename(name)
	if err != nil {
		return imaging.GIF
	}
	return f
}

// Encode writes img to w in format f. GIF output is reduced with q, mapping
// each pixel to its nearest palette entry without dithering; q may be nil to
// use the encoder's default quantizer.
func Encode(w io.Writer, img image.Image, f imaging.Format, q draw.Quantizer) error {
	var opts []imaging.EncodeOption
	if f == imaging.GIF {
		opts = append(opts, imaging.GIFNumColors(256), imaging.GIFDrawer(draw.Src))
		if q != nil {
			opts = append(opts, imaging.GIFQuantizer(q))
		}
	}
	if err := imaging.Encode(w, img, f, opts...); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", strings.ToLower(f.String()), err)
	}
	return nil
}

// Save encodes img to the named file, choosing the format from its
// extension.
func Save(name string, img image.Image, q draw.Quantizer) error {
	if name == "" {
		name = DefaultOutput
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := Encode(f, img, FormatFor(name), q); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// PreviewResult contains a rendered map encoded for transport.
type PreviewResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Preview encodes a named region of img as a base64 PNG, scaled by scale.
// The empty region selects the whole map.
func Preview(img image.Image, region string, scale float64) (*PreviewResult, error) {
	r, err := RegionRect(img.Bounds(), region)
	if err != nil {
		return nil, err
	}
	var out image.Image = img
	if r != img.Bounds() {
		if out, err = Crop(img, r); err != nil {
			return nil, err
		}
	}

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(out.Bounds().Dx()) * scale)
		newHeight := int(float64(out.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("preview scale %.3f leaves no pixels", scale)
		}
		out = imaging.Resize(out, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, out, imaging.PNG, nil); err != nil {
		return nil, err
	}

	return &PreviewResult{
		Width:       out.Bounds().Dx(),
		Height:      out.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
