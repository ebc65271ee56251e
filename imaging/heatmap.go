package imaging

import (
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"

	"github.com/katalvlaran/nucleusforce/grid"
)

// Palette endpoints for Heatmap: low forces are dark blue, high forces yellow.
var (
	HeatLow  = colorful.Color{R: 0.267, G: 0.005, B: 0.329}
	HeatHigh = colorful.Color{R: 0.993, G: 0.906, B: 0.144}
)

// Heatmap renders f as an image, one pixel per grid cell, blending in HCL
// space from HeatLow at the minimum value to HeatHigh at the maximum.
// A constant grid renders entirely as HeatLow.
func Heatmap(f *grid.Forces) (*image.RGBA, error) {
	if err := grid.SameShape(f); err != nil {
		return nil, err
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range f.Values() {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo

	img := image.NewRGBA(image.Rect(0, 0, f.Cols(), f.Rows()))
	for r := 0; r < f.Rows(); r++ {
		for c := 0; c < f.Cols(); c++ {
			t := 0.0
			if span > 0 {
				t = (f.At(r, c) - lo) / span
			}
			img.Set(c, r, HeatLow.BlendHcl(HeatHigh, t).Clamped())
		}
	}
	return img, nil
}

// SavePNG encodes img as PNG at path on fs.
func SavePNG(fs afero.Fs, path string, img image.Image) error {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("imaging: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("imaging: %w", err)
	}
	return f.Close()
}
