// Package imaging turns a segmented, flat-colored image into the label grids
// consumed by nucleusforce: every distinct color becomes an integer label,
// and any one color can be isolated into a 0/1 mask.
//
// Supported formats are whatever image.Decode has registered: PNG, JPEG and
// GIF from the standard library plus BMP, TIFF and WebP from
// golang.org/x/image. Lossy formats rarely keep segmentation colors exact;
// prefer PNG, BMP or TIFF.
package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register decoder
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/afero"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/nucleusforce/grid"
)

// Sentinel errors for color-map operations.
var (
	// ErrNotLoaded indicates a ColorMap method was called before an image was loaded.
	ErrNotLoaded = errors.New("imaging: color map has no image loaded")
	// ErrDuplicateLabel indicates a recolor mapping assigns one label to two colors.
	ErrDuplicateLabel = errors.New("imaging: mapping repeats a label")
	// ErrMissingColor indicates the image holds a color absent from a recolor mapping.
	ErrMissingColor = errors.New("imaging: color missing from mapping")
	// ErrBadColor indicates a color string could not be parsed.
	ErrBadColor = errors.New("imaging: invalid color")
)

// RGB is an 8-bit-per-channel color. Alpha is ignored.
type RGB struct {
	R, G, B uint8
}

// String renders c as "#rrggbb".
func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseRGB parses a "#rrggbb" hex color.
func ParseRGB(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%w %q: %v", ErrBadColor, s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// ColorMap is a label grid derived from an image. Colors are numbered in the
// order they are first met in a row-major scan unless Recolor assigns labels.
type ColorMap struct {
	source  string
	pixels  []RGB
	labels  *grid.Labels
	index   map[int]RGB
	mapping map[RGB]int
}

// Load decodes the image at path on fs and indexes its colors.
func Load(fs afero.Fs, path string) (*ColorMap, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imaging: could not load the image at %s: %w", path, err)
	}
	defer f.Close()

	cm, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imaging: could not load the image at %s: %w", path, err)
	}
	cm.source = path
	return cm, nil
}

// LoadWithMapping loads path from fs and applies Recolor(mapping).
func LoadWithMapping(fs afero.Fs, path string, mapping map[RGB]int) (*ColorMap, error) {
	cm, err := Load(fs, path)
	if err != nil {
		return nil, err
	}
	if err := cm.Recolor(mapping); err != nil {
		return nil, err
	}
	return cm, nil
}

// Decode reads an image in any registered format from r.
func Decode(r io.Reader) (*ColorMap, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img)
}

// FromImage indexes the colors of img. Returns grid.ErrEmptyGrid for a
// zero-sized image.
func FromImage(img image.Image) (*ColorMap, error) {
	b := img.Bounds()
	labels, err := grid.New[int](b.Dy(), b.Dx())
	if err != nil {
		return nil, err
	}

	cm := &ColorMap{
		source:  "<memory>",
		pixels:  make([]RGB, 0, b.Dx()*b.Dy()),
		labels:  labels,
		index:   make(map[int]RGB),
		mapping: make(map[RGB]int),
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := toRGB(img.At(x, y))
			id, ok := cm.mapping[c]
			if !ok {
				id = len(cm.index)
				cm.mapping[c] = id
				cm.index[id] = c
			}
			cm.pixels = append(cm.pixels, c)
			labels.Set(y-b.Min.Y, x-b.Min.X, id)
		}
	}
	return cm, nil
}

// toRGB drops alpha and narrows to 8 bits per channel.
func toRGB(c interface{ RGBA() (r, g, b, a uint32) }) RGB {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		// fully transparent; read the raw channels
		r, g, b, _ := c.RGBA()
		return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
	}
	r, g, b := cf.RGB255()
	return RGB{R: r, G: g, B: b}
}

// Recolor relabels every pixel using mapping. It fails, leaving cm
// unchanged, if two colors share a label or if the image holds a color the
// mapping does not cover.
func (cm *ColorMap) Recolor(mapping map[RGB]int) error {
	if cm == nil || cm.labels == nil {
		return ErrNotLoaded
	}

	index := make(map[int]RGB, len(mapping))
	for c, id := range mapping {
		if prev, dup := index[id]; dup {
			return fmt.Errorf("%w: %d used by %s and %s", ErrDuplicateLabel, id, prev, c)
		}
		index[id] = c
	}

	labels := grid.Like[int](cm.labels)
	out := labels.Values()
	for i, c := range cm.pixels {
		id, ok := mapping[c]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingColor, c)
		}
		out[i] = id
	}

	cm.labels = labels
	cm.index = index
	cm.mapping = make(map[RGB]int, len(mapping))
	for c, id := range mapping {
		cm.mapping[c] = id
	}
	return nil
}

// Source returns the path the map was loaded from.
func (cm *ColorMap) Source() string { return cm.source }

// Labels returns a copy of the label grid.
func (cm *ColorMap) Labels() (*grid.Labels, error) {
	if cm == nil || cm.labels == nil {
		return nil, ErrNotLoaded
	}
	return cm.labels.Clone(), nil
}

// Index returns a copy of the label → color table.
func (cm *ColorMap) Index() map[int]RGB {
	out := make(map[int]RGB, len(cm.index))
	for k, v := range cm.index {
		out[k] = v
	}
	return out
}

// Mapping returns a copy of the color → label table.
func (cm *ColorMap) Mapping() map[RGB]int {
	out := make(map[RGB]int, len(cm.mapping))
	for k, v := range cm.mapping {
		out[k] = v
	}
	return out
}

// Isolate returns a mask with 1 wherever the image holds color c. A color
// the image does not contain yields an all-zero mask.
func (cm *ColorMap) Isolate(c RGB) (*grid.Labels, error) {
	if cm == nil || cm.labels == nil {
		return nil, ErrNotLoaded
	}
	mask := grid.Like[int](cm.labels)
	id, ok := cm.mapping[c]
	if !ok {
		return mask, nil
	}
	out := mask.Values()
	for i, v := range cm.labels.Values() {
		if v == id {
			out[i] = 1
		}
	}
	return mask, nil
}
