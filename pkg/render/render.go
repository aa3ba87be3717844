package render

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/matzehuels/dla/pkg/aggregate"
	"github.com/matzehuels/dla/pkg/errors"
	dlaio "github.com/matzehuels/dla/pkg/io"
)

// Output formats.
const (
	FormatTXT  = "txt"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatPDF  = "pdf"
)

// Styles.
const (
	// StylePlain draws every site in one color.
	StylePlain = "plain"
	// StyleAge shades sites by commit order.
	StyleAge = "age"
)

// Defaults.
const (
	DefaultStyle = StyleAge
	DefaultScale = 4.0
	MaxScale     = 64.0

	// MaxPixels bounds the area of a raster canvas (512 MiB as RGBA).
	MaxPixels = 1 << 27
)

// Formats lists every supported format in display order.
var Formats = []string{FormatTXT, FormatSVG, FormatPNG, FormatJSON, FormatDOT, FormatPDF}

// Styles lists every supported style.
var Styles = []string{StylePlain, StyleAge}

// Options controls the appearance of image sinks. txt and json ignore it.
type Options struct {
	Style string
	// Scale is the side length of one lattice site in pixels.
	Scale float64
}

func (o Options) withDefaults() Options {
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	return o
}

// ValidateFormat checks that format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(Formats, format) {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format %q (must be one of: %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every entry of formats.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that style is supported.
func ValidateStyle(style string) error {
	if !slices.Contains(Styles, style) {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid style %q (must be one of: %s)", style, strings.Join(Styles, ", "))
	}
	return nil
}

// ValidateScale checks that scale is a usable pixel size.
func ValidateScale(scale float64) error {
	if math.IsNaN(scale) || scale < 1 || scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be in [1, %g], got %v", MaxScale, scale)
	}
	return nil
}

// ValidateCanvas checks that a raster of size lattice sites per side at
// scale fits within MaxPixels.
func ValidateCanvas(size int, scale float64) error {
	side := int64(pixelSize(scale)) * int64(size)
	if side*side > MaxPixels {
		return errors.New(errors.ErrCodeInvalidInput,
			"png canvas %d×%d exceeds %d pixels; lower the radius or the scale", side, side, MaxPixels)
	}
	return nil
}

// pixelSize is the side of one lattice site in the raster.
func pixelSize(scale float64) int {
	return max(int(math.Round(scale)), 1)
}

// Validate applies defaults and checks opts.
func (o *Options) Validate() error {
	*o = o.withDefaults()
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}
	return ValidateScale(o.Scale)
}

// Render produces one artifact of s in format.
func Render(s aggregate.Snapshot, format string, opts Options) ([]byte, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	switch format {
	case FormatTXT:
		return Text(s), nil
	case FormatSVG:
		return SVG(s, opts), nil
	case FormatPNG:
		return PNG(s, opts)
	case FormatJSON:
		return dlaio.MarshalJSON(s)
	case FormatDOT:
		return DOT(s, opts)
	case FormatPDF:
		return ToPDF(SVG(s, opts))
	default:
		return nil, ValidateFormat(format)
	}
}

// RenderAll renders s once per format, keyed by format name.
func RenderAll(s aggregate.Snapshot, formats []string, opts Options) (map[string][]byte, error) {
	out := make(map[string][]byte, len(formats))
	for _, f := range formats {
		data, err := Render(s, f, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", f, err)
		}
		out[f] = data
	}
	return out, nil
}
