// Package imageio moves rle rasters in and out of dense image files.
//
// Decoding accepts BMP, TIFF (including CCITT group 3/4 bilevel data), PNG
// and GIF. Encoding writes the raster's two-colour paletted form. Only the
// dense pixels are exchanged; the run lists are rebuilt on decode.
package imageio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/gogpu/rle"
)

// Format is an image container format supported by Encode.
type Format int

const (
	// FormatPNG writes a 1-bit paletted PNG.
	FormatPNG Format = iota
	// FormatBMP writes a paletted BMP.
	FormatBMP
	// FormatTIFF writes a deflate-compressed paletted TIFF.
	FormatTIFF
)

// String returns the lower-case format name, as reported by image.Decode.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned for a Format or name Encode cannot write.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// ParseFormat maps a name or file extension ("png", ".tif", "BMP") to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// Decode reads an image and thresholds it into a raster.
// It returns the format name reported by the registered decoder.
// Options are passed to rle.FromImage.
func Decode(r io.Reader, opts ...rle.Option) (*rle.Raster, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	raster, err := rle.FromImage(img, opts...)
	if err != nil {
		return nil, format, fmt.Errorf("imageio: %s: %w", format, err)
	}
	rle.Logger().Debug("imageio: decoded", "format", format,
		"width", raster.Width(), "height", raster.Height())
	return raster, format, nil
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r *rle.Raster, f Format) error {
	img := r.ToImage()

	var err error
	switch f {
	case FormatPNG:
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFormat, int(f))
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}
