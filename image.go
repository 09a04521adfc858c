package rle

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Palette is the two-entry palette used by ToImage: index 0 is white,
// index 1 is black. Encoders such as png write it as a 1-bit image.
var Palette = color.Palette{color.White, color.Black}

// FromImage thresholds img into a Raster.
//
// The image is converted to grey first; pixels whose luminance is below the
// threshold (WithThreshold, default 128) become black. Fully transparent
// pixels are composited over black, as with any draw.Src conversion.
func FromImage(img image.Image, opts ...Option) (*Raster, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, &ShapeError{Width: w, Height: h, Row: -1}
	}

	gray, ok := img.(*image.Gray)
	if !ok {
		gray = image.NewGray(image.Rect(0, 0, w, h))
		xdraw.Draw(gray, gray.Bounds(), img, bounds.Min, xdraw.Src)
	}

	o := buildOptions(opts)
	r := newRaster(w, h, o)
	gb := gray.Bounds()
	for y := range h {
		dense := make([]bool, w)
		off := gray.PixOffset(gb.Min.X, gb.Min.Y+y)
		for x := range dense {
			dense[x] = gray.Pix[off+x] >= o.threshold
		}
		r.rows[y] = EncodeRow(dense)
	}

	Logger().Debug("rle: raster from image",
		"width", w, "height", h, "threshold", o.threshold, "runs", r.RunCount())
	return r, nil
}

// ToImage renders the raster as a two-colour paletted image using Palette.
func (r *Raster) ToImage() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, r.width, r.height), Palette)
	for y, row := range r.rows {
		off := y * img.Stride
		for _, run := range row {
			for x := run.Start; x <= run.End; x++ {
				img.Pix[off+x] = 1
			}
		}
	}
	return img
}
