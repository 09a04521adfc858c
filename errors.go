package rle

import "fmt"

// ShapeError is returned when a grid does not have the declared dimensions.
//
// Row is the index of the offending grid row, or -1 when the declared
// width or height is invalid or the number of rows is wrong. Got is the
// length that was found.
type ShapeError struct {
	Width  int
	Height int
	Row    int
	Got    int
}

func (e *ShapeError) Error() string {
	switch {
	case e.Width <= 0 || e.Height <= 0:
		return fmt.Sprintf("rle: invalid dimensions %dx%d", e.Width, e.Height)
	case e.Row < 0:
		return fmt.Sprintf("rle: grid has %d rows, want %d", e.Got, e.Height)
	default:
		return fmt.Sprintf("rle: grid row %d has %d pixels, want %d", e.Row, e.Got, e.Width)
	}
}

// ShapeMismatchError is returned when two rasters of different size are
// composed. Dimension is "width" or "height".
type ShapeMismatchError struct {
	Dimension string
	Left      int
	Right     int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("rle: %s mismatch: %d != %d", e.Dimension, e.Left, e.Right)
}
