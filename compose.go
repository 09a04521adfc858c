package rle

import "github.com/gogpu/rle/internal/parallel"

// BinaryOp combines two pixels into one.
type BinaryOp func(a, b bool) bool

// UnaryOp maps one pixel to another.
type UnaryOp func(a bool) bool

// Boolean operators. Under the default Vanilla interpretation true is white,
// so OpAnd keeps a pixel white only where both operands are white.
var (
	OpAnd BinaryOp = func(a, b bool) bool { return a && b }
	OpOr  BinaryOp = func(a, b bool) bool { return a || b }
	OpXor BinaryOp = func(a, b bool) bool { return a != b }
	OpNot UnaryOp  = func(a bool) bool { return !a }
)

// Image is the operand side of composition: anything that can report its
// size and decode a row. DecodeRow must return Width() pixels, true is white;
// missing pixels are treated as white.
type Image interface {
	Width() int
	Height() int
	DecodeRow(y int) []bool
}

// Compositor is the in-place capability set of an encoded image.
// *Raster is its only implementation.
type Compositor interface {
	Image
	And(other Image) error
	Or(other Image) error
	Xor(other Image) error
	Invert()
	String() string
}

// checkShape enforces that a and b have equal width and height.
func checkShape(a, b Image) error {
	if a.Width() != b.Width() {
		return &ShapeMismatchError{Dimension: "width", Left: a.Width(), Right: b.Width()}
	}
	if a.Height() != b.Height() {
		return &ShapeMismatchError{Dimension: "height", Left: a.Height(), Right: b.Height()}
	}
	return nil
}

// Combine applies op pixel by pixel to every row of a and b and returns the
// re-encoded result as a new raster. Neither operand is modified.
//
// The shapes are checked before any row is decoded; a *ShapeMismatchError
// naming the first differing dimension is returned on mismatch.
func Combine(a, b Image, op BinaryOp, opts ...Option) (*Raster, error) {
	if err := checkShape(a, b); err != nil {
		return nil, err
	}
	o := buildOptions(opts)
	return combine(a, b, op, o), nil
}

func combine(a, b Image, op BinaryOp, o options) *Raster {
	width, height := a.Width(), a.Height()
	if o.color == Chocolate {
		op = chocolate2(op)
	}

	out := newRaster(width, height, o)
	parallel.ForEachRow(height, o.workers, func(y int) {
		ra, rb := a.DecodeRow(y), b.DecodeRow(y)
		dense := make([]bool, width)
		for x := range dense {
			dense[x] = op(pixel(ra, x), pixel(rb, x))
		}
		out.rows[y] = EncodeRow(dense)
	})

	Logger().Debug("rle: rasters combined",
		"width", width, "height", height, "color", o.color, "workers", o.workers)
	return out
}

// Map applies op to every pixel of a and returns the re-encoded result.
func Map(a Image, op UnaryOp, opts ...Option) *Raster {
	return mapRows(a, op, buildOptions(opts))
}

func mapRows(a Image, op UnaryOp, o options) *Raster {
	width, height := a.Width(), a.Height()
	if o.color == Chocolate {
		op = chocolate1(op)
	}

	out := newRaster(width, height, o)
	parallel.ForEachRow(height, o.workers, func(y int) {
		ra := a.DecodeRow(y)
		dense := make([]bool, width)
		for x := range dense {
			dense[x] = op(pixel(ra, x))
		}
		out.rows[y] = EncodeRow(dense)
	})
	return out
}

// pixel reads x from a decoded row; out-of-range pixels are white.
func pixel(row []bool, x int) bool {
	if x >= len(row) {
		return true
	}
	return row[x]
}

func chocolate2(op BinaryOp) BinaryOp {
	return func(a, b bool) bool { return !op(!a, !b) }
}

func chocolate1(op UnaryOp) UnaryOp {
	return func(a bool) bool { return !op(!a) }
}

// And replaces r with r AND other. On error r is unchanged.
func (r *Raster) And(other Image) error {
	return r.apply(other, OpAnd)
}

// Or replaces r with r OR other. On error r is unchanged.
func (r *Raster) Or(other Image) error {
	return r.apply(other, OpOr)
}

// Xor replaces r with r XOR other. On error r is unchanged.
func (r *Raster) Xor(other Image) error {
	return r.apply(other, OpXor)
}

// Apply replaces r with op applied to r and other. On error r is unchanged.
func (r *Raster) Apply(other Image, op BinaryOp) error {
	return r.apply(other, op)
}

func (r *Raster) apply(other Image, op BinaryOp) error {
	if err := checkShape(r, other); err != nil {
		return err
	}
	r.replaceRows(combine(r, other, op, r.opts).rows)
	return nil
}

// Invert swaps black and white in every row.
func (r *Raster) Invert() {
	r.replaceRows(mapRows(r, OpNot, r.opts).rows)
}
