package rle

import (
	"iter"

	"github.com/gogpu/rle/internal/parallel"
)

// Raster is a bilevel image stored as one run list per row.
//
// Rows are owned by the raster: accessors return copies and every mutating
// operation replaces the whole row set at once. There is no cleanup step;
// dropping the last reference releases all storage.
//
// Thread safety: a Raster may be read concurrently, but mutating methods
// (And, Or, Xor, Invert) require exclusive access.
type Raster struct {
	width  int
	height int
	rows   []Row
	opts   options
}

// Compile-time interface check.
var _ Compositor = (*Raster)(nil)

// New encodes a dense grid into a Raster.
//
// grid must have exactly height rows of exactly width values. A value of 0
// is black; any other value is white. A *ShapeError is returned when the
// dimensions are not positive or the grid does not match them.
//
// Options: WithWorkers spreads encoding over goroutines; WithColor sets the
// interpretation used later by And, Or and Xor.
func New(grid [][]int, width, height int, opts ...Option) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, &ShapeError{Width: width, Height: height, Row: -1}
	}
	if len(grid) != height {
		return nil, &ShapeError{Width: width, Height: height, Row: -1, Got: len(grid)}
	}
	for y, line := range grid {
		if len(line) != width {
			return nil, &ShapeError{Width: width, Height: height, Row: y, Got: len(line)}
		}
	}

	r := newRaster(width, height, buildOptions(opts))
	parallel.ForEachRow(height, r.opts.workers, func(y int) {
		dense := make([]bool, width)
		for x, v := range grid[y] {
			dense[x] = v != 0
		}
		r.rows[y] = EncodeRow(dense)
	})

	Logger().Debug("rle: raster encoded",
		"width", width, "height", height, "runs", r.RunCount(), "workers", r.opts.workers)
	return r, nil
}

// NewBlank returns an all-white raster.
func NewBlank(width, height int, opts ...Option) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, &ShapeError{Width: width, Height: height, Row: -1}
	}
	return newRaster(width, height, buildOptions(opts)), nil
}

func newRaster(width, height int, o options) *Raster {
	return &Raster{
		width:  width,
		height: height,
		rows:   make([]Row, height),
		opts:   o,
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the number of rows.
func (r *Raster) Height() int { return r.height }

// Row returns a copy of the run list for row y.
// Returns nil if y is out of range.
func (r *Raster) Row(y int) Row {
	if y < 0 || y >= r.height {
		return nil
	}
	return r.rows[y].Clone()
}

// DecodeRow returns row y as width pixels, true is white.
// Returns nil if y is out of range.
func (r *Raster) DecodeRow(y int) []bool {
	if y < 0 || y >= r.height {
		return nil
	}
	return DecodeRow(r.rows[y], r.width)
}

// Decode returns every row as dense pixels, true is white.
func (r *Raster) Decode() [][]bool {
	out := make([][]bool, r.height)
	for y, row := range r.rows {
		out[y] = DecodeRow(row, r.width)
	}
	return out
}

// Grid returns the raster in the construction form: 0 is black, 1 is white.
func (r *Raster) Grid() [][]int {
	grid := make([][]int, r.height)
	for y, row := range r.rows {
		line := make([]int, r.width)
		for x := range line {
			line[x] = 1
		}
		for _, run := range row {
			for x := run.Start; x <= run.End; x++ {
				line[x] = 0
			}
		}
		grid[y] = line
	}
	return grid
}

// IsBlack reports whether the pixel at (x, y) is black.
// Coordinates outside the raster are white.
func (r *Raster) IsBlack(x, y int) bool {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return false
	}
	for _, run := range r.rows[y] {
		if x < run.Start {
			return false
		}
		if x <= run.End {
			return true
		}
	}
	return false
}

// Runs returns an iterator over every run, keyed by row index.
//
//	for y, run := range r.Runs() {
//	    fmt.Println(y, run.Start, run.End)
//	}
func (r *Raster) Runs() iter.Seq2[int, Run] {
	return func(yield func(int, Run) bool) {
		for y, row := range r.rows {
			for _, run := range row {
				if !yield(y, run) {
					return
				}
			}
		}
	}
}

// RunCount returns the total number of runs.
func (r *Raster) RunCount() int {
	n := 0
	for _, row := range r.rows {
		n += len(row)
	}
	return n
}

// BlackPixels returns the number of black pixels.
func (r *Raster) BlackPixels() int {
	n := 0
	for _, row := range r.rows {
		n += row.Pixels()
	}
	return n
}

// Clone returns a deep copy sharing no row storage with r.
func (r *Raster) Clone() *Raster {
	c := newRaster(r.width, r.height, r.opts)
	for y, row := range r.rows {
		c.rows[y] = row.Clone()
	}
	return c
}

// Equal reports whether both rasters have the same size and run lists.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	if r.width != o.width || r.height != o.height {
		return false
	}
	for y := range r.rows {
		if !r.rows[y].Equal(o.rows[y]) {
			return false
		}
	}
	return true
}

// Validate reports whether every row satisfies the run ordering and bounds
// rules. It returns the index of the first invalid row, or -1.
func (r *Raster) Validate() (int, bool) {
	for y, row := range r.rows {
		if !row.Valid(r.width) {
			return y, false
		}
	}
	return -1, true
}

// replaceRows installs a complete row set in one assignment.
func (r *Raster) replaceRows(rows []Row) {
	r.rows = rows
}
