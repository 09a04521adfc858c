package rle

import "strconv"

// Run is an inclusive range of black pixels within one row.
type Run struct {
	Start int // First black pixel
	End   int // Last black pixel (inclusive)
}

// Len returns the number of pixels covered by the run.
func (r Run) Len() int {
	return r.End - r.Start + 1
}

// String returns the run as "(start,end)".
func (r Run) String() string {
	return "(" + strconv.Itoa(r.Start) + "," + strconv.Itoa(r.End) + ")"
}

// Row is the ordered run list of one scanline.
// An empty row is entirely white.
type Row []Run

// Clone returns a copy of the row that shares no storage with r.
func (r Row) Clone() Row {
	if len(r) == 0 {
		return nil
	}
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// Pixels returns the number of black pixels in the row.
func (r Row) Pixels() int {
	n := 0
	for _, run := range r {
		n += run.Len()
	}
	return n
}

// Valid reports whether every run lies within [0, width-1] and runs are
// strictly increasing with at least one white pixel between neighbours.
func (r Row) Valid(width int) bool {
	prevEnd := -2
	for _, run := range r {
		if run.Start < 0 || run.Start > run.End || run.End >= width {
			return false
		}
		if run.Start <= prevEnd+1 {
			return false
		}
		prevEnd = run.End
	}
	return true
}

// Equal reports whether two rows hold the same runs.
func (r Row) Equal(o Row) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// EncodeRow converts a dense row (true is white) into its run list.
// The row width is len(dense). Every input has exactly one encoding.
func EncodeRow(dense []bool) Row {
	var row Row
	start := -1
	for x, white := range dense {
		switch {
		case !white && start < 0:
			start = x
		case white && start >= 0:
			row = append(row, Run{Start: start, End: x - 1})
			start = -1
		}
	}
	// Black continues to the right edge.
	if start >= 0 {
		row = append(row, Run{Start: start, End: len(dense) - 1})
	}
	return row
}

// DecodeRow expands a run list into width pixels, true is white.
// Runs are clipped to the row; a non-positive width yields an empty slice.
func DecodeRow(row Row, width int) []bool {
	if width <= 0 {
		return []bool{}
	}
	dense := make([]bool, width)
	for x := range dense {
		dense[x] = true
	}
	for _, run := range row {
		start, end := max(run.Start, 0), min(run.End, width-1)
		for x := start; x <= end; x++ {
			dense[x] = false
		}
	}
	return dense
}
