package rle

import (
	"strconv"
	"strings"
)

// whiteRow marks a row without black runs in the text form.
const whiteRow = " / "

// String renders the raster for inspection:
//
//	"<width> <height>, " then, per row, " / " for an all-white row or
//	"(start,end) " for each run, rows separated by ",".
//
// For example a 4x2 raster whose first row is [1,1,0,0] and whose second
// row is white renders as "4 2, (2,3) , / ". The form is not meant to be
// parsed back.
func (r *Raster) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(r.width))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(r.height))
	sb.WriteString(", ")

	for y, row := range r.rows {
		if y > 0 {
			sb.WriteByte(',')
		}
		if len(row) == 0 {
			sb.WriteString(whiteRow)
			continue
		}
		for _, run := range row {
			sb.WriteString(run.String())
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}
