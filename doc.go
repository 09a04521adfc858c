// Package rle provides run-length encoded bilevel (black and white) rasters.
//
// # Overview
//
// A Raster stores one row of black runs per scanline. Each run is an
// inclusive pixel range [Start, End]; runs in a row are strictly increasing
// and never touch, so every row has exactly one encoding. A row with no runs
// is entirely white.
//
// Boolean composition works directly on the encoded form: both operand rows
// are decoded, combined pixel by pixel and re-encoded. AND, OR, XOR and
// invert are single-line operators passed to Combine and Map.
//
// # Quick Start
//
//	import "github.com/gogpu/rle"
//
//	// 0 is black, 1 is white.
//	r, err := rle.New([][]int{{1, 1, 0, 0}}, 4, 1)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r) // 4 1, (2,3)
//
//	inv := r.Clone()
//	inv.Invert()
//	if err := r.Xor(inv); err != nil {
//	    return err
//	}
//
// # Pixel Convention
//
// Decoded rows are []bool where true is white. Operators receive those values
// unchanged by default (Vanilla). Pass WithColor(Chocolate) to hand operators
// the ink value instead, where true is black.
//
// # Concurrency
//
// Rows are independent. WithWorkers spreads encoding and composition across
// goroutines; results are identical to the sequential path. A Raster is not
// safe for concurrent mutation.
//
// # Logging
//
// The package is silent by default. Call SetLogger to receive debug records.
package rle
