package parallel

// Band is a contiguous range of rows [Y0, Y1) processed by one work item.
type Band struct {
	Y0 int
	Y1 int
}

// Rows returns the number of rows in the band.
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// SplitRows divides height rows into at most n bands of near-equal size.
// Bands are returned top to bottom and cover every row exactly once.
func SplitRows(height, n int) []Band {
	if height <= 0 {
		return nil
	}
	n = max(1, min(n, height))

	bands := make([]Band, 0, n)
	base, extra := height/n, height%n
	y := 0
	for i := range n {
		size := base
		if i < extra {
			size++
		}
		bands = append(bands, Band{Y0: y, Y1: y + size})
		y += size
	}
	return bands
}

// ForEachRow calls fn once for every row in [0, height).
//
// With fewer than two workers, or a single row, fn runs on the calling
// goroutine in row order. Otherwise rows are split into bands and run on
// a short-lived WorkerPool; fn must only touch state owned by its row.
func ForEachRow(height, workers int, fn func(y int)) {
	if height <= 0 {
		return
	}
	if workers < 2 || height < 2 {
		for y := range height {
			fn(y)
		}
		return
	}

	bands := SplitRows(height, workers)
	work := make([]func(), len(bands))
	for i, b := range bands {
		work[i] = func() {
			for y := b.Y0; y < b.Y1; y++ {
				fn(y)
			}
		}
	}

	pool := NewWorkerPool(min(workers, len(bands)))
	defer pool.Close()
	pool.ExecuteAll(work)
}
