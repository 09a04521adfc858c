package parallel

import (
	"slices"
	"sync/atomic"
	"testing"
)

func TestSplitRows(t *testing.T) {
	tests := []struct {
		height, n int
		want      []Band
	}{
		{0, 4, nil},
		{1, 4, []Band{{0, 1}}},
		{4, 1, []Band{{0, 4}}},
		{4, 0, []Band{{0, 4}}},
		{10, 3, []Band{{0, 4}, {4, 7}, {7, 10}}},
		{3, 8, []Band{{0, 1}, {1, 2}, {2, 3}}},
	}
	for _, tt := range tests {
		got := SplitRows(tt.height, tt.n)
		if !slices.Equal(got, tt.want) {
			t.Errorf("SplitRows(%d, %d) = %v, want %v", tt.height, tt.n, got, tt.want)
		}
	}
}

func TestSplitRowsCoverage(t *testing.T) {
	for height := 1; height <= 40; height++ {
		for n := 1; n <= 9; n++ {
			total, next := 0, 0
			for _, b := range SplitRows(height, n) {
				if b.Y0 != next || b.Rows() <= 0 {
					t.Fatalf("SplitRows(%d, %d): bad band %v", height, n, b)
				}
				next = b.Y1
				total += b.Rows()
			}
			if total != height {
				t.Fatalf("SplitRows(%d, %d) covers %d rows", height, n, total)
			}
		}
	}
}

func TestForEachRowSequentialOrder(t *testing.T) {
	var got []int
	ForEachRow(5, 1, func(y int) { got = append(got, y) })
	if want := []int{0, 1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestForEachRowParallel(t *testing.T) {
	const height = 97
	hits := make([]atomic.Int32, height)
	ForEachRow(height, 6, func(y int) { hits[y].Add(1) })

	for y := range hits {
		if n := hits[y].Load(); n != 1 {
			t.Errorf("row %d visited %d times, want 1", y, n)
		}
	}
}

func TestForEachRowEmpty(t *testing.T) {
	ForEachRow(0, 4, func(int) { t.Error("fn called for empty height") })
}

func BenchmarkForEachRow(b *testing.B) {
	out := make([]int, 512)
	b.ReportAllocs()
	for b.Loop() {
		ForEachRow(len(out), 4, func(y int) { out[y] = y * y })
	}
}
