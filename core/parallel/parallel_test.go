package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeNCoversEveryIndexOnce(t *testing.T) {
	for _, tc := range []struct{ items, workers int }{
		{0, 4}, {1, 4}, {7, 3}, {10, 10}, {10, 0}, {100, 8},
	} {
		hits := make([]int32, tc.items)
		ParallelizeN(tc.items, tc.workers, func(start, end int) {
			for i := start; i < end; i++ {
				atomic.AddInt32(&hits[i], 1)
			}
		})
		for i, h := range hits {
			if h != 1 {
				t.Errorf("items=%d workers=%d: index %d visited %d times", tc.items, tc.workers, i, h)
			}
		}
	}
}

func TestParallelize(t *testing.T) {
	var total int64
	Parallelize(1000, func(start, end int) {
		atomic.AddInt64(&total, int64(end-start))
	})
	if total != 1000 {
		t.Errorf("expected 1000 items processed, got %d", total)
	}
}
