// Package parallel provides CPU-parallel range splitting for data-parallel
// loops. Resampling itself is strictly sequential (it consumes a shared
// randomness stream), so only rng-free scans such as per-feature variance
// computation go through this package.
package parallel

import (
	"runtime"
	"sync"
)

// ColumnThreshold is the feature count below which per-column scans run
// sequentially; goroutine overhead dominates on narrow matrices.
const ColumnThreshold = 64

// Columns runs fn over half-open column ranges of a width-cols matrix,
// parallelizing only when the matrix is wide enough to pay for it.
func Columns(cols int, fn func(start, end int)) {
	ParallelizeWithThreshold(cols, ColumnThreshold, fn)
}

// Parallelize splits the half-open range [0, items) into one contiguous
// chunk per available CPU core and runs fn on each chunk concurrently.
// Chunk sizes differ by at most one, so no worker is left idle while
// another drains a long tail. Returns after every chunk has completed.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if workers > items {
		workers = items
	}

	base := items / workers
	extra := items % workers

	var wg sync.WaitGroup
	wg.Add(workers)
	start := 0
	for w := 0; w < workers; w++ {
		size := base
		if w < extra {
			size++
		}
		end := start + size
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
		start = end
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn over [0, items) sequentially when items
// is at or below threshold, in parallel otherwise.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		if items > 0 {
			fn(0, items)
		}
		return
	}
	Parallelize(items, fn)
}
