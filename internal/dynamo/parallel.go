package dynamo

import (
	"runtime"
	"sync"
)

// ParallelFor executes fn in parallel over the range [0, n), one contiguous
// chunk per worker. Small ranges run inline.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	ParallelForN(n, minChunk, runtime.NumCPU(), fn)
}

// ParallelForN is ParallelFor with an explicit worker cap.
func ParallelForN(n, minChunk, numWorkers int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	if minChunk < 1 {
		minChunk = 1
	}
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}
