package parallel

import (
	"context"
	"runtime"
	"sync"
)

// Parallelize divides items into one contiguous chunk per CPU core and runs fn on
// each chunk concurrently.
func Parallelize(items int, fn func(start, end int)) {
	_ = ParallelizeContext(context.Background(), items, func(start, end int) error {
		fn(start, end)
		return nil
	})
}

// ParallelizeWithThreshold runs fn sequentially over [0, items) when items does
// not exceed threshold, and in parallel chunks otherwise.
func ParallelizeWithThreshold(items int, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}

// ParallelizeContext is Parallelize for chunk functions that can fail. Chunks
// that have not started when ctx is cancelled are skipped. The first non-nil
// error (or ctx.Err()) is returned after every started chunk has finished.
func ParallelizeContext(ctx context.Context, items int, fn func(start, end int) error) error {
	if items <= 0 {
		return ctx.Err()
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}
	chunkSize := (items + numWorkers - 1) / numWorkers

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	record := func(err error) {
		once.Do(func() { firstErr = err })
	}

	for start := 0; start < items; start += chunkSize {
		end := start + chunkSize
		if end > items {
			end = items
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				record(err)
				return
			}
			if err := fn(s, e); err != nil {
				record(err)
			}
		}(start, end)
	}
	wg.Wait()

	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}
