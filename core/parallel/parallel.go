// Package parallel provides the worker helpers the evaluation harness uses to
// fan independent fit/evaluate cycles out over CPU cores.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize divides items into contiguous chunks by CPU count and executes
// fn in parallel for each range (start, end).
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// ceiling division
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}

		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ForEach runs fn once per index over a bounded worker pool and collects one
// error slot per index. workers <= 0 means one worker per CPU. Each index owns
// its own slot, so fn needs no synchronization for its own results.
func ForEach(items, workers int, fn func(i int) error) []error {
	if items == 0 {
		return nil
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > items {
		workers = items
	}

	errs := make([]error, items)
	idxCh := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idxCh {
				errs[i] = fn(i)
			}
		}()
	}

	for i := 0; i < items; i++ {
		idxCh <- i
	}
	close(idxCh)

	wg.Wait()
	return errs
}

// FirstError returns the first non-nil error in errs, or nil.
func FirstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
