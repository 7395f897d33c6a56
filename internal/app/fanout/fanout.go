// Package fanout provides a generic, bounded-concurrency fan-out helper for
// application-layer orchestration, such as sweeping overdue tasks across many
// lifecycles. It runs a function over a slice of items with a fixed worker
// count, preserving input order in the results.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers goroutines.
// Results are returned in input order. When ctx is cancelled, items not yet
// picked up by a worker record ctx.Err(); items already running complete
// (fn is responsible for honoring ctx internally).
//
// Run blocks until all workers finish. An empty input returns an empty,
// non-nil slice. maxWorkers values below 1 are treated as 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	results := make([]Result[R], len(items))
	indexes := make(chan int)

	var wg sync.WaitGroup
	wg.Add(maxWorkers)
	for w := 0; w < maxWorkers; w++ {
		go func() {
			defer wg.Done()
			for idx := range indexes {
				val, err := fn(ctx, items[idx])
				results[idx] = Result[R]{Value: val, Err: err}
			}
		}()
	}

	for i := range items {
		select {
		case indexes <- i:
		case <-ctx.Done():
			results[i] = Result[R]{Err: ctx.Err()}
		}
	}
	close(indexes)

	wg.Wait()
	return results
}
