// Package fanout runs a function across a slice of items with a bounded
// number of worker goroutines, preserving input order in the results. The
// dashboard uses it to scan independent collections concurrently; any
// service that needs to process a batch of records can reuse it.
package fanout

import (
	"context"
	"sync"
)

// Result holds the outcome for a single item. Exactly one of Value or Err
// is meaningful.
type Result[R any] struct {
	Value R
	Err   error
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines and returns results in input order.
//
// A goroutine still waiting for a worker slot when ctx is canceled records
// ctx.Err() without calling fn. Goroutines already running are not
// interrupted; fn must check ctx itself if it supports cancellation.
//
// Run blocks until every goroutine finishes. maxWorkers must be >= 1.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	slots := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		}()
	}

	wg.Wait()
	return results
}
