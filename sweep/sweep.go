// SPDX-License-Identifier: MIT

// Package sweep runs independent per-parameter tasks on a bounded worker
// pool and returns their results aligned with the input order. It also
// provides the mutation-rate grids and the rescaling used when comparing
// simulated frequencies with the exact first-order effect.
package sweep

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidGrid indicates a grid request with n < 1 or non-finite bounds.
var ErrInvalidGrid = errors.New("sweep: invalid grid")

// TaskError reports the failing task index together with its cause.
type TaskError struct {
	Index int
	Err   error
}

// Error implements error.
func (e *TaskError) Error() string { return fmt.Sprintf("task %d: %v", e.Index, e.Err) }

// Unwrap exposes the cause to errors.Is / errors.As.
func (e *TaskError) Unwrap() error { return e.Err }

// Workers normalizes a worker count: values < 1 mean runtime.NumCPU().
func Workers(w int) int {
	if w < 1 {
		return runtime.NumCPU()
	}

	return w
}

// Map evaluates fn(ctx, i) for i in [0, n) with at most workers concurrent
// calls and returns out[i] = fn(ctx, i) regardless of completion order.
//
// Implementation:
//   - Stage 1: errgroup.WithContext + SetLimit bounds concurrency.
//   - Stage 2: each task writes only its own slot of the result slice.
//   - Stage 3: fail-fast; the first error cancels ctx for the remaining
//     tasks and is returned as *TaskError.
//
// Tasks not yet started when ctx is cancelled are skipped. A cancelled
// parent context yields its ctx.Err() wrapped in the TaskError of the first
// skipped index.
//
// Complexity: O(n) scheduling overhead on top of the tasks themselves.
func Map[T any](ctx context.Context, n, workers int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	out := make([]T, n)
	if n == 0 {
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(Workers(workers))
	next := 0
	for ; next < n; next++ {
		if gctx.Err() != nil {
			break
		}
		i := next
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return &TaskError{Index: i, Err: err}
			}
			v, err := fn(gctx, i)
			if err != nil {
				return &TaskError{Index: i, Err: err}
			}
			out[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if next < n {
		// every started task succeeded, so the parent context stopped the loop
		return nil, &TaskError{Index: next, Err: context.Cause(ctx)}
	}

	return out, nil
}
