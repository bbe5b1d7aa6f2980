// Package workerpool dispatches an embarrassingly-parallel range of work
// items (query rows, scan ranges) across a bounded worker pool.
//
// Range wraps errgroup.WithContext bounded by g.SetLimit: one goroutine per
// item, first-error-wins cancellation. This suits row-independent scans
// (kNN, radius query, density map, edge sort), where each item is pure CPU
// work over shared read-only input rather than an I/O-bound job.
package workerpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit returns the worker-pool width used when a caller does not
// override it: GOMAXPROCS, clamped to at least 1.
func DefaultLimit() int {
	if n := runtime.GOMAXPROCS(0); n > 0 {
		return n
	}
	return 1
}

// Range calls fn(i) for every i in [0, n), distributing calls across up to
// limit concurrent goroutines. It returns the first error encountered
// (including ctx.Err() observed by a caller-supplied fn) and cancels
// remaining work on first failure. n <= 0 is a no-op. limit <= 0 uses
// DefaultLimit.
//
// The result is independent of the chosen limit: each fn(i) call sees only
// its own index and whatever shared read-only inputs the caller closed
// over, so scheduling order never perturbs output.
func Range(ctx context.Context, n, limit int, fn func(ctx context.Context, i int) error) error {
	if n <= 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return fn(gctx, i)
		})
	}

	return g.Wait()
}
