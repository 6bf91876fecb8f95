// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MultiStart runs method from every start point concurrently and returns the
// result with the lowest F. Ties keep the earliest start.
//
// p.Func and p.Grad are called from several goroutines at once, so they must
// be safe for concurrent use (equating.StockingLord is).
//
// A start that fails with ErrNonFinite is skipped. Any other error, or
// cancellation of ctx, aborts the whole run. If every start is skipped the
// first ErrNonFinite is returned.
func MultiStart(ctx context.Context, method Method, p Problem, starts [][]float64, opts Options) (Result, error) {
	if method == nil || len(starts) == 0 {
		return Result{}, ErrBadInput
	}

	results := make([]Result, len(starts))
	errs := make([]error, len(starts))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, x0 := range starts {
		i, x0 := i, x0
		g.Go(func() error {
			r, err := method(gCtx, p, x0, opts)
			if err != nil && !errors.Is(err, ErrNonFinite) {
				return err
			}
			results[i], errs[i] = r, err

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	best := -1
	for i := range results {
		if errs[i] != nil {
			continue
		}
		if best < 0 || less(results[i].F, results[best].F) {
			best = i
		}
	}
	if best < 0 {
		return Result{}, errs[0]
	}
	if opts.Logger != nil {
		opts.Logger.Debug("multi-start finished",
			"starts", len(starts), "best", best, "f", results[best].F)
	}

	return results[best], nil
}
