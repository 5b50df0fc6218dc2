package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Both runs fn1 and fn2 concurrently and returns both results, or the first
// error. The context passed to each function is canceled when the other fails.
//
// Example:
//
//	qs, catalog, err := Both(ctx, api.List, api.Catalog)
func Both[T1, T2 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
) (T1, T2, error) {
	var (
		r1 T1
		r2 T2
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		r1, err = fn1(ctx)

		return err
	})

	g.Go(func() error {
		var err error
		r2, err = fn2(ctx)

		return err
	})

	if err := g.Wait(); err != nil {
		var (
			zero1 T1
			zero2 T2
		)

		return zero1, zero2, err
	}

	return r1, r2, nil
}

// FanOut feeds items to a fixed pool of workers. It stops at the first error.
func FanOut[T any](ctx context.Context, workers int, items []T, fn func(context.Context, T) error) error {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	queue := make(chan T)

	for range workers {
		g.Go(func() error {
			for item := range queue {
				if err := fn(ctx, item); err != nil {
					return err
				}
			}

			return nil
		})
	}

	g.Go(func() error {
		defer close(queue)

		for _, item := range items {
			select {
			case queue <- item:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("fan out: %w", err)
	}

	return nil
}
