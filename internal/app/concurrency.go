package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MapLimit calls fn on every input with at most limit calls in flight and
// returns the outputs in input order. The first error cancels the calls
// still running and is returned unwrapped.
func MapLimit[In, Out any](ctx context.Context, limit int, inputs []In, fn func(context.Context, In) (Out, error)) ([]Out, error) {
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	outputs := make([]Out, len(inputs))
	for i, in := range inputs {
		g.Go(func() (err error) {
			outputs[i], err = fn(ctx, in)
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outputs, nil
}
