package future

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/rail/pkg/rail"
)

// Sequence runs ops strictly in input order, each starting only after
// the previous one has settled. The first Err stops the walk and later
// ops are never invoked. Context expiry between ops surfaces as
// Err(ctx.Err()). An empty input yields Ok of an empty slice.
func Sequence[T any](ctx context.Context, ops []Op[T]) rail.Result[[]T] {
	values := make([]T, 0, len(ops))

	for _, op := range ops {
		if !rail.IsNil(ctx.Err()) {
			return rail.Err[[]T](ctx.Err())
		}

		r := op(ctx)
		if r.IsErr() {
			return rail.ErrFrom[T, []T](r)
		}
		values = append(values, r.Value())
	}
	return rail.Ok(values)
}

// Parallel launches every op concurrently and waits for all of them;
// no op is cancelled because a sibling failed. Payloads come back in
// input-index order, never completion order, and a failure reports the
// first error by input index among everything that ran.
func Parallel[T any](ctx context.Context, ops []Op[T]) rail.Result[[]T] {
	results := make([]rail.Result[T], len(ops))

	var g errgroup.Group
	for i, op := range ops {
		i, op := i, op
		g.Go(func() error {
			results[i] = op(ctx)
			return results[i].Err()
		})
	}
	// error selection below is positional, not completion-order
	_ = g.Wait()

	values := make([]T, 0, len(ops))
	for _, r := range results {
		if r.IsErr() {
			return rail.ErrFrom[T, []T](r)
		}
		values = append(values, r.Value())
	}
	return rail.Ok(values)
}

// TraverseAsync maps fn over items sequentially, awaiting each Result
// before touching the next item. The first Err stops the walk.
func TraverseAsync[In, Out any](ctx context.Context, items []In,
	fn func(ctx context.Context, item In) rail.Result[Out]) rail.Result[[]Out] {

	values := make([]Out, 0, len(items))

	for _, item := range items {
		if !rail.IsNil(ctx.Err()) {
			return rail.Err[[]Out](ctx.Err())
		}

		r := fn(ctx, item)
		if r.IsErr() {
			return rail.ErrFrom[Out, []Out](r)
		}
		values = append(values, r.Value())
	}
	return rail.Ok(values)
}
