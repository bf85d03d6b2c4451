package chain

import (
	"context"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/solo"
)

// Chain wraps a rail.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rail.Result[T]
}

// Start creates a new chain from a rail.Result
func Start[T any](ctx context.Context, result rail.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: rail.Ok(value),
	}
}

// Result returns the underlying rail.Result
func (c *Chain[T]) Result() rail.Result[T] {
	return c.result
}

// Then chains a function that returns rail.Result[U]
func Then[T, U any](c *Chain[T], onOk func(context.Context, T) rail.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: solo.AndThen(c.result, func(v T) rail.Result[U] {
			return onOk(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c *Chain[T], tryOnOk func(context.Context, T) (U, error)) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: solo.AndThen(c.result, func(v T) rail.Result[U] {
			return rail.FromTuple(tryOnOk(c.ctx, v))
		}),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onOk func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx: c.ctx,
		result: solo.Map(c.result, func(v T) U {
			return onOk(c.ctx, v)
		}),
	}
}

// Recover chains an error handler that may put the chain back on the
// success track
func (c *Chain[T]) Recover(onErr func(context.Context, error) rail.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.OrElse(c.result, func(err error) rail.Result[T] {
			return onErr(c.ctx, err)
		}),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onOk func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tap(c.result, func(v T) {
			onOk(c.ctx, v)
		}, nil),
	}
}

// Or returns the first successful chain among c and alternative; when
// both fail, c wins.
func (c *Chain[T]) Or(alternative *Chain[T]) *Chain[T] {
	if c.result.IsOk() {
		return c
	}
	if alternative.result.IsOk() {
		return alternative
	}
	return c
}

// And returns the first failed chain among c and required; when both
// succeed, required's value wins.
func (c *Chain[T]) And(required *Chain[T]) *Chain[T] {
	if c.result.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain into a final value using solo.Match
func Finally[T, U any](c *Chain[T], onOk func(context.Context, T) U, onErr func(context.Context, error) U) U {
	return solo.Match(c.result, func(v T) U {
		return onOk(c.ctx, v)
	}, func(err error) U {
		return onErr(c.ctx, err)
	})
}
