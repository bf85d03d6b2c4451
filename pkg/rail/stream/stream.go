package stream

import (
	"context"
	"sync"

	"github.com/ib-77/rail/pkg/rail"
	"github.com/ib-77/rail/pkg/rail/solo"
)

// ToChan lifts plain values into a channel of Ok Results. The channel
// closes after the last value, or early when ctx expires.
func ToChan[T any](ctx context.Context, values ...T) <-chan rail.Result[T] {
	in := make(chan rail.Result[T])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- rail.Ok(v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// FromChan drains a channel of Results into a slice, stopping early
// when ctx expires.
func FromChan[T any](ctx context.Context, out <-chan rail.Result[T]) []rail.Result[T] {
	res := make([]rail.Result[T], 0)

	for {
		select {
		case r, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			return res
		}
	}
}

// FromChanFirstOr returns the first Result from the channel, or the
// given default when the channel closes or ctx expires first.
func FromChanFirstOr[T any](ctx context.Context, out <-chan rail.Result[T], defaultR rail.Result[T]) rail.Result[T] {
	select {
	case r, ok := <-out:
		if !ok {
			return defaultR
		}
		return r
	case <-ctx.Done():
		return defaultR
	}
}

// Run fans the input channel out over the given number of workers, each
// applying engine, and fans the transformed Results back into one output
// channel. Output order is not input order. The output closes once the
// input is drained or ctx expires; on expiry any Result already taken
// by a worker is still delivered, as Err(ctx.Err()) when unprocessed.
func Run[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	engine func(ctx context.Context, input rail.Result[In]) rail.Result[Out],
	workers int) <-chan rail.Result[Out] {

	out := make(chan rail.Result[Out])
	wg := &sync.WaitGroup{}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go drive(ctx, in, out, engine, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func drive[In, Out any](ctx context.Context, in <-chan rail.Result[In], out chan<- rail.Result[Out],
	engine func(ctx context.Context, input rail.Result[In]) rail.Result[Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case r, ok := <-in:
			if !ok {
				return
			}

			pr := engine(ctx, r)

			select {
			case out <- pr:
			case <-ctx.Done():
				// taken but no longer deliverable as-is
				select {
				case out <- rail.Err[Out](ctx.Err()):
				default:
				}
				return
			}
		}
	}
}

// Map lifts a pure success-side transform over a channel with the given
// parallelism.
func Map[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	onOk func(ctx context.Context, r In) Out, workers int) <-chan rail.Result[Out] {

	return Run(ctx, in, func(ctx context.Context, input rail.Result[In]) rail.Result[Out] {
		return solo.Map(input, func(v In) Out {
			return onOk(ctx, v)
		})
	}, workers)
}

// Then lifts a Result-returning step over a channel with the given
// parallelism.
func Then[In, Out any](ctx context.Context, in <-chan rail.Result[In],
	onOk func(ctx context.Context, r In) rail.Result[Out], workers int) <-chan rail.Result[Out] {

	return Run(ctx, in, func(ctx context.Context, input rail.Result[In]) rail.Result[Out] {
		return solo.AndThen(input, func(v In) rail.Result[Out] {
			return onOk(ctx, v)
		})
	}, workers)
}

// Tap lifts side-effect callbacks over a channel without altering the
// Results flowing through it.
func Tap[T any](ctx context.Context, in <-chan rail.Result[T],
	onOk func(ctx context.Context, r T), onErr func(ctx context.Context, err error),
	workers int) <-chan rail.Result[T] {

	return Run(ctx, in, func(ctx context.Context, input rail.Result[T]) rail.Result[T] {
		return solo.Tap(input, func(v T) {
			if onOk != nil {
				onOk(ctx, v)
			}
		}, func(err error) {
			if onErr != nil {
				onErr(ctx, err)
			}
		})
	}, workers)
}
