package future

import (
	"context"
	"sync"

	"github.com/ib-77/rail/pkg/rail"
)

// Op is an asynchronous producer of a Result. It is the unit the async
// aggregators operate over; launching one is always explicit.
type Op[T any] func(ctx context.Context) rail.Result[T]

// Future is a one-shot promise of a Result. It settles exactly once;
// later settles are ignored. Await never blocks past its context.
type Future[T any] struct {
	done   chan struct{}
	settle sync.Once
	res    rail.Result[T]
}

func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Settle fixes the outcome of the future. Only the first call wins.
func (f *Future[T]) Settle(r rail.Result[T]) {
	f.settle.Do(func() {
		f.res = r
		close(f.done)
	})
}

// Done is closed once the future has settled.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future settles or ctx expires. Expiry surfaces
// as Err(ctx.Err()); the underlying operation keeps running.
func (f *Future[T]) Await(ctx context.Context) rail.Result[T] {
	select {
	case <-f.done:
		return f.res
	case <-ctx.Done():
		return rail.Err[T](ctx.Err())
	}
}

// Go launches op on its own goroutine and returns the future carrying
// its eventual Result.
func Go[T any](ctx context.Context, op Op[T]) *Future[T] {
	f := New[T]()

	go func() {
		f.Settle(op(ctx))
	}()

	return f
}

// ToFuture converts a settled Result into an already-settled future: an
// Ok resolves it, an Err rejects it, optionally re-mapped through onErr.
func ToFuture[T any](input rail.Result[T], onErr func(err error) error) *Future[T] {
	f := New[T]()

	if input.IsErr() && onErr != nil {
		f.Settle(rail.Err[T](onErr(input.Err())))
	} else {
		f.Settle(input)
	}
	return f
}

// Await resolves a future back into the Result domain, optionally
// re-mapping a failure through onErr. The free-function counterpart of
// (*Future).Await.
func Await[T any](ctx context.Context, f *Future[T], onErr func(err error) error) rail.Result[T] {
	res := f.Await(ctx)
	if res.IsErr() && onErr != nil {
		return rail.Err[T](onErr(res.Err()))
	}
	return res
}

// TryCatchAsync runs fn on its own goroutine and settles a future with
// its normalized outcome: returned errors and recovered panics both
// become an Err, mapped through onPanic for panics when supplied. The
// rejection never propagates as a panic.
func TryCatchAsync[T any](ctx context.Context, fn func(ctx context.Context) (T, error),
	onPanic func(recovered any) error) *Future[T] {

	f := New[T]()

	go func() {
		f.Settle(rail.TryCatch(func() (T, error) {
			return fn(ctx)
		}, onPanic))
	}()

	return f
}
