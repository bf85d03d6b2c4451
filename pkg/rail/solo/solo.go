package solo

import (
	"fmt"

	"github.com/ib-77/rail/pkg/rail"
)

// Map applies onOk to the payload of an Ok, producing a new Ok. An Err
// passes through untouched and onOk is never invoked for it.
func Map[In, Out any](input rail.Result[In], onOk func(r In) Out) rail.Result[Out] {
	if input.IsOk() {
		return rail.Ok(onOk(input.Value()))
	}
	return rail.ErrFrom[In, Out](input)
}

// MapErr transforms the error payload of an Err; an Ok passes through.
func MapErr[T any](input rail.Result[T], onErr func(err error) error) rail.Result[T] {
	if input.IsOk() {
		return input
	}
	return rail.Err[T](onErr(input.Err()))
}

// AndThen is the monadic bind: for an Ok it returns onOk(value) as-is,
// without re-wrapping; for an Err it short-circuits and onOk is never
// invoked.
func AndThen[In, Out any](input rail.Result[In], onOk func(r In) rail.Result[Out]) rail.Result[Out] {
	if input.IsOk() {
		return onOk(input.Value())
	}
	return rail.ErrFrom[In, Out](input)
}

// OrElse is the error-side bind: for an Err it returns onErr(err); an Ok
// passes through unchanged. A panic inside onErr propagates untouched;
// rail.TryCatch is the designated panic boundary.
func OrElse[T any](input rail.Result[T], onErr func(err error) rail.Result[T]) rail.Result[T] {
	if input.IsOk() {
		return input
	}
	return onErr(input.Err())
}

// Match collapses a Result through exactly one of the two handlers.
func Match[In, Out any](input rail.Result[In],
	onOk func(r In) Out,
	onErr func(err error) Out) Out {

	if input.IsOk() {
		return onOk(input.Value())
	}
	return onErr(input.Err())
}

// Tap invokes the matching side-effect callback, when supplied, and
// returns the input unchanged.
func Tap[T any](input rail.Result[T], onOk func(r T), onErr func(err error)) rail.Result[T] {
	if input.IsOk() {
		if onOk != nil {
			onOk(input.Value())
		}
	} else {
		if onErr != nil {
			onErr(input.Err())
		}
	}
	return input
}

// Filter keeps an Ok whose payload satisfies predicate and demotes one
// that does not to Err(err). An Err passes through with its original error.
func Filter[T any](input rail.Result[T], predicate func(r T) bool, err error) rail.Result[T] {
	if input.IsOk() && !predicate(input.Value()) {
		return rail.Err[T](err)
	}
	return input
}

// Flatten collapses one level of nesting: the outer error wins, then the
// inner Result is returned as-is.
func Flatten[T any](nested rail.Result[rail.Result[T]]) rail.Result[T] {
	if nested.IsErr() {
		return rail.ErrFrom[rail.Result[T], T](nested)
	}
	return nested.Value()
}

// SwappedValueError carries an Ok payload across the error side of a
// swapped Result so Unswap can restore it.
type SwappedValueError[T any] struct {
	Value T
}

func (e *SwappedValueError[T]) Error() string {
	return fmt.Sprintf("rail: swapped ok value: %v", e.Value)
}

// Swap exchanges the sides of a Result: the error payload of an Err
// becomes an Ok value, and the payload of an Ok moves to the error side
// wrapped in *SwappedValueError. Unswap is its inverse:
// Unswap(Swap(r)) holds the same payload as r for either variant.
func Swap[T any](input rail.Result[T]) rail.Result[error] {
	if input.IsOk() {
		return rail.Err[error](&SwappedValueError[T]{Value: input.Value()})
	}
	return rail.Ok(input.Err())
}

// Unswap undoes Swap. An Ok carrying an error goes back to the error
// side; an Err carrying *SwappedValueError[T] becomes Ok of its payload.
// Any other Err passes through unchanged.
func Unswap[T any](swapped rail.Result[error]) rail.Result[T] {
	if swapped.IsOk() {
		return rail.Err[T](swapped.Value())
	}
	if sv, ok := swapped.Err().(*SwappedValueError[T]); ok {
		return rail.Ok(sv.Value)
	}
	return rail.ErrFrom[error, T](swapped)
}

// GetOrElse reduces a Result to a plain value, computing the fallback
// from the error. Free-function spelling of UnwrapOrElse.
func GetOrElse[T any](input rail.Result[T], onErr func(err error) T) T {
	return input.UnwrapOrElse(onErr)
}

// UnwrapOrPanic returns the payload of an Ok and panics on an Err,
// optionally mapping the error first. It is the boundary for call sites
// where a failure must re-enter panic-based control flow.
func UnwrapOrPanic[T any](input rail.Result[T], onErr func(err error) error) T {
	if input.IsOk() {
		return input.Value()
	}
	if onErr != nil {
		panic(onErr(input.Err()))
	}
	panic(input.Err())
}
