package mass

import (
	"errors"

	"github.com/ib-77/rail/pkg/rail"
)

// Combine collects the payloads of an ordered list of Results. The first
// Err stops the scan and is returned with its original error; an empty
// input yields Ok of an empty slice.
func Combine[T any](results []rail.Result[T]) rail.Result[[]T] {
	values := make([]T, 0, len(results))

	for _, r := range results {
		if r.IsErr() {
			return rail.ErrFrom[T, []T](r)
		}
		values = append(values, r.Value())
	}
	return rail.Ok(values)
}

// CombineWithAllErrors scans the entire input. On success it behaves
// like Combine; on failure it reports every error found, in encounter
// order, joined with errors.Join. rail.GetErrors recovers the slice.
func CombineWithAllErrors[T any](results []rail.Result[T]) rail.Result[[]T] {
	values := make([]T, 0, len(results))
	var errs []error

	for _, r := range results {
		if r.IsErr() {
			errs = append(errs, r.Err())
			continue
		}
		values = append(values, r.Value())
	}

	if len(errs) > 0 {
		return rail.Err[[]T](errors.Join(errs...))
	}
	return rail.Ok(values)
}

// All is the homogeneous-list spelling of Combine.
func All[T any](results []rail.Result[T]) rail.Result[[]T] {
	return Combine(results)
}

// Any returns the first Ok in the list, stopping there. When every
// element fails it returns the last Err. An empty input reports
// rail.ErrEmptyInput.
func Any[T any](results []rail.Result[T]) rail.Result[T] {
	if len(results) == 0 {
		return rail.Err[T](rail.ErrEmptyInput)
	}

	for _, r := range results {
		if r.IsOk() {
			return r
		}
	}
	return results[len(results)-1]
}

// Partition splits a list of Results into its payloads and its errors,
// each preserving relative order. It is not itself a Result; the two
// slice lengths always sum to the input length.
func Partition[T any](results []rail.Result[T]) (values []T, errs []error) {
	values = make([]T, 0, len(results))
	errs = make([]error, 0)

	for _, r := range results {
		if r.IsOk() {
			values = append(values, r.Value())
		} else {
			errs = append(errs, r.Err())
		}
	}
	return values, errs
}

// Traverse maps fn over items, collecting payloads. The first Err from
// fn stops the walk; remaining items are never evaluated. An empty
// input yields Ok of an empty slice without invoking fn.
func Traverse[In, Out any](items []In, fn func(item In) rail.Result[Out]) rail.Result[[]Out] {
	values := make([]Out, 0, len(items))

	for _, item := range items {
		r := fn(item)
		if r.IsErr() {
			return rail.ErrFrom[Out, []Out](r)
		}
		values = append(values, r.Value())
	}
	return rail.Ok(values)
}
