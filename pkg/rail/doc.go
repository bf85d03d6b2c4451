// Package rail defines the Result[T] value at the heart of the library:
// a two-variant type carrying either a success payload or an error, with
// a uuid/creation-time stamp per value.
//
// Highlights:
// - Ok/Err: construct a Result
// - ErrFrom: propagate a failure across a type transition
// - TryCatch/FromTuple/FromNullable: normalize foreign outcomes
// - Unwrap/Expect/UnwrapOr/UnwrapOrElse/Get: leave the Result domain
// - IsResult: structural guard for arbitrary values
//
// Transformations over Results live in the subpackages: solo for
// single-value combinators, mass for aggregates, future for the
// asynchronous layer, chain for fluent composition, stream for
// channel-lifted pipelines.
package rail
