// Package future provides the asynchronous layer over rail.Result:
// a one-shot Future[T] promise and aggregators over Result-producing
// operations.
//
// Highlights:
// - Op: func(ctx) Result[T], the unit of asynchronous work
// - Future/Go/Settle/Await: settle-once promises
// - ToFuture/Await: cross between the Result and future domains
// - TryCatchAsync: run a fallible function off-goroutine, capture
//   errors and panics as a rejection
// - Sequence: strict input order, short-circuit on the first error
// - Parallel: launch everything, wait for everything, report payloads
//   in input order and failures by input index
// - TraverseAsync: sequential traversal of plain items
//
// The package defines no cancellation of its own: a launched operation
// runs to completion, and context expiry only affects who is still
// waiting on it.
package future
