// Package mass implements aggregate combinators over collections of
// rail.Result values.
//
// Highlights:
// - Combine/All: collect payloads, stop at the first error
// - CombineWithAllErrors: scan everything, join every error in order
// - Any: first success, or the last error when all fail
// - Partition: split into payloads and errors, order preserved
// - Traverse: map a fallible function, stop at the first error
// - Combine2/Combine3: fixed-arity heterogeneous combination
//
// Empty inputs: Combine/All/Traverse return Ok of an empty slice;
// Any returns Err(rail.ErrEmptyInput).
package mass
