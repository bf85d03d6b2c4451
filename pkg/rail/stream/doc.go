// Package stream lifts Result combinators over channels for concurrent
// fan-out/fan-in pipelines.
//
// Highlights:
// - ToChan/FromChan/FromChanFirstOr: cross between slices and channels
// - Run: drive an engine over an input channel with a worker pool
// - Map/Then/Tap: lift solo combinators with configurable parallelism
//
// Ordering across a Run stage follows completion, not input. Callers
// needing positional order should use the future package aggregators
// instead.
package stream
