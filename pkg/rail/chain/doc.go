// Package chain provides a fluent wrapper over rail.Result for
// synchronous composition with an ambient context.
//
// Highlights:
// - Start/FromValue: create a Chain
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Recover: error handler that may rejoin the success track
// - Ensure: trigger side effects on success only
// - Or/And: pick between two finished chains
// - Finally: reduce to a concrete value via handlers
//
// Type-changing steps (Then, ThenTry, Map, Finally) are package-level
// functions; same-type steps are methods.
package chain
