// Package solo contains single-value, synchronous combinators over
// rail.Result[T]. Type-changing operators are package-level functions
// because Go methods cannot introduce new type parameters.
//
// Highlights:
// - Map/MapErr: transform one side, pass the other through
// - AndThen/OrElse: monadic bind on the success/error side
// - Match: collapse through exactly one of two handlers
// - Tap: side effects without altering the value
// - Filter/Flatten/Swap/Unswap: shape adjustments
// - GetOrElse/UnwrapOrPanic: leave the Result domain
//
// Functor and monad laws hold: Map(r, id) keeps r's payload,
// Map(Map(r, f), g) equals Map(r, func(x) { return g(f(x)) }),
// AndThen(Ok(a), f) equals f(a)
// and AndThen(r, Ok) keeps r. MapErr and OrElse obey the mirror laws.
package solo
