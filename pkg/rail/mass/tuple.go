package mass

import "github.com/ib-77/rail/pkg/rail"

// Tuple2 and Tuple3 carry the payloads of fixed-arity heterogeneous
// combinations. Go has no variadic type parameters, so combining
// Results of different payload types is offered at fixed arities.
type Tuple2[A, B any] struct {
	First  A
	Second B
}

type Tuple3[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Combine2 pairs two Results of different payload types. The first Err,
// in positional order, wins.
func Combine2[A, B any](a rail.Result[A], b rail.Result[B]) rail.Result[Tuple2[A, B]] {
	if a.IsErr() {
		return rail.ErrFrom[A, Tuple2[A, B]](a)
	}
	if b.IsErr() {
		return rail.ErrFrom[B, Tuple2[A, B]](b)
	}
	return rail.Ok(Tuple2[A, B]{First: a.Value(), Second: b.Value()})
}

// Combine3 is Combine2 at arity three.
func Combine3[A, B, C any](a rail.Result[A], b rail.Result[B], c rail.Result[C]) rail.Result[Tuple3[A, B, C]] {
	if a.IsErr() {
		return rail.ErrFrom[A, Tuple3[A, B, C]](a)
	}
	if b.IsErr() {
		return rail.ErrFrom[B, Tuple3[A, B, C]](b)
	}
	if c.IsErr() {
		return rail.ErrFrom[C, Tuple3[A, B, C]](c)
	}
	return rail.Ok(Tuple3[A, B, C]{First: a.Value(), Second: b.Value(), Third: c.Value()})
}
