package rail

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant value: either an Ok carrying a success payload
// of type T, or an Err carrying an error. The variant is fixed at
// construction and never changes; combinators always build new Results.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isOk      bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{
		value:     value,
		err:       nil,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// ErrFrom re-types a failed Result, keeping its id, creation time and
// error payload. Combinators use it to pass an Err through a type
// transition untouched.
func ErrFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isOk:      false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the success payload. For an Err it is the zero value of T.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the error payload, nil for an Ok.
func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsErr() bool {
	return !r.isOk
}

// CreatedAt time creation (UTC)
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Get exposes the Result as an idiomatic (value, error) pair.
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

// Unwrap returns the success payload, panicking with *UnwrapError
// when called on an Err. It is the deliberate escape hatch out of the
// Result domain; prefer UnwrapOr/UnwrapOrElse on expected failure paths.
func (r Result[T]) Unwrap() T {
	if r.isOk {
		return r.value
	}
	panic(&UnwrapError{
		msg: fmt.Sprintf("rail: called Unwrap on an Err result: %v", r.err),
		err: r.err,
	})
}

// Expect behaves like Unwrap with a caller-supplied failure message.
func (r Result[T]) Expect(msg string) T {
	if r.isOk {
		return r.value
	}
	panic(&UnwrapError{
		msg: fmt.Sprintf("%s: %v", msg, r.err),
		err: r.err,
	})
}

// UnwrapOr returns the success payload or the given default. Never panics.
func (r Result[T]) UnwrapOr(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

// UnwrapOrElse returns the success payload or the value computed from
// the error. Never panics.
func (r Result[T]) UnwrapOrElse(onErr func(err error) T) T {
	if r.isOk {
		return r.value
	}
	return onErr(r.err)
}
