package rail

import "time"

type ResultProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	// Err returns the error if operation failed
	Err() error
	// IsOk returns true if the operation was successful
	IsOk() bool
}

// Tagged is the non-generic discriminant view of a Result. Every
// Result[T] satisfies it regardless of T; IsResult relies on that.
type Tagged interface {
	IsOk() bool
	IsErr() bool
}
