package rail

import "fmt"

// TryCatch runs fn and normalizes its outcome into a Result. A returned
// error becomes an Err; a panic is recovered and becomes an Err as well,
// mapped through onPanic when one is supplied. Nothing escapes.
func TryCatch[T any](fn func() (T, error), onPanic func(recovered any) error) (res Result[T]) {
	defer func() {
		if rec := recover(); rec != nil {
			res = Err[T](recoveredError(rec, onPanic))
		}
	}()

	out, err := fn()
	if err != nil {
		return Err[T](err)
	}
	return Ok(out)
}

func recoveredError(rec any, onPanic func(recovered any) error) error {
	if onPanic != nil {
		return onPanic(rec)
	}
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("rail: recovered panic: %v", rec)
}

// FromTuple converts an idiomatic (value, error) pair into a Result.
// A non-nil error wins even when a value is present.
func FromTuple[T any](value T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(value)
}

// FromNullable returns Ok(value) unless value is nil (an untyped nil or
// a nil pointer). Zero values such as 0, false and "" are valid Ok
// payloads; only nilness triggers the given error.
func FromNullable[T any](value T, err error) Result[T] {
	if IsNil(value) {
		return Err[T](err)
	}
	return Ok(value)
}

// IsResult reports whether v is a Result of any payload type. It is a
// structural check and never panics, whatever v is.
func IsResult(v any) bool {
	_, ok := v.(Tagged)
	return ok
}
