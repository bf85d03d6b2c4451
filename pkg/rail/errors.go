package rail

import "errors"

// ErrEmptyInput is reported by aggregators that have no defined value
// for an empty input, such as mass.Any. Branch on it with errors.Is.
var ErrEmptyInput = errors.New("rail: empty input")

// UnwrapError is the panic payload of Unwrap and Expect on an Err.
// It wraps the original error so recover sites can still branch on it.
type UnwrapError struct {
	msg string
	err error
}

func (e *UnwrapError) Error() string {
	return e.msg
}

func (e *UnwrapError) Unwrap() error {
	return e.err
}
