// Package result holds the success-or-failure value returned by repository
// operations in place of a bare (value, error) pair.
package result

import "fmt"

// Result is either a success carrying a value or a failure carrying an error,
// never both. Build one with Ok or Fail.
type Result[T any] struct {
	value T
	err   error
	ok    bool
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// Fail panics when err is nil: a failure without a cause is a programming error.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("result: Fail called with nil error")
	}
	return Result[T]{err: err}
}

func (r Result[T]) IsSuccess() bool { return r.ok }

func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the success value. It panics on a failure.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("result: Value called on failure: %v", r.err))
	}
	return r.value
}

// Err returns the failure cause. It panics on a success.
func (r Result[T]) Err() error {
	if r.ok {
		panic("result: Err called on success")
	}
	return r.err
}

// Unwrap converts the result back to Go's usual (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	if !r.ok {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}
