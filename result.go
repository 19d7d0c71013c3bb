package textseg

import "fmt"

// Result carries either a value or an error across the handle layer,
// mirroring the tagged-union results a foreign binding returns from
// fallible constructors. Exactly one variant is valid; accessing the
// wrong one is a contract violation and panics.
//
// Go callers of the core API should prefer the (T, error) constructors
// and reserve Result for handle-based call sites.
type Result[T any] struct {
	ok   T
	err  error
	isOK bool
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{ok: v, isOK: true}
}

// Fail wraps a construction error. err must be non-nil.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("textseg: Fail called with nil error")
	}
	return Result[T]{err: err}
}

// IsOK reports which variant is valid. Callers must check it before
// Ok or Err.
func (r Result[T]) IsOK() bool {
	return r.isOK
}

// Ok returns the success value. It panics if the Result holds an
// error.
func (r Result[T]) Ok() T {
	if !r.isOK {
		panic(fmt.Sprintf("textseg: Ok called on error result: %v", r.err))
	}
	return r.ok
}

// Err returns the error. It panics if the Result holds a value.
func (r Result[T]) Err() error {
	if r.isOK {
		panic("textseg: Err called on successful result")
	}
	return r.err
}

// Code returns the numeric error taxonomy value for the error variant,
// or ErrorNone for the success variant.
func (r Result[T]) Code() ErrorCode {
	if r.isOK {
		return ErrorNone
	}
	return CodeOf(r.err)
}
