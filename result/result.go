/*
Package result provides a type Result, representing the outcome of a
computation that may fail: either a value Ok(x), or an error Err(e).

Case dispatch follows the Matcher mechanism used throughout this module:

    var v int
    var err error
    switch m := r.Match(); m {
    case m.Ok(&v):
        …
    case m.Err(&err):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

import "github.com/npillmayer/persist/maybe"

// Result is the outcome of a computation that may fail.
type Result[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Result[T]
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure. err must be non-nil.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

// Of wraps the common Go return pattern (value, error) in a Result.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// WithDefault returns the wrapped value, or def for the error case.
func (r result[T]) WithDefault(def T) T {
	if r.err == nil {
		return r.value
	}
	return def
}

// Map applies f to the wrapped value; an error is passed through unchanged.
func (r result[T]) Map(f func(T) T) Result[T] {
	if r.err == nil {
		return Ok(f(r.value))
	}
	return r
}

// AndThen chains a Result-producing function onto x.
func AndThen[T, S any](f func(T) Result[S], x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return f(v)
	case m.Err(&err):
	}
	return Err[S](err)
}

// Map applies f to the wrapped value of x, possibly changing the value's type.
func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	var v T
	var err error
	switch m := x.Match(); m {
	case m.Ok(&v):
		return Ok(f(v))
	case m.Err(&err):
	}
	return Err[S](err)
}

// MapErr applies f to the error of x; the Ok case is passed through.
func MapErr[T any](f func(error) error, x Result[T]) Result[T] {
	var err error
	switch m := x.Match(); m {
	case m.Err(&err):
		return Err[T](f(err))
	}
	return x
}

// ToMaybe drops the error information of a Result.
func ToMaybe[T any](x Result[T]) maybe.Maybe[T] {
	var v T
	switch m := x.Match(); m {
	case m.Ok(&v):
		return maybe.Just(v)
	}
	return maybe.Nothing[T]()
}

// FromMaybe turns an optional value into a Result, with err standing in for
// the Nothing case.
func FromMaybe[T any](x maybe.Maybe[T], err error) Result[T] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Ok(v)
	}
	return Err[T](err)
}

// --- Matching --------------------------------------------------------------

// Matcher is a helper for dispatching on the case of a Result.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
