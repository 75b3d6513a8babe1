/*
Package maybe provides an optional-value type Maybe, with the two cases
Just(x) and Nothing. A Maybe can help with optional arguments, error
handling, and records with optional fields.

Clients will dispatch on the case of a Maybe with the Matcher mechanism:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        … // use v
    case m.Nothing():
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value x in a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing is the absent case of a Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// WithDefault returns the wrapped value, or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to the wrapped value; Nothing is passed through unchanged.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// IsNothing is true for the absent case.
func IsNothing[T any](x Maybe[T]) bool {
	switch m := x.Match(); m {
	case m.Nothing():
		return true
	}
	return false
}

// AndThen chains a Maybe-producing function onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Map applies f to the wrapped value of x, possibly changing the value's type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return Just(f(v))
	case m.Nothing():
	}
	return Nothing[S]()
}

// OneOf returns the first of xs which is not Nothing, or Nothing.
func OneOf[T any](xs ...Maybe[T]) Maybe[T] {
	for _, x := range xs {
		var v T
		switch m := x.Match(); m {
		case m.Just(&v):
			return x
		}
	}
	return Nothing[T]()
}

// --- Matching --------------------------------------------------------------

// Matcher is a helper for dispatching on the case of a Maybe.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
