/*
Package either provides a two-case disjunction type Either, holding a value
which is one of two cases, Left or Right. By convention Right carries the
"expected" value and Left the deviant case, but nothing in this package
depends on that reading.

Case dispatch follows the Matcher mechanism used throughout this module:

    var l int
    var r string
    switch m := e.Match(); m {
    case m.Left(&l):
        …
    case m.Right(&r):
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package either

// Either holds a value of either type L or type R.
type Either[L, R any] interface {
	Match() Matcher[L, R]
	IsLeft() bool
}

type either[L, R any] struct {
	left  L
	right R
	tag   bool // true = right
}

// Left wraps a value in the left case.
func Left[L, R any](l L) Either[L, R] {
	return either[L, R]{left: l}
}

// Right wraps a value in the right case.
func Right[L, R any](r R) Either[L, R] {
	return either[L, R]{right: r, tag: true}
}

func (e either[L, R]) Match() Matcher[L, R] {
	return matcher[L, R]{e: e}
}

// IsLeft is true for the left case.
func (e either[L, R]) IsLeft() bool {
	return !e.tag
}

// MapLeft applies f to the left case; the right case is passed through.
func MapLeft[L, R, T any](f func(L) T, e Either[L, R]) Either[T, R] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return Left[T, R](f(l))
	case m.Right(&r):
	}
	return Right[T, R](r)
}

// MapRight applies f to the right case; the left case is passed through.
func MapRight[L, R, T any](f func(R) T, e Either[L, R]) Either[L, T] {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Right(&r):
		return Right[L, T](f(r))
	case m.Left(&l):
	}
	return Left[L, T](l)
}

// Fold collapses an Either into a single value, applying onLeft or onRight
// depending on the case.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	var l L
	var r R
	switch m := e.Match(); m {
	case m.Left(&l):
		return onLeft(l)
	case m.Right(&r):
	}
	return onRight(r)
}

// --- Matching --------------------------------------------------------------

// Matcher is a helper for dispatching on the case of an Either.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

type matcher[L, R any] struct {
	e either[L, R]
}

func (mm matcher[L, R]) Left(l *L) Matcher[L, R] {
	if !mm.e.tag {
		*l = mm.e.left
		return mm
	}
	return nil
}

func (mm matcher[L, R]) Right(r *R) Matcher[L, R] {
	if mm.e.tag {
		*r = mm.e.right
		return mm
	}
	return nil
}
