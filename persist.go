/*
Package persist is the root of a small library of persistent (immutable,
structurally shared) collection types. The collections live in sub-packages:

▪︎ persistent/cons:    singly-linked immutable lists

▪︎ persistent/ordered: sorted sets and key/value maps, backed by a balanced tree

Algebraic helper types (maybe, either, result) live in their own packages as well.
This root package only carries a handful of function combinators and a generic
pair type shared by the sub-packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persist

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Identity returns its argument unchanged.
func Identity[T any](a T) T {
	return a
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Curry turns a two-argument function into a chain of single-argument functions.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Flip swaps the arguments of a two-argument function.
func Flip[A, B, C any](f func(A, B) C) func(B, A) C {
	return func(b B, a A) C {
		return f(a, b)
	}
}

// --- Pair ------------------------------------------------------------------

// Pair is a generic 2-tuple.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P is a shorthand constructor for a Pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose splits a pair into its two components.
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}
