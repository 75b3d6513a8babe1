package cons

import (
	"fmt"
	"strings"

	"github.com/npillmayer/persist/maybe"
)

// List is an immutable singly-linked sequence. The zero value is the empty
// list and ready to use:
//
//     l := cons.List[int]{}.Prepended(1)
//
// Every operation on a List leaves the receiver unchanged; "modifications"
// return a new incarnation of the list, sharing the untouched suffix with
// the original.
type List[T any] struct {
	head   *cell[T]
	length int
}

// cell is one link of a list chain. A cell is never mutated once it is part
// of an exported List (see Buffer for the single exception during building).
type cell[T any] struct {
	elem T
	rest *cell[T]
}

// --- Construction ----------------------------------------------------------

// Empty returns the empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Of constructs a list holding the given elements, in order.
func Of[T any](elems ...T) List[T] {
	b := NewBuffer[T]()
	for _, e := range elems {
		b.Append(e)
	}
	return b.List()
}

// FromSlice constructs a list holding the elements of a slice, in order.
func FromSlice[T any](elems []T) List[T] {
	return Of(elems...)
}

// Cons prepends an element to a list.
func Cons[T any](x T, l List[T]) List[T] {
	return List[T]{head: &cell[T]{elem: x, rest: l.head}, length: l.length + 1}
}

// Range returns the list of integers from `from` (inclusive) up to `until`
// (exclusive), with step 1.
func Range(from, until int) List[int] {
	return RangeBy(from, until, 1)
}

// RangeBy returns the list of integers starting at `from` and advancing by
// `step` while staying short of `until` (exclusive bound; for a negative
// step, while staying above `until`). A zero step is a usage error.
func RangeBy(from, until, step int) List[int] {
	if step == 0 {
		failOp("RangeBy", "step must not be 0")
	}
	b := NewBuffer[int]()
	if step > 0 {
		for i := from; i < until; i += step {
			b.Append(i)
		}
	} else {
		for i := from; i > until; i += step {
			b.Append(i)
		}
	}
	return b.List()
}

// --- Access ----------------------------------------------------------------

// IsEmpty is true for the empty list.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Len returns the number of elements. O(1).
func (l List[T]) Len() int {
	return l.length
}

// Head returns the first element of a non-empty list. Calling Head on the
// empty list is a usage error and panics with a ListError; check IsEmpty
// first, or use First.
func (l List[T]) Head() T {
	if l.head == nil {
		failOp("Head", "empty list")
	}
	return l.head.elem
}

// Tail returns the list without its first element. Panics with a ListError
// on the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		failOp("Tail", "empty list")
	}
	return List[T]{head: l.head.rest, length: l.length - 1}
}

// Last returns the final element of a non-empty list. O(n). Panics with a
// ListError on the empty list.
func (l List[T]) Last() T {
	if l.head == nil {
		failOp("Last", "empty list")
	}
	c := l.head
	for c.rest != nil {
		c = c.rest
	}
	return c.elem
}

// Init returns the list without its final element. O(n). Panics with a
// ListError on the empty list.
func (l List[T]) Init() List[T] {
	if l.head == nil {
		failOp("Init", "empty list")
	}
	return l.Take(l.length - 1)
}

// At returns the element at position i, 0 ≤ i < Len. O(n). An index out of
// range is a usage error and panics with a ListError; use Get for a total
// variant.
func (l List[T]) At(i int) T {
	if i < 0 || i >= l.length {
		failOp("At", "index %d out of range [0, %d)", i, l.length)
	}
	c := l.head
	for ; i > 0; i-- {
		c = c.rest
	}
	return c.elem
}

// First returns the first element, or Nothing for the empty list.
func (l List[T]) First() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// Get returns the element at position i, or Nothing if i is out of range.
func (l List[T]) Get(i int) maybe.Maybe[T] {
	if i < 0 || i >= l.length {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.At(i))
}

// Find returns the first element satisfying pred, or Nothing.
func (l List[T]) Find(pred func(T) bool) maybe.Maybe[T] {
	for c := l.head; c != nil; c = c.rest {
		if pred(c.elem) {
			return maybe.Just(c.elem)
		}
	}
	return maybe.Nothing[T]()
}

// Foreach applies f to every element, front to back.
func (l List[T]) Foreach(f func(T)) {
	for c := l.head; c != nil; c = c.rest {
		f(c.elem)
	}
}

// --- Combination -----------------------------------------------------------

// Prepended returns a list with x in front of the receiver. O(1).
func (l List[T]) Prepended(x T) List[T] {
	return Cons(x, l)
}

// Append concatenates two lists. The receiver's elements are copied into the
// prefix of the result; the argument's chain is spliced onto the prefix in
// O(1) and shared with the result, unchanged.
func (l List[T]) Append(other List[T]) List[T] {
	if l.head == nil {
		return other
	}
	if other.head == nil {
		return l
	}
	tracer().Debugf("append: copying %d-element prefix, sharing %d-element suffix", l.length, other.length)
	b := NewBuffer[T]()
	for c := l.head; c != nil; c = c.rest {
		b.Append(c.elem)
	}
	return b.splice(other)
}

// --- Equality --------------------------------------------------------------

// Equal compares two lists element-wise with eq.
func (l List[T]) Equal(other List[T], eq func(a, b T) bool) bool {
	if l.length != other.length {
		return false
	}
	a, b := l.head, other.head
	for a != nil {
		if !eq(a.elem, b.elem) {
			return false
		}
		a, b = a.rest, b.rest
	}
	return true
}

// Eq compares two lists of comparable elements element-wise.
func Eq[T comparable](a, b List[T]) bool {
	return a.Equal(b, func(x, y T) bool { return x == y })
}

// Slice returns the elements of the list as a fresh slice.
func (l List[T]) Slice() []T {
	out := make([]T, 0, l.length)
	for c := l.head; c != nil; c = c.rest {
		out = append(out, c.elem)
	}
	return out
}

// --- Rendering -------------------------------------------------------------

// String renders a list as "<[a, b, c]>".
func (l List[T]) String() string {
	return l.MkString(", ", "<[", "]>")
}

// MkString renders all elements, delimited by sep and enclosed in prefix
// and postfix.
func (l List[T]) MkString(sep, prefix, postfix string) string {
	return l.MkStringN(sep, prefix, postfix, -1, "…")
}

// MkStringN renders at most limit elements (negative = all), appending the
// truncation marker if elements have been dropped.
func (l List[T]) MkStringN(sep, prefix, postfix string, limit int, marker string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	n := 0
	for c := l.head; c != nil; c = c.rest {
		if limit >= 0 && n >= limit {
			if n > 0 {
				sb.WriteString(sep)
			}
			sb.WriteString(marker)
			break
		}
		if n > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprintf(&sb, "%v", c.elem)
		n++
	}
	sb.WriteString(postfix)
	return sb.String()
}

// --- Errors ----------------------------------------------------------------

// ListError is the panic value for usage errors on lists and buffers:
// accessing elements of the empty list, indexing out of range, illegal
// arguments. These signal programmer errors; callers are expected to check
// preconditions (e.g. via IsEmpty) or to use the Maybe-returning variants.
type ListError struct {
	Op     string
	Reason string
}

func (e ListError) Error() string {
	return "cons." + e.Op + ": " + e.Reason
}

func failOp(op, reason string, args ...interface{}) {
	panic(ListError{Op: op, Reason: fmt.Sprintf(reason, args...)})
}
