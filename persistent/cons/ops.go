package cons

import (
	"github.com/npillmayer/persist"
)

// --- Transformation --------------------------------------------------------

// Map applies f to every element, preserving order. For a mapping to a
// different element type, use the package-level Map.
func (l List[T]) Map(f func(T) T) List[T] {
	b := NewBuffer[T]()
	for c := l.head; c != nil; c = c.rest {
		b.Append(f(c.elem))
	}
	return b.List()
}

// Map applies f to every element of l, producing a list of a possibly
// different element type.
func Map[T, S any](f func(T) S, l List[T]) List[S] {
	b := NewBuffer[S]()
	l.Foreach(func(x T) {
		b.Append(f(x))
	})
	return b.List()
}

// Filter keeps the elements satisfying pred, preserving order.
func (l List[T]) Filter(pred func(T) bool) List[T] {
	b := NewBuffer[T]()
	for c := l.head; c != nil; c = c.rest {
		if pred(c.elem) {
			b.Append(c.elem)
		}
	}
	return b.List()
}

// FilterNot keeps the elements not satisfying pred.
func (l List[T]) FilterNot(pred func(T) bool) List[T] {
	return l.Filter(func(x T) bool { return !pred(x) })
}

// Take returns the first n elements (all of them if n exceeds the length).
func (l List[T]) Take(n int) List[T] {
	if n >= l.length {
		return l
	}
	b := NewBuffer[T]()
	for c := l.head; c != nil && n > 0; c, n = c.rest, n-1 {
		b.Append(c.elem)
	}
	return b.List()
}

// Drop returns the list without its first n elements. O(n), no allocation:
// the remaining suffix is shared.
func (l List[T]) Drop(n int) List[T] {
	if n <= 0 {
		return l
	}
	if n >= l.length {
		return List[T]{}
	}
	c := l.head
	for i := n; i > 0; i-- {
		c = c.rest
	}
	return List[T]{head: c, length: l.length - n}
}

// TakeWhile returns the longest prefix whose elements satisfy pred.
func (l List[T]) TakeWhile(pred func(T) bool) List[T] {
	b := NewBuffer[T]()
	for c := l.head; c != nil && pred(c.elem); c = c.rest {
		b.Append(c.elem)
	}
	return b.List()
}

// DropWhile removes the longest prefix whose elements satisfy pred; the
// remaining suffix is shared.
func (l List[T]) DropWhile(pred func(T) bool) List[T] {
	c, n := l.head, l.length
	for c != nil && pred(c.elem) {
		c, n = c.rest, n-1
	}
	return List[T]{head: c, length: n}
}

// Reverse returns the list in reverse order.
func (l List[T]) Reverse() List[T] {
	b := NewBuffer[T]()
	for c := l.head; c != nil; c = c.rest {
		b.Prepend(c.elem)
	}
	return b.List()
}

// --- Folding ---------------------------------------------------------------

// FoldLeft combines the elements front to back, starting from seed. The
// fold is iterative and safe for long lists. For an accumulator of a
// different type, use the package-level FoldLeft.
func (l List[T]) FoldLeft(seed T, combine func(acc, x T) T) T {
	acc := seed
	for c := l.head; c != nil; c = c.rest {
		acc = combine(acc, c.elem)
	}
	return acc
}

// FoldLeft combines the elements of l front to back, starting from seed.
func FoldLeft[T, A any](l List[T], seed A, combine func(acc A, x T) A) A {
	acc := seed
	l.Foreach(func(x T) {
		acc = combine(acc, x)
	})
	return acc
}

// FoldRight combines the elements back to front, starting from seed. It is
// implemented as Reverse().FoldLeft(…) to keep the stack flat regardless of
// list length.
func (l List[T]) FoldRight(seed T, combine func(x, acc T) T) T {
	return l.Reverse().FoldLeft(seed, func(acc, x T) T { return combine(x, acc) })
}

// FoldRight combines the elements of l back to front, starting from seed.
func FoldRight[T, A any](l List[T], seed A, combine func(x T, acc A) A) A {
	return FoldLeft(l.Reverse(), seed, func(acc A, x T) A { return combine(x, acc) })
}

// ReduceLeft folds a non-empty list front to back, seeded with its first
// element. Panics with a ListError on the empty list.
func (l List[T]) ReduceLeft(combine func(acc, x T) T) T {
	if l.head == nil {
		failOp("ReduceLeft", "empty list")
	}
	return l.Tail().FoldLeft(l.Head(), combine)
}

// ReduceRight folds a non-empty list back to front, seeded with its last
// element. Panics with a ListError on the empty list.
func (l List[T]) ReduceRight(combine func(x, acc T) T) T {
	if l.head == nil {
		failOp("ReduceRight", "empty list")
	}
	r := l.Reverse()
	return r.Tail().FoldLeft(r.Head(), func(acc, x T) T { return combine(x, acc) })
}

// --- Predicates ------------------------------------------------------------

// Exists is true if any element satisfies pred.
func (l List[T]) Exists(pred func(T) bool) bool {
	for c := l.head; c != nil; c = c.rest {
		if pred(c.elem) {
			return true
		}
	}
	return false
}

// Forall is true if every element satisfies pred (vacuously true for the
// empty list).
func (l List[T]) Forall(pred func(T) bool) bool {
	for c := l.head; c != nil; c = c.rest {
		if !pred(c.elem) {
			return false
		}
	}
	return true
}

// Contains is true if x occurs in l.
func Contains[T comparable](l List[T], x T) bool {
	return l.Exists(func(y T) bool { return y == x })
}

// --- Splitting -------------------------------------------------------------

// Partition splits the list into the elements satisfying pred and those
// that don't, each in original order.
func (l List[T]) Partition(pred func(T) bool) (List[T], List[T]) {
	yes, no := NewBuffer[T](), NewBuffer[T]()
	for c := l.head; c != nil; c = c.rest {
		if pred(c.elem) {
			yes.Append(c.elem)
		} else {
			no.Append(c.elem)
		}
	}
	return yes.List(), no.List()
}

// Span splits the list into the longest prefix satisfying pred and the
// remaining suffix (which is shared).
func (l List[T]) Span(pred func(T) bool) (List[T], List[T]) {
	return l.TakeWhile(pred), l.DropWhile(pred)
}

// --- Zipping ---------------------------------------------------------------

// Zip pairs up the elements of two lists; the result has the length of the
// shorter one.
func Zip[A, B any](as List[A], bs List[B]) List[persist.Pair[A, B]] {
	b := NewBuffer[persist.Pair[A, B]]()
	ca, cb := as.head, bs.head
	for ca != nil && cb != nil {
		b.Append(persist.P(ca.elem, cb.elem))
		ca, cb = ca.rest, cb.rest
	}
	return b.List()
}

// ZipWithIndex pairs every element with its position.
func ZipWithIndex[T any](l List[T]) List[persist.Pair[T, int]] {
	b := NewBuffer[persist.Pair[T, int]]()
	i := 0
	l.Foreach(func(x T) {
		b.Append(persist.P(x, i))
		i++
	})
	return b.List()
}

// Unzip splits a list of pairs into the list of left and the list of right
// components.
func Unzip[A, B any](l List[persist.Pair[A, B]]) (List[A], List[B]) {
	as, bs := NewBuffer[A](), NewBuffer[B]()
	l.Foreach(func(p persist.Pair[A, B]) {
		as.Append(p.Left)
		bs.Append(p.Right)
	})
	return as.List(), bs.List()
}

// --- Sorting ---------------------------------------------------------------

// Sorted returns the list ordered by a comparison à la strings.Compare.
// This is a pure quicksort over the immutable representation: partition
// against the head as pivot, sort the partitions, concatenate. O(n log n)
// on average; O(n²) for adversarial pivots, which is acceptable since
// nothing here sorts in place.
func (l List[T]) Sorted(order func(a, b T) int) List[T] {
	if l.length <= 1 {
		return l
	}
	pivot := l.head.elem
	less, equal, greater := NewBuffer[T](), NewBuffer[T](), NewBuffer[T]()
	for c := l.head; c != nil; c = c.rest {
		switch rel := order(c.elem, pivot); {
		case rel < 0:
			less.Append(c.elem)
		case rel > 0:
			greater.Append(c.elem)
		default:
			equal.Append(c.elem)
		}
	}
	sortedGreater := greater.List().Sorted(order)
	return less.List().Sorted(order).Append(equal.splice(sortedGreater))
}
