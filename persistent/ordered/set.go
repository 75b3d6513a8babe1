package ordered

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/persist/maybe"
)

// Set is an immutable sorted set of elements, backed by the balanced tree
// engine with element-only nodes. The element order is fixed at construction
// time; the zero value has no ordering attached and most operations on it
// panic with an OrderingError.
//
//     s := ordered.NewSet(3, 1, 4, 1, 5)
//     s.Slice()   // [1 3 4 5]
//
// Sets built from the same ordering may be combined freely; every operation
// returns a new incarnation and leaves its operands untouched.
type Set[T any] struct {
	root *node[T]
	ord  Ordering[T]
}

// NewSet constructs a set of naturally ordered elements.
func NewSet[T cmp.Ordered](elems ...T) Set[T] {
	return NewSetWith(cmp.Compare[T], elems...)
}

// NewSetWith constructs a set ordered by the given comparison.
func NewSetWith[T any](ord Ordering[T], elems ...T) Set[T] {
	s := Set[T]{ord: ord}
	for _, e := range elems {
		s.root = insertIfAbsent(ord, s.root, e)
	}
	return s
}

// ordering guards operations that need to compare elements against use of
// the zero value.
func (s Set[T]) ordering(op string) Ordering[T] {
	if s.ord == nil {
		panic(OrderingError{Op: "Set." + op})
	}
	return s.ord
}

// withRoot keeps the ordering while swapping the tree.
func (s Set[T]) withRoot(root *node[T]) Set[T] {
	return Set[T]{root: root, ord: s.ord}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements. O(1).
func (s Set[T]) Len() int {
	return s.root.count()
}

// IsEmpty is true for a set without elements.
func (s Set[T]) IsEmpty() bool {
	return s.root == nil
}

// Insert returns a set with the given elements added. Elements already
// present are left as they are. O(log n) per element.
func (s Set[T]) Insert(elems ...T) Set[T] {
	ord := s.ordering("Insert")
	root := s.root
	for _, e := range elems {
		root = insertIfAbsent(ord, root, e)
	}
	return s.withRoot(root)
}

// Delete returns a set with x removed; a set without x is returned
// unchanged. O(log n).
func (s Set[T]) Delete(x T) Set[T] {
	root := del(s.ordering("Delete"), s.root, x)
	if root == s.root {
		return s
	}
	return s.withRoot(root)
}

// Contains reports membership of x. O(log n).
func (s Set[T]) Contains(x T) bool {
	_, found := lookup(s.ordering("Contains"), s.root, x)
	return found
}

// Min returns the smallest element, or Nothing for the empty set.
func (s Set[T]) Min() maybe.Maybe[T] {
	if item, ok := minItem(s.root); ok {
		return maybe.Just(item)
	}
	return maybe.Nothing[T]()
}

// Max returns the largest element, or Nothing for the empty set.
func (s Set[T]) Max() maybe.Maybe[T] {
	if item, ok := maxItem(s.root); ok {
		return maybe.Just(item)
	}
	return maybe.Nothing[T]()
}

// Union returns the set holding the elements of both sets. Left-biased: on
// elements comparing equal, the receiver's element is kept. Both sets must
// stem from the same ordering.
func (s Set[T]) Union(other Set[T]) Set[T] {
	return s.withRoot(union(s.ordering("Union"), s.root, other.root))
}

// Intersection returns the set holding the receiver's elements that are
// also in other.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	return s.withRoot(intersect(s.ordering("Intersection"), s.root, other.root))
}

// Difference returns the set holding the receiver's elements that are not
// in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	return s.withRoot(difference(s.ordering("Difference"), s.root, other.root))
}

// SubsetOf reports whether every element of the receiver is in other.
func (s Set[T]) SubsetOf(other Set[T]) bool {
	return subset(s.ordering("SubsetOf"), s.root, other.root)
}

// ProperSubsetOf reports whether the receiver is a subset of other and
// other holds at least one element more.
func (s Set[T]) ProperSubsetOf(other Set[T]) bool {
	return s.Len() < other.Len() && s.SubsetOf(other)
}

// Split returns the subsets of elements below and above the pivot; the
// pivot itself is excluded.
func (s Set[T]) Split(pivot T) (Set[T], Set[T]) {
	l, r := split(s.ordering("Split"), s.root, pivot)
	return s.withRoot(l), s.withRoot(r)
}

// SplitMember is Split plus a report whether the pivot was present.
func (s Set[T]) SplitMember(pivot T) (Set[T], bool, Set[T]) {
	l, _, found, r := splitLookup(s.ordering("SplitMember"), s.root, pivot)
	return s.withRoot(l), found, s.withRoot(r)
}

// Filter keeps the elements satisfying pred.
func (s Set[T]) Filter(pred func(T) bool) Set[T] {
	return s.withRoot(filterNodes(s.root, pred))
}

// Partition splits the set into the elements satisfying pred and those
// that don't.
func (s Set[T]) Partition(pred func(T) bool) (Set[T], Set[T]) {
	yes, no := partitionNodes(s.root, pred)
	return s.withRoot(yes), s.withRoot(no)
}

// Foreach applies f to every element, in ascending order.
func (s Set[T]) Foreach(f func(T)) {
	each(s.root, f)
}

// Slice returns the elements in ascending order.
func (s Set[T]) Slice() []T {
	return items(s.root)
}

// Equal compares two sets element-wise, in order.
func (s Set[T]) Equal(other Set[T], eq func(a, b T) bool) bool {
	return equalNodes(s.root, other.root, eq)
}

// FoldElems combines the elements of s in ascending order, starting from
// seed.
func FoldElems[T, A any](s Set[T], seed A, combine func(acc A, x T) A) A {
	acc := seed
	each(s.root, func(x T) {
		acc = combine(acc, x)
	})
	return acc
}

// --- Rendering -------------------------------------------------------------

// String renders a set as "<{a, b, c}>", elements in ascending order.
func (s Set[T]) String() string {
	return s.MkString(", ", "<{", "}>")
}

// MkString renders all elements, delimited by sep and enclosed in prefix
// and postfix.
func (s Set[T]) MkString(sep, prefix, postfix string) string {
	return s.MkStringN(sep, prefix, postfix, -1, "…")
}

// MkStringN renders at most limit elements (negative = all), appending the
// truncation marker if elements have been dropped.
func (s Set[T]) MkStringN(sep, prefix, postfix string, limit int, marker string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	n := 0
	next := inorder(s.root)
	for {
		item, ok := next()
		if !ok {
			break
		}
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
		fmt.Fprintf(&sb, "%v", item)
		n++
	}
	sb.WriteString(postfix)
	return sb.String()
}
