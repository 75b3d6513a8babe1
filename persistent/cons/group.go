package cons

import (
	"cmp"

	"github.com/npillmayer/persist/persistent/ordered"
)

// GroupBy partitions the elements of l by a key function. Each group keeps
// the original element order; the groups are collected in a sorted map.
func GroupBy[K cmp.Ordered, T any](l List[T], key func(T) K) ordered.Map[K, List[T]] {
	groups := ordered.NewMap[K, *Buffer[T]]()
	l.Foreach(func(x T) {
		k := key(x)
		var b *Buffer[T]
		switch m := groups.Lookup(k).Match(); m {
		case m.Just(&b):
		case m.Nothing():
			b = NewBuffer[T]()
			groups = groups.Insert(k, b)
		}
		b.Append(x)
	})
	return ordered.MapValues(func(b *Buffer[T]) List[T] {
		return b.List()
	}, groups)
}

// Distinct removes duplicate elements, keeping the first occurrence of each
// and the original order.
func Distinct[T cmp.Ordered](l List[T]) List[T] {
	seen := ordered.NewSet[T]()
	b := NewBuffer[T]()
	l.Foreach(func(x T) {
		if !seen.Contains(x) {
			seen = seen.Insert(x)
			b.Append(x)
		}
	})
	return b.List()
}
