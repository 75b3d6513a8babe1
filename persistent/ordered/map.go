package ordered

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/npillmayer/persist/maybe"
)

// Pair is one key/value entry of a Map.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// Map is an immutable sorted key/value map, backed by the balanced tree
// engine with key+value nodes. Entries are ordered by key only; values
// carry no ordering obligation. The zero value has no ordering attached and
// most operations on it panic with an OrderingError.
//
//     ages := ordered.NewMap[string, int]().
//         Insert("Jessie", 22).
//         Insert("John", 31)
//     ages.Lookup("John")   // Just(31)
//
// Every operation returns a new incarnation and leaves the receiver
// untouched.
type Map[K, V any] struct {
	root *node[Pair[K, V]]
	ord  Ordering[K]
}

// NewMap constructs a map with naturally ordered keys.
func NewMap[K cmp.Ordered, V any](pairs ...Pair[K, V]) Map[K, V] {
	return NewMapWith[K, V](cmp.Compare[K], pairs...)
}

// NewMapWith constructs a map with keys ordered by the given comparison.
func NewMapWith[K, V any](ord Ordering[K], pairs ...Pair[K, V]) Map[K, V] {
	m := Map[K, V]{ord: ord}
	entryOrd := entryOrdering[K, V](ord)
	for _, p := range pairs {
		m.root = insert(entryOrd, m.root, p)
	}
	return m
}

// entryOrdering lifts a key ordering to entries, ignoring values.
func entryOrdering[K, V any](ord Ordering[K]) Ordering[Pair[K, V]] {
	return func(a, b Pair[K, V]) int {
		return ord(a.Key, b.Key)
	}
}

func (m Map[K, V]) ordering(op string) Ordering[Pair[K, V]] {
	if m.ord == nil {
		panic(OrderingError{Op: "Map." + op})
	}
	return entryOrdering[K, V](m.ord)
}

func (m Map[K, V]) withRoot(root *node[Pair[K, V]]) Map[K, V] {
	return Map[K, V]{root: root, ord: m.ord}
}

// --- API -------------------------------------------------------------------

// Len returns the number of entries. O(1).
func (m Map[K, V]) Len() int {
	return m.root.count()
}

// IsEmpty is true for a map without entries.
func (m Map[K, V]) IsEmpty() bool {
	return m.root == nil
}

// Insert returns a map with key bound to value, replacing the value of an
// existing key. O(log n).
func (m Map[K, V]) Insert(key K, value V) Map[K, V] {
	return m.withRoot(insert(m.ordering("Insert"), m.root, Pair[K, V]{Key: key, Value: value}))
}

// InsertWith returns a map with key bound to value; if key is already
// present, the stored value becomes combine(value, old) instead. Lets
// callers implement merge-on-conflict semantics, e.g. summing counts.
func (m Map[K, V]) InsertWith(key K, value V, combine func(newValue, oldValue V) V) Map[K, V] {
	root := insertWith(m.ordering("InsertWith"), m.root, Pair[K, V]{Key: key, Value: value},
		func(newEntry, oldEntry Pair[K, V]) Pair[K, V] {
			return Pair[K, V]{Key: oldEntry.Key, Value: combine(newEntry.Value, oldEntry.Value)}
		})
	return m.withRoot(root)
}

// Delete returns a map with the entry for key removed; a map without key is
// returned unchanged. O(log n).
func (m Map[K, V]) Delete(key K) Map[K, V] {
	root := del(m.ordering("Delete"), m.root, Pair[K, V]{Key: key})
	if root == m.root {
		return m
	}
	return m.withRoot(root)
}

// Lookup returns the value bound to key, or Nothing for an absent key.
// O(log n).
func (m Map[K, V]) Lookup(key K) maybe.Maybe[V] {
	if entry, found := lookup(m.ordering("Lookup"), m.root, Pair[K, V]{Key: key}); found {
		return maybe.Just(entry.Value)
	}
	return maybe.Nothing[V]()
}

// Contains reports whether key has an entry. O(log n).
func (m Map[K, V]) Contains(key K) bool {
	_, found := lookup(m.ordering("Contains"), m.root, Pair[K, V]{Key: key})
	return found
}

// Min returns the entry with the smallest key, or Nothing for the empty map.
func (m Map[K, V]) Min() maybe.Maybe[Pair[K, V]] {
	if entry, ok := minItem(m.root); ok {
		return maybe.Just(entry)
	}
	return maybe.Nothing[Pair[K, V]]()
}

// Max returns the entry with the largest key, or Nothing for the empty map.
func (m Map[K, V]) Max() maybe.Maybe[Pair[K, V]] {
	if entry, ok := maxItem(m.root); ok {
		return maybe.Just(entry)
	}
	return maybe.Nothing[Pair[K, V]]()
}

// Union returns the map holding the entries of both maps. Left-biased: for
// keys present in both, the receiver's value is kept. Both maps must stem
// from the same key ordering.
func (m Map[K, V]) Union(other Map[K, V]) Map[K, V] {
	return m.withRoot(union(m.ordering("Union"), m.root, other.root))
}

// Intersection returns the map holding the receiver's entries whose keys
// are also in other; values are taken from the receiver.
func (m Map[K, V]) Intersection(other Map[K, V]) Map[K, V] {
	return m.withRoot(intersect(m.ordering("Intersection"), m.root, other.root))
}

// Difference returns the map holding the receiver's entries whose keys are
// not in other.
func (m Map[K, V]) Difference(other Map[K, V]) Map[K, V] {
	return m.withRoot(difference(m.ordering("Difference"), m.root, other.root))
}

// Split returns the maps of entries with keys below and above the pivot;
// the pivot's entry is excluded.
func (m Map[K, V]) Split(pivot K) (Map[K, V], Map[K, V]) {
	l, r := split(m.ordering("Split"), m.root, Pair[K, V]{Key: pivot})
	return m.withRoot(l), m.withRoot(r)
}

// SplitLookup is Split plus the value stored for the pivot key, if present.
func (m Map[K, V]) SplitLookup(pivot K) (Map[K, V], maybe.Maybe[V], Map[K, V]) {
	l, at, found, r := splitLookup(m.ordering("SplitLookup"), m.root, Pair[K, V]{Key: pivot})
	value := maybe.Nothing[V]()
	if found {
		value = maybe.Just(at.Value)
	}
	return m.withRoot(l), value, m.withRoot(r)
}

// MapValues applies f to every value, keeping keys and tree shape. For a
// mapping to a different value type, use the package-level MapValues.
func (m Map[K, V]) MapValues(f func(V) V) Map[K, V] {
	root := mapNodes(m.root, func(entry Pair[K, V]) Pair[K, V] {
		return Pair[K, V]{Key: entry.Key, Value: f(entry.Value)}
	})
	return m.withRoot(root)
}

// MapValues applies f to every value of m, producing a map with a possibly
// different value type. Keys and tree shape stay as they are.
func MapValues[K, V, W any](f func(V) W, m Map[K, V]) Map[K, W] {
	root := mapNodes(m.root, func(entry Pair[K, V]) Pair[K, W] {
		return Pair[K, W]{Key: entry.Key, Value: f(entry.Value)}
	})
	return Map[K, W]{root: root, ord: m.ord}
}

// Filter keeps the entries whose value satisfies pred.
func (m Map[K, V]) Filter(pred func(V) bool) Map[K, V] {
	return m.FilterWithKey(func(_ K, v V) bool { return pred(v) })
}

// FilterWithKey keeps the entries satisfying pred.
func (m Map[K, V]) FilterWithKey(pred func(K, V) bool) Map[K, V] {
	root := filterNodes(m.root, func(entry Pair[K, V]) bool {
		return pred(entry.Key, entry.Value)
	})
	return m.withRoot(root)
}

// Partition splits the map into the entries whose value satisfies pred and
// those that don't.
func (m Map[K, V]) Partition(pred func(V) bool) (Map[K, V], Map[K, V]) {
	yes, no := partitionNodes(m.root, func(entry Pair[K, V]) bool {
		return pred(entry.Value)
	})
	return m.withRoot(yes), m.withRoot(no)
}

// Foreach applies f to every entry, in ascending key order.
func (m Map[K, V]) Foreach(f func(K, V)) {
	each(m.root, func(entry Pair[K, V]) {
		f(entry.Key, entry.Value)
	})
}

// Keys returns the keys in ascending order.
func (m Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Len())
	m.Foreach(func(k K, _ V) {
		out = append(out, k)
	})
	return out
}

// Values returns the values, ordered by their keys.
func (m Map[K, V]) Values() []V {
	out := make([]V, 0, m.Len())
	m.Foreach(func(_ K, v V) {
		out = append(out, v)
	})
	return out
}

// Pairs returns the entries in ascending key order.
func (m Map[K, V]) Pairs() []Pair[K, V] {
	return items(m.root)
}

// Equal compares two maps entry-wise, in key order, with eq comparing
// values.
func (m Map[K, V]) Equal(other Map[K, V], eq func(a, b V) bool) bool {
	if m.ord == nil && other.ord == nil {
		return m.root == nil && other.root == nil
	}
	ord := m.ord
	if ord == nil {
		ord = other.ord
	}
	return equalNodes(m.root, other.root, func(x, y Pair[K, V]) bool {
		return ord(x.Key, y.Key) == 0 && eq(x.Value, y.Value)
	})
}

// FoldValues combines the values of m in ascending key order, starting
// from seed.
func FoldValues[K, V, A any](m Map[K, V], seed A, combine func(acc A, value V) A) A {
	return FoldPairs(m, seed, func(acc A, _ K, value V) A {
		return combine(acc, value)
	})
}

// FoldPairs combines the entries of m in ascending key order, starting from
// seed, exposing the key to the combiner.
func FoldPairs[K, V, A any](m Map[K, V], seed A, combine func(acc A, key K, value V) A) A {
	acc := seed
	each(m.root, func(entry Pair[K, V]) {
		acc = combine(acc, entry.Key, entry.Value)
	})
	return acc
}

// --- Rendering -------------------------------------------------------------

// String renders a map as "<[k → v, …]>", entries in ascending key order.
func (m Map[K, V]) String() string {
	return m.MkString(", ", "<[", "]>")
}

// MkString renders all entries, delimited by sep and enclosed in prefix and
// postfix.
func (m Map[K, V]) MkString(sep, prefix, postfix string) string {
	return m.MkStringN(sep, prefix, postfix, -1, "…")
}

// MkStringN renders at most limit entries (negative = all), appending the
// truncation marker if entries have been dropped.
func (m Map[K, V]) MkStringN(sep, prefix, postfix string, limit int, marker string) string {
	var sb strings.Builder
	sb.WriteString(prefix)
	n := 0
	next := inorder(m.root)
	for {
		entry, ok := next()
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
		fmt.Fprintf(&sb, "%v → %v", entry.Key, entry.Value)
		n++
	}
	sb.WriteString(postfix)
	return sb.String()
}
