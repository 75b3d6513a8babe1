package cons

// Buffer is a mutable builder for lists. It keeps a pointer to the last cell
// of the chain built so far, making Append O(1), where repeatedly appending
// to an immutable List would cost O(n) each.
//
// A Buffer moves between two states: while building, mutating operations
// splice cells in place. As soon as the chain has been handed out as an
// immutable List (by calling List), the buffer counts as exported, and the
// next mutating operation first copies the whole chain. Without that copy, a
// buffer mutation would reach into a List a client already holds and
// believes to be frozen.
//
// A Buffer is a private scratchpad, owned by a single call chain; it carries
// no synchronization.
type Buffer[T any] struct {
	first    *cell[T]
	last     *cell[T]
	size     int
	exported bool
}

// NewBuffer returns an empty buffer.
func NewBuffer[T any]() *Buffer[T] {
	return &Buffer[T]{}
}

// Len returns the number of elements collected so far.
func (b *Buffer[T]) Len() int {
	return b.size
}

// IsEmpty is true if the buffer holds no elements.
func (b *Buffer[T]) IsEmpty() bool {
	return b.size == 0
}

// Append adds x at the end of the buffer. Amortized O(1). Returns the
// receiver for chaining.
func (b *Buffer[T]) Append(x T) *Buffer[T] {
	b.copyOnWrite()
	c := &cell[T]{elem: x}
	if b.last == nil {
		b.first = c
	} else {
		b.last.rest = c
	}
	b.last = c
	b.size++
	return b
}

// Prepend adds x at the front of the buffer. Amortized O(1). Returns the
// receiver for chaining.
func (b *Buffer[T]) Prepend(x T) *Buffer[T] {
	b.copyOnWrite()
	c := &cell[T]{elem: x, rest: b.first}
	b.first = c
	if b.last == nil {
		b.last = c
	}
	b.size++
	return b
}

// Remove unlinks and returns the element at position i. O(n). An index out
// of range is a usage error and panics with a ListError.
func (b *Buffer[T]) Remove(i int) T {
	if i < 0 || i >= b.size {
		failOp("Buffer.Remove", "index %d out of range [0, %d)", i, b.size)
	}
	b.copyOnWrite()
	var out T
	if i == 0 {
		out = b.first.elem
		b.first = b.first.rest
		if b.first == nil {
			b.last = nil
		}
	} else {
		prev := b.first
		for ; i > 1; i-- {
			prev = prev.rest
		}
		out = prev.rest.elem
		prev.rest = prev.rest.rest
		if prev.rest == nil {
			b.last = prev
		}
	}
	b.size--
	return out
}

// List exports the buffer's chain as an immutable List. O(1). The buffer
// stays usable, but any further mutation will operate on a fresh copy of
// the chain, leaving the exported list untouched.
func (b *Buffer[T]) List() List[T] {
	b.exported = true
	return List[T]{head: b.first, length: b.size}
}

// splice attaches an already immutable list as the suffix of the chain and
// exports the result, without traversing the suffix. The spliced cells are
// shared with l, so the combined chain counts as exported immediately.
func (b *Buffer[T]) splice(l List[T]) List[T] {
	b.copyOnWrite()
	if l.head != nil {
		if b.last == nil {
			b.first = l.head
		} else {
			b.last.rest = l.head
		}
		b.last = nil // stale by now; copyOnWrite re-establishes it
		b.size += l.length
	}
	b.exported = true
	return List[T]{head: b.first, length: b.size}
}

// copyOnWrite re-creates the chain if it has been exported, so that mutation
// cannot corrupt a previously exported List. This is the central correctness
// rule of the buffer.
func (b *Buffer[T]) copyOnWrite() {
	if !b.exported {
		return
	}
	tracer().Debugf("buffer has been exported, copying %d cells before mutation", b.size)
	b.exported = false
	if b.first == nil {
		return
	}
	head := &cell[T]{elem: b.first.elem}
	last := head
	for c := b.first.rest; c != nil; c = c.rest {
		n := &cell[T]{elem: c.elem}
		last.rest = n
		last = n
	}
	b.first, b.last = head, last
}
