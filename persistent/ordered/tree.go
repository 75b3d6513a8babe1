package ordered

import (
	"fmt"
)

// Weight-balancing constants. A node counts as balanced while neither child
// is more than delta times heavier than the other; restoring balance picks a
// single or a double rotation by weighing the heavy child's own children
// against ratio. The rebalancing cost guarantees hold for exactly this pair
// of constants.
const (
	delta = 4
	ratio = 2
)

// Ordering is a total-order comparison with the contract of strings.Compare:
// negative for a < b, zero for equal, positive for a > b.
type Ordering[E any] func(a, b E) int

// node is one inner node ("Bin") of the balanced tree; a nil *node is the
// empty tree ("Tip"). size caches 1 + size(left) + size(right). Nodes are
// never mutated after construction; every structural change builds new nodes
// along the touched path and shares the rest.
type node[E any] struct {
	size  int
	item  E
	left  *node[E]
	right *node[E]
}

func (n *node[E]) count() int {
	if n == nil {
		return 0
	}
	return n.size
}

// bin builds a node from two subtrees, re-establishing the size field.
func bin[E any](item E, l, r *node[E]) *node[E] {
	return &node[E]{size: l.count() + r.count() + 1, item: item, left: l, right: r}
}

// --- Balancing -------------------------------------------------------------

// balance builds a node from two subtrees whose sizes may differ by at most
// one insertion or deletion, rotating if the weight invariant got violated.
func balance[E any](item E, l, r *node[E]) *node[E] {
	ls, rs := l.count(), r.count()
	switch {
	case ls+rs <= 1:
		return bin(item, l, r)
	case rs >= delta*ls:
		return rotateLeft(item, l, r)
	case ls >= delta*rs:
		return rotateRight(item, l, r)
	}
	return bin(item, l, r)
}

func rotateLeft[E any](item E, l, r *node[E]) *node[E] {
	assertThat(r != nil, "rotate left expects a right subtree")
	if r.left.count() < ratio*r.right.count() {
		return singleLeft(item, l, r)
	}
	return doubleLeft(item, l, r)
}

func rotateRight[E any](item E, l, r *node[E]) *node[E] {
	assertThat(l != nil, "rotate right expects a left subtree")
	if l.right.count() < ratio*l.left.count() {
		return singleRight(item, l, r)
	}
	return doubleRight(item, l, r)
}

func singleLeft[E any](item E, l, r *node[E]) *node[E] {
	assertThat(r != nil, "single left rotation expects a right subtree")
	return bin(r.item, bin(item, l, r.left), r.right)
}

func singleRight[E any](item E, l, r *node[E]) *node[E] {
	assertThat(l != nil, "single right rotation expects a left subtree")
	return bin(l.item, l.left, bin(item, l.right, r))
}

func doubleLeft[E any](item E, l, r *node[E]) *node[E] {
	assertThat(r != nil && r.left != nil, "double left rotation expects an inner grandchild")
	rl := r.left
	return bin(rl.item, bin(item, l, rl.left), bin(r.item, rl.right, r.right))
}

func doubleRight[E any](item E, l, r *node[E]) *node[E] {
	assertThat(l != nil && l.right != nil, "double right rotation expects an inner grandchild")
	lr := l.right
	return bin(lr.item, bin(l.item, l.left, lr.left), bin(item, lr.right, r))
}

// --- Insertion and deletion ------------------------------------------------

// insert adds item, replacing an existing item that compares equal.
func insert[E any](ord Ordering[E], n *node[E], item E) *node[E] {
	if n == nil {
		return bin(item, nil, nil)
	}
	switch rel := ord(item, n.item); {
	case rel < 0:
		return balance(n.item, insert(ord, n.left, item), n.right)
	case rel > 0:
		return balance(n.item, n.left, insert(ord, n.right, item))
	}
	return &node[E]{size: n.size, item: item, left: n.left, right: n.right}
}

// insertIfAbsent adds item; if an equal item is present the tree is returned
// unchanged (pointer-identical, preserving sharing).
func insertIfAbsent[E any](ord Ordering[E], n *node[E], item E) *node[E] {
	if n == nil {
		return bin(item, nil, nil)
	}
	switch rel := ord(item, n.item); {
	case rel < 0:
		nl := insertIfAbsent(ord, n.left, item)
		if nl == n.left {
			return n
		}
		return balance(n.item, nl, n.right)
	case rel > 0:
		nr := insertIfAbsent(ord, n.right, item)
		if nr == n.right {
			return n
		}
		return balance(n.item, n.left, nr)
	}
	return n
}

// insertWith adds item; on an existing equal item the stored item becomes
// combine(item, old).
func insertWith[E any](ord Ordering[E], n *node[E], item E, combine func(newItem, oldItem E) E) *node[E] {
	if n == nil {
		return bin(item, nil, nil)
	}
	switch rel := ord(item, n.item); {
	case rel < 0:
		return balance(n.item, insertWith(ord, n.left, item, combine), n.right)
	case rel > 0:
		return balance(n.item, n.left, insertWith(ord, n.right, item, combine))
	}
	return &node[E]{size: n.size, item: combine(item, n.item), left: n.left, right: n.right}
}

// del removes the item comparing equal to key; an absent key returns the
// tree unchanged (pointer-identical).
func del[E any](ord Ordering[E], n *node[E], key E) *node[E] {
	if n == nil {
		return nil
	}
	switch rel := ord(key, n.item); {
	case rel < 0:
		nl := del(ord, n.left, key)
		if nl == n.left {
			return n
		}
		return balance(n.item, nl, n.right)
	case rel > 0:
		nr := del(ord, n.right, key)
		if nr == n.right {
			return n
		}
		return balance(n.item, n.left, nr)
	}
	return glue(n.left, n.right)
}

// glue recombines the two children of a deleted node. The replacement root
// is pulled from the larger side, keeping the result balanced.
func glue[E any](l, r *node[E]) *node[E] {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.size > r.size {
		item, rest := deleteFindMax(l)
		return balance(item, rest, r)
	}
	item, rest := deleteFindMin(r)
	return balance(item, l, rest)
}

// deleteFindMin removes and returns the smallest item. Calling it on an
// empty tree is an engine defect.
func deleteFindMin[E any](n *node[E]) (E, *node[E]) {
	assertThat(n != nil, "deleteFindMin expects a non-empty tree")
	if n.left == nil {
		return n.item, n.right
	}
	item, rest := deleteFindMin(n.left)
	return item, balance(n.item, rest, n.right)
}

// deleteFindMax removes and returns the largest item. Calling it on an
// empty tree is an engine defect.
func deleteFindMax[E any](n *node[E]) (E, *node[E]) {
	assertThat(n != nil, "deleteFindMax expects a non-empty tree")
	if n.right == nil {
		return n.item, n.left
	}
	item, rest := deleteFindMax(n.right)
	return item, balance(n.item, n.left, rest)
}

// --- Lookup ----------------------------------------------------------------

func lookup[E any](ord Ordering[E], n *node[E], key E) (E, bool) {
	for n != nil {
		switch rel := ord(key, n.item); {
		case rel < 0:
			n = n.left
		case rel > 0:
			n = n.right
		default:
			return n.item, true
		}
	}
	var none E
	return none, false
}

func minItem[E any](n *node[E]) (E, bool) {
	if n == nil {
		var none E
		return none, false
	}
	for n.left != nil {
		n = n.left
	}
	return n.item, true
}

func maxItem[E any](n *node[E]) (E, bool) {
	if n == nil {
		var none E
		return none, false
	}
	for n.right != nil {
		n = n.right
	}
	return n.item, true
}

// --- Joining ---------------------------------------------------------------

// join combines two balanced trees and a separating item (everything in l
// below item, everything in r above), rebalancing along the shorter side.
func join[E any](item E, l, r *node[E]) *node[E] {
	switch {
	case l == nil:
		return insertMin(item, r)
	case r == nil:
		return insertMax(item, l)
	case delta*l.size <= r.size:
		return balance(r.item, join(item, l, r.left), r.right)
	case delta*r.size <= l.size:
		return balance(l.item, l.left, join(item, l.right, r))
	}
	return bin(item, l, r)
}

func insertMin[E any](item E, n *node[E]) *node[E] {
	if n == nil {
		return bin(item, nil, nil)
	}
	return balance(n.item, insertMin(item, n.left), n.right)
}

func insertMax[E any](item E, n *node[E]) *node[E] {
	if n == nil {
		return bin(item, nil, nil)
	}
	return balance(n.item, n.left, insertMax(item, n.right))
}

// merge is join without a separating item: all of l compares below all of r.
func merge[E any](l, r *node[E]) *node[E] {
	switch {
	case l == nil:
		return r
	case r == nil:
		return l
	case delta*l.size <= r.size:
		return balance(r.item, merge(l, r.left), r.right)
	case delta*r.size <= l.size:
		return balance(l.item, l.left, merge(l.right, r))
	}
	return glue(l, r)
}

// --- Traversal and bulk operations -----------------------------------------

// each visits the items in order, iteratively with an explicit stack.
func each[E any](n *node[E], f func(E)) {
	var stack []*node[E]
	for n != nil || len(stack) > 0 {
		for n != nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f(n.item)
		n = n.right
	}
}

// inorder returns a pull-style iterator over the items, in order.
func inorder[E any](n *node[E]) func() (E, bool) {
	var stack []*node[E]
	cur := n
	return func() (E, bool) {
		for cur != nil {
			stack = append(stack, cur)
			cur = cur.left
		}
		if len(stack) == 0 {
			var none E
			return none, false
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur = top.right
		return top.item, true
	}
}

func items[E any](n *node[E]) []E {
	out := make([]E, 0, n.count())
	each(n, func(e E) {
		out = append(out, e)
	})
	return out
}

// equalNodes compares two trees by their in-order item sequences.
func equalNodes[E any](a, b *node[E], eq func(x, y E) bool) bool {
	if a.count() != b.count() {
		return false
	}
	nextA, nextB := inorder(a), inorder(b)
	for {
		x, okA := nextA()
		y, okB := nextB()
		if !okA || !okB {
			return okA == okB
		}
		if !eq(x, y) {
			return false
		}
	}
}

// filterNodes keeps the items satisfying pred.
func filterNodes[E any](n *node[E], pred func(E) bool) *node[E] {
	if n == nil {
		return nil
	}
	l := filterNodes(n.left, pred)
	r := filterNodes(n.right, pred)
	if pred(n.item) {
		return join(n.item, l, r)
	}
	return merge(l, r)
}

// partitionNodes splits a tree by pred into (satisfying, not satisfying).
func partitionNodes[E any](n *node[E], pred func(E) bool) (*node[E], *node[E]) {
	if n == nil {
		return nil, nil
	}
	lyes, lno := partitionNodes(n.left, pred)
	ryes, rno := partitionNodes(n.right, pred)
	if pred(n.item) {
		return join(n.item, lyes, ryes), merge(lno, rno)
	}
	return merge(lyes, ryes), join(n.item, lno, rno)
}

// mapNodes rebuilds a tree with transformed items, preserving the shape.
// f must preserve the relative order of items.
func mapNodes[E, F any](n *node[E], f func(E) F) *node[F] {
	if n == nil {
		return nil
	}
	return &node[F]{size: n.size, item: f(n.item), left: mapNodes(n.left, f), right: mapNodes(n.right, f)}
}

// --- Errors ----------------------------------------------------------------

// InvariantError is the panic value for internal shape violations: a
// rebalancing helper invoked on a tree shape it does not support. These are
// engine defects and unreachable through the public API.
type InvariantError string

func (e InvariantError) Error() string {
	return string(e)
}

// OrderingError is the panic value for operating on a zero-value Set or Map,
// which has no ordering attached. Use one of the constructors.
type OrderingError struct {
	Op string
}

func (e OrderingError) Error() string {
	return "ordered: " + e.Op + ": collection has no ordering (zero value; use a constructor)"
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		panic(InvariantError(fmt.Sprintf("ordered: "+msg, msgargs...)))
	}
}
