package ordered

// Hedge-based set algebra. Each recursive call carries a pair of exclusive
// comparison bounds (nil = unbounded): the subtree under consideration only
// holds items strictly between them, established by ancestors already
// consumed. trim uses the bounds to discard subtrees of the second operand
// before combining, which brings union/difference to O(m·log(n/m + 1))
// instead of m repeated single-item operations.

// union combines two trees, left-biased: on items comparing equal, the item
// of t1 wins.
func union[E any](ord Ordering[E], t1, t2 *node[E]) *node[E] {
	if t2 == nil {
		return t1
	}
	if t1 == nil {
		return t2
	}
	tracer().Debugf("hedge union of trees with %d and %d items", t1.size, t2.size)
	return hedgeUnion(ord, nil, nil, t1, t2)
}

func hedgeUnion[E any](ord Ordering[E], lo, hi *E, t1, t2 *node[E]) *node[E] {
	if t2 == nil {
		return t1
	}
	if t1 == nil {
		return join(t2.item, filterGt(ord, lo, t2.left), filterLt(ord, hi, t2.right))
	}
	pivot := &t1.item
	return join(t1.item,
		hedgeUnion(ord, lo, pivot, t1.left, trim(ord, lo, pivot, t2)),
		hedgeUnion(ord, pivot, hi, t1.right, trim(ord, pivot, hi, t2)))
}

// difference removes from t1 every item present in t2.
func difference[E any](ord Ordering[E], t1, t2 *node[E]) *node[E] {
	if t1 == nil {
		return nil
	}
	if t2 == nil {
		return t1
	}
	tracer().Debugf("hedge difference of trees with %d and %d items", t1.size, t2.size)
	return hedgeDiff(ord, nil, nil, t1, t2)
}

func hedgeDiff[E any](ord Ordering[E], lo, hi *E, t1, t2 *node[E]) *node[E] {
	if t1 == nil {
		return nil
	}
	if t2 == nil {
		return join(t1.item, filterGt(ord, lo, t1.left), filterLt(ord, hi, t1.right))
	}
	pivot := &t2.item
	return merge(
		hedgeDiff(ord, lo, pivot, trim(ord, lo, pivot, t1), t2.left),
		hedgeDiff(ord, pivot, hi, trim(ord, pivot, hi, t1), t2.right))
}

// intersect keeps the items of t1 whose keys are present in t2.
func intersect[E any](ord Ordering[E], t1, t2 *node[E]) *node[E] {
	if t1 == nil || t2 == nil {
		return nil
	}
	l2, _, found, r2 := splitLookup(ord, t2, t1.item)
	l := intersect(ord, t1.left, l2)
	r := intersect(ord, t1.right, r2)
	if found {
		return join(t1.item, l, r)
	}
	return merge(l, r)
}

// trim drops subtrees of n that provably lie outside the exclusive bounds
// (lo, hi). It walks down without allocating.
func trim[E any](ord Ordering[E], lo, hi *E, n *node[E]) *node[E] {
	for n != nil {
		if lo != nil && ord(n.item, *lo) <= 0 {
			n = n.right
			continue
		}
		if hi != nil && ord(n.item, *hi) >= 0 {
			n = n.left
			continue
		}
		break
	}
	return n
}

// filterGt keeps the items comparing strictly greater than the bound
// (nil = keep everything).
func filterGt[E any](ord Ordering[E], lo *E, n *node[E]) *node[E] {
	if lo == nil || n == nil {
		return n
	}
	switch rel := ord(*lo, n.item); {
	case rel < 0:
		return join(n.item, filterGt(ord, lo, n.left), n.right)
	case rel > 0:
		return filterGt(ord, lo, n.right)
	}
	return n.right
}

// filterLt keeps the items comparing strictly less than the bound
// (nil = keep everything).
func filterLt[E any](ord Ordering[E], hi *E, n *node[E]) *node[E] {
	if hi == nil || n == nil {
		return n
	}
	switch rel := ord(*hi, n.item); {
	case rel > 0:
		return join(n.item, n.left, filterLt(ord, hi, n.right))
	case rel < 0:
		return filterLt(ord, hi, n.left)
	}
	return n.left
}

// --- Splitting -------------------------------------------------------------

// split returns the subtrees holding the items below and above the pivot;
// an item equal to the pivot is dropped.
func split[E any](ord Ordering[E], n *node[E], pivot E) (*node[E], *node[E]) {
	if n == nil {
		return nil, nil
	}
	switch rel := ord(pivot, n.item); {
	case rel < 0:
		ll, lr := split(ord, n.left, pivot)
		return ll, join(n.item, lr, n.right)
	case rel > 0:
		rl, rr := split(ord, n.right, pivot)
		return join(n.item, n.left, rl), rr
	}
	return n.left, n.right
}

// splitLookup is split plus a report whether the pivot was present, and the
// stored item for it.
func splitLookup[E any](ord Ordering[E], n *node[E], pivot E) (l *node[E], at E, found bool, r *node[E]) {
	if n == nil {
		var none E
		return nil, none, false, nil
	}
	switch rel := ord(pivot, n.item); {
	case rel < 0:
		ll, at, found, lr := splitLookup(ord, n.left, pivot)
		return ll, at, found, join(n.item, lr, n.right)
	case rel > 0:
		rl, at, found, rr := splitLookup(ord, n.right, pivot)
		return join(n.item, n.left, rl), at, found, rr
	}
	return n.left, n.item, true, n.right
}

// subset reports whether every item of t1 is present in t2.
func subset[E any](ord Ordering[E], t1, t2 *node[E]) bool {
	if t1 == nil {
		return true
	}
	if t1.size > t2.count() {
		return false
	}
	l2, _, found, r2 := splitLookup(ord, t2, t1.item)
	return found && subset(ord, t1.left, l2) && subset(ord, t1.right, r2)
}
