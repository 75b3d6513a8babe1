package ordered

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// checkTree verifies the three structural invariants of the engine: strict
// BST ordering, correct cached sizes, and the weight-balance bound (with the
// additive slack the size-1-or-less base case leaves).
func checkTree[E any](t *testing.T, n *node[E], ord Ordering[E]) {
	t.Helper()
	checkShape(t, n)
	checkAscending(t, n, ord)
}

func checkShape[E any](t *testing.T, n *node[E]) {
	t.Helper()
	if n == nil {
		return
	}
	ls, rs := n.left.count(), n.right.count()
	if n.size != ls+rs+1 {
		t.Fatalf("size invariant violated at %v: cached %d, children hold %d+%d", n.item, n.size, ls, rs)
	}
	if ls+rs > 1 && (ls > delta*rs+1 || rs > delta*ls+1) {
		t.Fatalf("balance invariant violated at %v: child sizes %d and %d", n.item, ls, rs)
	}
	checkShape(t, n.left)
	checkShape(t, n.right)
}

func checkAscending[E any](t *testing.T, n *node[E], ord Ordering[E]) {
	t.Helper()
	next := inorder(n)
	prev, ok := next()
	if !ok {
		return
	}
	for {
		v, ok := next()
		if !ok {
			return
		}
		if ord(prev, v) >= 0 {
			t.Fatalf("BST invariant violated: %v not below %v in in-order sequence", prev, v)
		}
		prev = v
	}
}

func TestInsertDeleteAscendingInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.ordered")
	defer teardown()
	//
	// keys 1…15 in, then 1…15 out, invariants checked at every step
	var root *node[int]
	for i := 1; i <= 15; i++ {
		root = insert(intOrd, root, i)
		checkTree(t, root, intOrd)
	}
	for i := 1; i <= 15; i++ {
		root = del(intOrd, root, i)
		checkTree(t, root, intOrd)
	}
	if root != nil {
		t.Errorf("expected the tree to be empty again, holds %d items", root.count())
	}
}

func TestRandomOpsInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.ordered")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(1337))
	var root *node[int]
	present := map[int]bool{}
	for op := 0; op < 5000; op++ {
		key := rng.Intn(400)
		if rng.Intn(3) == 0 {
			root = del(intOrd, root, key)
			delete(present, key)
		} else {
			root = insert(intOrd, root, key)
			present[key] = true
		}
		checkTree(t, root, intOrd)
		if root.count() != len(present) {
			t.Fatalf("op %d: expected %d items, tree holds %d", op, len(present), root.count())
		}
	}
}

func TestRandomPermutationDeleteInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	const n = 256
	var root *node[int]
	for _, v := range rng.Perm(n) {
		root = insert(intOrd, root, v)
		checkTree(t, root, intOrd)
	}
	for _, v := range rng.Perm(n) {
		root = del(intOrd, root, v)
		checkTree(t, root, intOrd)
	}
	if root != nil {
		t.Errorf("expected empty tree after deleting all keys, holds %d", root.count())
	}
}

func TestSetAlgebraInvariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.ordered")
	defer teardown()
	//
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 50; round++ {
		a, b := NewSet[int](), NewSet[int]()
		for i := 0; i < 100; i++ {
			a = a.Insert(rng.Intn(150))
			b = b.Insert(rng.Intn(150))
		}
		u := a.Union(b)
		i := a.Intersection(b)
		d := a.Difference(b)
		checkTree(t, u.root, intOrd)
		checkTree(t, i.root, intOrd)
		checkTree(t, d.root, intOrd)
		// |A ∪ B| = |A| + |B| - |A ∩ B|
		if u.Len() != a.Len()+b.Len()-i.Len() {
			t.Fatalf("cardinality algebra violated: |u|=%d, |a|=%d, |b|=%d, |i|=%d",
				u.Len(), a.Len(), b.Len(), i.Len())
		}
		// (A \ B) ∩ B = ∅
		if !d.Intersection(b).IsEmpty() {
			t.Fatal("expected difference to share nothing with its subtrahend")
		}
		// A ∪ (B \ A) = A ∪ B
		if !a.Union(b.Difference(a)).Equal(u, func(x, y int) bool { return x == y }) {
			t.Fatal("expected a ∪ (b \\ a) to equal a ∪ b")
		}
	}
}

func TestRoundTripSortedDedup(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for round := 0; round < 20; round++ {
		input := make([]int, 200)
		uniq := map[int]bool{}
		for i := range input {
			input[i] = rng.Intn(100)
			uniq[input[i]] = true
		}
		s := NewSet(input...)
		out := s.Slice()
		if len(out) != len(uniq) {
			t.Fatalf("expected %d distinct elements, got %d", len(uniq), len(out))
		}
		for i := 1; i < len(out); i++ {
			if out[i-1] >= out[i] {
				t.Fatalf("expected strictly ascending output, got %v before %v", out[i-1], out[i])
			}
		}
		for _, v := range out {
			if !uniq[v] {
				t.Fatalf("element %v appeared out of nowhere", v)
			}
		}
	}
}
