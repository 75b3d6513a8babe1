package ordered

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

// --- Print tree ------------------------------------------------------------

func dumpTree[E any](n *node[E]) string {
	header := fmt.Sprintf("\nTree(size=%d)\n", n.count())
	printer := tp.New()
	dumpNode(printer, n)
	return header + printer.String() + "\n"
}

func dumpNode[E any](printer tp.Tree, n *node[E]) {
	if n == nil {
		return
	}
	if n.left == nil && n.right == nil {
		printer.AddNode(fmt.Sprintf("⟨%v⟩", n.item))
		return
	}
	branch := printer.AddBranch(fmt.Sprintf("⟨%v⟩ %d", n.item, n.size))
	dumpNode(branch, n.left)
	dumpNode(branch, n.right)
}

func TestDumpShape(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.ordered")
	defer teardown()
	//
	var root *node[int]
	for i := 1; i <= 10; i++ {
		root = insert(intOrd, root, i)
	}
	t.Logf("%s", dumpTree(root))
	if root.count() != 10 {
		t.Errorf("expected dumped tree to hold 10 items, holds %d", root.count())
	}
}
