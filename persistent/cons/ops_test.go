package cons_test

import (
	"strconv"
	"strings"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/npillmayer/persist"
	"github.com/npillmayer/persist/persistent/cons"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestMapFilter(t *testing.T) {
	l := cons.Range(1, 6)
	doubled := l.Map(func(x int) int { return x * 2 })
	if diff := gocmp.Diff([]int{2, 4, 6, 8, 10}, doubled.Slice()); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
	even := l.Filter(func(x int) bool { return x%2 == 0 })
	if diff := gocmp.Diff([]int{2, 4}, even.Slice()); diff != "" {
		t.Errorf("filter mismatch (-want +got):\n%s", diff)
	}
	odd := l.FilterNot(func(x int) bool { return x%2 == 0 })
	if diff := gocmp.Diff([]int{1, 3, 5}, odd.Slice()); diff != "" {
		t.Errorf("filterNot mismatch (-want +got):\n%s", diff)
	}
	// the original list stays as it was
	if l.Len() != 5 {
		t.Error("expected transformations to leave the original list unchanged")
	}
}

func TestMapChangesElementType(t *testing.T) {
	l := cons.Of(1, 2, 3)
	rendered := cons.Map(strconv.Itoa, l)
	if diff := gocmp.Diff([]string{"1", "2", "3"}, rendered.Slice()); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeDrop(t *testing.T) {
	l := cons.Range(0, 10)
	if diff := gocmp.Diff([]int{0, 1, 2}, l.Take(3).Slice()); diff != "" {
		t.Errorf("take mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff([]int{7, 8, 9}, l.Drop(7).Slice()); diff != "" {
		t.Errorf("drop mismatch (-want +got):\n%s", diff)
	}
	if l.Take(100).Len() != 10 || l.Drop(100).Len() != 0 {
		t.Error("expected over-long take/drop to saturate")
	}
	prefix := l.TakeWhile(func(x int) bool { return x < 4 })
	if prefix.Len() != 4 {
		t.Errorf("expected takeWhile prefix of length 4, is %d", prefix.Len())
	}
	suffix := l.DropWhile(func(x int) bool { return x < 4 })
	if suffix.Head() != 4 || suffix.Len() != 6 {
		t.Errorf("expected dropWhile suffix to start at 4, is %s", suffix)
	}
}

func TestReverse(t *testing.T) {
	l := cons.Of(1, 2, 3)
	if diff := gocmp.Diff([]int{3, 2, 1}, l.Reverse().Slice()); diff != "" {
		t.Errorf("reverse mismatch (-want +got):\n%s", diff)
	}
	if !cons.Eq(l.Reverse().Reverse(), l) {
		t.Error("expected double reversal to restore the list")
	}
}

func TestFolds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.cons")
	defer teardown()
	//
	l := cons.Range(1, 5)
	sum := l.FoldLeft(0, func(acc, x int) int { return acc + x })
	if sum != 10 {
		t.Errorf("expected foldLeft sum 10, is %d", sum)
	}
	concat := cons.FoldLeft(cons.Of("a", "b", "c"), "", func(acc, x string) string { return acc + x })
	if concat != "abc" {
		t.Errorf("expected foldLeft concat abc, is %s", concat)
	}
	// foldRight associates to the right
	parens := cons.FoldRight(cons.Of("a", "b", "c"), "ε", func(x, acc string) string {
		return "(" + x + acc + ")"
	})
	if parens != "(a(b(cε)))" {
		t.Errorf("expected right-associated fold (a(b(cε))), is %s", parens)
	}
}

func TestFoldsOnLongList(t *testing.T) {
	// foldRight is reverse + foldLeft, so a million elements must not
	// overflow the stack
	l := cons.Range(0, 1_000_000)
	sum := l.FoldRight(0, func(x, acc int) int { return acc + x })
	if sum != 499999500000 {
		t.Errorf("expected the long fold to sum correctly, got %d", sum)
	}
}

func TestReduce(t *testing.T) {
	l := cons.Of(3, 1, 2)
	max := l.ReduceLeft(func(acc, x int) int {
		if x > acc {
			return x
		}
		return acc
	})
	if max != 3 {
		t.Errorf("expected reduceLeft maximum 3, is %d", max)
	}
	diff := cons.Of(10, 3, 2).ReduceRight(func(x, acc int) int { return x - acc })
	if diff != 9 { // 10 - (3 - 2)
		t.Errorf("expected right-associated difference 9, is %d", diff)
	}
}

func TestReduceOnEmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected ReduceLeft on the empty list to panic with a ListError")
		}
		if le, ok := r.(cons.ListError); !ok || le.Op != "ReduceLeft" {
			t.Fatalf("expected a ListError naming ReduceLeft, got %#v", r)
		}
	}()
	cons.Empty[int]().ReduceLeft(func(acc, x int) int { return acc + x })
}

func TestPredicates(t *testing.T) {
	l := cons.Of(1, 2, 3)
	if !l.Exists(func(x int) bool { return x == 2 }) {
		t.Error("expected Exists to find 2")
	}
	if !l.Forall(func(x int) bool { return x < 10 }) {
		t.Error("expected all elements below 10")
	}
	if !cons.Empty[int]().Forall(func(int) bool { return false }) {
		t.Error("expected Forall to hold vacuously on the empty list")
	}
	if !cons.Contains(l, 3) || cons.Contains(l, 4) {
		t.Error("expected Contains to report 3 but not 4")
	}
}

func TestPartitionSpan(t *testing.T) {
	l := cons.Range(0, 8)
	even, odd := l.Partition(func(x int) bool { return x%2 == 0 })
	if diff := gocmp.Diff([]int{0, 2, 4, 6}, even.Slice()); diff != "" {
		t.Errorf("partition mismatch (-want +got):\n%s", diff)
	}
	if diff := gocmp.Diff([]int{1, 3, 5, 7}, odd.Slice()); diff != "" {
		t.Errorf("partition mismatch (-want +got):\n%s", diff)
	}
	prefix, suffix := l.Span(func(x int) bool { return x < 3 })
	if prefix.Len() != 3 || suffix.Len() != 5 {
		t.Errorf("expected span 3/5, is %d/%d", prefix.Len(), suffix.Len())
	}
}

func TestZip(t *testing.T) {
	names := cons.Of("one", "two", "three")
	numbers := cons.Of(1, 2)
	zipped := cons.Zip(names, numbers)
	if zipped.Len() != 2 {
		t.Errorf("expected zip to stop at the shorter list, length is %d", zipped.Len())
	}
	if p := zipped.Head(); p.Left != "one" || p.Right != 1 {
		t.Errorf("expected (one, 1), got (%v, %v)", p.Left, p.Right)
	}
	indexed := cons.ZipWithIndex(names)
	if p := indexed.Last(); p.Left != "three" || p.Right != 2 {
		t.Errorf("expected (three, 2), got (%v, %v)", p.Left, p.Right)
	}
	as, bs := cons.Unzip(cons.Of(persist.P("a", 1), persist.P("b", 2)))
	if as.String() != "<[a, b]>" || bs.String() != "<[1, 2]>" {
		t.Errorf("unzip mismatch: %s, %s", as, bs)
	}
}

func TestSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "persist.cons")
	defer teardown()
	//
	byInt := func(a, b int) int { return a - b }
	l := cons.Of(3, 1, 4, 1, 5, 9, 2, 6)
	sorted := l.Sorted(byInt)
	if diff := gocmp.Diff([]int{1, 1, 2, 3, 4, 5, 6, 9}, sorted.Slice()); diff != "" {
		t.Errorf("sort mismatch (-want +got):\n%s", diff)
	}
	// duplicates survive, the original is untouched
	if l.Head() != 3 {
		t.Error("expected sorting to leave the original list unchanged")
	}
	if !cons.Eq(cons.Empty[int]().Sorted(byInt), cons.Empty[int]()) {
		t.Error("expected sorting the empty list to be a no-op")
	}
	already := cons.Range(0, 50)
	if !cons.Eq(already.Sorted(byInt), already) {
		t.Error("expected sorting a sorted list to preserve it")
	}
}

func TestGroupBy(t *testing.T) {
	words := cons.Of("ant", "bee", "asp", "cow", "bat")
	groups := cons.GroupBy(words, func(w string) string {
		return w[:1]
	})
	if groups.Len() != 3 {
		t.Fatalf("expected 3 groups, have %d", groups.Len())
	}
	a := groups.Lookup("a").WithDefault(cons.Empty[string]())
	if a.String() != "<[ant, asp]>" {
		t.Errorf("expected group a = <[ant, asp]>, is %s", a)
	}
	b := groups.Lookup("b").WithDefault(cons.Empty[string]())
	if b.String() != "<[bee, bat]>" {
		t.Errorf("expected group b = <[bee, bat]>, is %s", b)
	}
}

func TestDistinct(t *testing.T) {
	l := cons.Of(3, 1, 3, 2, 1, 3)
	if diff := gocmp.Diff([]int{3, 1, 2}, cons.Distinct(l).Slice()); diff != "" {
		t.Errorf("distinct mismatch (-want +got):\n%s", diff)
	}
}

func TestWordCountPipeline(t *testing.T) {
	// cross-package smoke test: list → groups → counts
	text := "the quick fox and the lazy dog and the cat"
	words := cons.FromSlice(strings.Fields(text))
	groups := cons.GroupBy(words, persist.Identity[string])
	if groups.Lookup("the").WithDefault(cons.Empty[string]()).Len() != 3 {
		t.Error("expected 'the' to occur 3 times")
	}
	if groups.Lookup("and").WithDefault(cons.Empty[string]()).Len() != 2 {
		t.Error("expected 'and' to occur twice")
	}
}
