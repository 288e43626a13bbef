package flextree

import (
	"errors"
	"reflect"
	"testing"
)

// White-box coverage of the hook/unhook primitives: every chain
// position must be relinked exactly once and leave the full structure
// audit clean.

func mustInvariants[T any](t *testing.T, tr *Tree[T]) {
	t.Helper()
	if err := tr.checkInvariants(); err != nil {
		t.Fatalf("invariant audit failed: %v", err)
	}
}

func TestNewTree_SentinelSelfLoops(t *testing.T) {
	tr := New[int]()
	s := tr.root
	if s.parent != s || s.prev != s || s.next != s || s.firstChild != s || s.lastChild != s {
		t.Fatal("empty-tree sentinel must self-loop on all five links")
	}
	if s.depth != -1 {
		t.Fatalf("sentinel depth = %d, want -1", s.depth)
	}
	mustInvariants(t, tr)
}

func TestHook_EveryPosition(t *testing.T) {
	tr := New[string]()
	end := tr.End(PreOrder)

	// Last child of the sentinel: empty-chain branch.
	b, err := tr.Append(end, "b")
	if err != nil {
		t.Fatal(err)
	}
	mustInvariants(t, tr)

	// First child of the sentinel: non-empty head branch.
	if _, err = tr.Prepend(end, "a"); err != nil {
		t.Fatal(err)
	}
	mustInvariants(t, tr)

	// Next sibling of a last child: degrades to a last-child hook.
	d, err := tr.InsertAfter(b, "d")
	if err != nil {
		t.Fatal(err)
	}
	mustInvariants(t, tr)

	// Prev sibling of a middle node: the true in-between insert.
	if _, err = tr.InsertBefore(d, "c"); err != nil {
		t.Fatal(err)
	}
	mustInvariants(t, tr)

	// Prev sibling of a first child: degrades to a first-child hook.
	fc := At(tr.root.firstChild, PreOrder)
	if _, err = tr.InsertBefore(fc, "_"); err != nil {
		t.Fatal(err)
	}
	mustInvariants(t, tr)

	want := []string{"_", "a", "b", "c", "d"}
	got := make([]string, 0, 5)
	for n := tr.root.firstChild; !isSentinel(n); n = n.next {
		got = append(got, n.value)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("top-level chain = %v, want %v", got, want)
	}
}

func TestUnhook_EveryPosition(t *testing.T) {
	build := func() (*Tree[int], [4]*Node[int]) {
		tr := New[int]()
		end := tr.End(PreOrder)
		p, _ := tr.Append(end, 0)
		var kids [4]*Node[int]
		for i := range kids {
			it, _ := tr.Append(p, i+1)
			kids[i] = it.n
		}
		return tr, kids
	}

	cases := []struct {
		name string
		pick int
		want []int
	}{
		{name: "first child", pick: 0, want: []int{2, 3, 4}},
		{name: "middle child", pick: 1, want: []int{1, 3, 4}},
		{name: "last child", pick: 3, want: []int{1, 2, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, kids := build()
			unhook(kids[tc.pick], tr.root)
			tr.size--
			mustInvariants(t, tr)

			var got []int
			for n := tr.root.firstChild.firstChild; !isSentinel(n); n = n.next {
				got = append(got, n.value)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("chain after unhook = %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("only child", func(t *testing.T) {
		tr := New[int]()
		p, _ := tr.Append(tr.End(PreOrder), 0)
		c, _ := tr.Append(p, 1)
		unhook(c.n, tr.root)
		tr.size--
		mustInvariants(t, tr)
		if hasChildren(p.n) || p.n.childCount != 0 {
			t.Fatal("parent must be childless after unhooking its only child")
		}
	})
}

func TestUnhook_KeepsSubtree(t *testing.T) {
	tr := New[int]()
	p, _ := tr.Append(tr.End(PreOrder), 1)
	c, _ := tr.Append(p, 2)
	if _, err := tr.Append(c, 3); err != nil {
		t.Fatal(err)
	}

	unhook(c.n, tr.root)
	if c.n.childCount != 1 || c.n.firstChild.value != 3 {
		t.Fatal("unhook must leave the detached node's subtree intact")
	}
	if c.n.parent != nil || c.n.prev != nil || c.n.next != nil {
		t.Fatal("unhook must nil the detached node's outward links")
	}

	// Rehook at the top level and renumber.
	hookAsLastChild(c.n, tr.root, tr.root)
	renumberDepth(c.n)
	mustInvariants(t, tr)
	if c.n.depth != 0 || c.n.firstChild.depth != 1 {
		t.Fatal("depths must renumber after rehooking")
	}
}

func TestRenumberDepth_DeepChain(t *testing.T) {
	tr := New[int]()
	it := tr.End(PreOrder)
	var err error
	for i := 0; i < 2048; i++ {
		if it, err = tr.Append(it, i); err != nil {
			t.Fatal(err)
		}
	}
	head := tr.root.firstChild

	// Move the whole chain under a fresh top-level node; the explicit
	// stack must survive a depth-2048 renumbering.
	anchor, _ := tr.Append(tr.End(PreOrder), -1)
	unhook(head, tr.root)
	hookAsLastChild(head, anchor.n, tr.root)
	renumberDepth(head)
	mustInvariants(t, tr)

	if got := tr.MaximumDepth(); got != 2048 {
		t.Fatalf("MaximumDepth() = %d, want 2048", got)
	}
}

func TestEraseChildren_FreesBottomUp(t *testing.T) {
	tr := New[int]()
	p, _ := tr.Append(tr.End(PreOrder), 1)
	c, _ := tr.Append(p, 2)
	if _, err := tr.Append(c, 3); err != nil {
		t.Fatal(err)
	}

	if freed := tr.eraseChildren(p.n); freed != 2 {
		t.Fatalf("eraseChildren freed %d nodes, want 2", freed)
	}
	tr.size -= 2
	mustInvariants(t, tr)
	if hasChildren(p.n) {
		t.Fatal("parent must be childless after eraseChildren")
	}
}

func TestCheckedErrors_AreSentinels(t *testing.T) {
	tr := New[int]()
	if _, err := tr.InsertBefore(tr.End(PreOrder), 1); !errors.Is(err, ErrPreconditionViolation) {
		t.Errorf("InsertBefore(end) error = %v, want ErrPreconditionViolation", err)
	}
	if _, err := tr.Append(Iterator[int]{}, 1); !errors.Is(err, ErrInvalidIterator) {
		t.Errorf("Append(zero iterator) error = %v, want ErrInvalidIterator", err)
	}
}
