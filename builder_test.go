package flextree_test

import (
	"reflect"
	"testing"

	"github.com/treelib/flextree"
)

func TestBuild_LiteralForest(t *testing.T) {
	tr := scenarioA()

	if tr.Size() != 10 {
		t.Fatalf("Size() = %d, want 10", tr.Size())
	}
	want := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if got := collect(tr, flextree.PreOrder); !reflect.DeepEqual(got, want) {
		t.Errorf("pre-order = %v, want %v", got, want)
	}
	wantDepths := []int{0, 0, 0, 1, 2, 3, 3, 3, 2, 2}
	if got := collectDepths(tr, flextree.PreOrder); !reflect.DeepEqual(got, wantDepths) {
		t.Errorf("depths = %v, want %v", got, wantDepths)
	}
}

func TestBuild_Empty(t *testing.T) {
	tr := flextree.Build[int]()
	if !tr.Empty() || tr.Size() != 0 {
		t.Fatal("Build() of no literals must yield an empty tree")
	}
}

func TestBuild_SiblingOrderIsListOrder(t *testing.T) {
	tr := flextree.Build(
		flextree.N("a", flextree.N("a1"), flextree.N("a2"), flextree.N("a3")),
	)
	var got []string
	for it := flextree.At(tr.Begin(flextree.PreOrder).Node().FirstChild(), flextree.PreOrder); !it.AtEnd(); {
		v, err := it.Value()
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, v)
		n := it.Node().NextSibling()
		if n == nil {
			break
		}
		it = flextree.At(n, flextree.PreOrder)
	}
	want := []string{"a1", "a2", "a3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("children = %v, want %v", got, want)
	}
}

func TestBuild_ChildCounts(t *testing.T) {
	tr := scenarioA()
	at4 := find(t, tr, flextree.PreOrder, 4)
	if got := at4.Node().ChildCount(); got != 3 {
		t.Errorf("ChildCount(4) = %d, want 3", got)
	}
	at3 := find(t, tr, flextree.PreOrder, 3)
	if got := at3.Node().ChildCount(); got != 1 {
		t.Errorf("ChildCount(3) = %d, want 1", got)
	}
}
