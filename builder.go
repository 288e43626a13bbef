package flextree

// Nested-literal construction: a forest of Literal values where list
// order becomes sibling order. Literals are plain values built before
// any tree exists, which is why Build can only use the stateless
// default allocator.

// Literal is one entry of a construction literal: a value plus an
// ordered child list. Compose with N.
type Literal[T any] struct {
	value    T
	children []Literal[T]
}

// N builds a literal node; without children it denotes a leaf.
//
//	Build(N(1), N(2), N(3, N(4), N(5)))
func N[T any](v T, children ...Literal[T]) Literal[T] {
	return Literal[T]{value: v, children: children}
}

// Build constructs a tree from a literal forest using the default
// allocator. Sibling order follows list order; sizes and depths are
// established during attachment. Complexity: O(total literals).
func Build[T any](roots ...Literal[T]) *Tree[T] {
	t := New[T]()
	t.build(roots)
	return t
}

// Assign clears the tree and rebuilds it from a literal forest, keeping
// the receiver's allocator and policy.
func (t *Tree[T]) Assign(roots ...Literal[T]) {
	t.Clear()
	t.build(roots)
}

// build attaches a literal forest under the sentinel. Iterative on an
// explicit stack; children are pushed last-to-first so they pop and
// hook in list order.
func (t *Tree[T]) build(roots []Literal[T]) {
	type frame struct {
		lit    *Literal[T]
		parent *Node[T]
	}
	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{lit: &roots[i], parent: t.root})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.newNode(f.lit.value)
		hookAsLastChild(n, f.parent, t.root)
		t.size++
		for i := len(f.lit.children) - 1; i >= 0; i-- {
			stack = append(stack, frame{lit: &f.lit.children[i], parent: n})
		}
	}
}
