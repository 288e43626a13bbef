package flextree

// Subtree copying and bulk erasure. Both walks are iterative: recursion
// depth would otherwise equal tree depth, and chain-shaped trees are
// legal input.

type copyFrame[T any] struct {
	src       *Node[T]
	dstParent *Node[T]
}

// copyChildren clones every descendant of src under dst, preserving
// sibling order, and returns the number of nodes allocated. src may
// belong to another tree; dst must already be hooked into t so cloned
// depths come out right. The work stack holds pending (source node,
// destination parent) pairs; children are pushed last-to-first so they
// pop in sibling order.
func (t *Tree[T]) copyChildren(dst, src *Node[T]) int {
	count := 0
	var stack []copyFrame[T]
	for c := src.lastChild; !isSentinel(c); c = c.prev {
		stack = append(stack, copyFrame[T]{src: c, dstParent: dst})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := t.newNode(f.src.value)
		hookAsLastChild(n, f.dstParent, t.root)
		count++
		for c := f.src.lastChild; !isSentinel(c); c = c.prev {
			stack = append(stack, copyFrame[T]{src: c, dstParent: n})
		}
	}
	return count
}

// eraseChildren unhooks and releases every descendant of n, children
// strictly before parents, and returns the number of nodes freed. The
// walk is the post-order step function itself: by the time a node is
// freed it is a leaf, and its successor was computed while its links
// were still intact. Freeing children first keeps recycling allocators
// safe, a freed parent is never reachable from a live child.
func (t *Tree[T]) eraseChildren(n *Node[T]) int {
	count := 0
	m := leftmostLeaf(n)
	for m != n {
		next := nextPost(m)
		unhook(m, t.root)
		t.alloc.Put(m)
		count++
		m = next
	}
	return count
}
