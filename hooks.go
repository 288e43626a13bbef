package flextree

// Hook/unhook are the only functions that rewrite structural links.
// Every public mutation reduces to one unhook and/or one hook, so each
// of the only/first/last/middle child cases is handled exactly once,
// here. All hooks take the owning tree's sentinel s to terminate the
// chains they create.

// adopt finishes any hook: parent link, child count, cached depth.
// The hooked node keeps its own subtree; descendant depths are the
// caller's concern (renumberDepth) when the subtree is not empty.
func adopt[T any](n, parent *Node[T]) {
	n.parent = parent
	parent.childCount++
	n.depth = parent.depth + 1
}

// hookAsFirstChild attaches n at the head of parent's child chain.
func hookAsFirstChild[T any](n, parent, s *Node[T]) {
	if hasChildren(parent) {
		fc := parent.firstChild
		fc.prev = n
		n.next = fc
	} else {
		parent.lastChild = n
		n.next = s
	}
	n.prev = s
	parent.firstChild = n
	adopt(n, parent)
}

// hookAsLastChild attaches n at the tail of parent's child chain.
func hookAsLastChild[T any](n, parent, s *Node[T]) {
	if hasChildren(parent) {
		lc := parent.lastChild
		lc.next = n
		n.prev = lc
	} else {
		parent.firstChild = n
		n.prev = s
	}
	n.next = s
	parent.lastChild = n
	adopt(n, parent)
}

// hookAsNextSibling attaches n directly after pos, degrading to a
// last-child hook when pos ends its chain.
func hookAsNextSibling[T any](n, pos, s *Node[T]) {
	if isLastChild(pos) {
		hookAsLastChild(n, pos.parent, s)
		return
	}
	nx := pos.next
	n.prev = pos
	n.next = nx
	nx.prev = n
	pos.next = n
	adopt(n, pos.parent)
}

// hookAsPrevSibling attaches n directly before pos, degrading to a
// first-child hook when pos heads its chain.
func hookAsPrevSibling[T any](n, pos, s *Node[T]) {
	if isFirstChild(pos) {
		hookAsFirstChild(n, pos.parent, s)
		return
	}
	pv := pos.prev
	n.next = pos
	n.prev = pv
	pv.next = n
	pos.prev = n
	adopt(n, pos.parent)
}

// unhook detaches n (with its whole subtree) from its parent's chain.
// Branching is keyed on n's position, not on neighbor presence, so each
// case repairs exactly the links it owns. n's outward links are nilled;
// the caller either rehooks or releases the node.
func unhook[T any](n, s *Node[T]) {
	p := n.parent
	first, last := p.firstChild == n, p.lastChild == n
	switch {
	case first && last:
		p.firstChild = s
		p.lastChild = s
	case first:
		nx := n.next
		nx.prev = s
		p.firstChild = nx
	case last:
		pv := n.prev
		pv.next = s
		p.lastChild = pv
	default:
		n.prev.next = n.next
		n.next.prev = n.prev
	}
	p.childCount--
	n.parent = nil
	n.prev = nil
	n.next = nil
}

// renumberDepth rewrites the cached depth of every descendant of n from
// its parent's depth. Iterative on an explicit stack so chain-shaped
// subtrees cannot exhaust the call stack. n's own depth must already be
// correct (adopt sets it).
func renumberDepth[T any](n *Node[T]) {
	if !hasChildren(n) {
		return
	}
	stack := []*Node[T]{n}
	for len(stack) > 0 {
		m := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for c := m.firstChild; !isSentinel(c); c = c.next {
			c.depth = m.depth + 1
			if hasChildren(c) {
				stack = append(stack, c)
			}
		}
	}
}
