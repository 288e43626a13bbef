package flextree

// Order selects the linear visitation sequence an iterator follows.
// The order is a property of the step, not of the node: any iterator can
// be re-tagged at its current position via Iterator.WithOrder.
type Order uint8

const (
	// PreOrder visits every node before its children, siblings left to
	// right. The default order.
	PreOrder Order = iota
	// PostOrder visits every node after its children, siblings left to
	// right.
	PostOrder
	// ZigZag visits nodes level by level: even depths left to right, odd
	// depths right to left. Computed from structural links alone; no
	// queue is materialized.
	ZigZag
)

// String implements fmt.Stringer.
func (o Order) String() string {
	switch o {
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	case ZigZag:
		return "zig-zag"
	default:
		return "unknown-order"
	}
}

// The step functions below are pure: they read links, never write them,
// and are total on the sentinel. Stepping next from the sentinel lands
// on the order's first node, stepping prev on its last, so iteration
// wraps through the end position in both directions without any
// special-casing at call sites.

func stepNext[T any](n *Node[T], ord Order) *Node[T] {
	switch ord {
	case PostOrder:
		return nextPost(n)
	case ZigZag:
		return nextZig(n)
	default:
		return nextPre(n)
	}
}

func stepPrev[T any](n *Node[T], ord Order) *Node[T] {
	switch ord {
	case PostOrder:
		return prevPost(n)
	case ZigZag:
		return prevZig(n)
	default:
		return prevPre(n)
	}
}

// nextPre descends into the first child when one exists; otherwise it
// climbs while the current node ends its sibling chain, then steps
// right. The sentinel's self-loop terminates the climb.
func nextPre[T any](n *Node[T]) *Node[T] {
	if hasChildren(n) {
		return n.firstChild
	}
	for isLastChild(n) {
		n = n.parent
		if isSentinel(n) {
			return n
		}
	}
	return n.next
}

// prevPre mirrors nextPre: step left then sink into last children, or
// climb to the parent when already first in chain.
func prevPre[T any](n *Node[T]) *Node[T] {
	if isFirstChild(n) {
		return n.parent
	}
	m := n.prev
	for hasChildren(m) {
		m = m.lastChild
	}
	return m
}

// nextPost climbs to the parent when the node ends its chain; otherwise
// it steps right and sinks to the leftmost leaf of that sibling.
func nextPost[T any](n *Node[T]) *Node[T] {
	if isLastChild(n) {
		return n.parent
	}
	return leftmostLeaf(n.next)
}

// prevPost sinks into the last child when one exists; otherwise it
// climbs while the node heads its chain, then steps left.
func prevPost[T any](n *Node[T]) *Node[T] {
	if hasChildren(n) {
		return n.lastChild
	}
	for isFirstChild(n) {
		n = n.parent
		if isSentinel(n) {
			return n
		}
	}
	return n.prev
}

// leftmostLeaf sinks through first children to the deepest left leaf.
// Applied to the sentinel it lands on the post-order first node.
func leftmostLeaf[T any](n *Node[T]) *Node[T] {
	for hasChildren(n) {
		n = n.firstChild
	}
	return n
}

// The zig-zag engine trades the usual queue for pruned pre-order scans:
// a scan pruned at depth limit walks the tree in pre-order but never
// descends below that depth, which is enough to find the next or
// previous node of one level, or the entry point of the adjacent level.
// Each full level transition costs O(total nodes); amortized over a
// whole traversal the walk stays linear per level.

func nextPruned[T any](n *Node[T], limit int) *Node[T] {
	if n.depth < limit && hasChildren(n) {
		return n.firstChild
	}
	for isLastChild(n) {
		n = n.parent
		if isSentinel(n) {
			return n
		}
	}
	return n.next
}

func prevPruned[T any](n *Node[T], limit int) *Node[T] {
	if isFirstChild(n) {
		return n.parent
	}
	m := n.prev
	for m.depth < limit && hasChildren(m) {
		m = m.lastChild
	}
	return m
}

// scanDepthFwd finds the first node of depth d strictly after `from` in
// the pruned pre-order, or the sentinel when the level is exhausted.
func scanDepthFwd[T any](from *Node[T], d int) *Node[T] {
	m := nextPruned(from, d)
	for !isSentinel(m) && m.depth != d {
		m = nextPruned(m, d)
	}
	return m
}

// scanDepthBwd is the mirror: first node of depth d strictly before
// `from` in the pruned pre-order.
func scanDepthBwd[T any](from *Node[T], d int) *Node[T] {
	m := prevPruned(from, d)
	for !isSentinel(m) && m.depth != d {
		m = prevPruned(m, d)
	}
	return m
}

// nextZig advances along the current level in its parity direction,
// crossing to the adjacent level's entry point at a layer boundary.
func nextZig[T any](n *Node[T]) *Node[T] {
	if isSentinel(n) {
		if hasChildren(n) {
			return n.firstChild
		}
		return n
	}
	d := n.depth
	s := sentinelOf(n)
	if d%2 == 0 {
		if m := scanDepthFwd(n, d); !isSentinel(m) {
			return m
		}
		return scanDepthBwd(s, d+1)
	}
	if m := scanDepthBwd(n, d); !isSentinel(m) {
		return m
	}
	return scanDepthFwd(s, d+1)
}

// prevZig retreats along the current level, crossing to the previous
// level's exit point at a layer boundary. Applied to the sentinel the
// last visited node must be rediscovered by replaying nextZig from the
// beginning, which costs O(total nodes); an accepted asymmetry of the
// queue-free design.
func prevZig[T any](n *Node[T]) *Node[T] {
	if isSentinel(n) {
		if !hasChildren(n) {
			return n
		}
		m := n.firstChild
		for {
			nx := nextZig(m)
			if isSentinel(nx) {
				return m
			}
			m = nx
		}
	}
	d := n.depth
	s := sentinelOf(n)
	if d%2 == 0 {
		if m := scanDepthBwd(n, d); !isSentinel(m) {
			return m
		}
		if d == 0 {
			return s
		}
		return scanDepthFwd(s, d-1)
	}
	if m := scanDepthFwd(n, d); !isSentinel(m) {
		return m
	}
	return scanDepthBwd(s, d-1)
}
