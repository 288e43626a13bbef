package flextree

// Node is one element of a Tree: a value plus five structural links.
//
// Link conventions, maintained by every mutation:
//   - parent points at the owning parent, or at the tree's sentinel for
//     top-level nodes; the sentinel's parent points at itself.
//   - prev/next chain siblings under one parent, in order; the chain is
//     strictly per-parent and never crosses into another family.
//   - firstChild/lastChild delimit the child chain.
//   - every absent link points at the sentinel, never at nil.
//
// depth caches the distance from the nearest top-level ancestor: 0 for
// top-level nodes, -1 for the sentinel.
//
// Accessors translate sentinel-valued links to nil, so the sentinel never
// leaks out of the package.
type Node[T any] struct {
	value T

	parent     *Node[T]
	prev, next *Node[T]
	firstChild *Node[T]
	lastChild  *Node[T]

	childCount int
	depth      int
}

// The sentinel is the only node that is its own parent.
func isSentinel[T any](n *Node[T]) bool { return n.parent == n }

func hasChildren[T any](n *Node[T]) bool { return !isSentinel(n.firstChild) }
func hasNext[T any](n *Node[T]) bool     { return !isSentinel(n.next) }
func hasPrev[T any](n *Node[T]) bool     { return !isSentinel(n.prev) }

// Positional tests are direct pointer comparisons against the parent's
// chain delimiters; they stay correct at the top level, where the parent
// is the sentinel.
func isFirstChild[T any](n *Node[T]) bool { return n.parent.firstChild == n }
func isLastChild[T any](n *Node[T]) bool  { return n.parent.lastChild == n }

// sentinelOf climbs to the owning tree's sentinel.
func sentinelOf[T any](n *Node[T]) *Node[T] {
	for !isSentinel(n) {
		n = n.parent
	}
	return n
}

func export[T any](n *Node[T]) *Node[T] {
	if isSentinel(n) {
		return nil
	}
	return n
}

// Value returns the stored value.
func (n *Node[T]) Value() T { return n.value }

// SetValue replaces the stored value in place.
func (n *Node[T]) SetValue(v T) { n.value = v }

// Parent returns the parent node, or nil for a top-level node.
func (n *Node[T]) Parent() *Node[T] { return export(n.parent) }

// NextSibling returns the next sibling, or nil for a last child.
func (n *Node[T]) NextSibling() *Node[T] { return export(n.next) }

// PrevSibling returns the previous sibling, or nil for a first child.
func (n *Node[T]) PrevSibling() *Node[T] { return export(n.prev) }

// FirstChild returns the first child, or nil for a childless node.
func (n *Node[T]) FirstChild() *Node[T] { return export(n.firstChild) }

// LastChild returns the last child, or nil for a childless node.
func (n *Node[T]) LastChild() *Node[T] { return export(n.lastChild) }

// Depth returns the cached distance from the nearest top-level ancestor.
func (n *Node[T]) Depth() int { return n.depth }

// ChildCount returns the number of immediate children.
func (n *Node[T]) ChildCount() int { return n.childCount }

// IsRoot reports whether the node sits at the top level of its tree.
func (n *Node[T]) IsRoot() bool { return isSentinel(n.parent) }

// IsFirstChild reports whether the node heads its sibling chain.
func (n *Node[T]) IsFirstChild() bool { return isFirstChild(n) }

// IsLastChild reports whether the node ends its sibling chain.
func (n *Node[T]) IsLastChild() bool { return isLastChild(n) }

// HasNext reports whether a next sibling exists.
func (n *Node[T]) HasNext() bool { return hasNext(n) }

// HasPrev reports whether a previous sibling exists.
func (n *Node[T]) HasPrev() bool { return hasPrev(n) }

// HasChildren reports whether the node has at least one child.
func (n *Node[T]) HasChildren() bool { return hasChildren(n) }

// IsOnlyChild reports whether the node is its parent's sole child.
func (n *Node[T]) IsOnlyChild() bool {
	return n.parent.firstChild == n && n.parent.lastChild == n
}
