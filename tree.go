package flextree

import "fmt"

// Tree is the container: it owns the sentinel node, the allocator, the
// size counter and the validation policy. The zero Tree is not usable;
// construct with New, Build, Subtree or Clone.
//
// The sentinel is heap-allocated and addressed only by pointer, so Swap
// is O(1) and every node's absent links stay valid when ownership moves
// between Tree values.
type Tree[T any] struct {
	root    *Node[T] // sentinel; self-loops on all five links when empty
	size    int
	alloc   Allocator[T]
	checked bool
}

// New returns an empty tree.
//
// Options: WithAllocator, WithUnchecked.
func New[T any](opts ...Option[T]) *Tree[T] {
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	t := &Tree[T]{alloc: o.Allocator, checked: !o.Unchecked}
	t.root = &Node[T]{depth: -1}
	t.root.parent = t.root
	t.root.prev = t.root
	t.root.next = t.root
	t.root.firstChild = t.root
	t.root.lastChild = t.root
	return t
}

// newNode draws a node from the allocator and initializes it detached:
// childless (both child links at the sentinel), depth pending adoption.
func (t *Tree[T]) newNode(v T) *Node[T] {
	n := t.alloc.Get()
	n.value = v
	n.parent = nil
	n.prev = nil
	n.next = nil
	n.firstChild = t.root
	n.lastChild = t.root
	n.childCount = 0
	n.depth = 0
	return n
}

// Size returns the number of value-bearing nodes.
func (t *Tree[T]) Size() int { return t.size }

// Empty reports whether the tree holds no nodes.
func (t *Tree[T]) Empty() bool { return t.size == 0 }

// Allocator exposes the allocator the tree draws nodes from.
func (t *Tree[T]) Allocator() Allocator[T] { return t.alloc }

// MaximumDepth scans every node and returns the largest cached depth:
// 0 for an empty or single-level tree. Complexity: O(n).
func (t *Tree[T]) MaximumDepth() int {
	deepest := 0
	for n := nextPre(t.root); !isSentinel(n); n = nextPre(n) {
		if n.depth > deepest {
			deepest = n.depth
		}
	}
	return deepest
}

// Begin returns an iterator on the order's first node, or the end
// position for an empty tree. For PostOrder the first node is the
// leftmost leaf, not the first top-level node.
func (t *Tree[T]) Begin(ord Order) Iterator[T] {
	return Iterator[T]{n: stepNext(t.root, ord), ord: ord}
}

// End returns the order-tagged end position. The end position is a
// legal anchor for Prepend and Append, where it addresses the top
// level.
func (t *Tree[T]) End(ord Order) Iterator[T] {
	return Iterator[T]{n: t.root, ord: ord}
}

// RBegin returns a reverse iterator on the order's last node. For
// ZigZag this costs O(n) once; stepping afterwards is link-local.
func (t *Tree[T]) RBegin(ord Order) ReverseIterator[T] {
	return ReverseIterator[T]{n: stepPrev(t.root, ord), ord: ord}
}

// REnd returns the reverse end position.
func (t *Tree[T]) REnd(ord Order) ReverseIterator[T] {
	return ReverseIterator[T]{n: t.root, ord: ord}
}

// checkAnchor validates a destination iterator. allowEnd admits the end
// position (top-level anchor for Prepend/Append/ConcatenateAppend/...).
func (t *Tree[T]) checkAnchor(where Iterator[T], allowEnd bool) error {
	if !t.checked {
		return nil
	}
	if where.n == nil {
		return fmt.Errorf("destination addresses no node: %w", ErrInvalidIterator)
	}
	if !allowEnd && isSentinel(where.n) {
		return fmt.Errorf("destination is the end position: %w", ErrPreconditionViolation)
	}
	if sentinelOf(where.n) != t.root {
		return fmt.Errorf("destination belongs to a different tree: %w", ErrPreconditionViolation)
	}
	return nil
}

// checkSource validates a source iterator for copy operations. The
// source may belong to any tree but must address a real node.
func (t *Tree[T]) checkSource(src Iterator[T]) error {
	if !t.checked {
		return nil
	}
	if src.n == nil {
		return fmt.Errorf("source addresses no node: %w", ErrInvalidIterator)
	}
	if isSentinel(src.n) {
		return fmt.Errorf("source is the end position: %w", ErrPreconditionViolation)
	}
	return nil
}

// Prepend allocates one node holding v and hooks it as the first child
// of where; with the end position as anchor the node becomes the first
// top-level node. Size grows by one.
//
// Returns an iterator on the new node, tagged like where.
// Errors: ErrInvalidIterator, ErrPreconditionViolation (foreign tree).
func (t *Tree[T]) Prepend(where Iterator[T], v T) (Iterator[T], error) {
	if err := t.checkAnchor(where, true); err != nil {
		return Iterator[T]{}, err
	}
	n := t.newNode(v)
	hookAsFirstChild(n, where.n, t.root)
	t.size++
	return Iterator[T]{n: n, ord: where.ord}, nil
}

// Append allocates one node holding v and hooks it as the last child of
// where; with the end position as anchor the node becomes the last
// top-level node. Size grows by one.
//
// Returns an iterator on the new node, tagged like where.
// Errors: ErrInvalidIterator, ErrPreconditionViolation (foreign tree).
func (t *Tree[T]) Append(where Iterator[T], v T) (Iterator[T], error) {
	if err := t.checkAnchor(where, true); err != nil {
		return Iterator[T]{}, err
	}
	n := t.newNode(v)
	hookAsLastChild(n, where.n, t.root)
	t.size++
	return Iterator[T]{n: n, ord: where.ord}, nil
}

// InsertBefore allocates one node holding v and hooks it as where's
// previous sibling. The end position is rejected: linking siblings
// relative to the sentinel would corrupt top-level ordering.
//
// Errors: ErrInvalidIterator, ErrPreconditionViolation.
func (t *Tree[T]) InsertBefore(where Iterator[T], v T) (Iterator[T], error) {
	if err := t.checkAnchor(where, false); err != nil {
		return Iterator[T]{}, err
	}
	n := t.newNode(v)
	hookAsPrevSibling(n, where.n, t.root)
	t.size++
	return Iterator[T]{n: n, ord: where.ord}, nil
}

// InsertAfter allocates one node holding v and hooks it as where's next
// sibling. The end position is rejected.
//
// Errors: ErrInvalidIterator, ErrPreconditionViolation.
func (t *Tree[T]) InsertAfter(where Iterator[T], v T) (Iterator[T], error) {
	if err := t.checkAnchor(where, false); err != nil {
		return Iterator[T]{}, err
	}
	n := t.newNode(v)
	hookAsNextSibling(n, where.n, t.root)
	t.size++
	return Iterator[T]{n: n, ord: where.ord}, nil
}

// concatenate deep-copies src's node and subtree, hooks the copy's root
// via hook, and grows size by the exact node count. The whole copy is
// assembled detached and hooked only afterwards: the destination may
// sit at or inside the source subtree, and a copy walk must never
// enumerate its own output.
func (t *Tree[T]) concatenate(where, src Iterator[T], allowEnd bool,
	hook func(n, pos, s *Node[T])) (Iterator[T], error) {
	if err := t.checkAnchor(where, allowEnd); err != nil {
		return Iterator[T]{}, err
	}
	if err := t.checkSource(src); err != nil {
		return Iterator[T]{}, err
	}
	top := t.newNode(src.n.value)
	copied := t.copyChildren(top, src.n)
	hook(top, where.n, t.root)
	renumberDepth(top)
	t.size += 1 + copied
	return Iterator[T]{n: top, ord: where.ord}, nil
}

// ConcatenateAppend deep-copies the subtree rooted at src and hooks the
// copy as the last child of where; the end position anchors the top
// level. src may belong to another tree and is never mutated.
//
// Returns an iterator on the copy's root.
// Errors: ErrInvalidIterator, ErrPreconditionViolation (sentinel
// source, foreign destination).
// Complexity: O(size of the copied subtree).
func (t *Tree[T]) ConcatenateAppend(where, src Iterator[T]) (Iterator[T], error) {
	return t.concatenate(where, src, true, hookAsLastChild[T])
}

// ConcatenatePrepend deep-copies the subtree rooted at src and hooks
// the copy as the first child of where; the end position anchors the
// top level.
func (t *Tree[T]) ConcatenatePrepend(where, src Iterator[T]) (Iterator[T], error) {
	return t.concatenate(where, src, true, hookAsFirstChild[T])
}

// ConcatenateAfter deep-copies the subtree rooted at src and hooks the
// copy as where's next sibling. The end position is rejected as a
// destination.
func (t *Tree[T]) ConcatenateAfter(where, src Iterator[T]) (Iterator[T], error) {
	return t.concatenate(where, src, false, hookAsNextSibling[T])
}

// ConcatenateBefore deep-copies the subtree rooted at src and hooks the
// copy as where's previous sibling. The end position is rejected as a
// destination.
func (t *Tree[T]) ConcatenateBefore(where, src Iterator[T]) (Iterator[T], error) {
	return t.concatenate(where, src, false, hookAsPrevSibling[T])
}

// checkSplice guards the relink: both iterators must belong to this
// tree, the source must be a real node, and the destination must not
// sit inside the moved subtree (the ancestor walk also catches
// where == src).
func (t *Tree[T]) checkSplice(where, src Iterator[T], allowEnd bool) error {
	if err := t.checkAnchor(where, allowEnd); err != nil {
		return err
	}
	if err := t.checkSource(src); err != nil {
		return err
	}
	if !t.checked {
		return nil
	}
	if sentinelOf(src.n) != t.root {
		return fmt.Errorf("source belongs to a different tree: %w", ErrPreconditionViolation)
	}
	for a := where.n; !isSentinel(a); a = a.parent {
		if a == src.n {
			return fmt.Errorf("destination inside the moved subtree: %w", ErrPreconditionViolation)
		}
	}
	return nil
}

// splice relocates src's node and subtree by unhook-then-hook. No
// allocation, no value copies, size unchanged; only the subtree's
// cached depths are renumbered.
func (t *Tree[T]) splice(where, src Iterator[T], allowEnd bool,
	hook func(n, pos, s *Node[T])) error {
	if err := t.checkSplice(where, src, allowEnd); err != nil {
		return err
	}
	unhook(src.n, t.root)
	hook(src.n, where.n, t.root)
	renumberDepth(src.n)
	return nil
}

// SpliceAppend moves the subtree rooted at src to be the last child of
// where; the end position anchors the top level. The move is pure
// relinking: O(1) plus the depth renumbering of the moved subtree.
//
// Errors: ErrInvalidIterator, ErrPreconditionViolation (sentinel
// source, foreign iterator, destination inside the moved subtree).
func (t *Tree[T]) SpliceAppend(where, src Iterator[T]) error {
	return t.splice(where, src, true, hookAsLastChild[T])
}

// SplicePrepend moves the subtree rooted at src to be the first child
// of where; the end position anchors the top level.
func (t *Tree[T]) SplicePrepend(where, src Iterator[T]) error {
	return t.splice(where, src, true, hookAsFirstChild[T])
}

// SpliceAfter moves the subtree rooted at src to be where's next
// sibling. The end position is rejected as a destination.
func (t *Tree[T]) SpliceAfter(where, src Iterator[T]) error {
	return t.splice(where, src, false, hookAsNextSibling[T])
}

// SpliceBefore moves the subtree rooted at src to be where's previous
// sibling. The end position is rejected as a destination.
func (t *Tree[T]) SpliceBefore(where, src Iterator[T]) error {
	return t.splice(where, src, false, hookAsPrevSibling[T])
}

// Erase removes where's node and every descendant, children strictly
// before parents, and shrinks size by the exact count removed. The
// returned iterator is the traversal successor in where's order, as it
// stands once the subtree is reduced to its root and just before that
// root is removed.
//
// Errors: ErrInvalidIterator, ErrPreconditionViolation (end position,
// foreign tree).
// Complexity: O(size of the erased subtree).
func (t *Tree[T]) Erase(where Iterator[T]) (Iterator[T], error) {
	if err := t.checkAnchor(where, false); err != nil {
		return Iterator[T]{}, err
	}
	n := where.n
	removed := t.eraseChildren(n)
	succ := stepNext(n, where.ord)
	unhook(n, t.root)
	t.alloc.Put(n)
	t.size -= removed + 1
	return Iterator[T]{n: succ, ord: where.ord}, nil
}

// Clear erases every node. Idempotent; the allocator sees each node
// exactly once.
func (t *Tree[T]) Clear() {
	t.eraseChildren(t.root)
	t.size = 0
}

// Clone returns a deep copy: every node is newly allocated from this
// tree's allocator, values are copied, structure and order preserved.
// Complexity: O(n).
func (t *Tree[T]) Clone() *Tree[T] {
	c := New[T](WithAllocator(t.alloc))
	c.checked = t.checked
	c.size = c.copyChildren(c.root, t.root)
	return c
}

// Subtree clones the node at src and all its descendants into a brand
// new tree, whose single top-level node is the copy of src. The source
// tree is never mutated.
//
// Options configure the new tree (WithAllocator, WithUnchecked).
// Errors: ErrInvalidIterator, ErrPreconditionViolation (end position).
func (t *Tree[T]) Subtree(src Iterator[T], opts ...Option[T]) (*Tree[T], error) {
	if err := t.checkSource(src); err != nil {
		return nil, err
	}
	c := New[T](opts...)
	top := c.newNode(src.n.value)
	hookAsLastChild(top, c.root, c.root)
	c.size = 1 + c.copyChildren(top, src.n)
	return c, nil
}

// Swap exchanges the entire contents of two trees in O(1). Nodes keep
// pointing at the sentinel that owns them, so no link is touched.
func (t *Tree[T]) Swap(o *Tree[T]) {
	t.root, o.root = o.root, t.root
	t.size, o.size = o.size, t.size
	t.alloc, o.alloc = o.alloc, t.alloc
	t.checked, o.checked = o.checked, t.checked
}
