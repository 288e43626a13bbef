package traits

import (
	"fmt"

	"github.com/treelib/flextree"
)

// LeafIterator walks the immediate children of one parent node, left to
// right. Stepping past the last child lands on the parent itself, which
// is the end position LeafEnd returns; the [LeafBegin(p), LeafEnd(p))
// range therefore covers exactly p's children.
type LeafIterator[T any] struct {
	n *flextree.Node[T]
}

// LeafBegin returns an iterator on parent's first child, or the end
// position when parent is childless or nil.
func LeafBegin[T any](parent *flextree.Node[T]) LeafIterator[T] {
	if parent == nil {
		return LeafIterator[T]{}
	}
	if c := parent.FirstChild(); c != nil {
		return LeafIterator[T]{n: c}
	}
	return LeafIterator[T]{n: parent}
}

// LeafEnd returns the end position of parent's child range.
func LeafEnd[T any](parent *flextree.Node[T]) LeafIterator[T] {
	return LeafIterator[T]{n: parent}
}

// LeafIteratorAt positions an iterator on an arbitrary child node.
func LeafIteratorAt[T any](n *flextree.Node[T]) LeafIterator[T] {
	return LeafIterator[T]{n: n}
}

// Next steps to the next sibling, or to the parent at the chain end.
func (it LeafIterator[T]) Next() LeafIterator[T] {
	if it.n == nil {
		return it
	}
	if it.n.IsLastChild() {
		return LeafIterator[T]{n: it.n.Parent()}
	}
	return LeafIterator[T]{n: it.n.NextSibling()}
}

// Prev steps to the previous sibling, or to the parent at the chain
// head. Like Next it is chain navigation from a child position; it is
// not an inverse of stepping onto the end position.
func (it LeafIterator[T]) Prev() LeafIterator[T] {
	if it.n == nil {
		return it
	}
	if it.n.IsFirstChild() {
		return LeafIterator[T]{n: it.n.Parent()}
	}
	return LeafIterator[T]{n: it.n.PrevSibling()}
}

// Node exposes the addressed node.
func (it LeafIterator[T]) Node() *flextree.Node[T] { return it.n }

// Value returns the addressed node's value.
//
// Errors: ErrNilNode on an exhausted or zero iterator.
func (it LeafIterator[T]) Value() (T, error) {
	if it.n == nil {
		var zero T
		return zero, fmt.Errorf("dereference of empty leaf iterator: %w", ErrNilNode)
	}
	return it.n.Value(), nil
}

// Equal compares positions by node identity.
func (it LeafIterator[T]) Equal(o LeafIterator[T]) bool { return it.n == o.n }
