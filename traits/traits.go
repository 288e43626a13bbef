package traits

import (
	"fmt"

	"github.com/treelib/flextree"
)

var (
	// ErrNilNode reports a nil node handle.
	ErrNilNode = fmt.Errorf("traits: nil node: %w", flextree.ErrPreconditionViolation)
	// ErrNoParent reports navigation above a top-level node.
	ErrNoParent = fmt.Errorf("traits: node has no parent: %w", flextree.ErrPreconditionViolation)
	// ErrNoSibling reports navigation past a sibling chain end.
	ErrNoSibling = fmt.Errorf("traits: node has no such sibling: %w", flextree.ErrPreconditionViolation)
	// ErrNoChildren reports child navigation on a childless node.
	ErrNoChildren = fmt.Errorf("traits: node has no children: %w", flextree.ErrPreconditionViolation)
)

// Parent returns n's parent.
//
// Errors: ErrNilNode, ErrNoParent (n is top-level).
func Parent[T any](n *flextree.Node[T]) (*flextree.Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	p := n.Parent()
	if p == nil {
		return nil, ErrNoParent
	}
	return p, nil
}

// Next returns n's next sibling.
//
// Errors: ErrNilNode, ErrNoSibling (n is a last child).
func Next[T any](n *flextree.Node[T]) (*flextree.Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	s := n.NextSibling()
	if s == nil {
		return nil, ErrNoSibling
	}
	return s, nil
}

// Previous returns n's previous sibling.
//
// Errors: ErrNilNode, ErrNoSibling (n is a first child).
func Previous[T any](n *flextree.Node[T]) (*flextree.Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	s := n.PrevSibling()
	if s == nil {
		return nil, ErrNoSibling
	}
	return s, nil
}

// FirstChild returns n's first child.
//
// Errors: ErrNilNode, ErrNoChildren.
func FirstChild[T any](n *flextree.Node[T]) (*flextree.Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	c := n.FirstChild()
	if c == nil {
		return nil, ErrNoChildren
	}
	return c, nil
}

// LastChild returns n's last child.
//
// Errors: ErrNilNode, ErrNoChildren.
func LastChild[T any](n *flextree.Node[T]) (*flextree.Node[T], error) {
	if n == nil {
		return nil, ErrNilNode
	}
	c := n.LastChild()
	if c == nil {
		return nil, ErrNoChildren
	}
	return c, nil
}

// Depth returns n's cached depth.
//
// Errors: ErrNilNode.
func Depth[T any](n *flextree.Node[T]) (int, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	return n.Depth(), nil
}

// ChildCount returns the number of n's immediate children.
//
// Errors: ErrNilNode.
func ChildCount[T any](n *flextree.Node[T]) (int, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	return n.ChildCount(), nil
}

// Property predicates: a nil node has no properties.

func IsRoot[T any](n *flextree.Node[T]) bool       { return n != nil && n.IsRoot() }
func IsFirstChild[T any](n *flextree.Node[T]) bool { return n != nil && n.IsFirstChild() }
func IsLastChild[T any](n *flextree.Node[T]) bool  { return n != nil && n.IsLastChild() }
func HasNext[T any](n *flextree.Node[T]) bool      { return n != nil && n.HasNext() }
func HasPrevious[T any](n *flextree.Node[T]) bool  { return n != nil && n.HasPrev() }
func HasChildren[T any](n *flextree.Node[T]) bool  { return n != nil && n.HasChildren() }
func IsOnlyChild[T any](n *flextree.Node[T]) bool  { return n != nil && n.IsOnlyChild() }
