package flextree

import "fmt"

// Iterator pairs a node handle with a traversal order. The handle alone
// determines the position; the order only decides where Next and Prev
// step. Iterators are values: advancing returns a copy, the original
// stays put.
//
// The zero Iterator addresses no node. Iterators obtained from a tree
// remain valid as long as their node is neither erased nor, for splice,
// assumed to sit at its old position.
type Iterator[T any] struct {
	n   *Node[T]
	ord Order
}

// At builds an iterator positioned on n. A nil n yields the zero
// iterator.
func At[T any](n *Node[T], ord Order) Iterator[T] {
	return Iterator[T]{n: n, ord: ord}
}

// Next returns the iterator advanced one step in its order. Advancing
// past the last node lands on the end position; advancing the end
// position wraps to the order's first node.
func (it Iterator[T]) Next() Iterator[T] {
	if it.n == nil {
		return it
	}
	it.n = stepNext(it.n, it.ord)
	return it
}

// Prev returns the iterator stepped one position back. Stepping back
// from the end position lands on the order's last node; for ZigZag that
// rediscovery costs O(total nodes).
func (it Iterator[T]) Prev() Iterator[T] {
	if it.n == nil {
		return it
	}
	it.n = stepPrev(it.n, it.ord)
	return it
}

// Value returns the addressed node's value.
//
// Errors: ErrInvalidIterator at the end position or on the zero
// iterator.
func (it Iterator[T]) Value() (T, error) {
	if it.n == nil || isSentinel(it.n) {
		var zero T
		return zero, fmt.Errorf("dereference past the last node: %w", ErrInvalidIterator)
	}
	return it.n.value, nil
}

// SetValue replaces the addressed node's value.
//
// Errors: ErrInvalidIterator at the end position or on the zero
// iterator.
func (it Iterator[T]) SetValue(v T) error {
	if it.n == nil || isSentinel(it.n) {
		return fmt.Errorf("assign past the last node: %w", ErrInvalidIterator)
	}
	it.n.value = v
	return nil
}

// Node exposes the addressed node, or nil at the end position.
func (it Iterator[T]) Node() *Node[T] {
	if it.n == nil {
		return nil
	}
	return export(it.n)
}

// Order returns the traversal order the iterator steps in.
func (it Iterator[T]) Order() Order { return it.ord }

// WithOrder re-tags the iterator at its current position. The position
// is unchanged; only subsequent steps interpret it differently.
func (it Iterator[T]) WithOrder(ord Order) Iterator[T] {
	it.ord = ord
	return it
}

// Equal compares positions by node identity alone; order tags are
// ignored.
func (it Iterator[T]) Equal(o Iterator[T]) bool { return it.n == o.n }

// AtEnd reports whether the iterator addresses no node.
func (it Iterator[T]) AtEnd() bool { return it.n == nil || isSentinel(it.n) }

// Reverse adapts the iterator to walk its order backwards from the
// current position. The reverse view dereferences the held node
// directly, so construct it from the last position you want visited,
// not from the end marker; Tree.RBegin does exactly that.
func (it Iterator[T]) Reverse() ReverseIterator[T] {
	return ReverseIterator[T]{n: it.n, ord: it.ord}
}

// ReverseIterator walks a traversal order backwards. It stores the same
// handle a forward iterator would and swaps the step directions; unlike
// the classic one-past adaptor it dereferences the held node directly,
// saving a traversal step per access.
type ReverseIterator[T any] struct {
	n   *Node[T]
	ord Order
}

// Next steps one position back in the underlying order.
func (r ReverseIterator[T]) Next() ReverseIterator[T] {
	if r.n == nil {
		return r
	}
	r.n = stepPrev(r.n, r.ord)
	return r
}

// Prev steps one position forward in the underlying order.
func (r ReverseIterator[T]) Prev() ReverseIterator[T] {
	if r.n == nil {
		return r
	}
	r.n = stepNext(r.n, r.ord)
	return r
}

// Value returns the held node's value.
//
// Errors: ErrInvalidIterator past the reverse end.
func (r ReverseIterator[T]) Value() (T, error) {
	return r.Forward().Value()
}

// SetValue replaces the held node's value.
//
// Errors: ErrInvalidIterator past the reverse end.
func (r ReverseIterator[T]) SetValue(v T) error {
	return r.Forward().SetValue(v)
}

// Node exposes the held node, or nil past the reverse end.
func (r ReverseIterator[T]) Node() *Node[T] {
	return r.Forward().Node()
}

// Order returns the underlying traversal order.
func (r ReverseIterator[T]) Order() Order { return r.ord }

// Equal compares positions by node identity alone.
func (r ReverseIterator[T]) Equal(o ReverseIterator[T]) bool { return r.n == o.n }

// AtEnd reports whether the reverse walk is exhausted.
func (r ReverseIterator[T]) AtEnd() bool { return r.n == nil || isSentinel(r.n) }

// Forward converts back to a forward iterator at the same node.
func (r ReverseIterator[T]) Forward() Iterator[T] {
	return Iterator[T]{n: r.n, ord: r.ord}
}
