package flextree

import "errors"

var (
	// ErrPreconditionViolation is returned by checked trees when a call is
	// structurally illegal: a sentinel source, a sibling insertion relative
	// to the end position, a splice destination inside the moved subtree,
	// or an iterator belonging to a different tree.
	ErrPreconditionViolation = errors.New("flextree: precondition violation")

	// ErrInvalidIterator is returned when an operation dereferences or
	// consumes an iterator that addresses no node: the zero Iterator, or
	// the end position where dereference is undefined.
	ErrInvalidIterator = errors.New("flextree: invalid iterator")
)
