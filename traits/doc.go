// Package traits offers checked introspection over flextree nodes.
//
// The Node accessors in the parent package answer absent links with nil
// and leave the caller to test; the functions here make the check part
// of the call. Navigation (Parent, Next, Previous, FirstChild,
// LastChild) returns an explicit error when the requested relative does
// not exist, always wrapping flextree.ErrPreconditionViolation so one
// errors.Is covers the whole family.
//
// LeafIterator walks one node's immediate children, the flat slice view
// of a family that full traversal orders do not offer directly.
package traits
