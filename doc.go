// Package flextree provides a generic, ordered, arbitrary-arity tree
// container built on intrusive node links.
//
// Every node owns one value and an ordered sequence of children; parents,
// siblings and children are reachable in O(1) through five structural
// links per node. A heap-allocated sentinel terminates every chain: absent
// links point at the sentinel, never at nil, so traversal and mutation
// never special-case null pointers.
//
// What lives where:
//
//   - Node      - value, links, child count, cached depth (node.go)
//   - hooks     - attach/detach primitives behind every mutation (hooks.go)
//   - traversal - pure next/prev step functions per order (traversal.go)
//   - Iterator  - order-tagged node handle, plus a reverse adaptor (iterator.go)
//   - Tree      - the public container: build, insert, concatenate,
//     splice, erase, queries (tree.go, builder.go, copy.go)
//   - Allocator - pluggable node storage, heap or free-list (alloc.go)
//   - traits    - checked node introspection, in the traits subpackage
//
// Traversal orders:
//
//   - PreOrder  - depth-first, parents before children
//   - PostOrder - depth-first, children before parents
//   - ZigZag    - breadth-first by level, even depths left-to-right,
//     odd depths right-to-left, computed from links alone (no queue)
//
// Trees are checked by default: structurally illegal requests surface as
// errors wrapping ErrPreconditionViolation or ErrInvalidIterator. Build
// with WithUnchecked to skip validation on hot paths.
//
// The container is strictly single-owner and synchronous; nothing here is
// safe for concurrent mutation.
package flextree
