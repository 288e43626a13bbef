package flextree

import (
	"fmt"
	"io"
)

// Dot writes the tree as a Graphviz digraph for visual debugging:
// one box per node labelled with its value, depth and child count, one
// edge per parent-child link. Render with
//
//	dot -Tsvg tree.dot > tree.svg
func (t *Tree[T]) Dot(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "digraph flextree {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, `  node [shape=box, fontname="Helvetica"];`); err != nil {
		return err
	}
	ids := make(map[*Node[T]]int, t.size)
	id := 0
	for n := nextPre(t.root); !isSentinel(n); n = nextPre(n) {
		ids[n] = id
		label := fmt.Sprintf("%v\\nd=%d c=%d", n.value, n.depth, n.childCount)
		if _, err := fmt.Fprintf(w, "  n%d [label=\"%s\"];\n", id, label); err != nil {
			return err
		}
		// Pre-order guarantees the parent's id is already assigned.
		if !isSentinel(n.parent) {
			if _, err := fmt.Fprintf(w, "  n%d -> n%d;\n", ids[n.parent], id); err != nil {
				return err
			}
		}
		id++
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
