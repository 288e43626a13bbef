package flextree

import "fmt"

// checkInvariants audits the whole structure and reports the first
// violation found. Test support; O(n).
//
// Audited per node: parent linkage, per-parent sibling chain symmetry,
// chain delimiters, child count, cached depth. Audited per tree:
// sentinel self-loops and the size counter.
func (t *Tree[T]) checkInvariants() error {
	s := t.root
	if s.parent != s {
		return fmt.Errorf("sentinel parent does not self-loop")
	}
	if s.depth != -1 {
		return fmt.Errorf("sentinel depth = %d, want -1", s.depth)
	}
	if (s.firstChild == s) != (s.lastChild == s) {
		return fmt.Errorf("sentinel child delimiters disagree")
	}
	seen := 0
	for n := nextPre(s); !isSentinel(n); n = nextPre(n) {
		seen++
		p := n.parent
		if p == nil {
			return fmt.Errorf("node %v: nil parent inside the tree", n.value)
		}
		wantDepth := p.depth + 1
		if n.depth != wantDepth {
			return fmt.Errorf("node %v: depth = %d, want %d", n.value, n.depth, wantDepth)
		}
		if (n.firstChild == s) != (n.lastChild == s) {
			return fmt.Errorf("node %v: child delimiters disagree", n.value)
		}
		// Walk n's child chain: delimiters, symmetry, membership, count.
		count := 0
		var last *Node[T]
		for c := n.firstChild; !isSentinel(c); c = c.next {
			count++
			if c.parent != n {
				return fmt.Errorf("node %v: child %v claims another parent", n.value, c.value)
			}
			if last == nil {
				if c.prev != s {
					return fmt.Errorf("node %v: first child %v has a prev link", n.value, c.value)
				}
			} else if c.prev != last {
				return fmt.Errorf("node %v: sibling chain asymmetry at %v", n.value, c.value)
			}
			last = c
		}
		if count != n.childCount {
			return fmt.Errorf("node %v: childCount = %d, chain length %d", n.value, n.childCount, count)
		}
		if count > 0 && n.lastChild != last {
			return fmt.Errorf("node %v: lastChild does not end the chain", n.value)
		}
	}
	if seen != t.size {
		return fmt.Errorf("size = %d, reachable nodes %d", t.size, seen)
	}
	return nil
}
