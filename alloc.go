package flextree

// Allocator supplies and reclaims storage for exactly one node at a time.
// The container never batches allocation and never retains a node after
// Put. Implementations are single-threaded by contract; thread safety is
// the caller's responsibility.
type Allocator[T any] interface {
	// Get returns a node ready for initialization. Field contents are
	// unspecified; the tree overwrites every field before use.
	Get() *Node[T]
	// Put releases a node the tree no longer owns.
	Put(n *Node[T])
}

// heapAllocator is the default: plain heap allocation, releases are
// left to the garbage collector.
type heapAllocator[T any] struct{}

func (heapAllocator[T]) Get() *Node[T] { return new(Node[T]) }
func (heapAllocator[T]) Put(*Node[T])  {}

// FreeListAllocator recycles released nodes on an intrusive free list
// chained through the next link. Released values are zeroed so recycled
// nodes hold no stale data. Not safe for concurrent use.
type FreeListAllocator[T any] struct {
	free *Node[T]
	held int
}

// NewFreeListAllocator returns an empty free list.
func NewFreeListAllocator[T any]() *FreeListAllocator[T] {
	return &FreeListAllocator[T]{}
}

// Get pops a recycled node, or heap-allocates when the list is empty.
func (a *FreeListAllocator[T]) Get() *Node[T] {
	if a.free == nil {
		return new(Node[T])
	}
	n := a.free
	a.free = n.next
	a.held--
	n.next = nil
	return n
}

// Put pushes n onto the free list. Nil is a no-op.
func (a *FreeListAllocator[T]) Put(n *Node[T]) {
	if n == nil {
		return
	}
	*n = Node[T]{next: a.free}
	a.free = n
	a.held++
}

// Cached reports how many released nodes are waiting for reuse.
func (a *FreeListAllocator[T]) Cached() int { return a.held }
