package flextree

// Options bundles the construction-time knobs of a Tree.
//
// Zero-value semantics: a nil Allocator means the default heap allocator;
// Unchecked=false means every structural precondition is validated and
// violations surface as errors.
type Options[T any] struct {
	// Allocator supplies and reclaims node storage, one node at a time.
	Allocator Allocator[T]
	// Unchecked disables precondition validation. Violating calls on an
	// unchecked tree are undefined behavior, never silently corrected.
	Unchecked bool
}

// Option mutates Options during construction.
type Option[T any] func(*Options[T])

// DefaultOptions returns the checked, heap-allocating configuration.
func DefaultOptions[T any]() Options[T] {
	return Options[T]{Allocator: heapAllocator[T]{}}
}

// WithAllocator installs a custom node allocator. A nil allocator is
// ignored and the default remains in effect.
func WithAllocator[T any](a Allocator[T]) Option[T] {
	return func(o *Options[T]) {
		if a != nil {
			o.Allocator = a
		}
	}
}

// WithUnchecked switches off precondition validation for the tree being
// built. Use for release-grade hot paths where every call site is known
// to be legal.
func WithUnchecked[T any]() Option[T] {
	return func(o *Options[T]) { o.Unchecked = true }
}
