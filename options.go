package pvector

import "github.com/dshills/pvector/internal/trie"

// Option configures a Vector or Transient at construction time, following
// the functional-options pattern the teacher module uses for its Engine and
// Buffer types.
type Option[T any] func(*trie.Config[T])

// WithBranchBits sets the inner-node fanout to 2^bits. Default 5 (fanout 32).
func WithBranchBits[T any](bits uint) Option[T] {
	return func(c *trie.Config[T]) {
		c.BranchBits = bits
		c.Branch = 1 << bits
	}
}

// WithLeafBits sets the leaf size to 2^bits elements. Default 5 (32 elements).
func WithLeafBits[T any](bits uint) Option[T] {
	return func(c *trie.Config[T]) {
		c.LeafBits = bits
		c.Leaf = 1 << bits
	}
}

// WithAllocator overrides the default pooled node allocator, e.g. with a
// trie.BudgetAllocator for fault-injection testing.
func WithAllocator[T any](a trie.Allocator[T]) Option[T] {
	return func(c *trie.Config[T]) { c.Alloc = a }
}

// WithRefPolicy overrides the default atomic refcount policy. Use
// trie.PlainRefPolicy{} when a vector (and every value derived from it)
// never crosses a goroutine boundary, for a cheaper non-atomic counter.
func WithRefPolicy[T any](p trie.RefPolicy) Option[T] {
	return func(c *trie.Config[T]) { c.RefPolicy = p }
}

// WithTransientRvalues enables the rvalue-mutation fast path (§4.7) for
// calls explicitly routed through Move: Move(v).PushBack(x) and friends
// then mutate nodes in place instead of cloning them, provided the touched
// nodes are uniquely referenced at that moment. It has no effect on
// ordinary Vector/Transient methods — those never take this path, so
// enabling it cannot change the behavior of code that never calls Move.
// Default off.
func WithTransientRvalues[T any](enabled bool) Option[T] {
	return func(c *trie.Config[T]) { c.UseTransientRvalues = enabled }
}

func buildConfig[T any](opts []Option[T]) *trie.Config[T] {
	cfg := trie.DefaultConfig[T]()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
