package trie

import (
	"errors"
	"sync"
)

// ErrAllocation is returned (optionally wrapped) by an Allocator when it
// cannot satisfy a node allocation. Mutating operations surface it unchanged
// to the caller, leaving the receiver observably untouched (spec §7).
var ErrAllocation = errors.New("trie: node allocation failed")

// Allocator is the pluggable node-storage backend (spec §6 "allocator",
// C7). Values/children passed in are already fully prepared by the caller;
// the allocator only decides whether the allocation may proceed and hands
// back a *Node[T] wrapper for it.
type Allocator[T any] interface {
	NewLeaf(values []T) (*Node[T], error)
	NewInner(height uint8, children []*Node[T]) (*Node[T], error)
	// Recycle returns a node no longer reachable by anything to the
	// allocator's pool. Never called automatically (Go's GC reclaims
	// unreachable nodes regardless); Transient.Discard calls it explicitly
	// for nodes it knows it exclusively owns.
	Recycle(n *Node[T])
}

// poolAllocator is the default Allocator, a sync.Pool-backed recycler for
// node wrappers, grounded directly on rope.NodePool (leaf/internal pools with
// Get/Put pairs and a reset-on-checkout discipline).
type poolAllocator[T any] struct {
	leaf  sync.Pool
	inner sync.Pool
}

// NewPoolAllocator returns the default pooled Allocator.
func NewPoolAllocator[T any]() Allocator[T] {
	return &poolAllocator[T]{
		leaf:  sync.Pool{New: func() any { return &Node[T]{} }},
		inner: sync.Pool{New: func() any { return &Node[T]{} }},
	}
}

func (p *poolAllocator[T]) NewLeaf(values []T) (*Node[T], error) {
	n := p.leaf.Get().(*Node[T])
	n.height = 0
	n.values = values
	n.children = nil
	n.owner = nil
	n.refs = nil
	return n, nil
}

func (p *poolAllocator[T]) NewInner(height uint8, children []*Node[T]) (*Node[T], error) {
	n := p.inner.Get().(*Node[T])
	n.height = height
	n.children = children
	n.values = nil
	n.owner = nil
	n.refs = nil
	return n, nil
}

func (p *poolAllocator[T]) Recycle(n *Node[T]) {
	if n == nil {
		return
	}
	n.owner = nil
	n.refs = nil
	if n.isLeaf() {
		var zero T
		for i := range n.values {
			n.values[i] = zero
		}
		n.values = nil
		p.leaf.Put(n)
		return
	}
	for i := range n.children {
		n.children[i] = nil
	}
	n.children = nil
	p.inner.Put(n)
}

// BudgetAllocator wraps another Allocator and fails once a fixed number of
// allocations have been granted, for exercising the fault-injection
// properties in spec §7/§8 property 8 (S6 exercises callback faults; this
// exercises allocation faults, the other half of the same property).
type BudgetAllocator[T any] struct {
	Underlying Allocator[T]
	Remaining  int
}

// NewBudgetAllocator wraps the default pool allocator with a fixed budget.
func NewBudgetAllocator[T any](budget int) *BudgetAllocator[T] {
	return &BudgetAllocator[T]{Underlying: NewPoolAllocator[T](), Remaining: budget}
}

func (b *BudgetAllocator[T]) take() error {
	if b.Remaining <= 0 {
		return ErrAllocation
	}
	b.Remaining--
	return nil
}

func (b *BudgetAllocator[T]) NewLeaf(values []T) (*Node[T], error) {
	if err := b.take(); err != nil {
		return nil, err
	}
	return b.Underlying.NewLeaf(values)
}

func (b *BudgetAllocator[T]) NewInner(height uint8, children []*Node[T]) (*Node[T], error) {
	if err := b.take(); err != nil {
		return nil, err
	}
	return b.Underlying.NewInner(height, children)
}

func (b *BudgetAllocator[T]) Recycle(n *Node[T]) { b.Underlying.Recycle(n) }
