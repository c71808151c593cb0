package trie

import "sync/atomic"

// RefCounter is the shared-ownership handle every node carries. Go's garbage
// collector reclaims nodes; the counter's sole job here is to answer Unique,
// which gates the rvalue-mutation fast path (see owned in node.go).
type RefCounter interface {
	Retain()
	Unique() bool
}

// RefPolicy mints RefCounters for newly allocated nodes.
type RefPolicy interface {
	New() RefCounter
}

// AtomicRefPolicy produces counters safe to Retain from concurrent readers,
// matching the "atomic refcount" option in the configuration table: with it,
// persistent values may be copied or dropped concurrently on different
// threads (spec §5).
type AtomicRefPolicy struct{}

func (AtomicRefPolicy) New() RefCounter { return &atomicRefCounter{n: 1} }

type atomicRefCounter struct{ n int32 }

func (c *atomicRefCounter) Retain()      { atomic.AddInt32(&c.n, 1) }
func (c *atomicRefCounter) Unique() bool { return atomic.LoadInt32(&c.n) == 1 }

// PlainRefPolicy produces counters with no synchronization. Cheaper, but the
// resulting nodes must not be shared across goroutines without external
// serialization.
type PlainRefPolicy struct{}

func (PlainRefPolicy) New() RefCounter { return &plainRefCounter{n: 1} }

type plainRefCounter struct{ n int32 }

func (c *plainRefCounter) Retain()      { c.n++ }
func (c *plainRefCounter) Unique() bool { return c.n == 1 }
