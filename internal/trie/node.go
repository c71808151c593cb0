package trie

// Node is a trie node. Leaf nodes (height == 0) hold values directly;
// inner nodes (height > 0) hold child pointers. Tagged by height rather than
// by an interface or a second concrete type, exactly as rope.Node is tagged
// — the set of variants is closed (spec §9 "do not use deep class
// hierarchies; the set is closed").
type Node[T any] struct {
	height   uint8
	children []*Node[T]
	values   []T

	owner *EditToken
	refs  RefCounter
}

func (n *Node[T]) isLeaf() bool { return n.height == 0 }

// OwnedBy reports whether n is currently stamped with token, i.e. whether a
// transient holding token may recycle it without risking a still-live
// persistent Vector that shares it. Exported for Transient.Discard, which
// lives outside this package.
func OwnedBy[T any](n *Node[T], token *EditToken) bool {
	return n != nil && token != nil && n.owner == token
}

// Children returns n's child nodes, or nil if n is a leaf. Exported for
// Transient.Discard's recursive walk.
func Children[T any](n *Node[T]) []*Node[T] {
	if n == nil || n.isLeaf() {
		return nil
	}
	return n.children
}

// retain records that n has just become reachable from one more place.
// Called only where our own algorithms create genuine multi-parent sharing
// (cloning an inner node reuses its untouched children under both the old
// and the new parent); see DESIGN.md for why this is not also called on
// unchanged top-level root/tail passthrough.
func (n *Node[T]) retain() {
	if n != nil && n.refs != nil {
		n.refs.Retain()
	}
}

func share[T any](n *Node[T]) { n.retain() }

// owned reports whether n may be mutated in place for this call: either it
// is already stamped with token (the transient discipline, spec §4.5), or
// this is a §4.7 rvalue-optimized call (token.rvalue) and n is uniquely
// referenced.
//
// The refcount check is deliberately gated on token.rvalue, not merely on
// cfg.UseTransientRvalues: an ordinary persistent call always passes
// token == nil, so it never reaches the refcount branch regardless of
// configuration or of how the node's nodes happen to be referenced at that
// moment. Only a call explicitly routed through the root package's Move
// wrapper mints an rvalue token and can take this path. Without that gate,
// any ordinary call chain like `v2, _ := v1.PushBack(x)` would mutate v1's
// still-live tail in place the moment its refcount happened to read 1,
// corrupting v1 out from under its caller — the caller never asked for
// v1 to be treated as expiring, so refcount alone must never be enough.
func owned[T any](n *Node[T], token *EditToken, cfg *Config[T]) bool {
	if n == nil || token == nil {
		return false
	}
	if n.owner == token {
		return true
	}
	return token.rvalue && cfg.UseTransientRvalues && n.refs != nil && n.refs.Unique()
}

func newLeafAlloc[T any](values []T, token *EditToken, cfg *Config[T]) *Node[T] {
	n, err := cfg.Alloc.NewLeaf(values)
	if err != nil {
		panic(allocFault{err})
	}
	n.owner = token
	n.refs = cfg.RefPolicy.New()
	return n
}

func newInnerAlloc[T any](height uint8, children []*Node[T], token *EditToken, cfg *Config[T]) *Node[T] {
	n, err := cfg.Alloc.NewInner(height, children)
	if err != nil {
		panic(allocFault{err})
	}
	n.owner = token
	n.refs = cfg.RefPolicy.New()
	return n
}

// allocFault carries an allocator error up to the exported entry point that
// started the write path, where it is recovered and turned back into a
// normal (Vector, error) return (spec §7's "scoped acquisition with
// guaranteed release on all exit paths" — recover-then-return is the Go
// idiom for that, used the same way encoding/json's decoder uses panic
// internally and recovers at its exported entry points).
type allocFault struct{ err error }

// leafWithValueAt returns a leaf equal to n but with values[idx] replaced,
// mutating in place when owned, cloning otherwise. Grounds spec §4.3's
// "clone and overwrite the target slot".
func leafWithValueAt[T any](n *Node[T], idx int, v T, token *EditToken, cfg *Config[T]) *Node[T] {
	if owned(n, token, cfg) {
		n.values[idx] = v
		return n
	}
	values := make([]T, len(n.values))
	copy(values, n.values)
	values[idx] = v
	return newLeafAlloc(values, token, cfg)
}

// leafAppend returns a leaf equal to n with v appended, mutating in place
// when owned. n may be nil (an empty tail growing its first element).
func leafAppend[T any](n *Node[T], v T, token *EditToken, cfg *Config[T]) *Node[T] {
	if owned(n, token, cfg) {
		n.values = append(n.values, v)
		return n
	}
	var old []T
	if n != nil {
		old = n.values
	}
	values := make([]T, len(old)+1)
	copy(values, old)
	values[len(old)] = v
	return newLeafAlloc(values, token, cfg)
}

// leafTruncate returns a leaf equal to n's first length elements.
func leafTruncate[T any](n *Node[T], length int, token *EditToken, cfg *Config[T]) *Node[T] {
	if owned(n, token, cfg) {
		n.values = n.values[:length]
		return n
	}
	values := make([]T, length)
	copy(values, n.values[:length])
	return newLeafAlloc(values, token, cfg)
}

// innerClone returns an inner node equal to n, mutating in place when owned,
// cloning (and retaining every child it now shares with n) otherwise.
// Grounds spec §4.2/§4.3's "copy-on-write the spine... creating new inner
// nodes along the path", generalizing rope.Node.clone's shallow-copy.
func innerClone[T any](n *Node[T], token *EditToken, cfg *Config[T]) *Node[T] {
	if owned(n, token, cfg) {
		return n
	}
	children := make([]*Node[T], len(n.children))
	copy(children, n.children)
	for _, c := range children {
		share(c)
	}
	return newInnerAlloc(n.height, children, token, cfg)
}

// wrapTailAsLeaf repositions a full tail leaf as a trunk leaf. No values
// change, so no clone is ever required: either the tail is already owned by
// token (transient case, reused untouched) or it becomes shared between the
// trie value it came from and the trunk it is joining, in which case it is
// retained (see DESIGN.md).
func wrapTailAsLeaf[T any](tail *Node[T], token *EditToken, cfg *Config[T]) *Node[T] {
	if tail == nil {
		return newLeafAlloc(nil, token, cfg)
	}
	if token != nil && tail.owner == token {
		return tail
	}
	share(tail)
	return tail
}
