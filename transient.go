package pvector

import (
	"github.com/dshills/pvector/internal/trie"
)

// Transient is an ephemerally mutable companion to Vector (§4.5, §4.6): a
// batch of pushes/sets/takes against one Transient mutates its nodes in
// place instead of cloning them, as long as each node has not already been
// shared out to some other persistent Vector. Not safe for concurrent use;
// a Transient is meant to be built up by one goroutine and then converted
// back to an ordinary Vector.
type Transient[T any] struct {
	t         trie.Trie[T]
	token     *trie.EditToken
	discarded bool
}

// PushBack appends value, mutating t in place where possible. On allocation
// failure t is left at its pre-call contents and the error is returned.
func (t *Transient[T]) PushBack(value T) error {
	if t.discarded {
		return ErrDiscarded
	}
	out, err := trie.PushBack(t.t, value, t.token)
	if err != nil {
		return wrapOpErr("Transient.PushBack", err)
	}
	t.t = out
	return nil
}

// Set replaces the element at index i with value. Panics if i is out of
// range.
func (t *Transient[T]) Set(i int, value T) error {
	if t.discarded {
		return ErrDiscarded
	}
	out, err := trie.Set(t.t, uint64(i), value, t.token)
	if err != nil {
		return wrapOpErr("Transient.Set", err)
	}
	t.t = out
	return nil
}

// Update replaces the element at index i with fn(Get(i)). fn is evaluated
// before any node is touched, so a panicking fn leaves t untouched.
func (t *Transient[T]) Update(i int, fn func(T) T) error {
	if t.discarded {
		return ErrDiscarded
	}
	out, err := trie.Update(t.t, uint64(i), fn, t.token)
	if err != nil {
		return wrapOpErr("Transient.Update", err)
	}
	t.t = out
	return nil
}

// Take truncates t to its first n elements, or leaves it unchanged if
// n >= Len().
func (t *Transient[T]) Take(n int) error {
	if t.discarded {
		return ErrDiscarded
	}
	out, err := trie.Take(t.t, uint64(n), t.token)
	if err != nil {
		return wrapOpErr("Transient.Take", err)
	}
	t.t = out
	return nil
}

// Len returns the number of elements currently held.
func (t *Transient[T]) Len() int { return int(t.t.Size) }

// Get returns the element at index i. Panics if i is out of range.
func (t *Transient[T]) Get(i int) T {
	return trie.Get(t.t, uint64(i))
}

// ToPersistent freezes t into an ordinary Vector and consumes t: calling
// PushBack, Set, Update or Take on t afterward returns ErrDiscarded. Matches §4.6's "persistent!":
// once frozen, no node reachable from the result may be mutated again
// through this token, even though the underlying allocation is reused
// as-is (no clone is required to freeze).
func (t *Transient[T]) ToPersistent() Vector[T] {
	out := t.t
	t.discarded = true
	return Vector[T]{t: out}
}

// Discard abandons t without converting it to a Vector, explicitly
// returning every node still exclusively owned by t's token to the
// configured allocator's pool rather than waiting on the garbage collector
// (grounded in the teacher's NodePool Put/PutLeaf/PutInternal). Safe to call
// on an already-discarded or already-converted Transient.
func (t *Transient[T]) Discard() {
	if t.discarded {
		return
	}
	t.discarded = true
	recycleOwned(t.t.Root, t.token, t.t.Cfg)
	recycleOwned(t.t.Tail, t.token, t.t.Cfg)
}

func recycleOwned[T any](n *trie.Node[T], token *trie.EditToken, cfg *trie.Config[T]) {
	if n == nil || !trie.OwnedBy(n, token) {
		return
	}
	for _, c := range trie.Children(n) {
		recycleOwned(c, token, cfg)
	}
	cfg.Alloc.Recycle(n)
}
