package pvector

import (
	"fmt"
	"iter"
	"strings"

	"github.com/dshills/pvector/internal/trie"
)

// Vector is an immutable, indexable sequence of T. The zero value is the
// canonical empty vector and is ready to use (§6, invariant 5): it needs no
// constructor call and allocates nothing until the first element is pushed.
type Vector[T any] struct {
	t trie.Trie[T]
}

// New constructs an empty Vector with the given options.
func New[T any](opts ...Option[T]) Vector[T] {
	return Vector[T]{t: trie.Empty(buildConfig(opts))}
}

// Of builds a Vector holding items, in order.
func Of[T any](items ...T) Vector[T] {
	v := New[T]()
	tr := v.t
	for _, it := range items {
		var err error
		tr, err = trie.PushBack(tr, it, nil)
		if err != nil {
			// The default allocator never fails; a custom one supplied
			// through Of's caller-less signature cannot exist yet.
			panic(err)
		}
	}
	return Vector[T]{t: tr}
}

// Collect builds a Vector from a Go 1.23 range-over-func sequence, using an
// internal transient so the whole build costs one set of allocations instead
// of one clone per element (grounded in the teacher's builder helpers, which
// batch a rope's construction the same way instead of calling Insert in a
// loop on an already-built rope).
func Collect[T any](seq iter.Seq[T], opts ...Option[T]) (Vector[T], error) {
	tv := New(opts...).ToTransient()
	for v := range seq {
		if err := tv.PushBack(v); err != nil {
			return Vector[T]{}, err
		}
	}
	return tv.ToPersistent(), nil
}

// Len returns the number of elements (§4.1's size, O(1)).
func (v Vector[T]) Len() int { return int(v.t.Size) }

// IsEmpty reports whether Len() == 0.
func (v Vector[T]) IsEmpty() bool { return v.t.Size == 0 }

// Get returns the element at index i. Panics if i is out of range (§9
// Resolved Open Questions).
func (v Vector[T]) Get(i int) T {
	return trie.Get(v.t, uint64(i))
}

// PushBack returns a new Vector with value appended (§4.2). The receiver is
// left unchanged. The only possible error is allocation failure (§7); on
// error the returned Vector is the receiver, unchanged.
func (v Vector[T]) PushBack(value T) (Vector[T], error) {
	out, err := trie.PushBack(v.t, value, nil)
	if err != nil {
		return v, wrapOpErr("PushBack", err)
	}
	return Vector[T]{t: out}, nil
}

// Set returns a new Vector with the element at index i replaced by value
// (§4.3). Panics if i is out of range.
func (v Vector[T]) Set(i int, value T) (Vector[T], error) {
	out, err := trie.Set(v.t, uint64(i), value, nil)
	if err != nil {
		return v, wrapOpErr("Set", err)
	}
	return Vector[T]{t: out}, nil
}

// Update returns a new Vector with the element at index i replaced by
// fn(Get(i)) (§4.3). fn is evaluated before any node is touched, so a
// panicking fn propagates through to the caller and leaves the receiver
// untouched (§7).
func (v Vector[T]) Update(i int, fn func(T) T) (Vector[T], error) {
	out, err := trie.Update(v.t, uint64(i), fn, nil)
	if err != nil {
		return v, wrapOpErr("Update", err)
	}
	return Vector[T]{t: out}, nil
}

// Take returns a new Vector holding the first n elements, or the whole
// vector if n >= Len() (§4.4).
func (v Vector[T]) Take(n int) (Vector[T], error) {
	out, err := trie.Take(v.t, uint64(n), nil)
	if err != nil {
		return v, wrapOpErr("Take", err)
	}
	return Vector[T]{t: out}, nil
}

// ForEachChunk calls fn once per contiguous backing chunk, left to right
// (§4.1). fn must not retain the slice past the call: a transient mutation
// may reuse its backing array afterward.
func (v Vector[T]) ForEachChunk(fn func([]T)) {
	trie.ForEachChunk(v.t, fn)
}

// Slice materializes the vector's elements into a freshly allocated []T,
// analogous to Rope.String flattening a rope into one contiguous string.
func (v Vector[T]) Slice() []T {
	out := make([]T, 0, v.Len())
	v.ForEachChunk(func(chunk []T) { out = append(out, chunk...) })
	return out
}

// Equal reports whether v and other hold the same elements in the same
// order, using eq to compare elements (grounded in Rope.Equals's
// chunk-by-chunk comparison).
func (v Vector[T]) Equal(other Vector[T], eq func(a, b T) bool) bool {
	if v.Len() != other.Len() {
		return false
	}
	a, b := v.Slice(), other.Slice()
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// ToTransient returns a Transient seeded with v's current elements. v is
// unaffected by any subsequent mutation of the returned Transient.
func (v Vector[T]) ToTransient() Transient[T] {
	return Transient[T]{t: v.t, token: trie.NewEditToken()}
}

// String renders a debug view of v, e.g. "Vector[1 2 3]".
func (v Vector[T]) String() string {
	var b strings.Builder
	b.WriteString("Vector[")
	first := true
	v.ForEachChunk(func(chunk []T) {
		for _, x := range chunk {
			if !first {
				b.WriteByte(' ')
			}
			first = false
			fmt.Fprintf(&b, "%v", x)
		}
	})
	b.WriteByte(']')
	return b.String()
}
