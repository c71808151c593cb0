package pvector

import "github.com/dshills/pvector/internal/trie"

// Rvalue wraps a Vector the caller is declaring will not be used again,
// unlocking the §4.7 rvalue-mutation fast path: the next call made through
// it mutates nodes in place instead of cloning them, provided
// WithTransientRvalues is enabled and the touched nodes are uniquely
// referenced at that moment. If either condition fails, the call silently
// falls back to the ordinary persistent path and behaves exactly like the
// equivalent Vector method.
//
// This mirrors C++'s `std::move(v).push_back(x)`: the type system does not
// stop the caller from reading v afterward, but doing so is a contract
// violation with the same status as reading a moved-from value in C++ — the
// value observed is unspecified, not corrupted-by-design. Every ordinary
// Vector method, including plain PushBack/Set/Update/Take on a value the
// caller keeps using, never takes this path regardless of how the value
// happens to be referenced: only a call routed through Move can.
type Rvalue[T any] struct {
	t trie.Trie[T]
}

// Move marks v as expiring for exactly the one call chained onto the
// result. v itself is left intact by Move — the contract violation, if any,
// is in the caller reading v (or any copy of v made before or after this
// call) afterward, not in calling Move itself.
func Move[T any](v Vector[T]) Rvalue[T] {
	return Rvalue[T]{t: v.t}
}

// PushBack is Rvalue's analog of Vector.PushBack (§4.7's "analogous laws for
// set, update, take" extend to push_back itself).
func (r Rvalue[T]) PushBack(value T) (Vector[T], error) {
	out, err := trie.PushBack(r.t, value, trie.NewRvalueToken())
	if err != nil {
		return Vector[T]{t: r.t}, wrapOpErr("Rvalue.PushBack", err)
	}
	return Vector[T]{t: out}, nil
}

// Set is Rvalue's analog of Vector.Set.
func (r Rvalue[T]) Set(i int, value T) (Vector[T], error) {
	out, err := trie.Set(r.t, uint64(i), value, trie.NewRvalueToken())
	if err != nil {
		return Vector[T]{t: r.t}, wrapOpErr("Rvalue.Set", err)
	}
	return Vector[T]{t: out}, nil
}

// Update is Rvalue's analog of Vector.Update.
func (r Rvalue[T]) Update(i int, fn func(T) T) (Vector[T], error) {
	out, err := trie.Update(r.t, uint64(i), fn, trie.NewRvalueToken())
	if err != nil {
		return Vector[T]{t: r.t}, wrapOpErr("Rvalue.Update", err)
	}
	return Vector[T]{t: out}, nil
}

// Take is Rvalue's analog of Vector.Take.
func (r Rvalue[T]) Take(n int) (Vector[T], error) {
	out, err := trie.Take(r.t, uint64(n), trie.NewRvalueToken())
	if err != nil {
		return Vector[T]{t: r.t}, wrapOpErr("Rvalue.Take", err)
	}
	return Vector[T]{t: out}, nil
}
