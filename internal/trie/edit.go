package trie

// EditToken identifies a transient's exclusive right to mutate nodes it has
// stamped. Identity is the pointer itself, never the contents — two tokens
// are the same token only if they are the same allocation.
//
// rvalue marks a one-shot token minted for a single §4.7 rvalue-optimized
// call. It is never handed to a caller and never reused across calls: it
// exists only so owned() can tell "this call was explicitly routed through
// Move" apart from an ordinary persistent call (token == nil) or an ordinary
// transient call (a caller-held, reusable token). Gating the refcount check
// on this flag, rather than on cfg.UseTransientRvalues alone, is what keeps
// the optimization from firing on ordinary persistent calls that happen to
// touch a uniquely-referenced node — see node.go's owned().
type EditToken struct {
	rvalue bool
}

// NewEditToken allocates a fresh, uniquely-identified token for a transient.
func NewEditToken() *EditToken {
	return &EditToken{}
}

// NewRvalueToken allocates a fresh, single-use token for one §4.7
// rvalue-optimized call. Used internally by the root package's Move
// wrapper; never exposed to a Transient.
func NewRvalueToken() *EditToken {
	return &EditToken{rvalue: true}
}
