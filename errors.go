package pvector

import (
	"errors"
	"fmt"

	"github.com/dshills/pvector/internal/trie"
)

// ErrAllocation is returned, wrapped with the failing operation's name,
// whenever the configured Allocator cannot satisfy a node allocation. The
// receiver is left exactly as it was before the call.
var ErrAllocation = trie.ErrAllocation

// ErrDiscarded is returned by a Transient method called after Discard or
// ToPersistent has already consumed it.
var ErrDiscarded = errors.New("pvector: transient already discarded")

func isAllocFault(err error) bool {
	return errors.Is(err, ErrAllocation)
}

// wrapOpErr names the operation that failed on top of an allocation fault
// coming out of internal/trie, so a caller inspecting a returned error sees
// which call it came from while errors.Is(err, ErrAllocation) still holds.
func wrapOpErr(op string, err error) error {
	if err == nil || !isAllocFault(err) {
		return err
	}
	return fmt.Errorf("pvector: %s: %w", op, err)
}
