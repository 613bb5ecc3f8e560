package lirs

import "github.com/kevburnsjr/lirs/internal/seqlist"

// Classification describes how an introspection accessor should report a
// key: its LIR/HIR status, and (for S) whether a HIR key is resident or a
// ghost.
type Classification int

const (
	// LIR marks a protected, always-resident key.
	LIR Classification = iota
	// HIRResident marks a resident eviction candidate.
	HIRResident
	// HIRGhost marks a non-resident, metadata-only key.
	HIRGhost
	// HIR marks a resident eviction candidate, used by the value-store
	// iterator where a ghost can never appear.
	HIR
)

// entry is the per-key metadata record: LIR/HIR status, residency, and
// positional handles into the stack and queue. Either handle may be nil
// depending on which of S and Q currently holds the key; isResident
// mirrors presence in the value store.
type entry[K comparable] struct {
	isLIR      bool
	isResident bool
	sElem      *seqlist.Element[K]
	qElem      *seqlist.Element[K]
}

func (e *entry[K]) inS() bool { return e.sElem != nil }
func (e *entry[K]) inQ() bool { return e.qElem != nil }
