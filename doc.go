// Package lirs implements a [Cache] using the Low Inter-reference Recency
// Set (LIRS) replacement policy.
//
// LIRS is a scan- and loop-resistant policy that separates keys by their
// Inter-Reference Recency (IRR): the number of distinct keys seen between
// two consecutive references to the same key, rather than by simple
// recency (as LRU does). Keys with small IRR are protected from eviction;
// keys with large IRR compete for a small resident pool and are evicted
// first. The following is a summary (intended for maintainers) of the
// bookkeeping used to realize that policy; see Jiang & Zhang's [LIRS paper]
// for the full algorithm.
//
// Glossary and invariants:
//
//   - IRR (Inter-Reference Recency)
//
//     Distinct keys seen between two consecutive references to the same
//     key. LIRS approximates a key's IRR using its position in stack S.
//
//   - LIR (Low IRR) key
//
//     Always resident, protected from eviction.
//
//   - HIR (High IRR) key
//
//     May be resident (an eviction candidate in Q) or non-resident (a
//     ghost, metadata-only).
//
//   - Ghost entry
//
//     A non-resident HIR key whose metadata is kept in S so a later
//     re-reference can promote it back to LIR.
//
//   - Stack S
//
//     Ordered sequence tracking recent references; its bottom is always an
//     LIR key (once S is non-empty). May contain ghosts.
//
//   - Queue Q
//
//     Ordered sequence of resident HIR keys; eviction pops its bottom.
//
// Operations:
//
//   - Promotion
//
//     When a resident HIR key is re-referenced while still present in S,
//     it becomes LIR, displacing the LIR key currently at the bottom of S
//     (which demotes to HIR).
//
//   - Demotion
//
//     The LIR key evicted from the bottom of S during a promotion; it
//     becomes HIR and moves to the top of Q.
//
//   - Pruning
//
//     Peeling HIR keys (ghost or resident) off the bottom of S until an
//     LIR key sits at the bottom, deleting any ghost metadata encountered
//     along the way.
//
//   - Eviction
//
//     Removing the key at the bottom of Q to free a resident slot. Its
//     value is discarded; if it is still present in S, its metadata
//     survives as a ghost, otherwise its entry record is deleted entirely.
//
// Regimes:
//
//   - Warm-up
//
//     Fewer than lir_capacity distinct keys have ever been inserted; every
//     new key is admitted as LIR and no eviction occurs.
//
//   - Steady state
//
//     lir_capacity distinct keys have been seen; every new key is admitted
//     as HIR and exactly one resident HIR key is evicted to make room.
//
// Counts and targets:
//
//   - hir_capacity = max(1, floor(capacity * hir_ratio)), hir_ratio in the
//     open interval (0,1).
//
//   - lir_capacity = capacity - hir_capacity.
//
//   - lir_count never decreases below lir_capacity once the warm-up
//     boundary (lir_count == lir_capacity) is reached: every demotion is
//     paired with a promotion.
//
// [LIRS paper]: https://dl.acm.org/doi/10.1145/511334.511340
package lirs
