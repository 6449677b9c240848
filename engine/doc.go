// Package engine is the front door of vedicmath: it resolves operations
// through a precomputed handler table, caches repeated expression
// evaluations, and fans batches out across workers.
//
// ✨ What it adds on top of package dispatch:
//
//   - Handler lookup table — one entry per (operation, kind, kind)
//     combination, built at construction and immutable afterwards, so
//     resolution is a single map probe with no locking.
//   - Inline fast paths — Int32 addition and subtraction skip the table
//     entirely; the intermediate arithmetic cannot overflow 64 bits.
//   - Expression cache — a bounded, mutex-guarded LRU keyed by the exact
//     trimmed expression text. A hit bypasses parsing and dispatch and
//     reproduces the uncached outcome, rule name included.
//   - Batch evaluation — element-wise dispatch over operand slices,
//     parallelized with errgroup; output i always matches input i.
//
// ⚙️ Usage:
//
//	eng := engine.New(engine.WithCacheCapacity(256))
//	out, err := eng.EvaluateExpression("102 * 32")
//	// out.Result == 3264; the second identical call is a cache hit
//
// Statistics (operation counts, cache hit rate) are available through
// Stats; the engine only counts, it never formats or exports.
package engine
