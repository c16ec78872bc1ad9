// Package pipeline provides composable, lazy, single-pass sequence combinators.
//
// A Pipeline is a recipe: no work happens until values are pulled via
// Collect, Drain, ForEach, All or one of the scalar terminals. Each pull
// starts a fresh enumeration whose Iterator owns all of its state (buffers,
// counters, seen sets), and each stage pulls from the previous stage on
// demand. Every iterator closes its upstream when it is closed, so stopping
// early (ForEachWhile, breaking out of All, Take) releases the whole chain.
//
// # Operators
//
// Structural:
//
//   - ToIndexed, ToIndexedBy, ToKeyPair, HashedPair: pair values with positions or keys
//   - Pad, PadWith: append N fillers after the upstream
//   - Exclude: drop a range of positions
//   - Move: relocate a contiguous block, in either direction
//   - Split, SplitBy: cut into runs by separator or by a neighbour relation
//   - Combine: interleave two pipelines until both are exhausted
//   - Flatten, FlattenSlices, FlatMap, Concat: flatten nested sequences
//   - Batch, Window: fixed-size chunks and sliding windows
//
// Filtering:
//
//   - Filter, Without, WhereIf, WithoutIf, Equals, Diff, Between
//   - DistinctBy, DistinctByFunc: first occurrence per key
//
// Ranking and aggregation:
//
//   - Rank, RankDescending, RankFunc: top-K as RankElement values
//   - CountBy, LongCountBy: per-key counts in first-seen order
//   - Fold, AggregateFor, Reduce, First, Last, Single, Sum, Average
//
// Lookup and equality:
//
//   - ElementAtOr, ElementByKey, ElementByKeyOrDefault, SequenceEqualBy
//
// Sampling and generation:
//
//   - Rand: distinct random sample
//   - FromSlice, FromSeq, FromPush, FromProducers, Iterate
//
// Combinators that take an index, count or size validate it immediately and
// return an INVALID_ARGUMENT error instead of a pipeline. Errors found while
// pulling are returned from Next and surface from the terminal.
//
// # Usage
//
//	src := pipeline.FromSlice([]int{0, 1, 2, 3, 4})
//	trimmed, err := pipeline.Exclude(src, 1, 2)
//	if err != nil {
//	    return err
//	}
//	got, _ := pipeline.Collect(ctx, trimmed) // [0 3 4]
package pipeline
