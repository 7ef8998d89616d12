// Package stream provides lazy, composable pipelines over splittable
// traversals.
//
// A Stream is a deferred computation: constructing or deriving one never
// touches the source. Work happens at a terminal operation (Collect,
// ToSlice, ForEach, Reduce, Count, First), which blocks until complete and
// may run once per handle chain. A second terminal anywhere in the chain
// fails with ErrCodeConsumed.
//
// # Evaluation modes
//
// A Sequential stream drains on the calling goroutine in encounter order.
// A Parallel stream splits its source recursively and folds partitions on
// an injected exec.Context, merging partial builders pairwise. Parallelism
// needs three capabilities to engage: the source must split, the collector
// must merge, and the terminal must be Collect-shaped. When any is missing
// the drain silently degrades to a single partition, still correct but
// not faster.
//
// # Ordering
//
// For an ordered source and pure stages, a parallel drain produces exactly
// the sequential result. Unordered sources (maps) guarantee the same
// multiset, not the same sequence.
//
// # Operators
//
// Map, Filter and Tap preserve the source's split capability, so a
// parallel drain applies them independently per partition. FlatMap, Limit,
// Skip, Distinct and Concat are stateful across the whole sequence: they
// stay correct in any mode but force single-partition drains downstream.
package stream
