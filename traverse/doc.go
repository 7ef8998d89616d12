// Package traverse defines the splittable traversal abstraction that feeds
// streams: a one-shot, pull-based walk over a collection that may optionally
// divide its remaining elements into two disjoint halves for parallel
// consumption.
//
// Sources over indexable snapshots (FromSlice, FromMap) split by halving the
// remaining index range. Generator-style sources (FromSeq, FromChan,
// FromNext) cannot split; wrapping one in a parallel stream silently
// degrades to single-partition execution rather than failing.
//
// Traversals assume the underlying collection is not mutated while they are
// live. Concurrent mutation during traversal is undefined behavior.
package traverse
