package traverse

// Entry is a single key-value pair produced by a map traversal.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// FromMap creates a splittable traversal over the entries of m.
// The entries are snapshotted at creation time, so later splits partition a
// fixed set without touching the map again; mutating m after FromMap returns
// does not affect the traversal. Map iteration order is randomized, so the
// traversal declares itself unordered: repeated wraps of the same map may
// produce the same multiset in different sequences.
func FromMap[K comparable, V any](m map[K]V) Traversal[Entry[K, V]] {
	entries := make([]Entry[K, V], 0, len(m))
	for k, v := range m {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return &sliceTraversal[Entry[K, V]]{items: entries, hi: len(entries), ordered: false}
}

// Keys projects an entries traversal to keys only. The projection preserves
// the source's split capability, size hint, and (un)orderedness.
func Keys[K comparable, V any](entries Traversal[Entry[K, V]]) Traversal[K] {
	return Mapped(entries, func(e Entry[K, V]) K { return e.Key })
}

// Values projects an entries traversal to values only.
func Values[K comparable, V any](entries Traversal[Entry[K, V]]) Traversal[V] {
	return Mapped(entries, func(e Entry[K, V]) V { return e.Value })
}
