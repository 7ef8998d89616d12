package adapter

import (
	"github.com/kbukum/streamkit/stream"
	"github.com/kbukum/streamkit/traverse"
)

// The keyed-collection direction: keys and values wrap as independent
// pipelines. Each call snapshots the map's entries separately, so draining
// one stream never affects the other. Map iteration order is randomized,
// so no positional correspondence between a keys drain and a values drain
// may be assumed.

// EntriesSeq wraps a map's entries as a sequential stream.
func EntriesSeq[K comparable, V any](m map[K]V, opts ...stream.Option) *stream.Stream[traverse.Entry[K, V]] {
	return wrap(traverse.FromMap(m), stream.Sequential, opts)
}

// EntriesPar wraps a map's entries as a parallel stream.
func EntriesPar[K comparable, V any](m map[K]V, opts ...stream.Option) *stream.Stream[traverse.Entry[K, V]] {
	return wrap(traverse.FromMap(m), stream.Parallel, opts)
}

// KeysSeq wraps a map's keys as a sequential stream.
func KeysSeq[K comparable, V any](m map[K]V, opts ...stream.Option) *stream.Stream[K] {
	return wrap(traverse.Keys(traverse.FromMap(m)), stream.Sequential, opts)
}

// KeysPar wraps a map's keys as a parallel stream.
func KeysPar[K comparable, V any](m map[K]V, opts ...stream.Option) *stream.Stream[K] {
	return wrap(traverse.Keys(traverse.FromMap(m)), stream.Parallel, opts)
}

// ValuesSeq wraps a map's values as a sequential stream.
func ValuesSeq[K comparable, V any](m map[K]V, opts ...stream.Option) *stream.Stream[V] {
	return wrap(traverse.Values(traverse.FromMap(m)), stream.Sequential, opts)
}

// ValuesPar wraps a map's values as a parallel stream.
func ValuesPar[K comparable, V any](m map[K]V, opts ...stream.Option) *stream.Stream[V] {
	return wrap(traverse.Values(traverse.FromMap(m)), stream.Parallel, opts)
}
