package collect

import "strings"

// Collector describes how drained elements are folded into a result of type
// R. New creates an empty builder, Add folds one element in, and Merge joins
// two independently built partial results. Merge must be associative: a
// parallel drain folds disjoint partitions into separate builders and merges
// them pairwise. A nil Merge is allowed and forces a single-builder
// (sequential) fold, still correct but without a parallel speed gain.
type Collector[T, R any] struct {
	New   func() R
	Add   func(R, T) R
	Merge func(R, R) R
}

// Mergeable reports whether the collector supports combining partial builders.
func (c Collector[T, R]) Mergeable() bool { return c.Merge != nil }

// ToSlice collects elements into a slice in encounter order.
func ToSlice[T any]() Collector[T, []T] {
	return Collector[T, []T]{
		New: func() []T { return nil },
		Add: func(acc []T, v T) []T { return append(acc, v) },
		Merge: func(a, b []T) []T {
			if len(a) == 0 {
				return b
			}
			return append(a, b...)
		},
	}
}

// ToSet collects elements into a set. Duplicates collapse; order is lost.
func ToSet[T comparable]() Collector[T, map[T]struct{}] {
	return Collector[T, map[T]struct{}]{
		New: func() map[T]struct{} { return make(map[T]struct{}) },
		Add: func(acc map[T]struct{}, v T) map[T]struct{} {
			acc[v] = struct{}{}
			return acc
		},
		Merge: func(a, b map[T]struct{}) map[T]struct{} {
			if len(a) < len(b) {
				a, b = b, a
			}
			for v := range b {
				a[v] = struct{}{}
			}
			return a
		},
	}
}

// ToMap collects key-value pairs into a map. A later pair wins on key
// collision within one partition; across merged partitions the winner is
// unspecified, matching unordered-source semantics.
func ToMap[K comparable, V any](key func(V) K) Collector[V, map[K]V] {
	return Collector[V, map[K]V]{
		New: func() map[K]V { return make(map[K]V) },
		Add: func(acc map[K]V, v V) map[K]V {
			acc[key(v)] = v
			return acc
		},
		Merge: func(a, b map[K]V) map[K]V {
			if len(a) < len(b) {
				a, b = b, a
			}
			for k, v := range b {
				a[k] = v
			}
			return a
		},
	}
}

// Counting counts elements.
func Counting[T any]() Collector[T, int] {
	return Collector[T, int]{
		New:   func() int { return 0 },
		Add:   func(acc int, _ T) int { return acc + 1 },
		Merge: func(a, b int) int { return a + b },
	}
}

// Number is the closed set of numeric element kinds a primitive stream can
// carry after boundary widening.
type Number interface {
	~int | ~int64 | ~float64
}

// Sum adds numeric elements.
func Sum[T Number]() Collector[T, T] {
	return Collector[T, T]{
		New:   func() T { var zero T; return zero },
		Add:   func(acc T, v T) T { return acc + v },
		Merge: func(a, b T) T { return a + b },
	}
}

// Joined is the builder used by Joining. It tracks whether anything has been
// added so merging partial results stays associative even when some
// partitions were empty.
type Joined struct {
	b        strings.Builder
	nonEmpty bool
}

// String returns the joined result.
func (j *Joined) String() string { return j.b.String() }

// Joining concatenates string elements with sep between consecutive elements.
func Joining(sep string) Collector[string, *Joined] {
	return Collector[string, *Joined]{
		New: func() *Joined { return &Joined{} },
		Add: func(acc *Joined, v string) *Joined {
			if acc.nonEmpty {
				acc.b.WriteString(sep)
			}
			acc.b.WriteString(v)
			acc.nonEmpty = true
			return acc
		},
		Merge: func(a, b *Joined) *Joined {
			if !b.nonEmpty {
				return a
			}
			if !a.nonEmpty {
				return b
			}
			a.b.WriteString(sep)
			a.b.WriteString(b.b.String())
			return a
		},
	}
}
