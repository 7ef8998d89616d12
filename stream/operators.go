package stream

import (
	"context"

	"github.com/kbukum/streamkit/traverse"
)

// Map transforms each value using fn. The stage preserves the source's split
// capability, so a parallel drain applies fn independently per partition.
func Map[I, O any](s *Stream[I], fn func(context.Context, I) (O, error)) *Stream[O] {
	return derive(s, func(ctx context.Context) traverse.Traversal[O] {
		return &mapStage[I, O]{source: s.create(ctx), fn: fn}
	})
}

// Filter keeps only values that satisfy the predicate. Split-preserving.
func Filter[T any](s *Stream[T], fn func(T) bool) *Stream[T] {
	return derive(s, func(ctx context.Context) traverse.Traversal[T] {
		return &filterStage[T]{source: s.create(ctx), fn: fn}
	})
}

// FlatMap transforms each value into a traversal and flattens the results.
// The expansion breaks partition boundaries, so the stage cannot split; a
// parallel drain downstream of FlatMap degrades to a single partition.
func FlatMap[I, O any](s *Stream[I], fn func(context.Context, I) (traverse.Traversal[O], error)) *Stream[O] {
	return derive(s, func(ctx context.Context) traverse.Traversal[O] {
		return &flatMapStage[I, O]{source: s.create(ctx), fn: fn}
	})
}

// Tap calls fn as a side-effect for each value, then passes the value
// through unchanged. Split-preserving; under a parallel drain fn runs
// concurrently across partitions.
func Tap[T any](s *Stream[T], fn func(context.Context, T) error) *Stream[T] {
	return derive(s, func(ctx context.Context) traverse.Traversal[T] {
		return &tapStage[T]{source: s.create(ctx), fn: fn}
	})
}

// Limit passes through at most n values. Stateful across the whole sequence,
// so the stage cannot split.
func Limit[T any](s *Stream[T], n int) *Stream[T] {
	return derive(s, func(ctx context.Context) traverse.Traversal[T] {
		return &limitStage[T]{source: s.create(ctx), remaining: n}
	})
}

// Skip discards the first n values. Not splittable.
func Skip[T any](s *Stream[T], n int) *Stream[T] {
	return derive(s, func(ctx context.Context) traverse.Traversal[T] {
		return &skipStage[T]{source: s.create(ctx), toSkip: n}
	})
}

// Distinct drops values already seen. The seen-set is shared across the
// whole sequence, so the stage cannot split.
func Distinct[T comparable](s *Stream[T]) *Stream[T] {
	return derive(s, func(ctx context.Context) traverse.Traversal[T] {
		return &distinctStage[T]{source: s.create(ctx), seen: make(map[T]struct{})}
	})
}

// Concat joins streams sequentially. All values from the first stream are
// produced before the second, and so on. The result shares the first
// stream's mode and drain permit; draining the concatenation claims every
// input's permit.
func Concat[T any](streams ...*Stream[T]) *Stream[T] {
	if len(streams) == 0 {
		return New(traverse.FromSlice[T](nil), Sequential)
	}
	head := streams[0]
	out := derive(head, func(ctx context.Context) traverse.Traversal[T] {
		trs := make([]traverse.Traversal[T], len(streams))
		for i, s := range streams {
			trs[i] = s.create(ctx)
		}
		return &concatStage[T]{sources: trs}
	})
	for _, s := range streams[1:] {
		s.drained.Store(true)
	}
	return out
}

// --- Stage traversal implementations ---

type mapStage[I, O any] struct {
	source traverse.Traversal[I]
	fn     func(context.Context, I) (O, error)
}

func (t *mapStage[I, O]) Next(ctx context.Context) (O, bool, error) {
	val, ok, err := t.source.Next(ctx)
	if err != nil || !ok {
		var zero O
		return zero, false, err
	}
	out, err := t.fn(ctx, val)
	if err != nil {
		var zero O
		return zero, false, err
	}
	return out, true, nil
}

func (t *mapStage[I, O]) Close() error { return t.source.Close() }

func (t *mapStage[I, O]) TrySplit() (traverse.Traversal[O], bool) {
	left, ok := t.source.TrySplit()
	if !ok {
		return nil, false
	}
	return &mapStage[I, O]{source: left, fn: t.fn}, true
}

func (t *mapStage[I, O]) SizeHint() int { return t.source.SizeHint() }
func (t *mapStage[I, O]) Ordered() bool { return t.source.Ordered() }

type filterStage[T any] struct {
	source traverse.Traversal[T]
	fn     func(T) bool
}

func (t *filterStage[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := t.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if t.fn(val) {
			return val, true, nil
		}
	}
}

func (t *filterStage[T]) Close() error { return t.source.Close() }

func (t *filterStage[T]) TrySplit() (traverse.Traversal[T], bool) {
	left, ok := t.source.TrySplit()
	if !ok {
		return nil, false
	}
	return &filterStage[T]{source: left, fn: t.fn}, true
}

// SizeHint is an upper bound: the predicate may drop elements.
func (t *filterStage[T]) SizeHint() int { return t.source.SizeHint() }
func (t *filterStage[T]) Ordered() bool { return t.source.Ordered() }

type flatMapStage[I, O any] struct {
	source  traverse.Traversal[I]
	fn      func(context.Context, I) (traverse.Traversal[O], error)
	current traverse.Traversal[O]
}

func (t *flatMapStage[I, O]) Next(ctx context.Context) (O, bool, error) {
	for {
		if t.current != nil {
			val, ok, err := t.current.Next(ctx)
			if err != nil {
				var zero O
				return zero, false, err
			}
			if ok {
				return val, true, nil
			}
			_ = t.current.Close()
			t.current = nil
		}
		in, ok, err := t.source.Next(ctx)
		if err != nil || !ok {
			var zero O
			return zero, false, err
		}
		inner, err := t.fn(ctx, in)
		if err != nil {
			var zero O
			return zero, false, err
		}
		t.current = inner
	}
}

func (t *flatMapStage[I, O]) Close() error {
	if t.current != nil {
		_ = t.current.Close()
	}
	return t.source.Close()
}

func (t *flatMapStage[I, O]) TrySplit() (traverse.Traversal[O], bool) { return nil, false }
func (t *flatMapStage[I, O]) SizeHint() int                           { return -1 }
func (t *flatMapStage[I, O]) Ordered() bool                           { return t.source.Ordered() }

type tapStage[T any] struct {
	source traverse.Traversal[T]
	fn     func(context.Context, T) error
}

func (t *tapStage[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := t.source.Next(ctx)
	if err != nil || !ok {
		return val, ok, err
	}
	if err := t.fn(ctx, val); err != nil {
		var zero T
		return zero, false, err
	}
	return val, true, nil
}

func (t *tapStage[T]) Close() error { return t.source.Close() }

func (t *tapStage[T]) TrySplit() (traverse.Traversal[T], bool) {
	left, ok := t.source.TrySplit()
	if !ok {
		return nil, false
	}
	return &tapStage[T]{source: left, fn: t.fn}, true
}

func (t *tapStage[T]) SizeHint() int { return t.source.SizeHint() }
func (t *tapStage[T]) Ordered() bool { return t.source.Ordered() }

type limitStage[T any] struct {
	source    traverse.Traversal[T]
	remaining int
}

func (t *limitStage[T]) Next(ctx context.Context) (T, bool, error) {
	if t.remaining <= 0 {
		var zero T
		return zero, false, nil
	}
	val, ok, err := t.source.Next(ctx)
	if err != nil || !ok {
		return val, false, err
	}
	t.remaining--
	return val, true, nil
}

func (t *limitStage[T]) Close() error                            { return t.source.Close() }
func (t *limitStage[T]) TrySplit() (traverse.Traversal[T], bool) { return nil, false }
func (t *limitStage[T]) Ordered() bool                           { return t.source.Ordered() }

func (t *limitStage[T]) SizeHint() int {
	src := t.source.SizeHint()
	if src < 0 || src > t.remaining {
		return t.remaining
	}
	return src
}

type skipStage[T any] struct {
	source traverse.Traversal[T]
	toSkip int
}

func (t *skipStage[T]) Next(ctx context.Context) (T, bool, error) {
	for t.toSkip > 0 {
		_, ok, err := t.source.Next(ctx)
		if err != nil || !ok {
			var zero T
			return zero, false, err
		}
		t.toSkip--
	}
	return t.source.Next(ctx)
}

func (t *skipStage[T]) Close() error                            { return t.source.Close() }
func (t *skipStage[T]) TrySplit() (traverse.Traversal[T], bool) { return nil, false }
func (t *skipStage[T]) SizeHint() int                           { return -1 }
func (t *skipStage[T]) Ordered() bool                           { return t.source.Ordered() }

type distinctStage[T comparable] struct {
	source traverse.Traversal[T]
	seen   map[T]struct{}
}

func (t *distinctStage[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := t.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		if _, dup := t.seen[val]; !dup {
			t.seen[val] = struct{}{}
			return val, true, nil
		}
	}
}

func (t *distinctStage[T]) Close() error                            { return t.source.Close() }
func (t *distinctStage[T]) TrySplit() (traverse.Traversal[T], bool) { return nil, false }
func (t *distinctStage[T]) SizeHint() int                           { return t.source.SizeHint() }
func (t *distinctStage[T]) Ordered() bool                           { return t.source.Ordered() }

type concatStage[T any] struct {
	sources []traverse.Traversal[T]
	index   int
}

func (t *concatStage[T]) Next(ctx context.Context) (T, bool, error) {
	for t.index < len(t.sources) {
		val, ok, err := t.sources[t.index].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		t.index++
	}
	var zero T
	return zero, false, nil
}

func (t *concatStage[T]) Close() error {
	var firstErr error
	for _, src := range t.sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (t *concatStage[T]) TrySplit() (traverse.Traversal[T], bool) { return nil, false }

func (t *concatStage[T]) Ordered() bool {
	for _, src := range t.sources {
		if !src.Ordered() {
			return false
		}
	}
	return true
}

func (t *concatStage[T]) SizeHint() int {
	total := 0
	for _, src := range t.sources[t.index:] {
		h := src.SizeHint()
		if h < 0 {
			return -1
		}
		total += h
	}
	return total
}
