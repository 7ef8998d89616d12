package traverse

import "context"

// Mapped applies a pure element conversion to every value produced by source.
// Unlike pipeline-level transformation stages, Mapped lives at the traversal
// boundary and therefore preserves the source's split capability: splitting a
// mapped traversal splits the source and wraps each half.
func Mapped[S, T any](source Traversal[S], fn func(S) T) Traversal[T] {
	return &mappedTraversal[S, T]{source: source, fn: fn}
}

type mappedTraversal[S, T any] struct {
	source Traversal[S]
	fn     func(S) T
}

func (t *mappedTraversal[S, T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := t.source.Next(ctx)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	return t.fn(val), true, nil
}

func (t *mappedTraversal[S, T]) Close() error { return t.source.Close() }

func (t *mappedTraversal[S, T]) TrySplit() (Traversal[T], bool) {
	left, ok := t.source.TrySplit()
	if !ok {
		return nil, false
	}
	return &mappedTraversal[S, T]{source: left, fn: t.fn}, true
}

func (t *mappedTraversal[S, T]) SizeHint() int { return t.source.SizeHint() }
func (t *mappedTraversal[S, T]) Ordered() bool { return t.source.Ordered() }
