package traverse

import "context"

// FromSlice creates an ordered, splittable traversal over items.
// The slice must not be mutated while the traversal is live.
func FromSlice[T any](items []T) Traversal[T] {
	return &sliceTraversal[T]{items: items, hi: len(items), ordered: true}
}

// sliceTraversal walks items[lo:hi). Splitting halves the remaining range:
// the returned traversal owns [lo, mid) and the receiver keeps [mid, hi),
// so sibling halves never touch the same index.
type sliceTraversal[T any] struct {
	items   []T
	lo, hi  int
	ordered bool
}

func (t *sliceTraversal[T]) Next(_ context.Context) (T, bool, error) {
	if t.lo >= t.hi {
		var zero T
		return zero, false, nil
	}
	val := t.items[t.lo]
	t.lo++
	return val, true, nil
}

func (t *sliceTraversal[T]) Close() error { return nil }

func (t *sliceTraversal[T]) TrySplit() (Traversal[T], bool) {
	remaining := t.hi - t.lo
	if remaining < 2 {
		return nil, false
	}
	mid := t.lo + remaining/2
	left := &sliceTraversal[T]{items: t.items, lo: t.lo, hi: mid, ordered: t.ordered}
	t.lo = mid
	return left, true
}

func (t *sliceTraversal[T]) SizeHint() int { return t.hi - t.lo }
func (t *sliceTraversal[T]) Ordered() bool { return t.ordered }
