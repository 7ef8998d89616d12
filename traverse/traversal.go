package traverse

import "context"

// Traversal provides pull-based, one-shot access to the elements of a
// collection. Structurally compatible with the pipeline Iterator shape:
// Next returns (zero, false, nil) when exhausted.
//
// A Traversal may additionally support splitting: TrySplit divides the
// remaining, not-yet-produced elements into two disjoint halves with no
// omission and no overlap. After a successful split the receiver continues
// as the second half and the returned traversal owns the first half, so an
// ordered source splits order-consistently. Once split, the two halves may
// be consumed from different goroutines without synchronization, assuming
// the underlying collection is not mutated during traversal.
type Traversal[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the traversal.
	Close() error
	// TrySplit hands off a prefix of the remaining elements as a new
	// traversal. Returns (nil, false) when the source cannot split.
	TrySplit() (Traversal[T], bool)
	// SizeHint returns the exact or estimated number of remaining elements,
	// or -1 when unknown.
	SizeHint() int
	// Ordered reports whether the traversal produces elements in a defined,
	// repeatable order.
	Ordered() bool
}

// FromNext creates a non-splittable traversal from a pull function.
// fn returns (zero, false) when exhausted.
func FromNext[T any](fn func() (T, bool)) Traversal[T] {
	return &funcTraversal[T]{fn: fn}
}

type funcTraversal[T any] struct {
	fn   func() (T, bool)
	done bool
}

func (t *funcTraversal[T]) Next(_ context.Context) (T, bool, error) {
	if t.done {
		var zero T
		return zero, false, nil
	}
	val, ok := t.fn()
	if !ok {
		t.done = true
		var zero T
		return zero, false, nil
	}
	return val, true, nil
}

func (t *funcTraversal[T]) Close() error                   { return nil }
func (t *funcTraversal[T]) TrySplit() (Traversal[T], bool) { return nil, false }
func (t *funcTraversal[T]) SizeHint() int                  { return -1 }
func (t *funcTraversal[T]) Ordered() bool                  { return true }

// FromChan creates a non-splittable traversal that receives from ch until it
// is closed. Receive order is the send order, so the traversal is ordered.
func FromChan[T any](ch <-chan T) Traversal[T] {
	return &chanTraversal[T]{ch: ch}
}

type chanTraversal[T any] struct {
	ch <-chan T
}

func (t *chanTraversal[T]) Next(ctx context.Context) (T, bool, error) {
	select {
	case val, open := <-t.ch:
		if !open {
			var zero T
			return zero, false, nil
		}
		return val, true, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

func (t *chanTraversal[T]) Close() error                   { return nil }
func (t *chanTraversal[T]) TrySplit() (Traversal[T], bool) { return nil, false }
func (t *chanTraversal[T]) SizeHint() int                  { return -1 }
func (t *chanTraversal[T]) Ordered() bool                  { return true }
