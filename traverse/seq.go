package traverse

import (
	"context"
	"iter"
)

// FromSeq creates an ordered, non-splittable traversal over a Go iterator.
// The sequence is pulled lazily; Close releases the pull goroutine.
func FromSeq[T any](seq iter.Seq[T]) Traversal[T] {
	next, stop := iter.Pull(seq)
	return &seqTraversal[T]{next: next, stop: stop}
}

// FromSeq2 creates an ordered, non-splittable entries traversal over a
// two-element Go iterator.
func FromSeq2[K comparable, V any](seq iter.Seq2[K, V]) Traversal[Entry[K, V]] {
	next, stop := iter.Pull2(seq)
	return &seq2Traversal[K, V]{next: next, stop: stop}
}

type seqTraversal[T any] struct {
	next func() (T, bool)
	stop func()
}

func (t *seqTraversal[T]) Next(_ context.Context) (T, bool, error) {
	val, ok := t.next()
	if !ok {
		var zero T
		return zero, false, nil
	}
	return val, true, nil
}

func (t *seqTraversal[T]) Close() error {
	t.stop()
	return nil
}

func (t *seqTraversal[T]) TrySplit() (Traversal[T], bool) { return nil, false }
func (t *seqTraversal[T]) SizeHint() int                  { return -1 }
func (t *seqTraversal[T]) Ordered() bool                  { return true }

type seq2Traversal[K comparable, V any] struct {
	next func() (K, V, bool)
	stop func()
}

func (t *seq2Traversal[K, V]) Next(_ context.Context) (Entry[K, V], bool, error) {
	k, v, ok := t.next()
	if !ok {
		return Entry[K, V]{}, false, nil
	}
	return Entry[K, V]{Key: k, Value: v}, true, nil
}

func (t *seq2Traversal[K, V]) Close() error {
	t.stop()
	return nil
}

func (t *seq2Traversal[K, V]) TrySplit() (Traversal[Entry[K, V]], bool) { return nil, false }
func (t *seq2Traversal[K, V]) SizeHint() int                            { return -1 }
func (t *seq2Traversal[K, V]) Ordered() bool                            { return true }
