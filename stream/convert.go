package stream

import (
	"context"

	kiterrors "github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/traverse"
)

// Box re-tags a primitive stream as a boxed stream. The origin kind is
// recorded so the conversion can be reversed with the matching Unbox
// function and no other. Boxing a stream that is already boxed is valid
// and changes nothing. Valid only on a not-yet-drained handle; the boxed
// stream shares the original's drain permit.
func Box[T any](s *Stream[T]) *Stream[any] {
	out := derive(s, func(ctx context.Context) traverse.Traversal[any] {
		return traverse.Mapped(s.create(ctx), func(v T) any { return v })
	})
	out.kind = KindBoxed
	if s.kind == KindBoxed {
		out.origin = s.origin
	} else {
		out.origin = s.kind
	}
	return out
}

// UnboxInt re-tags a boxed stream back to the int kind. The boxed stream
// must carry the int origin kind; anything else fails with TypeMismatch at
// the conversion call rather than at drain time.
func UnboxInt(s *Stream[any]) (*Stream[int], error) {
	return unbox[int](s, KindInt)
}

// UnboxInt64 re-tags a boxed stream back to the int64 kind.
func UnboxInt64(s *Stream[any]) (*Stream[int64], error) {
	return unbox[int64](s, KindLong)
}

// UnboxFloat64 re-tags a boxed stream back to the float64 kind.
func UnboxFloat64(s *Stream[any]) (*Stream[float64], error) {
	return unbox[float64](s, KindDouble)
}

func unbox[T any](s *Stream[any], want ElementKind) (*Stream[T], error) {
	if s.origin != want {
		return nil, kiterrors.TypeMismatch(want.String(), s.origin.String())
	}
	out := derive(s, func(ctx context.Context) traverse.Traversal[T] {
		return &unboxStage[T]{source: s.create(ctx), want: want}
	})
	return out, nil
}

// unboxStage asserts each boxed element back to the primitive type. The
// per-element assertion guards boxed streams whose elements were replaced
// by a dynamically-typed stage after boxing.
type unboxStage[T any] struct {
	source traverse.Traversal[any]
	want   ElementKind
}

func (t *unboxStage[T]) Next(ctx context.Context) (T, bool, error) {
	val, ok, err := t.source.Next(ctx)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	typed, ok := val.(T)
	if !ok {
		var zero T
		return zero, false, kiterrors.TypeMismatch(t.want.String(), kindName(val))
	}
	return typed, true, nil
}

func (t *unboxStage[T]) Close() error { return t.source.Close() }

func (t *unboxStage[T]) TrySplit() (traverse.Traversal[T], bool) {
	left, ok := t.source.TrySplit()
	if !ok {
		return nil, false
	}
	return &unboxStage[T]{source: left, want: t.want}, true
}

func (t *unboxStage[T]) SizeHint() int { return t.source.SizeHint() }
func (t *unboxStage[T]) Ordered() bool { return t.source.Ordered() }

func kindName(v any) string {
	switch v.(type) {
	case int:
		return KindInt.String()
	case int64:
		return KindLong.String()
	case float64:
		return KindDouble.String()
	default:
		return KindBoxed.String()
	}
}
