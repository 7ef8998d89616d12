package adapter

import "github.com/kbukum/streamkit/stream"

// Reversible re-tagging between primitive and boxed streams. A boxed
// stream unboxes only to the exact kind it was boxed from: boxed-int to
// int, never boxed-int to float64. The mismatched direction fails with a
// TypeMismatch error at the conversion call.

// ToBoxed re-tags a primitive stream as a boxed stream.
func ToBoxed[T any](s *stream.Stream[T]) *stream.Stream[any] {
	return stream.Box(s)
}

// ToIntStream re-tags a boxed stream carrying the int origin back to int.
func ToIntStream(s *stream.Stream[any]) (*stream.Stream[int], error) {
	return stream.UnboxInt(s)
}

// ToInt64Stream re-tags a boxed stream carrying the int64 origin back to int64.
func ToInt64Stream(s *stream.Stream[any]) (*stream.Stream[int64], error) {
	return stream.UnboxInt64(s)
}

// ToFloat64Stream re-tags a boxed stream carrying the float64 origin back to float64.
func ToFloat64Stream(s *stream.Stream[any]) (*stream.Stream[float64], error) {
	return stream.UnboxFloat64(s)
}
