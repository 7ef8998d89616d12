package adapter

import (
	"github.com/kbukum/streamkit/stream"
	"github.com/kbukum/streamkit/traverse"
)

// wrap is the single construction point behind the whole entry-point
// family: every exported function below differs only in element kind
// (fixed by its parameter type, widened at the traversal boundary) and
// evaluation mode.
func wrap[T any](src traverse.Traversal[T], mode stream.Mode, opts []stream.Option) *stream.Stream[T] {
	return stream.New(src, mode, opts...)
}

// Seq wraps any traversal as a sequential boxed stream.
func Seq[T any](src traverse.Traversal[T], opts ...stream.Option) *stream.Stream[T] {
	return wrap(src, stream.Sequential, opts)
}

// Par wraps any traversal as a parallel boxed stream. A source that cannot
// split still drains correctly, in a single partition.
func Par[T any](src traverse.Traversal[T], opts ...stream.Option) *stream.Stream[T] {
	return wrap(src, stream.Parallel, opts)
}

// IntSeq wraps an int traversal as a sequential int-kind stream.
func IntSeq(src traverse.Traversal[int], opts ...stream.Option) *stream.Stream[int] {
	return wrap(src, stream.Sequential, opts)
}

// IntPar wraps an int traversal as a parallel int-kind stream.
func IntPar(src traverse.Traversal[int], opts ...stream.Option) *stream.Stream[int] {
	return wrap(src, stream.Parallel, opts)
}

// Int8Seq widens an int8 traversal to int and wraps it sequentially.
func Int8Seq(src traverse.Traversal[int8], opts ...stream.Option) *stream.Stream[int] {
	return wrap(traverse.Widen8(src), stream.Sequential, opts)
}

// Int8Par widens an int8 traversal to int and wraps it in parallel mode.
func Int8Par(src traverse.Traversal[int8], opts ...stream.Option) *stream.Stream[int] {
	return wrap(traverse.Widen8(src), stream.Parallel, opts)
}

// Int16Seq widens an int16 traversal to int and wraps it sequentially.
func Int16Seq(src traverse.Traversal[int16], opts ...stream.Option) *stream.Stream[int] {
	return wrap(traverse.Widen16(src), stream.Sequential, opts)
}

// Int16Par widens an int16 traversal to int and wraps it in parallel mode.
func Int16Par(src traverse.Traversal[int16], opts ...stream.Option) *stream.Stream[int] {
	return wrap(traverse.Widen16(src), stream.Parallel, opts)
}

// RuneSeq widens a rune traversal to int and wraps it sequentially.
func RuneSeq(src traverse.Traversal[rune], opts ...stream.Option) *stream.Stream[int] {
	return wrap(traverse.WidenRune(src), stream.Sequential, opts)
}

// RunePar widens a rune traversal to int and wraps it in parallel mode.
func RunePar(src traverse.Traversal[rune], opts ...stream.Option) *stream.Stream[int] {
	return wrap(traverse.WidenRune(src), stream.Parallel, opts)
}

// Int64Seq wraps an int64 traversal as a sequential long-kind stream.
func Int64Seq(src traverse.Traversal[int64], opts ...stream.Option) *stream.Stream[int64] {
	return wrap(src, stream.Sequential, opts)
}

// Int64Par wraps an int64 traversal as a parallel long-kind stream.
func Int64Par(src traverse.Traversal[int64], opts ...stream.Option) *stream.Stream[int64] {
	return wrap(src, stream.Parallel, opts)
}

// Float32Seq widens a float32 traversal to float64 and wraps it sequentially.
func Float32Seq(src traverse.Traversal[float32], opts ...stream.Option) *stream.Stream[float64] {
	return wrap(traverse.WidenFloat32(src), stream.Sequential, opts)
}

// Float32Par widens a float32 traversal to float64 and wraps it in parallel mode.
func Float32Par(src traverse.Traversal[float32], opts ...stream.Option) *stream.Stream[float64] {
	return wrap(traverse.WidenFloat32(src), stream.Parallel, opts)
}

// Float64Seq wraps a float64 traversal as a sequential double-kind stream.
func Float64Seq(src traverse.Traversal[float64], opts ...stream.Option) *stream.Stream[float64] {
	return wrap(src, stream.Sequential, opts)
}

// Float64Par wraps a float64 traversal as a parallel double-kind stream.
func Float64Par(src traverse.Traversal[float64], opts ...stream.Option) *stream.Stream[float64] {
	return wrap(src, stream.Parallel, opts)
}
