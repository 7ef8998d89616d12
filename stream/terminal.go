package stream

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/traverse"
)

// Collect drains the stream into a collection built by col. This is the
// terminal operation: it is the first point at which the source is
// traversed, it blocks until every partition completes, and it may be
// called once per handle chain.
//
// In Parallel mode with a mergeable collector the source is split
// recursively and partitions fold on the stream's exec.Context; partial
// builders merge pairwise, left before right, so ordered sources produce
// the same result as a sequential drain. A collector without Merge, or a
// source that cannot split, folds in a single partition.
func Collect[T, R any](ctx context.Context, s *Stream[T], col collect.Collector[T, R]) (R, error) {
	var zero R
	if err := s.begin("Collect"); err != nil {
		return zero, err
	}
	return runDrain(ctx, s, "collect", observability.SpanCollect, col)
}

// ToSlice drains the stream into a slice in encounter order.
func ToSlice[T any](ctx context.Context, s *Stream[T]) ([]T, error) {
	if err := s.begin("ToSlice"); err != nil {
		return nil, err
	}
	return runDrain(ctx, s, "to_slice", observability.SpanCollect, collect.ToSlice[T]())
}

// Count drains the stream and returns the number of elements.
func Count[T any](ctx context.Context, s *Stream[T]) (int, error) {
	if err := s.begin("Count"); err != nil {
		return 0, err
	}
	return runDrain(ctx, s, "count", observability.SpanCollect, collect.Counting[T]())
}

// ForEach pulls every value and calls fn for each, on the calling
// goroutine and in encounter order regardless of the stream's mode.
func ForEach[T any](ctx context.Context, s *Stream[T], fn func(context.Context, T) error) error {
	if err := s.begin("ForEach"); err != nil {
		return err
	}
	ctx, span := observability.StartSpan(ctx, observability.SpanDrain)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrMode, s.mode.String())
	tr := s.create(ctx)
	defer tr.Close()
	for {
		val, ok, err := tr.Next(ctx)
		if err != nil {
			observability.SetSpanError(ctx, err)
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			observability.SetSpanError(ctx, err)
			return err
		}
	}
}

// Reduce folds every value into a single scalar on the calling goroutine.
// fn need not be associative; the fold is always sequential. Use Collect
// with a mergeable collector for a parallel reduction.
func Reduce[T, R any](ctx context.Context, s *Stream[T], init R, fn func(R, T) R) (R, error) {
	if err := s.begin("Reduce"); err != nil {
		return init, err
	}
	col := collect.Collector[T, R]{
		New: func() R { return init },
		Add: fn,
	}
	return runDrain(ctx, s, "reduce", observability.SpanReduce, col)
}

// First drains at most one element and returns it, with ok=false for an
// empty stream.
func First[T any](ctx context.Context, s *Stream[T]) (T, bool, error) {
	var zero T
	if err := s.begin("First"); err != nil {
		return zero, false, err
	}
	tr := s.create(ctx)
	defer tr.Close()
	return tr.Next(ctx)
}

// runDrain executes the terminal fold with drain diagnostics around it.
func runDrain[T, R any](ctx context.Context, s *Stream[T], op, span string, col collect.Collector[T, R]) (R, error) {
	drainID := uuid.NewString()
	ctx = logger.ContextWithDrainID(ctx, drainID)
	ctx, sp := observability.StartSpan(ctx, span)
	defer sp.End()
	observability.SetSpanAttribute(ctx, observability.AttrDrainID, drainID)
	observability.SetSpanAttribute(ctx, observability.AttrMode, s.mode.String())
	observability.SetSpanAttribute(ctx, observability.AttrKind, s.kind.String())
	if s.opts.Metrics != nil {
		s.opts.Metrics.RecordDrainStart(ctx)
	}

	start := time.Now()
	tr := s.create(ctx)
	defer tr.Close()

	var (
		result     R
		elements   int64
		partitions int64
		err        error
	)
	if s.mode == Parallel && col.Mergeable() {
		result, elements, partitions, err = drainParallel(ctx, tr, col, s.opts)
	} else {
		result, elements, err = foldLeaf(ctx, tr, col)
		partitions = 1
	}
	duration := time.Since(start)

	status := "ok"
	if err != nil {
		status = "error"
		observability.SetSpanError(ctx, err)
		observability.SetSpanAttribute(ctx, observability.AttrErrorMessage, err.Error())
		if s.opts.Metrics != nil {
			s.opts.Metrics.RecordError(ctx, op)
		}
	}
	observability.SetSpanAttribute(ctx, observability.AttrStatus, status)
	observability.SetSpanAttribute(ctx, observability.AttrElements, elements)
	observability.SetSpanAttribute(ctx, observability.AttrPartitions, partitions)
	observability.SetSpanAttribute(ctx, observability.AttrDurationMs, duration.Milliseconds())
	if s.opts.Metrics != nil {
		s.opts.Metrics.RecordDrainEnd(ctx, op, s.mode.String(), status, elements, partitions, duration)
	}

	fields := logger.Fields(
		logger.FieldDrainID, drainID,
		logger.FieldOperation, op,
		logger.FieldMode, s.mode.String(),
		logger.FieldKind, s.kind.String(),
		logger.FieldElements, elements,
		logger.FieldPartitions, partitions,
		logger.FieldDuration, duration.Milliseconds(),
	)
	if err != nil {
		s.opts.Logger.Error("drain failed", logger.MergeWithError(fields, err))
		var zero R
		return zero, err
	}
	s.opts.Logger.Debug("drain completed", fields)
	return result, nil
}

// foldLeaf folds a whole traversal into a single builder.
func foldLeaf[T, R any](ctx context.Context, tr traverse.Traversal[T], col collect.Collector[T, R]) (R, int64, error) {
	acc := col.New()
	var n int64
	for {
		if err := ctx.Err(); err != nil {
			return acc, n, err
		}
		val, ok, err := tr.Next(ctx)
		if err != nil {
			return acc, n, err
		}
		if !ok {
			return acc, n, nil
		}
		acc = col.Add(acc, val)
		n++
	}
}
