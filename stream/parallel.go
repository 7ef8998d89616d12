package stream

import (
	"context"
	"errors"
	"math/bits"
	"sync"

	"github.com/kbukum/streamkit/collect"
	"github.com/kbukum/streamkit/traverse"
)

// partial is one side of the binary-tree reduction.
type partial[R any] struct {
	val        R
	elements   int64
	partitions int64
	err        error
}

// drainParallel splits tr recursively until partitions fall below the
// threshold (or splitting stops being supported), folds each partition into
// an independent builder, and merges the partial builders pairwise on the
// join path. The left half of every split is scheduled on the exec.Context
// while the right half continues on the current goroutine, so when the
// worker budget is exhausted the recursion degenerates to an in-order
// sequential fold instead of blocking.
//
// The first stage error cancels the remaining partitions and propagates to
// the caller unwrapped; no partial result survives.
func drainParallel[T, R any](ctx context.Context, tr traverse.Traversal[T], col collect.Collector[T, R], opts Options) (R, int64, int64, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Splitting deeper than the worker count only fragments the
	// partitions; two extra levels keep the pool busy while bounding the
	// tree for sources with unknown size.
	maxDepth := bits.Len(uint(opts.Exec.Workers())) + 2

	p := forkJoin(ctx, cancel, tr, col, opts, 0, maxDepth)
	if p.err != nil {
		var zero R
		return zero, p.elements, p.partitions, p.err
	}
	return p.val, p.elements, p.partitions, nil
}

func forkJoin[T, R any](ctx context.Context, cancel context.CancelFunc, tr traverse.Traversal[T], col collect.Collector[T, R], opts Options, depth, maxDepth int) partial[R] {
	if err := ctx.Err(); err != nil {
		return partial[R]{err: err}
	}

	if depth < maxDepth && shouldSplit(tr.SizeHint(), opts.SplitThreshold) {
		if left, ok := tr.TrySplit(); ok {
			var lp partial[R]
			var wg sync.WaitGroup
			wg.Add(1)
			opts.Exec.Go(func() {
				defer wg.Done()
				lp = forkJoin(ctx, cancel, left, col, opts, depth+1, maxDepth)
			})
			rp := forkJoin(ctx, cancel, tr, col, opts, depth+1, maxDepth)
			wg.Wait()

			if lp.err != nil || rp.err != nil {
				return partial[R]{err: joinErr(lp.err, rp.err)}
			}
			return partial[R]{
				val:        col.Merge(lp.val, rp.val),
				elements:   lp.elements + rp.elements,
				partitions: lp.partitions + rp.partitions,
			}
		}
	}

	val, n, err := foldLeaf(ctx, tr, col)
	if err != nil {
		cancel()
		return partial[R]{err: err}
	}
	return partial[R]{val: val, elements: n, partitions: 1}
}

// joinErr picks the error to surface from a join where at least one side
// failed. A partition torn down by the drain's own cancellation reports
// context.Canceled; the sibling that triggered the cancellation carries the
// stage error, which must win so the caller sees the original failure.
func joinErr(l, r error) error {
	if l != nil && !errors.Is(l, context.Canceled) {
		return l
	}
	if r != nil && !errors.Is(r, context.Canceled) {
		return r
	}
	if l != nil {
		return l
	}
	return r
}

// shouldSplit decides whether a partition of the given size hint is worth
// dividing. Unknown sizes split until the depth cap instead.
func shouldSplit(hint, threshold int) bool {
	return hint < 0 || hint > threshold
}
