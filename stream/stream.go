package stream

import (
	"context"
	"sync/atomic"

	kiterrors "github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/exec"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/observability"
	"github.com/kbukum/streamkit/traverse"
)

// Mode selects how a terminal operation traverses the source.
type Mode int

const (
	// Sequential drains on the calling goroutine in encounter order.
	Sequential Mode = iota
	// Parallel splits the source recursively and drains partitions on an
	// exec.Context. A source that cannot split degrades to a single
	// partition; that is a capability gap, not an error.
	Parallel
)

func (m Mode) String() string {
	if m == Parallel {
		return "parallel"
	}
	return "sequential"
}

// ElementKind tags the element representation of a stream. The set is
// closed: sub-word numeric kinds are widened to one of these at the
// traversal boundary and never appear in a live stream.
type ElementKind int

const (
	// KindBoxed is the generic representation for any element type.
	KindBoxed ElementKind = iota
	// KindInt is the widened integer kind (int8/int16/rune/int sources).
	KindInt
	// KindLong is the 64-bit integer kind.
	KindLong
	// KindDouble is the widened floating kind (float32/float64 sources).
	KindDouble
)

func (k ElementKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindLong:
		return "int64"
	case KindDouble:
		return "float64"
	default:
		return "boxed"
	}
}

// KindOf returns the ElementKind for a static element type.
func KindOf[T any]() ElementKind {
	var v T
	switch any(v).(type) {
	case int:
		return KindInt
	case int64:
		return KindLong
	case float64:
		return KindDouble
	default:
		return KindBoxed
	}
}

// Options configures a stream's terminal behavior. Every dependency is
// injectable; nothing falls back to a hidden singleton.
type Options struct {
	// SplitThreshold is the partition size below which a parallel drain
	// stops splitting. <= 0 uses DefaultSplitThreshold.
	SplitThreshold int
	// Exec schedules partitions of a parallel drain. nil uses exec.Default().
	Exec exec.Context
	// Logger receives drain-level debug logs. nil uses logger.Nop().
	Logger *logger.Logger
	// Metrics records drain metrics when non-nil.
	Metrics *observability.Metrics
}

// DefaultSplitThreshold is the partition size below which splitting stops.
const DefaultSplitThreshold = 1024

// ApplyDefaults applies default values to stream options.
func (o *Options) ApplyDefaults() {
	if o.SplitThreshold <= 0 {
		o.SplitThreshold = DefaultSplitThreshold
	}
	if o.Exec == nil {
		o.Exec = exec.Default()
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
}

// Option mutates Options.
type Option func(*Options)

// WithSplitThreshold sets the minimum partition size for parallel splitting.
func WithSplitThreshold(n int) Option {
	return func(o *Options) { o.SplitThreshold = n }
}

// WithExec sets the execution context used by parallel drains.
func WithExec(c exec.Context) Option {
	return func(o *Options) { o.Exec = c }
}

// WithLogger sets the logger used for drain diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics enables drain metric recording.
func WithMetrics(m *observability.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Stream is a lazy, composable computation over a splittable traversal.
// Constructing or deriving a stream never touches the source; only a
// terminal operation does, and it may run exactly once per handle chain.
type Stream[T any] struct {
	create func(ctx context.Context) traverse.Traversal[T]
	mode   Mode
	kind   ElementKind
	// origin remembers the primitive kind a boxed stream was converted
	// from, so unboxing can be checked at the conversion call.
	origin  ElementKind
	opts    Options
	drained *atomic.Bool
}

// New creates a stream over source with the given evaluation mode.
func New[T any](source traverse.Traversal[T], mode Mode, opts ...Option) *Stream[T] {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	o.ApplyDefaults()
	kind := KindOf[T]()
	return &Stream[T]{
		create:  func(_ context.Context) traverse.Traversal[T] { return source },
		mode:    mode,
		kind:    kind,
		origin:  kind,
		opts:    o,
		drained: new(atomic.Bool),
	}
}

// Mode returns the stream's evaluation mode.
func (s *Stream[T]) Mode() Mode { return s.mode }

// Kind returns the stream's element kind.
func (s *Stream[T]) Kind() ElementKind { return s.kind }

// begin claims the one-shot drain permit shared by the whole derivation
// chain. The second terminal anywhere in the chain fails with ErrCodeConsumed.
func (s *Stream[T]) begin(op string) error {
	if !s.drained.CompareAndSwap(false, true) {
		return kiterrors.Consumed(op)
	}
	return nil
}

// derive builds a downstream stream sharing the drain permit and options.
func derive[I, O any](s *Stream[I], create func(ctx context.Context) traverse.Traversal[O]) *Stream[O] {
	kind := KindOf[O]()
	return &Stream[O]{
		create:  create,
		mode:    s.mode,
		kind:    kind,
		origin:  kind,
		opts:    s.opts,
		drained: s.drained,
	}
}
