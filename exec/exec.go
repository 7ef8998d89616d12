package exec

import (
	"runtime"
	"sync"
)

// Context schedules independent units of work for a parallel drain.
// It is always passed explicitly; streamkit never reaches for a hidden
// process-wide executor, so tests can substitute Synchronous().
type Context interface {
	// Workers returns the maximum number of concurrently running tasks.
	Workers() int
	// Go schedules fn. It may run fn inline when the worker budget is
	// exhausted, so callers must not rely on Go returning before fn runs.
	Go(fn func())
}

// Pool is a semaphore-bounded Context backed by plain goroutines.
type Pool struct {
	workers int
	sem     chan struct{}
}

// NewPool creates a Pool with up to n concurrent workers.
// n <= 0 uses GOMAXPROCS.
func NewPool(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		workers: n,
		sem:     make(chan struct{}, n),
	}
}

// Workers returns the pool's concurrency limit.
func (p *Pool) Workers() int { return p.workers }

// Go runs fn on a new goroutine when a worker slot is free, inline otherwise.
// Running inline instead of queueing keeps a recursive fork/join from
// deadlocking on its own children.
func (p *Pool) Go(fn func()) {
	select {
	case p.sem <- struct{}{}:
		go func() {
			defer func() { <-p.sem }()
			fn()
		}()
	default:
		fn()
	}
}

// Synchronous returns a Context that runs every task inline on the calling
// goroutine. Deterministic single-worker execution for tests.
func Synchronous() Context { return syncCtx{} }

type syncCtx struct{}

func (syncCtx) Workers() int { return 1 }
func (syncCtx) Go(fn func()) { fn() }

// --- Default context ---

var (
	defaultMu  sync.RWMutex
	defaultCtx Context = NewPool(0)
)

// Default returns the shared execution context used when a stream is drained
// without an explicit one.
func Default() Context {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultCtx
}

// SetDefault replaces the shared execution context. Configurable, not hidden:
// call this once at startup if GOMAXPROCS-wide parallelism is not wanted.
func SetDefault(c Context) {
	if c == nil {
		return
	}
	defaultMu.Lock()
	defaultCtx = c
	defaultMu.Unlock()
}
