package exec

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestNewPool_Workers(t *testing.T) {
	p := NewPool(4)
	if p.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", p.Workers())
	}
}

func TestNewPool_DefaultsToGOMAXPROCS(t *testing.T) {
	p := NewPool(0)
	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}
}

func TestPool_RunsAllTasks(t *testing.T) {
	p := NewPool(3)
	var count atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		p.Go(func() {
			defer wg.Done()
			count.Add(1)
		})
	}
	wg.Wait()
	if count.Load() != 50 {
		t.Errorf("ran %d tasks, want 50", count.Load())
	}
}

func TestPool_BoundsConcurrency(t *testing.T) {
	p := NewPool(2)
	var running, peak atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		p.Go(func() {
			defer wg.Done()
			n := running.Add(1)
			for {
				old := peak.Load()
				if n <= old || peak.CompareAndSwap(old, n) {
					break
				}
			}
			running.Add(-1)
		})
	}
	wg.Wait()
	// At most 2 pooled workers plus the inline caller can run at once.
	if peak.Load() > 3 {
		t.Errorf("peak concurrency = %d, want <= 3", peak.Load())
	}
}

func TestSynchronous_RunsInline(t *testing.T) {
	c := Synchronous()
	if c.Workers() != 1 {
		t.Errorf("Workers() = %d, want 1", c.Workers())
	}
	ran := false
	c.Go(func() { ran = true })
	if !ran {
		t.Error("Synchronous Go must run fn before returning")
	}
}

func TestSetDefault(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	s := Synchronous()
	SetDefault(s)
	if Default() != s {
		t.Error("Default() should return the context set via SetDefault")
	}

	// nil is ignored
	SetDefault(nil)
	if Default() != s {
		t.Error("SetDefault(nil) should be a no-op")
	}
}
