package stream

import (
	"context"
	"errors"
	"fmt"
	"testing"

	kiterrors "github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/traverse"
)

func intStream(mode Mode, items ...int) *Stream[int] {
	return New(traverse.FromSlice(items), mode)
}

func mustSlice[T any](t *testing.T, s *Stream[T]) []T {
	t.Helper()
	got, err := ToSlice(context.Background(), s)
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func assertEqual[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestToSlice_Sequential(t *testing.T) {
	s := intStream(Sequential, 1, 2, 3)
	assertEqual(t, mustSlice(t, s), []int{1, 2, 3})
}

func TestToSlice_EmptySource(t *testing.T) {
	s := intStream(Sequential)
	if got := mustSlice(t, s); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestStream_LazyUntilTerminal(t *testing.T) {
	calls := 0
	src := traverse.FromNext(func() (int, bool) {
		calls++
		return calls, calls <= 3
	})
	s := Map(New(src, Sequential), func(_ context.Context, v int) (int, error) {
		return v * 10, nil
	})
	if calls != 0 {
		t.Fatalf("source pulled before terminal: %d calls", calls)
	}
	assertEqual(t, mustSlice(t, s), []int{10, 20, 30})
}

func TestStream_SecondTerminalFails(t *testing.T) {
	s := intStream(Sequential, 1, 2)
	if _, err := ToSlice(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	_, err := Count(context.Background(), s)
	if !kiterrors.HasCode(err, kiterrors.ErrCodeConsumed) {
		t.Fatalf("expected consumed error, got %v", err)
	}
}

func TestStream_DerivedHandleSharesPermit(t *testing.T) {
	s := intStream(Sequential, 1, 2, 3)
	doubled := Map(s, func(_ context.Context, v int) (int, error) { return v * 2, nil })
	if _, err := ToSlice(context.Background(), doubled); err != nil {
		t.Fatal(err)
	}
	// Draining the derived stream consumes the whole chain.
	_, err := ToSlice(context.Background(), s)
	if !kiterrors.HasCode(err, kiterrors.ErrCodeConsumed) {
		t.Fatalf("expected consumed error, got %v", err)
	}
}

func TestStream_IntermediateAfterDrainFailsAtTerminal(t *testing.T) {
	s := intStream(Sequential, 1, 2, 3)
	if _, err := Count(context.Background(), s); err != nil {
		t.Fatal(err)
	}
	late := Filter(s, func(v int) bool { return v > 1 })
	_, err := ToSlice(context.Background(), late)
	if !kiterrors.HasCode(err, kiterrors.ErrCodeConsumed) {
		t.Fatalf("expected consumed error, got %v", err)
	}
}

func TestMap_TransformsInOrder(t *testing.T) {
	s := Map(intStream(Sequential, 1, 2, 3), func(_ context.Context, v int) (string, error) {
		return fmt.Sprintf("v%d", v), nil
	})
	assertEqual(t, mustSlice(t, s), []string{"v1", "v2", "v3"})
}

func TestMap_ErrorPropagatesUnwrapped(t *testing.T) {
	boom := errors.New("boom")
	s := Map(intStream(Sequential, 1, 2, 3), func(_ context.Context, v int) (int, error) {
		if v == 2 {
			return 0, boom
		}
		return v, nil
	})
	_, err := ToSlice(context.Background(), s)
	if !errors.Is(err, boom) {
		t.Fatalf("expected stage error, got %v", err)
	}
}

func TestFilter(t *testing.T) {
	s := Filter(intStream(Sequential, 1, 2, 3, 4, 5), func(v int) bool { return v%2 == 0 })
	assertEqual(t, mustSlice(t, s), []int{2, 4})
}

func TestFlatMap(t *testing.T) {
	s := FlatMap(intStream(Sequential, 1, 2, 3), func(_ context.Context, v int) (traverse.Traversal[int], error) {
		return traverse.FromSlice([]int{v, v * 10}), nil
	})
	assertEqual(t, mustSlice(t, s), []int{1, 10, 2, 20, 3, 30})
}

func TestLimitAndSkip(t *testing.T) {
	s := Limit(Skip(intStream(Sequential, 1, 2, 3, 4, 5), 1), 3)
	assertEqual(t, mustSlice(t, s), []int{2, 3, 4})
}

func TestLimit_ZeroProducesNothing(t *testing.T) {
	s := Limit(intStream(Sequential, 1, 2, 3), 0)
	if got := mustSlice(t, s); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestDistinct(t *testing.T) {
	s := Distinct(intStream(Sequential, 1, 2, 1, 3, 2))
	assertEqual(t, mustSlice(t, s), []int{1, 2, 3})
}

func TestTap_SeesEveryElement(t *testing.T) {
	var seen []int
	s := Tap(intStream(Sequential, 1, 2, 3), func(_ context.Context, v int) error {
		seen = append(seen, v)
		return nil
	})
	assertEqual(t, mustSlice(t, s), []int{1, 2, 3})
	assertEqual(t, seen, []int{1, 2, 3})
}

func TestConcat_OrderAndPermits(t *testing.T) {
	a := intStream(Sequential, 1, 2)
	b := intStream(Sequential, 3)
	s := Concat(a, b)
	assertEqual(t, mustSlice(t, s), []int{1, 2, 3})

	// Every input handle is consumed by the concatenation.
	_, err := ToSlice(context.Background(), b)
	if !kiterrors.HasCode(err, kiterrors.ErrCodeConsumed) {
		t.Fatalf("expected consumed error, got %v", err)
	}
}

func TestConcat_Empty(t *testing.T) {
	s := Concat[int]()
	if got := mustSlice(t, s); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestForEach(t *testing.T) {
	var sum int
	err := ForEach(context.Background(), intStream(Sequential, 1, 2, 3), func(_ context.Context, v int) error {
		sum += v
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}

func TestReduce(t *testing.T) {
	got, err := Reduce(context.Background(), intStream(Sequential, 1, 2, 3, 4), 0, func(acc, v int) int {
		return acc + v
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != 10 {
		t.Errorf("got %d, want 10", got)
	}
}

func TestFirst(t *testing.T) {
	v, ok, err := First(context.Background(), intStream(Sequential, 7, 8))
	if err != nil || !ok || v != 7 {
		t.Errorf("got (%d, %v, %v), want (7, true, nil)", v, ok, err)
	}

	_, ok, err = First(context.Background(), intStream(Sequential))
	if err != nil || ok {
		t.Errorf("expected no element, got ok=%v err=%v", ok, err)
	}
}

func TestCount(t *testing.T) {
	n, err := Count(context.Background(), intStream(Sequential, 1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("got %d, want 3", n)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf[int]() != KindInt {
		t.Error("int should map to KindInt")
	}
	if KindOf[int64]() != KindLong {
		t.Error("int64 should map to KindLong")
	}
	if KindOf[float64]() != KindDouble {
		t.Error("float64 should map to KindDouble")
	}
	if KindOf[string]() != KindBoxed {
		t.Error("string should map to KindBoxed")
	}
}

func TestMode_String(t *testing.T) {
	if Sequential.String() != "sequential" || Parallel.String() != "parallel" {
		t.Error("unexpected mode names")
	}
}
