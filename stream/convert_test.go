package stream

import (
	"context"
	"testing"

	kiterrors "github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/traverse"
)

func TestBoxUnbox_RoundTrip(t *testing.T) {
	s := intStream(Sequential, 1, 2, 3)
	boxed := Box(s)
	if boxed.Kind() != KindBoxed {
		t.Fatal("boxed stream should carry the boxed kind")
	}
	back, err := UnboxInt(boxed)
	if err != nil {
		t.Fatal(err)
	}
	if back.Kind() != KindInt {
		t.Fatal("unboxed stream should carry the int kind")
	}
	assertEqual(t, mustSlice(t, back), []int{1, 2, 3})
}

func TestUnbox_WrongOriginFailsAtCall(t *testing.T) {
	boxed := Box(New(traverse.FromSlice([]float64{1.5}), Sequential))
	_, err := UnboxInt(boxed)
	if !kiterrors.HasCode(err, kiterrors.ErrCodeTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
	// The failed conversion must not consume the handle.
	back, err := UnboxFloat64(boxed)
	if err != nil {
		t.Fatal(err)
	}
	got := mustSlice(t, back)
	if len(got) != 1 || got[0] != 1.5 {
		t.Errorf("got %v", got)
	}
}

func TestUnbox_BoxedOriginNeverUnboxes(t *testing.T) {
	boxed := Box(New(traverse.FromSlice([]string{"x"}), Sequential))
	if _, err := UnboxInt(boxed); !kiterrors.HasCode(err, kiterrors.ErrCodeTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
}

func TestBox_AlreadyBoxedKeepsOrigin(t *testing.T) {
	boxed := Box(intStream(Sequential, 4))
	again := Box(boxed)
	back, err := UnboxInt(again)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, mustSlice(t, back), []int{4})
}

func TestUnbox_ReplacedElementFailsPerElement(t *testing.T) {
	boxed := Box(intStream(Sequential, 1, 2, 3))
	swapped := Map(boxed, func(_ context.Context, v any) (any, error) {
		if v.(int) == 2 {
			return "two", nil
		}
		return v, nil
	})
	// Re-tag the mapped stream with the original's origin by boxing a
	// stream whose elements no longer match it.
	swapped.origin = KindInt
	back, err := UnboxInt(swapped)
	if err != nil {
		t.Fatal(err)
	}
	_, err = ToSlice(context.Background(), back)
	if !kiterrors.HasCode(err, kiterrors.ErrCodeTypeMismatch) {
		t.Fatalf("expected per-element type mismatch, got %v", err)
	}
}

func TestBox_SharesDrainPermit(t *testing.T) {
	s := intStream(Sequential, 1)
	boxed := Box(s)
	if _, err := ToSlice(context.Background(), boxed); err != nil {
		t.Fatal(err)
	}
	_, err := ToSlice(context.Background(), s)
	if !kiterrors.HasCode(err, kiterrors.ErrCodeConsumed) {
		t.Fatalf("expected consumed error, got %v", err)
	}
}

func TestUnbox_ParallelSplitPreserved(t *testing.T) {
	items := make([]int64, 3000)
	for i := range items {
		items[i] = int64(i)
	}
	boxed := Box(New(traverse.FromSlice(items), Parallel, WithSplitThreshold(64)))
	back, err := UnboxInt64(boxed)
	if err != nil {
		t.Fatal(err)
	}
	got := mustSlice(t, back)
	assertEqual(t, got, items)
}
