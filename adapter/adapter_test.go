package adapter

import (
	"context"
	"math"
	"sort"
	"testing"

	kiterrors "github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/exec"
	"github.com/kbukum/streamkit/stream"
	"github.com/kbukum/streamkit/traverse"
)

func mustSlice[T any](t *testing.T, s *stream.Stream[T]) []T {
	t.Helper()
	got, err := stream.ToSlice(context.Background(), s)
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

func TestSeq_BoxedKind(t *testing.T) {
	s := Seq(traverse.FromSlice([]string{"a", "b"}))
	if s.Mode() != stream.Sequential {
		t.Error("Seq should build a sequential stream")
	}
	if s.Kind() != stream.KindBoxed {
		t.Error("string stream should carry the boxed kind")
	}
	assertEqual(t, mustSlice(t, s), []string{"a", "b"})
}

func TestPar_Mode(t *testing.T) {
	s := Par(traverse.FromSlice([]int{1, 2, 3}), stream.WithExec(exec.Synchronous()))
	if s.Mode() != stream.Parallel {
		t.Error("Par should build a parallel stream")
	}
	assertEqual(t, mustSlice(t, s), []int{1, 2, 3})
}

func TestIntSeq_Kind(t *testing.T) {
	s := IntSeq(traverse.FromSlice([]int{1, 2}))
	if s.Kind() != stream.KindInt {
		t.Error("int stream should carry the int kind")
	}
}

func TestSeqParPairsProduceSameElements(t *testing.T) {
	items := make([]int64, 2000)
	for i := range items {
		items[i] = int64(i)
	}
	seq := mustSlice(t, Int64Seq(traverse.FromSlice(items)))
	par := mustSlice(t, Int64Par(traverse.FromSlice(items),
		stream.WithExec(exec.NewPool(4)), stream.WithSplitThreshold(64)))
	assertEqual(t, par, seq)
}

func TestInt8Seq_WidensBoundaryValues(t *testing.T) {
	s := Int8Seq(traverse.FromSlice([]int8{math.MinInt8, -1, 0, 1, math.MaxInt8}))
	if s.Kind() != stream.KindInt {
		t.Error("widened int8 stream should carry the int kind")
	}
	assertEqual(t, mustSlice(t, s), []int{-128, -1, 0, 1, 127})
}

func TestInt16Seq_WidensBoundaryValues(t *testing.T) {
	s := Int16Seq(traverse.FromSlice([]int16{math.MinInt16, math.MaxInt16}))
	assertEqual(t, mustSlice(t, s), []int{-32768, 32767})
}

func TestRuneSeq_WidensMaxCodePoint(t *testing.T) {
	s := RuneSeq(traverse.FromSlice([]rune{0, 'A', '\U0010FFFF'}))
	assertEqual(t, mustSlice(t, s), []int{0, 65, 0x10FFFF})
}

func TestFloat32Seq_WidensLosslessly(t *testing.T) {
	s := Float32Seq(traverse.FromSlice([]float32{1.5, math.MaxFloat32, math.SmallestNonzeroFloat32}))
	got := mustSlice(t, s)
	if s.Kind() != stream.KindDouble {
		t.Error("widened float32 stream should carry the float64 kind")
	}
	want := []float64{1.5, float64(float32(math.MaxFloat32)), float64(float32(math.SmallestNonzeroFloat32))}
	assertEqual(t, got, want)
}

func TestFloat64Par_Drains(t *testing.T) {
	s := Float64Par(traverse.FromSlice([]float64{0.5, 1.5}), stream.WithExec(exec.Synchronous()))
	assertEqual(t, mustSlice(t, s), []float64{0.5, 1.5})
}

func TestEntriesSeq(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	got := mustSlice(t, EntriesSeq(m))
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2", len(got))
	}
	found := map[string]int{}
	for _, e := range got {
		found[e.Key] = e.Value
	}
	if found["a"] != 1 || found["b"] != 2 {
		t.Errorf("got %v", found)
	}
}

func TestKeysAndValuesAreIndependent(t *testing.T) {
	m := map[int]string{1: "a", 2: "b", 3: "c"}
	keys := KeysSeq(m)
	values := ValuesSeq(m)

	gotKeys := mustSlice(t, keys)
	sort.Ints(gotKeys)
	assertEqual(t, gotKeys, []int{1, 2, 3})

	// Draining the keys stream must not consume the values stream.
	gotValues := mustSlice(t, values)
	sort.Strings(gotValues)
	assertEqual(t, gotValues, []string{"a", "b", "c"})

	// Each handle still drains at most once.
	_, err := stream.ToSlice(context.Background(), keys)
	if !kiterrors.HasCode(err, kiterrors.ErrCodeConsumed) {
		t.Fatalf("expected consumed error, got %v", err)
	}
}

func TestEntriesSnapshotIgnoresLaterMutation(t *testing.T) {
	m := map[int]int{1: 10}
	s := EntriesSeq(m)
	m[2] = 20
	got := mustSlice(t, s)
	if len(got) != 1 || got[0].Key != 1 {
		t.Errorf("snapshot should hold a single entry, got %v", got)
	}
}

func TestKeysPar_SameMultiset(t *testing.T) {
	m := make(map[int]struct{}, 300)
	for i := 0; i < 300; i++ {
		m[i] = struct{}{}
	}
	got := mustSlice(t, KeysPar(m, stream.WithExec(exec.NewPool(4)), stream.WithSplitThreshold(16)))
	sort.Ints(got)
	want := make([]int, 300)
	for i := range want {
		want[i] = i
	}
	assertEqual(t, got, want)
}

func TestBoxedRoundTrip(t *testing.T) {
	s := IntSeq(traverse.FromSlice([]int{7, 8}))
	back, err := ToIntStream(ToBoxed(s))
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, mustSlice(t, back), []int{7, 8})
}

func TestToFloat64Stream_WrongOrigin(t *testing.T) {
	boxed := ToBoxed(Int64Seq(traverse.FromSlice([]int64{1})))
	if _, err := ToFloat64Stream(boxed); !kiterrors.HasCode(err, kiterrors.ErrCodeTypeMismatch) {
		t.Fatalf("expected type mismatch, got %v", err)
	}
	back, err := ToInt64Stream(boxed)
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(t, mustSlice(t, back), []int64{1})
}

func TestEmptySources(t *testing.T) {
	if got := mustSlice(t, IntSeq(traverse.FromSlice[int](nil))); len(got) != 0 {
		t.Errorf("expected empty int drain, got %v", got)
	}
	if got := mustSlice(t, KeysSeq(map[string]int{})); len(got) != 0 {
		t.Errorf("expected empty keys drain, got %v", got)
	}
}
