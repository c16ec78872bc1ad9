package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	seqerrors "github.com/kbukum/seqkit/errors"
)

func TestCountBy_FirstSeenOrder(t *testing.T) {
	in := []string{"pear", "apple", "pear", "fig", "apple", "pear"}
	got := collect(t, CountBy(FromSlice(in), func(s string) string { return s }))
	want := []KeyValue[string, int]{{"pear", 3}, {"apple", 2}, {"fig", 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestLongCountBy(t *testing.T) {
	got := collect(t, LongCountBy(FromSlice([]int{1, 2, 3, 4, 5}), isEven))
	want := []KeyValue[bool, int64]{{false, 3}, {true, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCountBy_Empty(t *testing.T) {
	got := collect(t, CountBy(FromSlice([]int{}), func(n int) int { return n }))
	if len(got) != 0 {
		t.Errorf("expected no groups, got %v", got)
	}
}

func TestFold(t *testing.T) {
	sum := func(xs []int) int {
		total := 0
		for _, x := range xs {
			total += x
		}
		return total
	}
	got, err := Fold(context.Background(), FromSlice([]int{1, 2, 3, 4}), 3, sum)
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("got %d, want 6", got)
	}
}

func TestFold_ShorterUpstream(t *testing.T) {
	got, err := Fold(context.Background(), FromSlice([]int{1, 2}), 5, func(xs []int) int { return len(xs) })
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestFold_InfiniteUpstream(t *testing.T) {
	got, err := Fold(context.Background(), naturals(), 4, func(xs []int) []int { return xs })
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestFold_NegativeCount(t *testing.T) {
	_, err := Fold(context.Background(), FromSlice([]int{1}), -1, func(xs []int) int { return 0 })
	if !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestAggregateFor_AggregatorDrivesPulls(t *testing.T) {
	src := newCounting(3, 4, 5, 6)
	got, err := AggregateFor(context.Background(), From[int](src), func(next Pull[int]) int {
		a, _ := next()
		b, _ := next()
		return a * b
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != 12 {
		t.Errorf("got %d, want 12", got)
	}
	if src.pulls != 2 {
		t.Errorf("expected 2 pulls, got %d", src.pulls)
	}
	if src.closed != 1 {
		t.Errorf("expected source closed, got %d", src.closed)
	}
}

func TestAggregateFor_ReportsExhaustion(t *testing.T) {
	got, err := AggregateFor(context.Background(), FromSlice([]int{1, 2}), func(next Pull[int]) int {
		n := 0
		for {
			if _, ok := next(); !ok {
				break
			}
			n++
		}
		// Pulling past the end keeps returning false.
		if _, ok := next(); ok {
			return -1
		}
		return n
	})
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestAggregateFor_UpstreamError(t *testing.T) {
	boom := errors.New("boom")
	_, err := AggregateFor(context.Background(), From[int](newCounting(1).failAt(1, boom)), func(next Pull[int]) int {
		for {
			if _, ok := next(); !ok {
				return 0
			}
		}
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestFirstLastSingle(t *testing.T) {
	ctx := context.Background()
	src := FromSlice([]int{4, 5, 6})
	if v, err := First(ctx, src); err != nil || v != 4 {
		t.Errorf("First = (%v, %v), want 4", v, err)
	}
	if v, err := Last(ctx, src); err != nil || v != 6 {
		t.Errorf("Last = (%v, %v), want 6", v, err)
	}
	if v, err := Single(ctx, FromSlice([]int{9})); err != nil || v != 9 {
		t.Errorf("Single = (%v, %v), want 9", v, err)
	}
}

func TestFirstLastSingle_EmptyFails(t *testing.T) {
	ctx := context.Background()
	empty := FromSlice([]int{})
	if _, err := First(ctx, empty); !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidOperation) {
		t.Errorf("First: expected INVALID_OPERATION, got %v", err)
	}
	if _, err := Last(ctx, empty); !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidOperation) {
		t.Errorf("Last: expected INVALID_OPERATION, got %v", err)
	}
	if _, err := Single(ctx, empty); !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidOperation) {
		t.Errorf("Single: expected INVALID_OPERATION, got %v", err)
	}
}

func TestFirst_OnInfinite(t *testing.T) {
	if v, err := First(context.Background(), naturals()); err != nil || v != 0 {
		t.Errorf("First = (%v, %v), want 0", v, err)
	}
}

func TestSingle_MoreThanOne(t *testing.T) {
	src := newCounting(1, 2, 3)
	_, err := Single(context.Background(), From[int](src))
	if !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidOperation) {
		t.Errorf("expected INVALID_OPERATION, got %v", err)
	}
	if src.pulls != 2 {
		t.Errorf("expected 2 pulls, got %d", src.pulls)
	}
}

func TestSum(t *testing.T) {
	got, err := Sum(context.Background(), FromSlice([]int64{1, 2, 3}))
	if err != nil || got != 6 {
		t.Errorf("Sum = (%v, %v), want 6", got, err)
	}
	zero, err := Sum(context.Background(), FromSlice([]float64{}))
	if err != nil || zero != 0 {
		t.Errorf("Sum(empty) = (%v, %v), want 0", zero, err)
	}
}

func TestAverage(t *testing.T) {
	got, err := Average(context.Background(), FromSlice([]int{1, 2, 3, 4}))
	if err != nil {
		t.Fatal(err)
	}
	if got != 2.5 {
		t.Errorf("got %v, want 2.5", got)
	}
}

func TestAverage_EmptyIsArithmeticEdgeCase(t *testing.T) {
	_, err := Average(context.Background(), FromSlice([]float32{}))
	if !seqerrors.HasCode(err, seqerrors.ErrCodeArithmetic) {
		t.Errorf("expected ARITHMETIC_EDGE_CASE, got %v", err)
	}
}
