package pipeline

import (
	"context"
	"math/rand/v2"
	"slices"
	"testing"

	seqerrors "github.com/kbukum/seqkit/errors"
)

func seeded() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }

func TestRand_DistinctSubset(t *testing.T) {
	in := []int{10, 20, 30, 40, 50, 60}
	got := collect(t, must(Rand(FromSlice(in), 4, seeded())))
	if len(got) != 4 {
		t.Fatalf("expected 4 values, got %v", got)
	}
	seen := make(map[int]bool)
	for _, v := range got {
		if !slices.Contains(in, v) {
			t.Errorf("value %d not in input", v)
		}
		if seen[v] {
			t.Errorf("value %d drawn twice", v)
		}
		seen[v] = true
	}
}

func TestRand_CountClampedToLength(t *testing.T) {
	in := []string{"a", "b", "c"}
	got := collect(t, must(Rand(FromSlice(in), 10, seeded())))
	slices.Sort(got)
	if !slices.Equal(in, got) {
		t.Errorf("expected a permutation of %v, got %v", in, got)
	}
}

func TestRand_ZeroCountAndEmpty(t *testing.T) {
	if got := collect(t, must(Rand(FromSlice([]int{1, 2}), 0, seeded()))); len(got) != 0 {
		t.Errorf("count 0: got %v", got)
	}
	if got := collect(t, must(Rand(FromSlice([]int{}), 3, seeded()))); len(got) != 0 {
		t.Errorf("empty input: got %v", got)
	}
}

func TestRand_DeterministicWithSeed(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	a := collect(t, must(Rand(FromSlice(in), 5, seeded())))
	b := collect(t, must(Rand(FromSlice(in), 5, seeded())))
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestRand_NilSource(t *testing.T) {
	got := collect(t, must(Rand(FromSlice([]int{1, 2, 3}), 2, nil)))
	if len(got) != 2 || got[0] == got[1] {
		t.Errorf("expected 2 distinct values, got %v", got)
	}
}

func TestRand_MaterializesOnFirstPull(t *testing.T) {
	src := newCounting(1, 2, 3)
	p := must(Rand(From[int](src), 1, seeded()))
	iter := p.Iter(context.Background())
	defer iter.Close()
	if src.pulls != 0 {
		t.Fatalf("pulled %d values before first Next", src.pulls)
	}
	if _, _, err := iter.Next(context.Background()); err != nil {
		t.Fatal(err)
	}
	if src.pulls != 4 {
		t.Errorf("expected full materialization (4 pulls), got %d", src.pulls)
	}
}

func TestRand_NegativeCount(t *testing.T) {
	_, err := Rand(FromSlice([]int{1}), -1, nil)
	if !seqerrors.HasCode(err, seqerrors.ErrCodeInvalidArgument) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
}

func TestRand_NilSourcePerEnumeration(t *testing.T) {
	p := must(Rand(FromSlice([]int{1, 2, 3, 4}), 2, nil))
	ctx := context.Background()
	a := p.Iter(ctx).(*randIter[int])
	defer a.Close()
	b := p.Iter(ctx).(*randIter[int])
	defer b.Close()
	if a.rng == nil || a.rng == b.rng {
		t.Error("expected each enumeration to own its random source")
	}
	for range 3 {
		if got := collect(t, p); len(got) != 2 || got[0] == got[1] {
			t.Errorf("expected 2 distinct values, got %v", got)
		}
	}
}

func TestRand_SuppliedSourceIsUsed(t *testing.T) {
	rng := seeded()
	p := must(Rand(FromSlice([]int{1, 2, 3}), 1, rng))
	it := p.Iter(context.Background()).(*randIter[int])
	defer it.Close()
	if it.rng != rng {
		t.Error("expected the supplied source")
	}
}
