package pipeline

import (
	"context"
	"testing"
)

// countingIter is a single-pass source that records how it is driven.
type countingIter[T any] struct {
	items  []T
	index  int
	pulls  int
	closed int
	err    error
	errAt  int
}

func newCounting[T any](items ...T) *countingIter[T] {
	return &countingIter[T]{items: items, errAt: -1}
}

// failAt makes the pull for position i return err instead of a value.
func (it *countingIter[T]) failAt(i int, err error) *countingIter[T] {
	it.errAt, it.err = i, err
	return it
}

func (it *countingIter[T]) Next(_ context.Context) (T, bool, error) {
	it.pulls++
	var zero T
	if it.index == it.errAt {
		return zero, false, it.err
	}
	if it.index >= len(it.items) {
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *countingIter[T]) Close() error {
	it.closed++
	return nil
}

// must unwraps a constructor that only fails on invalid arguments.
func must[T any](p *Pipeline[T], err error) *Pipeline[T] {
	if err != nil {
		panic(err)
	}
	return p
}

func collect[T any](t *testing.T, p *Pipeline[T]) []T {
	t.Helper()
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	return got
}

func naturals() *Pipeline[int] {
	return Iterate(0, func(n int) int { return n + 1 })
}
