package pipeline

import (
	"context"

	"github.com/kbukum/seqkit/errors"
)

// Split partitions the pipeline into runs, each ending where isSep returns
// true. When includeSep is set the separator closes the run it ends;
// otherwise it is dropped. Empty runs are never emitted, so consecutive or
// leading separators produce nothing.
//
//	Split([a b | c d], isBar, false) => [a b] [c d]
//	Split([a | | b], isBar, false)   => [a] [b]
func Split[T any](p *Pipeline[T], isSep func(T) bool, includeSep bool) *Pipeline[[]T] {
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &splitIter[T]{source: p.create(ctx), isSep: isSep, includeSep: includeSep}
		},
	}
}

// SplitBy partitions the pipeline by a relation between neighbours. cut is
// called for every value after the first with the value, its predecessor and
// its index; returning true starts a new run at that value.
//
// An empty upstream is an invalid call: the first pull fails with
// INVALID_OPERATION.
func SplitBy[T any](p *Pipeline[T], cut func(cur, prev T, index int) bool) *Pipeline[[]T] {
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &splitByIter[T]{source: p.create(ctx), cut: cut}
		},
	}
}

type splitIter[T any] struct {
	source     Iterator[T]
	isSep      func(T) bool
	includeSep bool
	done       bool
}

func (it *splitIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	if it.done {
		return nil, false, nil
	}

	var run []T
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			if len(run) > 0 {
				return run, true, nil
			}
			return nil, false, nil
		}
		if !it.isSep(val) {
			run = append(run, val)
			continue
		}
		if it.includeSep {
			run = append(run, val)
		}
		if len(run) > 0 {
			return run, true, nil
		}
	}
}

func (it *splitIter[T]) Close() error { return it.source.Close() }

type splitByIter[T any] struct {
	source     Iterator[T]
	cut        func(cur, prev T, index int) bool
	started    bool
	done       bool
	pending    T
	hasPending bool
	index      int
}

func (it *splitByIter[T]) Next(ctx context.Context) ([]T, bool, error) {
	if !it.started {
		it.started = true
		first, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			return nil, false, errors.EmptySequence("SplitBy")
		}
		it.pending, it.hasPending = first, true
	}
	if it.done || !it.hasPending {
		return nil, false, nil
	}

	run := []T{it.pending}
	prev := it.pending
	it.hasPending = false
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			return run, true, nil
		}
		it.index++
		if it.cut(val, prev, it.index) {
			it.pending, it.hasPending = val, true
			return run, true, nil
		}
		run = append(run, val)
		prev = val
	}
}

func (it *splitByIter[T]) Close() error { return it.source.Close() }
