package pipeline

import (
	"context"

	"github.com/kbukum/seqkit/validation"
)

// Window emits overlapping windows of exactly size consecutive values,
// advancing by one value per window. An upstream shorter than size yields
// no windows. Each emitted slice is a fresh copy the caller may keep.
func Window[T any](p *Pipeline[T], size int) (*Pipeline[[]T], error) {
	if err := validation.New().Positive("size", size).Err(); err != nil {
		return nil, err
	}
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &windowIter[T]{source: p.create(ctx), size: size}
		},
	}, nil
}

type windowIter[T any] struct {
	source Iterator[T]
	size   int
	buffer []T
	done   bool
}

func (it *windowIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}

	if it.buffer == nil {
		it.buffer = make([]T, 0, it.size)
	} else {
		// Slide: drop the oldest value, then pull one new value below.
		copy(it.buffer, it.buffer[1:])
		it.buffer = it.buffer[:len(it.buffer)-1]
	}

	for len(it.buffer) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			it.buffer = nil
			return nil, false, nil
		}
		it.buffer = append(it.buffer, val)
	}

	window := make([]T, it.size)
	copy(window, it.buffer)
	return window, true, nil
}

func (it *windowIter[T]) Close() error { return it.source.Close() }
