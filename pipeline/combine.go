package pipeline

import "context"

// Combine interleaves two pipelines: one value from first, then one from
// second, repeating. When one side runs out the other continues alone, and
// the result ends once both are exhausted.
//
//	Combine([1 2], [10 20 30]) => 1 10 2 20 30
func Combine[T any](first, second *Pipeline[T]) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &combineIter[T]{
				sources: [2]Iterator[T]{first.create(ctx), second.create(ctx)},
			}
		},
	}
}

// Flatten concatenates a pipeline of pipelines. Each inner pipeline is
// enumerated to exhaustion before the next outer value is pulled.
func Flatten[T any](p *Pipeline[*Pipeline[T]]) *Pipeline[T] {
	return FlatMap(p, func(ctx context.Context, inner *Pipeline[T]) (Iterator[T], error) {
		return inner.create(ctx), nil
	})
}

// FlattenSlices concatenates a pipeline of slices.
func FlattenSlices[T any](p *Pipeline[[]T]) *Pipeline[T] {
	return FlatMap(p, func(_ context.Context, items []T) (Iterator[T], error) {
		return &sliceIter[T]{items: items}, nil
	})
}

type combineIter[T any] struct {
	sources [2]Iterator[T]
	done    [2]bool
	turn    int
}

func (it *combineIter[T]) anyActive() bool {
	return !it.done[0] || !it.done[1]
}

func (it *combineIter[T]) Next(ctx context.Context) (T, bool, error) {
	for it.anyActive() {
		side := it.turn
		it.turn = 1 - it.turn
		if it.done[side] {
			continue
		}
		val, ok, err := it.sources[side].Next(ctx)
		if err != nil {
			return val, false, err
		}
		if !ok {
			it.done[side] = true
			continue
		}
		return val, true, nil
	}
	var zero T
	return zero, false, nil
}

func (it *combineIter[T]) Close() error {
	err := it.sources[0].Close()
	if err2 := it.sources[1].Close(); err == nil {
		err = err2
	}
	return err
}
