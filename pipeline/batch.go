package pipeline

import (
	"context"

	"github.com/kbukum/seqkit/validation"
)

// Batch collects consecutive values into non-overlapping slices of size.
// The final batch holds whatever is left and may be shorter.
func Batch[T any](p *Pipeline[T], size int) (*Pipeline[[]T], error) {
	if err := validation.New().Positive("size", size).Err(); err != nil {
		return nil, err
	}
	return &Pipeline[[]T]{
		create: func(ctx context.Context) Iterator[[]T] {
			return &batchIter[T]{source: p.create(ctx), size: size}
		},
	}, nil
}

type batchIter[T any] struct {
	source Iterator[T]
	size   int
	done   bool
}

func (it *batchIter[T]) Next(ctx context.Context) (result []T, ok bool, err error) {
	if it.done {
		return nil, false, nil
	}

	batch := make([]T, 0, min(it.size, 64))
	for len(batch) < it.size {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			it.done = true
			if len(batch) > 0 {
				return batch, true, nil
			}
			return nil, false, nil
		}
		batch = append(batch, val)
	}
	return batch, true, nil
}

func (it *batchIter[T]) Close() error { return it.source.Close() }
