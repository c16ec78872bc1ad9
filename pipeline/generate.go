package pipeline

import (
	"context"

	"github.com/kbukum/seqkit/validation"
)

// maxProducers bounds FromProducers.
const maxProducers = 4

// FromPush builds a finite pipeline from a callback that pushes values.
// fn runs once per enumeration, on the first pull, and everything it pushes
// is buffered and then yielded in push order.
func FromPush[T any](fn func(push func(T))) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &pushIter[T]{fn: fn}
		},
	}
}

// FromProducers builds a pipeline that yields one value per producer, in
// argument order. Each producer is called only when its value is pulled.
// Between one and four producers are accepted.
func FromProducers[T any](producers ...func() T) (*Pipeline[T], error) {
	v := validation.New().Range("producers", len(producers), 1, maxProducers)
	for _, fn := range producers {
		v.NotNil("producer", fn == nil)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}
	return &Pipeline[T]{
		create: func(_ context.Context) Iterator[T] {
			return &producerIter[T]{producers: producers}
		},
	}, nil
}

type pushIter[T any] struct {
	fn     func(push func(T))
	items  []T
	index  int
	loaded bool
}

func (it *pushIter[T]) Next(_ context.Context) (T, bool, error) {
	if !it.loaded {
		it.loaded = true
		it.fn(func(v T) { it.items = append(it.items, v) })
	}
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *pushIter[T]) Close() error {
	it.items = nil
	return nil
}

type producerIter[T any] struct {
	producers []func() T
	index     int
}

func (it *producerIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.producers) {
		var zero T
		return zero, false, nil
	}
	val := it.producers[it.index]()
	it.index++
	return val, true, nil
}

func (it *producerIter[T]) Close() error { return nil }
