package pipeline

import (
	"context"
	"math/rand/v2"

	"github.com/kbukum/seqkit/validation"
)

// Rand yields min(count, n) distinct values of the n-value upstream, drawn
// uniformly at random without replacement. The upstream is materialized on
// the first pull. A nil rng gives each enumeration its own freshly seeded
// PCG source.
//
// Drawn indices are tracked in a seen set; a repeated index is redrawn, so
// the result always holds exactly min(count, n) values.
func Rand[T any](p *Pipeline[T], count int, rng *rand.Rand) (*Pipeline[T], error) {
	if err := validation.NonNegative("count", count); err != nil {
		return nil, err
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			r := rng
			if r == nil {
				r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			}
			return &randIter[T]{source: p.create(ctx), count: count, rng: r}
		},
	}, nil
}

type randIter[T any] struct {
	source Iterator[T]
	count  int
	rng    *rand.Rand
	items  []T
	seen   map[int]struct{}
	loaded bool
}

func (it *randIter[T]) load(ctx context.Context) error {
	it.loaded = true
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		it.items = append(it.items, val)
	}
	it.count = min(it.count, len(it.items))
	it.seen = make(map[int]struct{}, it.count)
	return nil
}

func (it *randIter[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	if !it.loaded {
		if err := it.load(ctx); err != nil {
			return zero, false, err
		}
	}
	if len(it.seen) >= it.count {
		return zero, false, nil
	}
	for {
		i := it.rng.IntN(len(it.items))
		if _, dup := it.seen[i]; dup {
			continue
		}
		it.seen[i] = struct{}{}
		return it.items[i], true, nil
	}
}

func (it *randIter[T]) Close() error { return it.source.Close() }
