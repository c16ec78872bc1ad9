package pipeline

import (
	"context"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"golang.org/x/exp/constraints"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/validation"
)

// Number is the set of element types Sum and Average accept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Pull advances the upstream of AggregateFor by one value. It returns false
// once the upstream is exhausted or has failed.
type Pull[T any] func() (T, bool)

// CountBy groups values by key and yields one (key, count) pair per distinct
// key, in the order each key was first seen.
func CountBy[T any, K comparable](p *Pipeline[T], key func(T) K) *Pipeline[KeyValue[K, int]] {
	return countBy[T, K, int](p, key)
}

// LongCountBy is CountBy with 64-bit counters.
func LongCountBy[T any, K comparable](p *Pipeline[T], key func(T) K) *Pipeline[KeyValue[K, int64]] {
	return countBy[T, K, int64](p, key)
}

func countBy[T any, K comparable, N ~int | ~int64](p *Pipeline[T], key func(T) K) *Pipeline[KeyValue[K, N]] {
	return &Pipeline[KeyValue[K, N]]{
		create: func(ctx context.Context) Iterator[KeyValue[K, N]] {
			return &countIter[T, K, N]{source: p.create(ctx), key: key}
		},
	}
}

type countIter[T any, K comparable, N ~int | ~int64] struct {
	source Iterator[T]
	key    func(T) K
	counts []KeyValue[K, N]
	pos    int
	loaded bool
}

func (it *countIter[T, K, N]) load(ctx context.Context) error {
	it.loaded = true
	groups := linkedhashmap.New()
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		k := it.key(val)
		n, found := groups.Get(k)
		if !found {
			groups.Put(k, N(1))
			continue
		}
		groups.Put(k, n.(N)+1)
	}

	it.counts = make([]KeyValue[K, N], 0, groups.Size())
	for _, k := range groups.Keys() {
		n, _ := groups.Get(k)
		it.counts = append(it.counts, KeyValue[K, N]{Key: k.(K), Value: n.(N)})
	}
	return nil
}

func (it *countIter[T, K, N]) Next(ctx context.Context) (KeyValue[K, N], bool, error) {
	if !it.loaded {
		if err := it.load(ctx); err != nil {
			return KeyValue[K, N]{}, false, err
		}
	}
	if it.pos >= len(it.counts) {
		return KeyValue[K, N]{}, false, nil
	}
	out := it.counts[it.pos]
	it.pos++
	return out, true, nil
}

func (it *countIter[T, K, N]) Close() error { return it.source.Close() }

// Fold takes the first count values (fewer if the pipeline is shorter) and
// passes them to reducer as one slice.
func Fold[T, R any](ctx context.Context, p *Pipeline[T], count int, reducer func([]T) R) (R, error) {
	var zero R
	if err := validation.NonNegative("count", count); err != nil {
		return zero, err
	}
	take, err := Take(p, count)
	if err != nil {
		return zero, err
	}
	items, err := Collect(ctx, take)
	if err != nil {
		return zero, err
	}
	return reducer(items), nil
}

// AggregateFor hands the pipeline to agg as a pull function. agg decides how
// many values to pull and how to combine them; values it does not pull are
// never produced. An upstream error ends the pull and is returned in place
// of agg's result.
func AggregateFor[T, R any](ctx context.Context, p *Pipeline[T], agg func(next Pull[T]) R) (R, error) {
	iter := p.create(ctx)
	defer iter.Close()

	var pullErr error
	exhausted := false
	next := func() (T, bool) {
		if pullErr != nil || exhausted {
			var zero T
			return zero, false
		}
		val, ok, err := iter.Next(ctx)
		if err != nil {
			pullErr = err
			return val, false
		}
		if !ok {
			exhausted = true
		}
		return val, ok
	}

	result := agg(next)
	if pullErr != nil {
		var zero R
		return zero, pullErr
	}
	return result, nil
}

// First returns the first value. An empty pipeline is INVALID_OPERATION.
func First[T any](ctx context.Context, p *Pipeline[T]) (T, error) {
	iter := p.create(ctx)
	defer iter.Close()
	val, ok, err := iter.Next(ctx)
	if err != nil {
		return val, err
	}
	if !ok {
		return val, errors.EmptySequence("First")
	}
	return val, nil
}

// Last returns the last value. An empty pipeline is INVALID_OPERATION.
func Last[T any](ctx context.Context, p *Pipeline[T]) (T, error) {
	iter := p.create(ctx)
	defer iter.Close()
	var last T
	seen := false
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return last, err
		}
		if !ok {
			break
		}
		last, seen = val, true
	}
	if !seen {
		return last, errors.EmptySequence("Last")
	}
	return last, nil
}

// Single returns the only value. Zero values or more than one value are
// INVALID_OPERATION; at most two values are pulled.
func Single[T any](ctx context.Context, p *Pipeline[T]) (T, error) {
	iter := p.create(ctx)
	defer iter.Close()
	val, ok, err := iter.Next(ctx)
	if err != nil {
		return val, err
	}
	if !ok {
		return val, errors.EmptySequence("Single")
	}
	_, more, err := iter.Next(ctx)
	if err != nil {
		return val, err
	}
	if more {
		var zero T
		return zero, errors.InvalidOperation("Single", "sequence contains more than one element")
	}
	return val, nil
}

// Sum adds all values. The sum of an empty pipeline is zero.
func Sum[T Number](ctx context.Context, p *Pipeline[T]) (T, error) {
	var total T
	err := ForEach(ctx, p, func(_ context.Context, v T) error {
		total += v
		return nil
	})
	return total, err
}

// Average returns the arithmetic mean. The mean of an empty pipeline is
// undefined and reported as ARITHMETIC_EDGE_CASE rather than NaN or zero.
func Average[T Number](ctx context.Context, p *Pipeline[T]) (float64, error) {
	var total float64
	var n int64
	err := ForEach(ctx, p, func(_ context.Context, v T) error {
		total += float64(v)
		n++
		return nil
	})
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.ArithmeticEdgeCase("Average", "cannot divide by an empty sequence")
	}
	return total / float64(n), nil
}
