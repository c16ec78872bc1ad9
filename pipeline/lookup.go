package pipeline

import (
	"context"

	"github.com/kbukum/seqkit/errors"
	"github.com/kbukum/seqkit/validation"
)

// ElementAtOr returns the value at index, or fallback if the pipeline is
// shorter. A negative index fails before anything is pulled.
func ElementAtOr[T any](ctx context.Context, p *Pipeline[T], index int, fallback T) (T, error) {
	if err := validation.NonNegative("index", index); err != nil {
		return fallback, err
	}
	iter := p.create(ctx)
	defer iter.Close()
	for i := 0; ; i++ {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return fallback, err
		}
		if !ok {
			return fallback, nil
		}
		if i == index {
			return val, nil
		}
	}
}

// ElementByKey returns the first value whose projected key equals key.
// A scan that finds nothing fails with NOT_FOUND.
func ElementByKey[T any, K comparable](ctx context.Context, p *Pipeline[T], key K, keyFn func(T) K) (T, error) {
	return ElementByKeyFunc(ctx, p, key, keyFn, func(a, b K) bool { return a == b })
}

// ElementByKeyFunc is ElementByKey with a caller-supplied key equality.
func ElementByKeyFunc[T, K any](ctx context.Context, p *Pipeline[T], key K, keyFn func(T) K, eq func(a, b K) bool) (T, error) {
	val, found, err := findByKey(ctx, p, key, keyFn, eq)
	if err != nil {
		return val, err
	}
	if !found {
		return val, errors.NotFound("element", key)
	}
	return val, nil
}

// ElementByKeyOrDefault is ElementByKey returning the zero value instead of
// NOT_FOUND. Upstream errors are still returned.
func ElementByKeyOrDefault[T any, K comparable](ctx context.Context, p *Pipeline[T], key K, keyFn func(T) K) (T, error) {
	return ElementByKeyOrDefaultFunc(ctx, p, key, keyFn, func(a, b K) bool { return a == b })
}

// ElementByKeyOrDefaultFunc is ElementByKeyOrDefault with a caller-supplied
// key equality.
func ElementByKeyOrDefaultFunc[T, K any](ctx context.Context, p *Pipeline[T], key K, keyFn func(T) K, eq func(a, b K) bool) (T, error) {
	val, _, err := findByKey(ctx, p, key, keyFn, eq)
	return val, err
}

func findByKey[T, K any](ctx context.Context, p *Pipeline[T], key K, keyFn func(T) K, eq func(a, b K) bool) (T, bool, error) {
	var zero T
	iter := p.create(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return zero, false, err
		}
		if !ok {
			return zero, false, nil
		}
		if eq(keyFn(val), key) {
			return val, true, nil
		}
	}
}

// SequenceEqualBy reports whether a and b have the same length and equal
// projected keys at every position. It stops at the first difference.
func SequenceEqualBy[T any, K comparable](ctx context.Context, a, b *Pipeline[T], keyFn func(T) K) (bool, error) {
	return SequenceEqualByFunc(ctx, a, b, keyFn, func(x, y K) bool { return x == y })
}

// SequenceEqualByFunc is SequenceEqualBy with a caller-supplied key equality.
func SequenceEqualByFunc[T, K any](ctx context.Context, a, b *Pipeline[T], keyFn func(T) K, eq func(x, y K) bool) (bool, error) {
	left := a.create(ctx)
	defer left.Close()
	right := b.create(ctx)
	defer right.Close()

	for {
		lv, lok, err := left.Next(ctx)
		if err != nil {
			return false, err
		}
		rv, rok, err := right.Next(ctx)
		if err != nil {
			return false, err
		}
		if lok != rok {
			return false, nil
		}
		if !lok {
			return true, nil
		}
		if !eq(keyFn(lv), keyFn(rv)) {
			return false, nil
		}
	}
}
