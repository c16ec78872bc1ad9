package pipeline

import (
	"context"

	"github.com/cespare/xxhash/v2"

	"github.com/kbukum/seqkit/validation"
)

// Indexed pairs a value with its zero-based position in the sequence.
type Indexed[T any] struct {
	Index int
	Value T
}

// KeyValue pairs a projected key with a value.
type KeyValue[K, V any] struct {
	Key   K
	Value V
}

// ToIndexed pairs each value with its zero-based position.
func ToIndexed[T any](p *Pipeline[T]) *Pipeline[Indexed[T]] {
	return &Pipeline[Indexed[T]]{
		create: func(ctx context.Context) Iterator[Indexed[T]] {
			return &indexIter[T]{source: p.create(ctx)}
		},
	}
}

// ToIndexedBy pairs each value with the result of fn applied to it.
func ToIndexedBy[T, K any](p *Pipeline[T], fn func(T) K) *Pipeline[KeyValue[K, T]] {
	return ToKeyPair(p, fn, func(v T) T { return v })
}

// ToKeyPair projects each value into a (key, value) pair.
func ToKeyPair[T, K, V any](p *Pipeline[T], keyFn func(T) K, valueFn func(T) V) *Pipeline[KeyValue[K, V]] {
	return Map(p, func(_ context.Context, v T) (KeyValue[K, V], error) {
		return KeyValue[K, V]{Key: keyFn(v), Value: valueFn(v)}, nil
	})
}

// HashedPair pairs each value with the 64-bit xxhash of its string key.
func HashedPair[T any](p *Pipeline[T], keyFn func(T) string) *Pipeline[KeyValue[uint64, T]] {
	return ToKeyPair(p, func(v T) uint64 { return xxhash.Sum64String(keyFn(v)) }, func(v T) T { return v })
}

// Pad yields every upstream value, then count zero values.
//
// Padding is additive: count fillers are appended regardless of how long the
// upstream was. Pad does not guarantee a minimum total length.
func Pad[T any](p *Pipeline[T], count int) (*Pipeline[T], error) {
	var zero T
	return PadWith(p, count, zero)
}

// PadWith yields every upstream value, then count copies of filler.
func PadWith[T any](p *Pipeline[T], count int, filler T) (*Pipeline[T], error) {
	if err := validation.NonNegative("count", count); err != nil {
		return nil, err
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &padIter[T]{source: p.create(ctx), filler: filler, remaining: count}
		},
	}, nil
}

// Exclude skips count values starting at startIndex and yields the rest
// unchanged. Fewer values are skipped if the upstream ends first.
func Exclude[T any](p *Pipeline[T], startIndex, count int) (*Pipeline[T], error) {
	if err := validation.New().
		NonNegative("startIndex", startIndex).
		NonNegative("count", count).
		Err(); err != nil {
		return nil, err
	}
	if count == 0 {
		return p, nil
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &excludeIter[T]{source: p.create(ctx), start: startIndex, count: count}
		},
	}, nil
}

// Move relocates the block of count values beginning at fromIndex so that it
// begins at toIndex in the output. All other values keep their relative
// order and shift to fill the gap. Both directions are supported.
//
// At most max(count, |fromIndex-toIndex|) values are buffered at a time.
func Move[T any](p *Pipeline[T], fromIndex, count, toIndex int) (*Pipeline[T], error) {
	if err := validation.New().
		NonNegative("fromIndex", fromIndex).
		NonNegative("count", count).
		NonNegative("toIndex", toIndex).
		Err(); err != nil {
		return nil, err
	}
	if fromIndex == toIndex || count == 0 {
		return p, nil
	}

	// Moving a block back is the same as moving the values it jumps over forward.
	prefix, size, gap := fromIndex, count, toIndex-fromIndex
	if toIndex < fromIndex {
		prefix, size, gap = toIndex, fromIndex-toIndex, count
	}
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			return &moveIter[T]{source: p.create(ctx), prefix: prefix, size: size, gap: gap}
		},
	}, nil
}

// --- Iterator implementations ---

type indexIter[T any] struct {
	source Iterator[T]
	index  int
}

func (it *indexIter[T]) Next(ctx context.Context) (Indexed[T], bool, error) {
	val, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return Indexed[T]{}, false, err
	}
	out := Indexed[T]{Index: it.index, Value: val}
	it.index++
	return out, true, nil
}

func (it *indexIter[T]) Close() error { return it.source.Close() }

type padIter[T any] struct {
	source    Iterator[T]
	filler    T
	remaining int
	drained   bool
}

func (it *padIter[T]) Next(ctx context.Context) (T, bool, error) {
	if !it.drained {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return val, false, err
		}
		if ok {
			return val, true, nil
		}
		it.drained = true
	}
	if it.remaining > 0 {
		it.remaining--
		return it.filler, true, nil
	}
	var zero T
	return zero, false, nil
}

func (it *padIter[T]) Close() error { return it.source.Close() }

type excludeIter[T any] struct {
	source Iterator[T]
	start  int
	count  int
	index  int
}

func (it *excludeIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return val, false, err
		}
		i := it.index
		it.index++
		if i >= it.start && i-it.start < it.count {
			continue
		}
		return val, true, nil
	}
}

func (it *excludeIter[T]) Close() error { return it.source.Close() }

type movePhase int

const (
	movePrefix movePhase = iota
	moveFill
	moveGap
	moveFlush
	moveRest
)

// moveIter yields prefix values, buffers size values, yields up to gap
// values, flushes the buffer and then passes the remainder through.
type moveIter[T any] struct {
	source  Iterator[T]
	prefix  int
	size    int
	gap     int
	phase   movePhase
	buffer  []T
	flushed int
	done    bool
}

func (it *moveIter[T]) pull(ctx context.Context) (T, bool, error) {
	if it.done {
		var zero T
		return zero, false, nil
	}
	val, ok, err := it.source.Next(ctx)
	if err == nil && !ok {
		it.done = true
	}
	return val, ok, err
}

func (it *moveIter[T]) Next(ctx context.Context) (T, bool, error) {
	for {
		switch it.phase {
		case movePrefix:
			if it.prefix == 0 {
				it.phase = moveFill
				continue
			}
			val, ok, err := it.pull(ctx)
			if err != nil {
				return val, false, err
			}
			if !ok {
				it.phase = moveRest
				continue
			}
			it.prefix--
			return val, true, nil

		case moveFill:
			it.buffer = make([]T, 0, min(it.size, 64))
			for len(it.buffer) < it.size {
				val, ok, err := it.pull(ctx)
				if err != nil {
					return val, false, err
				}
				if !ok {
					break
				}
				it.buffer = append(it.buffer, val)
			}
			it.phase = moveGap

		case moveGap:
			if it.gap == 0 {
				it.phase = moveFlush
				continue
			}
			val, ok, err := it.pull(ctx)
			if err != nil {
				return val, false, err
			}
			if !ok {
				it.phase = moveFlush
				continue
			}
			it.gap--
			return val, true, nil

		case moveFlush:
			if it.flushed < len(it.buffer) {
				val := it.buffer[it.flushed]
				it.flushed++
				return val, true, nil
			}
			it.buffer = nil
			it.phase = moveRest

		default:
			return it.pull(ctx)
		}
	}
}

func (it *moveIter[T]) Close() error { return it.source.Close() }
