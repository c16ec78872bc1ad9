package pipeline

import (
	"cmp"
	"context"
	"slices"

	"github.com/kbukum/seqkit/validation"
)

// RankElement is one entry of a ranking: its zero-based position, the key it
// was ordered by, and the original value. RankElements are values; when S
// and K are comparable, == compares all three fields.
type RankElement[S, K any] struct {
	Rank   int
	Target K
	Source S
}

// Equal compares all three fields using the supplied equalities, for source
// or key types that do not support ==.
func (e RankElement[S, K]) Equal(other RankElement[S, K], eqSource func(a, b S) bool, eqTarget func(a, b K) bool) bool {
	return e.Rank == other.Rank && eqTarget(e.Target, other.Target) && eqSource(e.Source, other.Source)
}

// Rank orders the pipeline by key ascending and yields the first count
// values as RankElements. Ties keep their encounter order.
//
// The whole upstream is materialized on the first pull.
func Rank[T any, K cmp.Ordered](p *Pipeline[T], key func(T) K, count int) (*Pipeline[RankElement[T, K]], error) {
	return RankFunc(p, key, cmp.Compare[K], count)
}

// RankDescending is Rank with the key order reversed. Ties still keep their
// encounter order.
func RankDescending[T any, K cmp.Ordered](p *Pipeline[T], key func(T) K, count int) (*Pipeline[RankElement[T, K]], error) {
	return RankFunc(p, key, func(a, b K) int { return cmp.Compare(b, a) }, count)
}

// RankFunc is Rank with a caller-supplied key comparison.
func RankFunc[T, K any](p *Pipeline[T], key func(T) K, compare func(a, b K) int, count int) (*Pipeline[RankElement[T, K]], error) {
	if err := validation.NonNegative("count", count); err != nil {
		return nil, err
	}
	return &Pipeline[RankElement[T, K]]{
		create: func(ctx context.Context) Iterator[RankElement[T, K]] {
			return &rankIter[T, K]{source: p.create(ctx), key: key, compare: compare, count: count}
		},
	}, nil
}

type rankIter[T, K any] struct {
	source  Iterator[T]
	key     func(T) K
	compare func(a, b K) int
	count   int
	ranked  []RankElement[T, K]
	pos     int
	loaded  bool
}

func (it *rankIter[T, K]) load(ctx context.Context) error {
	it.loaded = true
	var all []RankElement[T, K]
	for {
		val, ok, err := it.source.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		all = append(all, RankElement[T, K]{Target: it.key(val), Source: val})
	}

	slices.SortStableFunc(all, func(a, b RankElement[T, K]) int {
		return it.compare(a.Target, b.Target)
	})
	if len(all) > it.count {
		all = all[:it.count]
	}
	for i := range all {
		all[i].Rank = i
	}
	it.ranked = all
	return nil
}

func (it *rankIter[T, K]) Next(ctx context.Context) (RankElement[T, K], bool, error) {
	if !it.loaded {
		if err := it.load(ctx); err != nil {
			return RankElement[T, K]{}, false, err
		}
	}
	if it.pos >= len(it.ranked) {
		return RankElement[T, K]{}, false, nil
	}
	out := it.ranked[it.pos]
	it.pos++
	return out, true, nil
}

func (it *rankIter[T, K]) Close() error { return it.source.Close() }
