package pipeline

import "context"

// DistinctBy keeps the first value for each distinct key and drops every
// later value whose key was already seen. Seen keys are retained for the
// lifetime of one enumeration, so memory grows with key cardinality.
func DistinctBy[T any, K comparable](p *Pipeline[T], key func(T) K) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			seen := make(map[K]struct{})
			return &filterIter[T]{
				source: p.create(ctx),
				fn: func(v T) bool {
					k := key(v)
					if _, ok := seen[k]; ok {
						return false
					}
					seen[k] = struct{}{}
					return true
				},
			}
		},
	}
}

// DistinctByFunc is DistinctBy with a caller-supplied key equality. Keys
// that cannot be hashed are compared linearly against every seen key.
func DistinctByFunc[T, K any](p *Pipeline[T], key func(T) K, eq func(a, b K) bool) *Pipeline[T] {
	return &Pipeline[T]{
		create: func(ctx context.Context) Iterator[T] {
			var seen []K
			return &filterIter[T]{
				source: p.create(ctx),
				fn: func(v T) bool {
					k := key(v)
					for _, s := range seen {
						if eq(s, k) {
							return false
						}
					}
					seen = append(seen, k)
					return true
				},
			}
		},
	}
}
