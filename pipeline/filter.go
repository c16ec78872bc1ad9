package pipeline

import "cmp"

// Without drops values that satisfy the predicate. It is Filter with the
// predicate negated.
func Without[T any](p *Pipeline[T], pred func(T) bool) *Pipeline[T] {
	return Filter(p, func(v T) bool { return !pred(v) })
}

// WhereIf applies Filter only when cond is true; otherwise p is returned as-is.
func WhereIf[T any](p *Pipeline[T], cond bool, pred func(T) bool) *Pipeline[T] {
	if !cond {
		return p
	}
	return Filter(p, pred)
}

// WithoutIf applies Without only when cond is true; otherwise p is returned as-is.
func WithoutIf[T any](p *Pipeline[T], cond bool, pred func(T) bool) *Pipeline[T] {
	if !cond {
		return p
	}
	return Without(p, pred)
}

// Equals keeps only values equal to value.
func Equals[T comparable](p *Pipeline[T], value T) *Pipeline[T] {
	return Filter(p, func(v T) bool { return v == value })
}

// EqualsFunc keeps only values that eq reports equal to value.
func EqualsFunc[T any](p *Pipeline[T], value T, eq func(a, b T) bool) *Pipeline[T] {
	return Filter(p, func(v T) bool { return eq(v, value) })
}

// Diff drops values equal to value.
func Diff[T comparable](p *Pipeline[T], value T) *Pipeline[T] {
	return Without(p, func(v T) bool { return v == value })
}

// DiffFunc drops values that eq reports equal to value.
func DiffFunc[T any](p *Pipeline[T], value T, eq func(a, b T) bool) *Pipeline[T] {
	return Without(p, func(v T) bool { return eq(v, value) })
}

// Between keeps values in the inclusive range [lo, hi].
func Between[T cmp.Ordered](p *Pipeline[T], lo, hi T) *Pipeline[T] {
	return Filter(p, func(v T) bool { return cmp.Compare(v, lo) >= 0 && cmp.Compare(v, hi) <= 0 })
}
