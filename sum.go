package sparsevec

import (
	"iter"
	"slices"
)

// Monoid is a type with an associative Add. Together with an identity
// element it can be folded with Fold.
type Monoid[T any] interface {
	Add(T) T
}

// Fold left-folds seq with Add, starting from identity. seq is consumed
// exactly once; an empty seq yields identity.
func Fold[T Monoid[T]](identity T, seq iter.Seq[T]) T {
	acc := identity
	for x := range seq {
		acc = acc.Add(x)
	}
	return acc
}

// Sum adds all vectors of seq. An empty seq yields the empty vector.
func Sum[K comparable, V Number](seq iter.Seq[Vector[K, V]]) Vector[K, V] {
	return Fold(Empty[K, V](), seq)
}

// SumOf adds all given vectors.
func SumOf[K comparable, V Number](vs ...Vector[K, V]) Vector[K, V] {
	return Sum(slices.Values(vs))
}
