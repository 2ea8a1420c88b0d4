package sparsevec

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"golang.org/x/exp/constraints"
)

// Number is the set of value types a Vector can hold.
//
// A value is treated as absent exactly when it equals the additive
// identity of its type, so -0.0 is dropped and NaN is kept.
type Number interface {
	constraints.Integer | constraints.Float
}

// Vector is an immutable sparse vector: a mapping from keys to numbers in
// which every key that is not stored has the value zero.
//
// Only non-zero values are ever stored. Every operation returns a new
// Vector and never modifies its operands, so a Vector may be shared
// between goroutines freely. The zero value is the empty vector.
type Vector[K comparable, V Number] struct {
	data map[K]V
	keys []K
}

// New creates a Vector from m, overlaid with opts.
//
// m is copied; later changes to it do not affect the vector. Entries whose
// value is zero are dropped.
func New[K comparable, V Number](m map[K]V, opts ...Option[K, V]) Vector[K, V] {
	o := newOptions[K, V](len(m) + len(opts))
	for k, v := range m {
		o.set(k, v)
	}
	for _, opt := range opts {
		opt(o)
	}
	return o.build()
}

// Empty returns the empty vector, the identity element of Add.
func Empty[K comparable, V Number]() Vector[K, V] {
	return Vector[K, V]{}
}

// FromSource creates a Vector holding every non-zero value of src.
func FromSource[K comparable, V Number](src Source[K, V]) Vector[K, V] {
	o := newOptions[K, V](0)
	for k := range src.Support() {
		o.set(k, src.Get(k))
	}
	return o.build()
}

// Len returns the number of stored (non-zero) entries.
func (v Vector[K, V]) Len() int { return len(v.keys) }

// IsEmpty reports whether v has no non-zero entries.
func (v Vector[K, V]) IsEmpty() bool { return len(v.keys) == 0 }

// Get returns the value stored for key, or zero if key is absent.
func (v Vector[K, V]) Get(key K) V {
	return v.data[key]
}

// Keys returns the support of v. The order is fixed for v and matches Values.
func (v Vector[K, V]) Keys() []K {
	return slices.Clone(v.keys)
}

// Values returns the stored values in the order of Keys.
func (v Vector[K, V]) Values() []V {
	values := make([]V, len(v.keys))
	for i, k := range v.keys {
		values[i] = v.data[k]
	}
	return values
}

// Support returns an iterator over the keys of v.
func (v Vector[K, V]) Support() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range v.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over the key/value pairs of v.
func (v Vector[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range v.keys {
			if !yield(k, v.data[k]) {
				return
			}
		}
	}
}

// Map returns a copy of the stored entries.
func (v Vector[K, V]) Map() map[K]V {
	m := make(map[K]V, len(v.keys))
	for _, k := range v.keys {
		m[k] = v.data[k]
	}
	return m
}

// Add returns v + o. Keys missing from either side count as zero, and
// sums that cancel out are dropped.
func (v Vector[K, V]) Add(o Vector[K, V]) Vector[K, V] {
	sum := newOptions[K, V](len(v.keys) + len(o.keys))
	for _, k := range v.keys {
		sum.set(k, v.data[k])
	}
	for _, k := range o.keys {
		sum.set(k, sum.data[k]+o.data[k])
	}
	return sum.build()
}

// Sub returns v - o, computed as v + (-1)*o.
//
// For unsigned value types the negation wraps, which still yields the
// element-wise difference modulo the type's range.
func (v Vector[K, V]) Sub(o Vector[K, V]) Vector[K, V] {
	return v.Add(o.Neg())
}

// Neg returns (-1)*v.
func (v Vector[K, V]) Neg() Vector[K, V] {
	var one V = 1
	return v.Scale(-one)
}

// Scale returns v*r. A zero r yields the empty vector.
func (v Vector[K, V]) Scale(r V) Vector[K, V] {
	scaled := newOptions[K, V](len(v.keys))
	for _, k := range v.keys {
		scaled.set(k, v.data[k]*r)
	}
	return scaled.build()
}

// Mul returns r*v, the left-hand form of Vector.Scale. Both forms always
// produce equal vectors.
func Mul[K comparable, V Number](r V, v Vector[K, V]) Vector[K, V] {
	scaled := newOptions[K, V](len(v.keys))
	for _, k := range v.keys {
		scaled.set(k, r*v.data[k])
	}
	return scaled.build()
}

// Dot returns the inner product of v and o.
//
// Only the support of v is visited, so the cost is O(v.Len()) regardless
// of o. The result is zero when v is empty.
func (v Vector[K, V]) Dot(o Lookup[K, V]) V {
	var sum V
	for _, k := range v.keys {
		sum += v.data[k] * o.Get(k)
	}
	return sum
}

// Norm returns the Euclidean norm sqrt(v·v).
//
// The squares are summed in float64, so integer value types never wrap.
// A negative sum, unreachable for the Number types, is reported as a
// *DomainError wrapping ErrNegativeInnerProduct.
func (v Vector[K, V]) Norm() (float64, error) {
	var sq float64
	for _, k := range v.keys {
		x := float64(v.data[k])
		sq += x * x
	}
	return sqrt("norm", sq)
}

// Distance returns the Euclidean distance ‖v - o‖.
//
// Differences are taken in float64, so the result equals v.Sub(o).Norm()
// whenever the subtraction does not overflow V, and stays exact when it would.
func (v Vector[K, V]) Distance(o Vector[K, V]) (float64, error) {
	var sq float64
	for _, k := range v.keys {
		d := float64(v.data[k]) - float64(o.data[k])
		sq += d * d
	}
	for _, k := range o.keys {
		if _, ok := v.data[k]; ok {
			continue
		}
		d := float64(o.data[k])
		sq += d * d
	}
	return sqrt("distance", sq)
}

func sqrt(op string, sq float64) (float64, error) {
	if sq < 0 {
		return 0, &DomainError{Op: op, Value: sq, cause: ErrNegativeInnerProduct}
	}
	return math.Sqrt(sq), nil
}

// Sparsify returns a copy of v without zero entries. Since a Vector never
// stores zeros this is equal to v.
func (v Vector[K, V]) Sparsify() Vector[K, V] {
	o := newOptions[K, V](len(v.keys))
	for _, k := range v.keys {
		o.set(k, v.data[k])
	}
	return o.build()
}

// String formats v like a map with sorted keys, e.g. "map[x:1 y:2]".
func (v Vector[K, V]) String() string {
	return fmt.Sprint(v.Map())
}
