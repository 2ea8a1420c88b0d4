package sparsevec

import (
	"iter"
	"maps"
)

// Lookup is anything that returns a value for a key, zero when absent.
// It is the right-hand operand of Vector.Dot.
type Lookup[K comparable, V Number] interface {
	Get(key K) V
}

// Enumerable enumerates the keys that may hold non-zero values.
type Enumerable[K comparable] interface {
	Support() iter.Seq[K]
}

// Source is a Lookup that can also enumerate its keys.
type Source[K comparable, V Number] interface {
	Lookup[K, V]
	Enumerable[K]
}

// Map adapts a plain map to Source.
//
// Unlike a Vector, a Map may contain zero entries; they are yielded by
// Support and dropped by FromSource.
type Map[K comparable, V Number] map[K]V

// Get returns m[key].
func (m Map[K, V]) Get(key K) V { return m[key] }

// Support returns an iterator over the keys of m.
func (m Map[K, V]) Support() iter.Seq[K] { return maps.Keys(m) }

var (
	_ Source[string, float64] = Vector[string, float64]{}
	_ Source[string, float64] = Map[string, float64]{}
)
