package sparsevec

// options accumulates entries for a Vector under construction.
//
// keys records first-insertion order so the built Vector has a stable
// key order for its whole lifetime.
type options[K comparable, V Number] struct {
	data map[K]V
	keys []K
}

func newOptions[K comparable, V Number](capacity int) *options[K, V] {
	return &options[K, V]{
		data: make(map[K]V, capacity),
		keys: make([]K, 0, capacity),
	}
}

func (o *options[K, V]) set(key K, value V) {
	if _, ok := o.data[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.data[key] = value
}

// build drops every zero entry and hands the storage to a new Vector.
// The options must not be used afterwards.
func (o *options[K, V]) build() Vector[K, V] {
	keys := o.keys[:0]
	for _, k := range o.keys {
		if o.data[k] == 0 {
			delete(o.data, k)
			continue
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return Vector[K, V]{}
	}
	return Vector[K, V]{data: o.data, keys: keys}
}

// Option configures the entries of a Vector built by New.
//
// Options are applied in order after the initial map, so they take
// precedence over it on key collision.
type Option[K comparable, V Number] func(*options[K, V])

// WithEntry sets a single key to value.
//
// Example:
//
//	v := sparsevec.New(map[string]int{"x": 1}, sparsevec.WithEntry("y", 2))
func WithEntry[K comparable, V Number](key K, value V) Option[K, V] {
	return func(o *options[K, V]) {
		o.set(key, value)
	}
}

// WithEntries merges all entries of m. The map is copied, not retained.
func WithEntries[K comparable, V Number](m map[K]V) Option[K, V] {
	return func(o *options[K, V]) {
		for k, v := range m {
			o.set(k, v)
		}
	}
}
