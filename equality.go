package sparsevec

// Equality is the outcome of comparing a Vector with an arbitrary value.
type Equality int

const (
	// Incomparable means the value is of a type a Vector cannot be compared with.
	Incomparable Equality = iota
	// IsEqual means both sides hold the same entries.
	IsEqual
	// NotEqual means both sides are comparable but hold different entries.
	NotEqual
)

func (e Equality) String() string {
	switch e {
	case IsEqual:
		return "Equal"
	case NotEqual:
		return "NotEqual"
	default:
		return "Incomparable"
	}
}

// Not inverts IsEqual and NotEqual. Incomparable stays Incomparable.
func (e Equality) Not() Equality {
	switch e {
	case IsEqual:
		return NotEqual
	case NotEqual:
		return IsEqual
	default:
		return Incomparable
	}
}

func equality(b bool) Equality {
	if b {
		return IsEqual
	}
	return NotEqual
}

// Equal reports whether v and o hold the same keys with the same values.
func (v Vector[K, V]) Equal(o Vector[K, V]) bool {
	if len(v.keys) != len(o.keys) {
		return false
	}
	for _, k := range v.keys {
		ov, ok := o.data[k]
		if !ok || ov != v.data[k] {
			return false
		}
	}
	return true
}

// EqualMap reports whether m holds exactly the entries of v. An explicit
// zero entry in m makes the two unequal.
func (v Vector[K, V]) EqualMap(m map[K]V) bool {
	if len(m) != len(v.keys) {
		return false
	}
	for _, k := range v.keys {
		mv, ok := m[k]
		if !ok || mv != v.data[k] {
			return false
		}
	}
	return true
}

// Equals compares v with other, which may be a Vector, a *Vector, a plain
// map or a Map of the same key and value types. Any other type, including
// a nil *Vector, yields Incomparable.
func (v Vector[K, V]) Equals(other any) Equality {
	switch o := other.(type) {
	case Vector[K, V]:
		return equality(v.Equal(o))
	case *Vector[K, V]:
		if o == nil {
			return Incomparable
		}
		return equality(v.Equal(*o))
	case map[K]V:
		return equality(v.EqualMap(o))
	case Map[K, V]:
		return equality(v.EqualMap(o))
	default:
		return Incomparable
	}
}

// NotEquals is the negation of Equals; Incomparable is passed through.
func (v Vector[K, V]) NotEquals(other any) Equality {
	return v.Equals(other).Not()
}
