// Package sparsevec provides an immutable sparse vector over arbitrary keys.
//
// A Vector maps keys to numbers; every key that is not stored has the value
// zero. Zero values are dropped on construction, so the stored entries are
// always exactly the support of the vector.
//
// # Quick Start
//
//	a := sparsevec.New(map[string]float64{"x": 1, "y": 2})
//	b := sparsevec.New(map[string]float64{"y": -2, "z": 3})
//
//	sum := a.Add(b)            // map[x:1 z:3]
//	diff := a.Sub(b)           // map[x:1 y:4 z:-3]
//	scaled := a.Scale(2)       // map[x:2 y:4]
//	dot := a.Dot(b)            // -4
//	norm, _ := a.Norm()        // sqrt(5)
//	dist, _ := a.Distance(b)   // ‖a - b‖
//
// # Construction
//
// New copies its input map and applies options on top of it:
//
//	v := sparsevec.New(map[string]int{"x": 0}, sparsevec.WithEntry("y", 2))
//	v.Len()      // 1
//	v.Get("x")   // 0, missing keys never fail
//
// # Equality
//
// Vectors compare with Equal, or with a plain map through EqualMap.
// Equals accepts any value and returns Incomparable for unsupported types:
//
//	v.Equals(map[string]int{"y": 2}) // IsEqual
//	v.Equals("y")                    // Incomparable
//
// # Summation
//
// Sum folds a sequence of vectors with Add, starting from the empty vector.
// Fold generalizes this to any Monoid.
//
//	total := sparsevec.SumOf(a, b, sparsevec.Empty[string, float64]())
//
// # Thread Safety
//
// Vectors are never mutated after construction and may be shared freely.
package sparsevec
