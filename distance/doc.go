// Package distance provides distance and similarity calculations between
// sparse vectors.
//
// Vector.Dot and Vector.Norm compute in the vector's own value type. The
// functions here convert every value to float64 first, which makes them
// safe for small integer types and lets them serve as ranking scores.
//
// # Supported Metrics
//
//   - MetricL2: Euclidean distance
//   - MetricCosine: Cosine similarity (normalized dot product)
//   - MetricDot: Dot product (inner product)
//
// # Usage
//
//	dist := distance.SquaredL2(a, b)
//	sim := distance.Cosine(a, b)
//	normalized, ok := distance.NormalizeL2(vec)
package distance
