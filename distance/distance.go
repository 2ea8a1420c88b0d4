// Package distance provides public API for distance calculations between
// sparse vectors. All results are computed in float64.
package distance

import (
	"fmt"
	"math"

	"github.com/hupe1980/sparsevec"
	"golang.org/x/exp/constraints"
)

// Dot calculates the dot product of two vectors.
// Only the support of the smaller vector is visited.
func Dot[K comparable, V sparsevec.Number](a, b sparsevec.Vector[K, V]) float64 {
	if a.Len() > b.Len() {
		a, b = b, a
	}
	var sum float64
	for k, v := range a.All() {
		sum += float64(v) * float64(b.Get(k))
	}
	return sum
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Keys missing from one side count as zero.
func SquaredL2[K comparable, V sparsevec.Number](a, b sparsevec.Vector[K, V]) float64 {
	var sum float64
	for k, v := range a.All() {
		d := float64(v) - float64(b.Get(k))
		sum += d * d
	}
	for k, v := range b.All() {
		if a.Get(k) != 0 {
			continue
		}
		d := float64(v)
		sum += d * d
	}
	return sum
}

// L2 calculates the Euclidean distance between two vectors.
// It equals sparsevec.Vector.Distance without the error result.
func L2[K comparable, V sparsevec.Number](a, b sparsevec.Vector[K, V]) float64 {
	return math.Sqrt(SquaredL2(a, b))
}

// Cosine calculates the cosine similarity of two vectors.
// Returns 0 if either vector has zero norm.
func Cosine[K comparable, V sparsevec.Number](a, b sparsevec.Vector[K, V]) float64 {
	na := math.Sqrt(Dot(a, a))
	nb := math.Sqrt(Dot(b, b))
	if na == 0 || nb == 0 {
		return 0
	}
	return Dot(a, b) / (na * nb)
}

// NormalizeL2 returns v scaled to unit L2 norm.
// Returns false if v has zero L2 norm.
func NormalizeL2[K comparable, V constraints.Float](v sparsevec.Vector[K, V]) (sparsevec.Vector[K, V], bool) {
	norm := math.Sqrt(Dot(v, v))
	if norm == 0 {
		return sparsevec.Vector[K, V]{}, false
	}
	return v.Scale(V(1 / norm)), true
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricCosine
	MetricDot
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricCosine:
		return "Cosine"
	case MetricDot:
		return "Dot"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// ErrInvalidMetric indicates an unsupported metric.
type ErrInvalidMetric struct {
	Metric Metric
}

func (e *ErrInvalidMetric) Error() string {
	return fmt.Sprintf("unsupported metric: %v", e.Metric)
}

// Func is a function type for distance calculation.
type Func[K comparable, V sparsevec.Number] func(a, b sparsevec.Vector[K, V]) float64

// Provider returns the distance function for the given metric.
func Provider[K comparable, V sparsevec.Number](m Metric) (Func[K, V], error) {
	switch m {
	case MetricL2:
		return L2[K, V], nil
	case MetricCosine:
		return Cosine[K, V], nil
	case MetricDot:
		return Dot[K, V], nil
	default:
		return nil, &ErrInvalidMetric{Metric: m}
	}
}
