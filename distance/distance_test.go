package distance

import (
	"math"
	"testing"

	"github.com/hupe1980/sparsevec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec = sparsevec.Vector[string, float64]

func v(m map[string]float64) vec { return sparsevec.New(m) }

func TestDot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     vec
		expected float64
	}{
		{"Simple", v(map[string]float64{"a": 1, "b": 2, "c": 3}), v(map[string]float64{"a": 4, "b": 5, "c": 6}), 32},
		{"Disjoint", v(map[string]float64{"a": 1}), v(map[string]float64{"b": 1}), 0},
		{"Mixed", v(map[string]float64{"a": 1, "b": -1, "c": 2}), v(map[string]float64{"a": 1, "b": 1, "c": -2}), -4},
		{"Empty", vec{}, vec{}, 0},
		{"Partial", v(map[string]float64{"a": 2, "b": 7}), v(map[string]float64{"a": 3}), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Dot(tt.a, tt.b), 1e-9)
			assert.InDelta(t, tt.expected, Dot(tt.b, tt.a), 1e-9)
		})
	}
}

func TestSquaredL2(t *testing.T) {
	tests := []struct {
		name     string
		a, b     vec
		expected float64
	}{
		{"Simple", v(map[string]float64{"a": 1, "b": 2, "c": 3}), v(map[string]float64{"a": 4, "b": 5, "c": 6}), 27},
		{"Identical", v(map[string]float64{"a": 1, "b": 2}), v(map[string]float64{"a": 1, "b": 2}), 0},
		{"Disjoint", v(map[string]float64{"a": 1}), v(map[string]float64{"b": -2}), 5},
		{"Mixed", v(map[string]float64{"a": 1, "b": -1}), v(map[string]float64{"a": -1, "b": 1}), 8},
		{"Empty", vec{}, vec{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SquaredL2(tt.a, tt.b), 1e-9)
			assert.InDelta(t, math.Sqrt(tt.expected), L2(tt.a, tt.b), 1e-9)
		})
	}
}

func TestL2MatchesVectorDistance(t *testing.T) {
	a := v(map[string]float64{"x": 3, "y": 1})
	b := v(map[string]float64{"y": 1, "z": 4})

	want, err := a.Distance(b)
	require.NoError(t, err)
	assert.InDelta(t, want, L2(a, b), 1e-9)
	assert.InDelta(t, 5.0, want, 1e-9)
}

func TestL2SmallIntegers(t *testing.T) {
	a := sparsevec.New(map[string]int8{"x": 100})
	b := sparsevec.New(map[string]int8{"x": -100})

	// 200 does not fit into int8, the float64 computation is unaffected.
	assert.InDelta(t, 200.0, L2(a, b), 1e-9)
}

func TestCosine(t *testing.T) {
	a := v(map[string]float64{"x": 1, "y": 1})

	assert.InDelta(t, 1.0, Cosine(a, a.Scale(3)), 1e-9)
	assert.InDelta(t, -1.0, Cosine(a, a.Neg()), 1e-9)
	assert.InDelta(t, 0.0, Cosine(a, v(map[string]float64{"z": 5})), 1e-9)
	assert.InDelta(t, math.Sqrt(0.5), Cosine(a, v(map[string]float64{"x": 2})), 1e-9)
	assert.Equal(t, 0.0, Cosine(a, vec{}))
}

func TestNormalizeL2(t *testing.T) {
	t.Run("NonZero", func(t *testing.T) {
		n, ok := NormalizeL2(v(map[string]float64{"x": 3, "y": 4}))
		require.True(t, ok)
		assert.InDelta(t, 0.6, n.Get("x"), 1e-9)
		assert.InDelta(t, 0.8, n.Get("y"), 1e-9)

		norm, err := n.Norm()
		require.NoError(t, err)
		assert.InDelta(t, 1.0, norm, 1e-9)
	})

	t.Run("Empty", func(t *testing.T) {
		n, ok := NormalizeL2(vec{})
		assert.False(t, ok)
		assert.True(t, n.IsEmpty())
	})
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "L2", MetricL2.String())
		assert.Equal(t, "Cosine", MetricCosine.String())
		assert.Equal(t, "Dot", MetricDot.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Provider", func(t *testing.T) {
		a := v(map[string]float64{"a": 1, "b": 2, "c": 3})
		b := v(map[string]float64{"a": 4, "b": 5, "c": 6})

		f, err := Provider[string, float64](MetricL2)
		require.NoError(t, err)
		assert.InDelta(t, math.Sqrt(27), f(a, b), 1e-9)

		f, err = Provider[string, float64](MetricDot)
		require.NoError(t, err)
		assert.InDelta(t, 32.0, f(a, b), 1e-9)

		f, err = Provider[string, float64](MetricCosine)
		require.NoError(t, err)
		assert.InDelta(t, Cosine(a, b), f(a, b), 1e-9)

		_, err = Provider[string, float64](Metric(99))
		var target *ErrInvalidMetric
		require.ErrorAs(t, err, &target)
		assert.Equal(t, Metric(99), target.Metric)
	})
}
