package testutil

import (
	"math/rand"
	"strconv"
	"sync"

	"github.com/hupe1980/sparsevec"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [-1.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()*2 - 1
}

// Key returns the i-th key of the universe used by the generators.
func Key(i int) string {
	return "k" + strconv.Itoa(i)
}

// Vector generates a random vector over the keys Key(0)..Key(keys-1).
// Each key is present with probability density and holds a value in [-1, 1).
func (r *RNG) Vector(keys int, density float64) sparsevec.Vector[string, float64] {
	r.mu.Lock()
	defer r.mu.Unlock()

	m := make(map[string]float64)
	for i := range keys {
		if r.rand.Float64() < density {
			m[Key(i)] = r.rand.Float64()*2 - 1
		}
	}
	return sparsevec.New(m)
}

// IntVector generates a random integer vector over the keys
// Key(0)..Key(keys-1). Each key is present with probability density and
// holds a value in [-maxAbs, maxAbs]; a drawn zero leaves the key absent.
// A non-positive maxAbs yields the empty vector.
func (r *RNG) IntVector(keys int, density float64, maxAbs int) sparsevec.Vector[string, int] {
	if maxAbs <= 0 {
		return sparsevec.Vector[string, int]{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m := make(map[string]int)
	for i := range keys {
		if r.rand.Float64() < density {
			m[Key(i)] = r.rand.Intn(2*maxAbs+1) - maxAbs
		}
	}
	return sparsevec.New(m)
}

// Vectors generates num random vectors, see Vector.
func (r *RNG) Vectors(num, keys int, density float64) []sparsevec.Vector[string, float64] {
	vectors := make([]sparsevec.Vector[string, float64], num)
	for i := range vectors {
		vectors[i] = r.Vector(keys, density)
	}
	return vectors
}

// IntVectors generates num random integer vectors, see IntVector.
func (r *RNG) IntVectors(num, keys int, density float64, maxAbs int) []sparsevec.Vector[string, int] {
	vectors := make([]sparsevec.Vector[string, int], num)
	for i := range vectors {
		vectors[i] = r.IntVector(keys, density, maxAbs)
	}
	return vectors
}
