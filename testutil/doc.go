// Package testutil provides testing utilities for sparsevec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating random sparse
// vectors over a fixed key universe.
//
// # Random Vector Generation
//
//	rng := testutil.NewRNG(seed)
//	v := rng.Vector(64, 0.1)             // ~10% of 64 keys, values in [-1, 1)
//	w := rng.IntVector(64, 0.1, 100)     // integer values in [-100, 100]
//	vs := rng.IntVectors(8, 64, 0.1, 9)  // batches for law checks
package testutil
