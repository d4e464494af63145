// SPDX-License-Identifier: MIT
// Package vector_test contains shared fixtures.
//
// Purpose:
//   - Keep the single-precision operands used across the scenario tests in one place.
//   - Provide seeded random vectors for the algebraic property tests.

package vector_test

import (
	"math/rand"

	"github.com/katalvlaran/linalg/vector"
)

// Single-precision operands: a = (1..N), b = (N+1..2N) for N = 2, 3, 4
// (b2 is (3,4)).
var (
	a2 = vector.Float2{X: 1, Y: 2}
	a3 = vector.Float3{X: 1, Y: 2, Z: 3}
	a4 = vector.Float4{X: 1, Y: 2, Z: 3, W: 4}

	b2 = vector.Float2{X: 3, Y: 4}
	b3 = vector.Float3{X: 4, Y: 5, Z: 6}
	b4 = vector.Float4{X: 5, Y: 6, Z: 7, W: 8}
)

// Pre-computed roots (the tests must not depend on math.Sqrt).
const (
	kSqrt5  = 2.236067977
	kSqrt8  = 2.8284271247
	kSqrt14 = 3.7416573867
	kSqrt27 = 5.1961524227
	kSqrt30 = 5.4772255750
)

// propertyRounds is the number of random samples per property.
const propertyRounds = 200

// newRand returns a deterministic source so failures are reproducible.
func newRand() *rand.Rand { return rand.New(rand.NewSource(42)) }

// randInt3 draws components in [-50, 50]; small enough that no product overflows.
func randInt3(r *rand.Rand) vector.Int3 {
	return vector.Int3{X: r.Intn(101) - 50, Y: r.Intn(101) - 50, Z: r.Intn(101) - 50}
}

func randInt4(r *rand.Rand) vector.Int4 {
	return vector.Int4{X: r.Intn(101) - 50, Y: r.Intn(101) - 50, Z: r.Intn(101) - 50, W: r.Intn(101) - 50}
}

func randDouble3(r *rand.Rand) vector.Double3 {
	return vector.Double3{X: r.NormFloat64(), Y: r.NormFloat64(), Z: r.NormFloat64()}
}
