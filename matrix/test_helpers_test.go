// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide deterministic random fixtures with small integer entries, so
//     every product is exact and results can be compared with ==.
//   • Convert fixed-size matrices into gonum Dense values used as the
//     reference implementation for products.

package matrix_test

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// propertyRounds is the number of random samples per property.
const propertyRounds = 100

func newRand() *rand.Rand { return rand.New(rand.NewSource(7)) }

// small draws an integer-valued float64 in [-9, 9].
func small(r *rand.Rand) float64 { return float64(r.Intn(19) - 9) }

func randVec2(r *rand.Rand) vector.Double2 {
	return vector.Double2{X: small(r), Y: small(r)}
}

func randVec3(r *rand.Rand) vector.Double3 {
	return vector.Double3{X: small(r), Y: small(r), Z: small(r)}
}

func randVec4(r *rand.Rand) vector.Double4 {
	return vector.Double4{X: small(r), Y: small(r), Z: small(r), W: small(r)}
}

func randMat2x2(r *rand.Rand) matrix.Double2x2 {
	return matrix.Double2x2{X: randVec2(r), Y: randVec2(r)}
}

func randMat3x3(r *rand.Rand) matrix.Double3x3 {
	return matrix.Double3x3{X: randVec3(r), Y: randVec3(r), Z: randVec3(r)}
}

func randMat4x4(r *rand.Rand) matrix.Double4x4 {
	return matrix.Double4x4{X: randVec4(r), Y: randVec4(r), Z: randVec4(r), W: randVec4(r)}
}

// shaped is anything reporting a (rows, cols) shape.
type shaped interface {
	Dims() (rows, cols int)
}

// dense copies a matrix into a gonum Dense through a per-element getter.
func dense(m shaped, at func(i, j int) float64) *mat.Dense {
	rows, cols := m.Dims()
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, at(i, j))
		}
	}

	return d
}

func dense2(m matrix.Double2x2) *mat.Dense {
	return dense(m, func(i, j int) float64 { r, _ := m.Row(i); v, _ := r.At(j); return v })
}

func dense3(m matrix.Double3x3) *mat.Dense {
	return dense(m, func(i, j int) float64 { r, _ := m.Row(i); v, _ := r.At(j); return v })
}

func dense4(m matrix.Double4x4) *mat.Dense {
	return dense(m, func(i, j int) float64 { r, _ := m.Row(i); v, _ := r.At(j); return v })
}
